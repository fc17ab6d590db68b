package notification

import (
	"context"
	"log/slog"

	"circulate/config"
	"circulate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotificationService logs and drops notifications when Firebase is not
// configured, so the worker can run without push credentials.
type noopNotificationService struct {
	logger *slog.Logger
}

func (s *noopNotificationService) SendNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push delivery disabled, dropping notification",
		slog.String("title", title),
	)

	return nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopNotificationService{logger: params.Logger}, nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}
