// Package constants holds shared domain-level constant values.
package constants

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the event publisher configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in Pub/Sub message attributes.
const (
	EventTypeOverdueNotice = "overdue_notice"
)
