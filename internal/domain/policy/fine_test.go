package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinePolicy_Calculate(t *testing.T) {
	p := DefaultFinePolicy()
	due := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		evaluatedAt time.Time
		want        int64
	}{
		{name: "returned early", evaluatedAt: due.Add(-24 * time.Hour), want: 0},
		{name: "returned exactly on time", evaluatedAt: due, want: 0},
		{name: "one second late counts as a full day", evaluatedAt: due.Add(time.Second), want: 1},
		{name: "three days late", evaluatedAt: due.Add(3 * 24 * time.Hour), want: 3},
		{name: "seven days late stays at daily rate", evaluatedAt: due.Add(7 * 24 * time.Hour), want: 7},
		{name: "ten days late escalates", evaluatedAt: due.Add(10 * 24 * time.Hour), want: 13}, // 7*1 + 3*2
		{name: "partial eighth day escalates", evaluatedAt: due.Add(7*24*time.Hour + time.Minute), want: 9},
		{name: "hundred days late hits the cap", evaluatedAt: due.Add(100 * 24 * time.Hour), want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Calculate(due, tt.evaluatedAt))
		})
	}
}

func TestFinePolicy_Calculate_Deterministic(t *testing.T) {
	p := DefaultFinePolicy()
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	at := due.Add(12 * 24 * time.Hour)

	first := p.Calculate(due, at)
	second := p.Calculate(due, at)
	assert.Equal(t, first, second)
}

func TestFinePolicy_Calculate_CustomSchedule(t *testing.T) {
	p := FinePolicy{DailyRate: 5, EscalatedRate: 10, EscalationAfterDays: 2, Cap: 100}
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// 2*5 + 3*10 = 40
	assert.Equal(t, int64(40), p.Calculate(due, due.Add(5*24*time.Hour)))
	// 2*5 + 20*10 would be 210, capped.
	assert.Equal(t, int64(100), p.Calculate(due, due.Add(22*24*time.Hour)))
}
