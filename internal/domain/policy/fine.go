// Package policy contains the pure circulation rules: borrowing limits,
// renewal limits and the overdue fine schedule. Everything here is
// deterministic and free of I/O so the periodic sweep and the return path
// always agree on the same numbers.
package policy

import "time"

const day = 24 * time.Hour

// FinePolicy is the overdue fine schedule. The first EscalationAfterDays
// overdue days cost DailyRate units each; every day beyond that costs
// EscalatedRate units. The total is capped at Cap regardless of duration.
type FinePolicy struct {
	DailyRate           int64
	EscalatedRate       int64
	EscalationAfterDays int
	Cap                 int64
}

// DefaultFinePolicy returns the standard schedule: 1 unit/day for the first
// 7 overdue days, 2 units/day after, capped at 50 units.
func DefaultFinePolicy() FinePolicy {
	return FinePolicy{
		DailyRate:           1,
		EscalatedRate:       2,
		EscalationAfterDays: 7,
		Cap:                 50,
	}
}

// Calculate returns the fine owed for a loan due at dueAt when evaluated at
// evaluatedAt. Overdue days are counted with ceiling semantics: any started
// day is a full day. Zero or negative overdue duration yields 0.
func (p FinePolicy) Calculate(dueAt, evaluatedAt time.Time) int64 {
	overdue := evaluatedAt.Sub(dueAt)
	if overdue <= 0 {
		return 0
	}

	days := int64(overdue / day)
	if overdue%day != 0 {
		days++
	}

	escalationAfter := int64(p.EscalationAfterDays)
	var amount int64
	if days <= escalationAfter {
		amount = days * p.DailyRate
	} else {
		amount = escalationAfter*p.DailyRate + (days-escalationAfter)*p.EscalatedRate
	}

	if amount > p.Cap {
		return p.Cap
	}

	return amount
}
