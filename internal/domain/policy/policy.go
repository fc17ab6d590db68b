package policy

import "time"

// CirculationPolicy bundles the borrowing rules applied by the eligibility
// gatekeeper and the renewal/return coordinator.
type CirculationPolicy struct {
	MaxActiveLoans int
	MaxRenewals    int
	LoanPeriod     time.Duration
	RenewalPeriod  time.Duration
	Fine           FinePolicy
}

// DefaultCirculationPolicy returns the standard rules: 5 concurrent loans,
// 2 renewals, 14-day loan and renewal periods, default fine schedule.
func DefaultCirculationPolicy() CirculationPolicy {
	return CirculationPolicy{
		MaxActiveLoans: 5,
		MaxRenewals:    2,
		LoanPeriod:     14 * day,
		RenewalPeriod:  14 * day,
		Fine:           DefaultFinePolicy(),
	}
}
