package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundTier is one row of the time-threshold-to-refund table.
// A tier applies when hoursUntilStart >= MinHoursBefore; tiers are
// ordered from the most generous down, and the last tier is the
// catch-all for everything below the lowest threshold (including
// activities that already started).
type RefundTier struct {
	MinHoursBefore  int             `json:"minHoursBefore"`
	RefundPercent   int             `json:"refundPercent"`
	CancellationFee decimal.Decimal `json:"cancellationFee"`
}

// CancellationPolicy governs refunds and modification fees.
// Supports hierarchical configuration: a row with ActivityID set
// overrides the global row (ActivityID = NULL).
type CancellationPolicy struct {
	ID              int64
	ActivityID      *int64 // NULL = global policy
	Tiers           []RefundTier
	ModificationFee decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsGlobal returns true if the policy applies to all activities
func (p *CancellationPolicy) IsGlobal() bool {
	return p.ActivityID == nil
}

// DefaultCancellationPolicy returns the reference policy:
// 72h+ -> 100% / no fee, 24h+ -> 75% / 25, 12h+ -> 50% / 25,
// below 12h (or already started) -> 0% / 50. Modification fee 25.
func DefaultCancellationPolicy() *CancellationPolicy {
	return &CancellationPolicy{
		Tiers: []RefundTier{
			{MinHoursBefore: 72, RefundPercent: 100, CancellationFee: decimal.Zero},
			{MinHoursBefore: 24, RefundPercent: 75, CancellationFee: decimal.NewFromInt(25)},
			{MinHoursBefore: 12, RefundPercent: 50, CancellationFee: decimal.NewFromInt(25)},
			{MinHoursBefore: 0, RefundPercent: 0, CancellationFee: decimal.NewFromInt(50)},
		},
		ModificationFee: decimal.NewFromInt(DefaultModificationFee),
	}
}
