package types

import (
	"time"

	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/samber/lo"
)

// BillingCycle determines the cadence a subscription is charged on
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "MONTHLY"
	BillingCycleYearly  BillingCycle = "YEARLY"
)

func (b BillingCycle) String() string {
	return string(b)
}

func (b BillingCycle) Validate() error {
	allowed := []BillingCycle{
		BillingCycleMonthly,
		BillingCycleYearly,
	}

	if !lo.Contains(allowed, b) {
		return ierr.NewError("invalid billing cycle").
			WithHint("Invalid billing cycle").
			WithReportableDetails(map[string]any{
				"allowed_values": allowed,
				"provided_value": b,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Next returns t advanced by n billing cycles
func (b BillingCycle) Next(t time.Time, n int) time.Time {
	if b == BillingCycleYearly {
		return t.AddDate(n, 0, 0)
	}
	return t.AddDate(0, n, 0)
}

// Days returns the nominal number of days in one cycle, used for
// daily proration of upgrade credits
func (b BillingCycle) Days() int {
	if b == BillingCycleYearly {
		return 365
	}
	return 30
}
