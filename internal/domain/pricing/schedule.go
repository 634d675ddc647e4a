package pricing

import (
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// GenerateSchedule projects periods payment events from a breakdown,
// starting at startDate. The first entry covers the initial payment
// (setup plus first cycle); subsequent entries are the recurring
// charge at each cycle boundary and are omitted entirely when nothing
// recurs, as with yearly billing. All entries are projected as
// PENDING; actual payment state is tracked elsewhere.
func (e *Engine) GenerateSchedule(breakdown *Breakdown, startDate time.Time, periods int) (*Schedule, error) {
	if breakdown == nil {
		return nil, ierr.NewError("breakdown is required").
			WithHint("A payment breakdown must be calculated first").
			Mark(ierr.ErrValidation)
	}

	if periods < 1 {
		return nil, ierr.NewError("periods must be at least 1").
			WithHint("At least one billing period is required").
			Mark(ierr.ErrValidation)
	}

	cycle := breakdown.BillingCycle

	payments := []ScheduleItem{
		{
			DueDate:     startDate,
			Description: "Initial payment (setup and first cycle)",
			Amount:      breakdown.InitialPayment,
			Type:        types.PaymentScheduleItemTypeSetup,
			Status:      types.PaymentStatusPending,
		},
	}

	if breakdown.RecurringPayment.IsPositive() {
		for i := 1; i < periods; i++ {
			payments = append(payments, ScheduleItem{
				DueDate:     cycle.Next(startDate, i),
				Description: "Subscription payment",
				Amount:      breakdown.RecurringPayment,
				Type:        types.PaymentScheduleItemTypeSubscription,
				Status:      types.PaymentStatusPending,
			})
		}
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	savings := decimal.Zero
	if breakdown.SavingsFromYearly != nil && cycle == types.BillingCycleMonthly {
		// SavingsFromYearly is an annual figure; scale it to the
		// requested horizon of monthly periods
		savings = breakdown.SavingsFromYearly.
			Mul(decimal.NewFromInt(int64(periods))).
			Div(decimal.NewFromInt(12)).
			Floor()
	}

	return &Schedule{
		BillingCycle:         cycle,
		Payments:             payments,
		TotalProjectedAmount: total,
		TotalSavings:         savings,
	}, nil
}
