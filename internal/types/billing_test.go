package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingCycleValidate(t *testing.T) {
	assert.NoError(t, BillingCycleMonthly.Validate())
	assert.NoError(t, BillingCycleYearly.Validate())
	assert.Error(t, BillingCycle("WEEKLY").Validate())
	assert.Error(t, BillingCycle("").Validate())
}

func TestBillingCycleNext(t *testing.T) {
	start := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), BillingCycleMonthly.Next(start, 1))
	assert.Equal(t, time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC), BillingCycleYearly.Next(start, 1))

	mid := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), BillingCycleMonthly.Next(mid, 3))
}

func TestBillingCycleDays(t *testing.T) {
	assert.Equal(t, 30, BillingCycleMonthly.Days())
	assert.Equal(t, 365, BillingCycleYearly.Days())
}

func TestSubscriptionFilterLimits(t *testing.T) {
	var nilFilter *SubscriptionFilter
	assert.Equal(t, 50, nilFilter.GetLimit())
	assert.Equal(t, 0, nilFilter.GetOffset())

	filter := &SubscriptionFilter{Limit: 10, Offset: 20}
	assert.Equal(t, 10, filter.GetLimit())
	assert.Equal(t, 20, filter.GetOffset())

	assert.NoError(t, filter.Validate())
	assert.Error(t, (&SubscriptionFilter{Limit: 500}).Validate())
	assert.Error(t, (&SubscriptionFilter{Offset: -1}).Validate())
	assert.Error(t, (&SubscriptionFilter{Status: []SubscriptionStatus{"SLEEPING"}}).Validate())
}
