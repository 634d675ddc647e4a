package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sppg-platform/billing/internal/types"
)

func TestAnnualListPrice(t *testing.T) {
	pkg := &Package{MonthlyPrice: decimal.NewFromInt(5_000_000)}
	assert.Equal(t, "60000000", pkg.AnnualListPrice().String())
}

func TestEffectiveYearlyPrice(t *testing.T) {
	yearly := decimal.NewFromInt(51_000_000)

	withExplicit := &Package{
		MonthlyPrice: decimal.NewFromInt(5_000_000),
		YearlyPrice:  &yearly,
	}
	assert.Equal(t, "51000000", withExplicit.EffectiveYearlyPrice().String())

	withoutExplicit := &Package{MonthlyPrice: decimal.NewFromInt(5_000_000)}
	assert.Equal(t, "60000000", withoutExplicit.EffectiveYearlyPrice().String())
}

func TestCyclePrice(t *testing.T) {
	yearly := decimal.NewFromInt(51_000_000)
	pkg := &Package{
		MonthlyPrice: decimal.NewFromInt(5_000_000),
		YearlyPrice:  &yearly,
	}

	assert.Equal(t, "5000000", pkg.CyclePrice(types.BillingCycleMonthly).String())
	assert.Equal(t, "51000000", pkg.CyclePrice(types.BillingCycleYearly).String())
}
