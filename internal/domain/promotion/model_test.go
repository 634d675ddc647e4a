package promotion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sppg-platform/billing/internal/types"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	base := decimal.NewFromInt(3_000_000)

	tests := []struct {
		name         string
		promo        PromotionCode
		baseAmount   decimal.Decimal
		orgType      types.OrganizationType
		wantEligible bool
		wantAmount   string
		wantReason   string
	}{
		{
			name: "percentage within cap",
			promo: PromotionCode{
				Code:       "DISKON10",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidUntil: now.AddDate(1, 0, 0),
				Status:     types.StatusPublished,
			},
			baseAmount:   base,
			orgType:      types.OrganizationTypeSwasta,
			wantEligible: true,
			wantAmount:   "300000",
		},
		{
			name: "percentage clamped to max discount",
			promo: PromotionCode{
				Code:        "DISKON25",
				Type:        types.PromotionTypePercentage,
				Value:       decimal.NewFromInt(25),
				ValidUntil:  now.AddDate(1, 0, 0),
				MaxDiscount: decimalPtr(decimal.NewFromInt(500_000)),
				Status:      types.StatusPublished,
			},
			baseAmount:   base,
			orgType:      types.OrganizationTypeSwasta,
			wantEligible: true,
			wantAmount:   "500000",
		},
		{
			name: "fixed amount is never clamped",
			promo: PromotionCode{
				Code:        "POTONGAN",
				Type:        types.PromotionTypeFixedAmount,
				Value:       decimal.NewFromInt(750_000),
				ValidUntil:  now.AddDate(1, 0, 0),
				MaxDiscount: decimalPtr(decimal.NewFromInt(100_000)),
				Status:      types.StatusPublished,
			},
			baseAmount:   base,
			orgType:      types.OrganizationTypeSwasta,
			wantEligible: true,
			wantAmount:   "750000",
		},
		{
			name: "expired yesterday",
			promo: PromotionCode{
				Code:       "KADALUARSA",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidUntil: now.AddDate(0, 0, -1),
				Status:     types.StatusPublished,
			},
			baseAmount: base,
			orgType:    types.OrganizationTypeSwasta,
			wantReason: ReasonExpired,
		},
		{
			name: "not yet active",
			promo: PromotionCode{
				Code:       "NANTI",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidFrom:  func() *time.Time { t := now.AddDate(0, 1, 0); return &t }(),
				ValidUntil: now.AddDate(1, 0, 0),
				Status:     types.StatusPublished,
			},
			baseAmount: base,
			orgType:    types.OrganizationTypeSwasta,
			wantReason: ReasonNotYetActive,
		},
		{
			name: "archived",
			promo: PromotionCode{
				Code:       "ARSIP",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidUntil: now.AddDate(1, 0, 0),
				Status:     types.StatusArchived,
			},
			baseAmount: base,
			orgType:    types.OrganizationTypeSwasta,
			wantReason: ReasonArchived,
		},
		{
			name: "organization type not allowed",
			promo: PromotionCode{
				Code:       "KOMUNITAS",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidUntil: now.AddDate(1, 0, 0),
				OrganizationTypes: []types.OrganizationType{
					types.OrganizationTypeKomunitas,
				},
				Status: types.StatusPublished,
			},
			baseAmount: base,
			orgType:    types.OrganizationTypeSwasta,
			wantReason: ReasonOrganizationType,
		},
		{
			name: "empty allow list admits every organization type",
			promo: PromotionCode{
				Code:       "SEMUA",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidUntil: now.AddDate(1, 0, 0),
				Status:     types.StatusPublished,
			},
			baseAmount:   base,
			orgType:      types.OrganizationTypeLainnya,
			wantEligible: true,
			wantAmount:   "300000",
		},
		{
			name: "below minimum amount",
			promo: PromotionCode{
				Code:       "MINIMAL",
				Type:       types.PromotionTypeFixedAmount,
				Value:      decimal.NewFromInt(250_000),
				ValidUntil: now.AddDate(1, 0, 0),
				MinAmount:  decimalPtr(decimal.NewFromInt(5_000_000)),
				Status:     types.StatusPublished,
			},
			baseAmount: base,
			orgType:    types.OrganizationTypeSwasta,
			wantReason: ReasonBelowMinimum,
		},
		{
			name: "valid until boundary is inclusive",
			promo: PromotionCode{
				Code:       "BATAS",
				Type:       types.PromotionTypePercentage,
				Value:      decimal.NewFromInt(10),
				ValidUntil: now,
				Status:     types.StatusPublished,
			},
			baseAmount:   base,
			orgType:      types.OrganizationTypeSwasta,
			wantEligible: true,
			wantAmount:   "300000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := tt.promo.Evaluate(tt.baseAmount, tt.orgType, now)

			assert.Equal(t, tt.wantEligible, eval.Eligible)
			if tt.wantEligible {
				assert.Equal(t, tt.wantAmount, eval.Amount.String())
				assert.Empty(t, eval.Reason)
			} else {
				assert.Equal(t, "0", eval.Amount.String())
				assert.Equal(t, tt.wantReason, eval.Reason)
			}
		})
	}
}

func TestEvaluatePercentageFloorsToWholeRupiah(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	promo := PromotionCode{
		Code:       "GANJIL",
		Type:       types.PromotionTypePercentage,
		Value:      decimal.NewFromInt(3),
		ValidUntil: now.AddDate(1, 0, 0),
		Status:     types.StatusPublished,
	}

	// 3% of 99 is 2.97, floored to 2
	eval := promo.Evaluate(decimal.NewFromInt(99), types.OrganizationTypeSwasta, now)
	assert.True(t, eval.Eligible)
	assert.Equal(t, "2", eval.Amount.String())
}
