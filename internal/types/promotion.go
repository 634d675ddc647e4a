package types

import (
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/samber/lo"
)

// PromotionType determines how a promotion code's value is applied
type PromotionType string

const (
	// PromotionTypePercentage applies value as a percentage of the base
	// amount, optionally capped
	PromotionTypePercentage PromotionType = "PERCENTAGE"
	// PromotionTypeFixedAmount subtracts value directly, never capped
	PromotionTypeFixedAmount PromotionType = "FIXED_AMOUNT"
)

func (p PromotionType) String() string {
	return string(p)
}

func (p PromotionType) Validate() error {
	allowed := []PromotionType{
		PromotionTypePercentage,
		PromotionTypeFixedAmount,
	}

	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid promotion type").
			WithHint("Invalid promotion type").
			WithReportableDetails(map[string]any{
				"allowed_values": allowed,
				"provided_value": p,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
