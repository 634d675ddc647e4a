package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// CreatePackageRequest creates a catalog entry from the admin surface
type CreatePackageRequest struct {
	Name          string                  `json:"name" validate:"required"`
	Description   string                  `json:"description,omitempty"`
	Tier          types.PackageTier       `json:"tier" validate:"required"`
	MonthlyPrice  decimal.Decimal         `json:"monthly_price" validate:"required"`
	YearlyPrice   *decimal.Decimal        `json:"yearly_price,omitempty"`
	SetupFee      decimal.Decimal         `json:"setup_fee"`
	MaxRecipients int                     `json:"max_recipients"`
	Features      catalog.PackageFeatures `json:"features"`
}

// Validate validates the CreatePackageRequest
func (r *CreatePackageRequest) Validate() error {
	if r.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Please provide a package name").
			Mark(ierr.ErrValidation)
	}

	if err := r.Tier.Validate(); err != nil {
		return err
	}

	if r.MonthlyPrice.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("monthly_price must be greater than zero").
			WithHint("Please provide a valid monthly price").
			Mark(ierr.ErrValidation)
	}

	if r.YearlyPrice != nil && r.YearlyPrice.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("yearly_price must be greater than zero when set").
			WithHint("Please provide a valid yearly price").
			Mark(ierr.ErrValidation)
	}

	if r.SetupFee.IsNegative() {
		return ierr.NewError("setup_fee must not be negative").
			WithHint("Please provide a valid setup fee").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToPackage converts the request into a catalog package
func (r *CreatePackageRequest) ToPackage() *catalog.Package {
	return &catalog.Package{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PACKAGE),
		Name:          r.Name,
		Description:   r.Description,
		Tier:          r.Tier,
		MonthlyPrice:  r.MonthlyPrice,
		YearlyPrice:   r.YearlyPrice,
		SetupFee:      r.SetupFee,
		MaxRecipients: r.MaxRecipients,
		Features:      r.Features,
		Status:        types.StatusPublished,
	}
}

// PackageResponse is a catalog entry as returned to callers
type PackageResponse struct {
	*catalog.Package
	// EffectiveYearlyPrice saves the UI from re-deriving the fallback
	EffectiveYearlyPrice decimal.Decimal `json:"effective_yearly_price"`
}

// NewPackageResponse wraps a package into a response
func NewPackageResponse(pkg *catalog.Package) *PackageResponse {
	return &PackageResponse{
		Package:              pkg,
		EffectiveYearlyPrice: pkg.EffectiveYearlyPrice(),
	}
}

// ListPackagesResponse is the published catalog
type ListPackagesResponse struct {
	Items []*PackageResponse `json:"items"`
	Total int                `json:"total"`
}
