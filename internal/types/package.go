package types

import (
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/samber/lo"
)

// PackageTier is the commercial tier of a subscription package
type PackageTier string

const (
	PackageTierBasic      PackageTier = "BASIC"
	PackageTierStandard   PackageTier = "STANDARD"
	PackageTierPro        PackageTier = "PRO"
	PackageTierEnterprise PackageTier = "ENTERPRISE"
)

func (p PackageTier) String() string {
	return string(p)
}

func (p PackageTier) Validate() error {
	allowed := []PackageTier{
		PackageTierBasic,
		PackageTierStandard,
		PackageTierPro,
		PackageTierEnterprise,
	}

	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid package tier").
			WithHint("Invalid package tier").
			WithReportableDetails(map[string]any{
				"allowed_values": allowed,
				"provided_value": p,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Status is the publication state of catalog entities
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}
