package types

import (
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/samber/lo"
)

// OrganizationType classifies an SPPG operator for pricing and
// registration rules
type OrganizationType string

const (
	// OrganizationTypePemerintah is a government institution
	OrganizationTypePemerintah OrganizationType = "PEMERINTAH"
	// OrganizationTypeSwasta is a private company
	OrganizationTypeSwasta OrganizationType = "SWASTA"
	// OrganizationTypeYayasan is a registered foundation
	OrganizationTypeYayasan OrganizationType = "YAYASAN"
	// OrganizationTypeKomunitas is a community group
	OrganizationTypeKomunitas OrganizationType = "KOMUNITAS"
	// OrganizationTypeLainnya is any other organization form
	OrganizationTypeLainnya OrganizationType = "LAINNYA"
)

func (o OrganizationType) String() string {
	return string(o)
}

func (o OrganizationType) Validate() error {
	allowed := []OrganizationType{
		OrganizationTypePemerintah,
		OrganizationTypeSwasta,
		OrganizationTypeYayasan,
		OrganizationTypeKomunitas,
		OrganizationTypeLainnya,
	}

	if !lo.Contains(allowed, o) {
		return ierr.NewError("invalid organization type").
			WithHint("Invalid organization type").
			WithReportableDetails(map[string]any{
				"allowed_values": allowed,
				"provided_value": o,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
