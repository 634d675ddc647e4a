package registration

import "github.com/sppg-platform/billing/internal/types"

// Data is the progressively-filled registration form of the signup
// wizard. All fields are optional at the type level; completeness is
// enforced by Validate against the per-organization-type rules.
type Data struct {
	OrganizationType types.OrganizationType `json:"organization_type,omitempty"`
	OrganizationName string                 `json:"organization_name,omitempty"`
	PICName          string                 `json:"pic_name,omitempty"`
	Email            string                 `json:"email,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	Address          string                 `json:"address,omitempty"`
	City             string                 `json:"city,omitempty"`
	Province         string                 `json:"province,omitempty"`

	// TargetRecipients drives the volume discount tier
	TargetRecipients int `json:"target_recipients,omitempty"`
	// MaxRadiusKM is the distribution radius the operator commits to
	MaxRadiusKM float64 `json:"max_radius_km,omitempty"`

	OperationalHours *OperationalHours `json:"operational_hours,omitempty"`

	// Documents maps a document code (see rules.go) to an uploaded
	// file reference
	Documents map[string]string `json:"documents,omitempty"`
}

// OperationalHours is the daily service window of the kitchen
type OperationalHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}
