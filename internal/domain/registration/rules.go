package registration

import (
	"fmt"

	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// Violation is a single failed registration rule, keyed by the field
// or document it concerns
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// documentRule names a document an organization type must upload
type documentRule struct {
	Code  string
	Label string
}

// requiredFields are common to every organization type
var requiredFields = []struct {
	Name  string
	Value func(*Data) string
}{
	{"organization_name", func(d *Data) string { return d.OrganizationName }},
	{"pic_name", func(d *Data) string { return d.PICName }},
	{"email", func(d *Data) string { return d.Email }},
	{"phone", func(d *Data) string { return d.Phone }},
	{"address", func(d *Data) string { return d.Address }},
	{"city", func(d *Data) string { return d.City }},
	{"province", func(d *Data) string { return d.Province }},
}

// documentRules are the legal documents required per organization type
var documentRules = map[types.OrganizationType][]documentRule{
	types.OrganizationTypePemerintah: {
		{"sk_penetapan", "SK penetapan SPPG"},
		{"npwp", "NPWP instansi"},
	},
	types.OrganizationTypeSwasta: {
		{"nib", "NIB"},
		{"npwp", "NPWP perusahaan"},
		{"akta_pendirian", "Akta pendirian"},
	},
	types.OrganizationTypeYayasan: {
		{"akta_yayasan", "Akta yayasan"},
		{"sk_kemenkumham", "SK Kemenkumham"},
		{"npwp", "NPWP yayasan"},
	},
	types.OrganizationTypeKomunitas: {
		{"surat_keterangan", "Surat keterangan komunitas"},
	},
	types.OrganizationTypeLainnya: {
		{"surat_keterangan", "Surat keterangan organisasi"},
	},
}

// Check applies the registration rules and returns every violation.
// An empty result means the registration is complete.
func Check(data *Data) []Violation {
	var violations []Violation

	if data == nil {
		return []Violation{{Field: "registration", Message: "registration data is required"}}
	}

	if err := data.OrganizationType.Validate(); err != nil {
		violations = append(violations, Violation{
			Field:   "organization_type",
			Message: "organization type is required",
		})
	}

	for _, f := range requiredFields {
		if f.Value(data) == "" {
			violations = append(violations, Violation{
				Field:   f.Name,
				Message: fmt.Sprintf("%s is required", f.Name),
			})
		}
	}

	if data.TargetRecipients <= 0 {
		violations = append(violations, Violation{
			Field:   "target_recipients",
			Message: "target recipients must be greater than zero",
		})
	}

	for _, doc := range documentRules[data.OrganizationType] {
		if data.Documents[doc.Code] == "" {
			violations = append(violations, Violation{
				Field:   "documents." + doc.Code,
				Message: fmt.Sprintf("%s is required", doc.Label),
			})
		}
	}

	return violations
}

// Validate wraps Check into an error suitable for the API surface
func Validate(data *Data) error {
	violations := Check(data)
	if len(violations) == 0 {
		return nil
	}

	details := make(map[string]any, len(violations))
	for _, v := range violations {
		details[v.Field] = v.Message
	}

	return ierr.NewError("registration is incomplete").
		WithHint("Registration data is incomplete").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
