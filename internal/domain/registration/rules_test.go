package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

func completeData(orgType types.OrganizationType, docs map[string]string) *Data {
	return &Data{
		OrganizationType: orgType,
		OrganizationName: "SPPG Sehat Sentosa",
		PICName:          "Budi Santoso",
		Email:            "budi@sppg-sehat.id",
		Phone:            "+62812345678",
		Address:          "Jl. Merdeka No. 1",
		City:             "Jakarta",
		Province:         "DKI Jakarta",
		TargetRecipients: 750,
		Documents:        docs,
	}
}

func TestCheckCompleteRegistration(t *testing.T) {
	tests := []struct {
		orgType types.OrganizationType
		docs    map[string]string
	}{
		{types.OrganizationTypePemerintah, map[string]string{
			"sk_penetapan": "uploads/sk.pdf",
			"npwp":         "uploads/npwp.pdf",
		}},
		{types.OrganizationTypeSwasta, map[string]string{
			"nib":            "uploads/nib.pdf",
			"npwp":           "uploads/npwp.pdf",
			"akta_pendirian": "uploads/akta.pdf",
		}},
		{types.OrganizationTypeYayasan, map[string]string{
			"akta_yayasan":   "uploads/akta.pdf",
			"sk_kemenkumham": "uploads/sk.pdf",
			"npwp":           "uploads/npwp.pdf",
		}},
		{types.OrganizationTypeKomunitas, map[string]string{
			"surat_keterangan": "uploads/surat.pdf",
		}},
		{types.OrganizationTypeLainnya, map[string]string{
			"surat_keterangan": "uploads/surat.pdf",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.orgType), func(t *testing.T) {
			violations := Check(completeData(tt.orgType, tt.docs))
			assert.Empty(t, violations)
		})
	}
}

func TestCheckMissingDocument(t *testing.T) {
	data := completeData(types.OrganizationTypePemerintah, map[string]string{
		"sk_penetapan": "uploads/sk.pdf",
	})

	violations := Check(data)
	assert.Len(t, violations, 1)
	assert.Equal(t, "documents.npwp", violations[0].Field)
}

func TestCheckMissingCommonFields(t *testing.T) {
	data := completeData(types.OrganizationTypeKomunitas, map[string]string{
		"surat_keterangan": "uploads/surat.pdf",
	})
	data.Email = ""
	data.City = ""

	violations := Check(data)
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"email", "city"}, fields)
}

func TestCheckTargetRecipients(t *testing.T) {
	data := completeData(types.OrganizationTypeKomunitas, map[string]string{
		"surat_keterangan": "uploads/surat.pdf",
	})
	data.TargetRecipients = 0

	violations := Check(data)
	assert.Len(t, violations, 1)
	assert.Equal(t, "target_recipients", violations[0].Field)
}

func TestCheckInvalidOrganizationType(t *testing.T) {
	data := completeData(types.OrganizationType("WARUNG"), nil)

	violations := Check(data)
	assert.NotEmpty(t, violations)
	assert.Equal(t, "organization_type", violations[0].Field)
}

func TestCheckNilData(t *testing.T) {
	violations := Check(nil)
	assert.Len(t, violations, 1)
	assert.Equal(t, "registration", violations[0].Field)
}

func TestValidate(t *testing.T) {
	data := completeData(types.OrganizationTypeKomunitas, map[string]string{
		"surat_keterangan": "uploads/surat.pdf",
	})
	assert.NoError(t, Validate(data))

	data.Phone = ""
	err := Validate(data)
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
