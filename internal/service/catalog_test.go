package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sppg-platform/billing/internal/api/dto"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/testutil"
	"github.com/sppg-platform/billing/internal/types"
)

type PackageServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	stores  *testutil.Stores
	service PackageService
}

func TestPackageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PackageServiceTestSuite))
}

func (s *PackageServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = testutil.NewStores()
	s.service = NewPackageService(s.stores.Catalog, testutil.Logger())
}

func (s *PackageServiceTestSuite) TestCreatePackage() {
	yearly := decimal.NewFromInt(51_000_000)

	resp, err := s.service.CreatePackage(s.ctx, dto.CreatePackageRequest{
		Name:          "Standard",
		Tier:          types.PackageTierStandard,
		MonthlyPrice:  decimal.NewFromInt(5_000_000),
		YearlyPrice:   &yearly,
		SetupFee:      decimal.NewFromInt(2_000_000),
		MaxRecipients: 3_000,
	})
	s.NoError(err)

	s.NotEmpty(resp.ID)
	s.Equal(types.StatusPublished, resp.Status)
	s.Equal("51000000", resp.EffectiveYearlyPrice.String())

	got, err := s.service.GetPackage(s.ctx, resp.ID)
	s.NoError(err)
	s.Equal(resp.ID, got.ID)
}

func (s *PackageServiceTestSuite) TestCreatePackageValidation() {
	tests := []struct {
		name string
		req  dto.CreatePackageRequest
	}{
		{"missing name", dto.CreatePackageRequest{
			Tier:         types.PackageTierBasic,
			MonthlyPrice: decimal.NewFromInt(1_000_000),
		}},
		{"invalid tier", dto.CreatePackageRequest{
			Name:         "Custom",
			Tier:         types.PackageTier("PLATINUM"),
			MonthlyPrice: decimal.NewFromInt(1_000_000),
		}},
		{"zero monthly price", dto.CreatePackageRequest{
			Name: "Custom",
			Tier: types.PackageTierBasic,
		}},
		{"negative setup fee", dto.CreatePackageRequest{
			Name:         "Custom",
			Tier:         types.PackageTierBasic,
			MonthlyPrice: decimal.NewFromInt(1_000_000),
			SetupFee:     decimal.NewFromInt(-1),
		}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreatePackage(s.ctx, tt.req)
			s.Error(err)
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *PackageServiceTestSuite) TestListPackages() {
	s.NoError(s.stores.SeedDefaults(s.ctx))

	resp, err := s.service.ListPackages(s.ctx)
	s.NoError(err)

	s.Equal(2, resp.Total)
	s.Len(resp.Items, 2)
	for _, item := range resp.Items {
		s.Equal(types.StatusPublished, item.Status)
	}
}

func (s *PackageServiceTestSuite) TestGetPackageNotFound() {
	_, err := s.service.GetPackage(s.ctx, "pkg_tidak_ada")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
