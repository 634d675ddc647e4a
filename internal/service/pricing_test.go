package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sppg-platform/billing/internal/api/dto"
	"github.com/sppg-platform/billing/internal/domain/pricing"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/testutil"
	"github.com/sppg-platform/billing/internal/types"
)

type PricingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	stores  *testutil.Stores
	service PricingService
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}

func (s *PricingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = testutil.NewStores()
	s.NoError(s.stores.SeedDefaults(s.ctx))

	engine := pricing.NewEngine(pricing.DefaultConfig())
	s.service = NewPricingService(engine, s.stores.Catalog, s.stores.Promotion, testutil.Logger())
}

func (s *PricingServiceTestSuite) TestCalculatePayment() {
	resp, err := s.service.CalculatePayment(s.ctx, dto.CalculatePaymentRequest{
		PackageID:        testutil.BasicPackage().ID,
		BillingCycle:     types.BillingCycleMonthly,
		OrganizationType: types.OrganizationTypePemerintah,
		Registration:     testutil.CompleteRegistration(types.OrganizationTypePemerintah, 800),
	})
	s.NoError(err)

	s.Equal("2500000", resp.BasePrice.String())
	s.Equal("375000", resp.OrganizationDiscount.String())
	s.Equal("125000", resp.VolumeDiscount.String())
	s.Equal("2000000", resp.Subtotal.String())
	s.Equal("1000000", resp.SetupFee.String())
	s.Equal("330000", resp.TaxAmount.String())
	s.Equal("3330000", resp.TotalAmount.String())
	s.Equal("2330000", resp.RecurringPayment.String())
}

func (s *PricingServiceTestSuite) TestCalculatePaymentUnknownPackage() {
	_, err := s.service.CalculatePayment(s.ctx, dto.CalculatePaymentRequest{
		PackageID:        "pkg_tidak_ada",
		BillingCycle:     types.BillingCycleMonthly,
		OrganizationType: types.OrganizationTypeSwasta,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PricingServiceTestSuite) TestCalculatePaymentUnknownPromotionIsIgnored() {
	resp, err := s.service.CalculatePayment(s.ctx, dto.CalculatePaymentRequest{
		PackageID:        testutil.BasicPackage().ID,
		BillingCycle:     types.BillingCycleMonthly,
		OrganizationType: types.OrganizationTypeSwasta,
		PromotionCode:    "TIDAKADA",
	})
	s.NoError(err)
	s.Equal("0", resp.PromotionDiscount.String())
}

func (s *PricingServiceTestSuite) TestCalculatePaymentInvalidRequest() {
	_, err := s.service.CalculatePayment(s.ctx, dto.CalculatePaymentRequest{
		BillingCycle:     types.BillingCycleMonthly,
		OrganizationType: types.OrganizationTypeSwasta,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PricingServiceTestSuite) TestCalculatePaymentUpgradeRequiresPreviousPackage() {
	_, err := s.service.CalculatePayment(s.ctx, dto.CalculatePaymentRequest{
		PackageID:        testutil.StandardPackage().ID,
		BillingCycle:     types.BillingCycleMonthly,
		OrganizationType: types.OrganizationTypeSwasta,
		IsUpgrade:        true,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PricingServiceTestSuite) TestCalculatePaymentUpgrade() {
	resp, err := s.service.CalculatePayment(s.ctx, dto.CalculatePaymentRequest{
		PackageID:         testutil.StandardPackage().ID,
		BillingCycle:      types.BillingCycleMonthly,
		OrganizationType:  types.OrganizationTypeSwasta,
		IsUpgrade:         true,
		PreviousPackageID: testutil.BasicPackage().ID,
	})
	s.NoError(err)

	s.Equal("0", resp.SetupFee.String())
	// Half of the previous 2.5M cycle remains under the fallback window
	s.Equal("1250000", resp.UpgradeCredit.String())
}

func (s *PricingServiceTestSuite) TestGeneratePaymentSchedule() {
	resp, err := s.service.GeneratePaymentSchedule(s.ctx, dto.PaymentScheduleRequest{
		CalculatePaymentRequest: dto.CalculatePaymentRequest{
			PackageID:        testutil.BasicPackage().ID,
			BillingCycle:     types.BillingCycleMonthly,
			OrganizationType: types.OrganizationTypeSwasta,
		},
		Periods: 6,
	})
	s.NoError(err)

	s.Len(resp.Payments, 6)
	s.Equal(types.PaymentScheduleItemTypeSetup, resp.Payments[0].Type)

	sum := decimal.Zero
	for _, item := range resp.Payments {
		sum = sum.Add(item.Amount)
	}
	s.Equal(sum.String(), resp.TotalProjectedAmount.String())
}

func (s *PricingServiceTestSuite) TestGeneratePaymentScheduleRejectsZeroPeriods() {
	_, err := s.service.GeneratePaymentSchedule(s.ctx, dto.PaymentScheduleRequest{
		CalculatePaymentRequest: dto.CalculatePaymentRequest{
			PackageID:        testutil.BasicPackage().ID,
			BillingCycle:     types.BillingCycleMonthly,
			OrganizationType: types.OrganizationTypeSwasta,
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PricingServiceTestSuite) TestValidatePromotionCode() {
	resp, err := s.service.ValidatePromotionCode(s.ctx, dto.ValidatePromotionRequest{
		Code:             "LAUNCH25",
		OrganizationType: types.OrganizationTypeSwasta,
		BaseAmount:       decimal.NewFromInt(3_000_000),
	})
	s.NoError(err)

	s.True(resp.IsValid)
	s.NotNil(resp.Discount)
	s.Equal("500000", resp.Discount.String())
	s.NotEmpty(resp.Description)
}

func (s *PricingServiceTestSuite) TestValidatePromotionCodeCaseInsensitive() {
	resp, err := s.service.ValidatePromotionCode(s.ctx, dto.ValidatePromotionRequest{
		Code:             "launch25",
		OrganizationType: types.OrganizationTypeSwasta,
		BaseAmount:       decimal.NewFromInt(1_000_000),
	})
	s.NoError(err)
	s.True(resp.IsValid)
}

func (s *PricingServiceTestSuite) TestValidatePromotionCodeNotFound() {
	resp, err := s.service.ValidatePromotionCode(s.ctx, dto.ValidatePromotionRequest{
		Code:             "TIDAKADA",
		OrganizationType: types.OrganizationTypeSwasta,
	})
	s.NoError(err)

	s.False(resp.IsValid)
	s.Equal("Promotion code not found", resp.Reason)
	s.Nil(resp.Discount)
}

func (s *PricingServiceTestSuite) TestValidatePromotionCodeExpired() {
	resp, err := s.service.ValidatePromotionCode(s.ctx, dto.ValidatePromotionRequest{
		Code:             "KADALUARSA",
		OrganizationType: types.OrganizationTypeSwasta,
	})
	s.NoError(err)

	s.False(resp.IsValid)
	s.Equal(promotion.ReasonExpired, resp.Reason)
}

func (s *PricingServiceTestSuite) TestValidatePromotionCodeOrganizationMismatch() {
	resp, err := s.service.ValidatePromotionCode(s.ctx, dto.ValidatePromotionRequest{
		Code:             "OPERATORBARU",
		OrganizationType: types.OrganizationTypeSwasta,
		BaseAmount:       decimal.NewFromInt(5_000_000),
	})
	s.NoError(err)

	s.False(resp.IsValid)
	s.Equal(promotion.ReasonOrganizationType, resp.Reason)
}
