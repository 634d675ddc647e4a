package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sppg-platform/billing/internal/api/dto"
	"github.com/sppg-platform/billing/internal/domain/pricing"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/testutil"
	"github.com/sppg-platform/billing/internal/types"
)

type SignupServiceTestSuite struct {
	suite.Suite
	ctx                 context.Context
	stores              *testutil.Stores
	service             SignupService
	subscriptionService SubscriptionService
}

func TestSignupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SignupServiceTestSuite))
}

func (s *SignupServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = testutil.NewStores()
	s.NoError(s.stores.SeedDefaults(s.ctx))

	engine := pricing.NewEngine(pricing.DefaultConfig())
	pricingService := NewPricingService(engine, s.stores.Catalog, s.stores.Promotion, testutil.Logger())
	s.subscriptionService = NewSubscriptionService(s.stores.Subscription, s.stores.Catalog, pricingService, testutil.Logger())
	s.service = NewSignupService(s.stores.Signup, pricingService, s.subscriptionService, testutil.Logger())
}

// walkToConfirmation drives a fresh draft through package selection and
// registration
func (s *SignupServiceTestSuite) walkToConfirmation() *dto.SignupDraftResponse {
	draft, err := s.service.StartSignup(s.ctx)
	s.Require().NoError(err)

	draft, err = s.service.SelectPackage(s.ctx, draft.ID, dto.SelectPackageRequest{
		PackageID:    testutil.BasicPackage().ID,
		BillingCycle: types.BillingCycleMonthly,
	})
	s.Require().NoError(err)

	draft, err = s.service.SubmitRegistration(s.ctx, draft.ID, dto.SubmitRegistrationRequest{
		Registration: testutil.CompleteRegistration(types.OrganizationTypeKomunitas, 600),
	})
	s.Require().NoError(err)

	return draft
}

func (s *SignupServiceTestSuite) TestStartSignup() {
	draft, err := s.service.StartSignup(s.ctx)
	s.NoError(err)

	s.NotEmpty(draft.ID)
	s.Equal(types.SignupStepPackageSelection, draft.CurrentStep)
	s.Nil(draft.Quote)
}

func (s *SignupServiceTestSuite) TestWizardWalkthrough() {
	draft := s.walkToConfirmation()
	s.Equal(types.SignupStepConfirmation, draft.CurrentStep)

	draft, err := s.service.ConfirmSignup(s.ctx, draft.ID, dto.ConfirmSignupRequest{})
	s.NoError(err)
	s.Equal(types.SignupStepPayment, draft.CurrentStep)
	s.Require().NotNil(draft.Quote)
	s.Equal("500000", draft.Quote.OrganizationDiscount.String())

	draft, err = s.service.AttachPaymentProof(s.ctx, draft.ID, dto.SubmitPaymentProofRequest{
		ProofURL: "uploads/bukti-transfer.pdf",
	})
	s.NoError(err)
	s.Equal(types.SignupStepActivation, draft.CurrentStep)

	draft, err = s.service.CompleteSignup(s.ctx, draft.ID)
	s.NoError(err)
	s.NotEmpty(draft.SubscriptionID)

	// completion creates a subscription with the proof already attached
	sub, err := s.subscriptionService.GetSubscription(s.ctx, draft.SubscriptionID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusAwaitingVerification, sub.Status)
	s.Equal("uploads/bukti-transfer.pdf", sub.PaymentProofURL)
}

func (s *SignupServiceTestSuite) TestConfirmWithPromotionCode() {
	draft := s.walkToConfirmation()

	draft, err := s.service.ConfirmSignup(s.ctx, draft.ID, dto.ConfirmSignupRequest{
		PromotionCode: "OPERATORBARU",
	})
	s.NoError(err)

	s.Require().NotNil(draft.Quote)
	s.Equal("OPERATORBARU", draft.PromotionCode)
	s.Equal("250000", draft.Quote.PromotionDiscount.String())
}

func (s *SignupServiceTestSuite) TestCannotSkipAhead() {
	draft, err := s.service.StartSignup(s.ctx)
	s.Require().NoError(err)

	_, err = s.service.AttachPaymentProof(s.ctx, draft.ID, dto.SubmitPaymentProofRequest{
		ProofURL: "uploads/bukti-transfer.pdf",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.ConfirmSignup(s.ctx, draft.ID, dto.ConfirmSignupRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SignupServiceTestSuite) TestReselectingPackageInvalidatesQuote() {
	draft := s.walkToConfirmation()

	draft, err := s.service.ConfirmSignup(s.ctx, draft.ID, dto.ConfirmSignupRequest{})
	s.Require().NoError(err)
	s.Require().NotNil(draft.Quote)

	draft, err = s.service.SelectPackage(s.ctx, draft.ID, dto.SelectPackageRequest{
		PackageID:    testutil.StandardPackage().ID,
		BillingCycle: types.BillingCycleYearly,
	})
	s.NoError(err)

	s.Nil(draft.Quote)
	s.Equal(testutil.StandardPackage().ID, draft.PackageID)
}

func (s *SignupServiceTestSuite) TestSubmitRegistrationIncomplete() {
	draft, err := s.service.StartSignup(s.ctx)
	s.Require().NoError(err)

	_, err = s.service.SelectPackage(s.ctx, draft.ID, dto.SelectPackageRequest{
		PackageID:    testutil.BasicPackage().ID,
		BillingCycle: types.BillingCycleMonthly,
	})
	s.Require().NoError(err)

	reg := testutil.CompleteRegistration(types.OrganizationTypeKomunitas, 600)
	reg.Email = ""

	_, err = s.service.SubmitRegistration(s.ctx, draft.ID, dto.SubmitRegistrationRequest{Registration: reg})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SignupServiceTestSuite) TestCompleteWithoutPaymentProof() {
	draft := s.walkToConfirmation()

	_, err := s.service.ConfirmSignup(s.ctx, draft.ID, dto.ConfirmSignupRequest{})
	s.Require().NoError(err)

	_, err = s.service.CompleteSignup(s.ctx, draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SignupServiceTestSuite) TestCompleteTwice() {
	draft := s.walkToConfirmation()

	_, err := s.service.ConfirmSignup(s.ctx, draft.ID, dto.ConfirmSignupRequest{})
	s.Require().NoError(err)

	_, err = s.service.AttachPaymentProof(s.ctx, draft.ID, dto.SubmitPaymentProofRequest{
		ProofURL: "uploads/bukti-transfer.pdf",
	})
	s.Require().NoError(err)

	_, err = s.service.CompleteSignup(s.ctx, draft.ID)
	s.Require().NoError(err)

	_, err = s.service.CompleteSignup(s.ctx, draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SignupServiceTestSuite) TestGetSignupNotFound() {
	_, err := s.service.GetSignup(s.ctx, "signup_tidak_ada")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
