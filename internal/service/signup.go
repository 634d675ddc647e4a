package service

import (
	"context"
	"time"

	"github.com/sppg-platform/billing/internal/api/dto"
	"github.com/sppg-platform/billing/internal/domain/signup"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/types"
)

// SignupService drives the multi-step subscription signup wizard.
// Each step validates its prerequisites; confirmation takes a fresh
// quote snapshot, and completion turns the draft into a subscription.
type SignupService interface {
	StartSignup(ctx context.Context) (*dto.SignupDraftResponse, error)
	GetSignup(ctx context.Context, id string) (*dto.SignupDraftResponse, error)
	SelectPackage(ctx context.Context, id string, req dto.SelectPackageRequest) (*dto.SignupDraftResponse, error)
	SubmitRegistration(ctx context.Context, id string, req dto.SubmitRegistrationRequest) (*dto.SignupDraftResponse, error)
	ConfirmSignup(ctx context.Context, id string, req dto.ConfirmSignupRequest) (*dto.SignupDraftResponse, error)
	AttachPaymentProof(ctx context.Context, id string, req dto.SubmitPaymentProofRequest) (*dto.SignupDraftResponse, error)
	CompleteSignup(ctx context.Context, id string) (*dto.SignupDraftResponse, error)
}

type signupService struct {
	signupRepo          signup.Repository
	pricingService      PricingService
	subscriptionService SubscriptionService
	logger              *logger.Logger
}

// NewSignupService creates a new signup service
func NewSignupService(
	signupRepo signup.Repository,
	pricingService PricingService,
	subscriptionService SubscriptionService,
	logger *logger.Logger,
) SignupService {
	return &signupService{
		signupRepo:          signupRepo,
		pricingService:      pricingService,
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

func (s *signupService) StartSignup(ctx context.Context) (*dto.SignupDraftResponse, error) {
	now := time.Now().UTC()
	draft := &signup.Draft{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SIGNUP),
		CurrentStep: types.SignupStepPackageSelection,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.signupRepo.Create(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.SignupDraftResponse{Draft: draft}, nil
}

func (s *signupService) GetSignup(ctx context.Context, id string) (*dto.SignupDraftResponse, error) {
	draft, err := s.signupRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SignupDraftResponse{Draft: draft}, nil
}

func (s *signupService) SelectPackage(ctx context.Context, id string, req dto.SelectPackageRequest) (*dto.SignupDraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.signupRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	draft.PackageID = req.PackageID
	draft.BillingCycle = req.BillingCycle
	// Changing the package invalidates any previously confirmed quote
	draft.Quote = nil
	draft.Advance(types.SignupStepPackageSelection)
	draft.UpdatedAt = time.Now().UTC()

	if err := s.signupRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.SignupDraftResponse{Draft: draft}, nil
}

func (s *signupService) SubmitRegistration(ctx context.Context, id string, req dto.SubmitRegistrationRequest) (*dto.SignupDraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.signupRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := draft.EnsureStep(types.SignupStepRegistration); err != nil {
		return nil, err
	}

	draft.Registration = req.Registration
	draft.Quote = nil
	draft.Advance(types.SignupStepRegistration)
	draft.UpdatedAt = time.Now().UTC()

	if err := s.signupRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.SignupDraftResponse{Draft: draft}, nil
}

func (s *signupService) ConfirmSignup(ctx context.Context, id string, req dto.ConfirmSignupRequest) (*dto.SignupDraftResponse, error) {
	draft, err := s.signupRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := draft.EnsureStep(types.SignupStepConfirmation); err != nil {
		return nil, err
	}

	if draft.Registration == nil {
		return nil, ierr.NewError("registration is missing").
			WithHint("Complete the registration step first").
			Mark(ierr.ErrInvalidOperation)
	}

	quote, err := s.pricingService.CalculatePayment(ctx, dto.CalculatePaymentRequest{
		PackageID:        draft.PackageID,
		BillingCycle:     draft.BillingCycle,
		OrganizationType: draft.Registration.OrganizationType,
		Registration:     draft.Registration,
		PromotionCode:    req.PromotionCode,
	})
	if err != nil {
		return nil, err
	}

	draft.PromotionCode = req.PromotionCode
	draft.Quote = quote.Breakdown
	draft.Advance(types.SignupStepConfirmation)
	draft.UpdatedAt = time.Now().UTC()

	if err := s.signupRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.SignupDraftResponse{Draft: draft}, nil
}

func (s *signupService) AttachPaymentProof(ctx context.Context, id string, req dto.SubmitPaymentProofRequest) (*dto.SignupDraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.signupRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := draft.EnsureStep(types.SignupStepPayment); err != nil {
		return nil, err
	}

	if draft.Quote == nil {
		return nil, ierr.NewError("quote is missing").
			WithHint("Confirm the order before uploading a payment proof").
			Mark(ierr.ErrInvalidOperation)
	}

	draft.PaymentProofURL = req.ProofURL
	draft.Advance(types.SignupStepPayment)
	draft.UpdatedAt = time.Now().UTC()

	if err := s.signupRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	return &dto.SignupDraftResponse{Draft: draft}, nil
}

func (s *signupService) CompleteSignup(ctx context.Context, id string) (*dto.SignupDraftResponse, error) {
	draft, err := s.signupRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := draft.EnsureStep(types.SignupStepActivation); err != nil {
		return nil, err
	}

	if draft.SubscriptionID != "" {
		return nil, ierr.NewError("signup already completed").
			WithHint("This signup has already been completed").
			Mark(ierr.ErrInvalidOperation)
	}

	if draft.PaymentProofURL == "" {
		return nil, ierr.NewError("payment proof is missing").
			WithHint("Upload a payment proof before completing signup").
			Mark(ierr.ErrInvalidOperation)
	}

	sub, err := s.subscriptionService.CreateSubscription(ctx, dto.CreateSubscriptionRequest{
		PackageID:        draft.PackageID,
		BillingCycle:     draft.BillingCycle,
		OrganizationType: draft.Registration.OrganizationType,
		Registration:     draft.Registration,
		PromotionCode:    draft.PromotionCode,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.subscriptionService.SubmitPaymentProof(ctx, sub.ID, dto.SubmitPaymentProofRequest{
		ProofURL: draft.PaymentProofURL,
	}); err != nil {
		return nil, err
	}

	draft.SubscriptionID = sub.ID
	draft.UpdatedAt = time.Now().UTC()

	if err := s.signupRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Infow("completed signup", "signup_id", draft.ID, "subscription_id", sub.ID)
	return &dto.SignupDraftResponse{Draft: draft}, nil
}
