package service

import (
	"context"
	"time"

	"github.com/sppg-platform/billing/internal/api/dto"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/subscription"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/types"
)

// SubscriptionService is the admin surface over subscriptions:
// creation, listing with filters, payment-proof intake and account
// activation.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) (*dto.ListSubscriptionsResponse, error)
	SubmitPaymentProof(ctx context.Context, id string, req dto.SubmitPaymentProofRequest) (*dto.SubscriptionResponse, error)
	ActivateSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	subscriptionRepo subscription.Repository
	catalogRepo      catalog.Repository
	pricingService   PricingService
	logger           *logger.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptionRepo subscription.Repository,
	catalogRepo catalog.Repository,
	pricingService PricingService,
	logger *logger.Logger,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		catalogRepo:      catalogRepo,
		pricingService:   pricingService,
		logger:           logger,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pkg, err := s.catalogRepo.Get(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricingService.CalculatePayment(ctx, dto.CalculatePaymentRequest{
		PackageID:        req.PackageID,
		BillingCycle:     req.BillingCycle,
		OrganizationType: req.OrganizationType,
		Registration:     req.Registration,
		PromotionCode:    req.PromotionCode,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &subscription.Subscription{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		PackageID:        pkg.ID,
		Tier:             pkg.Tier,
		OrganizationName: req.Registration.OrganizationName,
		OrganizationType: req.OrganizationType,
		BillingCycle:     req.BillingCycle,
		Status:           types.SubscriptionStatusPendingPayment,
		Registration:     req.Registration,
		Breakdown:        quote.Breakdown,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"tier", sub.Tier,
		"organization_type", sub.OrganizationType,
		"total_amount", quote.TotalAmount,
	)

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) (*dto.ListSubscriptionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	subs, err := s.subscriptionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.subscriptionRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		items = append(items, &dto.SubscriptionResponse{Subscription: sub})
	}

	return &dto.ListSubscriptionsResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.GetLimit(),
		Offset: filter.GetOffset(),
	}, nil
}

func (s *subscriptionService) SubmitPaymentProof(ctx context.Context, id string, req dto.SubmitPaymentProofRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.subscriptionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sub.Status != types.SubscriptionStatusPendingPayment {
		return nil, ierr.NewError("subscription is not awaiting payment").
			WithHintf("Payment proof can only be submitted while status is %s", types.SubscriptionStatusPendingPayment).
			WithReportableDetails(map[string]any{"status": sub.Status}).
			Mark(ierr.ErrInvalidOperation)
	}

	sub.PaymentProofURL = req.ProofURL
	sub.Status = types.SubscriptionStatusAwaitingVerification
	sub.UpdatedAt = time.Now().UTC()

	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ActivateSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sub.Status != types.SubscriptionStatusAwaitingVerification {
		return nil, ierr.NewError("subscription cannot be activated").
			WithHintf("Activation requires a verified payment proof and status %s", types.SubscriptionStatusAwaitingVerification).
			WithReportableDetails(map[string]any{"status": sub.Status}).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	periodEnd := sub.BillingCycle.Next(now, 1)

	sub.Status = types.SubscriptionStatusActive
	sub.ActivatedAt = &now
	sub.CurrentPeriodStart = &now
	sub.CurrentPeriodEnd = &periodEnd
	sub.UpdatedAt = now

	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Infow("activated subscription", "subscription_id", sub.ID)
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}
