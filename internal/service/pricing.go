package service

import (
	"context"
	"time"

	"github.com/sppg-platform/billing/internal/api/dto"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/pricing"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/logger"
)

// PricingService produces payment breakdowns, payment schedules and
// promotion code verdicts. Every call computes from scratch; nothing
// is cached between quotes.
type PricingService interface {
	CalculatePayment(ctx context.Context, req dto.CalculatePaymentRequest) (*dto.PaymentBreakdownResponse, error)
	GeneratePaymentSchedule(ctx context.Context, req dto.PaymentScheduleRequest) (*dto.PaymentScheduleResponse, error)
	ValidatePromotionCode(ctx context.Context, req dto.ValidatePromotionRequest) (*dto.ValidatePromotionResponse, error)
}

type pricingService struct {
	engine        *pricing.Engine
	catalogRepo   catalog.Repository
	promotionRepo promotion.Repository
	logger        *logger.Logger
}

// NewPricingService creates a new pricing service
func NewPricingService(
	engine *pricing.Engine,
	catalogRepo catalog.Repository,
	promotionRepo promotion.Repository,
	logger *logger.Logger,
) PricingService {
	return &pricingService{
		engine:        engine,
		catalogRepo:   catalogRepo,
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

func (s *pricingService) CalculatePayment(ctx context.Context, req dto.CalculatePaymentRequest) (*dto.PaymentBreakdownResponse, error) {
	input, err := s.buildCalculationInput(ctx, req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	breakdown, err := s.engine.Calculate(*input)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentBreakdownResponse{Breakdown: breakdown}, nil
}

func (s *pricingService) GeneratePaymentSchedule(ctx context.Context, req dto.PaymentScheduleRequest) (*dto.PaymentScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	input, err := s.buildCalculationInput(ctx, req.CalculatePaymentRequest, now)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.engine.Calculate(*input)
	if err != nil {
		return nil, err
	}

	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	schedule, err := s.engine.GenerateSchedule(breakdown, startDate, req.Periods)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentScheduleResponse{Schedule: schedule}, nil
}

func (s *pricingService) ValidatePromotionCode(ctx context.Context, req dto.ValidatePromotionRequest) (*dto.ValidatePromotionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	promo, err := s.promotionRepo.Get(ctx, req.Code)
	if err != nil {
		if ierr.IsNotFound(err) {
			return &dto.ValidatePromotionResponse{
				IsValid: false,
				Reason:  "Promotion code not found",
			}, nil
		}
		return nil, err
	}

	eval := promo.Evaluate(req.BaseAmount, req.OrganizationType, time.Now().UTC())
	if !eval.Eligible {
		return &dto.ValidatePromotionResponse{
			IsValid: false,
			Reason:  eval.Reason,
		}, nil
	}

	return &dto.ValidatePromotionResponse{
		IsValid:     true,
		Discount:    &eval.Amount,
		Description: promo.Description,
	}, nil
}

// buildCalculationInput resolves the package and optional promotion
// into an engine input. An unknown promotion code is not an error
// here; it simply contributes no discount, matching the engine's
// degrade-to-default behavior.
func (s *pricingService) buildCalculationInput(ctx context.Context, req dto.CalculatePaymentRequest, now time.Time) (*pricing.CalculationInput, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pkg, err := s.catalogRepo.Get(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	var promo *promotion.PromotionCode
	if req.PromotionCode != "" {
		promo, err = s.promotionRepo.Get(ctx, req.PromotionCode)
		if err != nil && !ierr.IsNotFound(err) {
			return nil, err
		}
	}

	var previous *catalog.Package
	if req.IsUpgrade && req.PreviousPackageID != "" {
		previous, err = s.catalogRepo.Get(ctx, req.PreviousPackageID)
		if err != nil {
			return nil, err
		}
	}

	return &pricing.CalculationInput{
		Package:          pkg,
		Registration:     req.Registration,
		BillingCycle:     req.BillingCycle,
		Promotion:        promo,
		OrganizationType: req.OrganizationType,
		IsUpgrade:        req.IsUpgrade,
		PreviousPackage:  previous,
		CycleAnchor:      req.CycleAnchor,
		Now:              now,
	}, nil
}
