package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sppg-platform/billing/internal/api/dto"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/service"
)

type PricingHandler struct {
	pricingService service.PricingService
	logger         *logger.Logger
}

func NewPricingHandler(pricingService service.PricingService, logger *logger.Logger) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// @Summary Calculate a payment breakdown
// @Description Computes a fully itemized quote for a package, billing cycle and signup context
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CalculatePaymentRequest true "Calculation request"
// @Success 200 {object} dto.PaymentBreakdownResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /pricing/calculate [post]
func (h *PricingHandler) CalculatePayment(c *gin.Context) {
	var req dto.CalculatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.pricingService.CalculatePayment(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Project a payment schedule
// @Description Projects future billing events from a fresh quote
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.PaymentScheduleRequest true "Schedule request"
// @Success 200 {object} dto.PaymentScheduleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /pricing/schedule [post]
func (h *PricingHandler) GeneratePaymentSchedule(c *gin.Context) {
	var req dto.PaymentScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.pricingService.GeneratePaymentSchedule(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Validate a promotion code
// @Description Checks promo code eligibility before it is applied to a quote
// @Tags Promotions
// @Accept json
// @Produce json
// @Param request body dto.ValidatePromotionRequest true "Validation request"
// @Success 200 {object} dto.ValidatePromotionResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /promotions/validate [post]
func (h *PricingHandler) ValidatePromotionCode(c *gin.Context) {
	var req dto.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.pricingService.ValidatePromotionCode(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
