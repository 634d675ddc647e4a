package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sppg-platform/billing/internal/api/dto"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/service"
)

type SignupHandler struct {
	signupService service.SignupService
	logger        *logger.Logger
}

func NewSignupHandler(signupService service.SignupService, logger *logger.Logger) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
		logger:        logger,
	}
}

// @Summary Start a signup
// @Description Opens a new signup wizard draft
// @Tags Signup
// @Produce json
// @Success 201 {object} dto.SignupDraftResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup [post]
func (h *SignupHandler) StartSignup(c *gin.Context) {
	response, err := h.signupService.StartSignup(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a signup draft
// @Description Retrieves the current wizard state
// @Tags Signup
// @Produce json
// @Param id path string true "Signup ID"
// @Success 200 {object} dto.SignupDraftResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup/{id} [get]
func (h *SignupHandler) GetSignup(c *gin.Context) {
	response, err := h.signupService.GetSignup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Select a package
// @Description Sets the package and billing cycle of a draft
// @Tags Signup
// @Accept json
// @Produce json
// @Param id path string true "Signup ID"
// @Param request body dto.SelectPackageRequest true "Package selection"
// @Success 200 {object} dto.SignupDraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup/{id}/package [post]
func (h *SignupHandler) SelectPackage(c *gin.Context) {
	var req dto.SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.signupService.SelectPackage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Submit registration data
// @Description Fills the registration step of a draft
// @Tags Signup
// @Accept json
// @Produce json
// @Param id path string true "Signup ID"
// @Param request body dto.SubmitRegistrationRequest true "Registration data"
// @Success 200 {object} dto.SignupDraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup/{id}/registration [post]
func (h *SignupHandler) SubmitRegistration(c *gin.Context) {
	var req dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.signupService.SubmitRegistration(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Confirm the order
// @Description Takes a quote snapshot, optionally applying a promotion code
// @Tags Signup
// @Accept json
// @Produce json
// @Param id path string true "Signup ID"
// @Param request body dto.ConfirmSignupRequest true "Confirmation"
// @Success 200 {object} dto.SignupDraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup/{id}/confirm [post]
func (h *SignupHandler) ConfirmSignup(c *gin.Context) {
	var req dto.ConfirmSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.signupService.ConfirmSignup(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Attach a payment proof
// @Description Uploads the transfer receipt reference for the confirmed quote
// @Tags Signup
// @Accept json
// @Produce json
// @Param id path string true "Signup ID"
// @Param request body dto.SubmitPaymentProofRequest true "Payment proof"
// @Success 200 {object} dto.SignupDraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup/{id}/payment-proof [post]
func (h *SignupHandler) AttachPaymentProof(c *gin.Context) {
	var req dto.SubmitPaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.signupService.AttachPaymentProof(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Complete the signup
// @Description Converts the draft into a subscription awaiting verification
// @Tags Signup
// @Produce json
// @Param id path string true "Signup ID"
// @Success 200 {object} dto.SignupDraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /signup/{id}/complete [post]
func (h *SignupHandler) CompleteSignup(c *gin.Context) {
	response, err := h.signupService.CompleteSignup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
