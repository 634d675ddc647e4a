package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sppg-platform/billing/internal/api/dto"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/service"
)

type PackageHandler struct {
	packageService service.PackageService
	logger         *logger.Logger
}

func NewPackageHandler(packageService service.PackageService, logger *logger.Logger) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		logger:         logger,
	}
}

// @Summary Create a package
// @Description Creates a subscription package in the catalog
// @Tags Packages
// @Accept json
// @Produce json
// @Param package body dto.CreatePackageRequest true "Package request"
// @Success 201 {object} dto.PackageResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.packageService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a package by ID
// @Description Retrieves a catalog package
// @Tags Packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("package ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.packageService.GetPackage(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List published packages
// @Description Lists the packages offered during signup
// @Tags Packages
// @Produce json
// @Success 200 {object} dto.ListPackagesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	response, err := h.packageService.ListPackages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
