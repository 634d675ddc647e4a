package service

import (
	"context"
	"time"

	"github.com/sppg-platform/billing/internal/api/dto"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/logger"
)

// PackageService manages the subscription package catalog
type PackageService interface {
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*dto.PackageResponse, error)
	GetPackage(ctx context.Context, id string) (*dto.PackageResponse, error)
	ListPackages(ctx context.Context) (*dto.ListPackagesResponse, error)
}

type packageService struct {
	catalogRepo catalog.Repository
	logger      *logger.Logger
}

// NewPackageService creates a new package service
func NewPackageService(catalogRepo catalog.Repository, logger *logger.Logger) PackageService {
	return &packageService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *packageService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pkg := req.ToPackage()
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if err := s.catalogRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.logger.Infow("created package", "package_id", pkg.ID, "tier", pkg.Tier)
	return dto.NewPackageResponse(pkg), nil
}

func (s *packageService) GetPackage(ctx context.Context, id string) (*dto.PackageResponse, error) {
	pkg, err := s.catalogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPackageResponse(pkg), nil
}

func (s *packageService) ListPackages(ctx context.Context) (*dto.ListPackagesResponse, error) {
	packages, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		items = append(items, dto.NewPackageResponse(pkg))
	}

	return &dto.ListPackagesResponse{Items: items, Total: len(items)}, nil
}
