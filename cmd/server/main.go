package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/sppg-platform/billing/internal/api"
	"github.com/sppg-platform/billing/internal/cache"
	"github.com/sppg-platform/billing/internal/config"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/pricing"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/repository"
	"github.com/sppg-platform/billing/internal/service"
	"github.com/sppg-platform/billing/internal/validator"

	v1 "github.com/sppg-platform/billing/internal/api/v1"
)

// @title SPPG Billing API
// @version 1.0
// @description Subscription signup and pricing service for SPPG operators
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Pricing engine with production rule tables
			providePricingEngine,

			// Repositories
			repository.NewCatalogRepository,
			repository.NewPromotionRepository,
			repository.NewSubscriptionRepository,
			repository.NewSignupRepository,

			// Services
			service.NewPricingService,
			service.NewPackageService,
			service.NewSubscriptionService,
			service.NewSignupService,

			// Handlers and router
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			seedData,
			startServer,
		),
	)

	app.Run()
}

func providePricingEngine() *pricing.Engine {
	return pricing.NewEngine(pricing.DefaultConfig())
}

func provideHandlers(
	pricingService service.PricingService,
	packageService service.PackageService,
	signupService service.SignupService,
	subscriptionService service.SubscriptionService,
	logger *logger.Logger,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(logger),
		Pricing:      v1.NewPricingHandler(pricingService, logger),
		Package:      v1.NewPackageHandler(packageService, logger),
		Signup:       v1.NewSignupHandler(signupService, logger),
		Subscription: v1.NewSubscriptionHandler(subscriptionService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func seedData(
	catalogRepo catalog.Repository,
	promotionRepo promotion.Repository,
	log *logger.Logger,
) error {
	ctx := context.Background()

	if err := repository.SeedPackages(ctx, catalogRepo); err != nil {
		return err
	}

	if err := repository.SeedPromotions(ctx, promotionRepo); err != nil {
		return err
	}

	log.Info("Seeded package catalog and promotion codes")
	return nil
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server at %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
