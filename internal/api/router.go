package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sppg-platform/billing/internal/config"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/rest/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	v1 "github.com/sppg-platform/billing/internal/api/v1"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Pricing      *v1.PricingHandler
	Package      *v1.PackageHandler
	Signup       *v1.SignupHandler
	Subscription *v1.SubscriptionHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Pricing routes
	pricing := router.Group("/pricing")
	{
		pricing.POST("/calculate", handlers.Pricing.CalculatePayment)
		pricing.POST("/schedule", handlers.Pricing.GeneratePaymentSchedule)
	}

	// Promotion routes
	promotions := router.Group("/promotions")
	{
		promotions.POST("/validate", handlers.Pricing.ValidatePromotionCode)
	}

	// Package catalog routes
	packages := router.Group("/packages")
	{
		packages.POST("", handlers.Package.CreatePackage)
		packages.GET("", handlers.Package.ListPackages)
		packages.GET("/:id", handlers.Package.GetPackage)
	}

	// Signup wizard routes
	signup := router.Group("/signup")
	{
		signup.POST("", handlers.Signup.StartSignup)
		signup.GET("/:id", handlers.Signup.GetSignup)
		signup.POST("/:id/package", handlers.Signup.SelectPackage)
		signup.POST("/:id/registration", handlers.Signup.SubmitRegistration)
		signup.POST("/:id/confirm", handlers.Signup.ConfirmSignup)
		signup.POST("/:id/payment-proof", handlers.Signup.AttachPaymentProof)
		signup.POST("/:id/complete", handlers.Signup.CompleteSignup)
	}

	// Subscription admin routes
	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Subscription.CreateSubscription)
		subscriptions.GET("", handlers.Subscription.ListSubscriptions)
		subscriptions.GET("/:id", handlers.Subscription.GetSubscription)
		subscriptions.POST("/:id/payment-proof", handlers.Subscription.SubmitPaymentProof)
		subscriptions.POST("/:id/activate", handlers.Subscription.ActivateSubscription)
	}
}
