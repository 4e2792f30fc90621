package server

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/client/square"
	"github.com/linguabill/lingua-api/internal/handlers"
	"github.com/linguabill/lingua-api/internal/logger"
	"github.com/linguabill/lingua-api/internal/services"
	"github.com/linguabill/lingua-api/internal/store/mongo"
)

// Handler Definitions
var (
	subscriptionHandler *handlers.SubscriptionHandler
	invoiceHandler      *handlers.InvoiceHandler
	paymentHandler      *handlers.PaymentHandler
	translationHandler  *handlers.TranslationHandler
	healthHandler       *handlers.HealthHandler
	overdueScheduler    *services.OverdueScheduler

	// Database
	mongoStore *mongo.Store
)

const languageCacheTTL = 30 * time.Minute

// InitializeHandlers connects to MongoDB and builds the service and handler
// graph from environment configuration.
func InitializeHandlers() {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		logger.Fatal("MONGODB_URI environment variable is required")
	}

	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "lingua"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	mongoStore, err = mongo.Connect(ctx, mongoURI, database)
	if err != nil {
		logger.Fatal("Unable to connect to MongoDB", zap.Error(err))
	}

	if err := mongoStore.Migrate(ctx); err != nil {
		logger.Fatal("Unable to create MongoDB indexes", zap.Error(err))
	}

	usageService := services.NewUsageService(mongoStore, logger.Log)
	invoiceService := services.NewInvoiceService(mongoStore, mongoStore, logger.Log)
	paymentService := services.NewPaymentService(mongoStore, mongoStore, logger.Log)
	translationService := services.NewTranslationService(
		mongoStore, services.StubTranslator{}, languageCacheTTL, logger.Log)

	emailService := services.NewEmailService(
		os.Getenv("RESEND_API_KEY"),
		getEnvOrDefault("EMAIL_FROM_ADDRESS", "billing@linguabill.io"),
		getEnvOrDefault("EMAIL_FROM_NAME", "LinguaBill"),
		logger.Log,
	)

	commonServices := handlers.NewCommonServices(
		mongoStore,
		usageService,
		invoiceService,
		paymentService,
		translationService,
		emailService,
	)

	// The square client is optional; without a token webhook payloads are
	// recorded as delivered.
	var squareClient *square.Client
	if token := os.Getenv("SQUARE_ACCESS_TOKEN"); token != "" {
		squareClient = square.NewClient(token)
		if baseURL := os.Getenv("SQUARE_BASE_URL"); baseURL != "" {
			squareClient = squareClient.WithBaseURL(baseURL)
		}
	}

	// API Handler initialization
	subscriptionHandler = handlers.NewSubscriptionHandler(commonServices)
	invoiceHandler = handlers.NewInvoiceHandler(commonServices)
	paymentHandler = handlers.NewPaymentHandler(commonServices, squareClient)
	translationHandler = handlers.NewTranslationHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(commonServices)

	overdueScheduler = services.NewOverdueScheduler(mongoStore, logger.Log)
}

// InitializeRoutes registers middleware, background jobs and all API routes.
func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Health check and metrics
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start the overdue-invoice sweep alongside the HTTP surface
	overdueScheduler.Start()

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Translations
		translations := v1.Group("/translations")
		{
			translations.GET("", translationHandler.ListTranslationRequests)
			translations.POST("/text", translationHandler.TranslateText)
			translations.POST("/file", translationHandler.TranslateFile)
		}
		v1.GET("/languages", translationHandler.ListLanguages)

		// Subscriptions and the usage ledger
		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", subscriptionHandler.ListSubscriptions)
			subscriptions.POST("", subscriptionHandler.CreateSubscription)
			subscriptions.GET("/:subscription_id", subscriptionHandler.GetSubscription)
			subscriptions.POST("/:subscription_id/usage-periods", subscriptionHandler.AddUsagePeriod)
			subscriptions.POST("/:subscription_id/usage", subscriptionHandler.RecordConsumption)
		}

		// Invoices and payment application
		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("/quarterly", invoiceHandler.GenerateQuarterlyInvoice)
			invoices.POST("/monthly", invoiceHandler.GenerateMonthlyInvoice)
			invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
			invoices.POST("/:invoice_id/send", invoiceHandler.SendInvoiceEmail)
			invoices.GET("/:invoice_id/payments", invoiceHandler.ListInvoicePayments)
			invoices.POST("/:invoice_id/payments", invoiceHandler.ApplyPayment)
			invoices.DELETE("/:invoice_id/payments/:payment_id", invoiceHandler.UnapplyPayment)
		}

		// Payments
		payments := v1.Group("/payments")
		{
			payments.POST("", paymentHandler.RecordPayment)
			payments.POST("/webhook", paymentHandler.HandleWebhook)
			payments.GET("/external/:external_id", paymentHandler.GetPaymentByExternalID)
			payments.GET("/:payment_id", paymentHandler.GetPayment)
			payments.POST("/:payment_id/refunds", paymentHandler.RecordRefund)
		}
	}
}

// Shutdown stops background work and closes the database connection.
func Shutdown(ctx context.Context) {
	if overdueScheduler != nil {
		overdueScheduler.Stop()
	}
	if mongoStore != nil {
		if err := mongoStore.Close(ctx); err != nil {
			logger.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
