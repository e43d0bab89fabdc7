package routes

import (
	"context"
	"fmt"
	"time"

	_ "claimscope/docs"
	request "claimscope/internal/adapter/http/dto/request"
	"claimscope/internal/adapter/http/handlers"
	"claimscope/internal/adapter/persistence/repository"
	"claimscope/internal/infrastructure/catalog"
	"claimscope/internal/infrastructure/config"
	"claimscope/internal/infrastructure/database"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/infrastructure/payments"
	"claimscope/internal/usecase"
	"claimscope/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Estimate     *handlers.EstimateHandler
	Hierarchy    *handlers.HierarchyHandler
	LineItem     *handlers.LineItemHandler
	Coverage     *handlers.CoverageHandler
	ClaimPayment *handlers.ClaimPaymentHandler
	Export       *handlers.ExportHandler
}

// Run wires the storage, catalog and payment adapters and serves the API until the server fails.
func Run(cfg config.Config) error {
	ctx := context.Background()

	h, closeFn, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	router := NewRouter(h)
	logger.Infof(ctx, "[server][routes] listening port=%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.DynamoDBEndpoint != "" {
		// Local endpoints start empty; provisioned tables are managed outside the service.
		if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
			return Handlers{}, nil, fmt.Errorf("ensure dynamodb tables: %w", err)
		}
	}

	pool, err := catalog.Connect(ctx, cfg.CatalogDSN)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("connect catalog: %w", err)
	}
	if cfg.CatalogMigrate {
		if err := catalog.Migrate(ctx, pool); err != nil {
			pool.Close()
			return Handlers{}, nil, fmt.Errorf("migrate catalog: %w", err)
		}
	}
	resolver := catalog.NewPostgresResolver(pool)

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	paymentRepo := repository.NewClaimPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		logger.Warnf(ctx, "[server][routes] mercado pago gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, resolver)
	paymentUseCase := usecase.NewClaimPaymentUseCase(paymentRepo, estimateRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	h := Handlers{
		Estimate:     handlers.NewEstimateHandler(estimateUseCase),
		Hierarchy:    handlers.NewHierarchyHandler(usecase.NewHierarchyUseCase(estimateRepo)),
		LineItem:     handlers.NewLineItemHandler(usecase.NewLineItemUseCase(estimateRepo, resolver)),
		Coverage:     handlers.NewCoverageHandler(usecase.NewCoverageUseCase(estimateRepo)),
		ClaimPayment: handlers.NewClaimPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
		Export:       handlers.NewExportHandler(estimateUseCase),
	}
	return h, pool.Close, nil
}

// NewRouter mounts the API under /v1 plus the swagger UI.
func NewRouter(h Handlers) *gin.Engine {
	if err := request.RegisterValidators(); err != nil {
		logger.Errorf(context.Background(), "[server][routes] register validators failed err=%v", err)
	}

	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h)
	addPaymentRoutes(v1, h.ClaimPayment)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(accessLog())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf(c.Request.Context(), "[server][routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infof(c.Request.Context(), "[http][access] method=%s path=%s status=%d latency=%s",
			c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
