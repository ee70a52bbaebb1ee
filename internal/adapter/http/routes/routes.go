package routes

import (
	"context"
	"errors"
	"net/http"
	_ "reliant_crm/docs"
	"reliant_crm/internal/adapter/http/handlers"
	"reliant_crm/internal/adapter/persistence"
	"reliant_crm/internal/config"
	"reliant_crm/internal/estimation"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/infrastructure/payments"
	"reliant_crm/internal/usecase"
	"reliant_crm/internal/usecase/interfaces"
	"reliant_crm/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Customers  *handlers.CustomerHandler
	Catalog    *handlers.CatalogHandler
	Quotations *handlers.QuotationHandler
	Prediction *handlers.PredictionHandler
	Payments   *handlers.PaymentHandler
}

// Run wires storage, use cases and handlers from cfg and serves until the
// listener fails.
func Run(cfg config.Config, log *logger.Logger) error {
	log = logger.OrNop(log)
	ctx := context.Background()

	stores, err := persistence.Open(ctx, cfg, log)
	if err != nil {
		return err
	}

	h, prediction := buildHandlers(cfg, stores, log)

	// A missing model only disables /predict_quote until a reload or train.
	if a, err := prediction.ReloadModel(ctx); err != nil {
		if errors.Is(err, estimation.ErrArtifactNotFound) {
			log.Warn("no price model stored yet; estimates unavailable", "store", cfg.Model.Store)
		} else {
			log.Error("price model not loaded", "error", err)
		}
	} else {
		log.Info("price model loaded", "artifact_id", a.ID, "schema_id", a.SchemaID)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, log)
	log.Info("http server starting", "port", cfg.Port)
	return router.Run(":" + cfg.Port)
}

func buildHandlers(cfg config.Config, s *persistence.Stores, log *logger.Logger) (Handlers, *usecase.PredictionUseCase) {
	customerUseCase := usecase.NewCustomerUseCase(s.Customers, log)
	catalogUseCase := usecase.NewCatalogUseCase(s.Catalog, log)
	quotationUseCase := usecase.NewQuotationUseCase(s.Quotations, s.Customers, s.Catalog, log)

	handle := estimation.NewArtifactHandle()
	predictor := estimation.NewPredictor(handle, log)
	trainer := estimation.NewTrainer(s.Quotations, s.Artifacts, persistence.TrainerOptions(cfg.Model), log)
	predictionUseCase := usecase.NewPredictionUseCase(predictor, s.Artifacts, trainer, log)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.MockMode, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", "error", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewQuotationPaymentUseCase(s.Payments, s.Quotations, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.Payments.MockMode,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, log)

	return Handlers{
		Customers:  handlers.NewCustomerHandler(customerUseCase),
		Catalog:    handlers.NewCatalogHandler(catalogUseCase),
		Quotations: handlers.NewQuotationHandler(quotationUseCase),
		Prediction: handlers.NewPredictionHandler(predictionUseCase),
		Payments:   handlers.NewPaymentHandler(paymentUseCase, cfg.Payments.MockMode, log),
	}, predictionUseCase
}

// NewRouter mounts the swagger UI and every /v1 route.
func NewRouter(h Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger.OrNop(log).Component("http"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerRoutes(v1, h.Customers, h.Quotations)
	addCatalogRoutes(v1, h.Catalog)
	addQuotationRoutes(v1, h.Quotations, h.Payments)
	addPredictionRoutes(v1, h.Prediction)
	return router
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	log = logger.OrNop(log)
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}
