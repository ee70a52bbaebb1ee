package routes

import (
	"reliant_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers    = "/customers"
	PathCatalogItems = "/catalog-items"
	PathQuotations   = "/quotations"
	PathModel        = "/model"
	PathPredictQuote = "/predict_quote"
)

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, quotationHandler *handlers.QuotationHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.GET("/:id/quotations", quotationHandler.ListCustomerQuotations)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalogItems)
	{
		catalog.POST("", catalogHandler.CreateCatalogItem)
		catalog.GET("", catalogHandler.ListCatalogItems)
		catalog.GET("/:id", catalogHandler.GetCatalogItem)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, paymentHandler *handlers.PaymentHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
		quotations.PATCH("/:id/accept", quotationHandler.AcceptQuotation)
		quotations.PATCH("/:id/reject", quotationHandler.RejectQuotation)
		quotations.PATCH("/:id/cancel", quotationHandler.CancelQuotation)

		quotations.POST("/:id/payments", paymentHandler.CreateDeposit)
		quotations.GET("/:id/payments", paymentHandler.ListPayments)
	}
}

func addPredictionRoutes(rg *gin.RouterGroup, predictionHandler *handlers.PredictionHandler) {
	rg.POST(PathPredictQuote, predictionHandler.PredictQuote)

	model := rg.Group(PathModel)
	{
		model.GET("", predictionHandler.GetModel)
		model.POST("/reload", predictionHandler.ReloadModel)
		model.POST("/train", predictionHandler.TrainModel)
	}
}
