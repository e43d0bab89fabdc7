package routes

import (
	"claimscope/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPayments  = "/payments"
)

func addEstimateRoutes(rg *gin.RouterGroup, h Handlers) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.Estimate.CreateEstimate)
		estimates.GET("/:estimate_id", h.Estimate.GetEstimate)
		estimates.DELETE("/:estimate_id", h.Estimate.DeleteEstimate)
		estimates.PATCH("/:estimate_id/status", h.Estimate.UpdateStatus)
		estimates.POST("/:estimate_id/recalculate", h.Estimate.RecalculateEstimate)
		estimates.POST("/:estimate_id/reprice", h.Estimate.RepriceEstimate)
		estimates.GET("/:estimate_id/export.xlsx", h.Export.ExportXLSX)
	}

	estimate := estimates.Group("/:estimate_id")
	{
		estimate.POST("/initialize", h.Hierarchy.InitializeHierarchy)

		estimate.POST("/structures", h.Hierarchy.CreateStructure)
		estimate.PATCH("/structures/:structure_id", h.Hierarchy.UpdateStructure)
		estimate.DELETE("/structures/:structure_id", h.Hierarchy.DeleteStructure)
		estimate.POST("/structures/:structure_id/areas", h.Hierarchy.CreateArea)
		estimate.DELETE("/areas/:area_id", h.Hierarchy.DeleteArea)

		estimate.POST("/areas/:area_id/zones", h.Hierarchy.CreateZone)
		estimate.PATCH("/zones/:zone_id", h.Hierarchy.UpdateZone)
		estimate.DELETE("/zones/:zone_id", h.Hierarchy.DeleteZone)
		estimate.POST("/zones/:zone_id/recalculate", h.Hierarchy.RecalcZoneDimensions)

		estimate.POST("/zones/:zone_id/missing-walls", h.Hierarchy.CreateMissingWall)
		estimate.DELETE("/missing-walls/:missing_wall_id", h.Hierarchy.DeleteMissingWall)
		estimate.POST("/zones/:zone_id/subrooms", h.Hierarchy.CreateSubroom)
		estimate.DELETE("/subrooms/:subroom_id", h.Hierarchy.DeleteSubroom)

		estimate.POST("/zones/:zone_id/line-items", h.LineItem.AddLineItem)
		estimate.POST("/zones/:zone_id/line-items/from-dimension", h.LineItem.AddLineItemFromDimension)
		estimate.PATCH("/line-items/:line_item_id", h.LineItem.UpdateLineItem)
		estimate.DELETE("/line-items/:line_item_id", h.LineItem.DeleteLineItem)

		estimate.PATCH("/line-items/:line_item_id/coverage", h.Coverage.UpdateLineItemCoverage)
		estimate.POST("/coverages", h.Coverage.CreateCoverage)
		estimate.GET("/coverages/line-items", h.Coverage.GetLineItemsByCoverage)

		estimate.POST("/coverages/:coverage_id/payments", h.ClaimPayment.IssueCoveragePayment)
		estimate.GET("/payments", h.ClaimPayment.ListPayments)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.ClaimPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
