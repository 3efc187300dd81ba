package routes

import (
	"atelier_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

// addAdminRoutes registers operator routes. The acting operator comes from
// X-Actor-Ref.
func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	admin := rg.Group(PathAdmin, handlers.RequireActor())

	admin.GET("/stats", h.Orders.Stats)

	orders := admin.Group("/orders")
	{
		orders.POST("", h.Orders.CreateManualOrder)
		orders.GET("", h.Orders.ListOrders)
		orders.POST("/repair-history", h.Orders.RepairAllHistories)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PATCH("/:id/quote", h.Orders.Quote)
		orders.PATCH("/:id/delivery-date", h.Orders.Reschedule)
		orders.POST("/:id/deposit", h.Orders.ConfirmDeposit)
		orders.POST("/:id/final-payment", h.Orders.ConfirmFinalPayment)
		orders.PATCH("/:id/status", h.Orders.ChangeStatus)
		orders.POST("/:id/repair-history", h.Orders.RepairHistory)
		orders.GET("/:id/revisions", h.Revisions.ListOrderRevisions)
		orders.GET("/:id/payments", h.Payments.ListOrderPayments)
	}

	revisions := admin.Group("/revisions")
	{
		revisions.GET("", h.Revisions.ListRevisions)
		revisions.GET("/:id", h.Revisions.GetRevision)
		revisions.PATCH("/:id/status", h.Revisions.SetStatus)
		revisions.POST("/:id/fee-paid", h.Revisions.MarkFeePaid)
	}

	clients := admin.Group("/clients")
	{
		clients.GET("", h.Clients.ListProfiles)
		clients.GET("/lookup", h.Clients.FindByPhone)
		clients.GET("/:ref", h.Clients.GetProfile)
	}

	admin.GET("/payments/:id", h.Payments.GetPayment)
}
