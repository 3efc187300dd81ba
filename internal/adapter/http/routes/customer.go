package routes

import (
	"atelier_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMe = "/me"

// addCustomerRoutes registers routes acting on behalf of the customer named
// by X-Customer-Ref.
func addCustomerRoutes(rg *gin.RouterGroup, h Handlers) {
	me := rg.Group(PathMe, handlers.RequireCustomer())
	{
		me.GET("/profile", h.Clients.GetMyProfile)

		me.POST("/orders", h.Orders.SubmitOrder)
		me.GET("/orders", h.Orders.ListMyOrders)
		me.GET("/orders/:id", h.Orders.GetMyOrder)
		me.GET("/orders/:id/revisions", h.Revisions.ListMyOrderRevisions)
		me.POST("/orders/:id/revisions", h.Revisions.RequestRevision)
		me.POST("/orders/:id/payments/deposit", h.Payments.PayDeposit)
		me.POST("/orders/:id/payments/balance", h.Payments.PayBalance)

		me.GET("/revisions", h.Revisions.ListMyRevisions)
		me.POST("/revisions/:id/payments", h.Payments.PayRevisionFee)
	}
}
