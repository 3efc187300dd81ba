// Package routes assembles the gin engine.
package routes

import (
	"net/http"
	"time"

	_ "atelier_orders/docs"
	"atelier_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Orders    *handlers.OrderHandler
	Revisions *handlers.RevisionHandler
	Clients   *handlers.ClientProfileHandler
	Payments  *handlers.BillingPaymentHandler
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerRoutes(v1, h)
	addAdminRoutes(v1, h)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(log.Fields{"path": c.Request.URL.Path, "panic": recovered}).Error("[http][router] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("[http][router] request")
			return
		}
		entry.Debug("[http][router] request")
	}
}
