package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity headers are set by the authenticating proxy in front of the
// service.
const (
	HeaderCustomerRef = "X-Customer-Ref"
	HeaderActorRef    = "X-Actor-Ref"

	ctxCustomerRef = "customer_ref"
	ctxActorRef    = "actor_ref"
)

// RequireCustomer rejects requests without a customer reference.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := strings.TrimSpace(c.GetHeader(HeaderCustomerRef))
		if ref == "" {
			writeError(c, errMissingCustomer)
			return
		}
		c.Set(ctxCustomerRef, ref)
		c.Next()
	}
}

// RequireActor rejects requests without an operator reference.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := strings.TrimSpace(c.GetHeader(HeaderActorRef))
		if ref == "" {
			writeError(c, errMissingActor)
			return
		}
		c.Set(ctxActorRef, ref)
		c.Next()
	}
}

func customerRef(c *gin.Context) string { return c.GetString(ctxCustomerRef) }

func actorRef(c *gin.Context) string { return c.GetString(ctxActorRef) }
