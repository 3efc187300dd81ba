package handlers

import (
	"net/http"
	"strings"

	"atelier_orders/internal/usecase"
	"atelier_orders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidRequest   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingCustomer  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing customer identity", http.StatusUnauthorized)
	errMissingActor     = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing operator identity", http.StatusUnauthorized)
	errOrderNotFound    = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	errRevisionNotFound = pkg.NewDomainErrorSimple("REVISION_NOT_FOUND", "Revision not found", http.StatusNotFound)
	errProfileNotFound  = pkg.NewDomainErrorSimple("CLIENT_PROFILE_NOT_FOUND", "Client profile not found", http.StatusNotFound)
)

// leafCodes gives the sentinels clients branch on a stable code. Anything
// else is mapped by its taxonomy root.
var leafCodes = []struct {
	err  error
	code string
}{
	{usecase.ErrOrderNotFound, "ORDER_NOT_FOUND"},
	{usecase.ErrRevisionNotFound, "REVISION_NOT_FOUND"},
	{usecase.ErrClientProfileNotFound, "CLIENT_PROFILE_NOT_FOUND"},
	{usecase.ErrPaymentNotFound, "PAYMENT_NOT_FOUND"},
	{usecase.ErrAgreementRequired, "AGREEMENT_REQUIRED"},
	{usecase.ErrInvalidMeasurements, "INVALID_MEASUREMENTS"},
	{usecase.ErrInvalidPrice, "INVALID_PRICE"},
	{usecase.ErrInvalidDeliveryDate, "INVALID_DELIVERY_DATE"},
	{usecase.ErrInvalidOrderStatus, "INVALID_STATUS"},
	{usecase.ErrInvalidRevisionStatus, "INVALID_STATUS"},
	{usecase.ErrInvalidPhoto, "INVALID_PHOTO"},
	{usecase.ErrRevisionFeeNotRequired, "REVISION_FEE_NOT_REQUIRED"},
	{usecase.ErrNothingToPay, "NOTHING_TO_PAY"},
	{usecase.ErrGatewayPayerNotFound, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
	{usecase.ErrGatewayInvalidUsers, "PAYMENT_PROVIDER_INVALID_USERS"},
	{usecase.ErrRevisionTransition, "REVISION_TRANSITION_NOT_ALLOWED"},
	{usecase.ErrOrderDelivered, "ORDER_DELIVERED"},
	{usecase.ErrAlreadyPaid, "ALREADY_PAID"},
	{usecase.ErrSettledByBalance, "SETTLED_BY_BALANCE"},
	{usecase.ErrPaymentNotApproved, "PAYMENT_NOT_APPROVED"},
	{usecase.ErrUploadFailed, "UPLOAD_FAILED"},
	{usecase.ErrGatewayUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
}

// mapError converts a use case error into the HTTP error shape. Detail
// added with %w is kept for client-facing kinds and dropped otherwise.
func mapError(err error) *pkg.AppError {
	code := ""
	for _, lc := range leafCodes {
		if errors.Is(err, lc.err) {
			code = lc.code
			break
		}
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple(orDefault(code, "NOT_FOUND"), capitalise(err.Error()), http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple(orDefault(code, "INVALID_INPUT"), capitalise(err.Error()), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple(orDefault(code, "ILLEGAL_TRANSITION"), capitalise(err.Error()), http.StatusConflict)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainError(orDefault(code, "UPSTREAM_UNAVAILABLE"), "A dependent service is unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// fail logs err with the request's fields and writes the mapped response.
func fail(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	entry := log.WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
		"status": appErr.HTTPStatus,
	}).WithError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.Error("[" + area + "][handler] request failed")
	} else {
		entry.Info("[" + area + "][handler] request rejected")
	}
	writeError(c, appErr)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
