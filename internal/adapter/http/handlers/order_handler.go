package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	request "atelier_orders/internal/adapter/http/dto/request"
	response "atelier_orders/internal/adapter/http/dto/response"
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"
	"atelier_orders/internal/usecase/interfaces"
	"atelier_orders/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const maxPhotoBytes = 10 << 20

var errPhotoTooLarge = pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Inspiration photo exceeds 10 MB", http.StatusRequestEntityTooLarge)

// OrderHandler serves the customer and operator order routes.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SubmitOrder creates an order for the calling customer. It accepts a JSON
// body, or a multipart form with the JSON in "payload" and an optional
// "photo" file.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var (
		payload request.OrderSubmissionRequest
		photo   []byte
	)
	if c.ContentType() == "multipart/form-data" {
		if err := json.Unmarshal([]byte(c.PostForm("payload")), &payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		var appErr *pkg.AppError
		if photo, appErr = readPhoto(c); appErr != nil {
			writeError(c, appErr)
			return
		}
	} else if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	o, err := h.usecase.SubmitOrder(c.Request.Context(), customerRef(c), payload.ToSubmission(), photo)
	if err != nil {
		fail(c, "order", err)
		return
	}
	log.WithFields(log.Fields{"order_id": o.ID, "customer_ref": o.CustomerRef}).Info("[order][handler] submitted")
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func readPhoto(c *gin.Context) ([]byte, *pkg.AppError) {
	fh, err := c.FormFile("photo")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, errInvalidRequest
	}
	if fh.Size > maxPhotoBytes {
		return nil, errPhotoTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errInvalidRequest
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		return nil, errInvalidRequest
	}
	if len(b) > maxPhotoBytes {
		return nil, errPhotoTooLarge
	}
	return b, nil
}

// CreateManualOrder records a walk-in order entered by an operator.
func (h *OrderHandler) CreateManualOrder(c *gin.Context) {
	var payload request.OrderSubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.CreateManualOrder(c.Request.Context(), actorRef(c), payload.ToSubmission())
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// GetMyOrder returns one of the caller's orders. Orders of other customers
// are reported as not found.
func (h *OrderHandler) GetMyOrder(c *gin.Context) {
	o, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(*o))
}

func (h *OrderHandler) loadOwned(c *gin.Context) (*entities.Order, bool) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "order", err)
		return nil, false
	}
	if o == nil || o.CustomerRef != customerRef(c) {
		writeError(c, errOrderNotFound)
		return nil, false
	}
	return o, true
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	p, err := h.usecase.ListByCustomer(c.Request.Context(), customerRef(c), pageFromQuery(c))
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(p))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "order", err)
		return
	}
	if o == nil {
		writeError(c, errOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(*o))
}

// ListOrders supports ?status=, ?statuses=a,b, ?customer_ref=, ?rush=true,
// ?delivery_from= and ?delivery_to= (RFC 3339 or YYYY-MM-DD).
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, ok := orderFilterFromQuery(c)
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.List(c.Request.Context(), filter, pageFromQuery(c))
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(p))
}

func orderFilterFromQuery(c *gin.Context) (interfaces.OrderFilter, bool) {
	f := interfaces.OrderFilter{
		Status:      entities.OrderStatus(strings.TrimSpace(c.Query("status"))),
		CustomerRef: strings.TrimSpace(c.Query("customer_ref")),
		RushOnly:    c.Query("rush") == "true",
	}
	if raw := c.Query("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Statuses = append(f.Statuses, entities.OrderStatus(s))
			}
		}
	}
	for _, q := range []struct {
		key string
		dst **time.Time
	}{{"delivery_from", &f.DeliveryFrom}, {"delivery_to", &f.DeliveryTo}} {
		raw := c.Query(q.key)
		if raw == "" {
			continue
		}
		t, err := parseDate(raw)
		if err != nil {
			return interfaces.OrderFilter{}, false
		}
		*q.dst = &t
	}
	return f, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

func (h *OrderHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.Quote(c.Request.Context(), c.Param("id"), payload.BasePrice, payload.DeliveryDate)
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) Reschedule(c *gin.Context) {
	var payload request.RescheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.Reschedule(c.Request.Context(), c.Param("id"), payload.DeliveryDate)
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) ConfirmDeposit(c *gin.Context) {
	o, err := h.usecase.ConfirmDeposit(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) ConfirmFinalPayment(c *gin.Context) {
	o, err := h.usecase.ConfirmFinalPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status), actorRef(c))
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) Stats(c *gin.Context) {
	s, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *OrderHandler) RepairHistory(c *gin.Context) {
	o, err := h.usecase.RepairHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) RepairAllHistories(c *gin.Context) {
	n, err := h.usecase.RepairAllHistories(c.Request.Context())
	if err != nil {
		fail(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repaired": n})
}
