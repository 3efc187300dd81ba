package handlers

import (
	"net/http"

	request "atelier_orders/internal/adapter/http/dto/request"
	response "atelier_orders/internal/adapter/http/dto/response"
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RevisionHandler serves the revision ledger routes. Customer routes check
// order ownership through the order use case.
type RevisionHandler struct {
	usecase usecase.IRevisionUseCase
	orders  *OrderHandler
}

func NewRevisionHandler(uc usecase.IRevisionUseCase, orders usecase.IOrderUseCase) *RevisionHandler {
	return &RevisionHandler{usecase: uc, orders: NewOrderHandler(orders)}
}

func (h *RevisionHandler) RequestRevision(c *gin.Context) {
	var payload request.RevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	o, ok := h.orders.loadOwned(c)
	if !ok {
		return
	}
	rev, err := h.usecase.RequestRevision(c.Request.Context(), o.ID, payload.ToPatch())
	if err != nil {
		fail(c, "revision", err)
		return
	}
	log.WithFields(log.Fields{"order_id": o.ID, "revision_id": rev.ID, "revision_number": rev.RevisionNumber}).Info("[revision][handler] requested")
	c.JSON(http.StatusCreated, response.FromRevision(rev))
}

func (h *RevisionHandler) ListMyOrderRevisions(c *gin.Context) {
	o, ok := h.orders.loadOwned(c)
	if !ok {
		return
	}
	h.listByOrder(c, o.ID)
}

func (h *RevisionHandler) ListOrderRevisions(c *gin.Context) {
	h.listByOrder(c, c.Param("id"))
}

func (h *RevisionHandler) listByOrder(c *gin.Context, orderID string) {
	revs, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		fail(c, "revision", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevisions(revs))
}

func (h *RevisionHandler) ListMyRevisions(c *gin.Context) {
	p, err := h.usecase.ListByCustomer(c.Request.Context(), customerRef(c), pageFromQuery(c))
	if err != nil {
		fail(c, "revision", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevisionPage(p))
}

// ListRevisions lists every revision, or only pending ones with
// ?status=pending.
func (h *RevisionHandler) ListRevisions(c *gin.Context) {
	var (
		p   usecase.RevisionPage
		err error
	)
	switch c.Query("status") {
	case "":
		p, err = h.usecase.ListAll(c.Request.Context(), pageFromQuery(c))
	case string(entities.RevisionStatusPending):
		p, err = h.usecase.ListPending(c.Request.Context(), pageFromQuery(c))
	default:
		writeError(c, errInvalidRequest)
		return
	}
	if err != nil {
		fail(c, "revision", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevisionPage(p))
}

func (h *RevisionHandler) GetRevision(c *gin.Context) {
	rev, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "revision", err)
		return
	}
	if rev == nil {
		writeError(c, errRevisionNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromRevision(*rev))
}

func (h *RevisionHandler) SetStatus(c *gin.Context) {
	var payload request.RevisionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	rev, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.RevisionStatus(payload.Status), actorRef(c), payload.Notes)
	if err != nil {
		fail(c, "revision", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevision(rev))
}

func (h *RevisionHandler) MarkFeePaid(c *gin.Context) {
	rev, err := h.usecase.MarkFeePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "revision", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevision(rev))
}
