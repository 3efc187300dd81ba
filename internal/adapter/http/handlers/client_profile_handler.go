package handlers

import (
	"net/http"
	"strings"

	response "atelier_orders/internal/adapter/http/dto/response"
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientProfileHandler struct {
	usecase usecase.IClientProfileUseCase
}

func NewClientProfileHandler(uc usecase.IClientProfileUseCase) *ClientProfileHandler {
	return &ClientProfileHandler{usecase: uc}
}

func (h *ClientProfileHandler) GetMyProfile(c *gin.Context) {
	h.writeProfile(c, customerRef(c))
}

func (h *ClientProfileHandler) GetProfile(c *gin.Context) {
	h.writeProfile(c, c.Param("ref"))
}

func (h *ClientProfileHandler) writeProfile(c *gin.Context, ref string) {
	p, err := h.usecase.GetByCustomerRef(c.Request.Context(), ref)
	h.write(c, p, err)
}

// FindByPhone looks a profile up by ?phone=.
func (h *ClientProfileHandler) FindByPhone(c *gin.Context) {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.FindByPhone(c.Request.Context(), phone)
	h.write(c, p, err)
}

func (h *ClientProfileHandler) write(c *gin.Context, p *entities.ClientProfile, err error) {
	if err != nil {
		fail(c, "client_profile", err)
		return
	}
	if p == nil {
		writeError(c, errProfileNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromClientProfile(*p))
}

func (h *ClientProfileHandler) ListProfiles(c *gin.Context) {
	p, err := h.usecase.List(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		fail(c, "client_profile", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClientProfilePage(p))
}
