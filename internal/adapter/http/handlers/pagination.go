package handlers

import (
	"strconv"

	"atelier_orders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// pageFromQuery reads ?page= and ?limit=. Bad or missing values fall back
// to the defaults of interfaces.NewPage.
func pageFromQuery(c *gin.Context) interfaces.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return interfaces.NewPage(page, limit)
}
