package response

import (
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"

	"github.com/shopspring/decimal"
)

// OrderResponse is the stored order plus the derived balance due.
type OrderResponse struct {
	entities.Order
	BalanceDue decimal.Decimal `json:"balance_due" swaggertype:"string"`
}

func FromOrder(o entities.Order) OrderResponse {
	if o.History == nil {
		o.History = []string{}
	}
	return OrderResponse{Order: o, BalanceDue: o.BalanceDue()}
}

// PageMeta describes a page of a listing.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func newPageMeta(page, limit, total int) PageMeta {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

type OrderPageResponse struct {
	Items []OrderResponse `json:"items"`
	PageMeta
}

func FromOrderPage(p usecase.OrderPage) OrderPageResponse {
	items := make([]OrderResponse, 0, len(p.Items))
	for _, o := range p.Items {
		items = append(items, FromOrder(o))
	}
	return OrderPageResponse{Items: items, PageMeta: newPageMeta(p.Page.Number, p.Page.Size, p.Total)}
}
