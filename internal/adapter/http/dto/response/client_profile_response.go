package response

import (
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"
)

type ClientProfileResponse struct {
	entities.ClientProfile
}

func FromClientProfile(p entities.ClientProfile) ClientProfileResponse {
	return ClientProfileResponse{ClientProfile: p}
}

type ClientProfilePageResponse struct {
	Items []ClientProfileResponse `json:"items"`
	PageMeta
}

func FromClientProfilePage(p usecase.ClientProfilePage) ClientProfilePageResponse {
	items := make([]ClientProfileResponse, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, FromClientProfile(c))
	}
	return ClientProfilePageResponse{Items: items, PageMeta: newPageMeta(p.Page.Number, p.Page.Size, p.Total)}
}
