package response

import (
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"
)

type RevisionResponse struct {
	entities.Revision
}

func FromRevision(r entities.Revision) RevisionResponse {
	return RevisionResponse{Revision: r}
}

func FromRevisions(rs []entities.Revision) []RevisionResponse {
	out := make([]RevisionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRevision(r))
	}
	return out
}

type RevisionPageResponse struct {
	Items []RevisionResponse `json:"items"`
	PageMeta
}

func FromRevisionPage(p usecase.RevisionPage) RevisionPageResponse {
	return RevisionPageResponse{Items: FromRevisions(p.Items), PageMeta: newPageMeta(p.Page.Number, p.Page.Size, p.Total)}
}
