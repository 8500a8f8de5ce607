package request

import (
	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/pkg/ptr"
	"ruleta-server/internal/usecase/queries"
)

type IssuePrizeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ListPrizesRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active claimed expired"`
	Page   *int   `form:"page" binding:"omitempty,min=1"`
	Size   *int   `form:"size" binding:"omitempty,min=1,max=100"`
}

// ToDomain defaults to the first page of active prizes.
func (r *ListPrizesRequest) ToDomain() (prize.Status, int, int, error) {
	status := prize.StatusActive
	if r.Status != "" {
		s, err := prize.NewStatus(r.Status)
		if err != nil {
			return "", 0, 0, err
		}
		status = s
	}
	return status, ptr.ValueOr(r.Page, 1), ptr.ValueOr(r.Size, queries.DefaultPageSize), nil
}

type InvalidateCacheRequest struct {
	Pattern string `json:"pattern" binding:"required,max=256"`
}
