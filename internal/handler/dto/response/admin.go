package response

import (
	"time"

	"ruleta-server/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PrizePageResponse struct {
	Status      string           `json:"status"`
	Page        int              `json:"page"`
	Size        int              `json:"size"`
	Total       int              `json:"total"`
	Items       []*PrizeResponse `json:"items"`
	GeneratedAt time.Time        `json:"generated_at"`
}

func FromPageView(v *queries.PageView) (*PrizePageResponse, error) {
	items, err := FromPrizeViews(v.Items)
	if err != nil {
		return nil, err
	}
	return &PrizePageResponse{
		Status:      v.Status,
		Page:        v.Page,
		Size:        v.Size,
		Total:       v.Total,
		Items:       items,
		GeneratedAt: v.GeneratedAt,
	}, nil
}

type StatsResponse struct {
	Total       int                 `json:"total"`
	Active      int                 `json:"active"`
	Claimed     int                 `json:"claimed"`
	Expired     int                 `json:"expired"`
	ClaimRate   float64             `json:"claim_rate"`
	ByName      []NameCountResponse `json:"by_name"`
	Cache       CacheStatsResponse  `json:"cache"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type NameCountResponse struct {
	Name    string `json:"name"`
	Issued  int    `json:"issued"`
	Claimed int    `json:"claimed"`
}

type CacheStatsResponse struct {
	Entries       int    `json:"entries"`
	Hits          uint64 `json:"hits"`
	Misses        uint64 `json:"misses"`
	Generations   uint64 `json:"generations"`
	SharedWaits   uint64 `json:"shared_waits"`
	Invalidations uint64 `json:"invalidations"`
}

func FromStatsView(v *queries.StatsView) (*StatsResponse, error) {
	res := &StatsResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.ByName == nil {
		res.ByName = []NameCountResponse{}
	}
	return res, nil
}

type CompactResponse struct {
	Removed int `json:"removed"`
}

type InvalidateCacheResponse struct {
	Pattern string `json:"pattern"`
	Removed int    `json:"removed"`
}
