package queries

import "time"

// PrizeView is a prize evaluated at query time
type PrizeView struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Code       string         `json:"code"`
	Status     string         `json:"status"`
	Claimed    bool           `json:"claimed"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
	Remaining  time.Duration  `json:"remaining"`
	UniqueCode UniqueCodeView `json:"unique_code"`
}

// UniqueCodeView is the redemption view of a prize code
type UniqueCodeView struct {
	Code      string    `json:"code"`
	PrizeID   int64     `json:"prize_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `json:"is_used"`
}

// StatsView aggregates the collection for the reporting dashboard
type StatsView struct {
	Total       int             `json:"total"`
	Active      int             `json:"active"`
	Claimed     int             `json:"claimed"`
	Expired     int             `json:"expired"`
	ClaimRate   float64         `json:"claim_rate"`
	ByName      []NameCountView `json:"by_name"`
	Cache       CacheStatsView  `json:"cache"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type NameCountView struct {
	Name    string `json:"name"`
	Issued  int    `json:"issued"`
	Claimed int    `json:"claimed"`
}

type CacheStatsView struct {
	Entries       int    `json:"entries"`
	Hits          uint64 `json:"hits"`
	Misses        uint64 `json:"misses"`
	Generations   uint64 `json:"generations"`
	SharedWaits   uint64 `json:"shared_waits"`
	Invalidations uint64 `json:"invalidations"`
}

// PageView is one page of a status partition
type PageView struct {
	Status      string       `json:"status"`
	Page        int          `json:"page"`
	Size        int          `json:"size"`
	Total       int          `json:"total"`
	Items       []*PrizeView `json:"items"`
	GeneratedAt time.Time    `json:"generated_at"`
}
