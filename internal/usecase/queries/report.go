package queries

import (
	"context"
	"fmt"
	"sort"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/infra/cache"
	"ruleta-server/internal/pkg/clock"
)

// Keys for memoised reports. Every prize mutation drops everything under
// ReportKeyPrefix.
const (
	ReportKeyPrefix = "report:"
	statsKey        = ReportKeyPrefix + "stats"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

func pageKey(status prize.Status, page, size int) string {
	return fmt.Sprintf("%slist:%s:%d:%d", ReportKeyPrefix, status, page, size)
}

// ReportQueries serves the admin dashboard from the pattern cache so that a
// burst of identical requests computes the report once.
type ReportQueries interface {
	Stats(ctx context.Context) (*StatsView, error)
	Page(ctx context.Context, status prize.Status, page, size int) (*PageView, error)
}

type reportQueriesImpl struct {
	reader PrizeReader
	cache  *cache.Cache
	clock  clock.Clock
	policy prize.Policy
}

func NewReportQueries(reader PrizeReader, c *cache.Cache, clk clock.Clock, policy prize.Policy) ReportQueries {
	return &reportQueriesImpl{
		reader: reader,
		cache:  c,
		clock:  clk,
		policy: policy,
	}
}

func (q *reportQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	view, err := cache.GetOrGenerateAs(ctx, q.cache, statsKey, q.cache.DefaultTTL(), q.buildStats)
	if err != nil {
		return nil, err
	}
	// cache counters move on every call, so they are never part of the memoised value
	out := *view
	out.Cache = toCacheStatsView(q.cache.Stats())
	return &out, nil
}

func (q *reportQueriesImpl) Page(ctx context.Context, status prize.Status, page, size int) (*PageView, error) {
	if !status.IsValid() {
		return nil, prize.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return cache.GetOrGenerateAs(ctx, q.cache, pageKey(status, page, size), q.cache.DefaultTTL(),
		func(ctx context.Context) (*PageView, error) {
			return q.buildPage(ctx, status, page, size), nil
		})
}

func (q *reportQueriesImpl) buildStats(ctx context.Context) (*StatsView, error) {
	now := q.clock.Now()
	prizes := q.reader.FindAll(ctx)
	active, claimed, expired := prize.Partition(prizes, now, q.policy.TTL)

	view := &StatsView{
		Total:       len(prizes),
		Active:      len(active),
		Claimed:     len(claimed),
		Expired:     len(expired),
		ByName:      countByName(prizes),
		GeneratedAt: now,
	}
	if view.Total > 0 {
		view.ClaimRate = float64(view.Claimed) / float64(view.Total)
	}
	return view, nil
}

func (q *reportQueriesImpl) buildPage(ctx context.Context, status prize.Status, page, size int) *PageView {
	now := q.clock.Now()
	views := viewsWithStatus(q.reader.FindAll(ctx), status, now, q.policy)

	// (page-1)*size overflows for huge pages; those start past the end.
	start := len(views)
	if page-1 <= len(views)/size {
		start = min((page-1)*size, len(views))
	}
	end := min(start+size, len(views))

	return &PageView{
		Status:      status.String(),
		Page:        page,
		Size:        size,
		Total:       len(views),
		Items:       views[start:end],
		GeneratedAt: now,
	}
}

func countByName(prizes []*prize.Prize) []NameCountView {
	index := make(map[string]int)
	var out []NameCountView
	for _, p := range prizes {
		i, ok := index[p.Name()]
		if !ok {
			i = len(out)
			index[p.Name()] = i
			out = append(out, NameCountView{Name: p.Name()})
		}
		out[i].Issued++
		if p.Claimed() {
			out[i].Claimed++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Issued != out[j].Issued {
			return out[i].Issued > out[j].Issued
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func toCacheStatsView(s cache.Stats) CacheStatsView {
	return CacheStatsView{
		Entries:       s.Entries,
		Hits:          s.Hits,
		Misses:        s.Misses,
		Generations:   s.Generations,
		SharedWaits:   s.SharedWaits,
		Invalidations: s.Invalidations,
	}
}
