package converter

import (
	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/pkg/clock"
)

// PrizeRecord is the persisted shape of a prize inside the collection snapshot.
type PrizeRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CreatedAt int64  `json:"createdAt"` // epoch ms
	Claimed   bool   `json:"claimed"`
}

func PrizeToRecord(p *prize.Prize) PrizeRecord {
	return PrizeRecord{
		ID:        p.ID(),
		Name:      p.Name(),
		Code:      p.Code().String(),
		CreatedAt: clock.Millis(p.CreatedAt()),
		Claimed:   p.Claimed(),
	}
}

func PrizeFromRecord(r PrizeRecord) *prize.Prize {
	return prize.ReconstructPrize(r.ID, r.Name, prize.Code(r.Code), clock.FromMillis(r.CreatedAt), r.Claimed)
}

func PrizesToRecords(prizes []*prize.Prize) []PrizeRecord {
	records := make([]PrizeRecord, 0, len(prizes))
	for _, p := range prizes {
		records = append(records, PrizeToRecord(p))
	}
	return records
}

func PrizesFromRecords(records []PrizeRecord) []*prize.Prize {
	prizes := make([]*prize.Prize, 0, len(records))
	for _, r := range records {
		prizes = append(prizes, PrizeFromRecord(r))
	}
	return prizes
}
