package response

import (
	"time"

	"ruleta-server/internal/pkg/ptr"
	"ruleta-server/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PrizeResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Code        string             `json:"code"`
	Status      string             `json:"status"`
	Claimed     bool               `json:"claimed"`
	CreatedAt   time.Time          `json:"created_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
	RemainingMs int64              `json:"remaining_ms"`
	Redemption  UniqueCodeResponse `json:"unique_code"`
}

type UniqueCodeResponse struct {
	Code      string    `json:"code"`
	PrizeID   int64     `json:"prize_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `json:"is_used"`
}

func FromPrizeView(v *queries.PrizeView) (*PrizeResponse, error) {
	res := &PrizeResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Redemption, &v.UniqueCode); err != nil {
		return nil, err
	}
	res.RemainingMs = v.Remaining.Milliseconds()
	return res, nil
}

func FromPrizeViews(views []*queries.PrizeView) ([]*PrizeResponse, error) {
	res := make([]*PrizeResponse, len(views))
	for i, v := range views {
		r, err := FromPrizeView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

type ValidityResponse struct {
	Code        string `json:"code"`
	Valid       bool   `json:"valid"`
	RemainingMs *int64 `json:"remaining_ms"`
}

func NewValidityResponse(code string, valid bool, remaining time.Duration, hasRemaining bool) *ValidityResponse {
	res := &ValidityResponse{Code: code, Valid: valid}
	if hasRemaining {
		res.RemainingMs = ptr.To(remaining.Milliseconds())
	}
	return res
}

type ClaimResponse struct {
	Code    string `json:"code"`
	Claimed bool   `json:"claimed"`
}
