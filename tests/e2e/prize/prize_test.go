//go:build e2e

package prize_test

import (
	"net/http"
	"testing"
	"time"

	resdto "ruleta-server/internal/handler/dto/response"
	"ruleta-server/tests/common/httptest"
	"ruleta-server/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type prizeSuite struct {
	e2e.SharedSuite
	token string
}

func TestPrizeSuite(t *testing.T) {
	suite.Run(t, new(prizeSuite))
}

func (s *prizeSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		map[string]any{"password": e2e.AdminPassword}, "")
	var login resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &login)
	s.Require().NotEmpty(login.AccessToken)
	s.token = login.AccessToken
}

func (s *prizeSuite) issue(name string) resdto.PrizeResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prizes", map[string]any{"name": name}, "")
	var body resdto.PrizeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

func (s *prizeSuite) stats() resdto.StatsResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/stats", nil, s.token)
	var body resdto.StatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *prizeSuite) TestLifecycle() {
	s.Run("issue, validate, claim", func() {
		issued := s.issue("Coffee mug")
		s.Equal("active", issued.Status)
		s.Regexp(`^[0-9A-Z]{3}-[0-9A-Z]{2}-[0-9A-Z]$`, issued.Code)
		s.InDelta((24 * time.Hour).Milliseconds(), issued.RemainingMs, float64(time.Minute.Milliseconds()))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/prizes/"+issued.Code+"/validity", nil, "")
		var validity resdto.ValidityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &validity)
		s.True(validity.Valid)
		s.NotNil(validity.RemainingMs)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prizes/"+issued.Code+"/claim", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		// claiming again is still a success
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prizes/"+issued.Code+"/claim", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/prizes/"+issued.Code+"/validity", nil, "")
		var claimedValidity resdto.ValidityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &claimedValidity)
		s.False(claimedValidity.Valid)
		s.Nil(claimedValidity.RemainingMs)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/prizes/"+issued.Code, nil, "")
		var got resdto.PrizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("claimed", got.Status)
		s.True(got.Redemption.IsUsed)
	})

	s.Run("unknown code", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/prizes/ZZZ-ZZ-Z", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Prize not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prizes/ZZZ-ZZ-Z/claim", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Prize not found")
	})
}

func (s *prizeSuite) TestReportsFollowWrites() {
	s.Run("stats reflect every mutation", func() {
		before := s.stats()

		first := s.issue("Mug")
		s.issue("Cap")

		after := s.stats()
		s.Equal(before.Total+2, after.Total)
		s.Equal(before.Active+2, after.Active)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prizes/"+first.Code+"/claim", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		claimed := s.stats()
		s.Equal(after.Claimed+1, claimed.Claimed)
		s.Equal(after.Active-1, claimed.Active)
	})

	s.Run("list pages through active prizes", func() {
		for range 3 {
			s.issue("Pen")
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/prizes?status=active&size=2", nil, s.token)
		var page resdto.PrizePageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Equal(3, page.Total)
		s.Len(page.Items, 2)
	})

	s.Run("manual invalidation", func() {
		s.stats()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/cache/invalidate",
			map[string]any{"pattern": "^report:"}, s.token)
		var body resdto.InvalidateCacheResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.GreaterOrEqual(body.Removed, 1)
	})

	s.Run("compact with nothing expired", func() {
		s.issue("Mug")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/compact", nil, s.token)
		var body resdto.CompactResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0, body.Removed)
	})
}

func (s *prizeSuite) TestAdminRoutesRequireToken() {
	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/prizes"},
		{http.MethodPost, "/api/admin/compact"},
	} {
		s.Run(r.method+" "+r.path, func() {
			rec := httptest.PerformRequest(s.T(), s.Router, r.method, r.path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
		})
	}

	s.Run("wrong password", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]any{"password": "not-it"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid password")
	})
}
