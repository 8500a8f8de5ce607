package api

import (
	"net/http"

	reqdto "ruleta-server/internal/handler/dto/request"
	resdto "ruleta-server/internal/handler/dto/response"
	"ruleta-server/internal/handler/httperr"
	"ruleta-server/internal/usecase/commands"
	"ruleta-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	prizeCmds commands.PrizeCommands
	cacheCmds commands.CacheCommands
	reports   queries.ReportQueries
}

func NewAdminHandler(prizeCmds commands.PrizeCommands, cacheCmds commands.CacheCommands, reports queries.ReportQueries) *AdminHandler {
	return &AdminHandler{prizeCmds: prizeCmds, cacheCmds: cacheCmds, reports: reports}
}

// @Summary List prizes
// @Description Page through one status partition of the prize collection
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "active, claimed or expired" default(active)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} resdto.PrizePageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/prizes [get]
func (h *AdminHandler) ListPrizes(c *gin.Context) {
	var req reqdto.ListPrizesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	status, page, size, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}
	view, err := h.reports.Page(c.Request.Context(), status, page, size)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPageView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Collection statistics
// @Description Aggregate counts for the prize collection plus cache counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.reports.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromStatsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Compact prizes
// @Description Permanently remove unclaimed prizes past their validity window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CompactResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/compact [post]
func (h *AdminHandler) Compact(c *gin.Context) {
	removed, err := h.prizeCmds.Compact(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, &resdto.CompactResponse{Removed: removed})
}

// @Summary Invalidate cache
// @Description Drop every cache entry whose key matches a regular expression
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InvalidateCacheRequest true "Invalidation pattern"
// @Success 200 {object} resdto.InvalidateCacheResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/cache/invalidate [post]
func (h *AdminHandler) InvalidateCache(c *gin.Context) {
	var req reqdto.InvalidateCacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	removed, err := h.cacheCmds.Invalidate(c.Request.Context(), req.Pattern)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, &resdto.InvalidateCacheResponse{Pattern: req.Pattern, Removed: removed})
}
