package api

import (
	"errors"
	"net/http"

	reqdto "ruleta-server/internal/handler/dto/request"
	resdto "ruleta-server/internal/handler/dto/response"
	"ruleta-server/internal/handler/httperr"
	"ruleta-server/internal/usecase/commands"
	"ruleta-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errPrizeNotFound = errors.New("prize not found")

type PrizeHandler struct {
	cmds commands.PrizeCommands
	q    queries.PrizeQueries
}

func NewPrizeHandler(cmds commands.PrizeCommands, q queries.PrizeQueries) *PrizeHandler {
	return &PrizeHandler{cmds: cmds, q: q}
}

// @Summary Issue prize
// @Description Issue a prize bound to a freshly generated code
// @Tags prizes
// @Accept json
// @Produce json
// @Param request body reqdto.IssuePrizeRequest true "Issue prize request"
// @Success 201 {object} resdto.PrizeResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /prizes [post]
func (h *PrizeHandler) Issue(c *gin.Context) {
	var req reqdto.IssuePrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	issued, err := h.cmds.Issue(c.Request.Context(), req.Name)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view := h.q.Describe(issued)
	res, err := resdto.FromPrizeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Header("Location", "/api/prizes/"+view.Code)
	c.JSON(http.StatusCreated, res)
}

// @Summary Get prize
// @Description Look a prize up by its code
// @Tags prizes
// @Produce json
// @Param code path string true "Prize code"
// @Success 200 {object} resdto.PrizeResponse
// @Failure 404 {object} httperr.Response
// @Router /prizes/{code} [get]
func (h *PrizeHandler) Get(c *gin.Context) {
	view, ok := h.q.FindByCode(c.Request.Context(), c.Param("code"))
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errPrizeNotFound, "Prize not found", nil)
		return
	}
	res, err := resdto.FromPrizeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check validity
// @Description Report whether a code can still be redeemed and how long it has left
// @Tags prizes
// @Produce json
// @Param code path string true "Prize code"
// @Success 200 {object} resdto.ValidityResponse
// @Router /prizes/{code}/validity [get]
func (h *PrizeHandler) Validity(c *gin.Context) {
	code := c.Param("code")
	valid := h.q.IsValid(c.Request.Context(), code)
	if !valid {
		// remaining time is only reported while the code can be redeemed
		c.JSON(http.StatusOK, resdto.NewValidityResponse(code, false, 0, false))
		return
	}
	remaining, ok := h.q.TimeToExpiry(c.Request.Context(), code)
	c.JSON(http.StatusOK, resdto.NewValidityResponse(code, valid, remaining, ok))
}

// @Summary Claim prize
// @Description Mark the prize bound to a code as claimed
// @Tags prizes
// @Produce json
// @Param code path string true "Prize code"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /prizes/{code}/claim [post]
func (h *PrizeHandler) Claim(c *gin.Context) {
	code := c.Param("code")
	claimed, err := h.cmds.Claim(c.Request.Context(), code)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	if !claimed {
		httperr.AbortWithError(c, http.StatusNotFound, errPrizeNotFound, "Prize not found", nil)
		return
	}
	c.JSON(http.StatusOK, &resdto.ClaimResponse{Code: code, Claimed: true})
}
