package api

import (
	"net/http"
	"time"

	reqdto "ruleta-server/internal/handler/dto/request"
	resdto "ruleta-server/internal/handler/dto/response"
	"ruleta-server/internal/handler/httperr"
	"ruleta-server/internal/pkg/config"
	"ruleta-server/internal/pkg/cookie"
	"ruleta-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.AdminAuth
	cfg  config.Config
}

func NewAuthHandler(auth usecase.AdminAuth, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		cfg:  cfg,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, &resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description Clear the admin cookie; bearer tokens simply expire
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
