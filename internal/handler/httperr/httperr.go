package httperr

import (
	"net/http"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

var usecaseErrors = []mapping{
	{target: errs.ErrInvalidPrizeName, status: http.StatusBadRequest, msg: "Invalid prize name"},
	{target: errs.ErrInvalidPattern, status: http.StatusBadRequest, msg: "Invalid pattern"},
	{target: prize.ErrInvalidStatus, status: http.StatusBadRequest, msg: "Invalid status"},
	{target: errs.ErrInvalidCredentials, status: http.StatusUnauthorized, msg: "Invalid password"},
	{target: errs.ErrStorageUnavailable, status: http.StatusServiceUnavailable, msg: "Storage unavailable"},
}

// AbortWithUsecaseError maps marked usecase errors to a status; anything
// unrecognised is an internal error.
func AbortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
