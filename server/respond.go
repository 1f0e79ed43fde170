package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/logger"
)

// RespondWithError writes an error response and logs it once. AppErrors are
// rendered with their own status and flat body; anything else becomes an
// opaque INTERNAL_SERVER_ERROR so internals never leak to clients.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal("An unexpected error occurred").WithCause(err)
	}

	fields := logger.Fields(
		"code", string(appErr.Code),
		"status", appErr.HTTPStatus,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	if appErr.Cause != nil {
		fields["cause"] = appErr.Cause.Error()
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(appErr.Message, fields)
	} else {
		logger.Warn(appErr.Message, fields)
	}

	c.JSON(appErr.HTTPStatus, appErr.ToBody())
}

// AbortWithError writes an error response and stops the handler chain.
// Meant for middleware short-circuits.
func AbortWithError(c *gin.Context, err error) {
	RespondWithError(c, err)
	c.Abort()
}

// RespondOK writes a 200 response with the given JSON body.
func RespondOK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}
