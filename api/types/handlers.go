package types

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apperrors "github.com/killallgit/search-gateway/pkg/errors"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"

// SendError is the terminal failure stage shared by all routes. Any error
// becomes an *AppError; operator diagnostics are logged and the client gets
// only {"error": message} with the mapped status.
func SendError(c *gin.Context, err error) *apperrors.AppError {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}

	logFailure(c, appErr)

	c.AbortWithStatusJSON(appErr.GetHTTPCode(), ErrorResponse{Error: appErr.Message})
	return appErr
}

func logFailure(c *gin.Context, appErr *apperrors.AppError) {
	var event *zerolog.Event
	switch appErr.Code {
	case apperrors.ErrCodeBadRequest, apperrors.ErrCodeNotFound, apperrors.ErrCodeRateLimit:
		event = log.Info()
	default:
		event = log.Error()
	}

	event = event.
		Str("code", string(appErr.Code)).
		Int("status", appErr.GetHTTPCode()).
		Str("client_message", appErr.Message).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path)
	if id := c.GetString(RequestIDKey); id != "" {
		event = event.Str("request_id", id)
	}
	if len(appErr.Details) > 0 {
		event = event.Fields(appErr.Details)
	}
	if appErr.Cause != nil {
		event = event.Err(appErr.Cause)
	}
	event.Msg("request failed")
}
