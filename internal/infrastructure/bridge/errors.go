package bridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/infrastructure/host/memory"
	"github.com/bnema/spacesync/internal/logging"
)

// statusFor maps a domain error kind to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrSpaceNotFound),
		errors.Is(err, memory.ErrWindowNotFound),
		errors.Is(err, memory.ErrTabNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrLockTimeout),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, memory.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
	Expected  int64  `json:"expected_version,omitempty"`
	Current   int64  `json:"current_version,omitempty"`
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	body := errorBody{Error: err.Error(), Retryable: entity.IsRetryable(err)}

	var conflict *entity.VersionConflictError
	if errors.As(err, &conflict) {
		body.Expected = conflict.Expected
		body.Current = conflict.Current
	}
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", "1")
	}

	log := logging.FromContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Str("path", c.FullPath()).Msg("bridge request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Str("path", c.FullPath()).Msg("bridge request rejected")
	}
	c.AbortWithStatusJSON(status, body)
}
