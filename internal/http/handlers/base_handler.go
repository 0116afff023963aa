// README: Base handler utilities (JSON helpers, error taxonomy mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kottage/internal/ai"
	"kottage/internal/modules/address"
	"kottage/internal/modules/form"
	"kottage/internal/modules/profile"
	"kottage/internal/modules/schema"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors onto the HTTP surface.
// Anything unrecognized collapses to a plain 500 so raw transport or SQL
// detail never leaks to the caller.
func writeServiceError(c *gin.Context, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, ai.ErrInvalidInput),
		errors.Is(err, form.ErrBadRequest),
		errors.Is(err, address.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrForbidden):
		writeError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, profile.ErrNotFound), errors.Is(err, address.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, profile.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ai.ErrMalformedResponse):
		writeError(c, http.StatusBadGateway, "model returned an unusable response, please retry")
	case errors.Is(err, ai.ErrUpstreamUnavailable), errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusBadGateway, "upstream unavailable, please retry")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
