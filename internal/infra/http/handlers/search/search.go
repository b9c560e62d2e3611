package search

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	appsearch "github.com/homeglue/spotify-home-search/internal/app/services/search"
)

func (h *Handler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SearchHandler.Search")
	defer span.End()

	qType := c.Param("type")

	// The wildcard param keeps its leading slash, and the router hands
	// the query over still escaped.
	query := strings.TrimPrefix(c.Param("query"), "/")
	if decoded, err := url.QueryUnescape(query); err == nil {
		query = decoded
	}

	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("type", qType),
	)

	result, err := h.service.Search(ctx, query, qType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		status := statusFor(err)
		c.JSON(status, gin.H{"error": messageFor(err, status)})

		return
	}

	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, appsearch.ErrEmptyQuery),
		errors.Is(err, appsearch.ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, appsearch.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, appsearch.ErrNotConfigured),
		errors.Is(err, appsearch.ErrNotAvailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, appsearch.ErrClient),
		errors.Is(err, appsearch.ErrInvalidItem):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides unexpected failures behind a generic message; known
// failures surface their own wording, which carries the query and kind.
func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}

	return err.Error()
}
