package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ClearCache(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SearchHandler.ClearCache")
	defer span.End()

	c.JSON(http.StatusOK, h.service.ClearCache(ctx))
}
