package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xpanvictor/jassist/internal/domains/routing"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

type RouteHandler struct {
	router *routing.Router
	logger *Logger.Logger
}

func NewRouteHandler(router *routing.Router, logger *Logger.Logger) *RouteHandler {
	return &RouteHandler{router: router, logger: logger}
}

// Route handles POST /api/v1/route: classify-style text/tag input routed
// through the same machinery the pipeline uses.
func (h *RouteHandler) Route(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	result := h.router.Route(c.Request.Context(), routing.Request{
		Text: req.Text,
		Tag:  req.Tag,
	})

	status := http.StatusOK
	if result.Status != routing.StatusSuccess {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}
