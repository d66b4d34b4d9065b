package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

type TranscriptionHandler struct {
	service transcription.Service
	logger  *Logger.Logger
}

func NewTranscriptionHandler(service transcription.Service, logger *Logger.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{service: service, logger: logger}
}

func limitParam(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

// Latest handles GET /api/v1/transcriptions
func (h *TranscriptionHandler) Latest(c *gin.Context) {
	records, err := h.service.Latest(c.Request.Context(), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("listing transcriptions failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list transcriptions"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Search handles GET /api/v1/transcriptions/search
func (h *TranscriptionHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q parameter is required"})
		return
	}
	records, err := h.service.Search(c.Request.Context(), query, limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("searching transcriptions failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not search transcriptions"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Unprocessed handles GET /api/v1/transcriptions/unprocessed
func (h *TranscriptionHandler) Unprocessed(c *gin.Context) {
	records, err := h.service.Unprocessed(c.Request.Context(), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("listing unprocessed transcriptions failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list transcriptions"})
		return
	}
	c.JSON(http.StatusOK, records)
}
