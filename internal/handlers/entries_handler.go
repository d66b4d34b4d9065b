package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xpanvictor/jassist/internal/domains/accounts"
	"github.com/xpanvictor/jassist/internal/domains/calendar"
	"github.com/xpanvictor/jassist/internal/domains/contacts"
	"github.com/xpanvictor/jassist/internal/domains/diary"
	"github.com/xpanvictor/jassist/internal/domains/entities"
	"github.com/xpanvictor/jassist/internal/domains/todo"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

// EntriesHandler exposes read access over the category stores.
type EntriesHandler struct {
	diary    diary.Service
	todo     todo.Service
	calendar calendar.Service
	accounts accounts.Service
	contacts contacts.Service
	entities entities.Service
	logger   *Logger.Logger
}

func NewEntriesHandler(
	diarySvc diary.Service,
	todoSvc todo.Service,
	calendarSvc calendar.Service,
	accountsSvc accounts.Service,
	contactsSvc contacts.Service,
	entitiesSvc entities.Service,
	logger *Logger.Logger,
) *EntriesHandler {
	return &EntriesHandler{
		diary:    diarySvc,
		todo:     todoSvc,
		calendar: calendarSvc,
		accounts: accountsSvc,
		contacts: contactsSvc,
		entities: entitiesSvc,
		logger:   logger,
	}
}

// Diary handles GET /api/v1/diary
func (h *EntriesHandler) Diary(c *gin.Context) {
	entries, err := h.diary.Latest(c.Request.Context(), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("listing diary entries failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list diary entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Todos handles GET /api/v1/todos
func (h *EntriesHandler) Todos(c *gin.Context) {
	tasks, err := h.todo.Pending(c.Request.Context(), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("listing tasks failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Events handles GET /api/v1/events
func (h *EntriesHandler) Events(c *gin.Context) {
	events, err := h.calendar.Upcoming(c.Request.Context(), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("listing events failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Accounts handles GET /api/v1/accounts
func (h *EntriesHandler) Accounts(c *gin.Context) {
	entries, err := h.accounts.Latest(c.Request.Context(), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("listing accounts entries failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list accounts entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Contacts handles GET /api/v1/contacts
func (h *EntriesHandler) Contacts(c *gin.Context) {
	results, err := h.contacts.Search(c.Request.Context(), c.Query("q"), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("searching contacts failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not search contacts"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Entities handles GET /api/v1/entities
func (h *EntriesHandler) Entities(c *gin.Context) {
	results, err := h.entities.ByName(c.Request.Context(), c.Query("q"), limitParam(c, 20))
	if err != nil {
		h.logger.Errorf("searching entities failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not search entities"})
		return
	}
	c.JSON(http.StatusOK, results)
}
