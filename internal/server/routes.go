package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xpanvictor/jassist/internal/app"
	"github.com/xpanvictor/jassist/internal/handlers"
)

// NewRouter builds the gin engine with all API routes attached.
func NewRouter(a *app.App) *gin.Engine {
	if !a.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	transcriptionHandler := handlers.NewTranscriptionHandler(a.Transcriptions, a.Logger)
	routeHandler := handlers.NewRouteHandler(a.Router, a.Logger)
	entriesHandler := handlers.NewEntriesHandler(
		a.Diary, a.Todo, a.Calendar, a.Accounts, a.Contacts, a.Entities, a.Logger)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/transcriptions", transcriptionHandler.Latest)
		v1.GET("/transcriptions/search", transcriptionHandler.Search)
		v1.GET("/transcriptions/unprocessed", transcriptionHandler.Unprocessed)
		v1.POST("/route", routeHandler.Route)

		v1.GET("/diary", entriesHandler.Diary)
		v1.GET("/todos", entriesHandler.Todos)
		v1.GET("/events", entriesHandler.Events)
		v1.GET("/accounts", entriesHandler.Accounts)
		v1.GET("/contacts", entriesHandler.Contacts)
		v1.GET("/entities", entriesHandler.Entities)
	}

	return engine
}

// Run starts the HTTP server on the configured port.
func Run(a *app.App) error {
	engine := NewRouter(a)
	addr := fmt.Sprintf(":%d", a.Config.Server.Port)
	a.Logger.Infof("http server listening on %s", addr)
	return engine.Run(addr)
}
