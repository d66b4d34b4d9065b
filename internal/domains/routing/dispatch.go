package routing

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

// Handler persists one entry's text into its category store. A non-nil
// sourceID points at the transcription record the entry came from so the
// handler can mark it processed.
type Handler interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, text string, sourceID *uuid.UUID) error

func (f HandlerFunc) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	return f(ctx, text, sourceID)
}

// Dispatcher maps category labels to handlers. It is built once at startup
// and injected into the router; categories the classifier may drift into
// that have no handler are treated as handled so one odd label never fails
// a whole batch.
type Dispatcher struct {
	handlers map[string]Handler
	logger   *Logger.Logger
}

func NewDispatcher(logger *Logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register binds a handler to one or more category labels. Labels are
// matched case-insensitively at dispatch time.
func (d *Dispatcher) Register(h Handler, categories ...string) {
	for _, c := range categories {
		d.handlers[strings.ToLower(strings.TrimSpace(c))] = h
	}
}

// Dispatch routes one entry to its category handler and reports success.
// Handler errors and panics are contained here: they mark this entry as
// failed but never propagate to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, category, text string, sourceID *uuid.UUID) (ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(category))
	h, found := d.handlers[normalized]
	if !found {
		d.logger.Infof("no handler registered for category %q, treating as processed", category)
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("handler for category %q panicked: %v", normalized, r)
			ok = false
		}
	}()

	if err := h.Handle(ctx, text, sourceID); err != nil {
		d.logger.Errorf("handler for category %q failed: %v", normalized, err)
		return false
	}
	return true
}

// Known reports whether a handler is registered for the category.
func (d *Dispatcher) Known(category string) bool {
	_, found := d.handlers[strings.ToLower(strings.TrimSpace(category))]
	return found
}
