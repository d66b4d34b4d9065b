package routing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

func TestDispatch_RoutesToHandler(t *testing.T) {
	d := NewDispatcher(Logger.Noop())
	var got string
	d.Register(HandlerFunc(func(ctx context.Context, text string, sourceID *uuid.UUID) error {
		got = text
		return nil
	}), "diary")

	ok := d.Dispatch(context.Background(), "diary", "a thought", nil)
	assert.True(t, ok)
	assert.Equal(t, "a thought", got)
}

func TestDispatch_AliasesShareHandler(t *testing.T) {
	d := NewDispatcher(Logger.Noop())
	calls := 0
	d.Register(HandlerFunc(func(ctx context.Context, text string, sourceID *uuid.UUID) error {
		calls++
		return nil
	}), "to_do", "todo")

	assert.True(t, d.Dispatch(context.Background(), "to_do", "x", nil))
	assert.True(t, d.Dispatch(context.Background(), "todo", "y", nil))
	assert.Equal(t, 2, calls)
}

func TestDispatch_CaseInsensitive(t *testing.T) {
	d := NewDispatcher(Logger.Noop())
	d.Register(HandlerFunc(func(ctx context.Context, text string, sourceID *uuid.UUID) error {
		return nil
	}), "calendar")

	assert.True(t, d.Known("Calendar"))
	assert.True(t, d.Dispatch(context.Background(), "  CALENDAR ", "meeting", nil))
}

func TestDispatch_UnknownCategoryIsHandled(t *testing.T) {
	d := NewDispatcher(Logger.Noop())
	ok := d.Dispatch(context.Background(), "weather", "sunny today", nil)
	assert.True(t, ok)
	assert.False(t, d.Known("weather"))
}

func TestDispatch_HandlerErrorFailsEntry(t *testing.T) {
	d := NewDispatcher(Logger.Noop())
	d.Register(HandlerFunc(func(ctx context.Context, text string, sourceID *uuid.UUID) error {
		return errors.New("store unavailable")
	}), "accounts")

	assert.False(t, d.Dispatch(context.Background(), "accounts", "spent 5", nil))
}

func TestDispatch_HandlerPanicContained(t *testing.T) {
	d := NewDispatcher(Logger.Noop())
	d.Register(HandlerFunc(func(ctx context.Context, text string, sourceID *uuid.UUID) error {
		panic("boom")
	}), "entities")

	assert.False(t, d.Dispatch(context.Background(), "entities", "project x", nil))
}
