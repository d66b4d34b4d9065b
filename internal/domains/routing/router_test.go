package routing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

type fakeStore struct {
	saved   []SaveEntryRequest
	ids     []uuid.UUID
	failIdx map[int]bool // save calls that should error, zero-based
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{failIdx: map[int]bool{}}
}

func (f *fakeStore) SaveEntry(ctx context.Context, req SaveEntryRequest) (uuid.UUID, error) {
	call := len(f.saved)
	f.saved = append(f.saved, req)
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if f.failIdx[call] {
		return uuid.Nil, errors.New("save failed")
	}
	id := uuid.New()
	f.ids = append(f.ids, id)
	return id, nil
}

type recordedCall struct {
	text     string
	sourceID *uuid.UUID
}

func recordingDispatcher(failCategories ...string) (*Dispatcher, map[string][]recordedCall) {
	d := NewDispatcher(Logger.Noop())
	calls := map[string][]recordedCall{}
	failing := map[string]bool{}
	for _, c := range failCategories {
		failing[c] = true
	}
	for _, category := range []string{"diary", "calendar", "to_do", "accounts", "contacts", "entities"} {
		category := category
		d.Register(HandlerFunc(func(ctx context.Context, text string, sourceID *uuid.UUID) error {
			calls[category] = append(calls[category], recordedCall{text: text, sourceID: sourceID})
			if failing[category] {
				return errors.New("handler failed")
			}
			return nil
		}), category)
	}
	return d, calls
}

func newTestRouter(store Store, d *Dispatcher) *Router {
	return NewRouter(store, d, Logger.Noop())
}

func TestRoute_SingleEntry(t *testing.T) {
	store := newFakeStore()
	d, calls := recordingDispatcher()
	router := newTestRouter(store, d)

	result := router.Route(context.Background(), Request{
		Text: "felt great after the run",
		Tag:  "diary",
	})

	assert.Equal(t, StatusSuccess, result.Status)
	require.NotNil(t, result.DBID)
	assert.Equal(t, store.ids[0], *result.DBID)
	assert.Equal(t, 1, result.EntriesProcessed)
	assert.Equal(t, 1, result.SuccessCount)
	assert.True(t, result.AdditionalProcessing)
	require.Len(t, calls["diary"], 1)
	assert.Equal(t, "felt great after the run", calls["diary"][0].text)
}

func TestRoute_MultiEntrySavesEachRecord(t *testing.T) {
	store := newFakeStore()
	d, calls := recordingDispatcher()
	router := newTestRouter(store, d)

	reply := "text: \"rough day\"\ntag: diary\n\n" +
		"text: \"buy milk\"\ntag: to_do\n\n" +
		"text: \"spent 12 on lunch\"\ntag: accounts"

	result := router.Route(context.Background(), Request{
		Text: "the raw transcript",
		Tag:  reply,
	})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 3, result.EntriesProcessed)
	assert.Equal(t, 3, result.SuccessCount)
	assert.True(t, result.AdditionalProcessing)
	require.Len(t, store.saved, 3)
	assert.Equal(t, "rough day", store.saved[0].Content)
	assert.Equal(t, "diary", store.saved[0].Tag)

	// Reported id is the first saved record.
	require.NotNil(t, result.DBID)
	assert.Equal(t, store.ids[0], *result.DBID)

	// Each handler saw the id of its own record, index aligned.
	require.Len(t, calls["to_do"], 1)
	assert.Equal(t, store.ids[1], *calls["to_do"][0].sourceID)
	require.Len(t, calls["accounts"], 1)
	assert.Equal(t, store.ids[2], *calls["accounts"][0].sourceID)
}

func TestRoute_EntriesParsedFromTextField(t *testing.T) {
	store := newFakeStore()
	d, calls := recordingDispatcher()
	router := newTestRouter(store, d)

	result := router.Route(context.Background(), Request{
		Text: "text: \"call mum\"\ntag: to_do",
		Tag:  "misc",
	})

	assert.Equal(t, StatusSuccess, result.Status)
	require.Len(t, calls["to_do"], 1)
	assert.Equal(t, "call mum", calls["to_do"][0].text)
}

func TestRoute_PartialFailureStillSucceeds(t *testing.T) {
	store := newFakeStore()
	d, _ := recordingDispatcher("to_do", "accounts")
	router := newTestRouter(store, d)

	reply := "text: \"rough day\"\ntag: diary\n\n" +
		"text: \"buy milk\"\ntag: to_do\n\n" +
		"text: \"spent 12\"\ntag: accounts"

	result := router.Route(context.Background(), Request{Tag: reply})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 3, result.EntriesProcessed)
	assert.Equal(t, 1, result.SuccessCount)
	require.Len(t, result.ProcessedEntries, 3)
	assert.True(t, result.ProcessedEntries[0].Success)
	assert.False(t, result.ProcessedEntries[1].Success)
	assert.False(t, result.ProcessedEntries[2].Success)
}

func TestRoute_FailedSaveSkippedAtDispatch(t *testing.T) {
	store := newFakeStore()
	store.failIdx[1] = true // second entry's save fails
	d, calls := recordingDispatcher()
	router := newTestRouter(store, d)

	reply := "text: \"rough day\"\ntag: diary\n\n" +
		"text: \"buy milk\"\ntag: to_do\n\n" +
		"text: \"spent 12\"\ntag: accounts"

	result := router.Route(context.Background(), Request{Tag: reply})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 2, result.EntriesProcessed)
	assert.Empty(t, calls["to_do"])
	// accounts still dispatches against its own record, not a shifted one.
	require.Len(t, calls["accounts"], 1)
	assert.Equal(t, store.ids[1], *calls["accounts"][0].sourceID)
}

func TestRoute_UnknownCategoryCountsAsHandled(t *testing.T) {
	store := newFakeStore()
	d, _ := recordingDispatcher()
	router := newTestRouter(store, d)

	result := router.Route(context.Background(), Request{
		Text: "it rained all day",
		Tag:  "weather",
	})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestRoute_SaveFailureIsFatalForSingleEntry(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("db down")
	d, calls := recordingDispatcher()
	router := newTestRouter(store, d)

	result := router.Route(context.Background(), Request{
		Text: "a thought",
		Tag:  "diary",
	})

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, "database save failed", result.Message)
	assert.Empty(t, calls["diary"])
}

func TestRoute_AllSavesFailingIsFatalForMulti(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("db down")
	d, _ := recordingDispatcher()
	router := newTestRouter(store, d)

	reply := "text: \"a\"\ntag: diary\n\ntext: \"b\"\ntag: to_do"
	result := router.Route(context.Background(), Request{Tag: reply})

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, "database save failed", result.Message)
}

func TestRoute_CallerSuppliedIDSkipsSaving(t *testing.T) {
	store := newFakeStore()
	d, calls := recordingDispatcher()
	router := newTestRouter(store, d)
	existing := uuid.New()

	reply := "text: \"rough day\"\ntag: diary\n\ntext: \"buy milk\"\ntag: to_do"
	result := router.Route(context.Background(), Request{
		Tag:  reply,
		DBID: &existing,
	})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, store.saved)
	require.NotNil(t, result.DBID)
	assert.Equal(t, existing, *result.DBID)
	// Both entries dispatch against the one caller record.
	require.Len(t, calls["diary"], 1)
	assert.Equal(t, existing, *calls["diary"][0].sourceID)
	require.Len(t, calls["to_do"], 1)
	assert.Equal(t, existing, *calls["to_do"][0].sourceID)
}

func TestRoute_ProcessedEntryTextTruncated(t *testing.T) {
	store := newFakeStore()
	d, _ := recordingDispatcher()
	router := newTestRouter(store, d)

	long := "this diary entry rambles on for far longer than fifty characters in total"
	result := router.Route(context.Background(), Request{
		Tag: "text: \"" + long + "\"\ntag: diary",
	})

	require.Len(t, result.ProcessedEntries, 1)
	assert.Equal(t, long[:50]+"...", result.ProcessedEntries[0].Text)
}
