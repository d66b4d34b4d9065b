package routing

import (
	"context"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

// Store is the slice of the persistence gateway the router needs: saving a
// raw transcription record ahead of dispatch. Marking records processed is
// the handlers' job once they know the destination row.
type Store interface {
	SaveEntry(ctx context.Context, req SaveEntryRequest) (uuid.UUID, error)
}

// SaveEntryRequest carries one record to persist. Duration and model are
// forwarded opaquely into the record's metadata.
type SaveEntryRequest struct {
	Content         string
	Filename        string
	AudioPath       string
	DurationSeconds float64
	ModelUsed       string
	Tag             string
}

// Request is one routing invocation. DBID is set when the caller already
// persisted the transcription; the router then dispatches against that
// record instead of saving its own.
type Request struct {
	Text            string
	Tag             string
	Filename        string
	AudioPath       string
	DurationSeconds float64
	ModelUsed       string
	DBID            *uuid.UUID
}

// Router splits a classified transcript into entries, persists them and
// fans each out to its category handler. It never returns an error: every
// internal failure folds into the aggregated Result.
type Router struct {
	store      Store
	dispatcher *Dispatcher
	logger     *Logger.Logger
}

func NewRouter(store Store, dispatcher *Dispatcher, logger *Logger.Logger) *Router {
	return &Router{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Unit-of-work states for one invocation.
const (
	stateNotSaved   = "not_saved"
	stateSaved      = "saved"
	stateDispatched = "dispatched"
	stateAggregated = "aggregated"
)

func newRouteFSM() *fsm.FSM {
	return fsm.NewFSM(
		stateNotSaved,
		fsm.Events{
			{Name: "save", Src: []string{stateNotSaved}, Dst: stateSaved},
			{Name: "dispatch", Src: []string{stateSaved}, Dst: stateDispatched},
			{Name: "aggregate", Src: []string{stateSaved, stateDispatched}, Dst: stateAggregated},
		},
		fsm.Callbacks{},
	)
}

// Route processes one transcript+tag pair end to end.
//
// The classifier reply may encode several entries; the reply normally
// arrives in the tag field but is sometimes embedded in the text field, so
// both are checked, tag first. When the caller supplied no record ID, each
// parsed entry is saved as its own transcription record and dispatched
// against its own ID, index-aligned with parse order. With a caller
// supplied ID all entries dispatch against that single record.
func (r *Router) Route(ctx context.Context, req Request) Result {
	result := Result{
		Status:           StatusFailed,
		DBID:             req.DBID,
		Tag:              req.Tag,
		ProcessedEntries: []ProcessedEntry{},
	}
	machine := newRouteFSM()

	entries := r.parseEntries(req)

	// Persistence step. Entries found without a caller-supplied ID are
	// saved one record each; the first saved ID becomes the reported one.
	var savedIDs []uuid.UUID
	dbID := req.DBID
	if dbID == nil {
		if len(entries) > 0 {
			r.logger.Infof("saving %d separate entries", len(entries))
			for i, entry := range entries {
				id, err := r.store.SaveEntry(ctx, SaveEntryRequest{
					Content:         entry.Text,
					Filename:        req.Filename,
					AudioPath:       req.AudioPath,
					DurationSeconds: req.DurationSeconds,
					ModelUsed:       req.ModelUsed,
					Tag:             entry.Category,
				})
				if err != nil {
					r.logger.Errorf("failed to save entry %d/%d: %v", i+1, len(entries), err)
					savedIDs = append(savedIDs, uuid.Nil)
					continue
				}
				savedIDs = append(savedIDs, id)
			}
			for _, id := range savedIDs {
				if id != uuid.Nil {
					firstID := id
					dbID = &firstID
					break
				}
			}
			result.DBID = dbID
		} else {
			id, err := r.store.SaveEntry(ctx, SaveEntryRequest{
				Content:         req.Text,
				Filename:        req.Filename,
				AudioPath:       req.AudioPath,
				DurationSeconds: req.DurationSeconds,
				ModelUsed:       req.ModelUsed,
				Tag:             req.Tag,
			})
			if err != nil {
				r.logger.Errorf("failed to save transcription: %v", err)
				result.Message = "database save failed"
				return result
			}
			dbID = &id
			result.DBID = dbID
		}
		if dbID == nil {
			result.Message = "database save failed"
			return result
		}
	}
	if err := machine.Event(ctx, "save"); err != nil {
		r.logger.Warnf("route fsm: %v", err)
	}

	r.logger.Infof("routing transcription with tag %q and id %v", req.Tag, dbID)

	switch {
	case len(savedIDs) > 0:
		// Each entry was saved under its own record; dispatch against it.
		for i, entry := range entries {
			entryID := savedIDs[i]
			if entryID == uuid.Nil {
				// Save failed for this one; skip but keep going.
				continue
			}
			id := entryID
			ok := r.dispatcher.Dispatch(ctx, entry.Category, entry.Text, &id)
			result.ProcessedEntries = append(result.ProcessedEntries, ProcessedEntry{
				ID:      &id,
				Text:    truncateText(entry.Text),
				Tag:     entry.Category,
				Success: ok,
			})
			result.EntriesProcessed++
			if ok {
				result.SuccessCount++
			}
		}
	case len(entries) > 0:
		// Caller already holds one combined record; every entry dispatches
		// against it.
		for _, entry := range entries {
			ok := r.dispatcher.Dispatch(ctx, entry.Category, entry.Text, dbID)
			result.ProcessedEntries = append(result.ProcessedEntries, ProcessedEntry{
				ID:      dbID,
				Text:    truncateText(entry.Text),
				Tag:     entry.Category,
				Success: ok,
			})
			result.EntriesProcessed++
			if ok {
				result.SuccessCount++
			}
		}
	default:
		ok := r.dispatcher.Dispatch(ctx, req.Tag, req.Text, dbID)
		result.EntriesProcessed = 1
		if ok {
			result.SuccessCount = 1
		}
	}
	if err := machine.Event(ctx, "dispatch"); err != nil {
		r.logger.Warnf("route fsm: %v", err)
	}

	if len(entries) > 0 {
		result.AdditionalProcessing = result.EntriesProcessed > 0
	} else {
		result.AdditionalProcessing = result.SuccessCount > 0
	}
	if result.SuccessCount > 0 {
		result.Status = StatusSuccess
	}
	if err := machine.Event(ctx, "aggregate"); err != nil {
		r.logger.Warnf("route fsm: %v", err)
	}

	if len(entries) > 0 {
		r.logger.Infof("processed %d/%d entries successfully", result.SuccessCount, result.EntriesProcessed)
	} else {
		r.logger.Infof("processed single entry with tag %q: %s", req.Tag, result.Status)
	}
	return result
}

// parseEntries runs the detection gate and the parser ladder: strict parse
// first, lenient recovery when the gate fired but nothing came out. The tag
// field is checked before the text field since the classifier reply belongs
// there; checking text too covers replies embedded in the wrong field.
func (r *Router) parseEntries(req Request) []ParsedEntry {
	if HasEntryMarkers(req.Tag) {
		if entries := ParseEntries(req.Tag); len(entries) > 0 {
			r.logger.Infof("found %d entries in tag field", len(entries))
			return entries
		}
		if entries := ParseEntriesLenient(req.Tag); len(entries) > 0 {
			r.logger.Infof("lenient parser found %d entries in tag field", len(entries))
			return entries
		}
	}
	if HasEntryMarkers(req.Text) {
		if entries := ParseEntries(req.Text); len(entries) > 0 {
			r.logger.Infof("found %d entries in text field", len(entries))
			return entries
		}
		if entries := ParseEntriesLenient(req.Text); len(entries) > 0 {
			r.logger.Infof("lenient parser found %d entries in text field", len(entries))
			return entries
		}
	}
	return nil
}
