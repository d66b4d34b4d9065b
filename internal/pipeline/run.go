package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xpanvictor/jassist/internal/adapters/stt"
	"github.com/xpanvictor/jassist/internal/config"
	"github.com/xpanvictor/jassist/internal/domains/classify"
	"github.com/xpanvictor/jassist/internal/domains/routing"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

// Pipeline drives one batch run: every recording in the raw directory is
// transcribed, classified and routed, then moved aside.
type Pipeline struct {
	transcriber stt.Transcriber
	classifier  classify.Service
	router      *routing.Router
	audio       config.AudioConfig
	logger      *Logger.Logger
}

func New(transcriber stt.Transcriber, classifier classify.Service, router *routing.Router, audio config.AudioConfig, logger *Logger.Logger) *Pipeline {
	return &Pipeline{
		transcriber: transcriber,
		classifier:  classifier,
		router:      router,
		audio:       audio,
		logger:      logger,
	}
}

// Run processes the raw audio directory oldest file first. A failure on
// one file is logged and the run continues; the file stays in the raw
// directory for the next attempt. Run returns an error only when no file
// could be processed at all.
func (p *Pipeline) Run(ctx context.Context) error {
	files, err := ListAudioFiles(p.audio.RawDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.logger.Infof("no audio files in %s", p.audio.RawDir)
		return nil
	}
	p.logger.Infof("processing %d audio files", len(files))

	processed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.processFile(ctx, path); err != nil {
			p.logger.Errorf("processing %s failed: %v", filepath.Base(path), err)
			continue
		}
		processed++
	}

	if processed == 0 {
		return fmt.Errorf("all %d files failed to process", len(files))
	}
	p.logger.Infof("processed %d/%d files", processed, len(files))
	return nil
}

func (p *Pipeline) processFile(ctx context.Context, path string) error {
	text, duration, err := p.transcriber.Transcribe(ctx, path)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	if text == "" {
		return fmt.Errorf("transcription came back empty")
	}

	reply, err := p.classifier.Classify(ctx, text)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	// The classifier reply goes into the tag field; the router's parser
	// splits it into entries from there.
	result := p.router.Route(ctx, routing.Request{
		Text:            text,
		Tag:             reply,
		Filename:        filepath.Base(path),
		AudioPath:       path,
		DurationSeconds: duration,
		ModelUsed:       "whisper-1",
	})
	if result.Status != routing.StatusSuccess {
		return fmt.Errorf("routing failed: %s", result.Message)
	}

	return moveToProcessed(path, p.audio.ProcessedDir)
}
