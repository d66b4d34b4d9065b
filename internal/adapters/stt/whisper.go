package stt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (text string, durationSeconds float64, err error)
}

type whisperTranscriber struct {
	client openai.Client
	model  openai.AudioModel
	logger *Logger.Logger
}

func NewWhisperTranscriber(apiKey string, logger *Logger.Logger) Transcriber {
	return &whisperTranscriber{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.AudioModelWhisper1,
		logger: logger,
	}
}

// Transcribe sends the file to the Whisper API. The duration comes from
// ffprobe when available, otherwise from a size estimate.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, float64, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", 0, fmt.Errorf("could not open audio file: %w", err)
	}
	defer f.Close()

	resp, err := w.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  f,
		Model: w.model,
	})
	if err != nil {
		return "", 0, fmt.Errorf("transcription request failed: %w", err)
	}

	duration := probeDuration(ctx, audioPath, w.logger)
	return resp.Text, duration, nil
}

// probeDuration asks ffprobe for the clip length. When ffprobe is not
// installed it estimates from the file size at roughly 3MB per minute.
func probeDuration(ctx context.Context, audioPath string, logger *Logger.Logger) float64 {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	).Output()
	if err == nil {
		if d, perr := strconv.ParseFloat(strings.TrimSpace(string(out)), 64); perr == nil {
			return d
		}
	}

	info, err := os.Stat(audioPath)
	if err != nil {
		logger.Warnf("could not determine duration of %s: %v", audioPath, err)
		return 0
	}
	const bytesPerMinute = 3 * 1024 * 1024
	return float64(info.Size()) / bytesPerMinute * 60
}
