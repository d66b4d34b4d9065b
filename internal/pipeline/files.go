package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".wav":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".aac":  true,
	".opus": true,
	".webm": true,
}

var timestampRe = regexp.MustCompile(`(\d{8}_\d{6})`)

// ListAudioFiles returns the audio files in dir ordered oldest first.
// Files carrying a 20060102_150405 timestamp in their name sort by that
// timestamp; the rest fall back to modification time.
func ListAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read audio dir: %w", err)
	}

	type candidate struct {
		path    string
		sortKey string
	}
	var files []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !audioExtensions[ext] {
			continue
		}

		key := ""
		if m := timestampRe.FindStringSubmatch(entry.Name()); m != nil {
			key = m[1]
		} else if info, err := entry.Info(); err == nil {
			key = info.ModTime().Format("20060102_150405")
		}
		files = append(files, candidate{
			path:    filepath.Join(dir, entry.Name()),
			sortKey: key,
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].sortKey < files[j].sortKey
	})

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}
	return out, nil
}

// moveToProcessed relocates a handled recording out of the raw
// directory so a rerun does not pick it up again.
func moveToProcessed(path, processedDir string) error {
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return fmt.Errorf("could not create processed dir: %w", err)
	}
	dest := filepath.Join(processedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("could not move %s: %w", path, err)
	}
	return nil
}
