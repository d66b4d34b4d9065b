package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestListAudioFiles_OrdersByTimestamp(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "20250416_093000_memo.m4a")
	touch(t, dir, "20250415_180000_memo.m4a")
	touch(t, dir, "20250416_070500_memo.m4a")

	files, err := ListAudioFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "20250415_180000_memo.m4a", filepath.Base(files[0]))
	assert.Equal(t, "20250416_070500_memo.m4a", filepath.Base(files[1]))
	assert.Equal(t, "20250416_093000_memo.m4a", filepath.Base(files[2]))
}

func TestListAudioFiles_SkipsNonAudio(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "20250416_093000_memo.mp3")
	touch(t, dir, "notes.txt")
	touch(t, dir, "cover.jpg")

	files, err := ListAudioFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "20250416_093000_memo.mp3", filepath.Base(files[0]))
}

func TestListAudioFiles_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.mp3"), 0o755))
	touch(t, dir, "real.mp3")

	files, err := ListAudioFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "real.mp3", filepath.Base(files[0]))
}

func TestListAudioFiles_EmptyDir(t *testing.T) {
	files, err := ListAudioFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMoveToProcessed(t *testing.T) {
	raw := t.TempDir()
	processed := filepath.Join(t.TempDir(), "done")
	touch(t, raw, "memo.mp3")

	err := moveToProcessed(filepath.Join(raw, "memo.mp3"), processed)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(processed, "memo.mp3"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(raw, "memo.mp3"))
	assert.True(t, os.IsNotExist(err))
}
