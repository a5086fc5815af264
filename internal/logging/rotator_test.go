package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	defer r.Close()

	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	for range 5 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "spacesync.log.") {
			backups++
		}
	}
	assert.Equal(t, 2, backups)

	info, err := os.Stat(filepath.Join(dir, "spacesync.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, Name: "d.log", MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("y"), 700*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "d.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestLogRotator_LargeFirstWrite(t *testing.T) {
	r, err := NewLogRotator(RotatorConfig{Dir: t.TempDir(), MaxSizeMB: 1})
	require.NoError(t, err)
	defer r.Close()

	n, err := r.Write(bytes.Repeat([]byte("z"), 2*1024*1024))
	require.NoError(t, err)
	assert.Equal(t, 2*1024*1024, n)
}
