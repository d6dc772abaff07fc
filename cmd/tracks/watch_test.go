package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/catalog"
	"github.com/npillmayer/racetrack/internal/config"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	config.HalfWidth, config.SamplesPerSegment = 20, 5
	var out bytes.Buffer
	w := newWatcher(&out)
	c := catalog.Default()
	assert.True(t, w.reload(c))
	assert.Equal(t, "Track 1: 2 segments, 10 quads\n", out.String())
	assert.False(t, w.reload(c), "unchanged catalog must not trigger a rebuild")
	//
	c.UpdatePoints(append(catalog.SeedPoints(), racetrack.P(0, 0)))
	out.Reset()
	assert.True(t, w.reload(c))
	assert.Equal(t, "Track 1: 3 segments, 15 quads\n", out.String())
	//
	c.DeleteSelected()
	out.Reset()
	assert.True(t, w.reload(c))
	assert.Equal(t, ": degenerate\n", out.String())
}

func TestWatcherSkipsMalformedFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	config.HalfWidth, config.SamplesPerSegment = 20, 5
	var out bytes.Buffer
	w := newWatcher(&out)
	file := filepath.Join(t.TempDir(), "test"+catalog.Extension)
	assert.NoError(t, catalog.Default().SaveFile(file))
	w.load(file)
	assert.Equal(t, "Track 1: 2 segments, 10 quads\n", out.String())
	assert.NoError(t, os.WriteFile(file, []byte(`{"tracks": [`), 0o644))
	out.Reset()
	w.load(file)
	assert.Contains(t, out.String(), "malformed track document")
	assert.False(t, w.builder.IsDirty())
}
