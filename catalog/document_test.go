package catalog

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New()
	c.Store(NewTrack("Oval", []racetrack.Pair{
		racetrack.P(-500, -200), racetrack.P(-250.125, 250), racetrack.P(0.1, 0.2),
		racetrack.P(1e-9, -3.3333333333333335), racetrack.P(math.MaxFloat64, -math.SmallestNonzeroFloat64),
	}))
	c.CreateTrack()
	c.Select("Oval")
	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	d, err := Decode(&buf)
	require.NoError(t, err)
	diff(t, c.Names(), d.Names())
	for i, tr := range c.Tracks() {
		diff(t, tr.Points, d.Tracks()[i].Points)
	}
	i, ok := d.Index()
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestDocumentShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Default()
	c.DeleteSelected()
	c.Store(NewTrack("A", []racetrack.Pair{racetrack.P(1, 2)}))
	c.DeleteSelected()
	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	assert.JSONEq(t, `{"tracks": [], "current_track_index": null}`, buf.String())
	c.Store(NewTrack("A", []racetrack.Pair{racetrack.P(1, 2), racetrack.P(3.5, -4)}))
	buf.Reset()
	require.NoError(t, c.Save(&buf))
	assert.JSONEq(t, `{"tracks": [{"track_name": "A", "points": [[1,2],[3.5,-4]]}], "current_track_index": 0}`, buf.String())
}

func TestDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Decode(strings.NewReader(`{"tracks": [`))
	assert.ErrorIs(t, err, ErrParse)
	_, err = Decode(strings.NewReader(`{"tracks": [{"track_name": "A", "points": [[1,2,3]]}]}`))
	assert.ErrorIs(t, err, ErrParse)
	_, err = Decode(failingReader{})
	assert.ErrorIs(t, err, ErrIO)
}

func TestDecodeKeepsDuplicateNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Track 1 deleted from [Track 1, Track 2], then a new track created
	doc := `{"tracks": [
		{"track_name": "Track 2", "points": [[-500,-200],[-500,-150]]},
		{"track_name": "Track 2", "points": [[0,0],[100,0],[100,100],[0,100]]}
	], "current_track_index": 1}`
	c, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Len(t, sel.Points, 4)
	next, _ := c.Advance()
	assert.Len(t, next.Points, 2)
	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	again, err := Decode(&buf)
	require.NoError(t, err)
	diff(t, c.Tracks(), again.Tracks())
	//
	c.CreateTrack()
	assert.Equal(t, []string{"Track 2", "Track 2", "Track 3"}, c.Names())
}

func TestDecodeDropsBadSelection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := Decode(strings.NewReader(`{"tracks": [{"track_name": "A", "points": []}], "current_track_index": 3}`))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Index()
	assert.False(t, ok)
}

func TestLoadFallsBackToDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range []*Catalog{
		Load(strings.NewReader("not json at all")),
		Load(failingReader{}),
		LoadFile(filepath.Join(t.TempDir(), "missing"+Extension)),
	} {
		require.Equal(t, 1, c.Len())
		sel, ok := c.Selected()
		require.True(t, ok)
		assert.Equal(t, "Track 1", sel.Name)
		assert.Equal(t, SeedPoints(), sel.Points)
	}
}

func TestFileRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "race"+Extension)
	c := threeTracks()
	c.UpdatePoints([]racetrack.Pair{racetrack.P(1, 1), racetrack.P(2, 2), racetrack.P(3, 1)})
	require.NoError(t, c.SaveFile(path))
	d := LoadFile(path)
	diff(t, c.Names(), d.Names())
	sel, ok := d.Selected()
	require.True(t, ok)
	diff(t, []racetrack.Pair{racetrack.P(1, 1), racetrack.P(2, 2), racetrack.P(3, 1)}, sel.Points)
	err := c.SaveFile(filepath.Join(t.TempDir(), "no", "such", "dir", "x"+Extension))
	assert.ErrorIs(t, err, ErrIO)
}

func TestSingleTrackDocument(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NewTrack("Solo", []racetrack.Pair{racetrack.P(-1.5, 2), racetrack.P(7, 7)})
	var buf bytes.Buffer
	require.NoError(t, tr.Save(&buf))
	assert.JSONEq(t, `{"track_name": "Solo", "points": [[-1.5,2],[7,7]]}`, buf.String())
	back, err := DecodeTrack(&buf)
	require.NoError(t, err)
	diff(t, tr, back)
	def := LoadTrack(strings.NewReader("{"))
	assert.Equal(t, "", def.Name)
	assert.Equal(t, SeedPoints(), def.Points)
	path := filepath.Join(t.TempDir(), "solo.json")
	require.NoError(t, tr.SaveFile(path))
	diff(t, tr, LoadTrackFile(path))
	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, SeedPoints(), LoadTrackFile(path+".missing").Points)
}

func TestEncodeNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NewTrack("Bad", []racetrack.Pair{racetrack.P(math.NaN(), 0)})
	var buf bytes.Buffer
	assert.ErrorIs(t, tr.Save(&buf), ErrEncode)
}
