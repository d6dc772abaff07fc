package editor

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/catalog"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offscreen rejects every position.
type offscreen struct{}

func (offscreen) ToWorld(racetrack.Pair) (racetrack.Pair, bool) {
	return racetrack.Origin, false
}

func TestGesture(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var g Gesture
	_, ok := g.Release()
	assert.False(t, ok, "release without press")
	assert.True(t, g.Press(racetrack.P(1, 2)))
	assert.False(t, g.Press(racetrack.P(3, 4)), "nested press must be ignored")
	start, ok := g.Release()
	require.True(t, ok)
	assert.Equal(t, racetrack.P(1, 2), start)
	_, ok = g.Pressed()
	assert.False(t, ok, "gesture should be idle after release")
}

func TestAddPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	vp := racetrack.NewViewport(800, 600)
	s := NewSession("T", nil)
	assert.True(t, s.TakeChanged(), "new session counts as changed")
	require.True(t, s.Press(Primary, racetrack.P(450, 250)))
	p, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, racetrack.P(450, 250), p)
	// the release location is irrelevant for adding
	require.True(t, s.Release(Primary, racetrack.P(10, 10), vp))
	require.Equal(t, 1, s.Len())
	assert.True(t, s.Points()[0].Equal(racetrack.P(50, 50)), "got %v", s.Points()[0])
	assert.True(t, s.TakeChanged())
	assert.False(t, s.TakeChanged())
}

func TestAddPointOutsideWorld(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := NewSession("T", DefaultPoints())
	s.TakeChanged()
	s.Press(Primary, racetrack.P(1, 1))
	assert.False(t, s.Release(Primary, racetrack.P(1, 1), offscreen{}))
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.TakeChanged())
	_, ok := s.Pending()
	assert.False(t, ok, "failed conversion abandons the gesture")
}

func TestMoveRequiresSelection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	vp := racetrack.NewViewport(800, 600)
	s := NewSession("T", DefaultPoints())
	assert.False(t, s.Press(Secondary, racetrack.P(400, 300)))
	assert.False(t, s.Release(Secondary, racetrack.P(400, 300), vp))
	assert.Equal(t, DefaultPoints(), s.Points())
	//
	i, ok := s.SelectNext()
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.True(t, s.Press(Secondary, racetrack.P(0, 0)))
	require.True(t, s.Release(Secondary, racetrack.P(400, 300), vp))
	assert.True(t, s.Points()[0].Equal(racetrack.Origin), "got %v", s.Points()[0])
	assert.Equal(t, DefaultPoints()[1:], s.Points()[1:])
}

func TestSelectionCycles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := NewSession("T", DefaultPoints())
	_, ok := s.Selected()
	assert.False(t, ok)
	i, _ := s.SelectPrev()
	assert.Equal(t, 0, i, "first selection is the first point")
	i, _ = s.SelectPrev()
	assert.Equal(t, 3, i)
	i, _ = s.SelectNext()
	assert.Equal(t, 0, i)
	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	i, _ = s.SelectNext()
	assert.Equal(t, 0, i)
	s.ClearSelection()
	_, ok = s.Selected()
	assert.False(t, ok)
	//
	empty := NewSession("E", nil)
	_, ok = empty.SelectNext()
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := NewSession("T", DefaultPoints())
	s.SelectNext()
	s.SelectNext()
	require.True(t, s.Delete())
	want := DefaultPoints()
	assert.Equal(t, []racetrack.Pair{want[0], want[2], want[3]}, s.Points())
	_, ok := s.Selected()
	assert.False(t, ok, "deleting clears the selection")
	require.True(t, s.Delete())
	assert.Equal(t, []racetrack.Pair{want[0], want[2]}, s.Points())
	s.Delete()
	s.Delete()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Delete())
}

func TestSaveAndLoad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := NewSession("Hairpin", DefaultPoints())
	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))
	other := NewSession("Other", nil)
	other.TakeChanged()
	other.Load(&buf)
	assert.Equal(t, "Other", other.Name, "loading keeps the session name")
	assert.Equal(t, DefaultPoints(), other.Points())
	assert.True(t, other.TakeChanged())
	//
	other.Load(bytes.NewBufferString("{broken"))
	assert.Equal(t, catalog.SeedPoints(), other.Points())
	//
	path := filepath.Join(t.TempDir(), "hairpin"+catalog.Extension)
	require.NoError(t, s.SaveFile(path))
	other.LoadFile(path)
	assert.Equal(t, DefaultPoints(), other.Points())
}

func TestCommit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	c := catalog.Default()
	sel, ok := c.Selected()
	require.True(t, ok)
	s := FromTrack(sel)
	s.Delete()
	require.True(t, s.Commit(c))
	sel, _ = c.Selected()
	assert.Len(t, sel.Points, 1)
	//
	c.DeleteSelected()
	assert.False(t, s.Commit(c))
}
