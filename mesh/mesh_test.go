package mesh

import (
	"testing"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/boundary"
	"github.com/npillmayer/racetrack/spline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []racetrack.Pair {
	return []racetrack.Pair{
		racetrack.P(0, 0), racetrack.P(100, 0), racetrack.P(100, 100), racetrack.P(0, 100),
	}
}

// squarePairs produces one boundary pair per knot of the square loop.
func squarePairs(t *testing.T) []boundary.Pair {
	t.Helper()
	curve := spline.Fit(square())
	require.NotNil(t, curve)
	pairs := boundary.Offsets(curve, curve.Segments(), 10)
	require.Len(t, pairs, 4)
	return pairs
}

func TestSquareLoop(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := Tessellate(squarePairs(t))
	assert.Equal(t, 4, ring.N())
	assert.Equal(t, 8, ring.TriangleCount())
	assert.Len(t, ring.Hulls, 4)
	assert.Len(t, ring.Positions, 16)
	assert.Len(t, ring.Colors, 16)
	for i, h := range ring.Hulls {
		assert.Equal(t, 4, h.N(), "hull %d", i)
		assert.True(t, h.IsCycle())
	}
}

func TestQuadLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pairs := squarePairs(t)
	ring := Tessellate(pairs)
	for i, q := range ring.Quads {
		j := (i + 1) % len(pairs)
		assert.Equal(t, i, q.I)
		assert.Equal(t, [4]racetrack.Pair{pairs[i].Outer, pairs[i].Inner, pairs[j].Outer, pairs[j].Inner}, q.Vertices)
		tri := q.Triangles()
		assert.Equal(t, [3]racetrack.Pair{pairs[i].Outer, pairs[j].Outer, pairs[j].Inner}, tri[0])
		assert.Equal(t, [3]racetrack.Pair{pairs[i].Outer, pairs[i].Inner, pairs[j].Inner}, tri[1])
		hull := ring.Hulls[i].Points()
		assert.Equal(t, []racetrack.Pair{pairs[i].Outer, pairs[j].Outer, pairs[j].Inner, pairs[i].Inner}, hull)
	}
	// the last quad closes the ring
	last := ring.Quads[3]
	assert.Equal(t, pairs[0].Outer, last.Vertices[2])
	// index buffer is offset per quad
	assert.Equal(t, []uint32{0, 2, 3, 0, 1, 3, 4, 6, 7, 4, 5, 7}, ring.Indices[:12])
	assert.Equal(t, Gray, ring.Colors[5])
}

func TestSmoothTrackHullsAreConvex(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := spline.Fit([]racetrack.Pair{
		racetrack.P(-500, -200), racetrack.P(-250, 250), racetrack.P(250, 250), racetrack.P(500, -200),
	})
	ring := Tessellate(boundary.Offsets(curve, boundary.Resolution(curve, 20), boundary.DefaultHalfWidth))
	require.Equal(t, 80, ring.N())
	for i, h := range ring.Hulls {
		assert.True(t, h.IsConvex(), "hull %d: %v", i, h.Points())
	}
}

func TestEmptyRing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := Tessellate(nil)
	assert.True(t, ring.IsEmpty())
	assert.Equal(t, 0, ring.TriangleCount())
	_, _, ok := ring.BoundingBox()
	assert.False(t, ok)
	assert.False(t, ring.Contains(racetrack.Origin))
}

func TestContainsAndBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := spline.Fit(square())
	ring := Tessellate(boundary.Offsets(curve, boundary.Resolution(curve, 25), 10))
	// the center curve is on track, the middle of the loop is not
	assert.True(t, ring.Contains(curve.Position(1.02)))
	assert.False(t, ring.Contains(racetrack.P(50, 50)))
	lo, hi, ok := ring.BoundingBox()
	require.True(t, ok)
	assert.Less(t, lo.X(), -10.0)
	assert.Greater(t, hi.Y(), 110.0)
}

func TestRegenerateRetiresOldParts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	reg := NewRegistry()
	pairs := squarePairs(t)
	Regenerate(reg, "Track 1", pairs)
	Regenerate(reg, "Track 2", pairs[:2])
	assert.Equal(t, 4, reg.Count("Track 1"))
	ring := Regenerate(reg, "Track 1", pairs)
	assert.Equal(t, 4, reg.Count("Track 1"), "no duplicates after regeneration")
	assert.Equal(t, ring.Quads[2], reg.Parts("Track 1")[2].Quad)
	assert.Equal(t, 2, reg.Count("Track 2"))
	Regenerate(reg, "Track 1", nil)
	assert.Equal(t, 0, reg.Count("Track 1"))
	assert.Equal(t, []string{"Track 2"}, reg.Tracks())
}
