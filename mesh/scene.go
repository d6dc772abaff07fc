package mesh

import (
	"slices"

	"github.com/samber/lo"

	"github.com/npillmayer/racetrack/boundary"
	"github.com/npillmayer/racetrack/polygon"
)

// Part is one spawned piece of track geometry: a quad for rendering together
// with its collision hull.
type Part struct {
	Quad Quad
	Hull *polygon.Polygon
}

// Scene receives the parts of a track's ring. It is implemented by the
// render/physics collaborators of a host application.
type Scene interface {
	// Despawn removes all parts of a track and returns how many there were.
	Despawn(track string) int
	// Spawn adds a part to a track.
	Spawn(track string, part Part)
}

// Regenerate tessellates pairs and replaces the parts of track in scene: all
// previously spawned parts of the track are despawned first, then one part
// per quad is spawned. The new ring is returned.
func Regenerate(scene Scene, track string, pairs []boundary.Pair) *Ring {
	ring := Tessellate(pairs)
	retired := scene.Despawn(track)
	for i, q := range ring.Quads {
		scene.Spawn(track, Part{Quad: q, Hull: ring.Hulls[i]})
	}
	tracer().Debugf("track %q: retired %d parts, spawned %d", track, retired, ring.N())
	return ring
}

// Registry is an in-memory Scene, keeping the parts per track.
type Registry struct {
	parts map[string][]Part
}

var _ Scene = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parts: make(map[string][]Part)}
}

// Despawn is part of interface Scene.
func (reg *Registry) Despawn(track string) int {
	n := len(reg.parts[track])
	delete(reg.parts, track)
	return n
}

// Spawn is part of interface Scene.
func (reg *Registry) Spawn(track string, part Part) {
	reg.parts[track] = append(reg.parts[track], part)
}

// Parts returns the parts currently spawned for track.
func (reg *Registry) Parts(track string) []Part {
	return slices.Clone(reg.parts[track])
}

// Count returns the number of parts currently spawned for track.
func (reg *Registry) Count(track string) int {
	return len(reg.parts[track])
}

// Tracks returns the names of all tracks with spawned parts, sorted.
func (reg *Registry) Tracks() []string {
	names := lo.Keys(reg.parts)
	slices.Sort(names)
	return names
}
