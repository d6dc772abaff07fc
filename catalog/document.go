package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/racetrack"
)

// Extension is the file extension of track documents.
const Extension = ".tracks"

var (
	// ErrIO indicates a document which could not be read or written.
	ErrIO = errors.New("track document i/o failed")
	// ErrParse indicates malformed document content.
	ErrParse = errors.New("malformed track document")
	// ErrEncode indicates a track which cannot be represented as a document,
	// e.g., because of NaN coordinates.
	ErrEncode = errors.New("track cannot be encoded")
)

// TrackDocument is the persisted form of a single track:
//
//	{ "track_name": "Track 1", "points": [[-500, -200], [-500, -150]] }
type TrackDocument struct {
	TrackName string      `json:"track_name"`
	Points    [][]float64 `json:"points"`
}

// CatalogDocument is the persisted form of a catalog:
//
//	{ "tracks": [ … ], "current_track_index": 0 }
//
// A missing selection is written as null.
type CatalogDocument struct {
	Tracks            []TrackDocument `json:"tracks"`
	CurrentTrackIndex *int            `json:"current_track_index"`
}

// Document returns the persisted form of t.
func (t *Track) Document() TrackDocument {
	doc := TrackDocument{TrackName: t.Name, Points: make([][]float64, len(t.Points))}
	for i, p := range t.Points {
		doc.Points[i] = []float64{p.X(), p.Y()}
	}
	return doc
}

// Track converts a document into a track. Every point has to consist of
// exactly two finite coordinates.
func (doc TrackDocument) Track() (*Track, error) {
	t := &Track{Name: doc.TrackName, Points: make([]racetrack.Pair, len(doc.Points))}
	for i, xy := range doc.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: point %d of track %q has %d coordinates", ErrParse, i, doc.TrackName, len(xy))
		}
		t.Points[i] = racetrack.P(xy[0], xy[1])
	}
	return t, nil
}

// Document returns the persisted form of c.
func (c *Catalog) Document() CatalogDocument {
	doc := CatalogDocument{Tracks: make([]TrackDocument, len(c.tracks))}
	for i, t := range c.tracks {
		doc.Tracks[i] = t.Document()
	}
	if i, ok := c.Index(); ok {
		doc.CurrentTrackIndex = &i
	}
	return doc
}

// FromDocument creates a catalog from its persisted form. Duplicate track
// names are kept as they are, uniqueness is enforced only when tracks are
// created or stored. A selection index out of range is dropped.
func FromDocument(doc CatalogDocument) (*Catalog, error) {
	c := New()
	for _, td := range doc.Tracks {
		t, err := td.Track()
		if err != nil {
			return nil, err
		}
		c.tracks = append(c.tracks, t)
	}
	if doc.CurrentTrackIndex != nil {
		if i := *doc.CurrentTrackIndex; i >= 0 && i < len(c.tracks) {
			c.current = i
		} else {
			tracer().Infof("catalog: dropping selection %d out of range [0,%d)", i, len(c.tracks))
		}
	}
	return c, nil
}

// Decode reads a catalog document. Errors wrap ErrIO or ErrParse.
func Decode(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	var doc CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromDocument(doc)
}

// Load reads a catalog document. Unreadable or malformed input does not
// fail, it results in the default catalog.
func Load(r io.Reader) *Catalog {
	c, err := Decode(r)
	if err != nil {
		tracer().Errorf("catalog: %v, using default catalog", err)
		return Default()
	}
	return c
}

// LoadFile reads a catalog from a file, falling back to the default catalog
// like Load.
func LoadFile(path string) *Catalog {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("catalog: %v: %v, using default catalog", ErrIO, err)
		return Default()
	}
	defer f.Close()
	return Load(f)
}

// Save writes c as an indented JSON document.
func (c *Catalog) Save(w io.Writer) error {
	return encode(w, c.Document())
}

// SaveFile writes c to a file.
func (c *Catalog) SaveFile(path string) error {
	return saveFile(path, c.Save)
}

// DecodeTrack reads a single-track document. Errors wrap ErrIO or ErrParse.
func DecodeTrack(r io.Reader) (*Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	var doc TrackDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc.Track()
}

// LoadTrack reads a single-track document. Unreadable or malformed input
// results in an unnamed track with the seed path.
func LoadTrack(r io.Reader) *Track {
	t, err := DecodeTrack(r)
	if err != nil {
		tracer().Errorf("catalog: %v, using default track", err)
		return NewTrack("", SeedPoints())
	}
	return t
}

// LoadTrackFile reads a single-track document from a file, falling back to
// the default track like LoadTrack.
func LoadTrackFile(path string) *Track {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("catalog: %v: %v, using default track", ErrIO, err)
		return NewTrack("", SeedPoints())
	}
	defer f.Close()
	return LoadTrack(f)
}

// Save writes t as an indented single-track JSON document.
func (t *Track) Save(w io.Writer) error {
	return encode(w, t.Document())
}

// SaveFile writes t to a file.
func (t *Track) SaveFile(path string) error {
	return saveFile(path, t.Save)
}

func encode(w io.Writer, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func saveFile(path string, save func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
