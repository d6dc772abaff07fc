package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/catalog"
	"github.com/npillmayer/racetrack/editor"
	"github.com/npillmayer/racetrack/internal/config"
	"github.com/npillmayer/racetrack/internal/log"
	"github.com/npillmayer/racetrack/pipeline"
	"github.com/npillmayer/racetrack/preview"
)

var errNoSelection = errors.New("no track selected")

// worldCoords takes positions given on the command line as world coordinates.
type worldCoords struct{}

func (worldCoords) ToWorld(p racetrack.Pair) (racetrack.Pair, bool) {
	return p, p.IsFinite()
}

// loadCatalog reads the catalog file. A missing file yields the default
// catalog; unreadable or malformed files are an error, so that they are never
// overwritten.
func loadCatalog(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("no catalog file, starting with default catalog", log.String("file", path))
		return catalog.Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrIO, err)
	}
	defer f.Close()
	c, err := catalog.Decode(f)
	if err != nil {
		log.Error("cannot load catalog", log.String("file", path), log.ErrorField(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("catalog loaded", log.String("file", path), log.Int("tracks", c.Len()))
	return c, nil
}

func saveCatalog(c *catalog.Catalog) error {
	if err := c.SaveFile(config.File); err != nil {
		log.Error("cannot save catalog", log.String("file", config.File), log.ErrorField(err))
		return err
	}
	log.Info("catalog saved", log.String("file", config.File), log.Int("tracks", c.Len()))
	return nil
}

func selected(c *catalog.Catalog) (*catalog.Track, error) {
	t, ok := c.Selected()
	if !ok {
		return nil, errNoSelection
	}
	return t, nil
}

// modify loads the catalog, applies f, saves the catalog and prints the
// selected track.
func modify(cmd *cobra.Command, f func(c *catalog.Catalog) error) error {
	c, err := loadCatalog(config.File)
	if err != nil {
		return err
	}
	if err := f(c); err != nil {
		return err
	}
	if err := saveCatalog(c); err != nil {
		return err
	}
	printSelection(cmd, c)
	return nil
}

func printSelection(cmd *cobra.Command, c *catalog.Catalog) {
	if t, ok := c.Selected(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", t.Name)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "(no selection)")
	}
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "creates a new track and selects it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return modify(cmd, func(c *catalog.Catalog) error {
				c.CreateTrack()
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "lists the tracks, marking the selected one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(config.File)
			if err != nil {
				return err
			}
			cur, ok := c.Index()
			for i, t := range c.Tracks() {
				mark := " "
				if ok && i == cur {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d points)\n", mark, t.Name, len(t.Points))
			}
			return nil
		},
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select NAME",
		Short: "selects a track by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return modify(cmd, func(c *catalog.Catalog) error {
				if !c.Select(args[0]) {
					return fmt.Errorf("no track named %q", args[0])
				}
				return nil
			})
		},
	}
}

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "selects the next track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return modify(cmd, func(c *catalog.Catalog) error {
				c.Advance()
				return nil
			})
		},
	}
}

func newPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "selects the previous track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return modify(cmd, func(c *catalog.Catalog) error {
				c.Retreat()
				return nil
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "deletes the selected track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return modify(cmd, func(c *catalog.Catalog) error {
				t, ok := c.DeleteSelected()
				if !ok {
					return errNoSelection
				}
				log.Info("track deleted", log.String("track", t.Name))
				return nil
			})
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	fs := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		fs[i] = f
	}
	return fs, nil
}

func newAddPointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-point X Y",
		Short: "appends a control point to the selected track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseFloats(args)
			if err != nil {
				return err
			}
			return modify(cmd, func(c *catalog.Catalog) error {
				t, err := selected(c)
				if err != nil {
					return err
				}
				s := editor.FromTrack(t)
				p := racetrack.P(xy[0], xy[1])
				s.Press(editor.Primary, p)
				if !s.Release(editor.Primary, p, worldCoords{}) {
					return fmt.Errorf("cannot add point %v", p)
				}
				s.Commit(c)
				return nil
			})
		},
	}
}

func newDeletePointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-point [INDEX]",
		Short: "removes a control point of the selected track, by default the last one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return modify(cmd, func(c *catalog.Catalog) error {
				t, err := selected(c)
				if err != nil {
					return err
				}
				s := editor.FromTrack(t)
				if len(args) == 1 {
					i, err := strconv.Atoi(args[0])
					if err != nil || i < 0 || i >= s.Len() {
						return fmt.Errorf("invalid point index %q", args[0])
					}
					for j := 0; j <= i; j++ {
						s.SelectNext()
					}
				}
				if !s.Delete() {
					return fmt.Errorf("track %q has no points", t.Name)
				}
				s.Commit(c)
				return nil
			})
		},
	}
}

func build(c *catalog.Catalog) (*pipeline.Geometry, error) {
	t, err := selected(c)
	if err != nil {
		return nil, err
	}
	b := pipeline.NewBuilder(nil)
	b.HalfWidth = config.HalfWidth
	b.SamplesPerSegment = config.SamplesPerSegment
	log.Debug("building track", log.String("track", t.Name),
		log.Float64("half-width", b.HalfWidth), log.Int("samples-per-segment", b.SamplesPerSegment))
	b.Set(t.Name, t.Points)
	g, _ := b.Tick()
	return g, nil
}

func newMeshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mesh",
		Short: "prints the geometry of the selected track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(config.File)
			if err != nil {
				return err
			}
			g, err := build(c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "track:     %s\n", g.Track)
			fmt.Fprintf(out, "points:    %d\n", len(g.Points))
			if g.IsDegenerate() {
				fmt.Fprintln(out, "segments:  0 (degenerate)")
				return nil
			}
			fmt.Fprintf(out, "segments:  %d\n", g.Curve.Segments())
			fmt.Fprintf(out, "samples:   %d\n", len(g.Pairs))
			fmt.Fprintf(out, "quads:     %d\n", g.Ring.N())
			fmt.Fprintf(out, "triangles: %d\n", g.Ring.TriangleCount())
			fmt.Fprintf(out, "hulls:     %d\n", len(g.Ring.Hulls))
			fmt.Fprintf(out, "length:    %.1f\n", g.Curve.ArcLength(preview.CurveSamplesPerSegment*g.Curve.Segments()))
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render OUT.png",
		Short: "renders the selected track to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(config.File)
			if err != nil {
				return err
			}
			g, err := build(c)
			if err != nil {
				return err
			}
			opts := preview.DefaultOptions(config.Width, config.Height)
			opts.Viewport.Zoom = config.Zoom
			if err := preview.SavePNG(g, opts, args[0]); err != nil {
				return err
			}
			log.Info("track rendered", log.String("track", g.Track), log.String("out", args[0]))
			return nil
		},
	}
	cmd.Flags().IntVar(&config.Width, "width", 1280, "image width in pixels")
	cmd.Flags().IntVar(&config.Height, "height", 720, "image height in pixels")
	cmd.Flags().Float64Var(&config.Zoom, "zoom", 1, "pixels per world unit")
	return cmd
}
