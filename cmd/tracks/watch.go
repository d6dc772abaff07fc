package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/npillmayer/racetrack/catalog"
	"github.com/npillmayer/racetrack/internal/config"
	"github.com/npillmayer/racetrack/internal/log"
	"github.com/npillmayer/racetrack/pipeline"
)

// watcher rebuilds the geometry of the selected track whenever the catalog
// file changes. Rebuilds happen only if the selected track differs from the
// previous one.
type watcher struct {
	builder *pipeline.Builder
	out     io.Writer
}

func newWatcher(out io.Writer) *watcher {
	b := pipeline.NewBuilder(nil)
	b.HalfWidth = config.HalfWidth
	b.SamplesPerSegment = config.SamplesPerSegment
	return &watcher{builder: b, out: out}
}

// reload feeds the selected track of c to the builder and reports a rebuild.
func (w *watcher) reload(c *catalog.Catalog) bool {
	t, ok := c.Selected()
	if !ok {
		w.builder.Set("", nil)
	} else {
		w.builder.Set(t.Name, t.Points)
	}
	g, ok := w.builder.Tick()
	if !ok {
		return false
	}
	if g.IsDegenerate() {
		fmt.Fprintf(w.out, "%s: degenerate\n", g.Track)
	} else {
		fmt.Fprintf(w.out, "%s: %d segments, %d quads\n", g.Track, g.Curve.Segments(), g.Ring.N())
	}
	return true
}

// load reloads the catalog file, keeping the current geometry if the file
// cannot be read.
func (w *watcher) load(path string) {
	c, err := loadCatalog(path)
	if err != nil {
		fmt.Fprintf(w.out, "%v\n", err)
		return
	}
	w.reload(c)
}

func (w *watcher) run(ctx context.Context, path string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	// editors tend to replace files, so watch the directory
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return err
	}
	w.load(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) ||
				!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("catalog changed", log.String("file", ev.Name), log.String("op", ev.Op.String()))
			w.load(path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", log.ErrorField(err))
		}
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "rebuilds the selected track whenever the catalog file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return newWatcher(cmd.OutOrStdout()).run(ctx, config.File)
		},
	}
}
