package preview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/racetrack/editor"
	"github.com/npillmayer/racetrack/pipeline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	geom := pipeline.Build("Arch", editor.DefaultPoints(), 20, 5)
	dc, err := Render(geom, DefaultOptions(1200, 800))
	require.NoError(t, err)
	defer dc.Close()
	assert.Equal(t, 1200, dc.Width())
	assert.Equal(t, 800, dc.Height())
	r, g, b, _ := dc.Image().At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b}, "corner shows the background")
}

func TestRenderEmptyViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Render(nil, DefaultOptions(0, 100))
	assert.True(t, errors.Is(err, ErrRender))
}

func TestSavePNG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "arch.png")
	opts := DefaultOptions(400, 300)
	opts.Viewport.Zoom = 0.25
	require.NoError(t, SavePNG(pipeline.Build("Arch", editor.DefaultPoints(), 20, 5), opts, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	//
	degenerate := pipeline.Build("Dot", nil, 20, 5)
	assert.NoError(t, SavePNG(degenerate, opts, filepath.Join(t.TempDir(), "dot.png")))
}
