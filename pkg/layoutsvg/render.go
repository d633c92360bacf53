package layoutsvg

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/layout"
	"github.com/elyrion/platsat/pkg/platform"
	"github.com/elyrion/platsat/pkg/validate"
	"github.com/elyrion/platsat/pkg/world"
)

// Options configures SVG rendering of a layout.
type Options struct {
	CellSize int    // Pixel size of one world cell (default: 32)
	Margin   int    // Canvas margin in pixels (default: 40)
	Title    string // Optional title drawn above the grid
}

// DefaultOptions returns sensible default rendering options.
func DefaultOptions() Options {
	return Options{CellSize: 32, Margin: 40, Title: "Platform Layout"}
}

// Render draws l over w as an SVG image: one square per world cell,
// terrain tinted darker than empty ground, and a translucent rectangle
// per placed platform. If result is non-nil, its findings are overlaid:
// unsupported terrain cells are tinted red, and platforms appearing in
// result's overlap or out-of-bounds sets are outlined red instead of blue.
func Render(l *layout.PlatformLayout, w *world.World, result *validate.Result, opts Options) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("layoutsvg: layout is nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 32
	}
	if opts.Margin < 0 {
		opts.Margin = 40
	}

	dims := w.Dims()
	width := int(dims.W)*opts.CellSize + 2*opts.Margin
	height := int(dims.H)*opts.CellSize + 2*opts.Margin
	titleOffset := 0
	if opts.Title != "" {
		titleOffset = 30
		height += titleOffset
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title, "text-anchor:middle;font-size:16px;fill:#e2e8f0")
	}

	var unsupported map[geom.Point]bool
	var flagged map[platform.Platform]bool
	if result != nil {
		unsupported = pointSet(result.UnsupportedTerrain)
		flagged = platformSet(result.OverlappingPlatforms, result.OutOfBoundsPlatforms)
	}

	for _, p := range dims.IterWithin() {
		x := opts.Margin + p.X*opts.CellSize
		y := opts.Margin + titleOffset + p.Y*opts.CellSize

		fill := "#2d3748"
		if w.IsTerrain(p) {
			fill = "#4a5568"
			if unsupported[p] {
				fill = "#c53030"
			}
		}
		canvas.Rect(x, y, opts.CellSize, opts.CellSize, fmt.Sprintf("fill:%s;stroke:#1a1a2e;stroke-width:1", fill))
	}

	for _, plat := range l.Platforms() {
		d := plat.EffectiveDims()
		x := opts.Margin + plat.Origin.X*opts.CellSize
		y := opts.Margin + titleOffset + plat.Origin.Y*opts.CellSize
		pw := int(d.W) * opts.CellSize
		ph := int(d.H) * opts.CellSize

		stroke := "stroke:#63b3ed;stroke-width:2"
		if flagged[plat] {
			stroke = "stroke:#f56565;stroke-width:3"
		}
		canvas.Rect(x, y, pw, ph, fmt.Sprintf("fill:#2b6cb0;fill-opacity:0.55;%s", stroke))
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders l and writes the SVG to path.
func SaveToFile(l *layout.PlatformLayout, w *world.World, result *validate.Result, opts Options, path string) error {
	data, err := Render(l, w, result, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func pointSet(pts []geom.Point) map[geom.Point]bool {
	set := make(map[geom.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

func platformSet(groups ...[]platform.Platform) map[platform.Platform]bool {
	set := make(map[platform.Platform]bool)
	for _, group := range groups {
		for _, p := range group {
			set[p] = true
		}
	}
	return set
}
