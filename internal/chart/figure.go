// Package chart draws the shopping-trends figures with gonum/plot.
//
// A Figure is a grid of plots that is encoded as a single image. Figures are
// written to files so the program runs the same on a desktop and in CI.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ErrRenderUnavailable is returned when a figure cannot be built from the
// table, typically because an expected column is absent or has the wrong type.
var ErrRenderUnavailable = errors.New("render unavailable")

// Figure canvas size.
const (
	Width  = 20 * vg.Inch
	Height = 10 * vg.Inch
)

// Format is an image encoding for figures.
type Format string

// Supported image formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Formats lists the values accepted for the image_format setting.
var Formats = []Format{FormatPNG, FormatSVG}

// Figure is a fixed grid of plots filled row by row.
type Figure struct {
	Name  string
	Rows  int
	Cols  int
	Plots []*plot.Plot
}

type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

// Encode draws the figure onto a Width x Height canvas and writes it to w.
func (f *Figure) Encode(w io.Writer, format Format) error {
	if len(f.Plots) != f.Rows*f.Cols {
		return fmt.Errorf("figure %s: %d plots do not fill a %dx%d grid", f.Name, len(f.Plots), f.Rows, f.Cols)
	}

	var c canvasWriter
	switch format {
	case FormatPNG:
		c = vgimg.PngCanvas{Canvas: vgimg.New(Width, Height)}
	case FormatSVG:
		c = vgsvg.New(Width, Height)
	default:
		return fmt.Errorf("figure %s: unsupported image format %q", f.Name, format)
	}

	grid := make([][]*plot.Plot, f.Rows)
	for r := range grid {
		grid[r] = f.Plots[r*f.Cols : (r+1)*f.Cols]
	}

	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 3,
		PadLeft:   vg.Millimeter * 3,
		PadRight:  vg.Millimeter * 3,
	}
	canvases := plot.Align(grid, tiles, draw.New(c))
	for r, row := range grid {
		for col, p := range row {
			p.Draw(canvases[r][col])
		}
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("figure %s: encode %s: %w", f.Name, format, err)
	}
	return nil
}

// Save writes the figure to dir/<name>.<format>, creating dir if needed, and
// returns the file path.
func Save(f *Figure, dir string, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, f.Name+"."+string(format))
	file, err := os.Create(path) //nolint:gosec // path is built from configured output directory
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := f.Encode(file, format); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
