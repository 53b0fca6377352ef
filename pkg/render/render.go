// Package render draws a lattice and a simulated laser path to a terminal
// writer or a PNG image. Both renderers show the logical block-slot grid
// only; the interstitial padding cells are an internal coordinate detail
// and are never drawn.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	fcolor "github.com/fatih/color"

	"github.com/lazorproj/lazor-solver/pkg/lattice"
	"github.com/lazorproj/lazor-solver/pkg/model"
)

var (
	hitColor   = fcolor.New(fcolor.FgGreen, fcolor.Bold)
	missColor  = fcolor.New(fcolor.FgRed, fcolor.Bold)
	traceColor = fcolor.New(fcolor.FgYellow)
)

// RenderToWriter prints the block-slot grid of lat (the logical source
// cells, skipping the None padding), coloring cells the laser visited and
// marking which targets were hit. style selects "ascii" or "unicode" glyphs.
func RenderToWriter(w io.Writer, lat *lattice.Lattice, visited map[model.Point]struct{}, targets map[model.Point]struct{}, style string) {
	cols := (lat.W - 1) / 2
	rows := (lat.H - 1) / 2

	unicode := style != "ascii"
	emptyGlyph := "."
	if unicode {
		emptyGlyph = "·"
	}

	fmt.Fprintf(w, "lattice %dx%d (%d cols x %d rows)\n", lat.W, lat.H, cols, rows)

	printBorder(w, cols)
	for r := 0; r < rows; r++ {
		fmt.Fprintf(w, "%2d |", r)
		y := 2*r + 1
		for c := 0; c < cols; c++ {
			x := 2*c + 1
			pt := model.Point{X: x, Y: y}
			glyph := blockGlyph(lat.Get(x, y).Kind, emptyGlyph)
			fmt.Fprint(w, " ")
			writeCell(w, pt, glyph, visited, targets)
		}
		fmt.Fprint(w, " |\n")
	}
	printBorder(w, cols)

	fmt.Fprint(w, "   ")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(w, "%2d", c%100)
	}
	fmt.Fprintln(w)

	hit, total := 0, len(targets)
	for t := range targets {
		if _, ok := visited[t]; ok {
			hit++
		}
	}
	fmt.Fprintf(w, "\ntargets hit: %d/%d\n", hit, total)
}

func writeCell(w io.Writer, pt model.Point, glyph string, visited, targets map[model.Point]struct{}) {
	_, isTarget := targets[pt]
	_, isVisited := visited[pt]

	switch {
	case isTarget && isVisited:
		hitColor.Fprint(w, glyph)
	case isTarget:
		missColor.Fprint(w, glyph)
	case isVisited:
		traceColor.Fprint(w, glyph)
	default:
		fmt.Fprint(w, glyph)
	}
}

func printBorder(w io.Writer, cols int) {
	fmt.Fprint(w, "   +")
	for c := 0; c < cols; c++ {
		fmt.Fprint(w, "--")
	}
	fmt.Fprint(w, "-+\n")
}

func blockGlyph(kind model.BlockKind, emptyGlyph string) string {
	switch kind {
	case model.Empty:
		return emptyGlyph
	case model.Reflect:
		return "A"
	case model.Opaque:
		return "B"
	case model.Refract:
		return "C"
	default:
		return emptyGlyph
	}
}

const cellPx = 24

var (
	bgColor      = color.RGBA{20, 20, 24, 255}
	gridColor    = color.RGBA{60, 60, 68, 255}
	reflectColor = color.RGBA{120, 180, 255, 255}
	opaqueColor  = color.RGBA{90, 90, 90, 255}
	refractColor = color.RGBA{255, 200, 100, 255}
	laserColor   = color.RGBA{255, 40, 40, 255}
	targetHit    = color.RGBA{60, 220, 90, 255}
	targetMiss   = color.RGBA{220, 60, 60, 255}
)

// RenderToPNG rasterises the same grid as RenderToWriter into a PNG image,
// one cellPx x cellPx square per logical cell, with the laser trace drawn
// as a thin line over the cell centers it passed through.
func RenderToPNG(w io.Writer, lat *lattice.Lattice, trace [][]model.Point, targets map[model.Point]struct{}) error {
	cols := (lat.W - 1) / 2
	rows := (lat.H - 1) / 2

	img := image.NewRGBA(image.Rect(0, 0, cols*cellPx, rows*cellPx))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bgColor}, image.Point{}, draw.Src)

	visited := make(map[model.Point]struct{})
	for _, path := range trace {
		for _, pt := range path {
			visited[pt] = struct{}{}
		}
	}

	for r := 0; r < rows; r++ {
		y := 2*r + 1
		for c := 0; c < cols; c++ {
			x := 2*c + 1
			drawCell(img, r, c, lat.Get(x, y).Kind)
		}
	}

	for t := range targets {
		r, c := (t.Y-1)/2, (t.X-1)/2
		col := targetMiss
		if _, ok := visited[t]; ok {
			col = targetHit
		}
		drawMarker(img, r, c, col)
	}

	for _, path := range trace {
		drawPath(img, path, laserColor)
	}

	return png.Encode(w, img)
}

func drawCell(img *image.RGBA, r, c int, kind model.BlockKind) {
	rect := image.Rect(c*cellPx, r*cellPx, (c+1)*cellPx, (r+1)*cellPx)
	var fill color.RGBA
	switch kind {
	case model.Reflect:
		fill = reflectColor
	case model.Opaque:
		fill = opaqueColor
	case model.Refract:
		fill = refractColor
	default:
		fill = bgColor
	}
	draw.Draw(img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	drawRectOutline(img, rect, gridColor)
}

func drawRectOutline(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetRGBA(x, rect.Min.Y, c)
		img.SetRGBA(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetRGBA(rect.Min.X, y, c)
		img.SetRGBA(rect.Max.X-1, y, c)
	}
}

func drawMarker(img *image.RGBA, r, c int, col color.RGBA) {
	cx := c*cellPx + cellPx/2
	cy := r*cellPx + cellPx/2
	radius := cellPx / 6
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}

// cellCenter maps a lattice point (even on the None grid, since laser
// positions live on the full integer lattice) to pixel coordinates.
func cellCenter(pt model.Point) (int, int) {
	c := pt.X / 2
	r := pt.Y / 2
	return c*cellPx + cellPx/2, r*cellPx + cellPx/2
}

func drawPath(img *image.RGBA, path []model.Point, col color.RGBA) {
	for i := 1; i < len(path); i++ {
		x0, y0 := cellCenter(path[i-1])
		x1, y1 := cellCenter(path[i])
		drawLine(img, x0, y0, x1, y1, col)
	}
}

// drawLine is a standard Bresenham rasterizer; image/draw has no line
// primitive.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if img.Bounds().Min.X <= x0 && x0 < img.Bounds().Max.X && img.Bounds().Min.Y <= y0 && y0 < img.Bounds().Max.Y {
			img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
