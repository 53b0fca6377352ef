// Package bff reads and writes the .bff puzzle description format: a
// GRID START/STOP character block, A/B/C budget lines, L emitter lines,
// and P target lines. Comments start with # and blank lines are ignored.
package bff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lazorproj/lazor-solver/pkg/lattice"
	"github.com/lazorproj/lazor-solver/pkg/lazorerr"
	"github.com/lazorproj/lazor-solver/pkg/model"
	"github.com/lazorproj/lazor-solver/pkg/puzzle"
)

var gridKinds = map[byte]model.BlockKind{
	'x': model.None,
	'o': model.Empty,
	'A': model.Reflect,
	'B': model.Opaque,
	'C': model.Refract,
}

var budgetKeys = map[string]model.BlockKind{
	"A": model.Reflect,
	"B": model.Opaque,
	"C": model.Refract,
}

// ParseFile reads and parses a .bff file from disk.
func ParseFile(path string) (*puzzle.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bff: failed to open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		if pe, ok := err.(*lazorerr.ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return p, nil
}

// Parse reads a .bff document from r.
func Parse(r io.Reader) (*puzzle.Puzzle, error) {
	var rows [][]byte
	var emitters []model.Laser
	targets := make(map[model.Point]struct{})
	budget := make(model.Budget)

	scanner := bufio.NewScanner(r)
	inGrid := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case line == "GRID START":
			inGrid = true
			continue
		case line == "GRID STOP":
			inGrid = false
			continue
		case inGrid:
			row, err := parseGridRow(line, lineNo)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		case strings.HasPrefix(line, "L "):
			l, err := parseEmitter(line, lineNo)
			if err != nil {
				return nil, err
			}
			emitters = append(emitters, l)
		case strings.HasPrefix(line, "P "):
			pt, err := parseTarget(line, lineNo)
			if err != nil {
				return nil, err
			}
			targets[pt] = struct{}{}
		case strings.HasPrefix(line, "A ") || strings.HasPrefix(line, "B ") || strings.HasPrefix(line, "C "):
			kind, n, err := parseBudget(line, lineNo)
			if err != nil {
				return nil, err
			}
			budget[kind] = n
		default:
			return nil, &lazorerr.ParseError{Line: lineNo, Msg: fmt.Sprintf("unrecognised line: %q", line)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bff: scan error: %w", err)
	}
	if len(rows) == 0 {
		return nil, &lazorerr.ParseError{Line: lineNo, Msg: "no GRID block found"}
	}

	lat, err := buildLattice(rows)
	if err != nil {
		return nil, err
	}

	for pt := range targets {
		if !lat.InBounds(pt.X, pt.Y) {
			return nil, &lazorerr.ParseError{Line: lineNo, Msg: fmt.Sprintf("target (%d,%d) out of bounds", pt.X, pt.Y)}
		}
	}
	for _, l := range emitters {
		if !lat.InBounds(l.X, l.Y) {
			return nil, &lazorerr.ParseError{Line: lineNo, Msg: fmt.Sprintf("emitter (%d,%d) out of bounds", l.X, l.Y)}
		}
	}
	if budget.Total() > len(lat.EmptyPositions()) {
		return nil, &lazorerr.ParseError{Line: lineNo, Msg: "budget exceeds number of empty cells"}
	}

	return &puzzle.Puzzle{
		Lattice0: lat,
		Emitters: emitters,
		Targets:  targets,
		Budget:   budget,
	}, nil
}

func parseGridRow(line string, lineNo int) ([]byte, error) {
	row := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if _, ok := gridKinds[c]; !ok {
			return nil, &lazorerr.ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown grid character %q", c)}
		}
		row = append(row, c)
	}
	return row, nil
}

func parseEmitter(line string, lineNo int) (model.Laser, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return model.Laser{}, &lazorerr.ParseError{Line: lineNo, Msg: "L line must have 4 fields: x y vx vy"}
	}
	nums, err := atoiAll(fields[1:])
	if err != nil {
		return model.Laser{}, &lazorerr.ParseError{Line: lineNo, Msg: err.Error()}
	}
	return model.Laser{X: nums[0], Y: nums[1], VX: nums[2], VY: nums[3]}, nil
}

func parseTarget(line string, lineNo int) (model.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return model.Point{}, &lazorerr.ParseError{Line: lineNo, Msg: "P line must have 2 fields: x y"}
	}
	nums, err := atoiAll(fields[1:])
	if err != nil {
		return model.Point{}, &lazorerr.ParseError{Line: lineNo, Msg: err.Error()}
	}
	return model.Point{X: nums[0], Y: nums[1]}, nil
}

func parseBudget(line string, lineNo int) (model.BlockKind, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, &lazorerr.ParseError{Line: lineNo, Msg: "budget line must have 2 fields: letter count"}
	}
	kind, ok := budgetKeys[fields[0]]
	if !ok {
		return 0, 0, &lazorerr.ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown budget letter %q", fields[0])}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, 0, &lazorerr.ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid budget count %q", fields[1])}
	}
	return kind, n, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out[i] = n
	}
	return out, nil
}

// buildLattice pads an M x N character grid into the half-integer lattice:
// a NONE row/column border plus a NONE row/column interleaved between every
// source row/column, so a source cell at (r, c) lands at (2c+1, 2r+1).
func buildLattice(rows [][]byte) (*lattice.Lattice, error) {
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, &lazorerr.ParseError{Msg: "grid rows have inconsistent length"}
		}
	}

	w := 2*cols + 1
	h := 2*len(rows) + 1
	lat := lattice.New(w, h)

	for r, row := range rows {
		y := 2*r + 1
		for c, ch := range row {
			x := 2*c + 1
			kind := gridKinds[ch]
			fixed := kind != model.Empty
			lat.SetRaw(x, y, model.Block{Kind: kind, Fixed: fixed})
		}
	}
	return lat, nil
}

// Write serialises a puzzle back to .bff text, the structural inverse of
// Parse, used by the puzzle generator to persist planted puzzles.
func Write(w io.Writer, p *puzzle.Puzzle) error {
	lat := p.Lattice0
	cols := (lat.W - 1) / 2
	rows := (lat.H - 1) / 2

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "GRID START")
	for r := 0; r < rows; r++ {
		y := 2*r + 1
		line := make([]byte, cols)
		for c := 0; c < cols; c++ {
			x := 2*c + 1
			line[c] = byte(lat.Get(x, y).Kind.String()[0])
		}
		fmt.Fprintln(bw, string(line))
	}
	fmt.Fprintln(bw, "GRID STOP")

	for _, letter := range []string{"A", "B", "C"} {
		kind := budgetKeys[letter]
		fmt.Fprintf(bw, "%s %d\n", letter, p.Budget[kind])
	}
	for _, l := range p.Emitters {
		fmt.Fprintf(bw, "L %d %d %d %d\n", l.X, l.Y, l.VX, l.VY)
	}
	for pt := range p.Targets {
		fmt.Fprintf(bw, "P %d %d\n", pt.X, pt.Y)
	}
	return bw.Flush()
}
