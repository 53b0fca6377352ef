package bff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lazorproj/lazor-solver/pkg/lazorerr"
	"github.com/lazorproj/lazor-solver/pkg/model"
)

const validDoc = `# a small fixture
GRID START
oo
ox
GRID STOP

A 2
B 0
C 1

L 1 0 1 1

P 4 3
`

func TestParseValidDocument(t *testing.T) {
	p, err := Parse(strings.NewReader(validDoc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if got := p.Budget[model.Reflect]; got != 2 {
		t.Errorf("budget[Reflect] = %d, want 2", got)
	}
	if got := p.Budget[model.Refract]; got != 1 {
		t.Errorf("budget[Refract] = %d, want 1", got)
	}
	if len(p.Emitters) != 1 || p.Emitters[0] != (model.Laser{X: 1, Y: 0, VX: 1, VY: 1}) {
		t.Errorf("emitters = %v, want a single (1,0,1,1)", p.Emitters)
	}
	if _, ok := p.Targets[model.Point{X: 4, Y: 3}]; !ok {
		t.Errorf("targets = %v, want (4,3) present", p.Targets)
	}

	// Grid row "ox" places a fixed None at logical cell (1,1) -> lattice (3,3).
	if k := p.Lattice0.Get(3, 3).Kind; k != model.None {
		t.Errorf("Get(3,3) = %v, want None", k)
	}
	if k := p.Lattice0.Get(1, 1).Kind; k != model.Empty {
		t.Errorf("Get(1,1) = %v, want Empty", k)
	}
}

func TestWriteThenParsePreservesGridAndBudget(t *testing.T) {
	original, err := Parse(strings.NewReader(validDoc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, original); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	roundTripped, err := Parse(&buf)
	if err != nil {
		t.Fatalf("re-parsing written document failed: %v\n--- document ---\n%s", err, buf.String())
	}

	for kind := range map[model.BlockKind]struct{}{model.Reflect: {}, model.Opaque: {}, model.Refract: {}} {
		if original.Budget[kind] != roundTripped.Budget[kind] {
			t.Errorf("budget[%v] = %d after round-trip, want %d", kind, roundTripped.Budget[kind], original.Budget[kind])
		}
	}

	for y := 0; y < original.Lattice0.H; y++ {
		for x := 0; x < original.Lattice0.W; x++ {
			want := original.Lattice0.Get(x, y).Kind
			got := roundTripped.Lattice0.Get(x, y).Kind
			if want != got {
				t.Errorf("Get(%d,%d) = %v after round-trip, want %v", x, y, got, want)
			}
		}
	}

	if len(roundTripped.Emitters) != len(original.Emitters) {
		t.Fatalf("emitters count = %d, want %d", len(roundTripped.Emitters), len(original.Emitters))
	}
	if len(roundTripped.Targets) != len(original.Targets) {
		t.Fatalf("targets count = %d, want %d", len(roundTripped.Targets), len(original.Targets))
	}
	for pt := range original.Targets {
		if _, ok := roundTripped.Targets[pt]; !ok {
			t.Errorf("target %+v missing after round-trip", pt)
		}
	}
}

func TestParseRejectsUnknownGridCharacter(t *testing.T) {
	doc := "GRID START\noZ\nGRID STOP\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "unknown grid character")
}

func TestParseRejectsMalformedEmitterLine(t *testing.T) {
	doc := "GRID START\noo\nGRID STOP\nL 1 0 1\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "4 fields")
}

func TestParseRejectsUnrecognisedLine(t *testing.T) {
	doc := "GRID START\noo\nGRID STOP\nD 1\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "unrecognised line")
}

func TestParseRejectsOutOfBoundsTarget(t *testing.T) {
	doc := "GRID START\no\nGRID STOP\nP 9 9\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "out of bounds")
}

func TestParseRejectsOutOfBoundsEmitter(t *testing.T) {
	doc := "GRID START\no\nGRID STOP\nL 99 99 1 1\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "out of bounds")
}

func TestParseRejectsBudgetExceedingEmptyCells(t *testing.T) {
	doc := "GRID START\no\nGRID STOP\nA 5\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "budget exceeds")
}

func TestParseRejectsInconsistentRowLengths(t *testing.T) {
	doc := "GRID START\noo\no\nGRID STOP\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "inconsistent length")
}

func TestParseRejectsMissingGridBlock(t *testing.T) {
	doc := "A 1\n"
	_, err := Parse(strings.NewReader(doc))
	assertParseError(t, err, "no GRID block")
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	doc := "# comment\n\nGRID START\n# another comment\noo\n\nGRID STOP\n"
	p, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(p.Lattice0.EmptyPositions()) != 2 {
		t.Errorf("expected 2 empty cells, got %d", len(p.Lattice0.EmptyPositions()))
	}
}

func assertParseError(t *testing.T, err error, wantSubstring string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
	pe, ok := err.(*lazorerr.ParseError)
	if !ok {
		t.Fatalf("expected *lazorerr.ParseError, got %T: %v", err, err)
	}
	if !strings.Contains(pe.Msg, wantSubstring) {
		t.Errorf("error message %q does not contain %q", pe.Msg, wantSubstring)
	}
}
