package batch

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const solvableDoc = `GRID START
oo
oo
GRID STOP
A 0
B 0
C 0
L 1 0 1 1
P 4 3
`

const infeasibleDoc = `GRID START
oo
oo
GRID STOP
A 0
B 0
C 0
L 1 0 1 1
P 1 1
`

const malformedDoc = `GRID START
oZ
GRID STOP
`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func sortedResults(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out
}

func TestRunSolvesEveryFixtureAndCountsOutcomes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "solvable.bff", solvableDoc)
	writeFixture(t, dir, "infeasible.bff", infeasibleDoc)
	writeFixture(t, dir, "malformed.bff", malformedDoc)

	summary, err := Run(Config{Dir: dir, Workers: 4})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(summary.Results))
	}
	if summary.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1", summary.SuccessCount)
	}
	if summary.FailureCount != 2 {
		t.Errorf("FailureCount = %d, want 2", summary.FailureCount)
	}

	byFile := make(map[string]Result, len(summary.Results))
	for _, r := range summary.Results {
		byFile[filepath.Base(r.File)] = r
	}
	if r := byFile["solvable.bff"]; !r.Solved || r.Error != "" {
		t.Errorf("solvable.bff result = %+v, want Solved=true, no error", r)
	}
	if r := byFile["infeasible.bff"]; r.Solved || r.Error != "" {
		t.Errorf("infeasible.bff result = %+v, want Solved=false, no error", r)
	}
	if r := byFile["malformed.bff"]; r.Error == "" {
		t.Errorf("malformed.bff result = %+v, want a parse error", r)
	}
}

func TestRunConcurrentMatchesSerialOutcomes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.bff", solvableDoc)
	writeFixture(t, dir, "b.bff", infeasibleDoc)
	writeFixture(t, dir, "c.bff", malformedDoc)

	serial, err := Run(Config{Dir: dir, Workers: 1})
	if err != nil {
		t.Fatalf("serial Run returned error: %v", err)
	}
	concurrent, err := Run(Config{Dir: dir, Workers: 8})
	if err != nil {
		t.Fatalf("concurrent Run returned error: %v", err)
	}

	serialResults := sortedResults(serial.Results)
	concurrentResults := sortedResults(concurrent.Results)

	if len(serialResults) != len(concurrentResults) {
		t.Fatalf("serial produced %d results, concurrent produced %d", len(serialResults), len(concurrentResults))
	}
	for i := range serialResults {
		s, c := serialResults[i], concurrentResults[i]
		if s.File != c.File || s.Solved != c.Solved || (s.Error == "") != (c.Error == "") {
			t.Errorf("result %d diverges between serial and concurrent runs: %+v vs %+v", i, s, c)
		}
	}
	if serial.SuccessCount != concurrent.SuccessCount || serial.FailureCount != concurrent.FailureCount {
		t.Errorf("aggregate counts diverge: serial success=%d fail=%d, concurrent success=%d fail=%d",
			serial.SuccessCount, serial.FailureCount, concurrent.SuccessCount, concurrent.FailureCount)
	}
}

func TestRunInvokesOnResultOncePerFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.bff", solvableDoc)
	writeFixture(t, dir, "b.bff", infeasibleDoc)
	writeFixture(t, dir, "c.bff", malformedDoc)

	// OnResult runs on Run's own goroutine, so a plain counter is safe.
	var calls int
	summary, err := Run(Config{Dir: dir, Workers: 4, OnResult: func(Result) { calls++ }})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if calls != len(summary.Results) {
		t.Errorf("OnResult invoked %d times, want %d (once per file)", calls, len(summary.Results))
	}
}

func TestRunWorkersBelowOneIsCoercedToOne(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "solvable.bff", solvableDoc)

	summary, err := Run(Config{Dir: dir, Workers: 0})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(summary.Results))
	}
}

func TestRunEmptyDirectoryYieldsEmptySummary(t *testing.T) {
	dir := t.TempDir()
	summary, err := Run(Config{Dir: dir, Workers: 2})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(summary.Results) != 0 || summary.SuccessCount != 0 || summary.FailureCount != 0 {
		t.Errorf("expected an empty summary, got %+v", summary)
	}
}

func TestRunWritesStatsFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "solvable.bff", solvableDoc)
	statsPath := filepath.Join(dir, "stats.json")

	if _, err := Run(Config{Dir: dir, Workers: 1, StatsOut: statsPath}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if _, err := os.Stat(statsPath); err != nil {
		t.Errorf("expected stats file at %s: %v", statsPath, err)
	}
}
