// Package ui provides terminal progress feedback for the commands that
// can run long: solving, batch solving, and puzzle generation. In
// verbose mode the spinner stays hidden, since the per-step log lines
// already show progress.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/lazorproj/lazor-solver/pkg/common"
)

// Progress is a spinner tied to one long-running operation on one
// subject (a puzzle file, a directory of puzzles, a difficulty tier).
// Its suffix always reads "<verb> <subject>", optionally extended with
// a running count of the work done so far.
type Progress struct {
	sp      *spinner.Spinner
	verb    string
	subject string
}

// NewProgress builds a spinner for an operation described by a verb and
// its subject, e.g. NewProgress("solving", "puzzle.bff").
func NewProgress(verb, subject string) *Progress {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	p := &Progress{sp: sp, verb: verb, subject: subject}
	sp.Suffix = p.suffix("")
	_ = sp.Color("cyan", "bold") // Color only fails on unknown attribute names.
	return p
}

func (p *Progress) suffix(extra string) string {
	if extra == "" {
		return fmt.Sprintf(" %s %s", p.verb, p.subject)
	}
	return fmt.Sprintf(" %s %s (%s)", p.verb, p.subject, extra)
}

// Start shows the spinner unless verbose logging is on.
func (p *Progress) Start() {
	if !common.VerboseEnabled {
		p.sp.Start()
	}
}

// Stop hides the spinner.
func (p *Progress) Stop() {
	p.sp.Stop()
}

// Placements updates the suffix with how many candidate placements the
// solver has tried so far.
func (p *Progress) Placements(tried int) {
	p.sp.Suffix = p.suffix(fmt.Sprintf("%d placements tried", tried))
}

// Files updates the suffix with how many puzzles of a batch have
// finished so far.
func (p *Progress) Files(done int) {
	p.sp.Suffix = p.suffix(fmt.Sprintf("%d finished", done))
}

// Log prints an info line without the spinner tearing it.
func (p *Progress) Log(format string, args ...interface{}) {
	p.interrupt(func() { common.Info(format, args...) })
}

// Warn prints a warning line without the spinner tearing it.
func (p *Progress) Warn(format string, args ...interface{}) {
	p.interrupt(func() { common.Warning(format, args...) })
}

// interrupt pauses an active spinner around emit so its frames never
// overwrite the printed line, then resumes it.
func (p *Progress) interrupt(emit func()) {
	active := p.sp.Active()
	if active {
		p.sp.Stop()
	}
	emit()
	if active && !common.VerboseEnabled {
		p.sp.Start()
	}
}
