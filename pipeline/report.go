package pipeline

import (
	"time"

	"github.com/katalvlaran/lvlath-corpus/catalog"
)

// maxRecordedFailures bounds Report.Failures; Report.Failed keeps counting.
const maxRecordedFailures = 100

// Failure is one cell that did not complete.
type Failure struct {
	Cell string
	Err  error
}

// Report summarizes one stage run.
type Report struct {
	RunID      string
	Stage      string
	Cells      int
	Failed     int
	Graphs     int
	Variants   int
	Properties int
	Prompts    int
	Bytes      int64
	Failures   []Failure
	Elapsed    time.Duration
}

// OK reports whether every cell succeeded.
func (r *Report) OK() bool { return r.Failed == 0 }

// tally is what a single cell produced.
type tally struct {
	graphs     int
	variants   int
	properties int
	prompts    int
	bytes      int64
	entries    []catalog.Entry
}

func (r *Report) add(t tally) {
	r.Graphs += t.graphs
	r.Variants += t.variants
	r.Properties += t.properties
	r.Prompts += t.prompts
	r.Bytes += t.bytes
}

func (r *Report) fail(cell string, err error) {
	r.Failed++
	if len(r.Failures) < maxRecordedFailures {
		r.Failures = append(r.Failures, Failure{Cell: cell, Err: err})
	}
}
