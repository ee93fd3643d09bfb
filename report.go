package optim

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Reporter receives progress notifications from the Iteration Driver. The
// default TableReporter renders the fixed-format terminal table from
// spec.md §6; a caller may supply any other Reporter (or nil) to redirect
// or suppress output — logging I/O is explicitly an external collaborator
// (spec.md §1), not a core concern.
type Reporter interface {
	Header()
	Row(rec IterationRecord)
}

// TableReporter writes the "date  time  iter  log10(f)" table described in
// spec.md §6 to an io.Writer.
type TableReporter struct {
	W   io.Writer
	Now func() time.Time
}

// NewTableReporter returns a TableReporter writing to w, using time.Now for
// timestamps.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{W: w, Now: time.Now}
}

func (t *TableReporter) Header() {
	fmt.Fprintf(t.W, "%-10s %-8s %6s %12s\n", "date", "time", "iter", "log10(f)")
}

func (t *TableReporter) Row(rec IterationRecord) {
	now := t.Now()
	logF := math.Log10(math.Abs(rec.F))
	fmt.Fprintf(t.W, "%-10s %-8s %6d %12.6f\n", now.Format("2006-01-02"), now.Format("15:04:05"), rec.K, logF)
}

// nopReporter discards all progress output; used when Config.Progress == 0.
type nopReporter struct{}

func (nopReporter) Header()                 {}
func (nopReporter) Row(rec IterationRecord) {}
