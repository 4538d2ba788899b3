package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/flexdao/flexgov/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner, used for the
// refund batch during resolution.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner with the current stage
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner && !r.spinner.Active() {
		r.spinner.Start()
	}

	if event.Total > 0 {
		r.spinner.Suffix = fmt.Sprintf(" %s (%d/%d) %s", event.Stage, event.Current, event.Total, event.Message)
	} else {
		r.spinner.Suffix = " " + event.Message
	}

	if !event.Spinner && r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info stops the spinner and prints an informational line
func (r *SpinnerSink) Info(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	fmt.Println(message)
}

// Error stops the spinner and prints an error line
func (r *SpinnerSink) Error(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	color.New(color.FgRed).Fprintln(os.Stderr, message)
}

// Stop halts the spinner if it is running
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}
