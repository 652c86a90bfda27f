package wizard

import (
	"context"
	"errors"
)

// ErrInputClosed is returned by a Scanner whose input has ended for good.
var ErrInputClosed = errors.New("scanner input closed")

// Labels passed to Scanner.Scan for each reading.
const (
	LabelBoardingPass = "boarding pass code"
	LabelBagTag       = "bag tag"
	LabelLength       = "length (cm)"
	LabelWidth        = "width (cm)"
	LabelHeight       = "height (cm)"
)

// Scanner produces one reading per call. A prompt-driven simulation and a
// real barcode or measuring device implement the same contract.
//
// ok is false when the reading was cancelled or empty; the caller stays on
// the current step. A non-nil error means the device is unusable and the run
// must stop.
type Scanner interface {
	Scan(ctx context.Context, label string) (value string, ok bool, err error)
}

// ScannerFunc adapts a function to the Scanner interface.
type ScannerFunc func(ctx context.Context, label string) (string, bool, error)

// Scan calls f.
func (f ScannerFunc) Scan(ctx context.Context, label string) (string, bool, error) {
	return f(ctx, label)
}
