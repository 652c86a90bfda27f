package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/model"
	"github.com/sirupsen/logrus"
)

// View renders the kiosk screen for each step of a run.
type View interface {
	// ShowStep renders the single control offered at step.
	ShowStep(step Step) error
	// ShowRejected tells the user the last reading at step was not accepted.
	// It is only called when hints are enabled.
	ShowRejected(step Step) error
	// ShowSummary renders the terminal screen.
	ShowSummary(s model.Summary) error
}

// Runner drives one kiosk run against a Scanner and a View.
type Runner struct {
	scanner Scanner
	view    View
	log     *logrus.Entry
	hints   bool
	now     func() time.Time
	runID   string
	station string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the log entry used for run events.
func WithLogger(entry *logrus.Entry) Option {
	return func(r *Runner) { r.log = entry }
}

// WithHints makes the runner tell the user when a reading was not accepted.
func WithHints(enabled bool) Option {
	return func(r *Runner) { r.hints = enabled }
}

// WithClock overrides the time source used to stamp summaries.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithRunID sets the identifier recorded in logs and in the summary.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// WithStation sets the kiosk station name recorded in logs and in the summary.
func WithStation(station string) Option {
	return func(r *Runner) { r.station = station }
}

// NewRunner returns a Runner reading from scanner and rendering to view.
func NewRunner(scanner Scanner, view View, opts ...Option) *Runner {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Runner{
		scanner: scanner,
		view:    view,
		log:     logrus.NewEntry(discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithFields(logrus.Fields{
		"run_id":  r.runID,
		"station": r.station,
	})
	return r
}

// Run renders and advances the wizard from Idle until the decision is shown.
// Rejected or cancelled readings keep the run on the same step. Run returns
// early only if ctx is done or the scanner fails; the returned State is the
// last one reached.
func (r *Runner) Run(ctx context.Context) (State, error) {
	var s State
	r.log.Info("run started")

	for !s.Step.Terminal() {
		if err := r.view.ShowStep(s.Step); err != nil {
			return s, fmt.Errorf("rendering %s: %w", s.Step, err)
		}
		next, err := r.Step(ctx, s)
		if err != nil {
			r.log.WithError(err).WithField("step", s.Step.String()).Warn("run aborted")
			return s, err
		}
		if next.Step == s.Step && r.hints {
			if err := r.view.ShowRejected(s.Step); err != nil {
				return s, fmt.Errorf("rendering %s: %w", s.Step, err)
			}
		}
		s = next
	}

	summary := r.Summarize(s)
	r.log.WithFields(logrus.Fields{
		"dimensions": summary.Dimensions.String(),
		"decision":   summary.Decision.String(),
	}).Info("run completed")

	if err := r.view.ShowSummary(summary); err != nil {
		return s, fmt.Errorf("rendering summary: %w", err)
	}
	return s, nil
}

// Step performs the action offered at s.Step and returns the resulting state.
// Invalid or cancelled input is not an error: the unchanged state comes back
// with a nil error. At the terminal step Step returns s unchanged.
func (r *Runner) Step(ctx context.Context, s State) (State, error) {
	log := r.log.WithField("step", s.Step.String())

	var (
		next State
		err  error
	)
	switch s.Step {
	case StepIdle:
		value, ok, scanErr := r.scan(ctx, LabelBoardingPass)
		if scanErr != nil {
			return s, scanErr
		}
		if !ok {
			log.Debug("boarding pass scan cancelled")
			return s, nil
		}
		next, err = s.CaptureBoardingPass(value)
	case StepBoardingPassScanned:
		value, ok, scanErr := r.scan(ctx, LabelBagTag)
		if scanErr != nil {
			return s, scanErr
		}
		if !ok {
			log.Debug("bag tag scan cancelled")
			return s, nil
		}
		next, err = s.CaptureBagTag(value)
	case StepBagTagScanned:
		// All three readings are always taken, even after one was cancelled.
		var readings [3]string
		for i, label := range []string{LabelLength, LabelWidth, LabelHeight} {
			value, ok, scanErr := r.scan(ctx, label)
			if scanErr != nil {
				return s, scanErr
			}
			if ok {
				readings[i] = value
			}
		}
		next, err = s.CaptureDimensions(readings[0], readings[1], readings[2])
	default:
		return s, nil
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		log.WithField("fields", ve.Fields()).Debug("input rejected")
		return s, nil
	}
	if err != nil {
		return s, err
	}
	log.WithField("next", next.Step.String()).Info("step completed")
	return next, nil
}

// Summarize returns the summary of s stamped with this run's metadata.
func (r *Runner) Summarize(s State) model.Summary {
	summary := s.Summary()
	summary.RunID = r.runID
	summary.Station = r.station
	summary.CompletedAt = r.now().UTC()
	return summary
}

func (r *Runner) scan(ctx context.Context, label string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, ok, err := r.scanner.Scan(ctx, label)
	if err != nil {
		return "", false, fmt.Errorf("scanning %s: %w", label, err)
	}
	return value, ok, nil
}
