// Package wizard implements the bag-drop kiosk flow: scan a boarding pass,
// scan a bag tag, measure the bag, then show the decision.
//
// State is a value. Every capture returns a new State and leaves its receiver
// untouched, so a rejected capture simply hands back the state it started from.
package wizard

import (
	"errors"
	"fmt"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/model"
)

// ErrWrongStep is returned when a capture is attempted at a step that does not accept it.
var ErrWrongStep = errors.New("wizard: capture not allowed at this step")

// Step is a position in the kiosk flow.
type Step int

const (
	StepIdle Step = iota
	StepBoardingPassScanned
	StepBagTagScanned
	StepDimensionsScanned
)

// String returns the step name used in logs.
func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepBoardingPassScanned:
		return "boarding_pass_scanned"
	case StepBagTagScanned:
		return "bag_tag_scanned"
	case StepDimensionsScanned:
		return "dimensions_scanned"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Action returns the label of the single control offered at this step.
// The terminal step has no action.
func (s Step) Action() string {
	switch s {
	case StepIdle:
		return "Scan Boarding Pass"
	case StepBoardingPassScanned:
		return "Scan Bag Tag"
	case StepBagTagScanned:
		return "Scan Bag Dimensions"
	}
	return ""
}

// Terminal reports whether no further transitions exist from s.
func (s Step) Terminal() bool {
	return s == StepDimensionsScanned
}

// State is everything captured so far in one run.
type State struct {
	Step         Step
	BoardingPass string
	BagTag       string
	Dimensions   model.Dimensions
}

// Decision is the drop decision for the captured dimensions. It is empty
// until the dimensions step has completed.
func (s State) Decision() model.Decision {
	if !s.Step.Terminal() {
		return ""
	}
	return model.Decide(s.Dimensions)
}

// CaptureBoardingPass stores the boarding pass code and moves to the bag tag step.
func (s State) CaptureBoardingPass(raw string) (State, error) {
	if s.Step != StepIdle {
		return s, fmt.Errorf("%w: boarding pass at %s", ErrWrongStep, s.Step)
	}
	code, err := model.ValidateCode(model.FieldBoardingPass, raw)
	if err != nil {
		return s, err
	}
	next := s
	next.BoardingPass = code
	next.Step = StepBoardingPassScanned
	return next, nil
}

// CaptureBagTag stores the bag tag and moves to the dimensions step.
func (s State) CaptureBagTag(raw string) (State, error) {
	if s.Step != StepBoardingPassScanned {
		return s, fmt.Errorf("%w: bag tag at %s", ErrWrongStep, s.Step)
	}
	code, err := model.ValidateCode(model.FieldBagTag, raw)
	if err != nil {
		return s, err
	}
	next := s
	next.BagTag = code
	next.Step = StepBagTagScanned
	return next, nil
}

// CaptureDimensions parses the three measurements and moves to the
// terminal step, where Decision becomes available. If any measurement is invalid nothing changes.
func (s State) CaptureDimensions(length, width, height string) (State, error) {
	if s.Step != StepBagTagScanned {
		return s, fmt.Errorf("%w: dimensions at %s", ErrWrongStep, s.Step)
	}
	d, err := model.ParseDimensions(length, width, height)
	if err != nil {
		return s, err
	}
	next := s
	next.Dimensions = d
	next.Step = StepDimensionsScanned
	return next, nil
}

// Summary returns the record of a finished run. It is only meaningful at the terminal step.
func (s State) Summary() model.Summary {
	return model.Summary{
		BoardingPass: s.BoardingPass,
		BagTag:       s.BagTag,
		Dimensions:   s.Dimensions,
		Decision:     s.Decision(),
	}
}
