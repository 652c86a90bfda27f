package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/model"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/wizard"
)

// Title is the heading shown at the top of the kiosk screen.
const Title = "BagCheck Mobile"

// TextView renders the kiosk screens as plain lines of text.
type TextView struct {
	w           io.Writer
	headerShown bool
}

// NewTextView returns a TextView writing to w.
func NewTextView(w io.Writer) *TextView {
	return &TextView{w: w}
}

func (v *TextView) header() error {
	if v.headerShown {
		return nil
	}
	v.headerShown = true
	_, err := fmt.Fprintf(v.w, "%s\n\n", RenderAccent(Title))
	return err
}

// ShowStep renders the single control offered at step.
func (v *TextView) ShowStep(step wizard.Step) error {
	if err := v.header(); err != nil {
		return err
	}
	action := step.Action()
	if action == "" {
		return nil
	}
	_, err := fmt.Fprintf(v.w, "[ %s ]\n", RenderCommand(action))
	return err
}

// ShowRejected renders a neutral note that the last reading was not accepted.
func (v *TextView) ShowRejected(step wizard.Step) error {
	_, err := fmt.Fprintln(v.w, RenderMuted("  input not accepted, try again"))
	return err
}

// ShowSummary renders the captured values and the decision.
func (v *TextView) ShowSummary(s model.Summary) error {
	if err := v.header(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(v.w, "\n%s", FormatSummary(s))
	return err
}

// FormatSummary returns the terminal screen text for s, one field per line.
func FormatSummary(s model.Summary) string {
	return fmt.Sprintf("Boarding Pass: %s\nBag Tag: %s\nDimensions: %s\nDecision: %s\n",
		s.BoardingPass,
		s.BagTag,
		s.Dimensions,
		RenderDecision(s.Decision),
	)
}

// RenderDecision returns the decision label in its outcome color.
func RenderDecision(d model.Decision) string {
	switch d {
	case model.DecisionApproved:
		return RenderApproved(d.String())
	case model.DecisionRefused:
		return RenderRefused(d.String())
	}
	return d.String()
}

// JSONView renders nothing while the run is in progress and prints the
// summary as indented JSON at the end.
type JSONView struct {
	w io.Writer
}

// NewJSONView returns a JSONView writing to w.
func NewJSONView(w io.Writer) *JSONView {
	return &JSONView{w: w}
}

// ShowStep does nothing.
func (v *JSONView) ShowStep(wizard.Step) error { return nil }

// ShowRejected does nothing.
func (v *JSONView) ShowRejected(wizard.Step) error { return nil }

// ShowSummary writes s as JSON.
func (v *JSONView) ShowSummary(s model.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	_, err = fmt.Fprintln(v.w, string(data))
	return err
}
