package model

import (
	"fmt"
	"strconv"
)

// Decision is the outcome of a bag-drop size check.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRefused  Decision = "REFUSED"
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	return string(d)
}

// IsValid checks whether the decision is a known value.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionApproved, DecisionRefused:
		return true
	}
	return false
}

// Dimensions are the measured length, width and height of a bag in centimeters.
type Dimensions struct {
	Length float64 `json:"length" toml:"length"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// AllowedDimensions is the largest bag accepted at the kiosk. Each limit is inclusive.
var AllowedDimensions = Dimensions{Length: 55, Width: 40, Height: 20}

// String renders the dimensions as "L x W x H cm" using the shortest decimal
// form of each value.
func (d Dimensions) String() string {
	return fmt.Sprintf("%s x %s x %s cm", formatCM(d.Length), formatCM(d.Width), formatCM(d.Height))
}

// Fits reports whether every side of d is within the matching side of limit.
func (d Dimensions) Fits(limit Dimensions) bool {
	return d.Length <= limit.Length && d.Width <= limit.Width && d.Height <= limit.Height
}

// Decide returns the decision for a bag of the given dimensions.
func Decide(d Dimensions) Decision {
	if d.Fits(AllowedDimensions) {
		return DecisionApproved
	}
	return DecisionRefused
}

func formatCM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
