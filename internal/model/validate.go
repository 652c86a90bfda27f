package model

import (
	"math"
	"strconv"
	"strings"
)

// Field names used in validation errors.
const (
	FieldBoardingPass = "boarding_pass"
	FieldBagTag       = "bag_tag"
	FieldLength       = "length"
	FieldWidth        = "width"
	FieldHeight       = "height"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Fields returns the names of the fields that failed, in order.
func (e *ValidationError) Fields() []string {
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = fe.Field
	}
	return names
}

// ValidateCode checks a scanned code (boarding pass or bag tag) and returns it
// with surrounding whitespace removed. Codes are opaque; only presence is checked.
func ValidateCode(field, raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", &ValidationError{Errors: []FieldError{{Field: field, Message: "is required"}}}
	}
	return code, nil
}

// ParseMeasurement parses one bag measurement in centimeters.
func ParseMeasurement(field, raw string) (float64, error) {
	v, fe := parseMeasurement(field, raw)
	if fe != nil {
		return 0, &ValidationError{Errors: []FieldError{*fe}}
	}
	return v, nil
}

// ParseDimensions parses all three measurements. Every failing field is
// reported, not only the first.
func ParseDimensions(length, width, height string) (Dimensions, error) {
	var ve ValidationError
	var d Dimensions

	for _, m := range []struct {
		field string
		raw   string
		dst   *float64
	}{
		{FieldLength, length, &d.Length},
		{FieldWidth, width, &d.Width},
		{FieldHeight, height, &d.Height},
	} {
		v, fe := parseMeasurement(m.field, m.raw)
		if fe != nil {
			ve.Errors = append(ve.Errors, *fe)
			continue
		}
		*m.dst = v
	}

	if ve.HasErrors() {
		return Dimensions{}, &ve
	}
	return d, nil
}

func parseMeasurement(field, raw string) (float64, *FieldError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &FieldError{Field: field, Message: "is required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Message: "must be a number, got " + strconv.Quote(s)}
	}
	// ParseFloat accepts "NaN" and "Inf".
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Message: "must be a finite number, got " + strconv.Quote(s)}
	}
	return v, nil
}
