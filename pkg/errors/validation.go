package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// CSS length units accepted by [ParseLength].
const (
	UnitPercent = "%"
	UnitPixel   = "px"
)

// ValidateFinite rejects NaN and ±Inf values for the named field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfiguration, "%s must be a finite number, got %v", field, v)
	}
	return nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
func ValidatePositive(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfiguration, "%s must be a positive number, got %v", field, v)
	}
	return nil
}

// ValidateIntRange rejects integers outside the inclusive range [lo, hi].
func ValidateIntRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfiguration, "%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}

// ValidateText validates a free-form display string such as a font family.
//
// The validation rules are intentionally conservative:
//   - No blank values (empty or whitespace only)
//   - No control characters
//   - Maximum length of 256 characters
func ValidateText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidConfiguration, "%s must not be empty", field)
	}

	if len(s) > 256 {
		return New(ErrCodeInvalidConfiguration, "%s too long (max 256 characters)", field)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfiguration, "%s contains invalid control characters", field)
		}
	}

	return nil
}

// ParseLength parses a CSS-style length such as "80%" or "600px".
// It returns the numeric value and the unit ([UnitPercent] or [UnitPixel]).
// The number must be finite and strictly positive.
func ParseLength(field, s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", New(ErrCodeInvalidConfiguration, "%s must not be empty", field)
	}

	var unit string
	switch {
	case strings.HasSuffix(s, UnitPercent):
		unit = UnitPercent
	case strings.HasSuffix(s, UnitPixel):
		unit = UnitPixel
	default:
		return 0, "", New(ErrCodeInvalidConfiguration, "%s must end with %q or %q, got %q", field, UnitPercent, UnitPixel, s)
	}

	num := strings.TrimSuffix(s, unit)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", Wrap(ErrCodeInvalidConfiguration, err, "%s has a non-numeric length %q", field, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, "", New(ErrCodeInvalidConfiguration, "%s must be a positive length, got %q", field, s)
	}
	return v, unit, nil
}
