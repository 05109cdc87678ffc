package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxDimension bounds canvas sizes so a typo cannot allocate a gigapixel PNG.
const maxDimension = 100_000

// ParseDimension parses a canvas dimension such as "200", "200.5" or "200px".
//
// The accepted grammar is a finite, strictly positive decimal number with an
// optional "px" suffix and surrounding whitespace. Anything else is reported
// as ErrCodeInvalidDimension. The name is used in the message only.
func ParseDimension(name, s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, New(ErrCodeInvalidDimension, "%s is required", name)
	}
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "px"))

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, New(ErrCodeInvalidDimension, "%s %q is not a number", name, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, New(ErrCodeInvalidDimension, "%s %q is not finite", name, s)
	}
	if v <= 0 {
		return 0, New(ErrCodeInvalidDimension, "%s must be positive, got %q", name, s)
	}
	if v > maxDimension {
		return 0, New(ErrCodeInvalidDimension, "%s too large (max %d)", name, maxDimension)
	}
	return v, nil
}

// ValidateColor checks that a color value is safe to embed in an SVG attribute.
// Colors are passed through verbatim (named colors, #hex, rgb(), ...), so only
// characters that could break out of the attribute are rejected.
func ValidateColor(field, color string) error {
	if len(color) > 64 {
		return New(ErrCodeInvalidInput, "%s too long (max 64 characters)", field)
	}
	for _, r := range color {
		if unicode.IsControl(r) || strings.ContainsRune(`"'<>&`, r) {
			return New(ErrCodeInvalidInput, "%s contains invalid character %q", field, r)
		}
	}
	return nil
}

// ValidateLineWidth rejects negative or non-finite stroke widths.
func ValidateLineWidth(field string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return New(ErrCodeInvalidInput, "%s must be a non-negative number, got %v", field, w)
	}
	return nil
}

// ValidateTier rejects NaN and infinite tiers. Any finite tier is accepted,
// including negative and fractional ones.
func ValidateTier(field string, t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", field, t)
	}
	return nil
}
