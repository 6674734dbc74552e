// Package sizespec parses and formats the minimum-size threshold given on the
// command line.
//
// Two input variants are supported:
//
//	VariantPlain  "2048"               -> 2048
//	VariantUnit   "2048", "10KB", "5gb" -> 2048, 10*1024, 5*1024^3
//
// Surrounding whitespace is ignored in both variants. Only the binary units
// KB, MB and GB are recognised. Fractions, SI units and
// a bare "B" suffix are rejected as invalid format.
package sizespec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Variant selects how a size string is interpreted.
type Variant int

const (
	// VariantUnit accepts a base-10 integer with an optional KB/MB/GB suffix.
	VariantUnit Variant = iota
	// VariantPlain accepts a base-10 integer byte count only.
	VariantPlain
)

// Binary unit multipliers.
const (
	KB int64 = 1024
	MB       = KB * 1024
	GB       = MB * 1024
)

var (
	// ErrInvalidFormat is returned when the numeric part cannot be parsed.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrNegative is returned for thresholds below zero.
	ErrNegative = errors.New("size must not be negative")
	// ErrOverflow is returned when the multiplied value does not fit in int64.
	ErrOverflow = errors.New("size out of range")
)

// units is checked in order; all suffixes have the same length so order only
// matters for readability.
var units = []struct {
	suffix     string
	multiplier int64
}{
	{"KB", KB},
	{"MB", MB},
	{"GB", GB},
}

// String returns the config/flag name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantUnit:
		return "unit"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "unit" or "plain" (case-insensitive) to a Variant.
// An empty string selects VariantUnit.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unit":
		return VariantUnit, nil
	case "plain":
		return VariantPlain, nil
	default:
		return VariantUnit, fmt.Errorf("unknown size format %q, must be one of: unit, plain", s)
	}
}

// Parse converts input to a byte count according to the variant.
func Parse(input string, v Variant) (int64, error) {
	switch v {
	case VariantPlain:
		return parsePlain(input)
	case VariantUnit:
		return parseUnit(input)
	default:
		return 0, fmt.Errorf("unsupported size variant %v", v)
	}
}

func parsePlain(input string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer byte count", ErrInvalidFormat, input)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegative, input)
	}
	return n, nil
}

func parseUnit(input string) (int64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(input))

	multiplier := int64(1)
	number := normalized
	for _, u := range units {
		if strings.HasSuffix(normalized, u.suffix) {
			multiplier = u.multiplier
			number = strings.TrimSuffix(normalized, u.suffix)
			break
		}
	}

	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (expected an integer with optional KB, MB or GB suffix)", ErrInvalidFormat, input)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegative, input)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, input)
	}

	return n * multiplier, nil
}

// Format renders a byte count using the same binary units, e.g. "512 bytes",
// "1.50 KB", "10.00 MB".
func Format(n int64) string {
	switch {
	case n >= GB:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
