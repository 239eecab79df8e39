// Package quantity implements numeric amount parsing and display formatting
// for ingredient quantities: text fractions ("1/2"), unicode vulgar fractions
// ("½"), mixed numbers ("2 1/2", "2½") and plain decimals.
package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawQuantity pairs a numeric amount with its display form.
type RawQuantity struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// glyphValues maps vulgar-fraction glyphs to their numeric values.
var glyphValues = map[rune]float64{
	'¼': 0.25,
	'½': 0.5,
	'¾': 0.75,
	'⅓': 1.0 / 3.0,
	'⅔': 2.0 / 3.0,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
}

// fractionGlyphs lists display glyphs in match-priority order (eighths after
// quarters so 0.25 formats as ¼, not a near-miss ⅜).
var fractionGlyphs = []struct {
	value float64
	glyph string
}{
	{0.25, "¼"},
	{0.5, "½"},
	{0.75, "¾"},
	{1.0 / 3.0, "⅓"},
	{2.0 / 3.0, "⅔"},
	{0.125, "⅛"},
	{0.375, "⅜"},
	{0.625, "⅝"},
	{0.875, "⅞"},
}

// snapTolerance is how close a fractional part must be to a known vulgar
// fraction to display as its glyph.
const snapTolerance = 0.01

// GlyphValue returns the numeric value of a vulgar-fraction glyph.
func GlyphValue(r rune) (float64, bool) {
	v, ok := glyphValues[r]
	return v, ok
}

// GlyphClass returns a regex character class matching every supported
// vulgar-fraction glyph.
func GlyphClass() string {
	var b strings.Builder
	b.WriteString("[")
	for _, f := range fractionGlyphs {
		b.WriteString(f.glyph)
	}
	b.WriteString("]")
	return b.String()
}

// ParseFraction converts a "num/den" text fraction to its value.
func ParseFraction(s string) (float64, bool) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// ParseGlyphFraction converts a single vulgar-fraction glyph string.
func ParseGlyphFraction(s string) (float64, bool) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 {
		return 0, false
	}
	return GlyphValue(runes[0])
}

// Format renders a value as a mixed number using vulgar-fraction glyphs for
// the common fractions, falling back to a decimal rounded to 2 places.
// Examples: 0.5 -> "½", 2.5 -> "2½", 2 -> "2", 2.67 -> "⅔"-snapped "2⅔",
// 2.437 -> "2.44".
func Format(v float64) string {
	if v < 0 {
		return "-" + Format(-v)
	}

	whole := math.Floor(v)
	frac := v - whole

	if frac < snapTolerance {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}
	if frac > 1-snapTolerance {
		return strconv.FormatFloat(whole+1, 'f', -1, 64)
	}

	for _, f := range fractionGlyphs {
		if math.Abs(frac-f.value) < snapTolerance {
			if whole == 0 {
				return f.glyph
			}
			return strconv.FormatFloat(whole, 'f', -1, 64) + f.glyph
		}
	}

	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// New builds a RawQuantity from a numeric amount.
func New(v float64) RawQuantity {
	return RawQuantity{Value: v, Formatted: Format(v)}
}

// String implements fmt.Stringer.
func (q RawQuantity) String() string {
	if q.Formatted != "" {
		return q.Formatted
	}
	return fmt.Sprintf("%g", q.Value)
}
