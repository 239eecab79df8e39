// Package textscale rewrites quantity mentions embedded anywhere in free-form
// prose, rescaling each by a multiplier while preserving the surrounding
// text, including quantities nested inside parentheses.
//
// The rewrite runs in three ordered phases. Phase A matches parenthesized
// quantities and replaces the whole parenthesized span with digit-free
// sentinel markers (one per original nesting level) wrapping the rescaled
// text, which hides it from phase B. Phase B matches bare quantities and a
// short list of countable nouns in what remains. Phase C turns the sentinels
// back into literal parentheses. Each phase is a single regex pass with the
// sub-patterns as priority-ordered alternatives, so rewritten output is never
// rescanned within the same call.
//
// Only text-form fractions ("1/2") are matched, never unicode glyphs: the
// formatter emits glyph fractions, so re-running the rewriter over its own
// output cannot rescale a fraction twice. The flip side is that an
// already-formatted "½ cup" cannot be rescaled further; callers that need a
// different multiplier must start again from the pristine original text.
package textscale

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/clipdish/recipe-clipper/pkg/quantity"
)

// Sentinel markers stand in for parentheses between phases A and C. They are
// digit-free and underscore-bounded so no quantity pattern can match across
// their edges (underscores are word characters, killing the \b anchors).
const (
	openMark  = "__LPAREN__"
	closeMark = "__RPAREN__"
)

var (
	// Phase A: quantities wrapped in one or more literal parentheses.
	// Alternatives in priority order: whole+fraction+unit, fraction+unit,
	// number+unit.
	parenRe = regexp.MustCompile(
		`(\(+)\s*(?:(\d+)\s+(\d+\s*/\s*\d+)|(\d+\s*/\s*\d+)|(\d+(?:\.\d+)?))\s*(` +
			quantity.UnitPattern + `)\s*(\)+)`)

	// Phase B: the same three quantity shapes without parentheses, plus
	// number+countable-noun.
	bareRe = regexp.MustCompile(
		`\b(?:(\d+)\s+(\d+\s*/\s*\d+)\s*(` + quantity.UnitPattern + `)|(\d+\s*/\s*\d+)\s*(` +
			quantity.UnitPattern + `)|(\d+(?:\.\d+)?)\s*(` + quantity.UnitPattern +
			`)|(\d+(?:\.\d+)?)\s+((?:egg|onion|clove|potato|carrot|tomato|apple|banana)(?:e?s)?))\b`)
)

// ScaleText rescales every quantity mention in text by multiplier. A
// multiplier of 1 is the identity: the input is returned byte for byte.
func ScaleText(text string, multiplier float64) string {
	if multiplier == 1 || text == "" {
		return text
	}

	// Phase A: parenthesized quantities.
	out := parenRe.ReplaceAllStringFunc(text, func(match string) string {
		m := parenRe.FindStringSubmatch(match)
		if m == nil {
			return match
		}
		value, ok := matchValue(m[2], m[3], m[4], m[5])
		if !ok {
			return match
		}
		opens, unit, closes := m[1], m[6], m[7]
		return strings.Repeat(openMark, len(opens)) +
			quantity.Format(value*multiplier) + " " + unit +
			strings.Repeat(closeMark, len(closes))
	})

	// Phase B: bare quantities and countable nouns.
	out = bareRe.ReplaceAllStringFunc(out, func(match string) string {
		if strings.Contains(match, openMark) || strings.Contains(match, closeMark) {
			return match
		}
		m := bareRe.FindStringSubmatch(match)
		if m == nil {
			return match
		}
		switch {
		case m[1] != "": // whole + fraction + unit
			value, ok := matchValue(m[1], m[2], "", "")
			if !ok {
				return match
			}
			return quantity.Format(value*multiplier) + " " + m[3]
		case m[4] != "": // fraction + unit
			value, ok := quantity.ParseFraction(m[4])
			if !ok {
				return match
			}
			return quantity.Format(value*multiplier) + " " + m[5]
		case m[6] != "": // number + unit
			value, err := strconv.ParseFloat(m[6], 64)
			if err != nil {
				return match
			}
			return quantity.Format(value*multiplier) + " " + m[7]
		case m[8] != "": // number + countable noun
			value, err := strconv.ParseFloat(m[8], 64)
			if err != nil {
				return match
			}
			return quantity.Format(value*multiplier) + " " + m[9]
		}
		return match
	})

	// Phase C: restore the captured parentheses, one per nesting level.
	out = strings.ReplaceAll(out, openMark, "(")
	out = strings.ReplaceAll(out, closeMark, ")")
	return out
}

// matchValue computes the quantity from the whole/fraction/bare-fraction/
// number capture groups of either phase regex.
func matchValue(whole, frac, bareFrac, number string) (float64, bool) {
	switch {
	case whole != "":
		w, err := strconv.ParseFloat(whole, 64)
		if err != nil {
			return 0, false
		}
		f, ok := quantity.ParseFraction(frac)
		if !ok {
			return 0, false
		}
		return w + f, true
	case bareFrac != "":
		return quantity.ParseFraction(bareFrac)
	case number != "":
		v, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
