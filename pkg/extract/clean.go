package extract

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe  = regexp.MustCompile(`[\s\p{Zs}]+`)
	isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)
	stepPrefixRe  = regexp.MustCompile(`(?i)^(?:step\s*\d+[:.)]*\s*|\d+[.)]\s+)`)
)

// cleanText entity-decodes, collapses runs of whitespace, and trims.
func cleanText(s string) string {
	s = html.UnescapeString(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// parseISODuration renders an ISO-8601 duration like PT1H30M as "1h 30m".
// Anything that doesn't look like an hour/minute duration is passed through
// raw.
func parseISODuration(raw string) string {
	raw = strings.TrimSpace(raw)
	m := isoDurationRe.FindStringSubmatch(raw)
	if m == nil || (m[1] == "" && m[2] == "") {
		return raw
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// stripStepPrefix removes a leading "Step N" or "N." numbering from an
// instruction.
func stripStepPrefix(s string) string {
	return strings.TrimSpace(stepPrefixRe.ReplaceAllString(s, ""))
}

// durationField parses a JSON duration value, passing through non-strings
// as empty.
func durationField(v any) string {
	if s, ok := v.(string); ok {
		return parseISODuration(s)
	}
	return ""
}

// stringify renders a scalar JSON value (string or number) as a string.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return cleanText(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		if len(val) > 0 {
			return stringify(val[0])
		}
	}
	return ""
}

// propValue reads a microdata itemprop value, preferring the content
// attribute, then datetime, then the element's inner text.
func propValue(sel *goquery.Selection) string {
	if v, ok := sel.Attr("content"); ok && strings.TrimSpace(v) != "" {
		return cleanText(v)
	}
	if v, ok := sel.Attr("datetime"); ok && strings.TrimSpace(v) != "" {
		return cleanText(v)
	}
	return cleanText(sel.Text())
}

// imageURL recursively unwraps the schema.org image property: a plain http
// URL string, the first element of an array, or an object's url/contentUrl.
func imageURL(v any) string {
	switch val := v.(type) {
	case string:
		if strings.HasPrefix(val, "http") {
			return val
		}
	case []any:
		if len(val) > 0 {
			return imageURL(val[0])
		}
	case map[string]any:
		for _, key := range []string{"url", "contentUrl", "@url"} {
			if u, ok := val[key].(string); ok && u != "" {
				return u
			}
		}
	}
	return ""
}
