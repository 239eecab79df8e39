package extract

import (
	"regexp"
	"strings"

	"github.com/clipdish/recipe-clipper/models"
)

var (
	boldHeaderRe = regexp.MustCompile(`^\*\*(.+?)\*\*$`)
	forTheRe     = regexp.MustCompile(`(?i)^for the (.+?):?$`)
	keywordRe    = regexp.MustCompile(`(?i)^(?:sauce|filling|topping|crust|dough|marinade|garnish|coating)\b`)
)

// SplitSections walks raw ingredient lines in order, routing each line into
// the current section. Lines that look like headers ("For the Sauce:", a line
// ending in a colon, a known group keyword, or **bold** markdown) switch the
// current section instead of becoming ingredients. The default section is
// "main"; sections that end up empty are dropped, main excepted.
func SplitSections(lines []string) models.Ingredients {
	ingredients := models.NewIngredients()
	current := models.MainSection

	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if name, ok := sectionHeader(trimmed); ok {
			current = name
			ingredients = ingredients.Ensure(current)
			continue
		}

		item := cleanText(raw)
		if item == "" {
			continue
		}
		ingredients = ingredients.Append(current, item)
	}

	return ingredients.Compact()
}

// sectionHeader classifies a trimmed line as a section header and returns the
// section name with markdown and trailing colons stripped.
func sectionHeader(line string) (string, bool) {
	if m := boldHeaderRe.FindStringSubmatch(line); m != nil {
		return strings.TrimRight(strings.TrimSpace(m[1]), ":"), true
	}
	if m := forTheRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if strings.HasSuffix(line, ":") {
		return strings.TrimSpace(strings.TrimRight(line, ":")), true
	}
	if keywordRe.MatchString(line) {
		return line, true
	}
	return "", false
}
