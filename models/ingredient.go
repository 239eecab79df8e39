package models

// ParsedIngredient is the quantity/unit/name triple parsed from one free-text
// ingredient line. Immutable once produced; scale and convert operations
// build new strings from it rather than editing it.
type ParsedIngredient struct {
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
	Name     string  `json:"name" yaml:"name"`
	Original string  `json:"original" yaml:"original"`
	Parsed   bool    `json:"parsed" yaml:"parsed"`
}

// ParsedSection is one ingredient section after parsing.
type ParsedSection struct {
	Name  string             `json:"name" yaml:"name"`
	Items []ParsedIngredient `json:"items" yaml:"items"`
}

// ParsedIngredients mirrors Ingredients with parsed triples, same ordering.
type ParsedIngredients []ParsedSection

// ScaledSection is one ingredient section after scaling or unit conversion.
type ScaledSection struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// ScaledIngredients is the rewritten-line counterpart of ParsedIngredients.
type ScaledIngredients []ScaledSection
