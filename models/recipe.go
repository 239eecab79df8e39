package models

// Recipe represents the canonical structured record extracted from a recipe page.
// A Recipe is never mutated after extraction; scaling and unit conversion
// produce derived copies.
type Recipe struct {
	Title            string         `json:"title" yaml:"title"`
	Ingredients      Ingredients    `json:"ingredients" yaml:"ingredients"`
	Instructions     []string       `json:"instructions" yaml:"instructions"`
	PrepTime         string         `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime         string         `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	TotalTime        string         `json:"total_time,omitempty" yaml:"total_time,omitempty"`
	Servings         string         `json:"servings,omitempty" yaml:"servings,omitempty"`
	Nutrition        map[string]any `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	Image            string         `json:"image,omitempty" yaml:"image,omitempty"`
	ExtractionMethod string         `json:"extraction_method" yaml:"extraction_method"`
	Confidence       float64        `json:"confidence" yaml:"confidence"`
	SourceURL        string         `json:"source_url" yaml:"source_url"`
}

// ExtractionResult is the outcome of one extraction attempt.
type ExtractionResult struct {
	Success bool    `json:"success" yaml:"success"`
	Data    *Recipe `json:"data,omitempty" yaml:"data,omitempty"`
	Source  string  `json:"source,omitempty" yaml:"source,omitempty"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// MainSection is the implicit default ingredient section. It always exists
// structurally, even when empty; other sections are created lazily.
const MainSection = "main"

// IngredientSection is one named group of ingredient lines.
type IngredientSection struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// Ingredients is an ordered list of sections. Section order and item order
// within a section are significant and survive every transform. A slice keeps
// the order a plain map would lose.
type Ingredients []IngredientSection

// NewIngredients returns a section list containing only the empty main section.
func NewIngredients() Ingredients {
	return Ingredients{{Name: MainSection, Items: []string{}}}
}

// index returns the position of the named section, or -1.
func (ing Ingredients) index(name string) int {
	for i := range ing {
		if ing[i].Name == name {
			return i
		}
	}
	return -1
}

// Section returns the items of the named section, nil if absent.
func (ing Ingredients) Section(name string) []string {
	if i := ing.index(name); i >= 0 {
		return ing[i].Items
	}
	return nil
}

// Ensure lazily creates the named section and returns the updated list.
func (ing Ingredients) Ensure(name string) Ingredients {
	if ing.index(name) >= 0 {
		return ing
	}
	return append(ing, IngredientSection{Name: name, Items: []string{}})
}

// Append adds one line to the named section, creating the section if needed.
func (ing Ingredients) Append(name, item string) Ingredients {
	i := ing.index(name)
	if i < 0 {
		return append(ing, IngredientSection{Name: name, Items: []string{item}})
	}
	ing[i].Items = append(ing[i].Items, item)
	return ing
}

// Compact drops sections that ended up empty, except main, which is kept
// even when empty.
func (ing Ingredients) Compact() Ingredients {
	out := make(Ingredients, 0, len(ing))
	for _, sec := range ing {
		if len(sec.Items) > 0 || sec.Name == MainSection {
			out = append(out, sec)
		}
	}
	return out
}

// ItemCount returns the total number of ingredient lines across all sections.
func (ing Ingredients) ItemCount() int {
	n := 0
	for _, sec := range ing {
		n += len(sec.Items)
	}
	return n
}
