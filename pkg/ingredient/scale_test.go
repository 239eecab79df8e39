package ingredient

import "testing"

func TestScale(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		multiplier float64
		want       string
	}{
		{"doubles a cup", "1 cup sugar", 2, "2 cups sugar"},
		{"halves to a fraction glyph", "1 cup sugar", 0.5, "½ cup sugar"},
		{"mixed fraction in", "2 1/2 cups flour", 2, "5 cups flour"},
		{"keeps short unit", "2 tbsp butter", 3, "6 tbsp butter"},
		{"no unit", "3 eggs", 2, "6 eggs"},
		{"parenthetical weight in name", "2 chicken breasts (190g)", 2, "4 chicken breasts (380 g)"},
		{"unparsed line passes through rewriter", "a pinch of saffron", 2, "a pinch of saffron"},
		{"singularizes on scale down", "2 cups stock", 0.5, "1 cup stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(Parse(tt.line), tt.multiplier)
			if got != tt.want {
				t.Errorf("Scale(%q, %v) = %q, want %q", tt.line, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		toMetric bool
		want     string
	}{
		{"cup to milliliters", "1 cup milk", true, "236.59 ml milk"},
		{"pound to grams", "1 lb beef", true, "453.59 g beef"},
		{"large volume picks liters", "2 gallons water", true, "7.57 l water"},
		{"heavy weight picks kilograms", "5 lbs potatoes", true, "2.27 kg potatoes"},
		{"metric to metric is a no-op", "250 ml cream", true, "250 ml cream"},
		{"imperial to imperial is a no-op", "1 cup milk", false, "1 cup milk"},
		{"grams to ounces", "100 g chocolate", false, "3.53 oz chocolate"},
		{"liters pick quarts", "1 l stock", false, "1.06 quarts stock"},
		{"unitless is untouched", "3 eggs", true, "3 eggs"},
		{"unparsed is untouched", "salt to taste", true, "salt to taste"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(Parse(tt.line), tt.toMetric)
			if got != tt.want {
				t.Errorf("Convert(%q, %v) = %q, want %q", tt.line, tt.toMetric, got, tt.want)
			}
		})
	}
}
