package quantity

import "strings"

// Unit kinds.
const (
	KindVolume = "volume"
	KindWeight = "weight"
)

// UnitPattern is the regex alternation for the known unit vocabulary,
// longest-first so "gallon" wins over "g" and "lb" over "l". Callers append
// their own boundary handling.
const UnitPattern = `(?:fl\.? ?oz|cups?|tablespoons?|tbsps?|teaspoons?|tsps?|pints?|quarts?|gallons?|ml|kg|lbs?|oz|g|l)`

// volumeToML maps canonical volume units to their milliliter pivot.
var volumeToML = map[string]float64{
	"cup":    236.588,
	"tbsp":   14.787,
	"tsp":    4.929,
	"fl oz":  29.574,
	"pint":   473.176,
	"quart":  946.353,
	"gallon": 3785.41,
	"ml":     1,
	"l":      1000,
}

// weightToG maps canonical weight units to their gram pivot.
var weightToG = map[string]float64{
	"oz": 28.3495,
	"lb": 453.592,
	"g":  1,
	"kg": 1000,
}

// metricUnits is the set of units already in the metric system.
var metricUnits = map[string]bool{
	"ml": true,
	"l":  true,
	"g":  true,
	"kg": true,
}

// imperialVolumeDesc lists imperial volume units largest-first, used when
// converting a metric pivot back to the largest unit that fits.
var imperialVolumeDesc = []string{"gallon", "quart", "pint", "cup", "tbsp", "tsp"}

// imperialWeightDesc lists imperial weight units largest-first.
var imperialWeightDesc = []string{"lb", "oz"}

// Canonical normalizes a raw unit token to its canonical vocabulary form:
// lowercase, dots removed, plural stripped, long names shortened. Returns ""
// for unknown units.
func Canonical(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.ReplaceAll(u, ".", "")

	switch u {
	case "tablespoon", "tablespoons":
		return "tbsp"
	case "teaspoon", "teaspoons":
		return "tsp"
	case "floz", "fl oz":
		return "fl oz"
	}

	if u != "s" {
		u = strings.TrimSuffix(u, "s")
	}
	if _, ok := volumeToML[u]; ok {
		return u
	}
	if _, ok := weightToG[u]; ok {
		return u
	}
	return ""
}

// Kind reports whether a unit measures volume or weight, "" if unknown.
func Kind(unit string) string {
	u := Canonical(unit)
	if _, ok := volumeToML[u]; ok {
		return KindVolume
	}
	if _, ok := weightToG[u]; ok {
		return KindWeight
	}
	return ""
}

// IsMetric reports whether a unit belongs to the metric system.
func IsMetric(unit string) bool {
	return metricUnits[Canonical(unit)]
}

// ToPivot converts a quantity to its pivot magnitude: milliliters for volume,
// grams for weight.
func ToPivot(value float64, unit string) (float64, bool) {
	u := Canonical(unit)
	if r, ok := volumeToML[u]; ok {
		return value * r, true
	}
	if r, ok := weightToG[u]; ok {
		return value * r, true
	}
	return 0, false
}

// PivotToMetric renders a pivot magnitude in the best metric unit: liters or
// kilograms above 1000, else milliliters or grams.
func PivotToMetric(pivot float64, kind string) (float64, string) {
	switch kind {
	case KindVolume:
		if pivot > 1000 {
			return pivot / 1000, "l"
		}
		return pivot, "ml"
	case KindWeight:
		if pivot > 1000 {
			return pivot / 1000, "kg"
		}
		return pivot, "g"
	}
	return pivot, ""
}

// PivotToImperial renders a pivot magnitude in the largest imperial unit
// whose single-unit magnitude does not exceed the value, smallest unit as
// the floor.
func PivotToImperial(pivot float64, kind string) (float64, string) {
	var order []string
	var table map[string]float64

	switch kind {
	case KindVolume:
		order, table = imperialVolumeDesc, volumeToML
	case KindWeight:
		order, table = imperialWeightDesc, weightToG
	default:
		return pivot, ""
	}

	for _, u := range order {
		if pivot >= table[u] {
			return pivot / table[u], u
		}
	}
	last := order[len(order)-1]
	return pivot / table[last], last
}

// PluralizeUnit adjusts a full-word unit for the scaled quantity. Short-form
// units (tbsp, ml, g) never change.
func PluralizeUnit(unit string, value float64) string {
	u := Canonical(unit)
	switch u {
	case "cup", "pint", "quart", "gallon":
		if value > 1 {
			return u + "s"
		}
		return u
	case "":
		return unit
	}
	return u
}
