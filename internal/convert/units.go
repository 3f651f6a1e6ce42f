// Package convert implements the unit conversion engine: fixed conversion
// tables for length and weight, formula-based temperature conversion, and a
// single category-level entry point. Everything here is pure and stateless;
// the tables are built once and never mutated, so calls are safe for
// concurrent use without locking.
package convert

// Category identifies one of the closed unit groupings.
type Category string

const (
	Length      Category = "Length"
	Weight      Category = "Weight"
	Temperature Category = "Temperature"
)

// Temperature unit names. Temperature has no factor table because the three
// scales have different zero points; conversion goes through formulas.
const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

// lengthFactors maps each length unit to its size in meters (the base unit).
// The base unit's factor is exactly 1 and all factors are positive.
var lengthFactors = map[string]float64{
	"Meter":      1,
	"Kilometer":  1000,
	"Centimeter": 0.01,
	"Millimeter": 0.001,
	"Mile":       1609.34,
	"Yard":       0.9144,
	"Foot":       0.3048,
	"Inch":       0.0254,
}

// weightFactors maps each weight unit to its size in kilograms.
var weightFactors = map[string]float64{
	"Kilogram":  1,
	"Gram":      0.001,
	"Milligram": 0.000001,
	"Pound":     0.453592,
	"Ounce":     0.0283495,
}

// unitOrder preserves the declaration order for selection controls. Maps
// alone would randomize dropdown ordering between runs.
var unitOrder = map[Category][]string{
	Length:      {"Meter", "Kilometer", "Centimeter", "Millimeter", "Mile", "Yard", "Foot", "Inch"},
	Weight:      {"Kilogram", "Gram", "Milligram", "Pound", "Ounce"},
	Temperature: {Celsius, Fahrenheit, Kelvin},
}

var categoryOrder = []Category{Length, Weight, Temperature}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Units returns the unit names of a category in display order, or nil for an
// unknown category.
func Units(category Category) []string {
	units, ok := unitOrder[category]
	if !ok {
		return nil
	}
	out := make([]string, len(units))
	copy(out, units)
	return out
}

// Valid reports whether unit is a member of category.
func Valid(category Category, unit string) bool {
	for _, u := range unitOrder[category] {
		if u == unit {
			return true
		}
	}
	return false
}

// factors returns the factor table for a linear category. Temperature has no
// table and returns false.
func factors(category Category) (map[string]float64, bool) {
	switch category {
	case Length:
		return lengthFactors, true
	case Weight:
		return weightFactors, true
	default:
		return nil, false
	}
}

// BaseUnit returns the implicit base unit of a linear category ("" for
// Temperature and unknown categories).
func BaseUnit(category Category) string {
	switch category {
	case Length:
		return "Meter"
	case Weight:
		return "Kilogram"
	default:
		return ""
	}
}
