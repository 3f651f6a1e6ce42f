package convert

import (
	"errors"
	"fmt"
)

// Lookup failures are sentinel errors so callers can branch with errors.Is
// instead of string matching. A wrong silent result would mislead the user,
// so unknown names are never coerced.
var (
	ErrUnknownCategory = errors.New("unknown unit category")
	ErrUnknownUnit     = errors.New("unknown unit")
)

// ConvertTemperature converts between Celsius, Fahrenheit and Kelvin using
// Celsius as the intermediate scale. If from == to the value is returned
// unchanged to avoid floating-point drift on no-op conversions.
//
// This routine performs no validation: an unrecognized scale name is treated
// as Celsius on either leg. Convert validates names before delegating here;
// call this directly only when the inputs are already known-good.
func ConvertTemperature(value float64, from, to string) float64 {
	if from == to {
		return value
	}

	var celsius float64
	switch from {
	case Fahrenheit:
		celsius = (value - 32) * 5 / 9
	case Kelvin:
		celsius = value - 273.15
	default:
		celsius = value
	}

	switch to {
	case Fahrenheit:
		return (celsius * 9 / 5) + 32
	case Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}

// Convert converts value from one unit to another within a category.
//
// Linear categories (Length, Weight) store one factor per unit relative to
// the category's base unit, so conversion is value*factor(from)/factor(to)
// rather than an N² pairwise table. Temperature delegates to
// ConvertTemperature after validating both unit names, keeping the public
// API uniformly strict across categories.
func Convert(value float64, from, to string, category Category) (float64, error) {
	if category == Temperature {
		if !Valid(Temperature, from) {
			return 0, fmt.Errorf("%w: %q in category %s", ErrUnknownUnit, from, Temperature)
		}
		if !Valid(Temperature, to) {
			return 0, fmt.Errorf("%w: %q in category %s", ErrUnknownUnit, to, Temperature)
		}
		return ConvertTemperature(value, from, to), nil
	}

	table, ok := factors(category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	fromFactor, ok := table[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q in category %s", ErrUnknownUnit, from, category)
	}
	toFactor, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q in category %s", ErrUnknownUnit, to, category)
	}

	base := value * fromFactor
	return base / toFactor, nil
}

// InferCategory returns the single category containing both units. It exists
// for the one-shot CLI, where asking for --category on an unambiguous pair
// like Meter/Foot is needless friction. ok is false when the pair matches
// zero or more than one category.
func InferCategory(from, to string) (Category, bool) {
	var match Category
	var count int
	for _, c := range categoryOrder {
		if Valid(c, from) && Valid(c, to) {
			match = c
			count++
		}
	}
	return match, count == 1
}
