package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= tolerance*math.Max(scale, 1)
}

func TestConvert_Identity(t *testing.T) {
	for _, category := range Categories() {
		for _, unit := range Units(category) {
			got, err := Convert(42.5, unit, unit, category)
			if err != nil {
				t.Fatalf("Convert(42.5, %s, %s, %s) error: %v", unit, unit, category, err)
			}
			if got != 42.5 {
				t.Errorf("Convert(42.5, %s, %s, %s) = %v, want exactly 42.5", unit, unit, category, got)
			}
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, category := range Categories() {
		units := Units(category)
		for _, from := range units {
			for _, to := range units {
				forward, err := Convert(123.456, from, to, category)
				if err != nil {
					t.Fatalf("forward %s->%s (%s): %v", from, to, category, err)
				}
				back, err := Convert(forward, to, from, category)
				if err != nil {
					t.Fatalf("back %s->%s (%s): %v", to, from, category, err)
				}
				if !almostEqual(back, 123.456) {
					t.Errorf("round trip %s->%s->%s (%s) = %v, want 123.456", from, to, from, category, back)
				}
			}
		}
	}
}

func TestConvert_BaseUnitFactors(t *testing.T) {
	cases := map[Category]map[string]float64{
		Length: lengthFactors,
		Weight: weightFactors,
	}
	for category, table := range cases {
		base := BaseUnit(category)
		if table[base] != 1 {
			t.Fatalf("%s base unit %s factor = %v, want 1", category, base, table[base])
		}
		for unit, factor := range table {
			if factor <= 0 {
				t.Errorf("%s factor for %s is %v, want positive", category, unit, factor)
			}
			got, err := Convert(1, unit, base, category)
			if err != nil {
				t.Fatalf("Convert(1, %s, %s, %s): %v", unit, base, category, err)
			}
			if !almostEqual(got, factor) {
				t.Errorf("Convert(1, %s, %s, %s) = %v, want %v", unit, base, category, got, factor)
			}
		}
	}
}

func TestConvert_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to string
		category Category
		want     float64
	}{
		{"meter to kilometer", 1000, "Meter", "Kilometer", Length, 1},
		{"mile to meter", 1, "Mile", "Meter", Length, 1609.34},
		{"inch to centimeter", 1, "Inch", "Centimeter", Length, 2.54},
		{"pound to gram", 1, "Pound", "Gram", Weight, 453.592},
		{"kilogram to ounce", 1, "Kilogram", "Ounce", Weight, 1 / 0.0283495},
		{"freezing point", 0, Celsius, Fahrenheit, Temperature, 32},
		{"boiling point", 100, Celsius, Fahrenheit, Temperature, 212},
		{"celsius zero in kelvin", 0, Celsius, Kelvin, Temperature, 273.15},
		{"fahrenheit freezing", 32, Fahrenheit, Celsius, Temperature, 0},
		{"absolute zero", 0, Kelvin, Celsius, Temperature, -273.15},
		{"fahrenheit to kelvin", 212, Fahrenheit, Kelvin, Temperature, 373.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to, tt.category)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Convert(%v, %s, %s, %s) = %v, want %v", tt.value, tt.from, tt.to, tt.category, got, tt.want)
			}
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	if _, err := Convert(5, "Foo", "Meter", Length); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit for Foo, got %v", err)
	}
	if _, err := Convert(5, "Meter", "Foo", Length); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit for target Foo, got %v", err)
	}
	if _, err := Convert(5, "Celsius", "Rankine", Temperature); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit for Rankine, got %v", err)
	}
}

func TestConvert_UnknownCategory(t *testing.T) {
	_, err := Convert(5, "Meter", "Meter", Category("Bogus"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestConvertTemperature_Permissive(t *testing.T) {
	// The low-level routine keeps the reference fall-through: unknown
	// scales are treated as Celsius on both legs.
	if got := ConvertTemperature(25, "Rankine", "Rankine"); got != 25 {
		t.Errorf("same-unit short circuit = %v, want 25", got)
	}
	if got := ConvertTemperature(100, "Rankine", Kelvin); !almostEqual(got, 373.15) {
		t.Errorf("unknown source treated as Celsius: got %v, want 373.15", got)
	}
	if got := ConvertTemperature(0, Celsius, "Rankine"); got != 0 {
		t.Errorf("unknown target treated as Celsius: got %v, want 0", got)
	}
}

func TestUnits_Enumeration(t *testing.T) {
	wantLength := []string{"Meter", "Kilometer", "Centimeter", "Millimeter", "Mile", "Yard", "Foot", "Inch"}
	if diff := cmp.Diff(wantLength, Units(Length)); diff != "" {
		t.Errorf("Units(Length) mismatch (-want +got):\n%s", diff)
	}

	wantCategories := []Category{Length, Weight, Temperature}
	if diff := cmp.Diff(wantCategories, Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}

	if got := Units(Category("Bogus")); got != nil {
		t.Errorf("Units(Bogus) = %v, want nil", got)
	}

	// Returned slices are copies; mutating one must not corrupt the table.
	units := Units(Weight)
	units[0] = "Stone"
	if Units(Weight)[0] != "Kilogram" {
		t.Error("Units returned a reference to internal state")
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		from, to string
		want     Category
		ok       bool
	}{
		{"Meter", "Foot", Length, true},
		{"Pound", "Ounce", Weight, true},
		{"Celsius", "Kelvin", Temperature, true},
		{"Meter", "Pound", "", false},
		{"Foo", "Bar", "", false},
	}
	for _, tt := range tests {
		got, ok := InferCategory(tt.from, tt.to)
		if ok != tt.ok || got != tt.want {
			t.Errorf("InferCategory(%s, %s) = (%v, %v), want (%v, %v)", tt.from, tt.to, got, ok, tt.want, tt.ok)
		}
	}
}
