package units

import (
	"math"
	"testing"
)

func TestValid(t *testing.T) {
	tests := []struct {
		unit Unit
		want bool
	}{
		{MPS, true},
		{MPH, true},
		{KMPH, true},
		{KPH, true},
		{Unit("knots"), false},
		{Unit(""), false},
		{Unit("MPS"), false}, // case-sensitive
	}

	for _, tt := range tests {
		if got := Valid(tt.unit); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		speedMPS float64
		unit     Unit
		want     float64
	}{
		{"mps passthrough", 5, MPS, 5},
		{"zero", 0, MPH, 0},
		{"1 m/s to mph", 1, MPH, 2.2369362920544},
		{"5 m/s to mph", 5, MPH, 11.184681460272},
		{"1 m/s to kmph", 1, KMPH, 3.6},
		{"kph aliases kmph", 2.5, KPH, 9},
		{"unknown unit passthrough", 5, Unit("knots"), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.speedMPS, tt.unit)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %s) = %v, want %v", tt.speedMPS, tt.unit, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label(MPH); got != "Speed (mph)" {
		t.Errorf("Label(MPH) = %q", got)
	}
}

func TestValidString(t *testing.T) {
	if got := ValidString(); got != "mps, mph, kmph, kph" {
		t.Errorf("ValidString() = %q", got)
	}
}
