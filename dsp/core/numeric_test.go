package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		in       float64
		unipolar float64
		bipolar  float64
	}{
		{in: -2, unipolar: 0, bipolar: -1},
		{in: -0.5, unipolar: 0, bipolar: -0.5},
		{in: 0.25, unipolar: 0.25, bipolar: 0.25},
		{in: 1, unipolar: 1, bipolar: 1},
		{in: 3, unipolar: 1, bipolar: 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.unipolar {
			t.Fatalf("Clamp01(%v) = %v, want %v", tt.in, got, tt.unipolar)
		}
		if got := ClampBipolar(tt.in); got != tt.bipolar {
			t.Fatalf("ClampBipolar(%v) = %v, want %v", tt.in, got, tt.bipolar)
		}
	}
}

func TestWithinRangeAndLerp(t *testing.T) {
	if !WithinRange(0, 0, 3) || !WithinRange(0, 3, 3) || WithinRange(0, 4, 3) {
		t.Fatal("WithinRange bounds must be inclusive")
	}
	if got := Lerp(2, 6, 0.25); got != 3 {
		t.Fatalf("Lerp() = %v, want 3", got)
	}
	if got := Lerp(2, 6, 1); got != 6 {
		t.Fatalf("Lerp(x=1) = %v, want 6", got)
	}
}

func TestFlushDenormals(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1e-31, want: 0},
		{in: -1e-31, want: 0},
		{in: 5e-324, want: 0},
		{in: 1e-30, want: 1e-30},
		{in: -0.5, want: -0.5},
	}

	for _, tt := range tests {
		if got := FlushDenormals(tt.in); got != tt.want {
			t.Fatalf("FlushDenormals(%v) = %v, want %v", tt.in, got, tt.want)
		}

		v := tt.in
		FlushDenormalsInPlace(&v)
		if v != tt.want {
			t.Fatalf("FlushDenormalsInPlace(%v) = %v, want %v", tt.in, v, tt.want)
		}
	}

	buf := []float64{1e-35, 0.5, -1e-40}
	FlushDenormalsBlock(buf)
	if buf[0] != 0 || buf[1] != 0.5 || buf[2] != 0 {
		t.Fatalf("FlushDenormalsBlock() = %v", buf)
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if got := LinearPowerToDB(100); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
