package core

import (
	"math"
	"testing"
)

func TestRay_At(t *testing.T) {
	origin := NewVec3(1, 2, 3)
	directions := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, -1, 0),
		NewVec3(0, 0, 1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, d := range directions {
		ray := NewRay(origin, d)
		if !ray.At(0).Equals(origin) {
			t.Errorf("At(0) for direction %v: expected %v, got %v", d, origin, ray.At(0))
		}
		if !ray.At(1).Equals(origin.Add(d)) {
			t.Errorf("At(1) for direction %v: expected %v, got %v", d, origin.Add(d), ray.At(1))
		}
	}

	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -2))
	if !ray.At(0.25).Equals(NewVec3(0, 0, -0.5)) {
		t.Errorf("Expected (0,0,-0.5), got %v", ray.At(0.25))
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"axis aligned", NewVec3(5, 0, 0)},
		{"diagonal", NewVec3(1, 2, 3)},
		{"negative", NewVec3(-3, -4, 12)},
		{"tiny", NewVec3(1e-5, 2e-5, -1e-5)},
		{"large", NewVec3(1e6, -3e6, 2e6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.vector.Normalize().Length()
			if math.Abs(length-1.0) > 1e-6 {
				t.Errorf("Expected unit length, got %f", length)
			}
		})
	}

	// Matches the reference values for (1,2,3)
	unit := NewVec3(1, 2, 3).Normalize()
	expected := NewVec3(0.267261, 0.534522, 0.801784)
	if !unit.ApproxEquals(expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, unit)
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := NewVec3(0, 0, 0)
	result := zero.Normalize()
	if !result.Equals(zero) {
		t.Errorf("Normalizing the zero vector should return zero, got %v", result)
	}
	if math.IsNaN(result.X) || math.IsNaN(result.Y) || math.IsNaN(result.Z) {
		t.Error("Normalizing the zero vector produced NaN")
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"below epsilon", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component at epsilon", NewVec3(1e-8, 0, 0), false},
		{"one component large", NewVec3(0, 0, 0.1), false},
		{"negative large", NewVec3(-1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.vector, got, tt.expected)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := NewVec3(2, 4, 6).Divide(2); !got.Equals(a) {
		t.Errorf("Divide: got %v", got)
	}
	if got := a.Divide(0); !got.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Divide by zero should give zero vector, got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Cross: got %v", got)
	}
	if got := NewVec3(1, 2, 2).Length(); got != 3 {
		t.Errorf("Length: got %f", got)
	}
}

func TestVec3_MultiplyVecIsComponentWise(t *testing.T) {
	a := NewVec3(2, 3, 4)
	b := NewVec3(0.5, 0.25, 0.125)

	got := a.MultiplyVec(b)
	expected := NewVec3(1, 0.75, 0.5)
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_SqrtAndClamp(t *testing.T) {
	v := NewVec3(0.25, 1, -0.5)
	if got := v.Sqrt(); !got.Equals(NewVec3(0.5, 1, 0)) {
		t.Errorf("Sqrt: got %v", got)
	}
	if got := NewVec3(-1, 0.5, 2).Clamp(0, 0.999); !got.Equals(NewVec3(0, 0.5, 0.999)) {
		t.Errorf("Clamp: got %v", got)
	}
}
