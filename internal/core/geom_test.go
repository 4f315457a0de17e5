package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{-1, 2}

	if got := a.Add(b); got != (Vec2{2, 6}) {
		t.Errorf("Add = %v, expected {2 6}", got)
	}
	if got := a.Sub(b); got != (Vec2{4, 2}) {
		t.Errorf("Sub = %v, expected {4 2}", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v, expected {6 8}", got)
	}
	if got := a.Length(); !almostEqual(got, 5) {
		t.Errorf("Length = %f, expected 5", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Vec2
		expected float64
	}{
		{"same point", Vec2{1, 1}, Vec2{1, 1}, 0},
		{"horizontal", Vec2{0, 0}, Vec2{3, 0}, 3},
		{"vertical", Vec2{0, 0}, Vec2{0, 4}, 4},
		{"diagonal 3-4-5", Vec2{1, 2}, Vec2{4, 6}, 5},
		{"negative coords", Vec2{-3, -4}, Vec2{0, 0}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.p, tc.q); !almostEqual(got, tc.expected) {
				t.Errorf("Distance(%v, %v) = %f, expected %f", tc.p, tc.q, got, tc.expected)
			}
			// Symmetry
			if got := Distance(tc.q, tc.p); !almostEqual(got, tc.expected) {
				t.Errorf("Distance (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestHeadingVec(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected Vec2
	}{
		{"0 points up", 0, Vec2{0, -1}},
		{"90 points left", 90, Vec2{-1, 0}},
		{"180 points down", 180, Vec2{0, 1}},
		{"270 points right", 270, Vec2{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HeadingVec(tc.deg)
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) {
				t.Errorf("HeadingVec(%f) = %v, expected %v", tc.deg, got, tc.expected)
			}
			if !almostEqual(got.Length(), 1) {
				t.Errorf("HeadingVec(%f) is not a unit vector: length %f", tc.deg, got.Length())
			}
		})
	}
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		deg      float64
		expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
		{725, 5},
	}

	for _, tc := range tests {
		got := NormalizeHeading(tc.deg)
		if !almostEqual(got, tc.expected) {
			t.Errorf("NormalizeHeading(%f) = %f, expected %f", tc.deg, got, tc.expected)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeHeading(%f) = %f, outside [0, 360)", tc.deg, got)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
