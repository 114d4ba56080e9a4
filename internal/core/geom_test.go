package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	box := NewRect(100, 100, 50, 20)
	strip := NewRect(450, 550, 100, 0)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		rect     Rect
		expected bool
	}{
		{"center inside", Vec2{120, 110}, 5, box, true},
		{"touching left edge", Vec2{90, 110}, 10, box, true},
		{"just outside left edge", Vec2{89.9, 110}, 10, box, false},
		{"near corner but outside", Vec2{92, 92}, 10, box, false},
		{"near corner and inside radius", Vec2{95, 95}, 10, box, true},
		{"below box", Vec2{120, 131}, 10, box, false},
		{"zero-height strip from above", Vec2{500, 541}, 10, strip, true},
		{"zero-height strip from below", Vec2{500, 559}, 10, strip, true},
		{"zero-height strip out of reach", Vec2{500, 539}, 10, strip, false},
		{"zero-height strip beyond end", Vec2{561, 550}, 10, strip, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleIntersectsRect(tc.center, tc.radius, tc.rect)
			if result != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %v, %v) = %v, expected %v",
					tc.center, tc.radius, tc.rect, result, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{1, -2}.Add(Vec2{3, 4}).Scale(0.5)
	if v.X != 2 || v.Y != 1 {
		t.Errorf("Add/Scale = %v, expected (2, 1)", v)
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

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
