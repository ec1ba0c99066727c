package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	unit := Vec3{1, 1, 1}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{0, 0, 0}, unit),
			expected: true,
		},
		{
			name:     "overlapping on all axes",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{1.5, 1.5, 1.5}, unit),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{3, 0, 0}, unit),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{0, 3, 0}, unit),
			expected: false,
		},
		{
			name:     "separated on z",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{0, 0, -3}, unit),
			expected: false,
		},
		{
			name:     "touching exactly on x (no overlap, strict test)",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{2, 0, 0}, unit),
			expected: false,
		},
		{
			name:     "touching exactly on every axis",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{2, 2, 2}, unit),
			expected: false,
		},
		{
			name:     "one unit inside the boundary on x",
			a:        NewBox(Vec3{0, 0, 0}, unit),
			b:        NewBox(Vec3{1, 0, 0}, unit),
			expected: true,
		},
		{
			name:     "zero-height box cannot overlap vertically",
			a:        NewBox(Vec3{0, 0, 0}, Vec3{1, 0, 1}),
			b:        NewBox(Vec3{0, 0.5, 0}, Vec3{1, 0.5, 1}),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(Vec3{0, 0, 0}, Vec3{5, 5, 5}),
			b:        NewBox(Vec3{1, 1, -1}, Vec3{0.5, 0.5, 0.5}),
			expected: true,
		},
		{
			name:     "asymmetric half extents",
			a:        NewBox(Vec3{0, 0.75, 0}, Vec3{0.7, 0.75, 0.5}),
			b:        NewBox(Vec3{0, 0.5, -1.2}, Vec3{0.8, 0.5, 0.8}),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// The test is symmetric by construction
			if back := tc.b.Overlaps(tc.a); back != result {
				t.Errorf("Overlaps() not symmetric: a->b=%v, b->a=%v", result, back)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 2); got != 2 {
		t.Errorf("Clamp(5, 0, 2) = %d, expected 2", got)
	}
	if got := Clamp(-1, 0, 2); got != 0 {
		t.Errorf("Clamp(-1, 0, 2) = %d, expected 0", got)
	}
	if got := Clamp(1, 0, 2); got != 1 {
		t.Errorf("Clamp(1, 0, 2) = %d, expected 1", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(-2, 0, 0.5); got != -1 {
		t.Errorf("Lerp(-2, 0, 0.5) = %f, expected -1", got)
	}
	if got := Lerp(0, 2, 1); got != 2 {
		t.Errorf("Lerp(0, 2, 1) = %f, expected 2", got)
	}
	if got := Lerp(3, 7, 0); got != 3 {
		t.Errorf("Lerp(3, 7, 0) = %f, expected 3", got)
	}
}
