package core

import "testing"

func TestMeasurementsGetSet(t *testing.T) {
	m := M(1.5, -2)

	if m.Get(Horizontal) != 1.5 {
		t.Errorf("Get(Horizontal) = %v, expected 1.5", m.Get(Horizontal))
	}
	if m.Get(Vertical) != -2 {
		t.Errorf("Get(Vertical) = %v, expected -2", m.Get(Vertical))
	}

	m.Set(Vertical, 7)
	if m.Vertical != 7 || m.Horizontal != 1.5 {
		t.Errorf("Set(Vertical, 7) = %+v, expected {1.5 7}", m)
	}

	sum := m.Add(M(0.5, 1))
	if sum != M(2, 8) {
		t.Errorf("Add() = %+v, expected {2 8}", sum)
	}
}

func TestAxisString(t *testing.T) {
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Errorf("unexpected axis names: %s, %s", Horizontal, Vertical)
	}
	if Axis(9).String() != "unknown" {
		t.Errorf("Axis(9).String() = %q", Axis(9).String())
	}
}

func TestCellRect(t *testing.T) {
	tests := []struct {
		name      string
		pos, size Measurements
		expected  Rect
	}{
		{"origin aligned", M(0, 0), M(40, 32), NewRect(0, 0, 5, 2)},
		{"partial cells round up", M(0, 0), M(35, 35), NewRect(0, 0, 5, 3)},
		{"fractional position floors", M(13.5, 6.5), M(40, 40), NewRect(1, 0, 5, 3)},
		{"right edge stays inside", M(600, 0), M(40, 16), NewRect(75, 0, 5, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CellRect(tc.pos, tc.size, 8, 16)
			if got != tc.expected {
				t.Errorf("CellRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if got := CellRect(M(1, 1), M(1, 1), 0, 16); got != (Rect{}) {
		t.Errorf("CellRect with zero cell width = %+v, expected empty", got)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport(80, 24, 8, 16)
	if vp != M(640, 384) {
		t.Errorf("Viewport(80, 24, 8, 16) = %+v, expected {640 384}", vp)
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected int
	}{
		{ColorDefault, -1},
		{ColorRed, 1},
		{ColorWhite, 7},
		{ColorBrightRed, 9},
		{ColorBrightWhite, 15},
		{ColorOrange, 208},
		{ColorGray, 245},
	}

	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %d, expected %d", tc.color, got, tc.expected)
		}
	}

	if c, ok := ParseColor(" Bright_Cyan "); !ok || c != ColorBrightCyan {
		t.Errorf("ParseColor(bright_cyan) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("ParseColor(mauve) should fail")
	}
}
