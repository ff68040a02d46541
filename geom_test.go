package main

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestBondSymmetric(t *testing.T) {
	a := []float64{1.2, -0.4, 3.3}
	b := []float64{-2.1, 0.9, 0.5}
	if Bond(a, b) != Bond(b, a) {
		t.Errorf("got %v, wanted %v\n", Bond(a, b), Bond(b, a))
	}
}

func TestAngleSymmetric(t *testing.T) {
	o := []float64{0.1, 0.2, 0.3}
	p := []float64{1.2, -0.4, 3.3}
	q := []float64{-2.1, 0.9, 0.5}
	if got, want := Angle(o, p, q), Angle(o, q, p); got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestAngleRight(t *testing.T) {
	o := []float64{0, 0, 0}
	p := []float64{1, 0, 0}
	q := []float64{0, 1, 0}
	got := Angle(o, p, q)
	want := 90.0
	if !near(got, want, 1e-12) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestOutOfPlaneCoplanar(t *testing.T) {
	o := []float64{0.3, -1.1, 0}
	p1 := []float64{1.7, 0.4, 0}
	p2 := []float64{-0.6, 2.2, 0}
	p3 := []float64{4.1, -3.0, 0}
	got := OutOfPlane(o, p1, p2, p3)
	if !near(got, 0, 1e-12) {
		t.Errorf("got %v, wanted 0\n", got)
	}
}

// ground-state minimum of formaldehyde
func TestGroundMeasures(t *testing.T) {
	g := Geometry{
		Names: []string{"C", "O", "H", "H"},
		Coords: []float64{
			0.0000000000, 0.0000000000, 0.0000000000,
			1.2067000000, 0.0000000000, 0.0000000000,
			-0.5920635383, 0.9470619709, 0.0000000000,
			-0.5920635383, -0.9470619709, 0.0000000000,
		},
	}
	m, err := CH2OMeasures(g)
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"CH1", m.CH1, 1.1169},
		{"CH2", m.CH2, 1.1169},
		{"CO", m.CO, 1.2067},
		{"HCH", m.HCH, 115.9762},
		{"OOP", m.OOP, 0.0000},
	}
	for _, c := range checks {
		if !near(c.got, c.want, 1e-4) {
			t.Errorf("%s: got %v, wanted %v\n", c.name, c.got, c.want)
		}
	}
}

// relaxed excited-state geometry of formaldehyde, pyramidalized at
// carbon
func TestExcitedMeasures(t *testing.T) {
	g := Geometry{
		Names: []string{"C", "O", "H", "H"},
		Coords: []float64{
			0.0000000000, 0.0000000000, 0.0000000000,
			-1.1225666629, 0.0000000000, 0.6773679187,
			0.5745416432, 0.9403754039, 0.0000000000,
			0.5742809618, -0.9399487363, 0.0000000000,
		},
	}
	m, err := CH2OMeasures(g)
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"CH1", m.CH1, 1.1020},
		{"CH2", m.CH2, 1.1015},
		{"CO", m.CO, 1.3111},
		{"HCH", m.HCH, 117.1526},
		{"OOP", m.OOP, 31.1072},
	}
	for _, c := range checks {
		if !near(c.got, c.want, 1e-4) {
			t.Errorf("%s: got %v, wanted %v\n", c.name, c.got, c.want)
		}
	}
}

func TestLoadXYZ(t *testing.T) {
	got, err := LoadXYZ("testfiles/geom.xyz")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 4 {
		t.Errorf("got %d atoms, wanted 4\n", got.Len())
	}
	if got.Names[1] != "O" {
		t.Errorf("got %q, wanted O\n", got.Names[1])
	}
	if !near(got.Coords[3], 8.7067, 1e-10) {
		t.Errorf("got %v, wanted 8.7067\n", got.Coords[3])
	}
	// the offset to the cell center cancels in the measures
	m, err := CH2OMeasures(got)
	if err != nil {
		t.Fatal(err)
	}
	if !near(m.HCH, 115.9762, 1e-4) {
		t.Errorf("got %v, wanted 115.9762\n", m.HCH)
	}
}
