package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAdiabatic(t *testing.T) {
	got := Adiabatic(-615.986679, -619.532480)
	if want := 3.545801; !near(got, want, 1e-9) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestWriteReport(t *testing.T) {
	m := &Measures{
		CH1: 1.1020, CH2: 1.1015, CO: 1.3111,
		HCH: 117.1526, OOP: 31.1072,
	}
	var buf bytes.Buffer
	WriteReport(&buf, m, &ExcitedRef)
	got := buf.String()
	for _, want := range []string{
		"r(C-O)          1.3111      1.3230  Å",
		"oop(C-O)       31.1072     34.0000  deg",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestPlotConvergence(t *testing.T) {
	history := []Step{
		{Cycle: 0, Energy: -615.5},
		{Cycle: 1, Energy: -615.9},
		{Cycle: 2, Energy: -616.0},
	}
	name := filepath.Join(t.TempDir(), "relax.png")
	if err := PlotConvergence(history, name); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("missing %s: %v\n", name, err)
	}
}

func TestCH2OMeasuresWrongComposition(t *testing.T) {
	g := Geometry{
		Names:  []string{"C", "H", "H", "H", "H"},
		Coords: make([]float64, 15),
	}
	if _, err := CH2OMeasures(g); err == nil {
		t.Error("wanted an error for a non-CH2O fragment")
	}
}
