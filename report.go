package main

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Measures collects the internal coordinates of a formaldehyde-like
// fragment: the two C-H bonds, the C-O bond, the H-C-H angle, and the
// deviation of the C-O bond from the H-C-H plane.
type Measures struct {
	CH1 float64
	CH2 float64
	CO  float64
	HCH float64
	OOP float64
}

func CH2OMeasures(g Geometry) (*Measures, error) {
	var c, o, hs []int
	for i, name := range g.Names {
		switch name {
		case "C":
			c = append(c, i)
		case "O":
			o = append(o, i)
		case "H":
			hs = append(hs, i)
		}
	}
	if len(c) != 1 || len(o) != 1 || len(hs) != 2 {
		return nil, fmt.Errorf("not a CH2O fragment: %v", g.Names)
	}
	C, O := g.At(c[0]), g.At(o[0])
	H1, H2 := g.At(hs[0]), g.At(hs[1])
	return &Measures{
		CH1: Bond(C, H1),
		CH2: Bond(C, H2),
		CO:  Bond(C, O),
		HCH: Angle(C, H1, H2),
		OOP: OutOfPlane(C, H1, H2, O),
	}, nil
}

// Adiabatic returns the adiabatic excitation energy in eV: the
// excited-state total energy at its relaxed geometry minus the
// ground-state total energy at its own, separately relaxed geometry
func Adiabatic(excited, ground float64) float64 {
	return excited - ground
}

// experimental geometries of H2CO from Clouthier & Ramsay, Annu. Rev.
// Phys. Chem. 34 (1983) 31
var (
	GroundRef = Measures{
		CH1: 1.1165, CH2: 1.1165, CO: 1.2078, HCH: 116.5, OOP: 0.0,
	}
	ExcitedRef = Measures{
		CH1: 1.0980, CH2: 1.0980, CO: 1.3230, HCH: 118.1, OOP: 34.0,
	}
)

// WriteReport prints computed internal coordinates next to their
// reference values
func WriteReport(w io.Writer, m, ref *Measures) {
	fmt.Fprintf(w, "%-10s%12s%12s\n", "", "calc", "ref")
	rows := []struct {
		name      string
		calc, ref float64
		unit      string
	}{
		{"r(C-H1)", m.CH1, ref.CH1, "Å"},
		{"r(C-H2)", m.CH2, ref.CH2, "Å"},
		{"r(C-O)", m.CO, ref.CO, "Å"},
		{"a(H-C-H)", m.HCH, ref.HCH, "deg"},
		{"oop(C-O)", m.OOP, ref.OOP, "deg"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s%12.4f%12.4f  %s\n",
			r.name, r.calc, r.ref, r.unit)
	}
}

// PlotConvergence writes a plot of the excited-state total energy
// against the relaxation cycle to filename
func PlotConvergence(history []Step, filename string) error {
	pts := make(plotter.XYs, len(history))
	for i, step := range history {
		pts[i].X = float64(step.Cycle)
		pts[i].Y = step.Energy
	}
	p := plot.New()
	p.Title.Text = "Relaxation"
	p.X.Label.Text = "cycle"
	p.Y.Label.Text = "E (eV)"
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
