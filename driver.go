package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Step records one relaxation cycle for the iteration log
type Step struct {
	Cycle  int
	Steps  int
	Energy float64 // eV, excited-state total
	DeltaE float64 // Ry
	Force  float64 // Ry/bohr
	Trust  float64 // bohr
	Time   float64 // s
}

type Result struct {
	Geom    Geometry
	Energy  float64 // eV
	History []Step
}

// Driver alternates the ground- and excited-state solvers until the
// energy change and the force norm both drop below their thresholds
// in the same cycle. The geometry proposed for each cycle and the
// trust radius bounding the step come from the optimizer embedded in
// the ground-state solver; the driver only carries them between
// invocations.
type Driver struct {
	Solver   Solver
	State    int
	Etol     float64 // Ry
	Ftol     float64 // Ry/bohr
	MaxCycle int
	Trust    float64
	Geom     Geometry
	Dir      string
	Log      io.Writer
}

func NewDriver(conf Config, solver Solver) *Driver {
	return &Driver{
		Solver:   solver,
		State:    conf.State,
		Etol:     conf.Etol,
		Ftol:     conf.Ftol,
		MaxCycle: conf.MaxCycle,
		Trust:    conf.Trust,
		Geom:     conf.Geom,
		Dir:      conf.WorkDir,
		Log:      os.Stdout,
	}
}

// Run drives the relaxation to convergence. On success the converged
// geometry and energy are returned and written to relax.xyz and
// relax.json under the working directory. If the cycle cap runs out
// first, the best geometry seen is returned with ErrNotConverged. A
// solver failure or a malformed output document aborts the run; there
// are no retries.
func (d *Driver) Run() (*Result, error) {
	var (
		prev     float64
		history  []Step
		bestE    = math.Inf(1)
		bestGeom = d.Geom
	)
	geom := d.Geom
	trust := d.Trust
	fmt.Fprintf(d.Log, "%5s%5s%16s%14s%14s%10s%10s\n",
		"Cycle", "Step", "E(eV)", "ΔE(Ry)", "F(Ry/bohr)", "Trust", "Time")
	start := time.Now()
	for cycle := 0; cycle < d.MaxCycle; cycle++ {
		g, err := d.Solver.Ground(geom, trust)
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", cycle, err)
		}
		x, err := d.Solver.Excited(d.State)
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", cycle, err)
		}
		energy := g.Energy + x.Excitation
		force := mat.Norm(g.Forces, 2)
		var dE float64
		if cycle > 0 {
			dE = math.Abs(energy-prev) / ryToEv
		}
		step := Step{
			Cycle:  cycle,
			Steps:  g.Steps,
			Energy: energy,
			DeltaE: dE,
			Force:  force,
			Trust:  g.Trust,
			Time:   time.Since(start).Seconds(),
		}
		history = append(history, step)
		fmt.Fprintf(d.Log, "%5d%5d%16.6f%14.6f%14.6f%10.4f%10.1f\n",
			step.Cycle, step.Steps, step.Energy, step.DeltaE,
			step.Force, step.Trust, step.Time)
		start = time.Now()
		if energy < bestE {
			bestE = energy
			bestGeom = g.Geom
		}
		if cycle > 0 && dE < d.Etol && force < d.Ftol {
			res := &Result{Geom: g.Geom, Energy: energy, History: history}
			return res, d.finish(res)
		}
		prev = energy
		geom = g.Geom
		trust = g.Trust
	}
	res := &Result{Geom: bestGeom, Energy: bestE, History: history}
	if err := d.finish(res); err != nil {
		return res, err
	}
	return res, ErrNotConverged
}

// finish writes the final geometry and the iteration history to the
// working directory
func (d *Driver) finish(res *Result) error {
	f, err := os.Create(filepath.Join(d.Dir, "relax.xyz"))
	if err != nil {
		return err
	}
	WriteXYZ(f, res.Geom, fmt.Sprintf("E = %.6f eV", res.Energy))
	if err := f.Close(); err != nil {
		return err
	}
	hist, err := json.MarshalIndent(res.History, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, "relax.json"), hist, 0644)
}
