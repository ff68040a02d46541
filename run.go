package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// GroundResult is what one ground-state run hands back to the driver:
// the total energy in eV, the geometry the embedded optimizer
// proposes for the next cycle, the forces it was computed from, and
// the trust radius the optimizer settled on.
type GroundResult struct {
	Energy float64
	Geom   Geometry
	Forces *mat.Dense
	Trust  float64
	Steps  int
}

type ExcitedResult struct {
	Excitation float64 // eV
	State      int
}

// Solver abstracts the two external executables so the driver can be
// exercised without them. Both calls block until the underlying
// process exits.
type Solver interface {
	Ground(geom Geometry, trust float64) (*GroundResult, error)
	Excited(state int) (*ExcitedResult, error)
}

// CommandSolver runs the real executables in the configured working
// directory. The excited run reads the ground run's save directory,
// so Ground must have completed before Excited is called.
type CommandSolver struct {
	conf Config
}

func NewCommandSolver(conf Config) *CommandSolver {
	return &CommandSolver{conf: conf}
}

// run launches command on infile under mpirun when more than one
// process is requested, captures its combined output to outfile, and
// wraps a nonzero exit in a ProcessError
func (s *CommandSolver) run(command, infile, outfile string) ([]byte, error) {
	args := strings.Fields(command)
	if s.conf.Nproc > 1 {
		args = append([]string{"mpirun", "-n", strconv.Itoa(s.conf.Nproc)}, args...)
	}
	args = append(args, "-i", infile)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = s.conf.WorkDir
	out, err := cmd.CombinedOutput()
	os.WriteFile(filepath.Join(s.conf.WorkDir, outfile), out, 0644)
	if err != nil {
		exit := -1
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exit = ee.ExitCode()
		}
		return out, &ProcessError{
			Cmd:    strings.Join(args, " "),
			Exit:   exit,
			Output: out,
		}
	}
	return out, nil
}

func (s *CommandSolver) Ground(geom Geometry, trust float64) (*GroundResult, error) {
	f, err := os.Create(filepath.Join(s.conf.WorkDir, "pw.in"))
	if err != nil {
		return nil, err
	}
	err = WriteGroundInput(f, s.conf, geom, trust)
	f.Close()
	if err != nil {
		return nil, err
	}
	out, err := s.run(s.conf.GroundCmd, "pw.in", "pw.out")
	if err != nil {
		return nil, err
	}
	newTrust, steps := ParseRelax(bytes.NewReader(out))
	res, err := ParsePw(filepath.Join(
		s.conf.WorkDir, s.conf.Prefix+".save", "data-file-schema.xml",
	))
	if err != nil {
		return nil, err
	}
	if newTrust == 0 {
		// the converged final step reports no new radius
		newTrust = trust
	}
	return &GroundResult{
		Energy: res.Energy,
		Geom:   res.Geom,
		Forces: res.Forces,
		Trust:  newTrust,
		Steps:  steps,
	}, nil
}

func (s *CommandSolver) Excited(state int) (*ExcitedResult, error) {
	f, err := os.Create(filepath.Join(s.conf.WorkDir, "wbse.in"))
	if err != nil {
		return nil, err
	}
	err = WriteExcitedInput(f, s.conf)
	f.Close()
	if err != nil {
		return nil, err
	}
	if _, err := s.run(s.conf.ExcitedCmd, "wbse.in", "wbse.out"); err != nil {
		return nil, err
	}
	res, err := ParseWbse(filepath.Join(
		s.conf.WorkDir, s.conf.Prefix+".wbse.save", "wbse.json",
	))
	if err != nil {
		return nil, err
	}
	exc, err := res.Excitation(state)
	if err != nil {
		return nil, err
	}
	return &ExcitedResult{Excitation: exc, State: state}, nil
}
