package main

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// PwResult holds the pieces of a ground-state run the driver cares
// about: the total energy in eV, the atomic structure in angstroms,
// and the per-atom forces in Ry/bohr.
type PwResult struct {
	Energy float64
	Geom   Geometry
	Forces *mat.Dense
}

// xml layout of the solver's data-file-schema document. positions and
// forces come as whitespace-separated floats in atomic units.
type pwAtom struct {
	Name string `xml:"name,attr"`
	Body string `xml:",chardata"`
}

type pwSchema struct {
	Output struct {
		TotalEnergy struct {
			Etot *float64 `xml:"etot"`
		} `xml:"total_energy"`
		AtomicStructure struct {
			Nat   int      `xml:"nat,attr"`
			Atoms []pwAtom `xml:"atomic_positions>atom"`
		} `xml:"atomic_structure"`
		Forces string `xml:"forces"`
	} `xml:"output"`
}

// ParsePw reads the ground-state solver's XML output document. The
// energy is converted from hartree to eV, the positions from bohr to
// angstrom, and the forces from Ha/bohr to Ry/bohr.
func ParsePw(filename string) (*PwResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var doc pwSchema
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, &ParseError{File: filename, Field: "output"}
	}
	if doc.Output.TotalEnergy.Etot == nil {
		return nil, &ParseError{File: filename, Field: "output.total_energy.etot"}
	}
	if len(doc.Output.AtomicStructure.Atoms) == 0 {
		return nil, &ParseError{File: filename, Field: "output.atomic_structure"}
	}
	res := &PwResult{
		Energy: *doc.Output.TotalEnergy.Etot * htToEv,
	}
	for _, atom := range doc.Output.AtomicStructure.Atoms {
		pos, err := toFloat(strings.Fields(atom.Body))
		if err != nil || len(pos) != 3 {
			return nil, &ParseError{
				File:  filename,
				Field: "output.atomic_structure.atomic_positions",
			}
		}
		res.Geom.Names = append(res.Geom.Names, atom.Name)
		for _, p := range pos {
			res.Geom.Coords = append(res.Geom.Coords, p*toAng)
		}
	}
	force, err := toFloat(strings.Fields(doc.Output.Forces))
	if err != nil || len(force) != 3*res.Geom.Len() {
		return nil, &ParseError{File: filename, Field: "output.forces"}
	}
	for i := range force {
		force[i] *= 2 // Ha/bohr -> Ry/bohr
	}
	res.Forces = mat.NewDense(res.Geom.Len(), 3, force)
	return res, nil
}

// ParseRelax scans the ground-state solver's captured stdout for the
// optimizer bookkeeping: the trust radius it settled on and the
// number of quasi-Newton steps it took. trust is 0 if the output
// reported none, as happens on the final converged step.
func ParseRelax(r io.Reader) (trust float64, steps int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "new trust radius") {
			fields := strings.Fields(line)
			// "new trust radius = 0.8000 bohr"
			if len(fields) < 5 {
				continue
			}
			v, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				continue
			}
			trust = v
			steps++
		}
	}
	return
}
