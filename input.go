package main

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"
)

//go:embed pw.tmpl wbse.tmpl
var Templates embed.FS

var (
	PW_TEMPLATE   *template.Template
	WBSE_TEMPLATE *template.Template
)

func init() {
	var err error
	PW_TEMPLATE, err = template.ParseFS(Templates, "pw.tmpl")
	if err != nil {
		panic(err)
	}
	WBSE_TEMPLATE, err = template.ParseFS(Templates, "wbse.tmpl")
	if err != nil {
		panic(err)
	}
}

var masses = map[string]float64{
	"H": 1.008,
	"C": 12.011,
	"N": 14.007,
	"O": 15.999,
}

type Species struct {
	Name   string
	Mass   float64
	Pseudo string
}

// findPseudo locates the pseudopotential file for name in the
// configured list by its element prefix
func findPseudo(name string, pseudos []string) (string, error) {
	prefix := strings.ToLower(name)
	for _, p := range pseudos {
		low := strings.ToLower(p)
		if strings.HasPrefix(low, prefix) &&
			len(low) > len(prefix) &&
			strings.ContainsRune("_.-", rune(low[len(prefix)])) {
			return p, nil
		}
	}
	return "", fmt.Errorf("no pseudopotential for %s", name)
}

// speciesOf returns the distinct species in g, in order of first
// appearance
func speciesOf(g Geometry, pseudos []string) ([]Species, error) {
	seen := make(map[string]bool)
	var ret []Species
	for _, name := range g.Names {
		if seen[name] {
			continue
		}
		seen[name] = true
		pseudo, err := findPseudo(name, pseudos)
		if err != nil {
			return nil, err
		}
		mass, ok := masses[name]
		if !ok {
			mass = 1.0
		}
		ret = append(ret, Species{Name: name, Mass: mass, Pseudo: pseudo})
	}
	return ret, nil
}

// WriteGroundInput writes a single-step relaxation input deck for the
// ground-state solver, seeding its optimizer with the trust radius
// accepted on the previous cycle
func WriteGroundInput(w io.Writer, conf Config, geom Geometry, trust float64) error {
	species, err := speciesOf(geom, conf.Pseudo)
	if err != nil {
		return err
	}
	return PW_TEMPLATE.Execute(w, struct {
		Prefix   string
		CellBohr float64
		Nat      int
		Ntyp     int
		Trust    float64
		Species  []Species
		Geom     string
	}{
		Prefix:   conf.Prefix,
		CellBohr: conf.Cell / toAng,
		Nat:      geom.Len(),
		Ntyp:     len(species),
		Trust:    trust,
		Species:  species,
		Geom:     geom.String(),
	})
}

// WriteExcitedInput writes the excited-state solver's input deck. A
// couple of roots beyond the requested state are solved for so the
// eigenvalue list always covers it.
func WriteExcitedInput(w io.Writer, conf Config) error {
	return WBSE_TEMPLATE.Execute(w, struct {
		Prefix string
		NEigen int
		State  int
	}{
		Prefix: conf.Prefix,
		NEigen: conf.State + 2,
		State:  conf.State,
	})
}
