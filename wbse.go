package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// WbseResult holds the parsed excited-state solver output: the state
// the forces were computed for and the Davidson iteration history.
type WbseResult struct {
	file        string
	ForcesState int
	history     [][]float64
}

type wbseFile struct {
	Input struct {
		WbseControl struct {
			ForcesState int `json:"forces_state"`
		} `json:"wbse_control"`
	} `json:"input"`
	Exec struct {
		Davitr []struct {
			Ev []float64 `json:"ev"`
		} `json:"davitr"`
	} `json:"exec"`
}

// ParseWbse reads the excited-state solver's JSON result document.
func ParseWbse(filename string) (*WbseResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var doc wbseFile
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, &ParseError{File: filename, Field: "exec"}
	}
	if len(doc.Exec.Davitr) == 0 {
		return nil, &ParseError{File: filename, Field: "exec.davitr"}
	}
	res := &WbseResult{
		file:        filename,
		ForcesState: doc.Input.WbseControl.ForcesState,
	}
	for _, itr := range doc.Exec.Davitr {
		res.history = append(res.history, itr.Ev)
	}
	return res, nil
}

// Excitation returns the eigenvalue of the requested 1-based state in
// eV, taken from the last (converged) Davidson iteration. The solver
// reports eigenvalues at twice their hartree value, hence the factor
// of two.
func (w *WbseResult) Excitation(state int) (float64, error) {
	ev := w.history[len(w.history)-1]
	if state < 1 || state > len(ev) {
		return 0, &ParseError{
			File:  w.file,
			Field: fmt.Sprintf("exec.davitr.ev[%d]", state),
		}
	}
	return ev[state-1] / 2 * htToEv, nil
}
