package main

import (
	"errors"
	"testing"
)

func TestExcitation(t *testing.T) {
	res, err := ParseWbse("testfiles/wbse.json")
	if err != nil {
		t.Fatal(err)
	}
	if res.ForcesState != 1 {
		t.Errorf("got %d, wanted 1\n", res.ForcesState)
	}
	// last davitr entry, ev[0], halved and converted to eV
	got, err := res.Excitation(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := 0.251291738022 / 2 * htToEv; !near(got, want, 1e-12) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if !near(got, 3.419000, 1e-6) {
		t.Errorf("got %v, wanted 3.419000\n", got)
	}
}

func TestExcitationOutOfRange(t *testing.T) {
	res, err := ParseWbse("testfiles/wbse.json")
	if err != nil {
		t.Fatal(err)
	}
	for _, state := range []int{0, 4} {
		_, err := res.Excitation(state)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("state %d: got %v, wanted ParseError\n", state, err)
		}
	}
}

func TestEmptyHistory(t *testing.T) {
	_, err := ParseWbse("testfiles/empty.json")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, wanted ParseError\n", err)
	}
	if pe.Field != "exec.davitr" {
		t.Errorf("got %q, wanted exec.davitr\n", pe.Field)
	}
}
