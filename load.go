package main

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type RawConf struct {
	GroundCmd  string
	ExcitedCmd string
	Nproc      int
	Prefix     string
	Pseudo     []string
	State      int
	Etol       float64
	Ftol       float64
	MaxCycle   int
	Trust      float64
	Cell       float64
	GeomFile   string
	WorkDir    string
	GroundEtot float64
}

func (rc RawConf) ToConfig() (conf Config) {
	conf.GroundCmd = rc.GroundCmd
	conf.ExcitedCmd = rc.ExcitedCmd
	conf.Nproc = rc.Nproc
	conf.Prefix = rc.Prefix
	conf.Pseudo = rc.Pseudo
	conf.State = rc.State
	conf.Etol = rc.Etol
	conf.Ftol = rc.Ftol
	conf.MaxCycle = rc.MaxCycle
	conf.Trust = rc.Trust
	conf.Cell = rc.Cell
	conf.WorkDir = rc.WorkDir
	conf.GroundEtot = rc.GroundEtot
	geom, err := LoadXYZ(rc.GeomFile)
	if err != nil {
		panic(err)
	}
	conf.Geom = geom
	return
}

type Config struct {
	GroundCmd  string
	ExcitedCmd string
	Nproc      int
	Prefix     string
	Pseudo     []string
	State      int
	Etol       float64 // Ry
	Ftol       float64 // Ry/bohr
	MaxCycle   int
	Trust      float64 // bohr
	Cell       float64 // angstrom
	Geom       Geometry
	WorkDir    string
	GroundEtot float64 // eV, for the adiabatic energy; 0 if absent
}

func LoadConfig(filename string) Config {
	f, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		panic(err)
	}
	// Defaults
	rc := RawConf{
		GroundCmd:  "pw.x",
		ExcitedCmd: "wbse.x",
		Nproc:      1,
		Prefix:     "exrelax",
		State:      1,
		Etol:       1.0e-4,
		Ftol:       1.0e-3,
		MaxCycle:   100,
		Trust:      0.8,
		Cell:       15.0,
		GeomFile:   "geom.xyz",
		WorkDir:    ".",
	}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		panic(err)
	}
	return rc.ToConfig()
}
