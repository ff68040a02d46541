// exrelax relaxes a molecule on an excited-state surface by
// alternating an external ground-state solver with an external TDDFT
// solver, then reports the resulting internal coordinates and
// excitation energy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
)

// Flags
var (
	cpuprofile = flag.String("cpu", "", "write a CPU profile")
	plotFile   = flag.String("plot", "relax.png",
		"name of the convergence plot in the working directory, empty to disable")
)

func main() {
	host, _ := os.Hostname()
	flag.Parse()
	args := flag.Args()
	infile := "exrelax.toml"
	if len(args) >= 1 {
		infile = args[0]
	}
	DupOutErr(infile)
	fmt.Printf("running on host: %s\n", host)
	conf := LoadConfig(infile)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	drv := NewDriver(conf, NewCommandSolver(conf))
	res, err := drv.Run()
	switch {
	case errors.Is(err, ErrNotConverged):
		log.Printf("no convergence in %d cycles, reporting best geometry\n",
			len(res.History))
	case err != nil:
		log.Fatalln(err)
	}
	fmt.Printf("final energy: %.6f eV\n", res.Energy)
	if m, err := CH2OMeasures(res.Geom); err == nil {
		WriteReport(os.Stdout, m, &ExcitedRef)
	}
	if conf.GroundEtot != 0 {
		fmt.Printf("adiabatic excitation energy: %.6f eV\n",
			Adiabatic(res.Energy, conf.GroundEtot))
	}
	if *plotFile != "" {
		err := PlotConvergence(res.History,
			filepath.Join(conf.WorkDir, *plotFile))
		if err != nil {
			log.Println(err)
		}
	}
}
