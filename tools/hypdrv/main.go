// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hypdrv runs a deformation path through one material of a materials database
package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperfem/inp"
	"github.com/cpmech/hyperfem/mdl/solid"
	"github.com/spf13/cobra"
)

// Input holds the command line arguments
type Input struct {
	MatFn   string  // materials database
	MatName string  // material name
	Kind    string  // path kind: uniaxial, equibiaxial, shear, volumetric
	Max     float64 // final stretch, shear strain or jacobian
	Np      int     // number of stations
	Measure string  // stress measure: PK2 or Kirchhoff
	Nproc   int     // maximum number of concurrent evaluations
	Verbose bool    // show input table and numerical tangent deviations
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"materials database", "mat", o.MatFn,
		"material name", "name", o.MatName,
		"path kind", "path", o.Kind,
		"final stretch / shear / jacobian", "max", o.Max,
		"number of stations", "np", o.Np,
		"stress measure", "measure", o.Measure,
		"max concurrent evaluations", "nproc", o.Nproc,
		"verbose", "verbose", o.Verbose,
	)
	return
}

func main() {
	var in Input
	cmd := &cobra.Command{
		Use:          "hypdrv",
		Short:        "Runs a deformation path through a hyperelastic material",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&in)
		},
	}
	cmd.Flags().StringVar(&in.MatFn, "mat", "inp/data/materials.yaml", "materials database (YAML)")
	cmd.Flags().StringVar(&in.MatName, "name", "rubber", "material name")
	cmd.Flags().StringVar(&in.Kind, "path", "uniaxial", "path kind: uniaxial, equibiaxial, shear or volumetric")
	cmd.Flags().Float64Var(&in.Max, "max", 2, "final stretch (uniaxial, equibiaxial), shear strain or jacobian")
	cmd.Flags().IntVar(&in.Np, "np", 11, "number of stations")
	cmd.Flags().StringVar(&in.Measure, "measure", "PK2", "stress measure: PK2 or Kirchhoff")
	cmd.Flags().IntVar(&in.Nproc, "nproc", 0, "maximum number of concurrent evaluations; 0 means no limit")
	cmd.Flags().BoolVarP(&in.Verbose, "verbose", "v", false, "show input table and tangent deviations")
	if err := cmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(in *Input) (err error) {

	// input table
	if in.Verbose {
		io.Pf("%v\n", in)
	}

	// material
	mdb, err := inp.ReadMat(filepath.Dir(in.MatFn), filepath.Base(in.MatFn))
	if err != nil {
		return
	}
	mat := mdb.Get(in.MatName)
	if mat == nil {
		return chk.Err("cannot find material %q in %q", in.MatName, in.MatFn)
	}

	// stress measure
	var measure solid.StressMeasure
	switch in.Measure {
	case "PK2":
		measure = solid.PK2
	case "Kirchhoff":
		measure = solid.Kirchhoff
	default:
		return chk.Err("stress measure %q is invalid; options are \"PK2\" and \"Kirchhoff\"", in.Measure)
	}

	// path
	var pth solid.Path
	switch in.Kind {
	case "uniaxial":
		err = pth.SetUniaxial(in.Max, in.Np)
	case "equibiaxial":
		err = pth.SetEquibiaxial(in.Max, in.Np)
	case "shear":
		err = pth.SetShear(in.Max, in.Np)
	case "volumetric":
		err = pth.SetVolumetric(in.Max, in.Np)
	default:
		err = chk.Err("path kind %q is invalid; options are \"uniaxial\", \"equibiaxial\", \"shear\" and \"volumetric\"", in.Kind)
	}
	if err != nil {
		return
	}

	// run
	var drv solid.Driver
	drv.InitWithModel(mat.Solid, measure)
	drv.Nproc = in.Nproc
	err = drv.Run(&pth)
	if err != nil {
		return
	}

	// results
	io.Pf("%4s%12s%14s%14s%14s%14s%14s%14s%14s\n", "i", "J", "W", "σ00", "σ11", "σ22", "σ01", "σ12", "σ02")
	for i := range drv.Res {
		σ := drv.StressVoigt(i)
		io.Pf("%4d%12.6f%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e\n", i, drv.Defs[i].J, drv.Res[i].Energy, σ[0], σ[1], σ[2], σ[3], σ[4], σ[5])
	}

	// tangent deviations
	if in.Verbose && measure == solid.PK2 {
		io.Pf("\n%4s%14s\n", "i", "max|D-Dnum|")
		for i, d := range drv.Defs {
			Dnum, e := solid.NumTangent(mat.Solid, d.Tensor, 0)
			if e != nil {
				return e
			}
			dif, e := solid.MaxDiff(drv.Res[i].D, Dnum)
			if e != nil {
				return e
			}
			io.Pforan("%4d%14.6e\n", i, dif)
		}
	}
	return
}
