// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperfem/tsr"
	"golang.org/x/sync/errgroup"
)

// Driver runs deformation paths through hyperelastic models
type Driver struct {

	// input
	Mdl     Hyperelastic  // hyperelastic model
	Measure StressMeasure // stress measure

	// settings
	TolD  float64 // tolerance to check D; if 0, deviations are only reported
	HD    float64 // step size for numerical D; if 0, the default one is used
	VerD  bool    // verbose check of D
	Nproc int     // maximum number of concurrent evaluations; if 0, no limit

	// check D matrix
	TstD *testing.T // if != nil, do check consistent matrix (PK2 only)

	// results
	Defs []*Deformation // deformations at each station
	Res  []*Response    // results at each station
	DifD []float64      // max difference between analytical and numerical D at each station
}

// Init initialises driver with a model from the database
func (o *Driver) Init(modelname string, prms dbf.Params, measure StressMeasure) (err error) {
	mdl, err := New(modelname)
	if err != nil {
		return
	}
	err = mdl.Init(prms)
	if err != nil {
		return
	}
	hyp, ok := mdl.(Hyperelastic)
	if !ok {
		return chk.Err("model %q is not hyperelastic", modelname)
	}
	o.InitWithModel(hyp, measure)
	return
}

// InitWithModel initialises driver with an already initialised model
func (o *Driver) InitWithModel(mdl Hyperelastic, measure StressMeasure) {
	o.Mdl = mdl
	o.Measure = measure
	o.VerD = chk.Verbose
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {

	// check
	if o.Mdl == nil {
		return chk.Err("driver must be initialised before Run")
	}
	np := pth.Size()
	if np < 1 {
		return chk.Err("path has no stations")
	}

	// deformations
	o.Defs = make([]*Deformation, np)
	for i, F := range pth.F {
		o.Defs[i] = NewDeformation(F, o.Measure)
		o.Defs[i].Ipid = i
	}

	// evaluate all stations; models are read-only
	o.Res = make([]*Response, np)
	var g errgroup.Group
	if o.Nproc > 0 {
		g.SetLimit(o.Nproc)
	}
	for i := 0; i < np; i++ {
		g.Go(func() (e error) {
			o.Res[i], e = o.Mdl.CalcStressAndTangent(o.Defs[i])
			return
		})
	}
	if err = g.Wait(); err != nil {
		return
	}

	// output
	if o.VerD {
		io.Pf("%4s%10s%14s%14s%14s%14s\n", "i", "J", "W", "σ00", "σ11", "σ01")
		for i, r := range o.Res {
			io.Pf("%4d%10.5f%14.6e%14.6e%14.6e%14.6e\n", i, o.Defs[i].J, r.Energy, r.Sig[0][0], r.Sig[1][1], r.Sig[0][1])
		}
	}

	// check consistent matrix
	if o.TstD == nil {
		return
	}
	if o.Measure != PK2 {
		return chk.Err("numerical D can only be checked with the PK2 stress measure")
	}
	o.DifD = make([]float64, np)
	for i, d := range o.Defs {
		var Dnum [][]float64
		Dnum, err = NumTangent(o.Mdl, d.Tensor, o.HD)
		if err != nil {
			return
		}
		o.DifD[i], err = MaxDiff(o.Res[i].D, Dnum)
		if err != nil {
			return
		}
		if o.TolD > 0 {
			chk.Deep2(o.TstD, io.Sf("D @ station %d", i), o.TolD, o.Res[i].D, Dnum)
			continue
		}
		if o.VerD {
			io.Pforan("station %d: max |D - Dnum| = %g\n", i, o.DifD[i])
		}
	}
	return
}

// StressVoigt returns the stress at station i in Voigt order
func (o *Driver) StressVoigt(i int) (v []float64) {
	v = make([]float64, 6)
	tsr.Ten2Voigt(v, o.Res[i].Sig)
	return
}
