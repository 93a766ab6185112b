// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hyperfem/tsr"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// numerical derivatives w.r.t. the Voigt components of C
//
//   x = {C00, C11, C22, C01, C12, C02}
//
//  a perturbation of x_k (k ≥ 3) changes both C_ab and C_ba; thus
//    ∂(.)/∂x_k = ∂(.)/∂C_aa       (k < 3)
//    ∂(.)/∂x_k = 2 ∂(.)/∂C_ab     (k ≥ 3)

// NumTangent computes D = 2 ∂S/∂C by central differences of the PK2 stress
//  h is the step size; use h ≤ 0 for the default one.
func NumTangent(mdl Hyperelastic, C [][]float64, h float64) (D [][]float64, err error) {
	x := make([]float64, 6)
	tsr.Ten2Voigt(x, C)
	jac := mat.NewDense(6, 6, nil)
	settings := &fd.JacobianSettings{Formula: fd.Central}
	if h > 0 {
		settings.Step = h
	}
	fd.Jacobian(jac, func(y, x []float64) {
		if err != nil {
			return
		}
		var res *Response
		res, err = mdl.CalcStress(rightDeformation(x))
		if err != nil {
			return
		}
		tsr.Ten2Voigt(y, res.Sig)
	}, x, settings)
	if err != nil {
		return nil, err
	}
	D = make([][]float64, 6)
	for i := 0; i < 6; i++ {
		D[i] = make([]float64, 6)
		for j := 0; j < 6; j++ {
			if j < 3 {
				D[i][j] = 2.0 * jac.At(i, j)
			} else {
				D[i][j] = jac.At(i, j)
			}
		}
	}
	return
}

// NumStress computes S = 2 ∂W/∂C by central differences of the strain energy
//  h is the step size; use h ≤ 0 for the default one.
func NumStress(mdl Hyperelastic, C [][]float64, h float64) (S [][]float64, err error) {
	x := make([]float64, 6)
	tsr.Ten2Voigt(x, C)
	settings := &fd.Settings{Formula: fd.Central}
	if h > 0 {
		settings.Step = h
	}
	g := fd.Gradient(nil, func(x []float64) float64 {
		if err != nil {
			return 0
		}
		var W float64
		W, err = mdl.CalcEnergy(rightDeformation(x))
		return W
	}, x, settings)
	if err != nil {
		return nil, err
	}
	v := make([]float64, 6)
	for k := 0; k < 6; k++ {
		if k < 3 {
			v[k] = 2.0 * g[k]
		} else {
			v[k] = g[k]
		}
	}
	S = tsr.Alloc2()
	tsr.Voigt2Ten(S, v)
	return
}

// MaxDiff returns the largest absolute difference between two matrices
func MaxDiff(a, b [][]float64) (res float64, err error) {
	if len(a) != len(b) {
		return 0, chk.Err("matrices must have the same size: %d != %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return 0, chk.Err("rows %d must have the same size: %d != %d", i, len(a[i]), len(b[i]))
		}
		for j := range a[i] {
			res = math.Max(res, math.Abs(a[i][j]-b[i][j]))
		}
	}
	return
}

// rightDeformation builds the PK2 deformation from the Voigt components of C; J = √det(C)
func rightDeformation(x []float64) *Deformation {
	C := tsr.Alloc2()
	tsr.Voigt2Ten(C, x)
	return &Deformation{Tensor: C, J: math.Sqrt(tsr.Det(C)), Measure: PK2}
}
