// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperfem/tsr"
	"github.com/stretchr/testify/require"
)

// identity returns a new 3x3 identity
func identity() [][]float64 {
	return [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// rotatedZ returns R⋅diag(λ)⋅Rᵀ with R a rotation of θ about the z axis
func rotatedZ(λ [3]float64, θ float64) [][]float64 {
	c, s := math.Cos(θ), math.Sin(θ)
	a := tsr.Alloc2()
	tsr.SpectralCompose(a, λ, [][]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}})
	return a
}

func Test_strain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain01. undeformed state")

	for _, measure := range []StressMeasure{PK2, Kirchhoff} {
		sd, err := ComputeStrainData(NewDeformation(identity(), measure))
		require.NoError(tst, err)
		chk.Array(tst, "λ̄", 1e-17, sd.Eigen.Vals[:], []float64{1, 1, 1})
		chk.Float64(tst, "I1", 1e-17, sd.Inv.I1, 3)
		chk.Float64(tst, "I2", 1e-17, sd.Inv.I2, 3)
		chk.Float64(tst, "I3", 1e-17, sd.Inv.I3, 1)
		chk.Float64(tst, "J", 1e-17, sd.Inv.J, 1)
		chk.Float64(tst, "J13", 1e-17, sd.Inv.J13, 1)
		chk.Deep2(tst, "inverse", 1e-17, sd.Inverse, tsr.Ident)
	}
}

func Test_strain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain02. isochoric stretches and invariants")

	// volume change
	d := NewDeformation([][]float64{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, PK2)
	chk.Float64(tst, "J", 1e-17, d.J, 2)
	chk.Deep2(tst, "C", 1e-17, d.Tensor, [][]float64{{4, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	sd, err := ComputeStrainData(d)
	require.NoError(tst, err)
	c := math.Cbrt(2)
	chk.Array(tst, "λ̄", 1e-15, sd.Eigen.Vals[:], []float64{2 / c, 1 / c, 1 / c})
	chk.Float64(tst, "I1", 1e-14, sd.Inv.I1, 6/(c*c))
	chk.Float64(tst, "I2", 1e-14, sd.Inv.I2, 9/(c*c*c*c))
	chk.Float64(tst, "I3", 1e-15, sd.Inv.I3, 1)
	chk.Float64(tst, "J13", 1e-15, sd.Inv.J13, 1/c)

	// simple shear
	F := [][]float64{{1, 0.3, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, measure := range []StressMeasure{PK2, Kirchhoff} {
		d = NewDeformation(F, measure)
		sd, err = ComputeStrainData(d)
		require.NoError(tst, err)
		io.Pforan("%v: λ̄ = %v\n", measure, sd.Eigen.Vals)
		chk.Float64(tst, "I1", 1e-14, sd.Inv.I1, 3+0.09)
		chk.Float64(tst, "I3", 1e-14, sd.Inv.I3, 1)
		m := tsr.Alloc2()
		tsr.MatTrMul(m, sd.Tensor, sd.Inverse)
		chk.Deep2(tst, "T⋅T⁻¹", 1e-14, m, tsr.Ident)
		for k := 0; k < 3; k++ {
			chk.Float64(tst, io.Sf("λ̄%d² = eig%d", k, k), 1e-14, sd.Eigen.Vals[k]*sd.Eigen.Vals[k], eigval(sd.Tensor, sd.Eigen.Vecs[k]))
		}
	}
}

// eigval returns vᵀ⋅a⋅v
func eigval(a [][]float64, v []float64) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += v[i] * a[i][j] * v[j]
		}
	}
	return
}

func Test_strain03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain03. invalid deformations")

	// jacobian is checked first
	for _, J := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ComputeStrainData(&Deformation{Tensor: identity(), J: J, Measure: PK2, Eid: 3, Ipid: 2})
		require.ErrorIs(tst, err, ErrInvalidJacobian)
		require.Contains(tst, err.Error(), "eid=3, ipid=2")
		io.Pforan("err = %v\n", err)
	}
	_, err := ComputeStrainData(&Deformation{Tensor: [][]float64{{1, 0, 0}, {0, math.NaN(), 0}, {0, 0, 1}}, J: 0})
	require.ErrorIs(tst, err, ErrInvalidJacobian)

	// degenerate tensors
	for _, T := range [][][]float64{
		{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, math.NaN(), 0}, {0, 0, 1}},
		{{1, 0}, {0, 1}},
		rotatedZ([3]float64{2, -0.5, 1}, 0.3),
	} {
		_, err = ComputeStrainData(&Deformation{Tensor: T, J: 1, Measure: Kirchhoff, Eid: 7})
		require.ErrorIs(tst, err, ErrDegenerateStrain)
		io.Pforan("err = %v\n", err)
	}

	// other errors
	_, err = ComputeStrainData(nil)
	require.Error(tst, err)
	_, err = ComputeStrainData(&Deformation{Tensor: identity(), J: 1, Measure: StressMeasure(7)})
	require.Error(tst, err)
}
