// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Path holds a sequence of deformation gradients applied from the undeformed state
type Path struct {
	F [][][]float64 // [nstations][3][3] deformation gradients
}

// Size returns the number of stations
func (o *Path) Size() int {
	return len(o.F)
}

// SetUniaxial sets an isochoric uniaxial path: F = diag(λ, 1/√λ, 1/√λ) with λ in [1, λmax]
func (o *Path) SetUniaxial(λmax float64, n int) (err error) {
	if err = checkPath(λmax, n); err != nil {
		return
	}
	o.F = make([][][]float64, n)
	for i, λ := range utl.LinSpace(1, λmax, n) {
		l := 1.0 / math.Sqrt(λ)
		o.F[i] = [][]float64{{λ, 0, 0}, {0, l, 0}, {0, 0, l}}
	}
	return
}

// SetEquibiaxial sets an isochoric equibiaxial path: F = diag(λ, λ, 1/λ²) with λ in [1, λmax]
func (o *Path) SetEquibiaxial(λmax float64, n int) (err error) {
	if err = checkPath(λmax, n); err != nil {
		return
	}
	o.F = make([][][]float64, n)
	for i, λ := range utl.LinSpace(1, λmax, n) {
		o.F[i] = [][]float64{{λ, 0, 0}, {0, λ, 0}, {0, 0, 1.0 / (λ * λ)}}
	}
	return
}

// SetShear sets a simple shear path: F = 1 + γ e0⊗e1 with γ in [0, γmax]
func (o *Path) SetShear(γmax float64, n int) (err error) {
	if n < 2 {
		return chk.Err("path requires at least 2 stations; n=%d is invalid", n)
	}
	if math.IsNaN(γmax) || math.IsInf(γmax, 0) {
		return chk.Err("shear strain γmax=%g is invalid", γmax)
	}
	o.F = make([][][]float64, n)
	for i, γ := range utl.LinSpace(0, γmax, n) {
		o.F[i] = [][]float64{{1, γ, 0}, {0, 1, 0}, {0, 0, 1}}
	}
	return
}

// SetVolumetric sets a pure volumetric path: F = J^(1/3) 1 with J in [1, Jf]
func (o *Path) SetVolumetric(Jf float64, n int) (err error) {
	if err = checkPath(Jf, n); err != nil {
		return
	}
	o.F = make([][][]float64, n)
	for i, J := range utl.LinSpace(1, Jf, n) {
		s := math.Cbrt(J)
		o.F[i] = [][]float64{{s, 0, 0}, {0, s, 0}, {0, 0, s}}
	}
	return
}

// checkPath checks the final stretch (or jacobian) and the number of stations
func checkPath(final float64, n int) error {
	if n < 2 {
		return chk.Err("path requires at least 2 stations; n=%d is invalid", n)
	}
	if !(final > 0) || math.IsInf(final, 0) {
		return chk.Err("final stretch %g must be positive", final)
	}
	return nil
}
