// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hyperfem/tsr"
)

// StressMeasure selects the stress measure and, with it, the strain tensor convention
type StressMeasure int

const (
	PK2       StressMeasure = iota // second Piola-Kirchhoff stress; tensor = right Cauchy-Green C
	Kirchhoff                      // Kirchhoff stress; tensor = left Cauchy-Green b
)

// String returns the name of the stress measure
func (o StressMeasure) String() string {
	switch o {
	case PK2:
		return "PK2"
	case Kirchhoff:
		return "Kirchhoff"
	}
	return "unknown"
}

// Deformation holds the kinematics at one integration point, as given by the element
type Deformation struct {
	Tensor  [][]float64   // [3][3] C (PK2) or b (Kirchhoff)
	J       float64       // det(F)
	Measure StressMeasure // stress measure
	Eid     int           // element id; for messages only
	Ipid    int           // integration point id; for messages only
}

// NewDeformation computes C = Fᵀ⋅F or b = F⋅Fᵀ and J = det(F) from the deformation gradient F
func NewDeformation(F [][]float64, measure StressMeasure) (d *Deformation) {
	d = &Deformation{Tensor: tsr.Alloc2(), J: tsr.Det(F), Measure: measure}
	if measure == Kirchhoff {
		tsr.MatMulTr(d.Tensor, F, F)
		return
	}
	tsr.MatTrMul(d.Tensor, F, F)
	return
}

// Invariants holds invariants of the isochoric strain and the jacobian
type Invariants struct {
	I1  float64 // Σ λ̄_i²
	I2  float64 // Σ (λ̄_i λ̄_j)² over pairs
	I3  float64 // Π λ̄_i²
	J   float64 // det(F)
	J13 float64 // J^(-1/3)
}

// StrainData holds the strain quantities shared by the isochoric and volumetric parts
//  Eigen.Vals holds the isochoric principal stretches λ̄_i = λ_i J^(-1/3), in the order
//  returned by the spectral decomposition; Eigen.Vecs[i] is the matching direction.
type StrainData struct {
	Measure StressMeasure // stress measure
	Tensor  [][]float64   // C or b (not copied)
	Inverse [][]float64   // C⁻¹ or b⁻¹
	Eigen   *tsr.Eigen    // isochoric principal stretches and directions
	Inv     Invariants    // invariants
}

// ComputeStrainData computes the spectral decomposition, isochoric stretches and invariants
func ComputeStrainData(d *Deformation) (o *StrainData, err error) {

	// check input
	if d == nil {
		return nil, chk.Err("deformation must not be nil")
	}
	if !(d.J > 0) || math.IsInf(d.J, 0) {
		return nil, pointErr(ErrInvalidJacobian, d, "J=%g must be positive", d.J)
	}
	if d.Measure != PK2 && d.Measure != Kirchhoff {
		return nil, chk.Err("stress measure %d is invalid", d.Measure)
	}

	// spectral decomposition
	e, err := tsr.EigenSym3(d.Tensor)
	if err != nil {
		return nil, pointErr(ErrDegenerateStrain, d, "%v", err)
	}
	for k := 0; k < 3; k++ {
		if !(e.Vals[k] > 0) {
			return nil, pointErr(ErrDegenerateStrain, d, "eigenvalue λ%d=%g is not positive", k, e.Vals[k])
		}
	}

	// inverse
	o = &StrainData{Measure: d.Measure, Tensor: d.Tensor, Inverse: tsr.Alloc2(), Eigen: e}
	tsr.SpectralCompose(o.Inverse, [3]float64{1.0 / e.Vals[0], 1.0 / e.Vals[1], 1.0 / e.Vals[2]}, e.Vecs)

	// isochoric stretches
	cbrtJ := math.Cbrt(d.J)
	for k := 0; k < 3; k++ {
		e.Vals[k] = math.Sqrt(e.Vals[k]) / cbrtJ
	}

	// invariants
	l0, l1, l2 := e.Vals[0]*e.Vals[0], e.Vals[1]*e.Vals[1], e.Vals[2]*e.Vals[2]
	o.Inv.I1 = l0 + l1 + l2
	o.Inv.I2 = l1*l2 + l2*l0 + l0*l1
	o.Inv.I3 = l0 * l1 * l2
	o.Inv.J = d.J
	o.Inv.J13 = 1.0 / cbrtJ
	return
}
