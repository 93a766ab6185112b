// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/hyperfem/tsr"
)

// isochoric part of the Ogden model
//
//   W̄ = Σ_p (μ_p/α_p) (λ̄0^α_p + λ̄1^α_p + λ̄2^α_p - 3)
//
//   λ̄_i -- isochoric principal stretches (StrainData.Eigen.Vals)

const athird = 1.0 / 3.0

// IsochoricEnergy computes the isochoric strain energy density
func IsochoricEnergy(prm *Parameters, sd *StrainData) (W float64) {
	λ := sd.Eigen.Vals
	for p := 0; p < prm.Nterms(); p++ {
		μ, α := prm.Mu(p), prm.Alpha(p)
		W += (μ / α) * (math.Pow(λ[0], α) + math.Pow(λ[1], α) + math.Pow(λ[2], α) - 3.0)
	}
	return
}

// PrincipalStresses computes the deviatoric principal (Kirchhoff) stresses
//   τ_i = Σ_p μ_p (λ̄_i^α_p - ⅓ Σ_j λ̄_j^α_p)
func PrincipalStresses(prm *Parameters, sd *StrainData) (τ [3]float64) {
	λ := sd.Eigen.Vals
	for i := 0; i < 3; i++ {
		for p := 0; p < prm.Nterms(); p++ {
			μ, α := prm.Mu(p), prm.Alpha(p)
			τ[i] += μ * (math.Pow(λ[i], α) - athird*(math.Pow(λ[0], α)+math.Pow(λ[1], α)+math.Pow(λ[2], α)))
		}
	}
	return
}

// PrincipalStressDerivs computes the derivatives of the principal stresses w.r.t. the stretches
//   dτ_ij = Σ_p μ_p ⅓ (λ̄_i^α_p + ⅓ Σ_k λ̄_k^α_p)   (all i, j)
//         - Σ_p μ_p ⅓ (2 λ̄_i^α_p + λ̄_j^α_p)       (i ≠ j only)
//  Note: the two parts are not symmetric on their own, but their sum is
func PrincipalStressDerivs(prm *Parameters, sd *StrainData) (dτ [3][3]float64) {
	λ := sd.Eigen.Vals
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for p := 0; p < prm.Nterms(); p++ {
				μ, α := prm.Mu(p), prm.Alpha(p)
				dτ[i][j] += μ * (athird * (math.Pow(λ[i], α) + athird*(math.Pow(λ[0], α)+math.Pow(λ[1], α)+math.Pow(λ[2], α))))
				if i != j {
					dτ[i][j] -= μ * (athird * (2.0*math.Pow(λ[i], α) + math.Pow(λ[j], α)))
				}
			}
		}
	}
	return
}

// IsochoricStress assembles the isochoric stress tensor from the principal stresses
//   PK2:       S̄ = Σ_i τ_i (v_i/λ̄_i) ⊗ (v_i/λ̄_i)
//   Kirchhoff: τ̄ = Σ_i τ_i v_i ⊗ v_i
func IsochoricStress(sd *StrainData, τ [3]float64) (σ [][]float64) {
	σ = tsr.Alloc2()
	u := principalDirs(sd)
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				σ[i][j] += τ[k] * u[k][i] * u[k][j]
			}
		}
	}
	return
}

// IsoTangent computes components of the isochoric constitutive tensor
type IsoTangent struct {
	sd *StrainData   // strain data
	u  [][]float64   // principal directions: v_i/λ̄_i (PK2) or v_i (Kirchhoff)
	dτ [3][3]float64 // derivatives of principal stresses
	τ  [3]float64    // principal stresses
	k  float64       // coefficient of eigenprojection derivatives: 2 (PK2) or 4 (Kirchhoff)
}

// NewIsoTangent computes the data shared by all components of the isochoric tangent
func NewIsoTangent(prm *Parameters, sd *StrainData) (o *IsoTangent) {
	o = &IsoTangent{sd: sd, u: principalDirs(sd), k: 2.0}
	o.dτ = PrincipalStressDerivs(prm, sd)
	o.τ = PrincipalStresses(prm, sd)
	if sd.Measure == Kirchhoff {
		o.k = 4.0
	}
	return
}

// Comp computes the (a,b,c,d) component
//   C_abcd = Σ_i [ Σ_j dτ_ij (u_i ⊗ u_i) ⊗ (u_j ⊗ u_j) + k τ_i Dᵢ_abcd ]
//  where Dᵢ is the eigenprojection derivative of direction i
func (o *IsoTangent) Comp(a, b, c, d int) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += o.dτ[i][j] * tsr.VecDyadComp(o.u[i], o.u[j], a, b, c, d)
		}
		if o.sd.Measure == PK2 {
			res += o.k * o.τ[i] * EigenProductDerivRight(o.sd, i, a, b, c, d)
		} else {
			res += o.k * o.τ[i] * EigenProductDerivLeft(o.sd, i, a, b, c, d)
		}
	}
	return
}

// EigenProductDerivRight computes the (a,b,c,d) component of the eigenprojection derivative
// of direction i when the strain tensor is the right Cauchy-Green tensor C
//
//   D  = 2λ⁴ - I1 λ² + I3/λ²
//   dD = 8λ³ - 2 I1 λ - 2 I3/λ³
//   r  = Iˢ + 1⊗1 + (I3/λ²) (C⁻¹⊗C⁻¹ - C⁻¹⊙C⁻¹) + 1⊗(v⊗v) + (v⊗v)⊗1
//      - ½ dD/λ³ (v⊗v)⊗(v⊗v) - (I3/λ⁴) [C⁻¹⊗(v⊗v) + (v⊗v)⊗C⁻¹]
//   result = D r
func EigenProductDerivRight(sd *StrainData, i, a, b, c, d int) (res float64) {
	λ := sd.Eigen.Vals[i]
	I1, I3 := sd.Inv.I1, sd.Inv.I3
	D := 2.0*λ*λ*λ*λ - I1*λ*λ + I3/(λ*λ)
	dD := 8.0*λ*λ*λ - 2.0*I1*λ - 2.0*I3/(λ*λ*λ)
	v := sd.Eigen.Vecs[i]
	Ci, I := sd.Inverse, tsr.Ident
	res += tsr.UnitComp(a, b, c, d)
	res += tsr.DyadComp(I, I, a, b, c, d)
	res += tsr.DyadComp(Ci, Ci, a, b, c, d) * I3 / (λ * λ)
	res -= tsr.SymProdComp(Ci, a, b, c, d) * I3 / (λ * λ)
	res += tsr.MatVecDyadComp(I, v, a, b, c, d)
	res += tsr.VecMatDyadComp(v, I, a, b, c, d)
	res -= 0.5 * dD * tsr.VecDyadComp(v, v, a, b, c, d) / (λ * λ * λ)
	res -= I3 * tsr.MatVecDyadComp(Ci, v, a, b, c, d) / (λ * λ * λ * λ)
	res -= I3 * tsr.VecMatDyadComp(v, Ci, a, b, c, d) / (λ * λ * λ * λ)
	res *= D
	return
}

// EigenProductDerivLeft computes the (a,b,c,d) component of the eigenprojection derivative
// of direction i when the strain tensor is the left Cauchy-Green tensor b
//
//   r  = b⊙b - b⊗b + (I3/λ²) (1⊗1 - Iˢ) + λ² [b⊗(v⊗v) + (v⊗v)⊗b]
//      - ½ dD λ (v⊗v)⊗(v⊗v) - (I3/λ²) [1⊗(v⊗v) + (v⊗v)⊗1]
//   result = D r
func EigenProductDerivLeft(sd *StrainData, i, a, b, c, d int) (res float64) {
	λ := sd.Eigen.Vals[i]
	I1, I3 := sd.Inv.I1, sd.Inv.I3
	D := 2.0*λ*λ*λ*λ - I1*λ*λ + I3/(λ*λ)
	dD := 8.0*λ*λ*λ - 2.0*I1*λ - 2.0*I3/(λ*λ*λ)
	v := sd.Eigen.Vecs[i]
	B, I := sd.Tensor, tsr.Ident
	res += tsr.SymProdComp(B, a, b, c, d)
	res -= tsr.DyadComp(B, B, a, b, c, d)
	res += tsr.DyadComp(I, I, a, b, c, d) * I3 / (λ * λ)
	res -= tsr.UnitComp(a, b, c, d) * I3 / (λ * λ)
	res += (λ * λ) * tsr.MatVecDyadComp(B, v, a, b, c, d)
	res += (λ * λ) * tsr.VecMatDyadComp(v, B, a, b, c, d)
	res -= 0.5 * dD * λ * tsr.VecDyadComp(v, v, a, b, c, d)
	res -= I3 * tsr.MatVecDyadComp(I, v, a, b, c, d) / (λ * λ)
	res -= I3 * tsr.VecMatDyadComp(v, I, a, b, c, d) / (λ * λ)
	res *= D
	return
}

// principalDirs returns v_i/λ̄_i for PK2 or v_i for Kirchhoff
func principalDirs(sd *StrainData) (u [][]float64) {
	u = make([][]float64, 3)
	for k := 0; k < 3; k++ {
		s := 1.0
		if sd.Measure == PK2 {
			s = 1.0 / sd.Eigen.Vals[k]
		}
		u[k] = []float64{s * sd.Eigen.Vecs[k][0], s * sd.Eigen.Vecs[k][1], s * sd.Eigen.Vecs[k][2]}
	}
	return
}
