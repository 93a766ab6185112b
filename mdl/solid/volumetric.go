// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"fmt"
	"math"

	"github.com/cpmech/hyperfem/tsr"
)

// volumetric part
//
//   U(J)       = (K/2) ln(J)²
//   dU/dJ      = K ln(J) / J        (Alpha4)
//   d²U/dJ²    = K (1 - ln(J)) / J² (Beta4)

// Factors holds the J-derivatives of the volumetric energy
type Factors struct {
	Alpha4 float64 // dU/dJ
	Beta4  float64 // d²U/dJ²
}

// VolumetricEnergy computes U(J) = (K/2) ln(J)²
func VolumetricEnergy(K, J float64) (U float64, err error) {
	if !(J > 0) {
		return 0, fmt.Errorf("%w: J=%g must be positive", ErrInvalidJacobian, J)
	}
	lnJ := math.Log(J)
	return K * 0.5 * lnJ * lnJ, nil
}

// VolumetricFactors computes Alpha4 = dU/dJ and Beta4 = d²U/dJ²
func VolumetricFactors(K, J float64) (f Factors, err error) {
	if !(J > 0) {
		return f, fmt.Errorf("%w: J=%g must be positive", ErrInvalidJacobian, J)
	}
	lnJ := math.Log(J)
	f.Alpha4 = K * lnJ / J
	f.Beta4 = K * (1.0 - lnJ) / (J * J)
	return
}

// JDeriv computes ∂J/∂C = ½ J C⁻¹ (PK2) or its push-forward ½ J 1 (Kirchhoff)
func JDeriv(sd *StrainData) (dJ [][]float64) {
	dJ = tsr.Alloc2()
	M := jMetric(sd)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dJ[i][j] = 0.5 * sd.Inv.J * M[i][j]
		}
	}
	return
}

// JDeriv2Comp computes the (a,b,c,d) component of ∂²J/∂C∂C
//   PK2:       J (¼ C⁻¹⊗C⁻¹ - ½ C⁻¹⊙C⁻¹)
//   Kirchhoff: J (¼ 1⊗1 - ½ Iˢ)
func JDeriv2Comp(sd *StrainData, a, b, c, d int) float64 {
	J := sd.Inv.J
	if sd.Measure == Kirchhoff {
		return J * (0.25*tsr.DyadComp(tsr.Ident, tsr.Ident, a, b, c, d) - 0.5*tsr.UnitComp(a, b, c, d))
	}
	Ci := sd.Inverse
	return J * (0.25*tsr.DyadComp(Ci, Ci, a, b, c, d) - 0.5*tsr.SymProdComp(Ci, a, b, c, d))
}

// JDerivSqComp computes the (a,b,c,d) component of ∂J/∂C ⊗ ∂J/∂C = ¼ J² C⁻¹⊗C⁻¹ (or 1⊗1)
func JDerivSqComp(sd *StrainData, a, b, c, d int) float64 {
	J := sd.Inv.J
	M := jMetric(sd)
	return 0.25 * J * J * tsr.DyadComp(M, M, a, b, c, d)
}

// VolumetricStress computes 2 Alpha4 ∂J/∂C
func VolumetricStress(sd *StrainData, f Factors) (σ [][]float64) {
	σ = JDeriv(sd)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] *= 2.0 * f.Alpha4
		}
	}
	return
}

// VolumetricTangentComp computes the (a,b,c,d) component of the volumetric tangent
//   4 (Alpha4 ∂²J/∂C∂C + Beta4 ∂J/∂C ⊗ ∂J/∂C)
func VolumetricTangentComp(sd *StrainData, f Factors, a, b, c, d int) float64 {
	res := f.Alpha4 * JDeriv2Comp(sd, a, b, c, d)
	res += f.Beta4 * JDerivSqComp(sd, a, b, c, d)
	return 4.0 * res
}

// jMetric returns C⁻¹ for PK2 or 1 for Kirchhoff
func jMetric(sd *StrainData) [][]float64 {
	if sd.Measure == Kirchhoff {
		return tsr.Ident
	}
	return sd.Inverse
}
