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

// testSeries holds Ogden series used in tests
var testSeries = [][]float64{
	{1, 2},
	{0.5, 1.3},
	{0.63, 0.0012, -0.01, 1.3, 5.0, -2.0},
	{2.0, -0.3, 3.0, -1.5},
}

// strainData computes the strain data of F
func strainData(tst *testing.T, F [][]float64, measure StressMeasure) *StrainData {
	sd, err := ComputeStrainData(NewDeformation(F, measure))
	require.NoError(tst, err)
	return sd
}

func Test_ogden01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ogden01. undeformed state")

	for _, series := range testSeries {
		prm, err := NewParameters(series, 1000)
		require.NoError(tst, err)
		for _, measure := range []StressMeasure{PK2, Kirchhoff} {
			sd := strainData(tst, identity(), measure)
			chk.Float64(tst, "W̄(1)", 1e-17, IsochoricEnergy(prm, sd), 0)
			τ := PrincipalStresses(prm, sd)
			chk.Array(tst, "τ(1)", 1e-17, τ[:], []float64{0, 0, 0})
			chk.Float64(tst, "Σ τ_i", 1e-17, τ[0]+τ[1]+τ[2], 0)
			chk.Deep2(tst, "σ̄(1)", 1e-17, IsochoricStress(sd, τ), tsr.Alloc2())

			// derivatives of principal stresses
			var μ float64
			for p := 0; p < prm.Nterms(); p++ {
				μ += prm.Mu(p)
			}
			dτ := PrincipalStressDerivs(prm, sd)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					if i == j {
						chk.Float64(tst, io.Sf("dτ%d%d", i, j), 1e-15, dτ[i][j], 2*μ/3)
					} else {
						chk.Float64(tst, io.Sf("dτ%d%d", i, j), 1e-15, dτ[i][j], -μ/3)
					}
				}
			}

			// eigenprojection derivatives vanish since D = 0
			for i := 0; i < 3; i++ {
				for _, ab := range tsr.VoigtIdx {
					for _, cd := range tsr.VoigtIdx {
						if measure == PK2 {
							chk.Float64(tst, "dP", 1e-17, EigenProductDerivRight(sd, i, ab[0], ab[1], cd[0], cd[1]), 0)
						} else {
							chk.Float64(tst, "dP", 1e-17, EigenProductDerivLeft(sd, i, ab[0], ab[1], cd[0], cd[1]), 0)
						}
					}
				}
			}
		}
	}
}

func Test_ogden02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ogden02. one term with α = 2 is Neo-Hookean")

	F := [][]float64{{1.3, 0, 0}, {0, 0.9, 0}, {0, 0, 1 / (1.3 * 0.9)}}
	for _, μ := range []float64{0.5, 1, 7.3} {
		prm, err := NewParameters([]float64{μ, 2}, 1000)
		require.NoError(tst, err)
		sd := strainData(tst, F, PK2)
		chk.Float64(tst, "W̄", 1e-14, IsochoricEnergy(prm, sd), μ*(sd.Inv.I1-3)/2)
		λ := []float64{1.3, 0.9, 1 / (1.3 * 0.9)}
		chk.Float64(tst, "W̄(λ)", 1e-14, IsochoricEnergy(prm, sd), μ*(λ[0]*λ[0]+λ[1]*λ[1]+λ[2]*λ[2]-3)/2)
	}
}

func Test_ogden03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ogden03. uniaxial isochoric stretch")

	prm, err := NewParameters([]float64{1, 2}, 1000)
	require.NoError(tst, err)
	d := &Deformation{
		Tensor:  [][]float64{{1.44, 0, 0}, {0, 1 / 1.2, 0}, {0, 0, 1 / 1.2}},
		J:       1,
		Measure: PK2,
	}
	sd, err := ComputeStrainData(d)
	require.NoError(tst, err)
	W := IsochoricEnergy(prm, sd)
	io.Pforan("W̄ = %v\n", W)
	chk.Float64(tst, "W̄", 1e-14, W, 0.5*(1.44+2/1.2-3))

	τ := PrincipalStresses(prm, sd)
	io.Pforan("τ = %v\n", τ)
	if τ[0] <= 0 {
		tst.Errorf("τ0 must be positive (tension). τ0 = %g\n", τ[0])
		return
	}
	if τ[1] != τ[2] {
		tst.Errorf("lateral stresses must be equal. τ1 = %g, τ2 = %g\n", τ[1], τ[2])
		return
	}
	chk.Float64(tst, "Σ τ_i", 1e-15, τ[0]+τ[1]+τ[2], 0)
	chk.Float64(tst, "τ0", 1e-14, τ[0], 1.44-(1.44+2/1.2)/3)

	// the whole model adds nothing at J = 1
	mdl := &IsoOgden{Prm: prm}
	Wt, err := mdl.CalcEnergy(d)
	require.NoError(tst, err)
	chk.Float64(tst, "W", 1e-17, Wt, W)
}

func Test_ogden04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ogden04. stress derivatives")

	F := [][]float64{{1.4, 0, 0}, {0, 0.8, 0}, {0, 0, 1 / (1.4 * 0.8)}}
	for _, series := range testSeries {
		prm, err := NewParameters(series, 1000)
		require.NoError(tst, err)
		sd := strainData(tst, F, PK2)
		dτ := PrincipalStressDerivs(prm, sd)
		λ := sd.Eigen.Vals
		for i := 0; i < 3; i++ {
			var sum float64
			for p := 0; p < prm.Nterms(); p++ {
				μ, α := prm.Mu(p), prm.Alpha(p)
				sum += μ * (math.Pow(λ[0], α) + math.Pow(λ[1], α) + math.Pow(λ[2], α))
			}
			for j := 0; j < 3; j++ {
				var cor float64
				for p := 0; p < prm.Nterms(); p++ {
					μ, α := prm.Mu(p), prm.Alpha(p)
					if i == j {
						cor += μ * math.Pow(λ[i], α) / 3
					} else {
						cor -= μ * (math.Pow(λ[i], α) + math.Pow(λ[j], α)) / 3
					}
				}
				chk.Float64(tst, io.Sf("dτ%d%d", i, j), 1e-14, dτ[i][j], cor+sum/9)
				chk.Float64(tst, io.Sf("dτ%d%d - dτ%d%d", i, j, j, i), 1e-14, dτ[i][j]-dτ[j][i], 0)
			}
		}

		// trace-free stresses in any isochoric state
		τ := PrincipalStresses(prm, sd)
		chk.Float64(tst, "Σ τ_i", 1e-14, τ[0]+τ[1]+τ[2], 0)
	}
}

func Test_ogden05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ogden05. Kirchhoff stress is the push-forward of PK2")

	for _, series := range testSeries {
		prm, err := NewParameters(series, 1000)
		require.NoError(tst, err)
		for _, F := range [][][]float64{
			{{1, 0.3, 0}, {0, 1, 0}, {0, 0, 1}},
			{{1.2, 0.1, 0}, {0, 1 / 1.2, 0}, {0, 0, 1}},
		} {
			S := IsochoricStress(strainData(tst, F, PK2), PrincipalStresses(prm, strainData(tst, F, PK2)))
			τ := IsochoricStress(strainData(tst, F, Kirchhoff), PrincipalStresses(prm, strainData(tst, F, Kirchhoff)))
			FS, FSFt := tsr.Alloc2(), tsr.Alloc2()
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					for k := 0; k < 3; k++ {
						FS[i][j] += F[i][k] * S[k][j]
					}
				}
			}
			tsr.MatMulTr(FSFt, FS, F)
			chk.Deep2(tst, "F⋅S⋅Fᵀ = τ", 1e-12, FSFt, τ)
		}
	}
}
