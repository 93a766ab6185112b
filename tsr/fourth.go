// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

// UnitComp returns the (a,b,c,d) component of the symmetric fourth order unit tensor
//   Iˢ_abcd = ½ (δac δbd + δad δbc)
func UnitComp(a, b, c, d int) float64 {
	return 0.5 * (Kron(a, c)*Kron(b, d) + Kron(a, d)*Kron(b, c))
}

// SymProdComp returns the (a,b,c,d) component of the symmetrised square product of M
//   (M ⊙ M)_abcd = ½ (M_ac M_bd + M_ad M_bc)
func SymProdComp(M [][]float64, a, b, c, d int) float64 {
	return 0.5 * (M[a][c]*M[b][d] + M[a][d]*M[b][c])
}

// DyadComp returns the (a,b,c,d) component of the dyadic product of two second order tensors
//   (A ⊗ B)_abcd = A_ab B_cd
func DyadComp(A, B [][]float64, a, b, c, d int) float64 {
	return A[a][b] * B[c][d]
}

// VecDyadComp returns the (a,b,c,d) component of (u ⊗ u) ⊗ (v ⊗ v)
func VecDyadComp(u, v []float64, a, b, c, d int) float64 {
	return u[a] * u[b] * v[c] * v[d]
}

// MatVecDyadComp returns the (a,b,c,d) component of A ⊗ (v ⊗ v)
func MatVecDyadComp(A [][]float64, v []float64, a, b, c, d int) float64 {
	return A[a][b] * v[c] * v[d]
}

// VecMatDyadComp returns the (a,b,c,d) component of (v ⊗ v) ⊗ A
func VecMatDyadComp(v []float64, A [][]float64, a, b, c, d int) float64 {
	return v[a] * v[b] * A[c][d]
}
