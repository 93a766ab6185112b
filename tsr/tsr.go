// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements index-based algebra for second and fourth order tensors in 3D
//
//  Fourth order tensors are never stored. Instead, each function returns one
//  component (a,b,c,d) of a named construction, so that callers can assemble
//  reduced (Voigt) matrices entry by entry.
//
//  Voigt order: 00, 11, 22, 01, 12, 02
package tsr

import "github.com/cpmech/gosl/utl"

// VoigtIdx maps Voigt indices to tensor index pairs
var VoigtIdx = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {0, 2}}

// Ident is the 3x3 identity. Read-only
var Ident = [][]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Kron returns the Kronecker delta δij
func Kron(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// Alloc2 allocates a 3x3 second order tensor
func Alloc2() [][]float64 {
	return utl.Alloc(3, 3)
}

// Ten2Voigt converts a symmetric 3x3 tensor to its 6 Voigt components
func Ten2Voigt(v []float64, T [][]float64) {
	for i, ij := range VoigtIdx {
		v[i] = T[ij[0]][ij[1]]
	}
}

// Voigt2Ten converts 6 Voigt components to a symmetric 3x3 tensor
func Voigt2Ten(T [][]float64, v []float64) {
	for i, ij := range VoigtIdx {
		T[ij[0]][ij[1]] = v[i]
		T[ij[1]][ij[0]] = v[i]
	}
}

// Add computes c := α⋅a + β⋅b for 3x3 tensors; c may alias a or b
func Add(c [][]float64, α float64, a [][]float64, β float64, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = α*a[i][j] + β*b[i][j]
		}
	}
}

// Det computes the determinant of a 3x3 tensor
func Det(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// MatTrMul computes c := aᵀ⋅b (3x3)
func MatTrMul(c, a, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = 0
			for k := 0; k < 3; k++ {
				c[i][j] += a[k][i] * b[k][j]
			}
		}
	}
}

// MatMulTr computes c := a⋅bᵀ (3x3)
func MatMulTr(c, a, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = 0
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[j][k]
			}
		}
	}
}
