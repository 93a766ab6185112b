// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// EvZero is the smallest squared cross product accepted as a null-space direction of the normalised deviator
const EvZero = 1e-20

// Eigen holds the spectral decomposition of a symmetric 3x3 tensor
type Eigen struct {
	Vals [3]float64  // eigenvalues
	Vecs [][]float64 // [3][3] orthonormal eigenvectors; Vecs[k] corresponds to Vals[k]
}

// EigenSym3 computes eigenvalues and eigenvectors of a symmetric 3x3 tensor in closed form
//
//  Eigenvalues come from the trigonometric solution of the characteristic cubic.
//  Diagonal input keeps its diagonal order; otherwise eigenvalues are returned in
//  descending order. Eigenvectors are computed on the normalised deviator
//  b = (a - q⋅I)/p, whose eigenvalues are O(1) however close those of a are.
//  The most isolated eigenvalue gets its eigenvector from the null space of
//  (b - β⋅I); the remaining pair is resolved by a 2x2 rotation in the orthogonal
//  complement, which stays well defined when the pair coincides.
//
//  Only the symmetric part of a is used.
func EigenSym3(a [][]float64) (e *Eigen, err error) {

	// check input
	if len(a) != 3 {
		return nil, chk.Err("EigenSym3 requires a 3x3 tensor; len(a)=%d is invalid", len(a))
	}
	for i := 0; i < 3; i++ {
		if len(a[i]) != 3 {
			return nil, chk.Err("EigenSym3 requires a 3x3 tensor; len(a[%d])=%d is invalid", i, len(a[i]))
		}
		for j := 0; j < 3; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return nil, chk.Err("EigenSym3: component a[%d][%d]=%g is not finite", i, j, a[i][j])
			}
		}
	}

	// symmetric components
	a00, a11, a22 := a[0][0], a[1][1], a[2][2]
	a01 := (a[0][1] + a[1][0]) / 2.0
	a12 := (a[1][2] + a[2][1]) / 2.0
	a02 := (a[0][2] + a[2][0]) / 2.0

	// diagonal tensor
	e = &Eigen{Vecs: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	p1 := a01*a01 + a02*a02 + a12*a12
	if p1 == 0 {
		e.Vals = [3]float64{a00, a11, a22}
		return
	}

	// normalised deviator: b = (a - q⋅I)/p has eigenvalues β = 2cos(φ + 2πk/3)
	q := (a00 + a11 + a22) / 3.0
	p2 := (a00-q)*(a00-q) + (a11-q)*(a11-q) + (a22-q)*(a22-q) + 2.0*p1
	p := math.Sqrt(p2 / 6.0)
	b00, b11, b22 := (a00-q)/p, (a11-q)/p, (a22-q)/p
	b01, b12, b02 := a01/p, a12/p, a02/p
	r := (b00*(b11*b22-b12*b12) - b01*(b01*b22-b12*b02) + b02*(b01*b12-b11*b02)) / 2.0
	if r < -1 {
		r = -1
	}
	if r > 1 {
		r = 1
	}
	φ := math.Acos(r) / 3.0
	β0 := 2.0 * math.Cos(φ)
	β2 := 2.0 * math.Cos(φ+2.0*math.Pi/3.0)
	β1 := -β0 - β2

	// rows of b
	rows := [3]r3.Vec{
		{X: b00, Y: b01, Z: b02},
		{X: b01, Y: b11, Z: b12},
		{X: b02, Y: b12, Z: b22},
	}

	// isolated eigenvalue; its gap to the others is at least 3/2
	largestIsolated := β0-β1 >= β1-β2
	βiso := β2
	if largestIsolated {
		βiso = β0
	}
	viso, ok := nullDirection(rows, βiso)
	if !ok {
		return nil, chk.Err("EigenSym3 cannot find the eigenvector of the isolated eigenvalue %g", q+p*βiso)
	}

	// remaining pair
	u, w := complement(viso)
	bu, bw := mulVec(rows, u), mulVec(rows, w)
	m00, m01, m11 := r3.Dot(u, bu), r3.Dot(u, bw), r3.Dot(w, bw)
	θ := 0.5 * math.Atan2(2.0*m01, m00-m11)
	c, s := math.Cos(θ), math.Sin(θ)
	x := r3.Add(r3.Scale(c, u), r3.Scale(s, w))
	y := r3.Add(r3.Scale(-s, u), r3.Scale(c, w))
	μx := m00*c*c + 2.0*m01*s*c + m11*s*s
	μy := m00*s*s - 2.0*m01*s*c + m11*c*c
	if μx < μy {
		x, y = y, x
		μx, μy = μy, μx
	}

	// results
	λiso, λx, λy := q+p*βiso, q+p*μx, q+p*μy
	if largestIsolated {
		e.Vals = [3]float64{λiso, λx, λy}
		e.Vecs = [][]float64{vec(viso), vec(x), vec(y)}
		return
	}
	e.Vals = [3]float64{λx, λy, λiso}
	e.Vecs = [][]float64{vec(x), vec(y), vec(viso)}
	return
}

// SpectralCompose recreates a tensor from its spectral decomposition
//   m = Σ_k λ_k v_k ⊗ v_k
func SpectralCompose(m [][]float64, λ [3]float64, vecs [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = λ[0]*vecs[0][i]*vecs[0][j] + λ[1]*vecs[1][i]*vecs[1][j] + λ[2]*vecs[2][i]*vecs[2][j]
		}
	}
}

// nullDirection returns the unit vector spanning the null space of (b - β⋅I) for a simple β
//  b is the normalised deviator, so the threshold does not depend on the size of a
func nullDirection(rows [3]r3.Vec, β float64) (v r3.Vec, ok bool) {
	r0 := r3.Sub(rows[0], r3.Vec{X: β})
	r1 := r3.Sub(rows[1], r3.Vec{Y: β})
	r2 := r3.Sub(rows[2], r3.Vec{Z: β})
	best, nmax := r3.Vec{}, 0.0
	for _, cand := range []r3.Vec{r3.Cross(r0, r1), r3.Cross(r0, r2), r3.Cross(r1, r2)} {
		if n := r3.Norm2(cand); n > nmax {
			best, nmax = cand, n
		}
	}
	if nmax <= EvZero {
		return r3.Vec{}, false
	}
	return r3.Scale(1.0/math.Sqrt(nmax), best), true
}

// complement returns two unit vectors u, w such that {v, u, w} is a right-handed orthonormal basis
func complement(v r3.Vec) (u, w r3.Vec) {
	if math.Abs(v.X) > math.Abs(v.Y) {
		inv := 1.0 / math.Hypot(v.X, v.Z)
		u = r3.Vec{X: -v.Z * inv, Z: v.X * inv}
	} else {
		inv := 1.0 / math.Hypot(v.Y, v.Z)
		u = r3.Vec{Y: v.Z * inv, Z: -v.Y * inv}
	}
	w = r3.Cross(v, u)
	return
}

func mulVec(rows [3]r3.Vec, v r3.Vec) r3.Vec {
	return r3.Vec{X: r3.Dot(rows[0], v), Y: r3.Dot(rows[1], v), Z: r3.Dot(rows[2], v)}
}

func vec(v r3.Vec) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
