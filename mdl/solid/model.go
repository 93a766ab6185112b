// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements hyperelastic models for solids under large deformations
/*
 *  Each evaluation starts from the total deformation at one integration point:
 *
 *     PK2       | tensor = C = Fᵀ⋅F  |  S, D = 2 ∂S/∂C
 *     Kirchhoff | tensor = b = F⋅Fᵀ  |  τ, spatial tangent
 *
 *  Models are read-only after Init, so they can be shared by all integration
 *  points and evaluated concurrently. Nothing is cached between calls.
 */
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
	GetRho() float64            // returns density
}

// Hyperelastic defines models computed directly from the total deformation
type Hyperelastic interface {
	CalcEnergy(d *Deformation) (float64, error)             // computes the strain energy density
	CalcStress(d *Deformation) (*Response, error)           // computes the stress tensor
	CalcTangent(d *Deformation) (*Response, error)          // computes the constitutive matrix
	CalcStressAndTangent(d *Deformation) (*Response, error) // computes both stress and constitutive matrix
}

// Response holds the results of one evaluation
type Response struct {
	Energy float64     // strain energy density: isochoric + volumetric
	Sig    [][]float64 // [3][3] stress tensor (S or τ): isochoric + volumetric
	SigIso [][]float64 // [3][3] isochoric part of Sig
	D      [][]float64 // [6][6] constitutive matrix in Voigt order

	// advisory flags for callers
	StressComputed  bool
	TangentComputed bool
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
