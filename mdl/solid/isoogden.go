// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/hyperfem/tsr"
)

// IsoOgden implements the Ogden model with isochoric/volumetric split
//
//   W = W̄(λ̄_0, λ̄_1, λ̄_2) + U(J)
//
//  The Neo-Hookean model is the one-term series with α = 2.
type IsoOgden struct {
	Prm  *Parameters // series and bulk modulus
	Rho  float64     // density
	neo  bool        // Neo-Hookean parameters: mu and K
	name string      // model name
}

// add model to factory
func init() {
	allocators["iso-ogden"] = func() Model { return &IsoOgden{name: "iso-ogden"} }
	allocators["iso-neohooke"] = func() Model { return &IsoOgden{name: "iso-neohooke", neo: true} }
}

// GetRho returns density
func (o *IsoOgden) GetRho() float64 {
	return o.Rho
}

// Init initialises model
func (o *IsoOgden) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if p.N == "rho" {
			o.Rho = p.V
		}
	}
	if o.neo {
		var mu, K float64
		var hasMu, hasK bool
		for _, p := range prms {
			switch p.N {
			case "mu":
				mu, hasMu = p.V, true
			case "K":
				K, hasK = p.V, true
			}
		}
		if !hasMu || !hasK {
			return prmErr("%s requires mu and K", o.name)
		}
		o.Prm, err = NewParameters([]float64{mu, 2}, K)
		return
	}
	o.Prm, err = ParametersFromPrms(prms)
	return
}

// GetPrms gets (an example) of parameters
func (o IsoOgden) GetPrms() dbf.Params {
	if o.neo {
		return []*dbf.P{
			&dbf.P{N: "mu", V: 1},
			&dbf.P{N: "K", V: 1000},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "mu1", V: 0.63},
		&dbf.P{N: "mu2", V: 0.0012},
		&dbf.P{N: "mu3", V: -0.01},
		&dbf.P{N: "alp1", V: 1.3},
		&dbf.P{N: "alp2", V: 5.0},
		&dbf.P{N: "alp3", V: -2.0},
		&dbf.P{N: "K", V: 1000},
	}
}

// CalcEnergy computes the strain energy density
func (o *IsoOgden) CalcEnergy(d *Deformation) (W float64, err error) {
	sd, err := o.strain(d)
	if err != nil {
		return
	}
	U, err := VolumetricEnergy(o.Prm.Bulk(), sd.Inv.J)
	if err != nil {
		return
	}
	return IsochoricEnergy(o.Prm, sd) + U, nil
}

// CalcStress computes the stress tensor
func (o *IsoOgden) CalcStress(d *Deformation) (res *Response, err error) {
	return o.calc(d, true, false)
}

// CalcTangent computes the constitutive matrix
func (o *IsoOgden) CalcTangent(d *Deformation) (res *Response, err error) {
	return o.calc(d, false, true)
}

// CalcStressAndTangent computes both the stress tensor and the constitutive matrix
func (o *IsoOgden) CalcStressAndTangent(d *Deformation) (res *Response, err error) {
	return o.calc(d, true, true)
}

// strain computes the strain data after checking that the model is initialised
func (o *IsoOgden) strain(d *Deformation) (sd *StrainData, err error) {
	if o.Prm == nil {
		return nil, chk.Err("model %q is not initialised", o.name)
	}
	return ComputeStrainData(d)
}

// calc runs one evaluation
func (o *IsoOgden) calc(d *Deformation, stress, tangent bool) (res *Response, err error) {

	// strain data and volumetric factors
	sd, err := o.strain(d)
	if err != nil {
		return
	}
	f, err := VolumetricFactors(o.Prm.Bulk(), sd.Inv.J)
	if err != nil {
		return
	}
	U, err := VolumetricEnergy(o.Prm.Bulk(), sd.Inv.J)
	if err != nil {
		return
	}
	res = &Response{Energy: IsochoricEnergy(o.Prm, sd) + U}

	// stress
	if stress {
		res.SigIso = IsochoricStress(sd, PrincipalStresses(o.Prm, sd))
		res.Sig = tsr.Alloc2()
		tsr.Add(res.Sig, 1, res.SigIso, 1, VolumetricStress(sd, f))
		res.StressComputed = true
	}

	// tangent
	if tangent {
		iso := NewIsoTangent(o.Prm, sd)
		res.D = make([][]float64, 6)
		for i := 0; i < 6; i++ {
			res.D[i] = make([]float64, 6)
			a, b := tsr.VoigtIdx[i][0], tsr.VoigtIdx[i][1]
			for j := 0; j < 6; j++ {
				c, e := tsr.VoigtIdx[j][0], tsr.VoigtIdx[j][1]
				res.D[i][j] = iso.Comp(a, b, c, e) + VolumetricTangentComp(sd, f, a, b, c, e)
			}
		}
		res.TangentComputed = true
	}
	return
}
