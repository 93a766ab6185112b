// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
)

// Parameters holds the coefficients of an Ogden series and the bulk modulus
//
//   series = {μ_1, μ_2, ..., μ_N, α_1, α_2, ..., α_N}
//
//  Parameters is immutable after construction and safe for concurrent reads.
type Parameters struct {
	series []float64 // moduli then exponents
	bulk   float64   // K
}

// NewParameters validates and copies a flat series of moduli and exponents
func NewParameters(series []float64, bulk float64) (o *Parameters, err error) {
	n := len(series)
	if n == 0 || n%2 != 0 {
		return nil, prmErr("series must hold N moduli followed by N exponents; len=%d is invalid", n)
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, prmErr("series[%d]=%g is not finite", i, v)
		}
	}
	for p := n / 2; p < n; p++ {
		if series[p] == 0 {
			return nil, prmErr("exponent α_%d must be non-zero", p-n/2+1)
		}
	}
	if !(bulk >= 0) || math.IsInf(bulk, 0) {
		return nil, prmErr("bulk modulus K=%g must be finite and non-negative", bulk)
	}
	o = &Parameters{series: make([]float64, n), bulk: bulk}
	copy(o.series, series)
	return
}

// ParametersFromPrms collects mu1, mu2, ..., alp1, alp2, ... and K
func ParametersFromPrms(prms dbf.Params) (o *Parameters, err error) {
	mus := make(map[int]float64)
	alps := make(map[int]float64)
	bulk, hasBulk := 0.0, false
	for _, p := range prms {
		switch {
		case p.N == "K":
			bulk, hasBulk = p.V, true
		case strings.HasPrefix(p.N, "mu"):
			idx, e := strconv.Atoi(p.N[2:])
			if e != nil || idx < 1 {
				return nil, prmErr("parameter name %q is invalid; use mu1, mu2, ...", p.N)
			}
			mus[idx] = p.V
		case strings.HasPrefix(p.N, "alp"):
			idx, e := strconv.Atoi(p.N[3:])
			if e != nil || idx < 1 {
				return nil, prmErr("parameter name %q is invalid; use alp1, alp2, ...", p.N)
			}
			alps[idx] = p.V
		}
	}
	if !hasBulk {
		return nil, prmErr("bulk modulus K is missing")
	}
	if len(mus) != len(alps) {
		return nil, prmErr("number of moduli (%d) and exponents (%d) must match", len(mus), len(alps))
	}
	nterms := len(mus)
	series := make([]float64, 2*nterms)
	for p := 1; p <= nterms; p++ {
		μ, ok := mus[p]
		if !ok {
			return nil, prmErr("mu%d is missing", p)
		}
		α, ok := alps[p]
		if !ok {
			return nil, prmErr("alp%d is missing", p)
		}
		series[p-1] = μ
		series[nterms+p-1] = α
	}
	return NewParameters(series, bulk)
}

// Nterms returns the number of terms in the series
func (o *Parameters) Nterms() int { return len(o.series) / 2 }

// Mu returns the modulus of term p
func (o *Parameters) Mu(p int) float64 { return o.series[p] }

// Alpha returns the exponent of term p
func (o *Parameters) Alpha(p int) float64 { return o.series[p+len(o.series)/2] }

// Bulk returns the bulk modulus
func (o *Parameters) Bulk() float64 { return o.bulk }

// Series returns a copy of the flat series
func (o *Parameters) Series() []float64 {
	res := make([]float64, len(o.series))
	copy(res, o.series)
	return res
}

// Shear returns the initial shear modulus ½ Σ_p μ_p α_p
func (o *Parameters) Shear() (G float64) {
	for p := 0; p < o.Nterms(); p++ {
		G += o.Mu(p) * o.Alpha(p)
	}
	return G / 2.0
}
