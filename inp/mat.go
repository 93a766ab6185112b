// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of materials data
package inp

import (
	"fmt"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperfem/mdl/solid"
	"gopkg.in/yaml.v3"
)

// Prm holds one named parameter
type Prm struct {
	N string  `yaml:"n"` // name
	V float64 `yaml:"v"` // value
}

// Material holds material data
type Material struct {

	// input
	Name  string `yaml:"name"`  // name of material
	Model string `yaml:"model"` // name of model; e.g. "iso-ogden", "iso-neohooke"
	Extra string `yaml:"extra"` // extra information about this material
	Prms  []Prm  `yaml:"prms"`  // prms holds all model parameters for this material

	// derived
	Solid solid.Hyperelastic `yaml:"-"` // pointer to actual solid model
	Rho   float64            `yaml:"-"` // density
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `yaml:"materials"` // all materials
}

// ReadMat reads all materials data from a YAML file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	return ParseMat(b)
}

// readFile reads a file with io.ReadFile and returns its panic as an error
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read materials file %q:\n%v", fn, r)
		}
	}()
	return io.ReadFile(fn), nil
}

// ParseMat decodes materials data and allocates/initialises all models
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = yaml.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials data:\n%v", err)
	}

	// alloc/init
	names := make(map[string]bool)
	for i, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("material # %d has no name", i)
		}
		if names[m.Name] {
			return nil, chk.Err("material name %q is repeated", m.Name)
		}
		names[m.Name] = true
		mdl, e := solid.New(m.Model)
		if e != nil {
			return nil, chk.Err("material %q: %v", m.Name, e)
		}
		err = mdl.Init(m.Params())
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		hyp, ok := mdl.(solid.Hyperelastic)
		if !ok {
			return nil, chk.Err("material %q: model %q is not hyperelastic", m.Name, m.Model)
		}
		m.Solid = hyp
		m.Rho = mdl.GetRho()
	}
	return
}

// Params returns the parameters of this material
func (o *Material) Params() (prms dbf.Params) {
	prms = make([]*dbf.P, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = &dbf.P{N: p.N, V: p.V}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("  - name: %q\n    model: %q\n", o.Name, o.Model)
	if o.Extra != "" {
		l += io.Sf("    extra: %q\n", o.Extra)
	}
	l += "    prms:\n"
	for _, p := range o.Prms {
		l += io.Sf("      - {n: %s, v: %g}\n", p.N, p.V)
	}
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "materials:\n"
	for _, m := range o {
		l += m.String()
	}
	return l
}
