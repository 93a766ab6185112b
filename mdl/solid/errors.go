// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"fmt"
)

// Errors returned by the constitutive evaluation. Callers should match them with errors.Is;
// none of them can be recovered by retrying with the same input.
var (
	// ErrDegenerateStrain indicates a strain tensor whose spectral decomposition failed
	// or has non-positive eigenvalues
	ErrDegenerateStrain = errors.New("solid: degenerate strain tensor")

	// ErrInvalidJacobian indicates J = det(F) ≤ 0
	ErrInvalidJacobian = errors.New("solid: invalid jacobian")

	// ErrInvalidMaterialParameters indicates a malformed set of material parameters
	ErrInvalidMaterialParameters = errors.New("solid: invalid material parameters")
)

// pointErr wraps err with the check that failed and the caller's integration point
func pointErr(err error, d *Deformation, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (eid=%d, ipid=%d)", err, fmt.Sprintf(format, args...), d.Eid, d.Ipid)
}

// prmErr wraps ErrInvalidMaterialParameters
func prmErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidMaterialParameters, fmt.Sprintf(format, args...))
}
