// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares gradients computed by backpropagation with
// central finite differences.
//
// Example:
//
//	f := func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value {
//	    return xs[0].Mul(xs[1]).Pow(2)
//	}
//	if err := gradcheck.Check(f, []float64{1.5, -2}, gradcheck.Config{}); err != nil {
//	    log.Fatal(err)
//	}
package gradcheck

import "github.com/born-ml/micrograd/internal/gradcheck"

// Common errors.
var (
	ErrNoInputs  = gradcheck.ErrNoInputs
	ErrNonFinite = gradcheck.ErrNonFinite
)

// Func builds a scalar expression over the leaves xs of a graph.
type Func = gradcheck.Func

// Config controls the comparison.
type Config = gradcheck.Config

// Result holds both gradient estimates.
type Result = gradcheck.Result

// Mismatch describes one disagreeing input.
type Mismatch = gradcheck.Mismatch

// MismatchError lists every disagreeing input of a check.
type MismatchError = gradcheck.MismatchError

// Gradients evaluates f at the given point and returns both estimates.
func Gradients(f Func, at []float64, cfg Config) Result {
	return gradcheck.Gradients(f, at, cfg)
}

// Eval returns f at the given point without recording a graph.
func Eval(f Func, at []float64) float64 {
	return gradcheck.Eval(f, at)
}

// Check returns nil when both estimates agree within tolerance.
func Check(f Func, at []float64, cfg Config) error {
	return gradcheck.Check(f, at, cfg)
}
