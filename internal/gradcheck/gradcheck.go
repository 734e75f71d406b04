// Package gradcheck verifies gradients computed by Backward against central
// finite differences.
//
// Example:
//
//	f := func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value {
//	    return xs[0].Mul(xs[1]).ReLU()
//	}
//	if err := gradcheck.Check(f, []float64{1.5, 2}, gradcheck.Config{}); err != nil {
//	    log.Fatal(err)
//	}
//
// Points where the function is not differentiable (relu at 0) produce
// spurious mismatches and should be avoided.
package gradcheck

import (
	"fmt"
	"math"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/parallel"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// Func builds a scalar expression over the leaves xs of graph g.
type Func func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value

// Config controls the comparison.
type Config struct {
	Step     float64         // Finite-difference step (default: 1e-6)
	AbsTol   float64         // Absolute tolerance (default: 1e-4)
	RelTol   float64         // Relative tolerance (default: 1e-4)
	Parallel parallel.Config // Fan-out of numeric evaluations (default: parallel.DefaultConfig())
}

func (c Config) withDefaults() Config {
	if c.Step == 0 {
		c.Step = 1e-6
	}
	if c.AbsTol == 0 {
		c.AbsTol = 1e-4
	}
	if c.RelTol == 0 {
		c.RelTol = 1e-4
	}
	if c.Parallel.Workers == 0 {
		c.Parallel = parallel.DefaultConfig()
	}
	return c
}

// Result holds both gradient estimates, indexed like the inputs.
type Result struct {
	Value    float64
	Analytic []float64
	Numeric  []float64
}

// Gradients evaluates f at the given point and returns its analytic gradient
// (one Backward call) alongside the numeric one.
//
// Each numeric evaluation builds its own graph, so evaluations run
// concurrently according to cfg.Parallel.
func Gradients(f Func, at []float64, cfg Config) Result {
	cfg = cfg.withDefaults()

	g := autodiff.NewGraph()
	xs := g.Leaves(at)
	out := f(g, xs)
	out.Backward()

	res := Result{
		Value:    out.Data(),
		Analytic: make([]float64, len(xs)),
	}
	for i, x := range xs {
		res.Analytic[i] = x.Grad()
	}

	settings := &fd.Settings{Formula: fd.Central, Step: cfg.Step}
	res.Numeric = parallel.Map(len(at), cfg.Parallel, func(i int) float64 {
		point := append([]float64(nil), at...)
		return fd.Derivative(func(t float64) float64 {
			point[i] = t
			return Eval(f, point)
		}, at[i], settings)
	})

	return res
}

// Eval evaluates f at the given point on a fresh graph without recording.
func Eval(f Func, at []float64) float64 {
	g := autodiff.NewGraph()
	xs := g.Leaves(at)
	g.StopRecording()
	return f(g, xs).Data()
}

// Check compares analytic and numeric gradients of f at the given point.
//
// Returns an error wrapping ErrNoInputs for an empty point, ErrNonFinite when
// an analytic gradient is NaN or infinite, and a *MismatchError listing every
// input whose estimates disagree beyond the tolerances.
func Check(f Func, at []float64, cfg Config) error {
	if len(at) == 0 {
		return ErrNoInputs
	}
	cfg = cfg.withDefaults()
	res := Gradients(f, at, cfg)

	var mismatches []Mismatch
	for i, a := range res.Analytic {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("input %d: %w (%v)", i, ErrNonFinite, a)
		}
		n := res.Numeric[i]
		if !scalar.EqualWithinAbsOrRel(a, n, cfg.AbsTol, cfg.RelTol) {
			mismatches = append(mismatches, Mismatch{Index: i, Analytic: a, Numeric: n})
		}
	}

	if len(mismatches) > 0 {
		return &MismatchError{Mismatches: mismatches}
	}
	return nil
}
