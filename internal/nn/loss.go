package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MSE computes mean((predictions - targets)²).
//
// Panics if the slices differ in length or are empty.
func MSE(predictions, targets []autodiff.Value) autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: MSE: %d predictions, %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: MSE: no predictions")
	}

	terms := make([]autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = p.Sub(targets[i]).Pow(2)
	}
	return autodiff.Sum(terms).DivScalar(float64(len(terms)))
}

// HalfSquaredError computes 0.5 * (prediction - target)².
func HalfSquaredError(prediction, target autodiff.Value) autodiff.Value {
	return autodiff.ScalarMul(0.5, prediction.Sub(target).Pow(2))
}
