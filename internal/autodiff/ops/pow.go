package ops

import "math"

// NewPowOp creates the operation for output = a^exponent.
// The exponent is a constant and never receives a gradient.
func NewPowOp(a NodeID, exponent float64) Op {
	return Op{Kind: Pow, Inputs: [2]NodeID{a}, Exponent: exponent}
}

func powForward(x, exponent float64) float64 {
	return math.Pow(x, exponent)
}

// powBackward: grad_a = p * a^(p-1) * outputGrad.
func powBackward(outputGrad, x, exponent float64) float64 {
	return exponent * math.Pow(x, exponent-1) * outputGrad
}
