package ops

import "math"

// NewReLUOp creates the operation for output = max(a, 0).
func NewReLUOp(a NodeID) Op {
	return Op{Kind: ReLU, Inputs: [2]NodeID{a}}
}

func reluForward(x float64) float64 {
	return math.Max(x, 0)
}

// reluBackward passes the gradient through only where the input was strictly
// positive. The subgradient at exactly zero is 0.
func reluBackward(outputGrad, x float64) float64 {
	if x > 0 {
		return outputGrad
	}
	return 0
}
