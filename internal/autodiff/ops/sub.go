package ops

// NewSubOp creates the operation for output = a - b.
func NewSubOp(a, b NodeID) Op {
	return Op{Kind: Sub, Inputs: [2]NodeID{a, b}}
}

func subForward(x, y float64) float64 {
	return x - y
}

// subBackward: grad_a = outputGrad, grad_b = -outputGrad.
func subBackward(outputGrad float64) (float64, float64) {
	return outputGrad, -outputGrad
}
