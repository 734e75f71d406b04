package ops

// NewAddOp creates the operation for output = a + b.
func NewAddOp(a, b NodeID) Op {
	return Op{Kind: Add, Inputs: [2]NodeID{a, b}}
}

func addForward(x, y float64) float64 {
	return x + y
}

// addBackward: the gradient flows unchanged to both operands.
func addBackward(outputGrad float64) (float64, float64) {
	return outputGrad, outputGrad
}
