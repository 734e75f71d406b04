package ops

// NewMulOp creates the operation for output = a * b.
func NewMulOp(a, b NodeID) Op {
	return Op{Kind: Mul, Inputs: [2]NodeID{a, b}}
}

func mulForward(x, y float64) float64 {
	return x * y
}

// mulBackward: grad_a = outputGrad * b, grad_b = outputGrad * a.
func mulBackward(outputGrad, x, y float64) (float64, float64) {
	return outputGrad * y, outputGrad * x
}
