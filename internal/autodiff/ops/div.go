package ops

// NewDivOp creates the operation for output = a / b.
func NewDivOp(a, b NodeID) Op {
	return Op{Kind: Div, Inputs: [2]NodeID{a, b}}
}

func divForward(x, y float64) float64 {
	return x / y
}

// divBackward: grad_a = outputGrad / b, grad_b = -outputGrad * a / b².
// Division by zero yields ±Inf or NaN, which propagates unchecked.
func divBackward(outputGrad, x, y float64) (float64, float64) {
	return outputGrad / y, -(outputGrad * x / (y * y))
}
