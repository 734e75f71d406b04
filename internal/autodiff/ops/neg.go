package ops

// NewNegOp creates the operation for output = -a.
func NewNegOp(a NodeID) Op {
	return Op{Kind: Neg, Inputs: [2]NodeID{a}}
}

func negForward(x float64) float64 {
	return -x
}

func negBackward(outputGrad float64) float64 {
	return -outputGrad
}
