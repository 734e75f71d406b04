// Package ops defines the operation variant recorded on every non-leaf node
// of a scalar computation graph, together with its forward and gradient rules.
//
// Each node stores one Op: a Kind tag, the handles of its operands and, for
// Pow, the constant exponent. The backward engine dispatches on the tag:
//   - Add: d(x+y)/dx = 1, d(x+y)/dy = 1
//   - Sub: d(x-y)/dx = 1, d(x-y)/dy = -1
//   - Mul: d(x*y)/dx = y, d(x*y)/dy = x
//   - Div: d(x/y)/dx = 1/y, d(x/y)/dy = -x/y²
//   - Neg: d(-x)/dx = -1
//   - Pow: d(x^p)/dx = p*x^(p-1)
//   - ReLU: d(max(x,0))/dx = 1 if x > 0, else 0
//
// Rules are pure functions of the incoming gradient and the operand data, so
// they can be exercised without building a graph.
package ops

import "fmt"

// NodeID is the index of a node in a graph arena.
type NodeID int32

// Kind tags the operation that produced a node.
type Kind uint8

// Operation kinds. Leaf marks a node created directly from a scalar.
const (
	Leaf Kind = iota
	Add
	Sub
	Mul
	Div
	Neg
	Pow
	ReLU
)

var kindNames = [...]string{
	Leaf: "leaf",
	Add:  "+",
	Sub:  "-",
	Mul:  "*",
	Div:  "/",
	Neg:  "neg",
	Pow:  "pow",
	ReLU: "relu",
}

// String returns the short symbol of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of operands consumed by the kind.
func (k Kind) Arity() int {
	switch k {
	case Add, Sub, Mul, Div:
		return 2
	case Neg, Pow, ReLU:
		return 1
	default:
		return 0
	}
}

// Op is the tagged operation stored on a node.
//
// Inputs holds the operand handles in operation order (left, right); only the
// first Arity() entries are meaningful. Exponent is used by Pow only.
type Op struct {
	Kind     Kind
	Inputs   [2]NodeID
	Exponent float64
}

// Arity returns the number of operands of the operation.
func (op Op) Arity() int {
	return op.Kind.Arity()
}

// Operands returns the operand handles, in order.
func (op Op) Operands() []NodeID {
	return op.Inputs[:op.Arity()]
}

// Forward computes the result of the operation from its operand data.
// y is ignored by unary operations.
func (op Op) Forward(x, y float64) float64 {
	switch op.Kind {
	case Add:
		return addForward(x, y)
	case Sub:
		return subForward(x, y)
	case Mul:
		return mulForward(x, y)
	case Div:
		return divForward(x, y)
	case Neg:
		return negForward(x)
	case Pow:
		return powForward(x, op.Exponent)
	case ReLU:
		return reluForward(x)
	default:
		panic(fmt.Sprintf("ops: forward on %s", op.Kind))
	}
}

// Backward returns the contributions to add into the operands' gradients,
// given the result's gradient outputGrad and the operand data x and y.
// gradY is always zero for unary operations; a leaf contributes nothing.
func (op Op) Backward(outputGrad, x, y float64) (gradX, gradY float64) {
	switch op.Kind {
	case Add:
		return addBackward(outputGrad)
	case Sub:
		return subBackward(outputGrad)
	case Mul:
		return mulBackward(outputGrad, x, y)
	case Div:
		return divBackward(outputGrad, x, y)
	case Neg:
		return negBackward(outputGrad), 0
	case Pow:
		return powBackward(outputGrad, x, op.Exponent), 0
	case ReLU:
		return reluBackward(outputGrad, x), 0
	default:
		return 0, 0
	}
}

// String renders the operation for debugging, e.g. "pow(#3, 2)".
func (op Op) String() string {
	switch op.Arity() {
	case 2:
		return fmt.Sprintf("%s(#%d, #%d)", op.Kind, op.Inputs[0], op.Inputs[1])
	case 1:
		if op.Kind == Pow {
			return fmt.Sprintf("pow(#%d, %g)", op.Inputs[0], op.Exponent)
		}
		return fmt.Sprintf("%s(#%d)", op.Kind, op.Inputs[0])
	default:
		return op.Kind.String()
	}
}
