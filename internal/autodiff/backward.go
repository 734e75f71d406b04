package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Backward computes d(v)/d(n) for every node n reachable from v and adds it
// into n's gradient.
//
// Algorithm:
//  1. Depth-first traversal from v, visiting each node once; a node is
//     appended to the order only after all of its predecessors.
//  2. Seed v's gradient with 1.0.
//  3. Walk the order from v towards the leaves, running each node's rule.
//     By the time a rule runs, every consumer of that node has already
//     contributed, so its gradient is final.
//
// Gradients are accumulated, never overwritten (except the seed). Callers
// reset them with ZeroGrad before a fresh pass.
func (v Value) Backward() {
	g := v.graph()
	g.at(v)

	order := g.topoOrder(v.id)
	g.nodes[v.id].grad = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		if g.nodes[id].op.Kind == ops.Leaf {
			continue
		}
		g.propagate(id)
	}
}

// TopoOrder returns the nodes reachable from v, each once, predecessors
// before the nodes that consume them. v is last.
func (v Value) TopoOrder() []Value {
	g := v.graph()
	g.at(v)

	order := g.topoOrder(v.id)
	out := make([]Value, len(order))
	for i, id := range order {
		out[i] = Value{g: g, id: id, gen: g.nodes[id].gen}
	}
	return out
}

// topoOrder is an iterative post-order depth-first traversal. It visits
// predecessors in operation order, matching the recursive formulation,
// without growing the goroutine stack on deep graphs.
func (g *Graph) topoOrder(root NodeID) []NodeID {
	type frame struct {
		id   NodeID
		next int // index of the next operand to visit
	}

	// Operands always precede their consumer in the arena.
	visited := make([]bool, int(root)+1)
	order := make([]NodeID, 0, 16)
	stack := []frame{{id: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		op := &g.nodes[top.id].op

		if top.next < op.Arity() {
			child := op.Inputs[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}

		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}

// propagate runs the rule of node id, adding its contributions into the
// operands' gradients.
func (g *Graph) propagate(id NodeID) {
	n := &g.nodes[id]
	op := n.op
	a := op.Inputs[0]
	binary := op.Arity() == 2

	x := g.nodes[a].data
	var y float64
	if binary {
		y = g.nodes[op.Inputs[1]].data
	}

	gradX, gradY := op.Backward(n.grad, x, y)
	g.nodes[a].grad += gradX
	if binary {
		g.nodes[op.Inputs[1]].grad += gradY
	}

	if g.cfg.OnPropagate != nil {
		g.cfg.OnPropagate(id, op)
	}
}
