package autodiff

import "fmt"

// StartRecording enables graph construction. A new graph is recording.
func (g *Graph) StartRecording() {
	g.recording = true
}

// StopRecording disables graph construction: operations still compute their
// results but return detached leaves with no predecessors, so nothing behind
// them receives a gradient. Useful for evaluation passes.
func (g *Graph) StopRecording() {
	g.recording = false
}

// IsRecording returns true if operations are linked into the graph.
func (g *Graph) IsRecording() bool {
	return g.recording
}

// Mark is a saved arena length, see Graph.Mark.
type Mark struct {
	n int
}

// Len returns the number of nodes that existed when the mark was taken.
func (m Mark) Len() int {
	return m.n
}

// Mark records the current arena length.
//
// Typical training loop:
//
//	params := model.Parameters() // created first
//	mark := g.Mark()
//	for epoch := range epochs {
//	    loss := forward(...)
//	    nn.ZeroGrad(model)
//	    loss.Backward()
//	    nn.Step(model)
//	    g.Release(mark) // drop this iteration's nodes, keep params
//	}
func (g *Graph) Mark() Mark {
	return Mark{n: len(g.nodes)}
}

// Release truncates the arena back to m. Values created after the mark become
// stale and panic on use; values created before it are unaffected.
func (g *Graph) Release(m Mark) {
	if m.n > len(g.nodes) {
		panic(fmt.Sprintf("autodiff: release to %d past end of graph (%d nodes)", m.n, len(g.nodes)))
	}
	if m.n == len(g.nodes) {
		return
	}

	clear(g.nodes[m.n:])
	g.nodes = g.nodes[:m.n]
	g.gen++
}
