package nn_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializer_Deterministic(t *testing.T) {
	a := nn.NewInitializer(nn.DefaultInitConfig())
	b := nn.NewInitializer(nn.DefaultInitConfig())
	c := nn.NewInitializer(nn.InitConfig{Seed: 7})

	var differs bool
	for range 100 {
		x, y, z := a.Next(), b.Next(), c.Next()
		assert.Equal(t, x, y)
		assert.GreaterOrEqual(t, x, -1.0)
		assert.LessOrEqual(t, x, 1.0)
		if x != z {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should give different sequences")
}

func TestInitializer_Range(t *testing.T) {
	in := nn.NewInitializer(nn.InitConfig{Seed: 1, Low: 2, High: 3})
	for range 50 {
		x := in.Next()
		assert.GreaterOrEqual(t, x, 2.0)
		assert.LessOrEqual(t, x, 3.0)
	}

	assert.Panics(t, func() { nn.NewInitializer(nn.InitConfig{Low: 1, High: -1}) })
}

func TestNeuron_Forward(t *testing.T) {
	g := autodiff.NewGraph()
	n := nn.NewNeuron(g, 3, true, nn.NewInitializer(nn.DefaultInitConfig()))

	params := n.Parameters()
	require.Len(t, params, 4)
	for _, p := range params {
		assert.True(t, p.IsParam())
	}
	assert.Zero(t, params[3].Data(), "bias starts at 0")

	xs := []float64{2, 3, -1}
	want := params[3].Data()
	for i, x := range xs {
		want += params[i].Data() * x
	}
	want = math.Max(want, 0)

	out := n.Forward(g.Leaves(xs))
	assert.InDelta(t, want, out.Data(), 1e-12)
	assert.Equal(t, "ReLUNeuron(3)", n.String())
	assert.Equal(t, 3, n.NumInputs())
	assert.True(t, n.Nonlinear())
}

func TestNeuron_Linear(t *testing.T) {
	g := autodiff.NewGraph()
	n := nn.NewNeuron(g, 2, false, nn.NewInitializer(nn.DefaultInitConfig()))
	w := n.Parameters()

	out := n.Forward(g.Leaves([]float64{-10, -10}))
	want := w[0].Data()*-10 + w[1].Data()*-10
	assert.InDelta(t, want, out.Data(), 1e-12)
	assert.Equal(t, "LinearNeuron(2)", n.String())

	out.Backward()
	assert.Equal(t, -10.0, w[0].Grad())
	assert.Equal(t, -10.0, w[1].Grad())
	assert.Equal(t, 1.0, w[2].Grad())
}

func TestNeuron_InputMismatch(t *testing.T) {
	g := autodiff.NewGraph()
	n := nn.NewNeuron(g, 3, true, nn.NewInitializer(nn.DefaultInitConfig()))

	assert.PanicsWithValue(t, "nn: neuron expects 3 inputs, got 2", func() {
		n.Forward(g.Leaves([]float64{1, 2}))
	})
}

func TestMLP_Shape(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.DefaultInitConfig())

	// 4*(3+1) + 4*(4+1) + 1*(4+1)
	assert.Equal(t, 41, nn.NumParameters(model))
	require.Len(t, model.Layers(), 3)
	assert.Equal(t, 3, model.Len())

	assert.True(t, model.Layers()[0].Neurons()[0].Nonlinear())
	assert.True(t, model.Layers()[1].Neurons()[0].Nonlinear())
	assert.False(t, model.Layers()[2].Neurons()[0].Nonlinear())

	out := model.Forward(g.Leaves([]float64{2, 3, -1}))
	assert.Len(t, out, 1)

	assert.Contains(t, model.String(), "LinearNeuron(4)")
	assert.Panics(t, func() { nn.NewMLP(g, 0, []int{1}, nn.DefaultInitConfig()) })
	assert.Panics(t, func() { nn.NewMLP(g, 2, nil, nn.DefaultInitConfig()) })
	assert.Panics(t, func() { model.Block(3) })
}

func TestMLP_SameSeedSameWeights(t *testing.T) {
	a := nn.NewMLP(autodiff.NewGraph(), 3, []int{4, 1}, nn.DefaultInitConfig())
	b := nn.NewMLP(autodiff.NewGraph(), 3, []int{4, 1}, nn.DefaultInitConfig())
	c := nn.NewMLP(autodiff.NewGraph(), 3, []int{4, 1}, nn.InitConfig{Seed: 41})

	assert.Equal(t, nn.Snapshot(a), nn.Snapshot(b))
	assert.NotEqual(t, nn.Snapshot(a), nn.Snapshot(c))
}

// TestMLP_Training reproduces the regression example: one sample, target 3,
// half squared error, fixed-rate steps.
func TestMLP_Training(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.DefaultInitConfig())
	mark := g.Mark()

	var losses []float64
	for range 100 {
		x := g.Leaves([]float64{2, 3, -1})
		y := g.Leaf(3)
		loss := nn.HalfSquaredError(model.Forward(x)[0], y)
		losses = append(losses, loss.Data())

		nn.ZeroGrad(model)
		loss.Backward()
		nn.Step(model)
		g.Release(mark)
	}

	assert.Equal(t, mark.Len(), g.Len(), "forward nodes released every epoch")
	assert.Less(t, losses[len(losses)-1], losses[0])
}

func TestZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 2, []int{2, 1}, nn.DefaultInitConfig())

	out := model.Forward(g.Leaves([]float64{0.5, -0.25}))[0]
	out.Backward()
	require.Greater(t, nn.GradNorm(model), 0.0)

	nn.ZeroGrad(model)
	assert.Zero(t, nn.GradNorm(model))
	for _, grad := range nn.Grads(model) {
		assert.Zero(t, grad)
	}
}

func TestSnapshotRestore(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 2, []int{3, 1}, nn.DefaultInitConfig())
	saved := nn.Snapshot(model)

	out := model.Forward(g.Leaves([]float64{1, 1}))[0]
	out.Backward()
	for _, p := range model.Parameters() {
		p.StepBy(0.5)
	}
	require.NotEqual(t, saved, nn.Snapshot(model))

	require.NoError(t, nn.Restore(model, saved))
	assert.Equal(t, saved, nn.Snapshot(model))

	err := nn.Restore(model, saved[:2])
	assert.ErrorIs(t, err, nn.ErrSizeMismatch)
}

func TestMSE(t *testing.T) {
	g := autodiff.NewGraph()
	preds := g.Leaves([]float64{1, 2, 3})
	targets := g.Leaves([]float64{1, 0, 6})

	loss := nn.MSE(preds, targets)
	assert.InDelta(t, (0+4+9)/3.0, loss.Data(), 1e-12)

	loss.Backward()
	assert.InDelta(t, 0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, 2*2/3.0, preds[1].Grad(), 1e-12)
	assert.InDelta(t, 2*-3/3.0, preds[2].Grad(), 1e-12)

	assert.Panics(t, func() { nn.MSE(preds, targets[:1]) })
	assert.Panics(t, func() { nn.MSE(nil, nil) })
}

func TestHalfSquaredError(t *testing.T) {
	g := autodiff.NewGraph()
	p := g.Leaf(5)
	loss := nn.HalfSquaredError(p, g.Leaf(3))

	assert.Equal(t, 2.0, loss.Data())
	loss.Backward()
	assert.Equal(t, 2.0, p.Grad())
}
