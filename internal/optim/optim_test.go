package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// quadratic builds f(x, y) = (x - 3)² + 2(y + 1)², minimized at (3, -1).
func quadratic(x, y autodiff.Value) autodiff.Value {
	return x.SubScalar(3).Pow(2).Add(y.AddScalar(1).Pow(2).MulScalar(2))
}

func minimize(t *testing.T, opt optim.Optimizer, g *autodiff.Graph, params []autodiff.Value, steps int) float64 {
	t.Helper()

	mark := g.Mark()
	var loss float64
	for range steps {
		out := quadratic(params[0], params[1])
		loss = out.Data()
		opt.ZeroGrad()
		out.Backward()
		opt.Step()
		g.Release(mark)
	}
	return loss
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Param(2.0)
	x.Backward() // grad_x = 1

	optimizer := optim.NewSGD([]autodiff.Value{x}, optim.SGDConfig{LR: 0.1})
	optimizer.Step()

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if math.Abs(x.Data()-1.9) > 1e-12 {
		t.Errorf("SGD update: got %f, want 1.9", x.Data())
	}
}

// TestSGD_WithMomentum tests the velocity accumulation.
func TestSGD_WithMomentum(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Param(2.0)
	x.Backward()

	optimizer := optim.NewSGD([]autodiff.Value{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, x = 2 - 0.1
	optimizer.Step()
	assert.InDelta(t, 1.9, x.Data(), 1e-12)

	// Step 2 with the same gradient: v = 0.9 + 1 = 1.9, x = 1.9 - 0.19
	optimizer.Step()
	assert.InDelta(t, 1.71, x.Data(), 1e-12)

	state := optimizer.StateDict()
	assert.InDelta(t, 1.9, state["velocity.0"], 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	sgd := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())

	sgd.SetLR(0.5)
	assert.Equal(t, 0.5, sgd.GetLR())
	assert.Empty(t, sgd.StateDict())
	assert.NoError(t, sgd.LoadStateDict(map[string]float64{"velocity.9": 1}))
}

func TestSGD_LoadStateDict(t *testing.T) {
	g := autodiff.NewGraph()
	params := []autodiff.Value{g.Param(1), g.Param(2)}
	sgd := optim.NewSGD(params, optim.SGDConfig{LR: 0.1, Momentum: 0.5})

	require.NoError(t, sgd.LoadStateDict(map[string]float64{"velocity.1": 4}))
	assert.Equal(t, map[string]float64{"velocity.0": 0, "velocity.1": 4}, sgd.StateDict())

	assert.Error(t, sgd.LoadStateDict(map[string]float64{"velocity.2": 1}))
	assert.Error(t, sgd.LoadStateDict(map[string]float64{"momentum": 1}))
}

func TestSGD_Converges(t *testing.T) {
	for _, momentum := range []float64{0, 0.9} {
		g := autodiff.NewGraph()
		params := []autodiff.Value{g.Param(0), g.Param(0)}
		sgd := optim.NewSGD(params, optim.SGDConfig{LR: 0.05, Momentum: momentum})

		minimize(t, sgd, g, params, 500)
		assert.True(t, floats.EqualApprox([]float64{3, -1}, []float64{params[0].Data(), params[1].Data()}, 1e-4),
			"momentum %v: got (%f, %f)", momentum, params[0].Data(), params[1].Data())
	}
}

func TestAdam_FirstStep(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Param(1.0)
	x.MulScalar(4).Backward() // grad = 4

	adam := optim.NewAdam([]autodiff.Value{x}, optim.AdamConfig{LR: 0.1})
	adam.Step()

	// With bias correction the first step moves by lr * sign(grad).
	assert.InDelta(t, 0.9, x.Data(), 1e-6)
	assert.Equal(t, 1, adam.Steps())
}

func TestAdam_Defaults(t *testing.T) {
	adam := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, adam.GetLR())
	adam.SetLR(0.01)
	assert.Equal(t, 0.01, adam.GetLR())
}

func TestAdam_Converges(t *testing.T) {
	g := autodiff.NewGraph()
	params := []autodiff.Value{g.Param(0), g.Param(0)}
	adam := optim.NewAdam(params, optim.AdamConfig{LR: 0.05})

	loss := minimize(t, adam, g, params, 2000)
	assert.Less(t, loss, 1e-3)
}

func TestNew(t *testing.T) {
	g := autodiff.NewGraph()
	params := []autodiff.Value{g.Param(1)}

	opt, err := optim.New("SGD", params, 0.2, 0.5)
	require.NoError(t, err)
	assert.IsType(t, &optim.SGD{}, opt)
	assert.Equal(t, 0.2, opt.GetLR())

	opt, err = optim.New("adam", params, 0, 0)
	require.NoError(t, err)
	assert.IsType(t, &optim.Adam{}, opt)
	assert.Equal(t, 0.001, opt.GetLR())

	_, err = optim.New("rmsprop", params, 0, 0)
	assert.ErrorIs(t, err, optim.ErrUnknownOptimizer)
}

func TestZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Param(3)
	x.Pow(2).Backward()
	require.Equal(t, 6.0, x.Grad())

	optim.NewAdam([]autodiff.Value{x}, optim.AdamConfig{}).ZeroGrad()
	assert.Zero(t, x.Grad())
}
