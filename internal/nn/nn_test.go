package nn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

func scalars(xs ...float64) []*autodiff.Scalar {
	out := make([]*autodiff.Scalar, len(xs))
	for i, x := range xs {
		out[i] = autodiff.New(x)
	}
	return out
}

func newInit(t *testing.T) *nn.Initializer {
	t.Helper()
	initializer, err := nn.NewUniform(7, -1, 1)
	require.NoError(t, err)
	return initializer
}

func TestParameter(t *testing.T) {
	p := nn.NewParameter("test_param", 0.25)

	assert.Equal(t, "test_param", p.Name())
	assert.Equal(t, 0.25, p.Data())
	assert.Equal(t, 0.0, p.Grad())
	assert.True(t, p.Value().IsLeaf())

	out := p.Value().MulConst(4)
	out.Backward()
	assert.Equal(t, 4.0, p.Grad())

	p.ZeroGrad()
	assert.Equal(t, 0.0, p.Grad())
}

func TestScalars(t *testing.T) {
	a := nn.NewParameter("a", 1)
	b := nn.NewParameter("b", 2)

	got := nn.Scalars([]*nn.Parameter{a, b})
	require.Len(t, got, 2)
	assert.Same(t, a.Value(), got[0])
	assert.Same(t, b.Value(), got[1])
}

func TestUniform_Deterministic(t *testing.T) {
	a, err := nn.NewUniform(42, -0.5, 0.5)
	require.NoError(t, err)
	b, err := nn.NewUniform(42, -0.5, 0.5)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		x, y := a.Next(), b.Next()
		assert.Equal(t, x, y)
		assert.GreaterOrEqual(t, x, -0.5)
		assert.Less(t, x, 0.5)
	}
}

func TestUniform_EmptyRange(t *testing.T) {
	_, err := nn.NewUniform(1, 1, 1)
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)

	_, err = nn.NewUniform(1, 2, -2)
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)
}

func TestNeuron_Forward(t *testing.T) {
	n := nn.NewNeuron("n", 3, nn.Tanh, newInit(t))
	require.Len(t, n.Weights(), 3)
	assert.Equal(t, 3, n.InFeatures())
	assert.Equal(t, nn.Tanh, n.Activation())

	x := []float64{0.5, -1.0, 2.0}
	want := n.Bias().Data()
	for i, w := range n.Weights() {
		want += w.Data() * x[i]
	}
	want = math.Tanh(want)

	out := n.Forward(scalars(x...))
	assert.InDelta(t, want, out.Data(), 1e-12)
	assert.Equal(t, 0.0, out.Grad())
}

func TestNeuron_WeightsNotIdentical(t *testing.T) {
	n := nn.NewNeuron("n", 4, nn.Linear, newInit(t))

	seen := make(map[float64]bool)
	for _, w := range n.Weights() {
		seen[w.Data()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNeuron_ParameterNames(t *testing.T) {
	n := nn.NewNeuron("layer0.neuron1", 2, nn.Tanh, newInit(t))

	var names []string
	for _, p := range n.Parameters() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"layer0.neuron1.w0", "layer0.neuron1.w1", "layer0.neuron1.b"}, names)
}

func TestNeuron_ArityMismatch(t *testing.T) {
	n := nn.NewNeuron("n", 3, nn.Tanh, newInit(t))

	assert.PanicsWithError(t, "n: expected 3 inputs, got 2", func() {
		n.Forward(scalars(1, 2))
	})
}

func TestNeuron_Gradients(t *testing.T) {
	n := nn.NewNeuron("n", 2, nn.Linear, newInit(t))
	x := scalars(3, -2)

	out := n.Forward(x)
	out.Backward()

	w := n.Weights()
	// Linear neuron: d/dw_i = x_i, d/db = 1, d/dx_i = w_i.
	assert.InDelta(t, 3.0, w[0].Grad(), 1e-12)
	assert.InDelta(t, -2.0, w[1].Grad(), 1e-12)
	assert.InDelta(t, 1.0, n.Bias().Grad(), 1e-12)
	assert.InDelta(t, w[0].Data(), x[0].Grad(), 1e-12)
	assert.InDelta(t, w[1].Data(), x[1].Grad(), 1e-12)
}

func TestLayer_Forward(t *testing.T) {
	l := nn.NewLayer("hidden", 2, 3, nn.ReLU, newInit(t))
	assert.Equal(t, "hidden", l.Name())
	assert.Equal(t, 2, l.InFeatures())
	assert.Equal(t, 3, l.OutFeatures())
	require.Len(t, l.Neurons(), 3)

	x := scalars(0.3, -0.8)
	out := l.Forward(x)
	require.Len(t, out, 3)

	for i, n := range l.Neurons() {
		assert.Equal(t, n.Forward(x).Data(), out[i].Data(), "neuron %d", i)
		assert.GreaterOrEqual(t, out[i].Data(), 0.0)
	}

	assert.Len(t, l.Parameters(), 3*(2+1))
}

func TestLayer_ArityMismatch(t *testing.T) {
	l := nn.NewLayer("hidden", 2, 3, nn.Tanh, newInit(t))

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %v", r)

		var arity *nn.ArityError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, "hidden", arity.Component)
		assert.Equal(t, 2, arity.Expected)
		assert.Equal(t, 1, arity.Got)
		assert.ErrorIs(t, err, nn.ErrArityMismatch)
	}()

	l.Forward(scalars(1))
}

func TestMLP_Structure(t *testing.T) {
	model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 3, 1))
	require.NoError(t, err)

	require.Len(t, model.Layers(), 3)
	assert.Equal(t, 2, model.InputSize())
	assert.Equal(t, 1, model.OutputSize())

	// (2*3+3) + (3*3+3) + (3*1+1)
	params := model.Parameters()
	assert.Len(t, params, 9+12+4)
	assert.Equal(t, "layer0.neuron0.w0", params[0].Name())
	assert.Equal(t, "layer2.neuron0.b", params[len(params)-1].Name())

	for i, layer := range model.Layers() {
		want := nn.Tanh
		if i == len(model.Layers())-1 {
			want = nn.Linear
		}
		for _, n := range layer.Neurons() {
			assert.Equal(t, want, n.Activation(), "layer %d", i)
		}
	}

	for _, p := range params {
		assert.True(t, p.Value().IsLeaf())
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}
}

func TestMLP_SeedReproducible(t *testing.T) {
	cfg := nn.DefaultConfig(2, 4, 1)

	a, err := nn.NewMLP(cfg)
	require.NoError(t, err)
	b, err := nn.NewMLP(cfg)
	require.NoError(t, err)

	cfg.Seed = 43
	c, err := nn.NewMLP(cfg)
	require.NoError(t, err)

	data := func(m *nn.MLP) []float64 {
		var out []float64
		for _, p := range m.Parameters() {
			out = append(out, p.Data())
		}
		return out
	}

	assert.Equal(t, data(a), data(b))
	assert.NotEqual(t, data(a), data(c))
}

// TestMLP_BackwardReachesEveryParameter tests MLP(2, [3, 1]).
func TestMLP_BackwardReachesEveryParameter(t *testing.T) {
	model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 1))
	require.NoError(t, err)

	out := model.Forward(scalars(0.5, -1.2))
	require.Len(t, out, 1)

	out[0].Backward()

	for _, p := range model.Parameters() {
		assert.NotZero(t, p.Grad(), "parameter %s received no gradient", p.Name())
	}
}

func TestMLP_InputGradientMatchesFiniteDifferences(t *testing.T) {
	cfg := nn.DefaultConfig(3, 4, 2)
	cfg.Hidden = nn.Sigmoid
	model, err := nn.NewMLP(cfg)
	require.NoError(t, err)

	// Differentiate out0 + out1² with respect to the inputs.
	objective := func(x []*autodiff.Scalar) *autodiff.Scalar {
		out := model.Forward(x)
		return out[0].Add(out[1].Pow(2))
	}

	x := []float64{0.2, -0.4, 1.1}
	inputs := scalars(x...)
	objective(inputs).Backward()

	got := make([]float64, len(inputs))
	for i, in := range inputs {
		got[i] = in.Grad()
	}

	f := func(p []float64) float64 { return objective(scalars(p...)).Data() }
	want := fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central})

	assert.Truef(t, floats.EqualApprox(got, want, 1e-6), "autodiff %v, numerical %v", got, want)
}

func TestMLP_SquaredErrorOverBatch(t *testing.T) {
	model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 3, 1))
	require.NoError(t, err)

	xs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	ys := []float64{0, 1, 1, 0}

	terms := make([]*autodiff.Scalar, len(xs))
	for i, x := range xs {
		pred := model.Forward(scalars(x...))[0]
		terms[i] = pred.Sub(autodiff.New(ys[i])).Pow(2)
	}
	loss := autodiff.Sum(terms...)
	loss.Backward()

	assert.GreaterOrEqual(t, loss.Data(), 0.0)

	nonZero := 0
	for _, p := range model.Parameters() {
		assert.False(t, math.IsNaN(p.Grad()), p.Name())
		if p.Grad() != 0 {
			nonZero++
		}
	}
	assert.Equal(t, len(model.Parameters()), nonZero)

	nn.ZeroGrad(model)
	for _, p := range model.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

func TestMLP_ArityMismatch(t *testing.T) {
	model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 1))
	require.NoError(t, err)

	assert.PanicsWithError(t, "mlp: expected 2 inputs, got 3", func() {
		model.Forward(scalars(1, 2, 3))
	})
}

func TestNewMLP_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  nn.Config
	}{
		{"zero input", nn.DefaultConfig(0, 3, 1)},
		{"no layers", nn.DefaultConfig(2)},
		{"zero layer", nn.DefaultConfig(2, 3, 0)},
		{"negative layer", nn.DefaultConfig(2, -1)},
		{"empty init range", func() nn.Config {
			c := nn.DefaultConfig(2, 1)
			c.InitLow, c.InitHigh = 0.5, 0.5
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := nn.NewMLP(tt.cfg)
			assert.Nil(t, model)
			assert.ErrorIs(t, err, nn.ErrInvalidConfig)
		})
	}
}

func TestNewMLPFromLayers(t *testing.T) {
	initializer := newInit(t)

	model, err := nn.NewMLPFromLayers(
		nn.NewLayer("a", 2, 3, nn.Tanh, initializer),
		nn.NewLayer("b", 3, 2, nn.ReLU, initializer),
	)
	require.NoError(t, err)
	assert.Len(t, model.Forward(scalars(1, 2)), 2)

	_, err = nn.NewMLPFromLayers(
		nn.NewLayer("a", 2, 3, nn.Tanh, initializer),
		nn.NewLayer("b", 4, 1, nn.Linear, initializer),
	)
	var arity *nn.ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, "b", arity.Component)
	assert.Equal(t, 4, arity.Expected)
	assert.Equal(t, 3, arity.Got)
	assert.EqualError(t, err, "b: expected 4 inputs, got 3")

	_, err = nn.NewMLPFromLayers()
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)
}

func TestModuleInterface(t *testing.T) {
	model, err := nn.NewMLP(nn.DefaultConfig(2, 2))
	require.NoError(t, err)

	var modules = []nn.Module{model, model.Layers()[0]}
	for _, m := range modules {
		assert.NotEmpty(t, m.Parameters())
		assert.Len(t, m.Forward(scalars(1, 1)), 2)
	}
}

func TestActivation(t *testing.T) {
	x := autodiff.New(-0.5)

	assert.Same(t, x, nn.Linear.Apply(x))
	assert.InDelta(t, math.Tanh(-0.5), nn.Tanh.Apply(x).Data(), 1e-12)
	assert.Equal(t, 0.0, nn.ReLU.Apply(x).Data())
	assert.InDelta(t, 1/(1+math.Exp(0.5)), nn.Sigmoid.Apply(x).Data(), 1e-12)
	assert.Panics(t, func() { nn.Activation(99).Apply(x) })

	for _, a := range []nn.Activation{nn.Linear, nn.Tanh, nn.ReLU, nn.Sigmoid} {
		parsed, err := nn.ParseActivation(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	parsed, err := nn.ParseActivation(" ReLU ")
	require.NoError(t, err)
	assert.Equal(t, nn.ReLU, parsed)

	_, err = nn.ParseActivation("softmax")
	assert.ErrorIs(t, err, nn.ErrInvalidConfig)
	assert.Equal(t, "activation(99)", nn.Activation(99).String())
}
