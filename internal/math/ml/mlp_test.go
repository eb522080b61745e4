package ml

import (
	"testing"

	"github.com/drakos74/free-grad/internal/math/grad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	xs = Classic().X
	ys = Classic().Y
)

func TestNeuron(t *testing.T) {
	g := grad.NewGraph()
	n := NewNeuron(g, rand.New(rand.NewSource(1)), 3, Tanh)

	params := n.Parameters()
	require.Len(t, params, 4)
	labels := make([]string, len(params))
	for i, p := range params {
		labels[i] = p.Label()
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}
	assert.Equal(t, []string{"w0", "w1", "w2", "b"}, labels)

	out, err := n.Forward(g.Vector([]float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, "tanh", out.Op())

	_, err = n.Forward(g.Vector([]float64{1, 2}))
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNeuronActivation(t *testing.T) {

	type test struct {
		act Activation
		tag string
	}

	tests := map[string]test{
		"tanh": {
			act: Tanh,
			tag: "tanh",
		},
		"sigmoid": {
			act: Sigmoid,
			tag: "sig",
		},
		"relu": {
			act: Relu,
			tag: "relu",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := grad.NewGraph()
			n := NewNeuron(g, rand.New(rand.NewSource(3)), 2, tt.act)
			x := g.Vector([]float64{0.5, -0.5})
			out, err := n.Forward(x)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, out.Op())

			// the activation consumes b + w0*x0 + w1*x1
			p := n.Parameters()
			sum := p[2].Data() + p[0].Data()*0.5 - p[1].Data()*0.5
			assert.InDelta(t, sum, out.Prev()[0].Data(), 1e-12)
		})
	}
}

func TestLayer(t *testing.T) {
	g := grad.NewGraph()
	l := NewLayer(g, rand.New(rand.NewSource(1)), 2, 5, Relu)
	outs, err := l.Forward(g.Vector([]float64{1, -1}))
	require.NoError(t, err)
	assert.Len(t, outs, 5)
	assert.Len(t, l.Parameters(), 15)
	for _, o := range outs {
		assert.GreaterOrEqual(t, o.Data(), 0.0)
	}

	_, err = l.Forward(g.Vector([]float64{1, -1, 0}))
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestMLPForward(t *testing.T) {
	g := grad.NewGraph()
	net, err := NewMLP(g, rand.New(rand.NewSource(1)), 3, []int{4, 4, 1}, []Activation{Tanh, Tanh, Tanh})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 4, 1}, net.Sizes())

	out, err := net.Forward(g.Vector([]float64{2, 3, -1}))
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = net.Forward(g.Vector([]float64{2, 3}))
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestMLPParameters(t *testing.T) {

	type test struct {
		nin   int
		nouts []int
		count int
	}

	tests := map[string]test{
		"3-4-4-1": {
			nin:   3,
			nouts: []int{4, 4, 1},
			count: 41,
		},
		"1-1": {
			nin:   1,
			nouts: []int{1},
			count: 2,
		},
		"2-8-3": {
			nin:   2,
			nouts: []int{8, 3},
			count: 2*8 + 8 + 8*3 + 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			acts := make([]Activation, len(tt.nouts))
			for i := range acts {
				acts[i] = Sigmoid
			}
			g := grad.NewGraph()
			net, err := NewMLP(g, rand.New(rand.NewSource(1)), tt.nin, tt.nouts, acts)
			require.NoError(t, err)
			assert.Len(t, net.Parameters(), tt.count)
			// parameters are the only nodes so far
			assert.Equal(t, tt.count, g.Len())
		})
	}
}

func TestMLPInvalidShape(t *testing.T) {

	type test struct {
		nin   int
		nouts []int
		acts  []Activation
	}

	tests := map[string]test{
		"mismatch": {
			nin:   3,
			nouts: []int{4, 1},
			acts:  []Activation{Tanh},
		},
		"empty": {
			nin: 3,
		},
		"zero-input": {
			nin:   0,
			nouts: []int{1},
			acts:  []Activation{Tanh},
		},
		"zero-layer": {
			nin:   2,
			nouts: []int{0, 1},
			acts:  []Activation{Tanh, Relu},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewMLP(grad.NewGraph(), rand.New(rand.NewSource(1)), tt.nin, tt.nouts, tt.acts)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestSeededNetwork(t *testing.T) {
	cfg := DefaultConfig()
	a, err := NewNetwork(grad.NewGraph(), cfg)
	require.NoError(t, err)
	b, err := NewNetwork(grad.NewGraph(), cfg)
	require.NoError(t, err)
	cfg.Seed = 2
	c, err := NewNetwork(grad.NewGraph(), cfg)
	require.NoError(t, err)

	data := func(net *MLP) []float64 {
		ff := make([]float64, 0)
		for _, p := range net.Parameters() {
			ff = append(ff, p.Data())
		}
		return ff
	}
	assert.Equal(t, data(a), data(b))
	assert.NotEqual(t, data(a), data(c))
}

func TestZeroGrad(t *testing.T) {
	g := grad.NewGraph()
	net, err := NewMLP(g, rand.New(rand.NewSource(1)), 3, []int{2, 1}, []Activation{Relu, Tanh})
	require.NoError(t, err)
	out, err := net.Forward(g.Vector([]float64{1, 2, 3}))
	require.NoError(t, err)
	require.NoError(t, out[0].Backward())

	net.ZeroGrad()
	for _, p := range net.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}
