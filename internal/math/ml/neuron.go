package ml

import (
	"fmt"

	"github.com/drakos74/free-grad/internal/math/grad"
	"golang.org/x/exp/rand"
)

// Parametrized is anything that owns trainable parameters.
type Parametrized interface {
	Parameters() []grad.Value
}

// Neuron computes act(b + Σ w_i * x_i).
type Neuron struct {
	w   []grad.Value
	b   grad.Value
	act Activation
}

// NewNeuron creates a neuron with nin weights, all parameters drawn uniformly from [-1, 1).
func NewNeuron(g *grad.Graph, rng *rand.Rand, nin int, act Activation) *Neuron {
	w := make([]grad.Value, nin)
	for i := range w {
		w[i] = g.New(rng.Float64()*2-1, fmt.Sprintf("w%d", i))
	}
	return &Neuron{
		w:   w,
		b:   g.New(rng.Float64()*2-1, "b"),
		act: act,
	}
}

func (n *Neuron) Forward(x []grad.Value) (grad.Value, error) {
	if len(x) != len(n.w) {
		return grad.Value{}, fmt.Errorf("neuron expects %d inputs but got %d: %w", len(n.w), len(x), ErrInvalidShape)
	}
	act := n.b
	for i, wi := range n.w {
		act = act.Add(wi.Mul(x[i]))
	}
	return n.act.apply(act), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []grad.Value {
	params := make([]grad.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

func (n *Neuron) ZeroGrad() {
	zeroGrad(n)
}

// Layer is a set of neurons consuming the same inputs.
type Layer struct {
	neurons []*Neuron
}

func NewLayer(g *grad.Graph, rng *rand.Rand, nin, nout int, act Activation) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, rng, nin, act)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []grad.Value) ([]grad.Value, error) {
	outs := make([]grad.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("could not activate neuron %d: %w", i, err)
		}
		outs[i] = out
	}
	return outs, nil
}

func (l *Layer) Parameters() []grad.Value {
	params := make([]grad.Value, 0)
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

func (l *Layer) ZeroGrad() {
	zeroGrad(l)
}

func zeroGrad(p Parametrized) {
	for _, v := range p.Parameters() {
		v.ZeroGrad()
	}
}
