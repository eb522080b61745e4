package ml

import (
	"fmt"

	"github.com/drakos74/free-grad/internal/math/grad"
	"golang.org/x/exp/rand"
)

// MLP is a stack of fully connected layers.
type MLP struct {
	nin    int
	sizes  []int
	layers []*Layer
}

// NewMLP creates a network of len(nouts) layers, layer i having nouts[i] neurons with activation acts[i].
func NewMLP(g *grad.Graph, rng *rand.Rand, nin int, nouts []int, acts []Activation) (*MLP, error) {
	if len(nouts) != len(acts) {
		return nil, fmt.Errorf("got %d layers but %d activations: %w", len(nouts), len(acts), ErrInvalidShape)
	}
	if len(nouts) == 0 {
		return nil, fmt.Errorf("no layers: %w", ErrInvalidShape)
	}
	sz := append([]int{nin}, nouts...)
	for i, s := range sz {
		if s < 1 {
			return nil, fmt.Errorf("size %d at position %d: %w", s, i, ErrInvalidShape)
		}
	}
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(g, rng, sz[i], sz[i+1], acts[i])
	}
	return &MLP{
		nin:    nin,
		sizes:  sz,
		layers: layers,
	}, nil
}

// NewNetwork creates the network described by the config, seeding the weights from it.
func NewNetwork(g *grad.Graph, cfg Config) (*MLP, error) {
	nouts := make([]int, len(cfg.Layers))
	acts := make([]Activation, len(cfg.Layers))
	for i, l := range cfg.Layers {
		nouts[i] = l.Size
		acts[i] = l.Activation
	}
	return NewMLP(g, rand.New(rand.NewSource(cfg.Seed)), cfg.Input, nouts, acts)
}

// Sizes returns the input width followed by every layer's width.
func (m *MLP) Sizes() []int {
	return append([]int{}, m.sizes...)
}

func (m *MLP) Forward(x []grad.Value) ([]grad.Value, error) {
	if len(x) != m.nin {
		return nil, fmt.Errorf("network expects %d inputs but got %d: %w", m.nin, len(x), ErrInvalidShape)
	}
	var err error
	for i, l := range m.layers {
		x, err = l.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("could not forward layer %d: %w", i, err)
		}
	}
	return x, nil
}

func (m *MLP) Parameters() []grad.Value {
	params := make([]grad.Value, 0)
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

func (m *MLP) ZeroGrad() {
	zeroGrad(m)
}
