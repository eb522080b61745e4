package ml

import (
	"errors"
	"fmt"

	"github.com/drakos74/free-grad/internal/math/grad"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidShape      = grad.ErrInvalidShape
	ErrUnknownActivation = errors.New("unknown activation")
)

// Activation is the non-linearity applied after a neuron's weighted sum.
type Activation string

const (
	Tanh    Activation = "tanh"
	Sigmoid Activation = "sig"
	Relu    Activation = "relu"
)

// ParseActivation parses the activation name,
// an empty name falls back to tanh.
func ParseActivation(s string) (Activation, error) {
	switch s {
	case "", string(Tanh):
		return Tanh, nil
	case string(Sigmoid), "sigmoid":
		return Sigmoid, nil
	case string(Relu):
		return Relu, nil
	}
	return "", fmt.Errorf("could not parse '%s': %w", s, ErrUnknownActivation)
}

func (a *Activation) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	act, err := ParseActivation(s)
	if err != nil {
		return err
	}
	*a = act
	return nil
}

func (a Activation) apply(v grad.Value) grad.Value {
	switch a {
	case Relu:
		return v.Relu()
	case Sigmoid:
		return v.Sigmoid()
	default:
		return v.Tanh()
	}
}
