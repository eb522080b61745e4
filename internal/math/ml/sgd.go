package ml

import (
	"fmt"

	"github.com/drakos74/free-grad/internal/math/grad"
)

const DefaultStepSize = 0.01

// SGD moves every parameter against its gradient.
// Gradients are left as they are.
func SGD(net Parametrized, stepSize float64) {
	for _, p := range net.Parameters() {
		p.SetData(p.Data() - stepSize*p.Grad())
	}
}

// SquaredError returns Σ (p_i - t_i)^2.
func SquaredError(preds, targets []grad.Value) (grad.Value, error) {
	if len(preds) == 0 || len(preds) != len(targets) {
		return grad.Value{}, fmt.Errorf("could not compare %d predictions to %d targets: %w", len(preds), len(targets), ErrInvalidShape)
	}
	g := preds[0].Graph()
	diffs := make([]grad.Value, len(preds))
	for i, p := range preds {
		diffs[i] = p.Sub(targets[i]).Pow(2)
	}
	return g.Sum(diffs...), nil
}
