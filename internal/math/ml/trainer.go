package ml

import (
	"context"
	"fmt"

	"github.com/drakos74/free-grad/internal/math/grad"
	"github.com/drakos74/free-grad/internal/metrics"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Epoch is the outcome of a single gradient descent step.
type Epoch struct {
	Index    int
	Loss     float64
	GradNorm float64
}

// Report summarises a training run.
type Report struct {
	ID      string
	Samples int
	Epochs  []Epoch
}

// Loss returns the loss of the last epoch.
func (r Report) Loss() float64 {
	if len(r.Epochs) == 0 {
		return 0
	}
	return r.Epochs[len(r.Epochs)-1].Loss
}

// Trainer fits an MLP to a dataset with plain gradient descent.
// The parameters live at the bottom of the trainer's graph,
// every step builds its forward pass on top of them and drops it afterwards.
type Trainer struct {
	id    string
	g     *grad.Graph
	net   *MLP
	cfg   Training
	epoch int
}

func NewTrainer(cfg Config) (*Trainer, error) {
	g := grad.NewGraph()
	net, err := NewNetwork(g, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create network: %w", err)
	}
	return &Trainer{
		id:  uuid.New().String(),
		g:   g,
		net: net,
		cfg: cfg.Training,
	}, nil
}

func (t *Trainer) ID() string {
	return t.id
}

func (t *Trainer) Net() *MLP {
	return t.net
}

// Predict runs the network on every row.
func (t *Trainer) Predict(xs [][]float64) ([][]float64, error) {
	mark := t.g.Len()
	defer t.g.Truncate(mark)

	rows, err := t.g.Rows(xs)
	if err != nil {
		return nil, err
	}
	ys := make([][]float64, len(rows))
	for i, x := range rows {
		out, err := t.net.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("could not predict row %d: %w", i, err)
		}
		ys[i] = make([]float64, len(out))
		for j, o := range out {
			ys[i][j] = o.Data()
		}
	}
	return ys, nil
}

// Loss builds the summed squared error of the network over the dataset.
func (t *Trainer) Loss(xs, ys [][]float64) (grad.Value, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return grad.Value{}, fmt.Errorf("got %d samples for %d targets: %w", len(xs), len(ys), ErrInvalidShape)
	}
	in, err := t.g.Rows(xs)
	if err != nil {
		return grad.Value{}, fmt.Errorf("could not lift samples: %w", err)
	}
	targets, err := t.g.Rows(ys)
	if err != nil {
		return grad.Value{}, fmt.Errorf("could not lift targets: %w", err)
	}
	losses := make([]grad.Value, len(in))
	for i, x := range in {
		out, err := t.net.Forward(x)
		if err != nil {
			return grad.Value{}, fmt.Errorf("could not forward sample %d: %w", i, err)
		}
		losses[i], err = SquaredError(out, targets[i])
		if err != nil {
			return grad.Value{}, fmt.Errorf("could not compute loss for sample %d: %w", i, err)
		}
	}
	return t.g.Sum(losses...), nil
}

// Step runs one forward and backward pass and updates the parameters.
// The reported loss is the one before the update.
func (t *Trainer) Step(xs, ys [][]float64) (Epoch, error) {
	mark := t.g.Len()
	defer t.g.Truncate(mark)

	loss, err := t.Loss(xs, ys)
	if err != nil {
		return Epoch{}, err
	}
	t.net.ZeroGrad()
	if err := loss.Backward(); err != nil {
		return Epoch{}, fmt.Errorf("could not back-propagate: %w", err)
	}

	params := t.net.Parameters()
	grads := make([]float64, len(params))
	for i, p := range params {
		grads[i] = p.Grad()
	}
	SGD(t.net, t.cfg.StepSize)

	e := Epoch{
		Index:    t.epoch,
		Loss:     loss.Data(),
		GradNorm: xmath.Vec(len(grads)).With(grads...).Norm(),
	}
	t.epoch++
	metrics.Observer.Epoch(t.id, e.Loss, e.GradNorm)
	return e, nil
}

// Train steps over the dataset until the configured epochs run out,
// the loss drops below the threshold or the context is done.
func (t *Trainer) Train(ctx context.Context, xs, ys [][]float64) (Report, error) {
	report := Report{
		ID:      t.id,
		Samples: len(xs),
		Epochs:  make([]Epoch, 0, t.cfg.Epochs),
	}
	for i := 0; i < t.cfg.Epochs; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("training interrupted at epoch %d: %w", i, err)
		}
		e, err := t.Step(xs, ys)
		if err != nil {
			log.Error().
				Err(err).
				Str("run", t.id).
				Int("epoch", i).
				Msg("could not train")
			return report, err
		}
		report.Epochs = append(report.Epochs, e)
		log.Debug().
			Str("run", t.id).
			Int("epoch", e.Index).
			Float64("loss", e.Loss).
			Float64("grad", e.GradNorm).
			Msg("epoch")
		if e.Loss < t.cfg.Threshold {
			break
		}
	}
	log.Info().
		Str("run", t.id).
		Int("epochs", len(report.Epochs)).
		Int("samples", report.Samples).
		Float64("loss", report.Loss()).
		Msg("training finished")
	return report, nil
}
