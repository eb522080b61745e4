package grad

import (
	"math"
	"strconv"
)

// Op is the kind of operation that produced a node.
type Op int

const (
	Leaf Op = iota
	Add
	Mul
	Pow
	Tanh
	Sigmoid
	Relu
)

// tag returns the textual form of the operation,
// pow carries its exponent e.g. '**2'.
func (op Op) tag(exp float64) string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**" + strconv.FormatFloat(exp, 'g', -1, 64)
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sig"
	case Relu:
		return "relu"
	}
	return ""
}

func (op Op) String() string {
	switch op {
	case Leaf:
		return "leaf"
	case Pow:
		return "pow"
	}
	return op.tag(0)
}

// propagate applies the local gradient rule of node i to its predecessors.
// Every rule accumulates, since a predecessor may have more than one consumer.
func (g *Graph) propagate(i int) {
	out := &g.nodes[i]
	switch out.op {
	case Add:
		a, b := &g.nodes[out.prev[0]], &g.nodes[out.prev[1]]
		a.grad += out.grad
		b.grad += out.grad
	case Mul:
		a, b := &g.nodes[out.prev[0]], &g.nodes[out.prev[1]]
		// read both before writing, a and b may be the same node
		da, db := b.data*out.grad, a.data*out.grad
		a.grad += da
		b.grad += db
	case Pow:
		a := &g.nodes[out.prev[0]]
		a.grad += out.exp * math.Pow(a.data, out.exp-1) * out.grad
	case Tanh:
		a := &g.nodes[out.prev[0]]
		a.grad += (1 - out.data*out.data) * out.grad
	case Sigmoid:
		a := &g.nodes[out.prev[0]]
		a.grad += out.data * (1 - out.data) * out.grad
	case Relu:
		a := &g.nodes[out.prev[0]]
		if a.data > 0 {
			a.grad += out.grad
		}
	}
}
