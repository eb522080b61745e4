package grad

import (
	"fmt"
	"math"
)

// Operand is anything that can take part in a binary operation,
// either a Value or a raw Const.
type Operand interface {
	operand()
}

// Const is a raw number, lifted to a leaf when used as an operand.
type Const float64

func (Const) operand() {}

// Value is a handle to a scalar node of a Graph.
type Value struct {
	g  *Graph
	id int
}

func (Value) operand() {}

func (v Value) node() *node {
	return &v.g.nodes[v.id]
}

// Graph returns the graph the value lives in.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the index of the value within its graph.
func (v Value) ID() int {
	return v.id
}

func (v Value) Data() float64 {
	return v.node().data
}

// SetData overwrites the current value of the node.
// It is meant for parameter updates, the graph structure stays untouched.
func (v Value) SetData(data float64) {
	v.node().data = data
}

func (v Value) Grad() float64 {
	return v.node().grad
}

func (v Value) ZeroGrad() {
	v.node().grad = 0
}

func (v Value) Label() string {
	return v.node().label
}

// Kind returns the operation kind that produced the value.
func (v Value) Kind() Op {
	return v.node().op
}

// Op returns the operation tag of the value, empty for leaves.
func (v Value) Op() string {
	n := v.node()
	return n.op.tag(n.exp)
}

// Prev returns the direct predecessors of the value.
func (v Value) Prev() []Value {
	prev := v.node().prev
	vv := make([]Value, len(prev))
	for i, p := range prev {
		vv[i] = Value{g: v.g, id: p}
	}
	return vv
}

func (v Value) String() string {
	return fmt.Sprintf("Value(data=%v)", v.Data())
}

func (v Value) unary(op Op, data float64) Value {
	return v.g.push(node{data: data, prev: []int{v.id}, op: op})
}

func (v Value) binary(op Op, other Operand, f func(a, b float64) float64) Value {
	w := v.g.lift(other)
	return v.g.push(node{
		data: f(v.Data(), w.Data()),
		prev: []int{v.id, w.id},
		op:   op,
	})
}

// Add creates the node v + other.
func (v Value) Add(other Operand) Value {
	return v.binary(Add, other, func(a, b float64) float64 {
		return a + b
	})
}

// Mul creates the node v * other.
func (v Value) Mul(other Operand) Value {
	return v.binary(Mul, other, func(a, b float64) float64 {
		return a * b
	})
}

// Pow creates the node v ** k for a fixed exponent k.
func (v Value) Pow(k float64) Value {
	return v.g.push(node{
		data: math.Pow(v.Data(), k),
		prev: []int{v.id},
		op:   Pow,
		exp:  k,
	})
}

// Neg is v * -1.
func (v Value) Neg() Value {
	return v.Mul(Const(-1))
}

// Sub is v + (-other).
func (v Value) Sub(other Operand) Value {
	return v.Add(v.g.lift(other).Neg())
}

// Div is v * other ** -1.
// A zero divisor gives Inf or NaN, it is not an error.
func (v Value) Div(other Operand) Value {
	return v.Mul(v.g.lift(other).Pow(-1))
}

func (v Value) Tanh() Value {
	e := math.Exp(2 * v.Data())
	return v.unary(Tanh, (e-1)/(e+1))
}

func (v Value) Sigmoid() Value {
	return v.unary(Sigmoid, 1/(1+math.Exp(-v.Data())))
}

func (v Value) Relu() Value {
	return v.unary(Relu, math.Max(0, v.Data()))
}
