package grad

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShape = errors.New("invalid shape")
	ErrCyclicGraph  = errors.New("cyclic graph")
	ErrForeignValue = errors.New("value belongs to another graph")
)

// node is the arena entry behind a Value.
// prev and op are fixed once the node is appended.
type node struct {
	data  float64
	grad  float64
	prev  []int
	op    Op
	exp   float64
	label string
}

// Graph is an append-only arena of scalar nodes.
// Predecessors always live at lower indices than the nodes consuming them.
type Graph struct {
	nodes []node
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make([]node, 0)}
}

// New creates a leaf value with an optional label.
func (g *Graph) New(data float64, label ...string) Value {
	l := ""
	if len(label) > 0 {
		l = label[0]
	}
	return g.push(node{data: data, op: Leaf, label: l})
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// ZeroGrad resets the gradient of every node in the graph.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// Truncate drops every node from index n onwards.
// Values pointing to dropped nodes must not be used afterwards.
func (g *Graph) Truncate(n int) {
	if n < 0 || n >= len(g.nodes) {
		return
	}
	g.nodes = g.nodes[:n]
}

// Sum folds the given values with Add, starting from a zero leaf.
func (g *Graph) Sum(vs ...Value) Value {
	sum := g.New(0)
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum
}

func (g *Graph) push(n node) Value {
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: len(g.nodes) - 1}
}

// lift turns the operand into a value of this graph.
func (g *Graph) lift(o Operand) Value {
	switch v := o.(type) {
	case Value:
		if v.g != g {
			panic(fmt.Errorf("could not combine node %d: %w", v.id, ErrForeignValue))
		}
		return v
	case Const:
		return g.New(float64(v))
	}
	panic(fmt.Sprintf("unknown operand type %T", o))
}
