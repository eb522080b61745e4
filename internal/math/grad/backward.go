package grad

import "fmt"

const (
	visiting uint8 = iota + 1
	visited
)

// topo returns the indices reachable from root, each one after all of its predecessors.
func (g *Graph) topo(root int) ([]int, error) {
	order := make([]int, 0)
	state := make(map[int]uint8)

	var build func(i int) error
	build = func(i int) error {
		switch state[i] {
		case visited:
			return nil
		case visiting:
			return fmt.Errorf("node %d is its own ancestor: %w", i, ErrCyclicGraph)
		}
		state[i] = visiting
		for _, p := range g.nodes[i].prev {
			if err := build(p); err != nil {
				return err
			}
		}
		state[i] = visited
		order = append(order, i)
		return nil
	}

	if err := build(root); err != nil {
		return nil, err
	}
	return order, nil
}

// Topo returns the values reachable from v in topological order, v being the last one.
func (v Value) Topo() ([]Value, error) {
	order, err := v.g.topo(v.id)
	if err != nil {
		return nil, err
	}
	vv := make([]Value, len(order))
	for i, id := range order {
		vv[i] = Value{g: v.g, id: id}
	}
	return vv, nil
}

// Backward computes the gradient of v with respect to every ancestor.
// Gradients accumulate on top of existing ones, callers need to zero them between passes.
// Nodes that v does not depend on are left untouched.
func (v Value) Backward() error {
	order, err := v.g.topo(v.id)
	if err != nil {
		return fmt.Errorf("could not sort graph: %w", err)
	}
	v.node().grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		v.g.propagate(order[i])
	}
	return nil
}
