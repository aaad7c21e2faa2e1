package autodiff

import "github.com/ZhengPeterWang/ModelGarden/internal/scalar"

// Backward computes d(root)/d(n) for every node n reachable from root.
//
// Algorithm:
//  1. Compute a post-order (reverse topological) sequence of the DAG
//     rooted at root, following predecessor edges, visiting each node at
//     most once by identity.
//  2. Seed root.Grad = 1 (d root / d root).
//  3. Walk the sequence in reverse (root first, leaves last) and run
//     each node's gradient rule exactly once, so a node's contributions
//     are pushed to its predecessors before those predecessors push
//     further upstream.
//
// Gradients accumulate: Backward does not reset Grad fields, so calling
// it twice without ZeroGrad in between doubles every gradient. This is
// deliberate and enables accumulation across multiple loss terms. Nodes
// with no path to root are never visited and keep their Grad untouched.
func Backward(root *scalar.Value) {
	order := topoSort(root)

	root.Grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		if op := order[i].Operation(); op != nil {
			op.Backward()
		}
	}
}

// topoSort returns the nodes reachable from root in post-order: every
// node appears after all of its predecessors. The walk is an explicit
// stack rather than recursion so graph depth is not bounded by the
// goroutine stack.
func topoSort(root *scalar.Value) []*scalar.Value {
	type frame struct {
		node *scalar.Value
		next int // index of the next predecessor to descend into
	}

	visited := make(map[*scalar.Value]bool)
	order := make([]*scalar.Value, 0, 64)

	stack := []frame{{node: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		prev := top.node.Prev()
		if top.next < len(prev) {
			child := prev[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{node: child})
			}
			continue
		}
		// All predecessors emitted; emit the node itself.
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// ZeroGrad resets Grad to zero on every given node. Callers zero their
// parameters (and any other nodes whose gradients they will read)
// before each Backward pass.
func ZeroGrad(nodes ...*scalar.Value) {
	for _, n := range nodes {
		n.Grad = 0
	}
}
