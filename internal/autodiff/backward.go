package autodiff

// Backward computes d(s)/d(n) for every node n reachable from s.
//
// Algorithm:
//  1. Order all reachable nodes so that every node comes before its operands
//  2. Reset their gradients to 0 and seed s.grad = 1
//  3. Walk the order, pushing each node's gradient into its operands with the
//     chain rule (operand.grad += local derivative * node.grad)
//
// When a node is reached its consumers have all run already, so its gradient
// is the complete sum over every path to the output. Nodes shared by several
// consumers accumulate rather than overwrite.
//
// Backward may be called again on the same graph and produces the same
// gradients. Gradients of nodes reachable from s from an earlier pass rooted
// elsewhere are discarded.
func (s *Scalar) Backward() {
	order := s.BackwardOrder()

	for _, n := range order {
		n.grad = 0
	}
	s.grad = 1

	for _, n := range order {
		n.propagate()
	}
}

// propagate accumulates this node's gradient into its operands.
func (s *Scalar) propagate() {
	if s.op == nil {
		return
	}
	grads := s.op.Backward(values(s.inputs), s.data, s.grad)
	for i, in := range s.inputs {
		in.grad += grads[i]
	}
}

// BackwardOrder returns every node reachable from s exactly once, in reverse
// topological order: s first, and each node before all of its operands.
//
// The traversal is an iterative depth-first search, so graph depth is bounded
// by memory rather than by the goroutine stack.
func (s *Scalar) BackwardOrder() []*Scalar {
	type frame struct {
		node *Scalar
		next int // index of the next operand to visit
	}

	visited := map[*Scalar]struct{}{s: {}}
	stack := []frame{{node: s}}
	var post []*Scalar // operands before consumers

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.inputs) {
			child := top.node.inputs[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		post = append(post, top.node)
		stack = stack[:len(stack)-1]
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}

// ZeroGrad resets the gradient of every node reachable from the given roots.
func ZeroGrad(roots ...*Scalar) {
	for _, r := range roots {
		for _, n := range r.BackwardOrder() {
			n.grad = 0
		}
	}
}
