package autodiff

// Backward computes gradients for every Scalar reachable from root, seeding
// root's gradient with 1.0.
//
// Example:
//
//	a := autodiff.NewScalar(3)
//	b := autodiff.NewScalar(4)
//	c := a.Mul(b)
//	autodiff.Backward(c)
//	a.Grad() // 4
//	b.Grad() // 3
func Backward(root *Scalar) {
	BackwardWithSeed(root, 1.0)
}

// Backward is shorthand for autodiff.Backward(s).
func (s *Scalar) Backward() {
	Backward(s)
}

// BackwardWithSeed computes gradients for every Scalar reachable from root,
// starting from an explicit output gradient.
//
// Algorithm:
//  1. Order the graph topologically (root first) with a depth-first search
//  2. Walk that order, so each Scalar's gradient is complete before it is used
//  3. For each non-leaf, apply the operation's local derivative rule and add
//     the result to each operand's pending gradient
//
// A local derivative that is not finite, such as d(log x)/dx for an x that
// underflowed to a subnormal, panics with *ArithmeticError before any operand
// receives it.
//
// The gradient produced by this pass is added to every visited Scalar's
// accumulator, never assigned, so a parameter shared across several graphs
// (one per training example) collects the sum of all of them.
func BackwardWithSeed(root *Scalar, seed float64) {
	order := TopologicalSort(root)

	// Gradients flowing in this pass, kept apart from the accumulators so a
	// Scalar's earlier gradient is never propagated twice.
	pending := make(map[uint64]float64, len(order))
	pending[root.id] = seed

	for _, s := range order {
		d := pending[s.id]
		s.grad += d

		if s.history == nil {
			continue
		}

		op := s.history.Op
		inputGrads := op.Backward(d)
		for i, input := range s.history.Inputs {
			if i >= len(inputGrads) {
				break
			}
			if !isFinite(inputGrads[i]) {
				panic(&ArithmeticError{
					Op:       op.Kind(),
					Inputs:   op.Inputs(),
					Result:   inputGrads[i],
					Backward: true,
				})
			}
			pending[input.id] += inputGrads[i]
		}
	}
}

// TopologicalSort returns every Scalar reachable from root exactly once,
// ordered so that each Scalar appears before all of its operands. root is
// always first.
func TopologicalSort(root *Scalar) []*Scalar {
	type frame struct {
		node     *Scalar
		expanded bool
	}

	visited := make(map[uint64]bool)
	postOrder := make([]*Scalar, 0, 64)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			postOrder = append(postOrder, top.node)
			continue
		}
		if visited[top.node.id] {
			continue
		}
		visited[top.node.id] = true

		// Revisit after all operands are emitted.
		stack = append(stack, frame{node: top.node, expanded: true})
		if top.node.history == nil {
			continue
		}
		for _, input := range top.node.history.Inputs {
			if !visited[input.id] {
				stack = append(stack, frame{node: input})
			}
		}
	}

	// Reverse post-order: consumers before operands.
	for i, j := 0, len(postOrder)-1; i < j; i, j = i+1, j-1 {
		postOrder[i], postOrder[j] = postOrder[j], postOrder[i]
	}
	return postOrder
}
