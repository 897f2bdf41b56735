package partition

import (
	"slices"

	"github.com/emirpasic/gods/v2/sets/linkedhashset"

	"github.com/beviswong/onnxruntime/graph"
)

// clusterBoundary computes the external tensor interface of one cluster:
// every tensor the cluster reads but does not produce internally, and every
// tensor it produces that is read outside the cluster or is a graph output.
//
// Inputs list dynamic tensors in first-use order followed by constant
// tensors in first-use order; keeping constants last is part of the
// descriptor contract. Outputs follow first-production order, then any
// remaining graph outputs in declaration order.
func clusterBoundary(g *graph.Graph, cluster []int, required map[string]bool) (inputs, outputs []string) {
	member := make(map[int]bool, len(cluster))
	for _, idx := range cluster {
		member[idx] = true
	}

	reads := linkedhashset.New[string]()
	produced := make(map[string]bool)
	external := linkedhashset.New[string]()

	for _, idx := range cluster {
		node := g.Node(idx)

		for _, in := range node.Inputs {
			reads.Add(in)
		}
		for _, out := range node.Outputs {
			produced[out] = true
		}

		// Any output read by a consumer outside the cluster crosses the
		// boundary.
		for _, consumer := range g.Consumers(idx) {
			if member[consumer] {
				continue
			}
			for _, out := range node.Outputs {
				if slices.Contains(g.Node(consumer).Inputs, out) {
					external.Add(out)
				}
			}
		}
	}

	graphInput := make(map[string]bool, len(g.Inputs()))
	for _, name := range g.Inputs() {
		graphInput[name] = true
	}

	// An initializer is a constant input unless it doubles as a declared
	// graph input the caller may override at call time; initializers read
	// directly by supported nodes are pinned constant either way.
	constant := func(name string) bool {
		return (g.IsInitializer(name) && !graphInput[name]) || required[name]
	}

	var constants []string
	for _, name := range reads.Values() {
		switch {
		case produced[name]:
			// Internal edge, not part of the boundary.
		case constant(name):
			constants = append(constants, name)
		default:
			inputs = append(inputs, name)
		}
	}
	inputs = append(inputs, constants...)

	outputs = external.Values()
	for _, name := range g.Outputs() {
		if produced[name] && !external.Contains(name) {
			outputs = append(outputs, name)
		}
	}

	return inputs, outputs
}
