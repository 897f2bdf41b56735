package partition

import (
	"fmt"

	"github.com/beviswong/onnxruntime/graph"
	"github.com/beviswong/onnxruntime/logutil"
)

// InconsistentSupportError reports a node whose output tensors received
// conflicting support verdicts from the oracle. The oracle classifies at
// tensor granularity but delegation happens at node granularity, so a split
// verdict cannot be honored.
type InconsistentSupportError struct {
	Node   string
	Tensor string
}

func (e *InconsistentSupportError) Error() string {
	return fmt.Sprintf("outputs of node %q disagree on backend support (tensor %q)", e.Node, e.Tensor)
}

// unsupportedNodes classifies every node in topological order and returns
// the indices of unsupported nodes, preserving that order. Initializers
// read by supported nodes are accumulated into required.
func unsupportedNodes(g *graph.Graph, supported map[string]bool, required map[string]bool) ([]int, error) {
	var unsupported []int

	for _, idx := range g.TopologicalOrder() {
		node := g.Node(idx)

		// Nodes with no outputs carry no evidence of support.
		ok := false
		for i, out := range node.Outputs {
			if i == 0 {
				ok = supported[out]
			} else if supported[out] != ok {
				return nil, &InconsistentSupportError{Node: node.Name, Tensor: out}
			}
		}

		if !ok {
			logutil.Trace("node unsupported", "node", node.Name, "op", node.Op)
			unsupported = append(unsupported, idx)
			continue
		}

		for _, in := range node.Inputs {
			if g.IsInitializer(in) {
				required[in] = true
			}
		}
	}

	return unsupported, nil
}
