// Package oracle provides support oracles for graph partitioning. An oracle
// answers, for one backend target, which tensors that backend can produce.
package oracle

import (
	"fmt"

	"github.com/beviswong/onnxruntime/graph"
	"github.com/beviswong/onnxruntime/partition"
)

var (
	_ partition.Oracle = Static(nil)
	_ partition.Oracle = OpSet(nil)
)

// Static answers from explicit per-target supported-tensor sets, the shape
// produced by ahead-of-time backend annotation tools. Unknown targets
// support nothing, which degrades to non-delegated execution.
type Static map[string][]string

func (s Static) SupportedTensors(_ *graph.Graph, target string) (map[string]bool, error) {
	supported := make(map[string]bool, len(s[target]))
	for _, name := range s[target] {
		supported[name] = true
	}
	return supported, nil
}

// OpSet marks every output of a node whose op type the target supports.
// Unlike Static, an unknown target is an error: an op allowlist is written
// per target, so a miss is a configuration mistake rather than a capability
// gap.
type OpSet map[string][]string

func (o OpSet) SupportedTensors(g *graph.Graph, target string) (map[string]bool, error) {
	ops, ok := o[target]
	if !ok {
		return nil, fmt.Errorf("no op set registered for target %q", target)
	}

	allow := make(map[string]bool, len(ops))
	for _, op := range ops {
		allow[op] = true
	}

	supported := make(map[string]bool)
	for _, idx := range g.TopologicalOrder() {
		node := g.Node(idx)
		if !allow[node.Op] {
			continue
		}
		for _, out := range node.Outputs {
			supported[out] = true
		}
	}
	return supported, nil
}
