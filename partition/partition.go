// Package partition splits a computation graph into maximal contiguous runs
// of backend-supported nodes ("clusters"), each with an explicit input and
// output tensor boundary, so an accelerator backend can execute them as
// opaque subgraphs while the host runtime keeps the rest.
package partition

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/beviswong/onnxruntime/graph"
)

// Oracle reports backend support for one target. Implementations return the
// set of output tensor names the target can produce; the partitioner derives
// per-node verdicts from it and fails if a node's outputs disagree.
type Oracle interface {
	SupportedTensors(g *graph.Graph, target string) (map[string]bool, error)
}

// Partitioner turns oracle verdicts into delegable subgraphs. A single
// Partitioner may be used for concurrent Partition calls; only the subgraph
// name counter is shared between them.
type Partitioner struct {
	oracle Oracle

	// NamePrefix and Domain tag emitted subgraphs. Zero values fall back
	// to DefaultNamePrefix and DefaultDomain.
	NamePrefix string
	Domain     string

	counter atomic.Uint64
}

func New(oracle Oracle) *Partitioner {
	return &Partitioner{oracle: oracle}
}

// Partition computes the delegable subgraphs of g for one backend target.
//
// Nested subgraphs and graphs with externally stored initializer data are
// not partitioned; both yield an empty result so the caller falls back to
// non-delegated execution. An oracle verdict that splits a single node's
// outputs is fatal and returns an InconsistentSupportError.
func (p *Partitioner) Partition(g *graph.Graph, target string) ([]*Subgraph, error) {
	if g.IsSubgraph() {
		slog.Warn("partitioning nested subgraphs is not supported", "graph", g.Name())
		return nil, nil
	}

	if g.HasExternalData() {
		slog.Warn("initializers with external data are not supported", "graph", g.Name())
		return nil, nil
	}

	supported, err := p.oracle.SupportedTensors(g, target)
	if err != nil {
		return nil, fmt.Errorf("support oracle for target %s: %w", target, err)
	}

	required := make(map[string]bool)
	unsupported, err := unsupportedNodes(g, supported, required)
	if err != nil {
		return nil, err
	}

	var subgraphs []*Subgraph
	for _, cluster := range clusters(g.TopologicalOrder(), unsupported) {
		inputs, outputs := clusterBoundary(g, cluster, required)
		if len(inputs) == 0 {
			// No external dependency means no valid delegation boundary.
			slog.Debug("dropping cluster with no external inputs",
				"graph", g.Name(), "target", target, "nodes", len(cluster))
			continue
		}
		subgraphs = append(subgraphs, p.emit(cluster, inputs, outputs))
	}

	slog.Debug("partitioned graph", "graph", g.Name(), "target", target,
		"nodes", g.Len(), "unsupported", len(unsupported), "subgraphs", len(subgraphs))
	return subgraphs, nil
}

// PartitionAll partitions g for several targets concurrently and returns
// the subgraphs keyed by target. Each target gets an independent
// classification pass; an error for any target fails the whole call.
func (p *Partitioner) PartitionAll(g *graph.Graph, targets ...string) (map[string][]*Subgraph, error) {
	results := make([][]*Subgraph, len(targets))

	var eg errgroup.Group
	for i, target := range targets {
		i, target := i, target // per-iteration copies: Go 1.21 loop semantics
		eg.Go(func() error {
			subgraphs, err := p.Partition(g, target)
			if err != nil {
				return err
			}
			results[i] = subgraphs
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	byTarget := make(map[string][]*Subgraph, len(targets))
	for i, target := range targets {
		byTarget[target] = results[i]
	}
	return byTarget, nil
}
