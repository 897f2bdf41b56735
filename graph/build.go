package graph

import (
	"fmt"
	"slices"
)

// Builder assembles a Graph. Nodes must be added in topological order;
// Build validates the order and wires producer and consumer edges.
type Builder struct {
	name     string
	nodes    []Node
	inputs   []string
	outputs  []string
	inits    []Initializer
	subgraph bool
}

func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Input declares graph-level inputs. A name may also be registered as an
// initializer, which makes it a default-valued input.
func (b *Builder) Input(names ...string) *Builder {
	b.inputs = append(b.inputs, names...)
	return b
}

// Output declares graph-level outputs.
func (b *Builder) Output(names ...string) *Builder {
	b.outputs = append(b.outputs, names...)
	return b
}

// Initializer registers a constant tensor with inline data.
func (b *Builder) Initializer(names ...string) *Builder {
	for _, name := range names {
		b.inits = append(b.inits, Initializer{Name: name})
	}
	return b
}

// ExternalInitializer registers a constant tensor whose data lives outside
// the graph file.
func (b *Builder) ExternalInitializer(name string) *Builder {
	b.inits = append(b.inits, Initializer{Name: name, External: true})
	return b
}

// Subgraph marks the graph as nested inside another graph's node.
func (b *Builder) Subgraph() *Builder {
	b.subgraph = true
	return b
}

// Node appends a node. Nodes must arrive in topological order.
func (b *Builder) Node(name, op string, inputs, outputs []string) *Builder {
	b.nodes = append(b.nodes, Node{
		Name:    name,
		Op:      op,
		Inputs:  slices.Clone(inputs),
		Outputs: slices.Clone(outputs),
	})
	return b
}

// Build validates the graph and returns the immutable view. Every node
// input must resolve to an initializer, a graph input, or an output of an
// earlier node; every tensor name must have a single producer.
func (b *Builder) Build() (*Graph, error) {
	g := &Graph{
		name:      b.name,
		nodes:     slices.Clone(b.nodes),
		inputs:    slices.Clone(b.inputs),
		outputs:   slices.Clone(b.outputs),
		inits:     make(map[string]Initializer, len(b.inits)),
		producer:  make(map[string]int),
		consumers: make([][]int, len(b.nodes)),
		subgraph:  b.subgraph,
	}

	for _, init := range b.inits {
		if _, ok := g.inits[init.Name]; ok {
			return nil, fmt.Errorf("graph %s: duplicate initializer %q", b.name, init.Name)
		}
		g.inits[init.Name] = init
	}

	known := make(map[string]bool, len(b.inputs)+len(b.inits))
	for _, name := range b.inputs {
		known[name] = true
	}
	for name := range g.inits {
		known[name] = true
	}

	for i, node := range g.nodes {
		for _, in := range node.Inputs {
			if !known[in] {
				return nil, fmt.Errorf("graph %s: node %q input %q is not an initializer, a graph input, or an earlier node's output", b.name, node.Name, in)
			}
		}
		for _, out := range node.Outputs {
			if known[out] {
				return nil, fmt.Errorf("graph %s: tensor %q has more than one producer", b.name, out)
			}
			known[out] = true
			g.producer[out] = i
		}
	}

	for i, node := range g.nodes {
		seen := make(map[int]bool)
		for _, in := range node.Inputs {
			p, ok := g.producer[in]
			if !ok || seen[p] {
				continue
			}
			seen[p] = true
			g.consumers[p] = append(g.consumers[p], i)
		}
	}

	for _, out := range b.outputs {
		if !known[out] {
			return nil, fmt.Errorf("graph %s: output %q is not produced by any node", b.name, out)
		}
	}

	return g, nil
}
