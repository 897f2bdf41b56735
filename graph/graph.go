// Package graph provides a read-only topological view of an ONNX-style
// computation graph: nodes with ordered tensor references, producer and
// consumer edges, initializers, and the graph's declared inputs and outputs.
// A Graph is immutable once built.
package graph

// Node is one operator instance. Inputs and Outputs are tensor names in
// declaration order.
type Node struct {
	Name    string
	Op      string
	Inputs  []string
	Outputs []string
}

// Initializer is a named constant tensor bound at graph build time. External
// marks tensor data stored outside the graph file rather than inline.
type Initializer struct {
	Name     string
	External bool
}

// Graph is an immutable view of a computation graph. Nodes are addressed by
// index; indices follow topological order.
type Graph struct {
	name     string
	nodes    []Node
	inputs   []string
	outputs  []string
	inits    map[string]Initializer
	producer map[string]int
	// consumers[i] lists the nodes reading any output of node i, each once,
	// in ascending index order.
	consumers [][]int
	subgraph  bool
}

func (g *Graph) Name() string {
	return g.name
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node at index i. The returned pointer aliases graph
// state and must not be mutated.
func (g *Graph) Node(i int) *Node {
	return &g.nodes[i]
}

// TopologicalOrder returns the node indices in topological order. The
// returned slice is freshly allocated on each call.
func (g *Graph) TopologicalOrder() []int {
	order := make([]int, len(g.nodes))
	for i := range order {
		order[i] = i
	}
	return order
}

// Consumers returns the indices of nodes that read any output of node i.
func (g *Graph) Consumers(i int) []int {
	return g.consumers[i]
}

// Producer returns the index of the node producing the named tensor.
func (g *Graph) Producer(name string) (int, bool) {
	i, ok := g.producer[name]
	return i, ok
}

func (g *Graph) IsInitializer(name string) bool {
	_, ok := g.inits[name]
	return ok
}

func (g *Graph) Initializer(name string) (Initializer, bool) {
	init, ok := g.inits[name]
	return init, ok
}

// HasExternalData reports whether any initializer stores its data outside
// the graph file.
func (g *Graph) HasExternalData() bool {
	for _, init := range g.inits {
		if init.External {
			return true
		}
	}
	return false
}

// Inputs returns the declared graph-level inputs, including default-valued
// inputs that are also initializers.
func (g *Graph) Inputs() []string {
	return g.inputs
}

// Outputs returns the declared graph-level outputs.
func (g *Graph) Outputs() []string {
	return g.outputs
}

// IsSubgraph reports whether this graph is nested inside another graph's
// node (a control-flow body) rather than being a top-level model graph.
func (g *Graph) IsSubgraph() bool {
	return g.subgraph
}
