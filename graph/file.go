package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type fileGraph struct {
	Name         string            `json:"name"`
	Inputs       []string          `json:"inputs"`
	Outputs      []string          `json:"outputs"`
	Initializers []fileInitializer `json:"initializers,omitempty"`
	Nodes        []fileNode        `json:"nodes"`
	Subgraph     bool              `json:"subgraph,omitempty"`
}

type fileInitializer struct {
	Name     string `json:"name"`
	External bool   `json:"external,omitempty"`
}

type fileNode struct {
	Name    string   `json:"name"`
	Op      string   `json:"op"`
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

// Decode reads a graph in the JSON interchange format and validates it.
func Decode(r io.Reader) (*Graph, error) {
	var f fileGraph
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	b := NewBuilder(f.Name).
		Input(f.Inputs...).
		Output(f.Outputs...)

	if f.Subgraph {
		b.Subgraph()
	}

	for _, init := range f.Initializers {
		if init.External {
			b.ExternalInitializer(init.Name)
		} else {
			b.Initializer(init.Name)
		}
	}

	for _, node := range f.Nodes {
		b.Node(node.Name, node.Op, node.Inputs, node.Outputs)
	}

	return b.Build()
}

// LoadFile reads a graph from a JSON file on disk.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
