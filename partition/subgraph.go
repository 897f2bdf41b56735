package partition

import (
	"fmt"
)

// orDefault mirrors cmp.Or (added in Go 1.22) so the package builds with
// the Go 1.21 toolchain: it returns the first non-zero argument.
func orDefault[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

const (
	DefaultNamePrefix = "FusedDelegateOp"
	DefaultDomain     = "ai.onnx.delegate"
)

// Subgraph is the unit handed to a delegate backend: a contiguous run of
// supported node indices plus its resolved tensor boundary. Names are
// unique per Partitioner across repeated Partition calls.
type Subgraph struct {
	Name         string   `json:"name"`
	Domain       string   `json:"domain"`
	SinceVersion int      `json:"since_version"`
	Nodes        []int    `json:"nodes"`
	Inputs       []string `json:"inputs"`
	Outputs      []string `json:"outputs"`
}

func (p *Partitioner) emit(nodes []int, inputs, outputs []string) *Subgraph {
	return &Subgraph{
		Name:         fmt.Sprintf("%s_%d", orDefault(p.NamePrefix, DefaultNamePrefix), p.counter.Add(1)),
		Domain:       orDefault(p.Domain, DefaultDomain),
		SinceVersion: 1,
		Nodes:        nodes,
		Inputs:       inputs,
		Outputs:      outputs,
	}
}
