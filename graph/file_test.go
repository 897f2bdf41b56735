package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `{
		"name": "mnist",
		"inputs": ["x"],
		"outputs": ["y"],
		"initializers": [{"name": "w"}, {"name": "b", "external": true}],
		"nodes": [
			{"name": "conv", "op": "Conv", "inputs": ["x", "w", "b"], "outputs": ["a"]},
			{"name": "relu", "op": "Relu", "inputs": ["a"], "outputs": ["y"]}
		]
	}`

	g, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "mnist", g.Name())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "Conv", g.Node(0).Op)
	assert.True(t, g.IsInitializer("w"))
	assert.True(t, g.HasExternalData())
	assert.False(t, g.IsSubgraph())
}

func TestDecodeSubgraph(t *testing.T) {
	input := `{
		"name": "body",
		"inputs": ["x"],
		"outputs": ["y"],
		"subgraph": true,
		"nodes": [{"name": "relu", "op": "Relu", "inputs": ["x"], "outputs": ["y"]}]
	}`

	g, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, g.IsSubgraph())
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "malformed json",
			input: `{"name": `,
			want:  "decode graph",
		},
		{
			name:  "unknown field",
			input: `{"name": "g", "extra": true}`,
			want:  "decode graph",
		},
		{
			name: "invalid graph",
			input: `{
				"name": "g",
				"outputs": ["y"],
				"nodes": [{"name": "relu", "op": "Relu", "inputs": ["x"], "outputs": ["y"]}]
			}`,
			want: "not an initializer, a graph input, or an earlier node's output",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
