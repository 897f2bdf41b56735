package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainGraph = `{
	"name": "chain",
	"inputs": ["x"],
	"outputs": ["y"],
	"initializers": [{"name": "w"}],
	"nodes": [
		{"name": "conv", "op": "Conv", "inputs": ["x", "w"], "outputs": ["a"]},
		{"name": "custom", "op": "Custom", "inputs": ["a"], "outputs": ["b"]},
		{"name": "relu", "op": "Relu", "inputs": ["b"], "outputs": ["y"]}
	]
}`

func writeGraph(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(t, os.WriteFile(path, []byte(chainGraph), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&out)
	cli.SetErr(&out)
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestPartitionCmd(t *testing.T) {
	out, err := run(t, "partition", writeGraph(t), "--target", "npu", "--ops", "Conv,Relu")
	require.NoError(t, err)

	assert.Contains(t, out, "FusedDelegateOp_1")
	assert.Contains(t, out, "FusedDelegateOp_2")
	assert.Contains(t, out, "x, w")
}

func TestPartitionCmdTensors(t *testing.T) {
	out, err := run(t, "partition", writeGraph(t), "--target", "npu", "--tensors", "a,b,y")
	require.NoError(t, err)

	// one cluster spanning the whole graph
	assert.Contains(t, out, "FusedDelegateOp_1")
	assert.NotContains(t, out, "FusedDelegateOp_2")
}

func TestPartitionCmdMissingFlags(t *testing.T) {
	t.Setenv("ONNXPART_TARGET", "")

	_, err := run(t, "partition", writeGraph(t), "--target", "")
	assert.ErrorContains(t, err, "no target specified")

	_, err = run(t, "partition", writeGraph(t), "--target", "npu")
	assert.ErrorContains(t, err, "no support information")
}

func TestInspectCmd(t *testing.T) {
	out, err := run(t, "inspect", writeGraph(t))
	require.NoError(t, err)

	assert.Contains(t, out, "graph chain: 3 nodes")
	assert.Contains(t, out, "Conv")
	assert.Contains(t, out, "custom")
}
