// Package envconfig reads partitioner settings from ONNXPART_* environment
// variables. Only the CLI consults it; the library packages take explicit
// parameters.
package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// Set via ONNXPART_DEBUG in the environment
	Debug bool
	// Set via ONNXPART_TARGET in the environment
	Target string
	// Set via ONNXPART_SUBGRAPH_PREFIX in the environment
	SubgraphPrefix string
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"ONNXPART_DEBUG":           {"ONNXPART_DEBUG", Debug, "Show additional debug information (e.g. ONNXPART_DEBUG=1)"},
		"ONNXPART_TARGET":          {"ONNXPART_TARGET", Target, "Default backend target identifier"},
		"ONNXPART_SUBGRAPH_PREFIX": {"ONNXPART_SUBGRAPH_PREFIX", SubgraphPrefix, "Name prefix for emitted subgraphs"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	if debug := clean("ONNXPART_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	Target = clean("ONNXPART_TARGET")
	SubgraphPrefix = clean("ONNXPART_SUBGRAPH_PREFIX")
}
