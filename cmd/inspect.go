package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/beviswong/onnxruntime/graph"
)

func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect GRAPH",
		Short: "Show the nodes and edges of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectHandler,
	}
}

func inspectHandler(cmd *cobra.Command, args []string) error {
	g, err := graph.LoadFile(args[0])
	if err != nil {
		return err
	}

	var data [][]string
	for _, idx := range g.TopologicalOrder() {
		node := g.Node(idx)

		var consumers []string
		for _, c := range g.Consumers(idx) {
			consumers = append(consumers, g.Node(c).Name)
		}

		data = append(data, []string{
			strconv.Itoa(idx),
			node.Name,
			node.Op,
			strings.Join(node.Inputs, ", "),
			strings.Join(node.Outputs, ", "),
			strings.Join(consumers, ", "),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "graph %s: %d nodes, inputs [%s], outputs [%s]\n\n",
		g.Name(), g.Len(), strings.Join(g.Inputs(), ", "), strings.Join(g.Outputs(), ", "))

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"INDEX", "NAME", "OP", "INPUTS", "OUTPUTS", "CONSUMERS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
