package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/beviswong/onnxruntime/envconfig"
	"github.com/beviswong/onnxruntime/graph"
	"github.com/beviswong/onnxruntime/oracle"
	"github.com/beviswong/onnxruntime/partition"
)

func NewPartitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition GRAPH",
		Short: "Split a graph into delegable subgraphs",
		Args:  cobra.ExactArgs(1),
		RunE:  partitionHandler,
	}

	cmd.Flags().StringP("target", "t", envconfig.Target, "Backend target identifier")
	cmd.Flags().StringSlice("ops", nil, "Op types the target supports")
	cmd.Flags().StringSlice("tensors", nil, "Tensor names the target supports")

	return cmd
}

func partitionHandler(cmd *cobra.Command, args []string) error {
	g, err := graph.LoadFile(args[0])
	if err != nil {
		return err
	}

	target, _ := cmd.Flags().GetString("target")
	if target == "" {
		return errors.New("no target specified; use --target or ONNXPART_TARGET")
	}

	ops, _ := cmd.Flags().GetStringSlice("ops")
	tensors, _ := cmd.Flags().GetStringSlice("tensors")

	var o partition.Oracle
	switch {
	case len(ops) > 0:
		o = oracle.OpSet{target: ops}
	case len(tensors) > 0:
		o = oracle.Static{target: tensors}
	default:
		return errors.New("no support information; use --ops or --tensors")
	}

	p := partition.New(o)
	p.NamePrefix = envconfig.SubgraphPrefix

	subgraphs, err := p.Partition(g, target)
	if err != nil {
		return err
	}

	if len(subgraphs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no delegable subgraphs")
		return nil
	}

	var data [][]string
	for _, sg := range subgraphs {
		data = append(data, []string{
			sg.Name,
			strconv.Itoa(len(sg.Nodes)),
			strings.Join(sg.Inputs, ", "),
			strings.Join(sg.Outputs, ", "),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "NODES", "INPUTS", "OUTPUTS"})
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
