package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beviswong/onnxruntime/envconfig"
	"github.com/beviswong/onnxruntime/logutil"
	"github.com/beviswong/onnxruntime/version"
)

func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "onnxpart",
		Short:   "Partition computation graphs for accelerator delegation",
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			level := slog.LevelInfo
			if envconfig.Debug {
				level = logutil.LevelTrace
			}
			slog.SetDefault(logutil.NewLogger(os.Stderr, level))
		},
	}

	rootCmd.AddCommand(
		NewInspectCmd(),
		NewPartitionCmd(),
	)

	return rootCmd
}
