// Package cli wires the delimit pipeline into a cobra command tree. All
// option aliases are resolved here; the pipeline only sees enum values.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func NewRoot(logger *slog.Logger) *cobra.Command {
	root := newFormatCommand()

	root.AddCommand(newServeCommand(logger))
	root.AddCommand(newWatchCommand(logger))
	root.AddCommand(newPresetCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}
