package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/listforge/delimit"
	"github.com/listforge/delimit/internal/config"
	"github.com/listforge/delimit/internal/watcher"
)

func newWatchCommand(logger *slog.Logger) *cobra.Command {
	var (
		opts       optionFlags
		runExtract bool
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Reformat and reprint a file on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			formatOpts, err := opts.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			path := args[0]
			reformat := func(context.Context) {
				text, err := readInput(cmd, []string{path}, runExtract)
				if err != nil {
					logger.Error("read watched file", "path", path, "error", err)
					return
				}
				if err := writeOutput(cmd, "", delimit.Format(text, formatOpts)); err != nil {
					logger.Error("write output", "error", err)
				}
			}

			service, err := watcher.New(path, logger, reformat)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			// Print once up front so the current contents show immediately.
			reformat(ctx)
			return service.Start(ctx)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&runExtract, "extract", "x", false, "flatten structured files before formatting")
	return cmd
}
