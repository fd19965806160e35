package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/listforge/delimit"
	"github.com/listforge/delimit/internal/config"
	"github.com/listforge/delimit/internal/extract"
)

func newFormatCommand() *cobra.Command {
	var (
		opts       optionFlags
		runExtract bool
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "delimit [file...]",
		Short: "Normalize messy delimited text into a clean wrapped list",
		Long: `Delimit splits pasted or piped text on commas, semicolons, pipes, and
newlines, then trims, case-folds, dedupes, and wraps the values before
joining them with the delimiter of your choice. Reads the named files, or
stdin when no files are given.`,
		Example: `  echo "a,, b; B" | delimit
  delimit --wrap none --delimiter newline ids.txt
  delimit --extract report.csv --custom " | "`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			formatOpts, err := opts.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args, runExtract)
			if err != nil {
				return err
			}
			return writeOutput(cmd, outPath, delimit.Format(text, formatOpts))
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&runExtract, "extract", "x", false, "flatten structured files (csv, tsv, json, xml, html, xlsx) before formatting")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to file instead of stdout")
	return cmd
}

// readInput gathers raw text from the named files, or stdin when none are
// given. With runExtract, structured files are flattened into newline
// blobs first; everything else passes through as-is.
func readInput(cmd *cobra.Command, paths []string, runExtract bool) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	blobs := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		blob := string(data)
		if runExtract && extract.Supported(path) {
			if blob, err = extract.Flatten(path, data); err != nil {
				return "", err
			}
		}
		blobs = append(blobs, blob)
	}
	return strings.Join(blobs, "\n"), nil
}

// writeOutput prints the result plus a trailing newline, to stdout or the
// named file. The pipeline output itself never carries one.
func writeOutput(cmd *cobra.Command, outPath, output string) error {
	if outPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), output)
		return err
	}
	if err := os.WriteFile(outPath, []byte(output+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
