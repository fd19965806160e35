package cli

import (
	"github.com/spf13/cobra"

	"github.com/listforge/delimit"
	"github.com/listforge/delimit/internal/config"
	"github.com/listforge/delimit/internal/preset"
)

// optionFlags is the shared flag set for every command that formats text.
type optionFlags struct {
	wrap       string
	delimiter  string
	custom     string
	caseMode   string
	presetName string
	dedupe     bool
	trim       bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.wrap, "wrap", "w", "single", "wrapper around each value: single, double, paren, none")
	fl.StringVarP(&f.delimiter, "delimiter", "d", "comma", "delimiter between values: comma, semicolon, newline, comma-newline, pipe, custom")
	fl.StringVar(&f.custom, "custom", "", "custom delimiter string, used verbatim (implies --delimiter custom)")
	fl.StringVar(&f.caseMode, "case", "none", "case conversion: none, upper, lower")
	fl.BoolVar(&f.dedupe, "dedupe", true, "remove duplicate values, keeping the first occurrence")
	fl.BoolVar(&f.trim, "trim", true, "trim whitespace around each value")
	fl.StringVarP(&f.presetName, "preset", "p", "", "named preset to start from")
}

// resolve layers explicitly set flags over the preset (when named) or the
// environment defaults. Only flags the user actually changed override, so
// presets keep their values for untouched toggles.
func (f *optionFlags) resolve(cmd *cobra.Command, cfg config.Config) (delimit.Options, error) {
	var (
		opts delimit.Options
		err  error
	)
	if f.presetName != "" {
		opts, err = preset.NewStore(cfg.PresetPath).Resolve(f.presetName)
	} else {
		opts, err = cfg.Options()
	}
	if err != nil {
		return delimit.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("wrap") {
		if opts.Wrapper, err = delimit.ParseWrapper(f.wrap); err != nil {
			return delimit.Options{}, err
		}
	}
	if flags.Changed("delimiter") {
		if opts.Delimiter, err = delimit.ParseDelimiter(f.delimiter); err != nil {
			return delimit.Options{}, err
		}
	}
	if flags.Changed("custom") {
		opts.CustomDelimiter = f.custom
		if !flags.Changed("delimiter") {
			opts.Delimiter = delimit.Custom
		}
	}
	if flags.Changed("case") {
		if opts.Case, err = delimit.ParseCaseMode(f.caseMode); err != nil {
			return delimit.Options{}, err
		}
	}
	if flags.Changed("dedupe") {
		opts.Dedupe = f.dedupe
	}
	if flags.Changed("trim") {
		opts.Trim = f.trim
	}
	return opts, nil
}
