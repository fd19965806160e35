package cli

import (
	"github.com/spf13/cobra"

	"github.com/listforge/delimit"
	"github.com/listforge/delimit/internal/config"
	"github.com/listforge/delimit/internal/preset"
)

func newPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named formatting presets",
	}
	cmd.AddCommand(newPresetListCommand())
	cmd.AddCommand(newPresetSetCommand())
	cmd.AddCommand(newPresetRemoveCommand())
	return cmd
}

func newPresetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := preset.NewStore(config.Load().PresetPath)
			names, err := store.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}

func newPresetSetCommand() *cobra.Command {
	var opts optionFlags

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Save the given option flags under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recordFromFlags(cmd, &opts)
			if err != nil {
				return err
			}
			store := preset.NewStore(config.Load().PresetPath)
			return store.Save(args[0], rec)
		},
	}

	opts.register(cmd)
	// A preset is itself a starting point; starting it from another preset
	// would hide where its values came from.
	_ = cmd.Flags().MarkHidden("preset")
	return cmd
}

func newPresetRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := preset.NewStore(config.Load().PresetPath)
			return store.Delete(args[0])
		},
	}
}

// recordFromFlags captures only the flags the user set, so the preset file
// stays minimal and unset toggles keep their defaults on use. Aliases are
// validated before saving; the stored record keeps the alias spelling.
func recordFromFlags(cmd *cobra.Command, opts *optionFlags) (preset.Record, error) {
	var rec preset.Record
	flags := cmd.Flags()

	if flags.Changed("wrap") {
		if _, err := delimit.ParseWrapper(opts.wrap); err != nil {
			return preset.Record{}, err
		}
		rec.Wrap = opts.wrap
	}
	if flags.Changed("delimiter") {
		if _, err := delimit.ParseDelimiter(opts.delimiter); err != nil {
			return preset.Record{}, err
		}
		rec.Delimiter = opts.delimiter
	}
	if flags.Changed("custom") {
		rec.CustomDelimiter = opts.custom
		if rec.Delimiter == "" {
			rec.Delimiter = "custom"
		}
	}
	if flags.Changed("case") {
		if _, err := delimit.ParseCaseMode(opts.caseMode); err != nil {
			return preset.Record{}, err
		}
		rec.Case = opts.caseMode
	}
	if flags.Changed("dedupe") {
		dedupe := opts.dedupe
		rec.Dedupe = &dedupe
	}
	if flags.Changed("trim") {
		trim := opts.trim
		rec.Trim = &trim
	}
	return rec, nil
}
