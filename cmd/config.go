package cmd

import (
	"fmt"

	"github.com/bnema/chesswager-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change cw settings",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app))

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "# %s\n", app.cfg.Path)
			for _, entry := range app.cfg.Entries() {
				if _, err := fmt.Fprintf(w, "%s = %q\n", entry.Key, entry.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Write one setting to the config file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.KnownKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(app.cfg.Path, args[0], args[1]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], app.cfg.Path)
			return err
		},
	}
}
