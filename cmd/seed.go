package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <questions.json>",
	Short: "Import a question batch into the catalog",
	Long:  "Validates the JSON question batch against the catalog schema and upserts it. Also seeds the default tier configs on a fresh database.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open batch: %w", err)
		}
		defer f.Close()

		n, err := a.importer.Import(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("import batch: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions\n", n)
		return nil
	},
}
