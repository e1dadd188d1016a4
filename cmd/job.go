package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "jobs <name>",
	Short: "Run one scheduled job and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.runner.Run(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "known jobs:")
			for _, name := range a.runner.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+name)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: processed=%d errors=%d took=%s\n",
			res.Name, res.Processed, res.Errors, res.Took)
		return nil
	},
}
