package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show details of a PEM certificate or certificate request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := getApp(cmd).Inspect(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
