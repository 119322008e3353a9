package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"certkit.dev/certkit/internal/infra/config"
	"certkit.dev/certkit/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage profile files",
}

// config validate
var configValidateCmd = &cobra.Command{
	Use:   "validate <profile>",
	Short: "Validate the syntax and schema of a profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Action("Validating profile %s", args[0])
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read %s: %w", args[0], err)
		}
		loader := config.NewYAMLConfigLoader()
		if err := loader.ValidateProfile(data); err != nil {
			return err
		}
		if _, err := loader.LoadProfile(args[0]); err != nil {
			return err
		}
		ui.Success("Profile is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
