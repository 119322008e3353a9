package commands

import (
	"github.com/spf13/cobra"

	"certkit.dev/certkit/internal/ui"
)

var issueCmd = &cobra.Command{
	Use:   "issue <name>",
	Short: "Issue a self-signed certificate from a profile",
	Long: `Generates a private key and a self-signed certificate according to the
given YAML profile and stores both under <name> in the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath, _ := cmd.Flags().GetString("profile")
		encryptKey, _ := cmd.Flags().GetBool("encrypt-key")

		ui.Action("Issuing certificate '%s' from %s", args[0], profilePath)
		if err := getApp(cmd).Issue(cmd.Context(), profilePath, args[0], encryptKey); err != nil {
			return err
		}
		ui.Success("Certificate '%s' issued", args[0])
		return nil
	},
}

func init() {
	issueCmd.Flags().String("profile", "profile.yaml", "Path to the certificate profile")
	issueCmd.Flags().Bool("encrypt-key", false, "Encrypt the private key with a passphrase")
}
