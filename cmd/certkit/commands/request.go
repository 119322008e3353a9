package commands

import (
	"github.com/spf13/cobra"

	"certkit.dev/certkit/internal/ui"
)

var requestCmd = &cobra.Command{
	Use:   "request <name>",
	Short: "Create a certificate signing request from a profile",
	Long: `Generates a CSR according to the given YAML profile and stores it under
<name> in the output directory. A fresh private key is generated unless
--key names an existing key in the store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath, _ := cmd.Flags().GetString("profile")
		keyName, _ := cmd.Flags().GetString("key")
		encryptKey, _ := cmd.Flags().GetBool("encrypt-key")

		ui.Action("Creating certificate request '%s' from %s", args[0], profilePath)
		if err := getApp(cmd).Request(cmd.Context(), profilePath, args[0], keyName, encryptKey); err != nil {
			return err
		}
		ui.Success("Certificate request '%s' created", args[0])
		return nil
	},
}

func init() {
	requestCmd.Flags().String("profile", "profile.yaml", "Path to the certificate profile")
	requestCmd.Flags().String("key", "", "Name of an existing key in the store to sign with")
	requestCmd.Flags().Bool("encrypt-key", false, "Encrypt a newly generated private key with a passphrase")
}
