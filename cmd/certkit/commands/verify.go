package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"certkit.dev/certkit/internal/ui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify a certificate against a CA certificate",
	Long: `Builds a certification path for the certificate against the CA given
with --ca. Without --ca the certificate is checked against itself, which
is the expected setup for self-signed certificates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caPath, _ := cmd.Flags().GetString("ca")
		dnsName, _ := cmd.Flags().GetString("dns-name")

		result, err := getApp(cmd).Verify(cmd.Context(), args[0], caPath, dnsName)
		if err != nil {
			return err
		}
		if result != nil {
			return fmt.Errorf("verification failed: %s (code %d)", result.ErrorString(), result.Raw())
		}
		ui.Success("Certificate verified OK")
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("ca", "", "Path to the CA certificate (PEM)")
	verifyCmd.Flags().String("dns-name", "", "Also check that the certificate is valid for this DNS name")
}
