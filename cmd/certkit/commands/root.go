package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"certkit.dev/certkit/internal/app"
	"certkit.dev/certkit/internal/infra/clock"
	"certkit.dev/certkit/internal/infra/config"
	"certkit.dev/certkit/internal/infra/keys"
	"certkit.dev/certkit/internal/infra/logging"
	"certkit.dev/certkit/internal/infra/password"
	"certkit.dev/certkit/internal/infra/store"
	"certkit.dev/certkit/internal/infra/sysrand"
)

// AppContext holds all the dependencies for the application.
// It is attached to the command's context for access in RunE functions.
type AppContext struct {
	App *app.Application
}

var appContextKey = &struct{}{}

var rootCmd = &cobra.Command{
	Use:   "certkit",
	Short: "CertKit is a toolkit for issuing and inspecting X.509 certificates.",
	Long: `CertKit issues self-signed certificates and certificate requests from
declarative YAML profiles, and inspects and verifies existing PEM or DER
encoded certificates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		outPath, err := getOutPath(cmd)
		if err != nil {
			return err
		}

		// Dependency Injection
		logger, err := logging.NewFileLogger(filepath.Join(outPath, "certkit.log"))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		fileStore, err := store.NewFileStore(outPath)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		configLoader := config.NewYAMLConfigLoader()
		passwordProvider := password.NewProvider()

		application := app.NewApplication(
			logger,
			configLoader,
			fileStore,
			keys.NewService(),
			passwordProvider,
			clock.NewService(),
			sysrand.NewSource(),
		)

		ctx := context.WithValue(cmd.Context(), appContextKey, &AppContext{App: application})
		cmd.SetContext(ctx)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("out", "", "Output directory for certificates and keys (env: CERTKIT_OUT)")

	// Add subcommands
	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(configCmd)
}

// getOutPath determines the output directory from flags or environment variables.
func getOutPath(cmd *cobra.Command) (string, error) {
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		// This should not happen with a properly configured flag.
		return "", err
	}
	if outPath == "" {
		outPath = os.Getenv("CERTKIT_OUT")
	}
	if outPath == "" {
		outPath, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not determine current directory: %w", err)
		}
	}
	outPath, err = filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("could not get absolute path for out: %w", err)
	}
	return outPath, nil
}

// getApp retrieves the application context from the command.
func getApp(cmd *cobra.Command) *app.Application {
	return cmd.Context().Value(appContextKey).(*AppContext).App
}
