package main

import (
	"os"
	"regexp"
	"strings"

	"certkit.dev/certkit/cmd/certkit/commands"
	"certkit.dev/certkit/internal/infra/security"
	"certkit.dev/certkit/internal/ui"
)

var version = "dev"

func main() {
	// Disable core dumps for security - prevents exposure of sensitive cryptographic material
	if err := security.DisableCoreDumps(); err != nil {
		// Don't fail the application if we can't disable core dumps, just warn
		ui.Warning("Failed to disable core dumps: %v", err)
	}

	if err := commands.Execute(version); err != nil {
		errorMsg := strings.ToUpper(err.Error()[:1]) + err.Error()[1:]
		errorMsg = strings.ReplaceAll(errorMsg, "\n", "\n  ")

		// Remove schema references from error messages
		schemaRefRe := regexp.MustCompile(` with 'https://certkit\.dev/schemas/\S+#'`)
		errorMsg = schemaRefRe.ReplaceAllString(errorMsg, "")

		ui.Error("%s", errorMsg)
		os.Exit(1)
	}
}
