package password

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// passphraseEnvVar is the non-interactive passphrase fallback.
const passphraseEnvVar = "CERTKIT_PASSPHRASE"

// Provider implements the domain.PassphraseReader interface.
type Provider struct{}

// NewProvider creates a new passphrase provider.
func NewProvider() *Provider {
	return &Provider{}
}

// ReadPassphrase obtains a passphrase from the environment or an interactive
// terminal prompt. With confirm set, the passphrase is prompted twice and
// both entries must match.
func (p *Provider) ReadPassphrase(confirm bool) ([]byte, error) {
	if pw := os.Getenv(passphraseEnvVar); pw != "" {
		return []byte(pw), nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("running in non-interactive environment but no passphrase provided via %s", passphraseEnvVar)
	}

	first, err := prompt("Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	if !confirm {
		return first, nil
	}

	second, err := prompt("Confirm passphrase: ")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, fmt.Errorf("passphrases do not match")
	}
	return first, nil
}

func prompt(label string) ([]byte, error) {
	fmt.Fprint(os.Stderr, label)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return pw, nil
}
