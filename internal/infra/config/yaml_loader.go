package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/certgen/extensions"
)

// YAMLConfigLoader implements the domain.ConfigLoader interface for YAML
// issue profiles.
type YAMLConfigLoader struct{}

// NewYAMLConfigLoader creates a new profile loader.
func NewYAMLConfigLoader() *YAMLConfigLoader {
	return &YAMLConfigLoader{}
}

// LoadProfile loads and validates an issue profile.
func (l *YAMLConfigLoader) LoadProfile(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile: %w", err)
	}

	// Validate against the JSON schema first
	if err := l.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("validation error: %s: %w", path, err)
	}

	var profile domain.Profile
	// Use a decoder to get strict unmarshalling
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&profile); err != nil {
		return nil, fmt.Errorf("could not parse profile: %w", err)
	}

	// Manual validation
	if profile.Validity.Days <= 0 {
		return nil, fmt.Errorf("%w: validity.days must be positive", domain.ErrValidation)
	}
	if profile.KeyAlgo == "" {
		profile.KeyAlgo = domain.ECP256
	}
	if profile.HashAlgo == "" {
		profile.HashAlgo = domain.SHA256
	}
	if _, err := profile.HashAlgo.ToCryptoHash(); err != nil {
		return nil, fmt.Errorf("%w: unsupported hash_algorithm %q", domain.ErrValidation, profile.HashAlgo)
	}

	// Every extension block must be buildable
	for i, cfg := range profile.Extensions {
		if _, err := extensions.FromConfig(cfg); err != nil {
			return nil, fmt.Errorf("%w: extensions[%d]: %v", domain.ErrValidation, i, err)
		}
	}

	return &profile, nil
}

// ValidateProfile validates raw profile bytes against the embedded schema.
func (l *YAMLConfigLoader) ValidateProfile(data []byte) error {
	return validateProfileData(data)
}
