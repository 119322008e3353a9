package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/config"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
subject:
  - attr: CN
    value: web.example.com
  - attr: O
    value: Example Org
validity:
  days: 90
key_algorithm: ECP384
hash_algorithm: SHA384
extensions:
  - type: key_usage
    digital_signature: true
    key_encipherment: true
  - type: subject_alt_name
    dns:
      - web.example.com
`)

	loader := config.NewYAMLConfigLoader()
	profile, err := loader.LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}

	if len(profile.Subject) != 2 {
		t.Errorf("len(Subject) = %d, want 2", len(profile.Subject))
	}
	if profile.Subject[0].Type != "CN" || profile.Subject[0].Value != "web.example.com" {
		t.Errorf("Subject[0] = %+v", profile.Subject[0])
	}
	if profile.Validity.Days != 90 {
		t.Errorf("Validity.Days = %d, want 90", profile.Validity.Days)
	}
	if profile.KeyAlgo != domain.ECP384 {
		t.Errorf("KeyAlgo = %q, want ECP384", profile.KeyAlgo)
	}
	if profile.HashAlgo != domain.SHA384 {
		t.Errorf("HashAlgo = %q, want SHA384", profile.HashAlgo)
	}
	if len(profile.Extensions) != 2 {
		t.Fatalf("len(Extensions) = %d, want 2", len(profile.Extensions))
	}
	if profile.Extensions[0].Type != "key_usage" {
		t.Errorf("Extensions[0].Type = %q", profile.Extensions[0].Type)
	}
	if v, ok := profile.Extensions[0].Fields["digital_signature"].(bool); !ok || !v {
		t.Errorf("digital_signature field = %v", profile.Extensions[0].Fields["digital_signature"])
	}
}

func TestLoadProfileDefaults(t *testing.T) {
	path := writeProfile(t, `
validity:
  days: 30
`)

	profile, err := config.NewYAMLConfigLoader().LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if profile.KeyAlgo != domain.ECP256 {
		t.Errorf("default KeyAlgo = %q, want ECP256", profile.KeyAlgo)
	}
	if profile.HashAlgo != domain.SHA256 {
		t.Errorf("default HashAlgo = %q, want SHA256", profile.HashAlgo)
	}
}

func TestLoadProfileRejectsUnknownField(t *testing.T) {
	path := writeProfile(t, `
validity:
  days: 30
surprise: true
`)
	if _, err := config.NewYAMLConfigLoader().LoadProfile(path); err == nil {
		t.Fatal("LoadProfile() accepted an unknown top-level field")
	}
}

func TestLoadProfileRejectsMissingValidity(t *testing.T) {
	path := writeProfile(t, `
subject:
  - attr: CN
    value: example.com
`)
	if _, err := config.NewYAMLConfigLoader().LoadProfile(path); err == nil {
		t.Fatal("LoadProfile() accepted a profile without validity")
	}
}

func TestLoadProfileRejectsBadDays(t *testing.T) {
	path := writeProfile(t, `
validity:
  days: 0
`)
	if _, err := config.NewYAMLConfigLoader().LoadProfile(path); err == nil {
		t.Fatal("LoadProfile() accepted validity.days of 0")
	}
}

func TestLoadProfileRejectsUnknownHash(t *testing.T) {
	path := writeProfile(t, `
validity:
  days: 30
hash_algorithm: MD5
`)
	if _, err := config.NewYAMLConfigLoader().LoadProfile(path); err == nil {
		t.Fatal("LoadProfile() accepted an unknown hash algorithm")
	}
}

func TestLoadProfileRejectsBadExtension(t *testing.T) {
	path := writeProfile(t, `
validity:
  days: 30
extensions:
  - type: raw
    oid: 1.2.3
`)
	_, err := config.NewYAMLConfigLoader().LoadProfile(path)
	if err == nil {
		t.Fatal("LoadProfile() accepted a raw extension without value")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := config.NewYAMLConfigLoader().LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadProfile() succeeded for a missing file")
	}
}

func TestValidateProfileBadYAML(t *testing.T) {
	if err := config.NewYAMLConfigLoader().ValidateProfile([]byte("{{not yaml")); err == nil {
		t.Fatal("ValidateProfile() accepted malformed YAML")
	}
}
