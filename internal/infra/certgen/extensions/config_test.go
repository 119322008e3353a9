package extensions_test

import (
	"crypto/x509"
	"strings"
	"testing"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/certgen/extensions"
)

func TestFromConfigKeyUsage(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type: "key_usage",
		Fields: map[string]any{
			"digital_signature": true,
			"key_encipherment":  true,
		},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	tpl := &x509.Certificate{}
	if err := ext.Apply(tpl); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment
	if tpl.KeyUsage != want {
		t.Errorf("KeyUsage = %v, want %v", tpl.KeyUsage, want)
	}
}

func TestFromConfigExtendedKeyUsage(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type: "extended_key_usage",
		Fields: map[string]any{
			"server_auth": true,
			"client_auth": true,
		},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	tpl := &x509.Certificate{}
	if err := ext.Apply(tpl); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(tpl.ExtKeyUsage) != 2 {
		t.Errorf("len(ExtKeyUsage) = %d, want 2", len(tpl.ExtKeyUsage))
	}
}

func TestFromConfigBasicConstraints(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type: "basic_constraints",
		Fields: map[string]any{
			"ca":          true,
			"path_length": 0,
		},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	tpl := &x509.Certificate{}
	if err := ext.Apply(tpl); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !tpl.IsCA || !tpl.BasicConstraintsValid {
		t.Errorf("IsCA = %v, BasicConstraintsValid = %v, want both true", tpl.IsCA, tpl.BasicConstraintsValid)
	}
	if !tpl.MaxPathLenZero {
		t.Error("MaxPathLenZero = false for an explicit path_length of 0")
	}
}

func TestFromConfigBasicConstraintsNoPathLength(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type:   "basic_constraints",
		Fields: map[string]any{"ca": true},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	tpl := &x509.Certificate{}
	if err := ext.Apply(tpl); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if tpl.MaxPathLenZero {
		t.Error("MaxPathLenZero = true without an explicit path_length")
	}
}

func TestFromConfigSubjectAltName(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type: "subject_alt_name",
		Fields: map[string]any{
			"dns": []any{"example.com", "www.example.com"},
			"ip":  []any{"10.0.0.1"},
		},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	tpl := &x509.Certificate{}
	if err := ext.Apply(tpl); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(tpl.DNSNames) != 2 || len(tpl.IPAddresses) != 1 {
		t.Errorf("DNSNames = %v, IPAddresses = %v", tpl.DNSNames, tpl.IPAddresses)
	}
}

func TestFromConfigSubjectAltNameInvalidIP(t *testing.T) {
	_, err := extensions.FromConfig(domain.ExtensionConfig{
		Type:   "subject_alt_name",
		Fields: map[string]any{"ip": []any{"not-an-ip"}},
	})
	if err == nil {
		t.Fatal("FromConfig() accepted an invalid IP address")
	}
}

func TestFromConfigSubjectAltNameEmpty(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type:   "subject_alt_name",
		Fields: map[string]any{},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if err := ext.Apply(&x509.Certificate{}); err == nil {
		t.Error("Apply() accepted a SAN extension without entries")
	}
}

func TestFromConfigRaw(t *testing.T) {
	ext, err := extensions.FromConfig(domain.ExtensionConfig{
		Type:     "raw",
		Critical: true,
		Fields: map[string]any{
			"oid":   "1.3.6.1.4.1.99999.1",
			"value": "hex:3003020105",
		},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	tpl := &x509.Certificate{}
	if err := ext.Apply(tpl); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(tpl.ExtraExtensions) != 1 {
		t.Fatalf("len(ExtraExtensions) = %d, want 1", len(tpl.ExtraExtensions))
	}
	got := tpl.ExtraExtensions[0]
	if got.Id.String() != "1.3.6.1.4.1.99999.1" || !got.Critical {
		t.Errorf("ExtraExtensions[0] = %+v", got)
	}
}

func TestFromConfigRawMissingFields(t *testing.T) {
	_, err := extensions.FromConfig(domain.ExtensionConfig{
		Type:   "raw",
		Fields: map[string]any{"oid": "1.2.3"},
	})
	if err == nil || !strings.Contains(err.Error(), "value") {
		t.Errorf("FromConfig() error = %v, want missing 'value' field error", err)
	}
}

func TestFromConfigRawBadEncoding(t *testing.T) {
	_, err := extensions.FromConfig(domain.ExtensionConfig{
		Type: "raw",
		Fields: map[string]any{
			"oid":   "1.2.3",
			"value": "plain text",
		},
	})
	if err == nil {
		t.Fatal("FromConfig() accepted a value without hex:/base64: prefix")
	}
}

func TestFromConfigUnknownType(t *testing.T) {
	_, err := extensions.FromConfig(domain.ExtensionConfig{Type: "name_constraints"})
	if err == nil {
		t.Fatal("FromConfig() accepted an unknown extension type")
	}
}
