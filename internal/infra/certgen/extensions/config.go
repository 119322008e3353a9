package extensions

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net"
	"net/url"
	"strings"

	"certkit.dev/certkit/internal/domain"
)

// FromConfig builds the extension described by a profile block.
func FromConfig(cfg domain.ExtensionConfig) (domain.Extension, error) {
	switch cfg.Type {
	case "key_usage":
		return KeyUsage{
			DigitalSignature:  parseFieldAs(cfg.Fields, "digital_signature", false),
			ContentCommitment: parseFieldAs(cfg.Fields, "content_commitment", false),
			KeyEncipherment:   parseFieldAs(cfg.Fields, "key_encipherment", false),
			DataEncipherment:  parseFieldAs(cfg.Fields, "data_encipherment", false),
			KeyAgreement:      parseFieldAs(cfg.Fields, "key_agreement", false),
			KeyCertSign:       parseFieldAs(cfg.Fields, "key_cert_sign", false),
			CRLSign:           parseFieldAs(cfg.Fields, "crl_sign", false),
			EncipherOnly:      parseFieldAs(cfg.Fields, "encipher_only", false),
			DecipherOnly:      parseFieldAs(cfg.Fields, "decipher_only", false),
		}, nil

	case "extended_key_usage":
		return ExtendedKeyUsage{
			ServerAuth:      parseFieldAs(cfg.Fields, "server_auth", false),
			ClientAuth:      parseFieldAs(cfg.Fields, "client_auth", false),
			CodeSigning:     parseFieldAs(cfg.Fields, "code_signing", false),
			EmailProtection: parseFieldAs(cfg.Fields, "email_protection", false),
			TimeStamping:    parseFieldAs(cfg.Fields, "time_stamping", false),
			OCSPSigning:     parseFieldAs(cfg.Fields, "ocsp_signing", false),
		}, nil

	case "basic_constraints":
		return BasicConstraints{
			CA:         parseFieldAs(cfg.Fields, "ca", false),
			PathLength: parseFieldAsPtr[int](cfg.Fields, "path_length"),
		}, nil

	case "subject_alt_name":
		san := SubjectAltName{
			DNS:   parseStringSlice(cfg.Fields, "dns"),
			Email: parseStringSlice(cfg.Fields, "email"),
		}
		for _, ipStr := range parseStringSlice(cfg.Fields, "ip") {
			ip := net.ParseIP(ipStr)
			if ip == nil {
				return nil, fmt.Errorf("subject_alt_name: invalid IP address %q", ipStr)
			}
			san.IP = append(san.IP, ip)
		}
		for _, uriStr := range parseStringSlice(cfg.Fields, "uri") {
			uri, err := url.Parse(uriStr)
			if err != nil {
				return nil, fmt.Errorf("subject_alt_name: invalid URI %q: %w", uriStr, err)
			}
			san.URI = append(san.URI, uri)
		}
		return san, nil

	case "subject_key_identifier":
		ext := SubjectKeyIdentifier{}
		if val, exists := cfg.Fields["id"]; exists {
			valStr, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("subject_key_identifier: id must be a string")
			}
			id, err := parseEncodedValue(valStr)
			if err != nil {
				return nil, fmt.Errorf("subject_key_identifier: %w", err)
			}
			ext.ID = id
		}
		return ext, nil

	case "raw":
		if err := validateRequiredField(cfg.Fields, "oid"); err != nil {
			return nil, err
		}
		if err := validateRequiredField(cfg.Fields, "value"); err != nil {
			return nil, err
		}
		oidStr, ok := cfg.Fields["oid"].(string)
		if !ok {
			return nil, fmt.Errorf("raw: oid must be a string")
		}
		valStr, ok := cfg.Fields["value"].(string)
		if !ok {
			return nil, fmt.Errorf("raw: value must be a string")
		}
		value, err := parseEncodedValue(valStr)
		if err != nil {
			return nil, fmt.Errorf("raw: %w", err)
		}
		return NewRaw(oidStr, cfg.Critical, value)

	default:
		return nil, fmt.Errorf("unknown extension type: %s", cfg.Type)
	}
}

// parseEncodedValue decodes "hex:..." or "base64:..." prefixed values.
func parseEncodedValue(valueStr string) ([]byte, error) {
	switch {
	case strings.HasPrefix(valueStr, "hex:"):
		return hex.DecodeString(strings.TrimPrefix(valueStr, "hex:"))
	case strings.HasPrefix(valueStr, "base64:"):
		return base64.StdEncoding.DecodeString(strings.TrimPrefix(valueStr, "base64:"))
	default:
		return nil, fmt.Errorf("value must be prefixed with 'hex:' or 'base64:'")
	}
}

// parseFieldAs provides type-safe field parsing for extension blocks.
func parseFieldAs[T any](data map[string]any, key string, defaultValue T) T {
	if val, exists := data[key]; exists {
		if typed, ok := val.(T); ok {
			return typed
		}
	}
	return defaultValue
}

// parseFieldAsPtr returns a pointer to the parsed value or nil if not present.
func parseFieldAsPtr[T any](data map[string]any, key string) *T {
	if val, exists := data[key]; exists {
		if typed, ok := val.(T); ok {
			return &typed
		}
	}
	return nil
}

// parseStringSlice parses a field as a slice of strings.
func parseStringSlice(data map[string]any, key string) []string {
	if val, exists := data[key]; exists {
		if slice, ok := val.([]any); ok {
			result := make([]string, 0, len(slice))
			for _, item := range slice {
				if str, ok := item.(string); ok {
					result = append(result, str)
				}
			}
			return result
		}
	}
	return nil
}

// validateRequiredField checks that a required field exists.
func validateRequiredField(data map[string]any, field string) error {
	if _, exists := data[field]; !exists {
		return fmt.Errorf("required field '%s' is missing", field)
	}
	return nil
}
