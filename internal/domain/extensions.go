package domain

import "crypto/x509"

// ExtensionKind enumerates the closed set of supported extension variants.
type ExtensionKind int

const (
	ExtKindKeyUsage ExtensionKind = iota + 1
	ExtKindExtendedKeyUsage
	ExtKindBasicConstraints
	ExtKindSubjectAltName
	ExtKindSubjectKeyIdentifier
	ExtKindRaw
)

// ExtensionType identifies an extension variant and serves as the uniqueness
// key within an extension set. Raw extensions of different OIDs are distinct
// types; all other variants are keyed by kind alone.
type ExtensionType struct {
	Kind ExtensionKind
	OID  string // set only for ExtKindRaw
}

// Extension is a certificate extension that knows how to apply itself to an
// x509.Certificate template during signing.
type Extension interface {
	// Type returns the uniqueness key for this extension.
	Type() ExtensionType

	// Apply writes the extension into the certificate template.
	Apply(tpl *x509.Certificate) error
}

// ExtensionConfig is a raw extension block from an issue profile. Fields not
// named here are interpreted by the matching extension implementation.
type ExtensionConfig struct {
	Type     string         `yaml:"type"`
	Critical bool           `yaml:"critical"`
	Fields   map[string]any `yaml:",inline"`
}
