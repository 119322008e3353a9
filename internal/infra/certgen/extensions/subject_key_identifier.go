package extensions

import (
	"crypto/x509"

	"certkit.dev/certkit/internal/domain"
)

// SubjectKeyIdentifier implements the X.509 Subject Key Identifier extension
// (RFC 5280 §4.2.1.2).
type SubjectKeyIdentifier struct {
	// ID is an explicit identifier. When nil, the identifier is derived
	// from the public key hash during certificate creation.
	ID []byte
}

func (e SubjectKeyIdentifier) Type() domain.ExtensionType {
	return domain.ExtensionType{Kind: domain.ExtKindSubjectKeyIdentifier}
}

// Apply sets the subject key identifier on the template. With no explicit
// ID the x509 layer computes one from the public key at signing time.
func (e SubjectKeyIdentifier) Apply(tpl *x509.Certificate) error {
	if e.ID != nil {
		tpl.SubjectKeyId = e.ID
	}
	return nil
}
