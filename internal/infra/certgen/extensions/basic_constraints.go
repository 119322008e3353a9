package extensions

import (
	"crypto/x509"

	"certkit.dev/certkit/internal/domain"
)

// BasicConstraints implements the X.509 Basic Constraints extension
// (RFC 5280 §4.2.1.9).
type BasicConstraints struct {
	CA bool
	// PathLength limits the number of intermediate CAs below this one.
	// nil means no constraint; an explicit zero is encoded as such.
	PathLength *int
}

func (e BasicConstraints) Type() domain.ExtensionType {
	return domain.ExtensionType{Kind: domain.ExtKindBasicConstraints}
}

// Apply sets the CA flag and path length constraint on the template.
func (e BasicConstraints) Apply(tpl *x509.Certificate) error {
	tpl.IsCA = e.CA
	tpl.BasicConstraintsValid = true
	if e.PathLength != nil {
		tpl.MaxPathLen = *e.PathLength
		tpl.MaxPathLenZero = *e.PathLength == 0
	}
	return nil
}
