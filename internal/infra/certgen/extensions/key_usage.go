package extensions

import (
	"crypto/x509"

	"certkit.dev/certkit/internal/domain"
)

// KeyUsage implements the X.509 Key Usage extension (RFC 5280 §4.2.1.3).
type KeyUsage struct {
	DigitalSignature  bool
	ContentCommitment bool
	KeyEncipherment   bool
	DataEncipherment  bool
	KeyAgreement      bool
	KeyCertSign       bool
	CRLSign           bool
	EncipherOnly      bool
	DecipherOnly      bool
}

func (e KeyUsage) Type() domain.ExtensionType {
	return domain.ExtensionType{Kind: domain.ExtKindKeyUsage}
}

// Apply sets the key usage bits on the certificate template.
func (e KeyUsage) Apply(tpl *x509.Certificate) error {
	var usage x509.KeyUsage
	if e.DigitalSignature {
		usage |= x509.KeyUsageDigitalSignature
	}
	if e.ContentCommitment {
		usage |= x509.KeyUsageContentCommitment
	}
	if e.KeyEncipherment {
		usage |= x509.KeyUsageKeyEncipherment
	}
	if e.DataEncipherment {
		usage |= x509.KeyUsageDataEncipherment
	}
	if e.KeyAgreement {
		usage |= x509.KeyUsageKeyAgreement
	}
	if e.KeyCertSign {
		usage |= x509.KeyUsageCertSign
	}
	if e.CRLSign {
		usage |= x509.KeyUsageCRLSign
	}
	if e.EncipherOnly {
		usage |= x509.KeyUsageEncipherOnly
	}
	if e.DecipherOnly {
		usage |= x509.KeyUsageDecipherOnly
	}
	tpl.KeyUsage = usage
	return nil
}
