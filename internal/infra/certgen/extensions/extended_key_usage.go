package extensions

import (
	"crypto/x509"

	"certkit.dev/certkit/internal/domain"
)

// ExtendedKeyUsage implements the X.509 Extended Key Usage extension
// (RFC 5280 §4.2.1.12).
type ExtendedKeyUsage struct {
	ServerAuth      bool
	ClientAuth      bool
	CodeSigning     bool
	EmailProtection bool
	TimeStamping    bool
	OCSPSigning     bool
}

func (e ExtendedKeyUsage) Type() domain.ExtensionType {
	return domain.ExtensionType{Kind: domain.ExtKindExtendedKeyUsage}
}

// Apply sets the extended key usage list on the certificate template.
func (e ExtendedKeyUsage) Apply(tpl *x509.Certificate) error {
	var usages []x509.ExtKeyUsage
	if e.ServerAuth {
		usages = append(usages, x509.ExtKeyUsageServerAuth)
	}
	if e.ClientAuth {
		usages = append(usages, x509.ExtKeyUsageClientAuth)
	}
	if e.CodeSigning {
		usages = append(usages, x509.ExtKeyUsageCodeSigning)
	}
	if e.EmailProtection {
		usages = append(usages, x509.ExtKeyUsageEmailProtection)
	}
	if e.TimeStamping {
		usages = append(usages, x509.ExtKeyUsageTimeStamping)
	}
	if e.OCSPSigning {
		usages = append(usages, x509.ExtKeyUsageOCSPSigning)
	}
	tpl.ExtKeyUsage = usages
	return nil
}
