package extensions

import (
	"crypto/x509"
	"fmt"
	"net"
	"net/url"

	"certkit.dev/certkit/internal/domain"
)

// SubjectAltName implements the X.509 Subject Alternative Name extension
// (RFC 5280 §4.2.1.6).
type SubjectAltName struct {
	DNS   []string
	IP    []net.IP
	Email []string
	URI   []*url.URL
}

func (e SubjectAltName) Type() domain.ExtensionType {
	return domain.ExtensionType{Kind: domain.ExtKindSubjectAltName}
}

// Apply sets the SAN entries on the certificate template.
func (e SubjectAltName) Apply(tpl *x509.Certificate) error {
	if len(e.DNS) == 0 && len(e.IP) == 0 && len(e.Email) == 0 && len(e.URI) == 0 {
		return fmt.Errorf("subject_alt_name requires at least one entry")
	}
	tpl.DNSNames = e.DNS
	tpl.IPAddresses = e.IP
	tpl.EmailAddresses = e.Email
	tpl.URIs = e.URI
	return nil
}
