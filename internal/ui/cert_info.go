package ui

import (
	"crypto/x509/pkix"
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/certgen"
	"certkit.dev/certkit/internal/localedate"
)

// attributeNames maps common distinguished-name OIDs back to display names.
var attributeNames = map[string]string{
	"2.5.4.3":                    "CN",
	"2.5.4.4":                    "SN",
	"2.5.4.5":                    "serialNumber",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "STREET",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"2.5.4.12":                   "T",
	"1.2.840.113549.1.9.1":       "emailAddress",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
}

// RenderCertificate produces a human-readable summary of a certificate view.
func RenderCertificate(v *certgen.CertificateView) (string, error) {
	locale := localedate.GetUserLocaleTag().String()

	serial, err := v.SerialNumber()
	if err != nil {
		return "", err
	}
	notBefore, err := v.NotBefore()
	if err != nil {
		return "", err
	}
	notAfter, err := v.NotAfter()
	if err != nil {
		return "", err
	}
	name, err := v.SubjectName()
	if err != nil {
		return "", err
	}
	fingerprint, err := v.Fingerprint(domain.SHA256)
	if err != nil {
		return "", err
	}
	sans, err := v.SubjectAltNames()
	if err != nil {
		return "", err
	}
	exts, err := v.Extensions()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(bold("Certificate:") + "\n")
	b.WriteString(fmt.Sprintf("    Subject: %s\n", formatName(name.Attributes())))
	b.WriteString(fmt.Sprintf("    Serial Number: %s\n", serial))
	b.WriteString("    Validity:\n")
	b.WriteString(fmt.Sprintf("        Not Before: %s\n", localedate.FormatDateTime(locale, notBefore)))
	b.WriteString(fmt.Sprintf("        Not After : %s\n", localedate.FormatDateTime(locale, notAfter)))
	if sans != nil {
		b.WriteString("    Subject Alternative Names:\n")
		for entry := range sans.All() {
			if dns, ok := entry.DNSName(); ok {
				b.WriteString(fmt.Sprintf("        DNS: %s\n", dns))
			} else if ip, ok := entry.IPAddress(); ok {
				b.WriteString(fmt.Sprintf("        IP Address: %s\n", net.IP(ip)))
			}
		}
	}
	b.WriteString(fmt.Sprintf("    Extensions: %d\n", len(exts)))
	b.WriteString(fmt.Sprintf("    SHA-256 Fingerprint: %s\n", hex.EncodeToString(fingerprint)))
	return b.String(), nil
}

// RenderRequest produces a human-readable summary of a CSR view.
func RenderRequest(v *certgen.RequestView) (string, error) {
	name, err := v.SubjectName()
	if err != nil {
		return "", err
	}
	exts, err := v.Extensions()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(bold("Certificate Request:") + "\n")
	b.WriteString(fmt.Sprintf("    Subject: %s\n", formatName(name.Attributes())))
	b.WriteString(fmt.Sprintf("    Requested Extensions: %d\n", len(exts)))
	return b.String(), nil
}

func formatName(attrs []pkix.AttributeTypeAndValue) string {
	if len(attrs) == 0 {
		return "<empty>"
	}
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		label := attributeNames[attr.Type.String()]
		if label == "" {
			label = attr.Type.String()
		}
		parts = append(parts, fmt.Sprintf("%s=%v", label, attr.Value))
	}
	return strings.Join(parts, ", ")
}
