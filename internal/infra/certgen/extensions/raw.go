package extensions

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strconv"
	"strings"

	"certkit.dev/certkit/internal/domain"
)

// Raw is the explicit escape hatch for extensions outside the closed variant
// set, identified by OID and carrying pre-encoded bytes.
type Raw struct {
	OIDString string
	Critical  bool
	Value     []byte

	oid asn1.ObjectIdentifier
}

// NewRaw creates a raw extension from a dotted OID string and encoded value.
func NewRaw(oidStr string, critical bool, value []byte) (*Raw, error) {
	oid, err := parseOIDString(oidStr)
	if err != nil {
		return nil, err
	}
	return &Raw{OIDString: oidStr, Critical: critical, Value: value, oid: oid}, nil
}

func (e *Raw) Type() domain.ExtensionType {
	return domain.ExtensionType{Kind: domain.ExtKindRaw, OID: e.OIDString}
}

// Apply appends the extension verbatim. Raw extensions keep their exact
// insertion order in the encoded certificate.
func (e *Raw) Apply(tpl *x509.Certificate) error {
	tpl.ExtraExtensions = append(tpl.ExtraExtensions, pkix.Extension{
		Id:       e.oid,
		Critical: e.Critical,
		Value:    e.Value,
	})
	return nil
}

func parseOIDString(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid OID %q: need at least two arcs", s)
	}
	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid OID %q: bad arc %q", s, part)
		}
		oid[i] = n
	}
	return oid, nil
}
