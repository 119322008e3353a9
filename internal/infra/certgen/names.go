package certgen

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"strconv"
	"strings"

	"certkit.dev/certkit/internal/domain"
)

// defaultCommonName is used when a generator is signed without any name
// attributes.
const defaultCommonName = "certkit"

// attributeOIDs maps short distinguished-name attribute names to their OIDs.
var attributeOIDs = map[string]asn1.ObjectIdentifier{
	"CN":           {2, 5, 4, 3},
	"SN":           {2, 5, 4, 4},
	"serialNumber": {2, 5, 4, 5},
	"C":            {2, 5, 4, 6},
	"L":            {2, 5, 4, 7},
	"ST":           {2, 5, 4, 8},
	"STREET":       {2, 5, 4, 9},
	"O":            {2, 5, 4, 10},
	"OU":           {2, 5, 4, 11},
	"T":            {2, 5, 4, 12},
	"GN":           {2, 5, 4, 42},
	"emailAddress": {1, 2, 840, 113549, 1, 9, 1},
	"UID":          {0, 9, 2342, 19200300, 100, 1, 1},
	"DC":           {0, 9, 2342, 19200300, 100, 1, 25},
}

// attributeOID resolves attr to an OID: either a known short name or a
// dotted numeric OID string.
func attributeOID(attr string) (asn1.ObjectIdentifier, error) {
	if oid, ok := attributeOIDs[attr]; ok {
		return oid, nil
	}
	if oid, err := parseDottedOID(attr); err == nil {
		return oid, nil
	}
	return nil, &domain.ConversionError{Field: "name attribute", Value: attr}
}

func parseDottedOID(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, &domain.ConversionError{Field: "oid", Value: s}
	}
	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, &domain.ConversionError{Field: "oid", Value: s}
		}
		oid[i] = n
	}
	return oid, nil
}

// subjectName builds an ordered subject from attrs. Attributes end up in the
// encoded name exactly in the order supplied. An empty attribute list falls
// back to a single default CN entry.
func subjectName(attrs []domain.NameAttribute) (pkix.Name, error) {
	if len(attrs) == 0 {
		attrs = []domain.NameAttribute{{Type: "CN", Value: defaultCommonName}}
	}
	var name pkix.Name
	for _, attr := range attrs {
		oid, err := attributeOID(attr.Type)
		if err != nil {
			return pkix.Name{}, err
		}
		name.ExtraNames = append(name.ExtraNames, pkix.AttributeTypeAndValue{
			Type:  oid,
			Value: attr.Value,
		})
	}
	return name, nil
}
