package certgen

import (
	"encoding/asn1"
	"fmt"
	"iter"
	"unicode/utf8"

	"certkit.dev/certkit/internal/domain"
)

// oidExtensionSubjectAltName is the SAN extension OID (RFC 5280 §4.2.1.6).
var oidExtensionSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// GeneralName entry tags from RFC 5280 page 36.
const (
	tagGeneralNameDNS = 2
	tagGeneralNameIP  = 7
)

// GeneralNameTag classifies a SAN entry. Entries with tags this package does
// not expose accessors for are reported as GeneralNameOther rather than
// dropped.
type GeneralNameTag int

const (
	GeneralNameOther GeneralNameTag = iota
	GeneralNameDNS
	GeneralNameIP
)

// GeneralName is one entry of a certificate's SAN extension.
type GeneralName struct {
	tag  int
	data []byte
}

// Tag returns the entry's classification.
func (n GeneralName) Tag() GeneralNameTag {
	switch n.tag {
	case tagGeneralNameDNS:
		return GeneralNameDNS
	case tagGeneralNameIP:
		return GeneralNameIP
	default:
		return GeneralNameOther
	}
}

// DNSName returns the entry's text when it is a dNSName. dNSNames are stated
// to be IA5 (ASCII), but upstream data is not guaranteed valid text, so
// entries that do not decode cleanly report false instead of garbage.
func (n GeneralName) DNSName() (string, bool) {
	if n.tag != tagGeneralNameDNS || !utf8.Valid(n.data) {
		return "", false
	}
	return string(n.data), true
}

// IPAddress returns the entry's raw address bytes when it is an iPAddress.
// The length distinguishes v4 from v6; no further validation is applied.
func (n GeneralName) IPAddress() ([]byte, bool) {
	if n.tag != tagGeneralNameIP {
		return nil, false
	}
	return n.data, true
}

// GeneralNames is the decoded SAN entry list of one certificate.
type GeneralNames struct {
	entries []GeneralName
}

// Len returns the number of SAN entries.
func (g *GeneralNames) Len() int {
	return len(g.entries)
}

// Get returns the entry at index i. It panics when i >= Len; out-of-range
// access is a programming error, not a recoverable condition.
func (g *GeneralNames) Get(i int) GeneralName {
	if i < 0 || i >= len(g.entries) {
		panic(fmt.Sprintf("certgen: general name index %d out of range [0:%d]", i, len(g.entries)))
	}
	return g.entries[i]
}

// All iterates over the entries in encoded order. The sequence is finite and
// restartable.
func (g *GeneralNames) All() iter.Seq[GeneralName] {
	return func(yield func(GeneralName) bool) {
		for _, entry := range g.entries {
			if !yield(entry) {
				return
			}
		}
	}
}

// SubjectAltNames returns the certificate's decoded SAN entries, or nil when
// the certificate carries no SAN extension.
func (v *CertificateView) SubjectAltNames() (*GeneralNames, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	for _, ext := range obj.Extensions {
		if ext.Id.Equal(oidExtensionSubjectAltName) {
			return parseGeneralNames(ext.Value)
		}
	}
	return nil, nil
}

// parseGeneralNames walks the SAN extension value:
//
//	SubjectAltName ::= GeneralNames
//	GeneralNames ::= SEQUENCE SIZE (1..MAX) OF GeneralName
//
// Each GeneralName is a context-tagged value; the tag selects the variant.
func parseGeneralNames(value []byte) (*GeneralNames, error) {
	var seq asn1.RawValue
	rest, err := asn1.Unmarshal(value, &seq)
	if err != nil {
		return nil, domain.NewCryptoOperationError("parse SAN extension", err)
	}
	if len(rest) != 0 || !seq.IsCompound || seq.Tag != asn1.TagSequence || seq.Class != asn1.ClassUniversal {
		return nil, domain.NewCryptoOperationError("parse SAN extension",
			&domain.ConversionError{Field: "subjectAltName", Value: "not a GeneralNames sequence"})
	}

	names := &GeneralNames{}
	for data := seq.Bytes; len(data) > 0; {
		var entry asn1.RawValue
		data, err = asn1.Unmarshal(data, &entry)
		if err != nil {
			return nil, domain.NewCryptoOperationError("parse SAN entry", err)
		}
		names.entries = append(names.entries, GeneralName{tag: entry.Tag, data: entry.Bytes})
	}
	return names, nil
}
