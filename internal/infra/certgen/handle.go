package certgen

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"math/big"
	"sync/atomic"
	"time"

	"certkit.dev/certkit/internal/domain"
)

const (
	pemTypeCertificate = "CERTIFICATE"
	pemTypeRequest     = "CERTIFICATE REQUEST"
)

// handleState is the shared underlying object behind owned handles and views.
// The reference count tracks logical owners; when it reaches zero the parsed
// object is dropped and the raw DER is zeroed.
type handleState[T any] struct {
	refs atomic.Int32
	obj  *T
	raw  []byte
}

func newHandleState[T any](obj *T, raw []byte) *handleState[T] {
	s := &handleState[T]{obj: obj, raw: raw}
	s.refs.Store(1)
	return s
}

func (s *handleState[T]) retain() {
	s.refs.Add(1)
}

func (s *handleState[T]) release() {
	if s.refs.Add(-1) == 0 {
		for i := range s.raw {
			s.raw[i] = 0
		}
		s.raw = nil
		s.obj = nil
	}
}

func (s *handleState[T]) native() (*T, error) {
	if s.obj == nil {
		return nil, domain.ErrHandleReleased
	}
	return s.obj, nil
}

// Certificate is an owned handle to a certificate. Each owner must release
// the underlying object exactly once via Close; Clone creates an additional
// owner sharing the same underlying object.
type Certificate struct {
	state  *handleState[x509.Certificate]
	closed atomic.Bool
}

func newCertificate(obj *x509.Certificate, raw []byte) *Certificate {
	return &Certificate{state: newHandleState(obj, raw)}
}

// CertificateFromDER parses a DER-encoded certificate into an owned handle.
func CertificateFromDER(der []byte) (*Certificate, error) {
	obj, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, domain.NewCryptoOperationError("parse certificate DER", err)
	}
	return newCertificate(obj, obj.Raw), nil
}

// CertificateFromPEM parses a PEM-encoded certificate into an owned handle.
func CertificateFromPEM(data []byte) (*Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypeCertificate {
		return nil, domain.NewCryptoOperationError("parse certificate PEM",
			&domain.ConversionError{Field: "pem block", Value: pemTypeCertificate})
	}
	return CertificateFromDER(block.Bytes)
}

// Clone creates a new owner of the same underlying certificate. No deep copy
// is made; the shared reference count is incremented instead.
func (c *Certificate) Clone() (*Certificate, error) {
	if c.closed.Load() {
		return nil, domain.ErrHandleReleased
	}
	c.state.retain()
	return &Certificate{state: c.state}, nil
}

// Close releases this owner's reference. The underlying object is freed when
// the last owner closes. A second Close on the same owner reports
// ErrHandleReleased and has no further effect.
func (c *Certificate) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return domain.ErrHandleReleased
	}
	c.state.release()
	return nil
}

// View returns a non-owning view of the certificate. The view never releases
// the underlying object and must not be used past the life of all owners.
func (c *Certificate) View() *CertificateView {
	return &CertificateView{state: c.state}
}

// CertificateView is a borrowed, read-only view of a certificate.
type CertificateView struct {
	state *handleState[x509.Certificate]
}

func (v *CertificateView) native() (*x509.Certificate, error) {
	return v.state.native()
}

// SubjectName returns a view of the certificate's subject name.
func (v *CertificateView) SubjectName() (*NameView, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return &NameView{entries: obj.Subject.Names}, nil
}

// SerialNumber returns the certificate serial number.
func (v *CertificateView) SerialNumber() (*big.Int, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(obj.SerialNumber), nil
}

// NotBefore returns the start of the validity window.
func (v *CertificateView) NotBefore() (time.Time, error) {
	obj, err := v.native()
	if err != nil {
		return time.Time{}, err
	}
	return obj.NotBefore, nil
}

// NotAfter returns the end of the validity window.
func (v *CertificateView) NotAfter() (time.Time, error) {
	obj, err := v.native()
	if err != nil {
		return time.Time{}, err
	}
	return obj.NotAfter, nil
}

// Fingerprint returns the certificate digest calculated with the given hash.
func (v *CertificateView) Fingerprint(hash domain.HashAlgorithm) ([]byte, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	h, err := hash.ToCryptoHash()
	if err != nil {
		return nil, err
	}
	digest := h.New()
	digest.Write(obj.Raw)
	return digest.Sum(nil), nil
}

// Extensions returns the certificate's encoded extensions.
func (v *CertificateView) Extensions() ([]pkix.Extension, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return obj.Extensions, nil
}

// ToDER returns the certificate in DER encoding.
func (v *CertificateView) ToDER() ([]byte, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(obj.Raw))
	copy(out, obj.Raw)
	return out, nil
}

// ToPEM returns the certificate in PEM encoding, a lossless armoring of the
// DER form.
func (v *CertificateView) ToPEM() ([]byte, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeCertificate, Bytes: obj.Raw}), nil
}

// NameView is a read-only view of a distinguished name.
type NameView struct {
	entries []pkix.AttributeTypeAndValue
}

// TextByOID returns the textual value of the first attribute with the given
// OID. The second return is false when no such attribute exists or its value
// is not text.
func (n *NameView) TextByOID(oid asn1.ObjectIdentifier) (string, bool) {
	for _, entry := range n.entries {
		if entry.Type.Equal(oid) {
			if s, ok := entry.Value.(string); ok {
				return s, true
			}
			return "", false
		}
	}
	return "", false
}

// TextByAttr is TextByOID with a short attribute name ("CN", "O", ...).
func (n *NameView) TextByAttr(attr string) (string, bool) {
	oid, err := attributeOID(attr)
	if err != nil {
		return "", false
	}
	return n.TextByOID(oid)
}

// Attributes returns the name's entries in encoded order.
func (n *NameView) Attributes() []pkix.AttributeTypeAndValue {
	return n.entries
}

// CertificateRequest is an owned handle to a certificate signing request,
// with the same ownership discipline as Certificate.
type CertificateRequest struct {
	state  *handleState[x509.CertificateRequest]
	closed atomic.Bool
}

func newCertificateRequest(obj *x509.CertificateRequest, raw []byte) *CertificateRequest {
	return &CertificateRequest{state: newHandleState(obj, raw)}
}

// RequestFromDER parses a DER-encoded CSR into an owned handle.
func RequestFromDER(der []byte) (*CertificateRequest, error) {
	obj, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, domain.NewCryptoOperationError("parse CSR DER", err)
	}
	return newCertificateRequest(obj, obj.Raw), nil
}

// RequestFromPEM parses a PEM-encoded CSR into an owned handle.
func RequestFromPEM(data []byte) (*CertificateRequest, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypeRequest {
		return nil, domain.NewCryptoOperationError("parse CSR PEM",
			&domain.ConversionError{Field: "pem block", Value: pemTypeRequest})
	}
	return RequestFromDER(block.Bytes)
}

// Clone creates a new owner of the same underlying CSR.
func (r *CertificateRequest) Clone() (*CertificateRequest, error) {
	if r.closed.Load() {
		return nil, domain.ErrHandleReleased
	}
	r.state.retain()
	return &CertificateRequest{state: r.state}, nil
}

// Close releases this owner's reference.
func (r *CertificateRequest) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return domain.ErrHandleReleased
	}
	r.state.release()
	return nil
}

// View returns a non-owning view of the CSR.
func (r *CertificateRequest) View() *RequestView {
	return &RequestView{state: r.state}
}

// RequestView is a borrowed, read-only view of a CSR.
type RequestView struct {
	state *handleState[x509.CertificateRequest]
}

func (v *RequestView) native() (*x509.CertificateRequest, error) {
	return v.state.native()
}

// SubjectName returns a view of the CSR's subject name.
func (v *RequestView) SubjectName() (*NameView, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return &NameView{entries: obj.Subject.Names}, nil
}

// Extensions returns the CSR's requested extensions.
func (v *RequestView) Extensions() ([]pkix.Extension, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return obj.Extensions, nil
}

// ToDER returns the CSR in DER encoding.
func (v *RequestView) ToDER() ([]byte, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(obj.Raw))
	copy(out, obj.Raw)
	return out, nil
}

// ToPEM returns the CSR in PEM encoding.
func (v *RequestView) ToPEM() ([]byte, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeRequest, Bytes: obj.Raw}), nil
}
