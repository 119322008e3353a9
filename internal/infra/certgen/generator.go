package certgen

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/clock"
	"certkit.dev/certkit/internal/infra/sysrand"
)

// defaultValidityDays is the validity window applied when none is set.
const defaultValidityDays = 365

// Generator builds self-signed certificates and CSRs. It is an immutable
// builder: every With method returns an updated copy, the receiver is never
// modified, and a Generator value may be reused and signed repeatedly.
type Generator struct {
	days  int
	names []domain.NameAttribute
	exts  Set
	hash  domain.HashAlgorithm
	clock domain.Clock
	rand  domain.RandomSource
}

// NewGenerator creates a generator with defaults: 365 day validity, no name
// attributes (a default CN is substituted at signing time), no extensions,
// SHA-256 signing hash.
func NewGenerator() Generator {
	return Generator{
		days:  defaultValidityDays,
		hash:  domain.SHA256,
		clock: clock.NewService(),
		rand:  sysrand.NewSource(),
	}
}

// WithValidityDays sets the certificate validity period in days from signing.
func (g Generator) WithValidityDays(days int) Generator {
	g.days = days
	return g
}

// WithName appends one attribute to the certificate name.
func (g Generator) WithName(attr, value string) Generator {
	return g.WithNames(domain.NameAttribute{Type: attr, Value: value})
}

// WithNames appends attributes to the certificate name in the given order.
func (g Generator) WithNames(attrs ...domain.NameAttribute) Generator {
	names := make([]domain.NameAttribute, 0, len(g.names)+len(attrs))
	names = append(names, g.names...)
	names = append(names, attrs...)
	g.names = names
	return g
}

// WithExtension adds an extension, replacing any existing one of the same
// type in place.
func (g Generator) WithExtension(ext domain.Extension) Generator {
	return g.WithExtensions(ext)
}

// WithExtensions adds extensions in order, each replacing any existing
// extension of its type in place.
func (g Generator) WithExtensions(exts ...domain.Extension) Generator {
	set := g.exts.Clone()
	for _, ext := range exts {
		set.Add(ext)
	}
	g.exts = set
	return g
}

// WithSignHash sets the hash used for signing.
func (g Generator) WithSignHash(hash domain.HashAlgorithm) Generator {
	g.hash = hash
	return g
}

// WithClock substitutes the time source. Intended for tests.
func (g Generator) WithClock(c domain.Clock) Generator {
	g.clock = c
	return g
}

// WithRandom substitutes the random-byte source. Intended for tests.
func (g Generator) WithRandom(r domain.RandomSource) Generator {
	g.rand = r
	return g
}

// Sign assembles a version 3 certificate from the builder state, self-signs
// it with key, and returns an owned handle. Any failing step aborts the whole
// operation; no partial certificate is ever returned.
func (g Generator) Sign(key crypto.Signer) (*Certificate, error) {
	fail := func(step string, err error) (*Certificate, error) {
		return nil, domain.NewCryptoOperationError("self-sign certificate",
			fmt.Errorf("%s: %w", step, err))
	}

	serial, err := NewSerialSource(g.rand).Random()
	if err != nil {
		return fail("generate serial", err)
	}

	sigAlg, err := signatureAlgorithmFor(key, g.hash)
	if err != nil {
		return fail("select signature algorithm", err)
	}

	subject, err := subjectName(g.names)
	if err != nil {
		return fail("build subject name", err)
	}

	notBefore := g.clock.Now().UTC()
	tpl := &x509.Certificate{
		SerialNumber:       big.NewInt(serial),
		Subject:            subject,
		NotBefore:          notBefore,
		NotAfter:           notBefore.AddDate(0, 0, g.days),
		SignatureAlgorithm: sigAlg,
	}

	for extType, ext := range g.exts.All() {
		if err := ext.Apply(tpl); err != nil {
			return fail(fmt.Sprintf("apply extension (kind %d)", extType.Kind), err)
		}
	}

	// Template doubles as parent: issuer name equals subject name.
	der, err := x509.CreateCertificate(randReader{g.rand}, tpl, tpl, key.Public(), key)
	if err != nil {
		return fail("sign", err)
	}

	obj, err := x509.ParseCertificate(der)
	if err != nil {
		return fail("reparse", err)
	}
	return newCertificate(obj, obj.Raw), nil
}

// Request runs the full Sign workflow, converts the resulting certificate
// into a CSR carrying the certificate's extensions as requested extensions,
// and signs the CSR with the same key and hash. A failing inner Sign
// propagates unchanged.
func (g Generator) Request(key crypto.Signer) (*CertificateRequest, error) {
	cert, err := g.Sign(key)
	if err != nil {
		return nil, err
	}
	defer cert.Close()

	fail := func(step string, err error) (*CertificateRequest, error) {
		return nil, domain.NewCryptoOperationError("create CSR",
			fmt.Errorf("%s: %w", step, err))
	}

	obj, err := cert.View().native()
	if err != nil {
		return fail("borrow certificate", err)
	}

	tpl := &x509.CertificateRequest{
		RawSubject:         obj.RawSubject,
		SignatureAlgorithm: obj.SignatureAlgorithm,
	}
	if len(obj.Extensions) > 0 {
		tpl.ExtraExtensions = obj.Extensions
	}

	der, err := x509.CreateCertificateRequest(randReader{g.rand}, tpl, key)
	if err != nil {
		return fail("sign request", err)
	}

	req, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return fail("reparse", err)
	}
	return newCertificateRequest(req, req.Raw), nil
}

// signatureAlgorithmFor combines the key type and hash selection into an
// x509 signature algorithm. Ed25519 has a fixed internal hash; the selector
// is ignored for it.
func signatureAlgorithmFor(key crypto.Signer, hash domain.HashAlgorithm) (x509.SignatureAlgorithm, error) {
	switch key.Public().(type) {
	case *rsa.PublicKey:
		switch hash {
		case domain.SHA256:
			return x509.SHA256WithRSA, nil
		case domain.SHA384:
			return x509.SHA384WithRSA, nil
		case domain.SHA512:
			return x509.SHA512WithRSA, nil
		}
	case *ecdsa.PublicKey:
		switch hash {
		case domain.SHA256:
			return x509.ECDSAWithSHA256, nil
		case domain.SHA384:
			return x509.ECDSAWithSHA384, nil
		case domain.SHA512:
			return x509.ECDSAWithSHA512, nil
		}
	case ed25519.PublicKey:
		return x509.PureEd25519, nil
	default:
		return 0, fmt.Errorf("unsupported key type: %T", key.Public())
	}
	return 0, x509.ErrUnsupportedAlgorithm
}

// randReader adapts a domain.RandomSource to io.Reader for crypto/x509.
type randReader struct {
	src domain.RandomSource
}

func (r randReader) Read(p []byte) (int, error) {
	if err := r.src.Fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
