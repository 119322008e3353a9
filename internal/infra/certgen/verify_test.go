package certgen_test

import (
	"crypto/x509"
	"testing"
	"time"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/certgen"
	"certkit.dev/certkit/internal/infra/certgen/extensions"
)

func selfSigned(t *testing.T, gen certgen.Generator) (*certgen.Certificate, *x509.CertPool) {
	t.Helper()
	cert, err := gen.Sign(testKey(t))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	t.Cleanup(func() { cert.Close() })

	pemData, err := cert.View().ToPEM()
	if err != nil {
		t.Fatalf("ToPEM() error = %v", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemData) {
		t.Fatal("AppendCertsFromPEM failed")
	}
	return cert, pool
}

func TestVerifySelfSignedOK(t *testing.T) {
	cert, pool := selfSigned(t, certgen.NewGenerator().WithName("CN", "example.com"))

	result, err := cert.View().Verify(x509.VerifyOptions{
		Roots:     pool,
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if result != nil {
		t.Errorf("Verify() = %v, want nil for a trusted self-signed certificate", result)
	}
}

func TestVerifyExpired(t *testing.T) {
	issued := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := certgen.NewGenerator().
		WithClock(fixedClock{t: issued}).
		WithValidityDays(30)
	cert, pool := selfSigned(t, gen)

	result, err := cert.View().Verify(x509.VerifyOptions{
		Roots:       pool,
		CurrentTime: issued.AddDate(1, 0, 0),
		KeyUsages:   []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if result == nil {
		t.Fatal("Verify() = nil for an expired certificate")
	}
	if result.Raw() != domain.VerifyErrCertHasExpired {
		t.Errorf("Raw() = %d, want %d (certificate has expired)", result.Raw(), domain.VerifyErrCertHasExpired)
	}
}

func TestVerifyNotYetValid(t *testing.T) {
	issued := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := certgen.NewGenerator().WithClock(fixedClock{t: issued})
	cert, pool := selfSigned(t, gen)

	result, err := cert.View().Verify(x509.VerifyOptions{
		Roots:       pool,
		CurrentTime: issued.AddDate(-1, 0, 0),
		KeyUsages:   []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if result == nil {
		t.Fatal("Verify() = nil for a not-yet-valid certificate")
	}
	if result.Raw() != domain.VerifyErrCertNotYetValid {
		t.Errorf("Raw() = %d, want %d (certificate is not yet valid)", result.Raw(), domain.VerifyErrCertNotYetValid)
	}
}

func TestVerifyUntrustedSelfSigned(t *testing.T) {
	cert, _ := selfSigned(t, certgen.NewGenerator().WithName("CN", "leaf"))
	_, otherPool := selfSigned(t, certgen.NewGenerator().WithName("CN", "other root"))

	result, err := cert.View().Verify(x509.VerifyOptions{
		Roots:     otherPool,
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if result == nil {
		t.Fatal("Verify() = nil for an untrusted certificate")
	}
	if result.Raw() != domain.VerifyErrSelfSigned {
		t.Errorf("Raw() = %d, want %d (self-signed certificate)", result.Raw(), domain.VerifyErrSelfSigned)
	}
}

func TestVerifyHostnameMismatch(t *testing.T) {
	gen := certgen.NewGenerator().
		WithName("CN", "example.com").
		WithExtension(extensions.SubjectAltName{DNS: []string{"example.com"}})
	cert, pool := selfSigned(t, gen)

	result, err := cert.View().Verify(x509.VerifyOptions{
		Roots:     pool,
		DNSName:   "wrong.example.net",
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if result == nil {
		t.Fatal("Verify() = nil for a hostname mismatch")
	}
	if result.Raw() != domain.VerifyErrHostnameMismatch {
		t.Errorf("Raw() = %d, want %d (hostname mismatch)", result.Raw(), domain.VerifyErrHostnameMismatch)
	}
}

func TestVerifyReleasedHandle(t *testing.T) {
	cert, err := certgen.NewGenerator().Sign(testKey(t))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	v := cert.View()
	if err := cert.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := v.Verify(x509.VerifyOptions{}); err == nil {
		t.Error("Verify() on a released handle succeeded")
	}
}
