package certgen_test

import (
	"errors"
	"testing"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/certgen"
)

func TestCertificateCloseReleases(t *testing.T) {
	cert, err := certgen.NewGenerator().Sign(testKey(t))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	v := cert.View()
	if err := cert.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := v.SerialNumber(); !errors.Is(err, domain.ErrHandleReleased) {
		t.Errorf("SerialNumber() after Close error = %v, want ErrHandleReleased", err)
	}
	if _, err := v.ToPEM(); !errors.Is(err, domain.ErrHandleReleased) {
		t.Errorf("ToPEM() after Close error = %v, want ErrHandleReleased", err)
	}
}

func TestCertificateDoubleClose(t *testing.T) {
	cert, err := certgen.NewGenerator().Sign(testKey(t))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if err := cert.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := cert.Close(); !errors.Is(err, domain.ErrHandleReleased) {
		t.Errorf("second Close() error = %v, want ErrHandleReleased", err)
	}
}

func TestCertificateCloneKeepsAlive(t *testing.T) {
	cert, err := certgen.NewGenerator().Sign(testKey(t))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	clone, err := cert.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	if err := cert.Close(); err != nil {
		t.Fatalf("Close() original error = %v", err)
	}

	// The clone still owns a reference; the underlying object must survive.
	if _, err := clone.View().SerialNumber(); err != nil {
		t.Errorf("clone SerialNumber() after original Close error = %v", err)
	}

	if err := clone.Close(); err != nil {
		t.Fatalf("Close() clone error = %v", err)
	}
	if _, err := clone.View().SerialNumber(); !errors.Is(err, domain.ErrHandleReleased) {
		t.Errorf("SerialNumber() after last Close error = %v, want ErrHandleReleased", err)
	}
}

func TestCertificateCloneAfterClose(t *testing.T) {
	cert, err := certgen.NewGenerator().Sign(testKey(t))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if err := cert.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := cert.Clone(); !errors.Is(err, domain.ErrHandleReleased) {
		t.Errorf("Clone() after Close error = %v, want ErrHandleReleased", err)
	}
}

func TestRequestHandleLifecycle(t *testing.T) {
	req, err := certgen.NewGenerator().WithName("CN", "example.com").Request(testKey(t))
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	clone, err := req.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if err := req.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := clone.View().ToDER(); err != nil {
		t.Errorf("clone ToDER() error = %v", err)
	}
	if err := clone.Close(); err != nil {
		t.Fatalf("Close() clone error = %v", err)
	}
	if err := clone.Close(); !errors.Is(err, domain.ErrHandleReleased) {
		t.Errorf("second Close() error = %v, want ErrHandleReleased", err)
	}
}

func TestCertificateFromPEMRejectsWrongBlock(t *testing.T) {
	req, err := certgen.NewGenerator().Request(testKey(t))
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	defer req.Close()

	reqPEM, err := req.View().ToPEM()
	if err != nil {
		t.Fatalf("ToPEM() error = %v", err)
	}
	if _, err := certgen.CertificateFromPEM(reqPEM); err == nil {
		t.Error("CertificateFromPEM() accepted a CERTIFICATE REQUEST block")
	}
	if _, err := certgen.RequestFromPEM([]byte("not pem")); err == nil {
		t.Error("RequestFromPEM() accepted garbage input")
	}
}
