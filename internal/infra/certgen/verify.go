package certgen

import (
	"bytes"
	"crypto/x509"
	"time"

	"certkit.dev/certkit/internal/domain"
)

// Verify builds a chain for the certificate under opts and reports the
// outcome as a VerifyError code. A nil VerifyError means the chain verified.
// The returned error is reserved for handle misuse (released handle).
func (v *CertificateView) Verify(opts x509.VerifyOptions) (*domain.VerifyError, error) {
	obj, err := v.native()
	if err != nil {
		return nil, err
	}
	now := opts.CurrentTime
	if now.IsZero() {
		now = time.Now()
	}
	if _, err := obj.Verify(opts); err != nil {
		return verifyErrorFor(obj, err, now), nil
	}
	return nil, nil
}

// verifyErrorFor maps a chain-verification failure onto a raw status code.
func verifyErrorFor(cert *x509.Certificate, err error, now time.Time) *domain.VerifyError {
	code := domain.VerifyErrUnspecified

	switch e := err.(type) {
	case x509.CertificateInvalidError:
		switch e.Reason {
		case x509.Expired:
			if now.Before(cert.NotBefore) {
				code = domain.VerifyErrCertNotYetValid
			} else {
				code = domain.VerifyErrCertHasExpired
			}
		case x509.NotAuthorizedToSign:
			code = domain.VerifyErrInvalidCA
		case x509.TooManyIntermediates:
			code = domain.VerifyErrPathLengthExceeded
		case x509.IncompatibleUsage:
			code = domain.VerifyErrInvalidPurpose
		case x509.NameMismatch:
			code = domain.VerifyErrSubjectIssuerMismatch
		case x509.CANotAuthorizedForThisName:
			code = domain.VerifyErrInvalidCA
		}
	case x509.UnknownAuthorityError:
		if bytes.Equal(cert.RawIssuer, cert.RawSubject) {
			code = domain.VerifyErrSelfSigned
		} else {
			code = domain.VerifyErrUnableToGetLocalIssuer
		}
	case x509.HostnameError:
		code = domain.VerifyErrHostnameMismatch
	case x509.SystemRootsError:
		code = domain.VerifyErrUnspecified
	}

	return domain.VerifyErrorFromRaw(code)
}
