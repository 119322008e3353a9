package domain

import (
	"fmt"
	"sort"
	"sync"
)

// VerifyOK is the reserved status meaning a chain verified successfully.
// It never wraps into a VerifyError.
const VerifyOK = 0

// Raw verification status codes. The numbering and message text follow the
// well-established OpenSSL X509_V_ERR values so results stay comparable
// across tooling.
const (
	VerifyErrUnspecified            = 1
	VerifyErrUnableToGetIssuerCert  = 2
	VerifyErrCertSignatureFailure   = 7
	VerifyErrCertNotYetValid        = 9
	VerifyErrCertHasExpired         = 10
	VerifyErrSelfSigned             = 18
	VerifyErrSelfSignedInChain      = 19
	VerifyErrUnableToGetLocalIssuer = 20
	VerifyErrUnableToVerifyLeaf     = 21
	VerifyErrCertRevoked            = 23
	VerifyErrInvalidCA              = 24
	VerifyErrPathLengthExceeded     = 25
	VerifyErrInvalidPurpose         = 26
	VerifyErrCertUntrusted          = 27
	VerifyErrCertRejected           = 28
	VerifyErrSubjectIssuerMismatch  = 29
	VerifyErrHostnameMismatch       = 62
)

var (
	verifyOnce     sync.Once
	verifyMessages map[int]string
)

// initVerifyMessages builds the static code-to-description table. Guarded by
// a sync.Once so every entry point may trigger it safely.
func initVerifyMessages() {
	verifyOnce.Do(func() {
		verifyMessages = map[int]string{
			VerifyErrUnspecified:            "unspecified certificate verification error",
			VerifyErrUnableToGetIssuerCert:  "unable to get issuer certificate",
			VerifyErrCertSignatureFailure:   "certificate signature failure",
			VerifyErrCertNotYetValid:        "certificate is not yet valid",
			VerifyErrCertHasExpired:         "certificate has expired",
			VerifyErrSelfSigned:             "self-signed certificate",
			VerifyErrSelfSignedInChain:      "self-signed certificate in certificate chain",
			VerifyErrUnableToGetLocalIssuer: "unable to get local issuer certificate",
			VerifyErrUnableToVerifyLeaf:     "unable to verify the first certificate",
			VerifyErrCertRevoked:            "certificate revoked",
			VerifyErrInvalidCA:              "invalid CA certificate",
			VerifyErrPathLengthExceeded:     "path length constraint exceeded",
			VerifyErrInvalidPurpose:         "unsupported certificate purpose",
			VerifyErrCertUntrusted:          "certificate not trusted",
			VerifyErrCertRejected:           "certificate rejected",
			VerifyErrSubjectIssuerMismatch:  "subject issuer mismatch",
			VerifyErrHostnameMismatch:       "hostname mismatch",
		}
	})
}

// VerifyError wraps a non-OK verification status code.
type VerifyError struct {
	code int
}

// VerifyErrorFromRaw returns nil exactly when code is VerifyOK, otherwise a
// VerifyError carrying the raw code.
func VerifyErrorFromRaw(code int) *VerifyError {
	if code == VerifyOK {
		return nil
	}
	return &VerifyError{code: code}
}

// Raw returns the wrapped status code.
func (e *VerifyError) Raw() int {
	return e.code
}

// ErrorString returns the static human-readable description for the code.
func (e *VerifyError) ErrorString() string {
	initVerifyMessages()
	if msg, ok := verifyMessages[e.code]; ok {
		return msg
	}
	return "unknown certificate verification error"
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verification failed (code %d): %s", e.code, e.ErrorString())
}

// KnownVerifyCodes returns all codes with a registered description, sorted.
func KnownVerifyCodes() []int {
	initVerifyMessages()
	codes := make([]int, 0, len(verifyMessages))
	for code := range verifyMessages {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
