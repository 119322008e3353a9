package domain_test

import (
	"sort"
	"strings"
	"testing"

	"certkit.dev/certkit/internal/domain"
)

func TestVerifyErrorFromRawOK(t *testing.T) {
	if e := domain.VerifyErrorFromRaw(domain.VerifyOK); e != nil {
		t.Errorf("VerifyErrorFromRaw(VerifyOK) = %v, want nil", e)
	}
}

func TestVerifyErrorRawRoundTrip(t *testing.T) {
	for _, code := range domain.KnownVerifyCodes() {
		e := domain.VerifyErrorFromRaw(code)
		if e == nil {
			t.Fatalf("VerifyErrorFromRaw(%d) = nil", code)
		}
		if e.Raw() != code {
			t.Errorf("Raw() = %d, want %d", e.Raw(), code)
		}
		if e.ErrorString() == "" {
			t.Errorf("ErrorString() for code %d is empty", code)
		}
	}
}

func TestVerifyErrorMessages(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{domain.VerifyErrCertHasExpired, "certificate has expired"},
		{domain.VerifyErrCertNotYetValid, "certificate is not yet valid"},
		{domain.VerifyErrSelfSigned, "self-signed certificate"},
		{domain.VerifyErrHostnameMismatch, "hostname mismatch"},
	}
	for _, tt := range tests {
		e := domain.VerifyErrorFromRaw(tt.code)
		if got := e.ErrorString(); got != tt.want {
			t.Errorf("ErrorString(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestVerifyErrorUnknownCode(t *testing.T) {
	e := domain.VerifyErrorFromRaw(9999)
	if got := e.ErrorString(); got != "unknown certificate verification error" {
		t.Errorf("ErrorString() = %q, want fallback message", got)
	}
	if !strings.Contains(e.Error(), "9999") {
		t.Errorf("Error() = %q, want the raw code included", e.Error())
	}
}

func TestKnownVerifyCodesSorted(t *testing.T) {
	codes := domain.KnownVerifyCodes()
	if len(codes) == 0 {
		t.Fatal("KnownVerifyCodes() is empty")
	}
	if !sort.IntsAreSorted(codes) {
		t.Errorf("KnownVerifyCodes() = %v, want sorted ascending", codes)
	}
	for _, code := range codes {
		if code == domain.VerifyOK {
			t.Error("KnownVerifyCodes() contains VerifyOK")
		}
	}
}
