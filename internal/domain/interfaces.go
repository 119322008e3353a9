package domain

import (
	"crypto"
	"time"
)

// Logger defines the logging interface.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Log(msg string)
}

// Clock defines the interface for time operations.
type Clock interface {
	Now() time.Time
}

// RandomSource fills a buffer with cryptographically strong random bytes.
type RandomSource interface {
	Fill(buf []byte) error
}

// ConfigLoader defines the interface for loading issue profiles.
type ConfigLoader interface {
	LoadProfile(path string) (*Profile, error)
	ValidateProfile(data []byte) error
}

// KeyService defines key generation and serialization operations.
type KeyService interface {
	Generate(algo KeyAlgorithm) (crypto.Signer, error)
	EncodeToPEM(key crypto.Signer) ([]byte, error)
	Parse(pemData []byte) (crypto.Signer, error)
	Encrypt(keyPEM, passphrase []byte) ([]byte, error)
	Decrypt(encrypted, passphrase []byte) ([]byte, error)
}

// PassphraseReader obtains a passphrase from the user.
type PassphraseReader interface {
	ReadPassphrase(confirm bool) ([]byte, error)
}

// Store persists issued artifacts (certificates, keys, CSRs) as PEM files.
type Store interface {
	Save(name string, data []byte) (string, error)
	Load(name string) ([]byte, error)
}
