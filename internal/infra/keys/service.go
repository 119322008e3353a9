package keys

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	"filippo.io/age"

	"certkit.dev/certkit/internal/domain"
)

// Service implements the domain.KeyService interface.
type Service struct{}

// NewService creates a new key service.
func NewService() *Service {
	return &Service{}
}

// Generate generates a new private key for the specified algorithm.
func (s *Service) Generate(algo domain.KeyAlgorithm) (crypto.Signer, error) {
	switch algo {
	case domain.RSA2048:
		return rsa.GenerateKey(rand.Reader, 2048)
	case domain.RSA3072:
		return rsa.GenerateKey(rand.Reader, 3072)
	case domain.RSA4096:
		return rsa.GenerateKey(rand.Reader, 4096)
	case domain.ECP256:
		return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case domain.ECP384:
		return ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	case domain.ECP521:
		return ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	case domain.ED25519:
		_, key, err := ed25519.GenerateKey(rand.Reader)
		return key, err
	default:
		return nil, fmt.Errorf("unsupported key algorithm: %s", algo)
	}
}

// EncodeToPEM encodes an unencrypted private key to PKCS#8 PEM.
func (s *Service) EncodeToPEM(key crypto.Signer) ([]byte, error) {
	keyBytes, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}), nil
}

// Parse parses an unencrypted PEM-encoded private key.
func (s *Service) Parse(pemData []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing private key")
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		// Fallback for older PKCS#1 RSA keys
		if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
			return key, nil
		}
		// Fallback for older EC keys
		if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
			return key, nil
		}
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("parsed key is not a crypto.Signer")
	}
	return signer, nil
}

// Encrypt encrypts a PEM-encoded private key with an age scrypt recipient
// derived from the passphrase.
func (s *Service) Encrypt(keyPEM, passphrase []byte) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(string(passphrase))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrypt recipient: %w", err)
	}

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to create age encryptor: %w", err)
	}
	if _, err := w.Write(keyPEM); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write key data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize encryption: %w", err)
	}
	return buf.Bytes(), nil
}

// Decrypt decrypts an age-encrypted private key with the passphrase.
func (s *Service) Decrypt(encrypted, passphrase []byte) ([]byte, error) {
	identity, err := age.NewScryptIdentity(string(passphrase))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrypt identity: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(encrypted), identity)
	if err != nil {
		if err.Error() == "no identity matched any of the recipients" {
			return nil, domain.ErrIncorrectPassphrase
		}
		return nil, fmt.Errorf("failed to decrypt private key: %w", err)
	}
	return io.ReadAll(r)
}
