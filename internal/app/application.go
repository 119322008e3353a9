package app

import (
	"context"
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/infra/certgen"
	"certkit.dev/certkit/internal/infra/certgen/extensions"
	"certkit.dev/certkit/internal/ui"
)

// Application orchestrates the toolkit's use cases.
type Application struct {
	logger       domain.Logger
	configLoader domain.ConfigLoader
	store        domain.Store
	keys         domain.KeyService
	passphrase   domain.PassphraseReader
	clock        domain.Clock
	rand         domain.RandomSource
}

// NewApplication creates a new Application instance.
func NewApplication(
	logger domain.Logger,
	configLoader domain.ConfigLoader,
	store domain.Store,
	keys domain.KeyService,
	passphrase domain.PassphraseReader,
	clock domain.Clock,
	rand domain.RandomSource,
) *Application {
	return &Application{
		logger:       logger,
		configLoader: configLoader,
		store:        store,
		keys:         keys,
		passphrase:   passphrase,
		clock:        clock,
		rand:         rand,
	}
}

// Issue generates a key pair and a self-signed certificate from the profile
// and stores both under name.
func (a *Application) Issue(ctx context.Context, profilePath, name string, encryptKey bool) error {
	gen, profile, err := a.generatorFromProfile(profilePath)
	if err != nil {
		return err
	}

	key, err := a.keys.Generate(profile.KeyAlgo)
	if err != nil {
		return fmt.Errorf("failed to generate private key: %w", err)
	}

	cert, err := gen.Sign(key)
	if err != nil {
		return err
	}
	defer cert.Close()

	certPEM, err := cert.View().ToPEM()
	if err != nil {
		return err
	}
	certPath, err := a.store.Save(name+".crt", certPEM)
	if err != nil {
		return err
	}

	keyPath, err := a.saveKey(name, key, encryptKey)
	if err != nil {
		return err
	}

	a.logger.Log(fmt.Sprintf("Issued certificate %q (%s, %s)", name, certPath, keyPath))
	return nil
}

// Request generates a CSR from the profile. When keyName is empty a fresh
// key is generated and stored alongside the request; otherwise the named key
// is loaded from the store.
func (a *Application) Request(ctx context.Context, profilePath, name, keyName string, encryptKey bool) error {
	gen, profile, err := a.generatorFromProfile(profilePath)
	if err != nil {
		return err
	}

	var key crypto.Signer
	if keyName == "" {
		key, err = a.keys.Generate(profile.KeyAlgo)
		if err != nil {
			return fmt.Errorf("failed to generate private key: %w", err)
		}
		if _, err := a.saveKey(name, key, encryptKey); err != nil {
			return err
		}
	} else {
		key, err = a.loadKey(keyName)
		if err != nil {
			return err
		}
	}

	req, err := gen.Request(key)
	if err != nil {
		return err
	}
	defer req.Close()

	reqPEM, err := req.View().ToPEM()
	if err != nil {
		return err
	}
	reqPath, err := a.store.Save(name+".csr", reqPEM)
	if err != nil {
		return err
	}

	a.logger.Log(fmt.Sprintf("Created certificate request %q (%s)", name, reqPath))
	return nil
}

// Inspect renders a PEM certificate or CSR file.
func (a *Application) Inspect(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return "", fmt.Errorf("%s does not contain a PEM block", path)
	}

	switch block.Type {
	case "CERTIFICATE":
		cert, err := certgen.CertificateFromPEM(data)
		if err != nil {
			return "", err
		}
		defer cert.Close()
		return ui.RenderCertificate(cert.View())
	case "CERTIFICATE REQUEST":
		req, err := certgen.RequestFromPEM(data)
		if err != nil {
			return "", err
		}
		defer req.Close()
		return ui.RenderRequest(req.View())
	default:
		return "", fmt.Errorf("unsupported PEM block type %q", block.Type)
	}
}

// Verify builds a chain for certPath against caPath and reports the outcome.
// With an empty caPath the certificate is checked against itself, the
// expected setup for self-signed certificates. A nil result means the chain
// verified.
func (a *Application) Verify(ctx context.Context, certPath, caPath, dnsName string) (*domain.VerifyError, error) {
	cert, err := a.loadCertificate(certPath)
	if err != nil {
		return nil, err
	}
	defer cert.Close()

	roots := x509.NewCertPool()
	if caPath == "" {
		caPEM, err := cert.View().ToPEM()
		if err != nil {
			return nil, err
		}
		roots.AppendCertsFromPEM(caPEM)
	} else {
		caPEM, err := os.ReadFile(caPath)
		if err != nil {
			return nil, fmt.Errorf("could not read CA certificate: %w", err)
		}
		if !roots.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no certificates found in %s", caPath)
		}
	}

	opts := x509.VerifyOptions{
		Roots:       roots,
		DNSName:     dnsName,
		CurrentTime: a.clock.Now(),
		KeyUsages:   []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}
	result, err := cert.View().Verify(opts)
	if err != nil {
		return nil, err
	}
	if result != nil {
		a.logger.Log(fmt.Sprintf("Verification of %s failed: %s", certPath, result.ErrorString()))
	} else {
		a.logger.Log(fmt.Sprintf("Verification of %s succeeded", certPath))
	}
	return result, nil
}

// generatorFromProfile translates a profile into a configured generator.
func (a *Application) generatorFromProfile(profilePath string) (certgen.Generator, *domain.Profile, error) {
	profile, err := a.configLoader.LoadProfile(profilePath)
	if err != nil {
		return certgen.Generator{}, nil, err
	}

	gen := certgen.NewGenerator().
		WithValidityDays(profile.Validity.Days).
		WithNames(profile.Subject...).
		WithSignHash(profile.HashAlgo).
		WithClock(a.clock).
		WithRandom(a.rand)

	for _, cfg := range profile.Extensions {
		ext, err := extensions.FromConfig(cfg)
		if err != nil {
			return certgen.Generator{}, nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		gen = gen.WithExtension(ext)
	}
	return gen, profile, nil
}

func (a *Application) saveKey(name string, key crypto.Signer, encrypt bool) (string, error) {
	keyPEM, err := a.keys.EncodeToPEM(key)
	if err != nil {
		return "", err
	}
	if !encrypt {
		return a.store.Save(name+".key", keyPEM)
	}

	pass, err := a.passphrase.ReadPassphrase(true)
	if err != nil {
		return "", err
	}
	encrypted, err := a.keys.Encrypt(keyPEM, pass)
	if err != nil {
		return "", err
	}
	return a.store.Save(name+".key.age", encrypted)
}

func (a *Application) loadKey(name string) (crypto.Signer, error) {
	if data, err := a.store.Load(name + ".key"); err == nil {
		return a.keys.Parse(data)
	}

	encrypted, err := a.store.Load(name + ".key.age")
	if err != nil {
		return nil, fmt.Errorf("no key named %q in store: %w", name, err)
	}
	pass, err := a.passphrase.ReadPassphrase(false)
	if err != nil {
		return nil, err
	}
	keyPEM, err := a.keys.Decrypt(encrypted, pass)
	if err != nil {
		return nil, err
	}
	return a.keys.Parse(keyPEM)
}

func (a *Application) loadCertificate(path string) (*certgen.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".der") {
		return certgen.CertificateFromDER(data)
	}
	return certgen.CertificateFromPEM(data)
}
