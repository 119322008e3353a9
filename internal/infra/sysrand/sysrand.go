// Package sysrand provides the default RandomSource backed by the
// operating system CSPRNG.
package sysrand

import (
	"crypto/rand"

	"certkit.dev/certkit/internal/domain"
)

// Source implements domain.RandomSource using crypto/rand.
type Source struct{}

// NewSource creates a new system random source.
func NewSource() domain.RandomSource {
	return &Source{}
}

// Fill fills buf with cryptographically strong random bytes.
func (s *Source) Fill(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
