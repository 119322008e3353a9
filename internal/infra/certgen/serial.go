package certgen

import (
	"encoding/binary"

	"certkit.dev/certkit/internal/domain"
)

// serialWidth is the number of random bytes drawn per serial, matching the
// width of the serial's integer representation.
const serialWidth = 8

// SerialSource produces random certificate serial numbers.
type SerialSource struct {
	rand domain.RandomSource
}

// NewSerialSource creates a serial source drawing from rand.
func NewSerialSource(rand domain.RandomSource) *SerialSource {
	return &SerialSource{rand: rand}
}

// Random returns a strictly positive random serial number.
//
// The encoding permits negative serials, but several verifiers (Go's own
// chain verification among them) reject certificates carrying one, so the
// high bit is shifted out. The lost bit of entropy is an intentional
// interoperability trade-off.
func (s *SerialSource) Random() (int64, error) {
	buf := make([]byte, serialWidth)
	if err := s.rand.Fill(buf); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf) >> 1), nil
}
