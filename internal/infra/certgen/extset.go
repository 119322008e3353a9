package certgen

import (
	"iter"

	"certkit.dev/certkit/internal/domain"
)

// Set is an ordered collection of certificate extensions, holding at most one
// extension per ExtensionType.
//
// A certificate must not include more than one instance of a particular
// extension (RFC 5280 §4.2). Extensions are applied to the certificate during
// signing in the order they were inserted, which matters for dependent
// extensions such as SubjectKeyIdentifier consumed by AuthorityKeyIdentifier.
type Set struct {
	extensions []domain.Extension
	index      map[domain.ExtensionType]int
}

// NewSet creates an empty extension set.
func NewSet() Set {
	return Set{index: make(map[domain.ExtensionType]int)}
}

// Add inserts ext, replacing any existing extension of the same type in
// place. Replacement preserves the original insertion position; all other
// extensions keep their order.
func (s *Set) Add(ext domain.Extension) {
	if s.index == nil {
		s.index = make(map[domain.ExtensionType]int)
	}
	if i, ok := s.index[ext.Type()]; ok {
		s.extensions[i] = ext
		return
	}
	s.extensions = append(s.extensions, ext)
	s.index[ext.Type()] = len(s.extensions) - 1
}

// Len returns the number of extensions in the set.
func (s *Set) Len() int {
	return len(s.extensions)
}

// All iterates over (ExtensionType, Extension) pairs in insertion order.
// The sequence is finite and restartable.
func (s *Set) All() iter.Seq2[domain.ExtensionType, domain.Extension] {
	return func(yield func(domain.ExtensionType, domain.Extension) bool) {
		for _, ext := range s.extensions {
			if !yield(ext.Type(), ext) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set. The contained extensions are
// shared; they are read-only during signing.
func (s *Set) Clone() Set {
	out := Set{
		extensions: make([]domain.Extension, len(s.extensions)),
		index:      make(map[domain.ExtensionType]int, len(s.index)),
	}
	copy(out.extensions, s.extensions)
	for t, i := range s.index {
		out.index[t] = i
	}
	return out
}
