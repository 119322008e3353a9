//go:build windows

package security

// DisableCoreDumps is a no-op on Windows, which does not write Unix-style
// core dumps.
func DisableCoreDumps() error {
	return nil
}
