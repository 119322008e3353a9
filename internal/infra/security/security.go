//go:build !windows

package security

import "syscall"

// DisableCoreDumps prevents the process from writing core dumps, which
// could otherwise leak private key material to disk.
func DisableCoreDumps() error {
	var limit syscall.Rlimit
	limit.Cur = 0
	limit.Max = 0
	return syscall.Setrlimit(syscall.RLIMIT_CORE, &limit)
}
