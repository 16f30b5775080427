package platform

import (
	"os"
	"runtime"
)

// ExecutableName returns the platform-appropriate file name for a binary
// with the given base name on the current OS.
func ExecutableName(base string) string {
	return ExecutableNameFor(runtime.GOOS, base)
}

// ExecutableNameFor is ExecutableName parameterized by GOOS so resolution
// rules for other platforms stay testable from any host.
func ExecutableNameFor(goos, base string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}

// IsExecutable reports whether path names a regular file the current user
// could plausibly execute. On Windows there are no Unix permission bits, so
// any regular file qualifies; elsewhere at least one execute bit must be set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}
