// Package launcher locates the engine binary and forwards invocations to it.
// Resolution probes the launcher's own install directory first and falls back
// to the executable search path; execution is a single blocking spawn whose
// argv, streams, and exit code pass through untouched. The engine is opaque
// to this package: argv in, exit code out, nothing else.
package launcher
