// Package platform answers the two platform-specific questions the launcher
// has: what the engine binary is called on this OS, and whether a file at a
// given path counts as executable. The Windows family uses an .exe suffix and
// has no Unix permission bits; everything else uses the bare name and the
// execute bits.
package platform
