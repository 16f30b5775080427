package launcher

import "fmt"

// NotFoundError is returned when the engine binary is absent both next to the
// launcher and on the executable search path. It is the only error the
// launcher owns: everything after a successful spawn, including non-zero exit
// codes, belongs to the engine and is relayed rather than wrapped.
type NotFoundError struct {
	// Name is the platform-specific binary name, e.g. "apc" or "apc.exe".
	Name string
	// Attempted is the co-located path that was probed before the search path.
	Attempted string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s binary: expected at %s or in PATH", e.Name, e.Attempted)
}
