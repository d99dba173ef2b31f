package unzip

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrExists is returned when extraction would touch an on-disk path that
	// already exists and overwriting was not requested. Match with errors.Is;
	// the concrete value is an *ExistsError carrying the path.
	ErrExists = errors.New("unzip: destination already exists")
)

// ExistsError reports the first on-disk path that blocked an extraction run.
//
// Extraction aborts on the first conflict. Entries processed before the
// conflict remain on disk; nothing is rolled back.
type ExistsError struct {
	// Path is the resolved output path that already exists.
	Path string

	// Hint suggests how the caller can resolve the conflict.
	Hint string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("unzip: %s already exists", e.Path)
}

// Is reports whether target is ErrExists, so callers can match the sentinel
// without unwrapping to the concrete type.
func (e *ExistsError) Is(target error) bool {
	return target == ErrExists
}
