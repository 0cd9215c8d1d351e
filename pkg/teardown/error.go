package teardown

import (
	"errors"
	"fmt"
)

// ErrNilResource indicates a nil resource passed to Register.
var ErrNilResource = errors.New("teardown: nil resource")

// ReleaseError reports the first failure of a ReleaseAll walk. It unwraps
// to the cause returned by the resource.
type ReleaseError struct {
	// Resource is the resource whose release failed.
	Resource Resource

	// Err is the failure it returned.
	Err error
}

func (err *ReleaseError) Error() string {
	return fmt.Sprintf("teardown: release failed: %v", err.Err)
}

func (err *ReleaseError) Unwrap() error {
	return err.Err
}
