// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package checker

import (
	"errors"
	"fmt"
)

var (
	ErrUsage          = errors.New("wrong number of arguments")
	ErrNotCertificate = errors.New("not a DER encoded certificate")
)

// DecodeError collapses every open, read, and parse failure for a path into ErrNotCertificate.
// The underlying cause is kept for diagnostics.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrNotCertificate.Error(), e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrNotCertificate
}
