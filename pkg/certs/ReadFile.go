// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package certs

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/afero"
)

// ReadFile reads the whole file at path.  The file is closed before returning.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", path, err)
	}
	return b, nil
}
