// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package certs

import (
	"crypto/x509"
	"errors"
	"fmt"
)

var (
	ErrEmpty = errors.New("input is empty")
)

// ParseDER parses b as exactly one DER encoded X.509 certificate.
// Trailing data after the certificate is an error.
func ParseDER(b []byte) (*x509.Certificate, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	cert, err := x509.ParseCertificate(b)
	if err != nil {
		return nil, fmt.Errorf("error parsing DER encoded certificate: %w", err)
	}
	return cert, nil
}
