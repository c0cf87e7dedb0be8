// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package certs

import (
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// TrailingBytes returns the number of bytes that follow the leading DER SEQUENCE in b,
// or -1 if b does not start with a well-formed DER SEQUENCE.
func TrailingBytes(b []byte) int {
	input := cryptobyte.String(b)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return -1
	}
	return len(input)
}
