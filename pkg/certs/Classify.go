// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package certs

import (
	"crypto/x509"
	"encoding/pem"

	"go.mozilla.org/pkcs7"
)

// Format is a best-effort description of the contents of a file.
type Format string

const (
	FormatEmpty          Format = "empty"
	FormatDERCertificate Format = "der-certificate"
	FormatPEM            Format = "pem"
	FormatPKCS7          Format = "pkcs7"
	FormatDERSequence    Format = "der-sequence"
	FormatUnknown        Format = "unknown"
)

// Classify guesses what b contains.  Only FormatDERCertificate means b is accepted by ParseDER.
func Classify(b []byte) Format {
	if len(b) == 0 {
		return FormatEmpty
	}
	if _, err := x509.ParseCertificate(b); err == nil {
		return FormatDERCertificate
	}
	if block, _ := pem.Decode(b); block != nil {
		return FormatPEM
	}
	if isPkcs7Package(b) {
		return FormatPKCS7
	}
	if TrailingBytes(b) >= 0 {
		return FormatDERSequence
	}
	return FormatUnknown
}

// isPkcs7Package reports whether b parses as a PKCS#7 package.
// The BER normalization in the parser is not trusted with arbitrary input.
func isPkcs7Package(b []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	_, err := pkcs7.Parse(b)
	return err == nil
}
