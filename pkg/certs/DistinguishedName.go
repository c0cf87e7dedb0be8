// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package certs

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"
)

var attributeLabels = []struct {
	Type  asn1.ObjectIdentifier
	Label string
}{
	{Type: []int{2, 5, 4, 6}, Label: "C"},
	{Type: []int{2, 5, 4, 10}, Label: "O"},
	{Type: []int{2, 5, 4, 11}, Label: "OU"},
	{Type: []int{2, 5, 4, 3}, Label: "CN"},
	{Type: []int{2, 5, 4, 7}, Label: "L"},
	{Type: []int{2, 5, 4, 8}, Label: "ST"},
	{Type: []int{1, 2, 840, 113549, 1, 9, 1}, Label: "E"},
}

func attributeLabel(t asn1.ObjectIdentifier) string {
	for _, a := range attributeLabels {
		if a.Type.Equal(t) {
			return a.Label
		}
	}
	return t.String()
}

// DistinguishedName renders name as /C=../O=../CN=.. in the order the attributes were encoded.
// See https://docs.microsoft.com/en-us/windows/win32/seccrypto/name-properties
func DistinguishedName(name pkix.Name) string {
	var sb strings.Builder
	for _, n := range name.Names {
		sb.WriteString(fmt.Sprintf("/%s=%v", attributeLabel(n.Type), n.Value))
	}
	return sb.String()
}

func Subject(c *x509.Certificate) string {
	return DistinguishedName(c.Subject)
}

func Issuer(c *x509.Certificate) string {
	return DistinguishedName(c.Issuer)
}
