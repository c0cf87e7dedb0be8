// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package certstest builds certificates for tests.
package certstest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mozilla.org/pkcs7"
)

const (
	SubjectDN = "/C=US/O=City of Atlantis/OU=Atlantis Digital Service/CN=atlantis.example.com"
)

// NewDER returns a self-signed DER encoded certificate with serial number 1000.
func NewDER(t testing.TB) []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	now := time.Now()
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1000),
		Subject: pkix.Name{
			Country:            []string{"US"},
			Organization:       []string{"City of Atlantis"},
			OrganizationalUnit: []string{"Atlantis Digital Service"},
			CommonName:         "atlantis.example.com",
		},
		NotBefore:             now.Add(-1 * time.Hour),
		NotAfter:              now.Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return der
}

// NewPEM returns a PEM encoded certificate.
func NewPEM(t testing.TB) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: NewDER(t)})
}

// NewPKCS7 returns a degenerate PKCS#7 package holding a single certificate.
func NewPKCS7(t testing.TB) []byte {
	b, err := pkcs7.DegenerateCertificate(NewDER(t))
	require.NoError(t, err)
	return b
}
