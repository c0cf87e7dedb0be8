// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package certs

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptofdefense/dercheck/pkg/certs/certstest"
)

func TestClassify(t *testing.T) {
	sequence, err := asn1.Marshal(struct{ A int }{A: 1})
	require.NoError(t, err)
	//
	assert.Equal(t, FormatEmpty, Classify([]byte{}))
	assert.Equal(t, FormatDERCertificate, Classify(certstest.NewDER(t)))
	assert.Equal(t, FormatPEM, Classify(certstest.NewPEM(t)))
	assert.Equal(t, FormatPKCS7, Classify(certstest.NewPKCS7(t)))
	assert.Equal(t, FormatDERSequence, Classify(sequence))
	assert.Equal(t, FormatDERSequence, Classify(append(certstest.NewDER(t), 0x00, 0x01)))
	assert.Equal(t, FormatUnknown, Classify([]byte("hello world")))
}

func TestTrailingBytes(t *testing.T) {
	der := certstest.NewDER(t)
	assert.Equal(t, 0, TrailingBytes(der))
	assert.Equal(t, 3, TrailingBytes(append(der, 1, 2, 3)))
	assert.Equal(t, -1, TrailingBytes([]byte("hello world")))
	assert.Equal(t, -1, TrailingBytes([]byte{}))
	assert.Equal(t, -1, TrailingBytes(der[:len(der)-1]))
}
