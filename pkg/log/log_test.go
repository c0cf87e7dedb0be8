// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2021, time.November, 17, 12, 0, 0, 0, time.UTC)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	entries := make([]map[string]interface{}, 0)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLoggerWithClock(buf, fixedClock)
	require.NoError(t, logger.Log("hello", map[string]interface{}{"path": "cert.der"}))
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0]["msg"])
	assert.Equal(t, "2021-11-17T12:00:00Z", entries[0]["ts"])
	assert.Equal(t, "cert.der", entries[0]["path"])
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	parent := NewSimpleLoggerWithClock(buf, fixedClock)
	child := parent.With(map[string]interface{}{"trace_id": "abc"})
	require.NoError(t, child.Log("child", map[string]interface{}{"argc": 2}))
	require.NoError(t, parent.Log("parent"))
	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.Equal(t, float64(2), entries[0]["argc"])
	_, ok := entries[1]["trace_id"]
	assert.False(t, ok)
}

func TestReservedFields(t *testing.T) {
	// msg and ts cannot be overwritten by fields
	logger := NewSimpleLoggerWithClock(&bytes.Buffer{}, fixedClock)
	b, err := logger.Marshal("real", map[string]interface{}{"msg": "fake", "ts": "never"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"real","ts":"2021-11-17T12:00:00Z"}`, string(b))
}

func TestMarshalError(t *testing.T) {
	logger := NewDiscardLogger()
	_, err := logger.Marshal("bad", map[string]interface{}{"ch": make(chan int)})
	assert.Error(t, err)
}
