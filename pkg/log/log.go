// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"sync"
	"time"
)

// SimpleLogger is a simple logger that logs using JSON Lines.
// Loggers derived with With share the writer and mutex of their parent.
type SimpleLogger struct {
	writer io.Writer
	mutex  *sync.Mutex
	fields map[string]interface{}
	now    func() time.Time
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return NewSimpleLoggerWithClock(w, time.Now)
}

func NewSimpleLoggerWithClock(w io.Writer, now func() time.Time) *SimpleLogger {
	return &SimpleLogger{
		writer: w,
		mutex:  &sync.Mutex{},
		fields: map[string]interface{}{},
		now:    now,
	}
}

// NewDiscardLogger returns a logger that drops every entry.
func NewDiscardLogger() *SimpleLogger {
	return NewSimpleLogger(ioutil.Discard)
}

// With returns a child logger that adds fields to every entry.
func (s *SimpleLogger) With(fields map[string]interface{}) *SimpleLogger {
	merged := make(map[string]interface{}, len(s.fields)+len(fields))
	for k, v := range s.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &SimpleLogger{
		writer: s.writer,
		mutex:  s.mutex,
		fields: merged,
		now:    s.now,
	}
}

func (s *SimpleLogger) Marshal(msg string, fields ...map[string]interface{}) ([]byte, error) {
	obj := map[string]interface{}{}
	for k, v := range s.fields {
		obj[k] = v
	}
	for _, m := range fields {
		for k, v := range m {
			obj[k] = v
		}
	}
	obj["ts"] = s.now().Format(time.RFC3339)
	obj["msg"] = msg
	b, err := json.Marshal(obj)
	if err != nil {
		return make([]byte, 0), fmt.Errorf("error marshaling log entry: %w", err)
	}
	return b, nil
}

func (s *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	b, err := s.Marshal(msg, fields...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.writer, string(b))
	return err
}
