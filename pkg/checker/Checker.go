// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package checker

import (
	"crypto/x509"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/deptofdefense/dercheck/pkg/certs"
	"github.com/deptofdefense/dercheck/pkg/log"
)

// Checker reports whether files are DER encoded X.509 certificates.
// Results are written to out, one line per check.  Diagnostics go to the logger.
type Checker struct {
	fs     afero.Fs
	out    io.Writer
	logger *log.SimpleLogger
}

// New returns a Checker that reads files from fs.  A nil logger discards diagnostics.
func New(fs afero.Fs, out io.Writer, logger *log.SimpleLogger) *Checker {
	if logger == nil {
		logger = log.NewDiscardLogger()
	}
	return &Checker{
		fs:     fs,
		out:    out,
		logger: logger,
	}
}

// Check runs a check for the command line args (without the program name) and returns the process exit code.
func (c *Checker) Check(program string, args []string) int {
	return c.Run(program, args).ExitCode()
}

// Run runs a check and returns its outcome.
func (c *Checker) Run(program string, args []string) Outcome {
	if len(args) != 1 {
		_ = c.logger.Log("Bad usage", map[string]interface{}{
			"argc":  len(args),
			"error": ErrUsage.Error(),
		})
		_, _ = fmt.Fprintf(c.out, "usage: %s certificate-file\n", program)
		return BadUsage
	}
	path := args[0]
	if _, err := c.Decode(path); err != nil {
		_, _ = fmt.Fprintf(c.out, "not a DER encoded certificate: %s\n", path)
		return NotCertificate
	}
	_, _ = fmt.Fprintf(c.out, "DER encoded certificate: %s\n", path)
	return ValidCertificate
}

// Decode reads and parses the certificate at path.
// Every failure is returned as a *DecodeError.
func (c *Checker) Decode(path string) (*x509.Certificate, error) {
	b, err := certs.ReadFile(c.fs, path)
	if err != nil {
		_ = c.logger.Log("Certificate rejected", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil, &DecodeError{Path: path, Err: err}
	}
	cert, err := certs.ParseDER(b)
	if err != nil {
		_ = c.logger.Log("Certificate rejected", map[string]interface{}{
			"path":           path,
			"error":          err.Error(),
			"size":           len(b),
			"format":         string(certs.Classify(b)),
			"trailing_bytes": certs.TrailingBytes(b),
		})
		return nil, &DecodeError{Path: path, Err: err}
	}
	_ = c.logger.Log("Certificate accepted", map[string]interface{}{
		"path":    path,
		"size":    len(b),
		"subject": certs.Subject(cert),
		"issuer":  certs.Issuer(cert),
		"serial":  cert.SerialNumber.String(),
	})
	return cert, nil
}
