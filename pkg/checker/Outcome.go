// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package checker

const (
	ExitSuccess = 0
	ExitFailure = 111
)

// Outcome is the terminal state of a single check.
type Outcome int

const (
	ValidCertificate Outcome = iota
	BadUsage
	NotCertificate
)

func (o Outcome) ExitCode() int {
	if o == ValidCertificate {
		return ExitSuccess
	}
	return ExitFailure
}

func (o Outcome) String() string {
	switch o {
	case ValidCertificate:
		return "ValidCertificate"
	case BadUsage:
		return "BadUsage"
	case NotCertificate:
		return "NotCertificate"
	}
	return "Unknown"
}
