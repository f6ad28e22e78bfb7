package diag

// Severity defines the importance of a diagnostic.
// Ordered weakest to strongest so callers can compare with >=.
type Severity uint8

const (
	// SevAdvice is for style-only findings the caller may ignore.
	SevAdvice Severity = iota
	// SevWarning is for findings surfaced conditionally (e.g. changed lines only).
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevAdvice:
		return "ADVICE"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
