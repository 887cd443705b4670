package sentencesplit

import "fmt"

// ConfigurationError reports an invalid combination of Segmenter
// constructor arguments: an unknown language code, clean and char_span
// requested together, or doc_type="pdf" without clean.
type ConfigurationError struct {
	Message string
	Details string
}

func (e ConfigurationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// InputError reports malformed runtime input. The engine does not raise
// InputError today — sentinel collision with user input is documented as
// undefined behavior rather than a detectable error condition — but the
// type exists so a future input-validation pass, and callers doing
// errors.As, have a stable taxonomy to target.
type InputError struct {
	Message string
	Details string
}

func (e InputError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}
