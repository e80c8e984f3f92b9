package preferences

import (
	"encoding/json"
	"fmt"
)

// FormatError reports raw input that could not be parsed as a JSON document.
// It is the only error the normalization layer raises: once the input parses,
// every shape normalizes best-effort without failing.
type FormatError struct {
	err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid JSON format: %v", e.err)
}

func (e *FormatError) Unwrap() error {
	return e.err
}

// Normalize converts an arbitrary-shaped JSON document into the canonical
// preference record. It classifies the document against the known formats
// and dispatches to the matching converter; unrecognized shapes fall back to
// the simple-format converter. The only failure mode is a *FormatError for
// input that is not a syntactically valid JSON object.
func Normalize(raw []byte) (*Preferences, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &FormatError{err: err}
	}

	for _, rule := range formatRules {
		if rule.matches(doc) {
			return rule.convert(doc), nil
		}
	}
	return convertSimple(doc), nil
}
