package validation

import (
	"errors"
	"fmt"
	"strings"
)

// MessageType classifies a validation message.
type MessageType int

const (
	TypeError MessageType = iota
	TypeWarning
	TypeInfo
)

func (t MessageType) String() string {
	switch t {
	case TypeError:
		return "error"
	case TypeWarning:
		return "warning"
	case TypeInfo:
		return "info"
	default:
		return fmt.Sprintf("message_type(%d)", int(t))
	}
}

// Message is a single validation finding bound to a fully-qualified property path.
type Message struct {
	Property string
	Type     MessageType
	Text     Text
}

// Format resolves the message text with the given formatter.
func (m Message) Format(f Formatter) string {
	if f == nil {
		f = DefaultFormatter
	}
	return f.Format(m.Text)
}

func (m Message) String() string {
	return m.Format(DefaultFormatter)
}

// Messages is an append-only list of validation findings.
type Messages []Message

// Add appends a message.
func (ms *Messages) Add(m Message) {
	*ms = append(*ms, m)
}

// Has reports whether any message targets the property path.
func (ms Messages) Has(property string) bool {
	for _, m := range ms {
		if m.Property == property {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the property path.
func (ms Messages) Get(property string) Messages {
	var out Messages
	for _, m := range ms {
		if m.Property == property {
			out = append(out, m)
		}
	}
	return out
}

// Fields returns the distinct property paths in first-seen order.
func (ms Messages) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, m := range ms {
		if !seen[m.Property] {
			fields = append(fields, m.Property)
			seen[m.Property] = true
		}
	}
	return fields
}

func (ms Messages) ofType(t MessageType) Messages {
	var out Messages
	for _, m := range ms {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

func (ms Messages) Errors() Messages   { return ms.ofType(TypeError) }
func (ms Messages) Warnings() Messages { return ms.ofType(TypeWarning) }
func (ms Messages) Infos() Messages    { return ms.ofType(TypeInfo) }

// HasErrors reports whether any message is an error.
func (ms Messages) HasErrors() bool {
	for _, m := range ms {
		if m.Type == TypeError {
			return true
		}
	}
	return false
}

// IsEmpty returns true if there are no messages.
func (ms Messages) IsEmpty() bool {
	return len(ms) == 0
}

// Format resolves every message into "property: text" lines.
func (ms Messages) Format(f Formatter) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		if m.Property == "" {
			out = append(out, m.Format(f))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", m.Property, m.Format(f)))
	}
	return out
}

// ByProperty groups resolved message texts by property path, ready to be used
// as an API error response body.
func (ms Messages) ByProperty(f Formatter) map[string][]string {
	out := make(map[string][]string)
	for _, m := range ms {
		out[m.Property] = append(out[m.Property], m.Format(f))
	}
	return out
}

// Outcome is the result of any validation run.
type Outcome interface {
	Messages() Messages
	HasErrors() bool
}

// ValidationError is the error form of a failed validation outcome.
type ValidationError struct {
	Messages Messages
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Messages.Format(DefaultFormatter), "; ")
}

// ErrorFrom converts a failing outcome into a *ValidationError. It returns nil
// when the outcome has no errors, or, with includeWarnings, no errors and no
// warnings. The error carries every error message, plus warnings when requested.
func ErrorFrom(o Outcome, includeWarnings bool) error {
	if o == nil {
		return nil
	}

	msgs := o.Messages()
	failed := o.HasErrors() || (includeWarnings && len(msgs.Warnings()) > 0)
	if !failed {
		return nil
	}

	var out Messages
	for _, m := range msgs {
		if m.Type == TypeError || (includeWarnings && m.Type == TypeWarning) {
			out = append(out, m)
		}
	}
	return &ValidationError{Messages: out}
}

// ExtractValidationError extracts the *ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}
