package diag

import (
	"fmt"
	"strings"
)

// Note is extra context printed under a diagnostic.
type Note struct {
	Msg string
}

// Diagnostic is one finding about a subject, usually a qualified builtin
// name such as "List.get".
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Subject  string
	Notes    []Note
}

// New builds a diagnostic without notes.
func New(sev Severity, code Code, subject, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Subject: subject, Message: msg}
}

func NewError(code Code, subject, msg string) Diagnostic {
	return New(SevError, code, subject, msg)
}

// WithNote returns a copy of d with msg appended to its notes.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Msg: msg})
	return d
}

// Short renders the diagnostic on one line:
// "error RES1001 List.nope: unknown identifier".
func (d Diagnostic) Short() string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(d.Severity.String()))
	sb.WriteByte(' ')
	sb.WriteString(d.Code.ID())
	if d.Subject != "" {
		sb.WriteByte(' ')
		sb.WriteString(d.Subject)
	}
	sb.WriteString(": ")
	sb.WriteString(strings.Join(strings.Fields(d.Message), " "))
	return sb.String()
}

func (d Diagnostic) String() string {
	if len(d.Notes) == 0 {
		return d.Short()
	}
	var sb strings.Builder
	sb.WriteString(d.Short())
	for _, n := range d.Notes {
		fmt.Fprintf(&sb, "\n  note: %s", n.Msg)
	}
	return sb.String()
}
