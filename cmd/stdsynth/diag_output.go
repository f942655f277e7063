package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"stdsynth/internal/diag"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
	subjectColor    = color.New(color.Bold)
	noteColor       = color.New(color.Faint)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarningColor
	default:
		return sevInfoColor
	}
}

// printDiagnostics renders up to limit diagnostics, one per line with
// indented notes, followed by a count of what was elided.
func printDiagnostics(w io.Writer, items []diag.Diagnostic, limit int) {
	for i, d := range items {
		if limit > 0 && i == limit {
			fmt.Fprintf(w, "... %d more diagnostics\n", len(items)-limit)
			return
		}
		sev := severityColor(d.Severity)
		fmt.Fprintf(w, "%s %s", sev.Sprintf("%s[%s]", lowerSeverity(d.Severity), d.Code.ID()), subjectColor.Sprint(d.Subject))
		fmt.Fprintf(w, ": %s\n", d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", noteColor.Sprint("note:"), n.Msg)
		}
	}
}

func lowerSeverity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}
