// Package diag defines the findings stdsynth reports: unknown identifiers
// met while populating scope, and verification failures over the builtin
// catalog.
//
// Diagnostic is the central record: a severity, a stable numeric Code, a
// message and the qualified name it is about (the subject). Producers emit
// through a Reporter; BagReporter collects into a bounded Bag that can be
// sorted and deduplicated before rendering.
//
// The package performs no IO. Rendering to a terminal lives in cmd/stdsynth.
package diag
