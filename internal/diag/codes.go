package diag

import "fmt"

// Code identifies a kind of diagnostic. The thousands digit selects the
// family printed as the ID prefix.
type Code uint16

const (
	UnknownCode Code = 0

	// Name resolution against builtin scope.
	ResInfo              Code = 1000
	ResUnknownIdentifier Code = 1001
	ResMalformedName     Code = 1002

	// Catalog verification.
	VerInfo             Code = 2000
	VerMissing          Code = 2001
	VerUnexpected       Code = 2002
	VerNotDeterministic Code = 2003
	VerInvalid          Code = 2004
	VerShape            Code = 2005
	VerAliasing         Code = 2006
	VerPanicked         Code = 2007

	// Snapshots.
	SnapInfo    Code = 3000
	SnapMissing Code = 3001
	SnapChanged Code = 3002
	SnapExtra   Code = 3003
	SnapIOError Code = 3004
	SnapSchema  Code = 3005

	// Observability payloads.
	ObsInfo    Code = 4000
	ObsTimings Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	ResInfo:              "Resolution information",
	ResUnknownIdentifier: "Unknown identifier",
	ResMalformedName:     "Malformed qualified name",
	VerInfo:              "Verification information",
	VerMissing:           "Builtin has no definition",
	VerUnexpected:        "Non-builtin produced a definition",
	VerNotDeterministic:  "Rebuilds are not alpha-equivalent",
	VerInvalid:           "Definition is structurally invalid",
	VerShape:             "Definition does not have its declared shape",
	VerAliasing:          "Variables shared across definitions",
	VerPanicked:          "Synthesizer panicked",
	SnapInfo:             "Snapshot information",
	SnapMissing:          "Definition missing from snapshot",
	SnapChanged:          "Definition differs from snapshot",
	SnapExtra:            "Snapshot holds an unknown definition",
	SnapIOError:          "Snapshot I/O error",
	SnapSchema:           "Snapshot schema mismatch",
	ObsInfo:              "Observability information",
	ObsTimings:           "Timing report",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VER%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SNP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
