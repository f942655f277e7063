package can

import (
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// PatternKind enumerates the pattern forms synthesized bodies use.
type PatternKind uint8

const (
	PatternInvalid PatternKind = iota
	// PatternIdentifier binds the matched value to Symbol.
	PatternIdentifier
	// PatternUnderscore matches anything and binds nothing.
	PatternUnderscore
	// PatternAppliedTag matches `Tag args...`.
	PatternAppliedTag
)

func (k PatternKind) String() string {
	switch k {
	case PatternIdentifier:
		return "Identifier"
	case PatternUnderscore:
		return "Underscore"
	case PatternAppliedTag:
		return "AppliedTag"
	default:
		return "Unknown"
	}
}

// PatternArg is a sub-pattern of an applied tag.
type PatternArg struct {
	Var     types.Variable
	Pattern *Pattern
}

// Pattern is a canonical pattern.
type Pattern struct {
	Kind PatternKind

	// PatternIdentifier
	Symbol symbols.Symbol

	// PatternAppliedTag
	WholeVar types.Variable
	ExtVar   types.Variable
	Tag      string
	Args     []PatternArg
}

// Bound lists the identities the pattern introduces, left to right.
func (p *Pattern) Bound() []symbols.Symbol {
	if p == nil {
		return nil
	}
	switch p.Kind {
	case PatternIdentifier:
		return []symbols.Symbol{p.Symbol}
	case PatternAppliedTag:
		var out []symbols.Symbol
		for _, a := range p.Args {
			out = append(out, a.Pattern.Bound()...)
		}
		return out
	default:
		return nil
	}
}
