package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Symbol identifies a builtin, an internal helper or a user definition.
// Catalog symbols are process-wide constants; user symbols are minted by a
// Table and only meaningful inside it.
type Symbol uint32

// Namespace groups symbols the way qualified names do (`List.get`).
type Namespace uint8

const (
	NsInvalid Namespace = iota
	NsBool
	NsStr
	NsNum
	NsList
	NsDict
	NsSet
	NsResult
	// NsInternal holds compiler-internal identities (#arg1, #sumAdd, ...).
	NsInternal
	// NsUser holds everything interned at runtime.
	NsUser
)

func (ns Namespace) String() string {
	switch ns {
	case NsBool:
		return "Bool"
	case NsStr:
		return "Str"
	case NsNum:
		return "Num"
	case NsList:
		return "List"
	case NsDict:
		return "Dict"
	case NsSet:
		return "Set"
	case NsResult:
		return "Result"
	case NsInternal:
		return "#internal"
	case NsUser:
		return "user"
	default:
		return "invalid"
	}
}

// ParseNamespace maps a namespace prefix back to its value.
func ParseNamespace(s string) (Namespace, bool) {
	for ns := NsBool; ns <= NsResult; ns++ {
		if ns.String() == s {
			return ns, true
		}
	}
	return NsInvalid, false
}

// Namespaces lists the builtin namespaces in catalog order.
func Namespaces() []Namespace {
	return []Namespace{NsBool, NsStr, NsList, NsDict, NsSet, NsNum, NsResult}
}

// Flags encode misc attributes for quick checks.
type Flags uint8

const (
	// FlagBuiltin marks identities the dispatcher must be able to synthesize.
	FlagBuiltin Flags = 1 << iota
	// FlagInternal marks helper identities used inside synthesized bodies.
	FlagInternal
)

// Strings returns a slice of textual flag labels.
func (f Flags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 2)
	if f&FlagBuiltin != 0 {
		labels = append(labels, "builtin")
	}
	if f&FlagInternal != 0 {
		labels = append(labels, "internal")
	}
	return labels
}

type entry struct {
	ns    Namespace
	name  string
	flags Flags
}

// IsValid reports whether the symbol is non-zero.
func (s Symbol) IsValid() bool { return s != NoSymbol }

// IsStatic reports whether s comes from the process-wide catalog.
func (s Symbol) IsStatic() bool { return s > NoSymbol && s < staticEnd }

// IsBuiltin reports whether the symbol is a builtin identity. User symbols
// never are, even when their name shadows a builtin.
func (s Symbol) IsBuiltin() bool {
	return s.IsStatic() && catalog[s].flags&FlagBuiltin != 0
}

// IsInternal reports whether s is a compiler-internal helper identity.
func (s Symbol) IsInternal() bool {
	return s.IsStatic() && catalog[s].flags&FlagInternal != 0
}

// Flags returns the catalog flags (zero for user symbols).
func (s Symbol) Flags() Flags {
	if !s.IsStatic() {
		return 0
	}
	return catalog[s].flags
}

// Namespace returns the namespace of a catalog symbol; user symbols report NsUser.
func (s Symbol) Namespace() Namespace {
	switch {
	case s.IsStatic():
		return catalog[s].ns
	case s.IsValid():
		return NsUser
	default:
		return NsInvalid
	}
}

// Name returns the unqualified name of a catalog symbol.
func (s Symbol) Name() string {
	if !s.IsStatic() {
		return ""
	}
	return catalog[s].name
}

func (s Symbol) String() string {
	switch {
	case !s.IsValid():
		return "<no-symbol>"
	case s.IsInternal():
		return catalog[s].name
	case s.IsStatic():
		return catalog[s].ns.String() + "." + catalog[s].name
	default:
		return fmt.Sprintf("user#%d", uint32(s-staticEnd))
	}
}

// Builtins lists every builtin identity in catalog order.
func Builtins() []Symbol {
	out := make([]Symbol, 0, BuiltinCount())
	for s := Symbol(1); s < staticEnd; s++ {
		if s.IsBuiltin() {
			out = append(out, s)
		}
	}
	return out
}

// BuiltinCount reports how many builtins the catalog declares.
func BuiltinCount() int {
	n := 0
	for s := Symbol(1); s < staticEnd; s++ {
		if s.IsBuiltin() {
			n++
		}
	}
	return n
}

// ByNamespace lists the builtins of one namespace in catalog order.
func ByNamespace(ns Namespace) []Symbol {
	var out []Symbol
	for _, s := range Builtins() {
		if catalog[s].ns == ns {
			out = append(out, s)
		}
	}
	return out
}

// Index returns the zero-based catalog position of a static symbol.
func (s Symbol) Index() int {
	if !s.IsStatic() {
		return -1
	}
	idx, err := safecast.Conv[int](uint32(s) - 1)
	if err != nil {
		panic(fmt.Errorf("symbol index overflow: %w", err))
	}
	return idx
}
