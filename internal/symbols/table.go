package symbols

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknown reports a well-formed name that names no identity.
var ErrUnknown = errors.New("unknown identity")

type qualified struct {
	ns   Namespace
	name string
}

// Table resolves names to symbols for one compilation. It starts with the
// static catalog and interns user identities on demand.
type Table struct {
	byName map[qualified]Symbol
	users  []entry
}

// NewTable builds a table seeded with the catalog.
func NewTable() *Table {
	t := &Table{byName: make(map[qualified]Symbol, int(staticEnd))}
	for s := Symbol(1); s < staticEnd; s++ {
		e := catalog[s]
		t.byName[qualified{ns: e.ns, name: e.name}] = s
	}
	return t
}

// Intern returns the symbol for (ns, name). Unknown pairs mint a user symbol,
// which is never a builtin.
func (t *Table) Intern(ns Namespace, name string) Symbol {
	name = norm.NFC.String(name)
	key := qualified{ns: ns, name: name}
	if s, ok := t.byName[key]; ok {
		return s
	}
	n, err := safecast.Conv[uint32](len(t.users))
	if err != nil {
		panic(fmt.Errorf("user symbol overflow: %w", err))
	}
	s := staticEnd + Symbol(n)
	if s < staticEnd {
		panic(fmt.Errorf("user symbol overflow at %d", n))
	}
	t.users = append(t.users, entry{ns: ns, name: name})
	t.byName[key] = s
	return s
}

// Lookup finds an existing symbol without interning.
func (t *Table) Lookup(ns Namespace, name string) (Symbol, bool) {
	s, ok := t.byName[qualified{ns: ns, name: norm.NFC.String(name)}]
	return s, ok
}

// Resolve parses a qualified name such as "List.get" and looks it up.
// Internal identities are addressed by their bare name ("#arg1").
func (t *Table) Resolve(qualifiedName string) (Symbol, error) {
	qualifiedName = strings.TrimSpace(norm.NFC.String(qualifiedName))
	if strings.HasPrefix(qualifiedName, "#") {
		if s, ok := t.Lookup(NsInternal, qualifiedName); ok {
			return s, nil
		}
		return NoSymbol, fmt.Errorf("%w: internal %q", ErrUnknown, qualifiedName)
	}
	prefix, name, ok := strings.Cut(qualifiedName, ".")
	if !ok || prefix == "" || name == "" {
		return NoSymbol, fmt.Errorf("expected Namespace.name, got %q", qualifiedName)
	}
	ns, ok := ParseNamespace(prefix)
	if !ok {
		return NoSymbol, fmt.Errorf("unknown namespace %q", prefix)
	}
	s, ok := t.Lookup(ns, name)
	if !ok {
		return NoSymbol, fmt.Errorf("%w: %s.%s", ErrUnknown, prefix, name)
	}
	return s, nil
}

// Namespace reports the namespace of any symbol known to the table.
func (t *Table) Namespace(s Symbol) Namespace {
	if e, ok := t.entry(s); ok {
		return e.ns
	}
	return NsInvalid
}

// Name reports the unqualified name of any symbol known to the table.
func (t *Table) Name(s Symbol) string {
	if e, ok := t.entry(s); ok {
		return e.name
	}
	return ""
}

// Qualified renders s as "Namespace.name" (or the bare internal name).
func (t *Table) Qualified(s Symbol) string {
	if s.IsStatic() || !s.IsValid() {
		return s.String()
	}
	e, ok := t.entry(s)
	if !ok {
		return s.String()
	}
	return e.ns.String() + "." + e.name
}

// Len reports how many symbols (catalog plus user) the table holds.
func (t *Table) Len() int { return len(t.byName) }

func (t *Table) entry(s Symbol) (entry, bool) {
	if s.IsStatic() {
		return catalog[s], true
	}
	if s < staticEnd {
		return entry{}, false
	}
	idx := int(s - staticEnd)
	if idx >= len(t.users) {
		return entry{}, false
	}
	return t.users[idx], true
}
