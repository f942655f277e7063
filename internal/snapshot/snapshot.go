// Package snapshot records alpha-normalized builtin definitions on disk and
// compares them with fresh synthesis, so that an accidental change to any
// synthesized tree shows up as a diff.
package snapshot

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"stdsynth/internal/builtins"
	"stdsynth/internal/can"
	"stdsynth/internal/diag"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// SchemaVersion is bumped whenever Payload or the normalized text changes.
const SchemaVersion uint16 = 1

// DefaultFile is used when no path is configured.
const DefaultFile = "stdsynth.snapshot.mp"

var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// Entry is one normalized definition.
type Entry struct {
	Name   string   `msgpack:"name"`
	Shape  string   `msgpack:"shape"`
	Vars   int      `msgpack:"vars"`
	Text   string   `msgpack:"text"`
	Digest [32]byte `msgpack:"digest"`
}

// Payload is the on-disk snapshot.
type Payload struct {
	Schema  uint16  `msgpack:"schema"`
	Builtin int     `msgpack:"builtins"`
	Entries []Entry `msgpack:"entries"`
}

// Build synthesizes syms (the whole catalog when empty) each from its own
// store and records their normalized text.
func Build(syms []symbols.Symbol) (*Payload, error) {
	if len(syms) == 0 {
		syms = symbols.Builtins()
	}
	p := &Payload{Schema: SchemaVersion, Builtin: symbols.BuiltinCount()}
	for _, sym := range syms {
		def, ok := builtins.Synthesize(sym, types.NewVarStore())
		if !ok {
			return nil, fmt.Errorf("snapshot: no definition for %s", sym)
		}
		p.Entries = append(p.Entries, newEntry(sym, def))
	}
	return p, nil
}

func newEntry(sym symbols.Symbol, def *can.Def) Entry {
	norm := can.Normalize(def)
	text := can.DefString(norm, can.PrintOptions{Vars: true})
	return Entry{
		Name:   sym.String(),
		Shape:  builtins.ShapeOf(sym).String(),
		Vars:   len(can.Vars(norm)),
		Text:   text,
		Digest: sha256.Sum256([]byte(text)),
	}
}

// Write serializes p to path through a temp file and an atomic rename.
func Write(path string, p *Payload) (err error) {
	if p == nil {
		return errors.New("snapshot: nil payload")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.CreateTemp(dir, ".stdsynth-snapshot-*")
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err = enc.Encode(p); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Read loads a snapshot. A payload written by another schema version yields
// ErrSchemaMismatch.
func Read(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	var p Payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: file has %d, want %d", ErrSchemaMismatch, p.Schema, SchemaVersion)
	}
	return &p, nil
}

// Compare reports every difference between stored and fresh to r and
// returns how many were found. Entries are matched by name.
func Compare(stored, fresh *Payload, r diag.Reporter) int {
	if r == nil {
		r = diag.NopReporter{}
	}
	old := make(map[string]Entry, len(stored.Entries))
	for _, e := range stored.Entries {
		old[e.Name] = e
	}
	diffs := 0
	for _, e := range fresh.Entries {
		prev, ok := old[e.Name]
		delete(old, e.Name)
		switch {
		case !ok:
			diffs++
			r.Report(diag.NewError(diag.SnapMissing, e.Name, "definition is not in the snapshot"))
		case prev.Digest != e.Digest:
			diffs++
			d := diag.NewError(diag.SnapChanged, e.Name, "normalized definition changed")
			if prev.Shape != e.Shape {
				d = d.WithNote(fmt.Sprintf("shape %s -> %s", prev.Shape, e.Shape))
			}
			if prev.Vars != e.Vars {
				d = d.WithNote(fmt.Sprintf("variables %d -> %d", prev.Vars, e.Vars))
			}
			r.Report(d)
		}
	}
	extra := make([]string, 0, len(old))
	for name := range old {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		diffs++
		r.Report(diag.New(diag.SevWarning, diag.SnapExtra, name, "snapshot entry has no fresh counterpart"))
	}
	return diffs
}

// Check compares the snapshot at path with fresh synthesis of syms. With no
// syms it rebuilds the builtins the snapshot itself names; entries whose
// names no longer resolve to a builtin are reported as extra.
func Check(path string, syms []symbols.Symbol, r diag.Reporter) (int, error) {
	stored, err := Read(path)
	if err != nil {
		return 0, err
	}
	if len(syms) == 0 {
		syms = storedSymbols(stored)
	}
	if len(syms) == 0 {
		return Compare(stored, &Payload{Schema: SchemaVersion}, r), nil
	}
	fresh, err := Build(syms)
	if err != nil {
		return 0, err
	}
	return Compare(stored, fresh, r), nil
}

func storedSymbols(p *Payload) []symbols.Symbol {
	table := symbols.NewTable()
	out := make([]symbols.Symbol, 0, len(p.Entries))
	for _, e := range p.Entries {
		sym, err := table.Resolve(e.Name)
		if err != nil || !sym.IsBuiltin() {
			continue
		}
		out = append(out, sym)
	}
	return out
}
