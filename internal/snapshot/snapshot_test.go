package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"stdsynth/internal/diag"
	"stdsynth/internal/symbols"
)

func TestWriteReadCheckRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFile)
	p, err := Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(p.Entries) != symbols.BuiltinCount() {
		t.Fatalf("built %d entries", len(p.Entries))
	}
	if err := Write(path, p); err != nil {
		t.Fatalf("write: %v", err)
	}
	bag := diag.NewBag(16)
	n, err := Check(path, nil, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if n != 0 || bag.Len() != 0 {
		t.Fatalf("fresh snapshot should match, got %d diffs: %v", n, bag.Items())
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".stdsynth-snapshot-*"))
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}

func TestCompareReportsChanges(t *testing.T) {
	fresh, err := Build([]symbols.Symbol{symbols.ListGet, symbols.NumAddChecked, symbols.BoolNot})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	stored := &Payload{Schema: SchemaVersion, Entries: []Entry{
		fresh.Entries[0],
		{Name: "Num.addChecked", Shape: "passthrough", Vars: 1},
		{Name: "Gone.fn"},
	}}
	bag := diag.NewBag(16)
	if n := Compare(stored, fresh, diag.BagReporter{Bag: bag}); n != 3 {
		t.Fatalf("expected 3 diffs, got %d: %v", n, bag.Items())
	}
	items := bag.Items()
	if items[0].Code != diag.SnapChanged || items[0].Subject != "Num.addChecked" || len(items[0].Notes) != 2 {
		t.Fatalf("unexpected change report %s", items[0])
	}
	if items[1].Code != diag.SnapMissing || items[1].Subject != "Bool.not" {
		t.Fatalf("unexpected missing report %s", items[1])
	}
	if items[2].Code != diag.SnapExtra || items[2].Subject != "Gone.fn" || items[2].Severity != diag.SevWarning {
		t.Fatalf("unexpected extra report %s", items[2])
	}
}

func TestCheckScopedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	scope := symbols.ByNamespace(symbols.NsList)
	p, err := Build(scope)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := Write(path, p); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, syms := range [][]symbols.Symbol{nil, scope} {
		bag := diag.NewBag(16)
		n, err := Check(path, syms, diag.BagReporter{Bag: bag})
		if err != nil {
			t.Fatalf("check: %v", err)
		}
		if n != 0 {
			t.Fatalf("scoped snapshot of %d entries reports %d diffs: %v", len(p.Entries), n, bag.Items())
		}
	}

	// Widening the scope reports the new namespace as missing.
	wider := append(append([]symbols.Symbol{}, scope...), symbols.ByNamespace(symbols.NsBool)...)
	bag := diag.NewBag(64)
	n, err := Check(path, wider, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if want := len(symbols.ByNamespace(symbols.NsBool)); n != want {
		t.Fatalf("expected %d missing, got %d", want, n)
	}
	for _, d := range bag.Items() {
		if d.Code != diag.SnapMissing || !strings.HasPrefix(d.Subject, "Bool.") {
			t.Fatalf("unexpected report %s", d)
		}
	}
}

func TestCheckReportsUnresolvableEntriesAsExtra(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	p, err := Build([]symbols.Symbol{symbols.BoolNot})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	p.Entries = append(p.Entries, Entry{Name: "Bool.retired"})
	if err := Write(path, p); err != nil {
		t.Fatalf("write: %v", err)
	}
	bag := diag.NewBag(4)
	n, err := Check(path, nil, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if n != 1 || bag.Items()[0].Code != diag.SnapExtra || bag.HasErrors() {
		t.Fatalf("expected one extra warning, got %d: %v", n, bag.Items())
	}
}

func TestCompareReportsMissing(t *testing.T) {
	fresh, err := Build([]symbols.Symbol{symbols.BoolNot})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	bag := diag.NewBag(4)
	if n := Compare(&Payload{Schema: SchemaVersion}, fresh, diag.BagReporter{Bag: bag}); n != 1 {
		t.Fatalf("expected one diff, got %d", n)
	}
	if bag.Items()[0].Code != diag.SnapMissing {
		t.Fatalf("expected SnapMissing, got %s", bag.Items()[0])
	}
}

func TestReadRejectsOtherSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.mp")
	data, err := msgpack.Marshal(&Payload{Schema: SchemaVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Read(path); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.mp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
