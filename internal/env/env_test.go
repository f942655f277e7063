package env

import (
	"context"
	"testing"

	"stdsynth/internal/builtins"
	"stdsynth/internal/diag"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
)

func TestLookupMemoizes(t *testing.T) {
	e := New(Options{})
	first, d := e.Lookup(symbols.ListGet)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %s", d)
	}
	minted := e.Store().Minted()
	again, d := e.Lookup(symbols.ListGet)
	if d != nil || again != first {
		t.Fatalf("second lookup should return the memoized definition")
	}
	if e.Store().Minted() != minted {
		t.Fatalf("memoized lookup must not mint variables")
	}
	if got := e.Installed(); len(got) != 1 || got[0] != symbols.ListGet {
		t.Fatalf("Installed() = %v", got)
	}
}

func TestLookupUserSymbolIsUnknownIdentifier(t *testing.T) {
	table := symbols.NewTable()
	user := table.Intern(symbols.NsUser, "get")
	e := New(Options{Table: table})

	def, d := e.Lookup(user)
	if def != nil || d == nil {
		t.Fatalf("expected absence with a diagnostic")
	}
	if d.Code != diag.ResUnknownIdentifier || d.Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %s", d)
	}
	if d.Subject != "user.get" {
		t.Fatalf("subject = %q", d.Subject)
	}
	if e.Store().Minted() != 0 {
		t.Fatalf("rejected lookup must not mint variables")
	}
}

func TestLookupInternalHelperIsUnknownIdentifier(t *testing.T) {
	e := New(Options{})
	if _, d := e.Lookup(symbols.Arg1); d == nil || d.Code != diag.ResUnknownIdentifier {
		t.Fatalf("internal helpers are not in builtin scope")
	}
}

func TestLookupName(t *testing.T) {
	e := New(Options{})
	def, d := e.LookupName("Num.addChecked")
	if d != nil || def == nil || def.Name() != symbols.NumAddChecked {
		t.Fatalf("LookupName failed: %v", d)
	}
	if _, d := e.LookupName("List"); d == nil || d.Code != diag.ResMalformedName {
		t.Fatalf("expected ResMalformedName, got %v", d)
	}
	if _, d := e.LookupName("List.nope"); d == nil || d.Code != diag.ResUnknownIdentifier {
		t.Fatalf("expected ResUnknownIdentifier, got %v", d)
	}
}

func TestPopulateBuiltinsInstallsCatalog(t *testing.T) {
	e := New(Options{})
	bag := diag.NewBag(16)
	n := e.PopulateBuiltins(context.Background(), diag.BagReporter{Bag: bag})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if n != symbols.BuiltinCount() || e.Len() != n {
		t.Fatalf("installed %d of %d builtins", n, symbols.BuiltinCount())
	}
	// A second pass is a no-op on the store.
	minted := e.Store().Minted()
	if again := e.PopulateBuiltins(context.Background(), nil); again != n {
		t.Fatalf("second population reported %d", again)
	}
	if e.Store().Minted() != minted {
		t.Fatalf("second population minted variables")
	}
}

func TestPopulateBuiltinsRespectsScope(t *testing.T) {
	e := New(Options{Namespaces: []symbols.Namespace{symbols.NsBool}})
	n := e.PopulateBuiltins(context.Background(), nil)
	if n != len(symbols.ByNamespace(symbols.NsBool)) {
		t.Fatalf("installed %d, want only Bool builtins", n)
	}
	for _, sym := range e.Installed() {
		if sym.Namespace() != symbols.NsBool {
			t.Fatalf("%s installed outside scope", sym)
		}
	}
}

func TestPopulateBuiltinsStopsOnCancel(t *testing.T) {
	e := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if n := e.PopulateBuiltins(ctx, nil); n != 0 {
		t.Fatalf("cancelled population installed %d", n)
	}
}

func TestPopulateTracesNamespaces(t *testing.T) {
	ring := trace.NewRingTracer(1024, trace.LevelDetail)
	e := New(Options{
		Tracer:     ring,
		Namespaces: []symbols.Namespace{symbols.NsSet},
		Dispatcher: builtins.New(builtins.Options{Tracer: ring}),
	})
	e.PopulateBuiltins(context.Background(), nil)

	var ends int
	for _, ev := range ring.Snapshot() {
		if ev.Scope == trace.ScopeBuiltin {
			t.Fatalf("detail level must not record builtin spans")
		}
		if ev.Kind == trace.KindSpanEnd && ev.Name == "Set" {
			ends++
			if ev.Extra["session"] != e.Session().String() {
				t.Fatalf("namespace span lacks session id: %v", ev.Extra)
			}
		}
	}
	if ends != 1 {
		t.Fatalf("expected one Set namespace span, got %d", ends)
	}
}
