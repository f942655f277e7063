package builtins

import (
	"errors"
	"testing"

	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
	"stdsynth/internal/types"
)

func synth(t *testing.T, sym symbols.Symbol, store *types.VarStore) *can.Def {
	t.Helper()
	def, ok := Synthesize(sym, store)
	if !ok || def == nil {
		t.Fatalf("no definition for %s", sym)
	}
	return def
}

func TestEveryBuiltinSynthesizes(t *testing.T) {
	for _, sym := range symbols.Builtins() {
		if !Covers(sym) {
			t.Fatalf("%s has no synthesizer", sym)
		}
		store := types.NewVarStore()
		def := synth(t, sym, store)
		if def.Name() != sym {
			t.Fatalf("%s: definition is named %s", sym, def.Name())
		}
		if err := can.Validate(def, store); err != nil {
			t.Fatalf("%s: %v", sym, err)
		}
		if err := CheckShape(def, ShapeOf(sym)); err != nil {
			t.Fatalf("%v", err)
		}
	}
}

func TestRegistryCoversOnlyBuiltins(t *testing.T) {
	entries := Entries()
	if len(entries) != symbols.BuiltinCount() {
		t.Fatalf("registry has %d entries, catalog has %d builtins", len(entries), symbols.BuiltinCount())
	}
	for i, sym := range entries {
		if !sym.IsBuiltin() {
			t.Fatalf("%s is registered but not flagged builtin", sym)
		}
		if i > 0 && entries[i-1] >= sym {
			t.Fatalf("entries out of catalog order at %d", i)
		}
		if ShapeOf(sym) == ShapeInvalid {
			t.Fatalf("%s has no shape", sym)
		}
	}
}

func TestNonBuiltinPanicsWhenChecked(t *testing.T) {
	d := New(Options{CheckPreconditions: true})
	for _, sym := range []symbols.Symbol{symbols.NoSymbol, symbols.Arg1, symbols.ListSumAdd} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var pe *PreconditionError
				if !ok || !errors.As(err, &pe) || pe.Symbol != sym {
					t.Fatalf("%s: expected *PreconditionError panic, got %v", sym, r)
				}
			}()
			d.Synthesize(sym, types.NewVarStore())
		}()
	}
}

func TestNonBuiltinIsAbsentWhenUnchecked(t *testing.T) {
	d := New(Options{})
	table := symbols.NewTable()
	user := table.Intern(symbols.NsUser, "get")
	for _, sym := range []symbols.Symbol{symbols.NoSymbol, symbols.Arg3, symbols.DictGetResult, user} {
		store := types.NewVarStore()
		before := store.Peek()
		def, ok := d.Synthesize(sym, store)
		if ok || def != nil {
			t.Fatalf("%s: expected absence", sym)
		}
		if store.Peek() != before {
			t.Fatalf("%s: absent synthesis minted variables", sym)
		}
	}
}

func TestSynthesisIsAlphaDeterministic(t *testing.T) {
	for _, sym := range symbols.Builtins() {
		a := synth(t, sym, types.NewVarStore())
		b := synth(t, sym, types.NewVarStoreAt(5000))
		if can.Equal(a, b) {
			t.Fatalf("%s: differently seeded stores produced identical variables", sym)
		}
		if !can.AlphaEqual(a, b) {
			t.Fatalf("%s: rebuilds are not alpha-equivalent:\n%s\n%s", sym,
				can.DefString(a, can.PrintOptions{Vars: true}), can.DefString(b, can.PrintOptions{Vars: true}))
		}
		if !can.Equal(can.Normalize(a), can.Normalize(b)) {
			t.Fatalf("%s: normalized rebuilds differ", sym)
		}
	}
}

func TestSharedStoreNeverAliasesAcrossDefinitions(t *testing.T) {
	store := types.NewVarStore()
	owner := make(map[types.Variable]symbols.Symbol)
	for _, sym := range symbols.Builtins() {
		def := synth(t, sym, store)
		for _, v := range can.Vars(def) {
			if v.IsReserved() {
				continue
			}
			if prev, ok := owner[v]; ok && prev != sym {
				t.Fatalf("%s reused by %s and %s", v, prev, sym)
			}
			owner[v] = sym
		}
	}
}

func TestDeliberateOperandSharing(t *testing.T) {
	for _, sym := range []symbols.Symbol{symbols.BoolIsEq, symbols.NumIsLt, symbols.NumAdd, symbols.NumDiv} {
		def := synth(t, sym, types.NewVarStore())
		c, _ := def.Closure()
		if len(c.Params) != 2 || c.Params[0].Var != c.Params[1].Var {
			t.Fatalf("%s: operands should share one variable", sym)
		}
	}
	def := synth(t, symbols.ListMap, types.NewVarStore())
	c, _ := def.Closure()
	if c.Params[0].Var == c.Params[1].Var || c.Params[0].Var == c.ReturnVar {
		t.Fatalf("List.map: passthrough variables must be distinct")
	}
}

func TestSynthesisEmitsBuiltinSpan(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelDebug)
	d := New(Options{Tracer: ring})
	if _, ok := d.Synthesize(symbols.ListGet, types.NewVarStore()); !ok {
		t.Fatalf("List.get not synthesized")
	}
	events := ring.Snapshot()
	if len(events) != 2 {
		t.Fatalf("expected begin/end, got %d events", len(events))
	}
	end := events[1]
	if end.Kind != trace.KindSpanEnd || end.Name != "List.get" || end.Scope != trace.ScopeBuiltin {
		t.Fatalf("unexpected end event %+v", end)
	}
	if end.Extra["shape"] != "bounds" || end.Extra["minted"] == "" {
		t.Fatalf("missing extras: %v", end.Extra)
	}
}

func TestTypedRejectsMismatchedLayout(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a layout that does not match the arity")
		}
	}()
	typed(lowlevel.ListMap, "a>r")
}
