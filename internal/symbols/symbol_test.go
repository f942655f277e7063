package symbols

import "testing"

func TestCatalogIsFullyPopulated(t *testing.T) {
	for s := Symbol(1); s < staticEnd; s++ {
		e := catalog[s]
		if e.name == "" || e.ns == NsInvalid || e.flags == 0 {
			t.Fatalf("catalog entry %d is incomplete: %+v", s, e)
		}
	}
}

func TestBuiltinCount(t *testing.T) {
	if got := BuiltinCount(); got != 142 {
		t.Fatalf("expected 142 builtins, got %d", got)
	}
	if got := len(Builtins()); got != BuiltinCount() {
		t.Fatalf("Builtins() length %d != BuiltinCount() %d", got, BuiltinCount())
	}
}

func TestNamespaceCounts(t *testing.T) {
	want := map[Namespace]int{
		NsBool:   5,
		NsStr:    15,
		NsList:   41,
		NsDict:   13,
		NsSet:    12,
		NsNum:    52,
		NsResult: 4,
	}
	total := 0
	for _, ns := range Namespaces() {
		got := len(ByNamespace(ns))
		if got != want[ns] {
			t.Fatalf("%s: expected %d builtins, got %d", ns, want[ns], got)
		}
		total += got
	}
	if total != BuiltinCount() {
		t.Fatalf("namespaces cover %d builtins, catalog has %d", total, BuiltinCount())
	}
}

func TestInternalSymbolsAreNotBuiltins(t *testing.T) {
	for _, s := range []Symbol{Arg1, Arg6, ListSumAdd, SetWalkUserFunction, DictGetResult} {
		if s.IsBuiltin() {
			t.Fatalf("%s must not be a builtin", s)
		}
		if !s.IsInternal() {
			t.Fatalf("%s must be internal", s)
		}
	}
}

func TestSymbolString(t *testing.T) {
	cases := []struct {
		sym  Symbol
		want string
	}{
		{ListGet, "List.get"},
		{NumDivCeil, "Num.divCeil"},
		{ResultWithDefault, "Result.withDefault"},
		{Arg3, "#arg3"},
		{NoSymbol, "<no-symbol>"},
	}
	for _, tc := range cases {
		if got := tc.sym.String(); got != tc.want {
			t.Fatalf("String(%d) = %q, want %q", tc.sym, got, tc.want)
		}
	}
}

func TestIndexIsCatalogPosition(t *testing.T) {
	if BoolIsEq.Index() != 0 {
		t.Fatalf("first builtin should sit at index 0, got %d", BoolIsEq.Index())
	}
	if Symbol(staticEnd).Index() != -1 {
		t.Fatalf("user symbols have no catalog index")
	}
}
