package types

import "testing"

func TestVarStoreMintsDistinctVariables(t *testing.T) {
	store := NewVarStore()
	seen := make(map[Variable]struct{})
	for range 100 {
		v := store.Fresh()
		if v.IsReserved() {
			t.Fatalf("fresh variable %v collides with reserved set", v)
		}
		if _, ok := seen[v]; ok {
			t.Fatalf("variable %v minted twice", v)
		}
		seen[v] = struct{}{}
	}
	if store.Minted() != 100 {
		t.Fatalf("expected 100 minted variables, got %d", store.Minted())
	}
}

func TestVarStoreSeedIsClamped(t *testing.T) {
	store := NewVarStoreAt(VarNat)
	if got := store.Fresh(); got != FirstFresh {
		t.Fatalf("expected clamped seed %v, got %v", FirstFresh, got)
	}
	seeded := NewVarStoreAt(1000)
	if got := seeded.Fresh(); got != 1000 {
		t.Fatalf("expected seed 1000, got %v", got)
	}
}

func TestVarStoreOwns(t *testing.T) {
	store := NewVarStoreAt(50)
	v := store.Fresh()
	if !store.Owns(v) {
		t.Fatalf("store should own %v", v)
	}
	if !store.Owns(VarNat) {
		t.Fatalf("reserved variables belong to every store")
	}
	if store.Owns(49) || store.Owns(store.Peek()) {
		t.Fatalf("store must not own variables outside its minted range")
	}
}

func TestFreshNBatch(t *testing.T) {
	store := NewVarStore()
	vars := store.FreshN(3)
	if len(vars) != 3 || vars[0]+1 != vars[1] || vars[1]+1 != vars[2] {
		t.Fatalf("unexpected batch %v", vars)
	}
	if store.FreshN(0) != nil {
		t.Fatalf("empty batch should be nil")
	}
}

func TestInstantiateSharesFlexVariables(t *testing.T) {
	// a, a -> List a
	list := Solved{Kind: KindApply, Name: "List", Args: []Solved{{Kind: KindVariable, Flex: 1}}}
	sig := Solved{
		Kind:   KindFunction,
		Args:   []Solved{{Kind: KindVariable, Flex: 1}, {Kind: KindVariable, Flex: 1}},
		Result: &list,
	}
	store := NewVarStore()
	fv := &FreeVars{}
	ty, err := Instantiate(sig, fv, store)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	if ty.Args[0].Var != ty.Args[1].Var || ty.Args[0].Var != ty.Result.Args[0].Var {
		t.Fatalf("flex id 1 must map to a single variable: %s", ty)
	}
	if got := fv.Introduced(); len(got) != 1 {
		t.Fatalf("expected one introduced variable, got %v", got)
	}
	if want := "v4, v4 -> List v4"; ty.String() != want {
		t.Fatalf("String() = %q, want %q", ty.String(), want)
	}
}

func TestInstantiateRejectsInvalidKind(t *testing.T) {
	if _, err := Instantiate(Solved{}, nil, NewVarStore()); err == nil {
		t.Fatalf("expected error for invalid kind")
	}
}
