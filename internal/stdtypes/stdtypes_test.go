package stdtypes

import (
	"testing"

	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

func TestMaxI128SignatureIsClosed(t *testing.T) {
	store := types.NewVarStore()
	ty, introduced, err := Signature(symbols.NumMaxI128, store)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}
	if len(introduced) != 0 || store.Minted() != 0 {
		t.Fatalf("I128 has no free variables, got %v", introduced)
	}
	if got := ty.String(); got != "I128" {
		t.Fatalf("String() = %q", got)
	}
	if ty.Result == nil || ty.Result.String() != "Num (Integer Signed128)" {
		t.Fatalf("unexpected alias target %v", ty.Result)
	}
}

func TestIntSignatureIntroducesOneVariable(t *testing.T) {
	store := types.NewVarStore()
	_, introduced, err := Signature(symbols.NumMaxInt, store)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}
	if len(introduced) != 1 || !store.Owns(introduced[0]) {
		t.Fatalf("expected one introduced variable from the store, got %v", introduced)
	}
}

func TestMissingSignature(t *testing.T) {
	if _, _, err := Signature(symbols.ListGet, types.NewVarStore()); err == nil {
		t.Fatalf("expected error for builtin without signature")
	}
	if got := Symbols(); len(got) != 3 || got[0] != symbols.NumMaxInt {
		t.Fatalf("unexpected symbol list %v", got)
	}
}
