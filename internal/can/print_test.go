package can

import (
	"strings"
	"testing"

	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

func TestPrintDefWithVars(t *testing.T) {
	def := notDef(types.NewVarStore())
	var sb strings.Builder
	if err := Dump(&sb, def); err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "Bool.not:v8 =\n  \\#arg1:v4 ->:v4 [Bool.not fn:v5 set:v6|v7] not(#arg1:v4):v4\n"
	if sb.String() != want {
		t.Fatalf("unexpected dump:\n%q\nwant\n%q", sb.String(), want)
	}
}

func TestPrintDefWithoutVars(t *testing.T) {
	got := DefString(notDef(types.NewVarStoreAt(77)), PrintOptions{})
	want := "Bool.not =\n  \\#arg1 -> [Bool.not] not(#arg1)\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintNormalizedIsSeedIndependent(t *testing.T) {
	opts := PrintOptions{Vars: true, Normalize: true}
	a := DefString(notDef(types.NewVarStore()), opts)
	b := DefString(notDef(types.NewVarStoreAt(4242)), opts)
	if a != b {
		t.Fatalf("normalized dumps differ:\n%s\n%s", a, b)
	}
}

func TestExprStringIfBlock(t *testing.T) {
	b := NewBuilder(types.NewVarStore())
	cond := b.Fresh()
	e := b.If(cond, b.Fresh(), b.Var(symbols.Arg1), b.Ok(b.Var(symbols.Arg2)), b.Err("Nope"))
	got := ExprString(e)
	want := "if #arg1 then Ok(#arg2)\nelse Err(Nope)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
