package can

import (
	"testing"

	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

func notDef(store *types.VarStore) *Def {
	b := NewBuilder(store)
	boolVar := b.Fresh()
	body := b.LowLevel(lowlevel.Not, boolVar, A(boolVar, b.Var(symbols.Arg1)))
	return b.Defn(symbols.BoolNot, []Param{b.Param(boolVar, symbols.Arg1)}, body, boolVar)
}

func TestTagMintsOpenSlots(t *testing.T) {
	b := NewBuilder(types.NewVarStore())
	e := b.Err("Overflow")
	outer, ok := e.Data.(TagData)
	if !ok || outer.Name != "Err" || len(outer.Args) != 1 {
		t.Fatalf("unexpected outer tag %+v", e.Data)
	}
	inner := outer.Args[0].Expr.Data.(TagData)
	if inner.Name != "Overflow" || len(inner.Args) != 0 {
		t.Fatalf("unexpected payload %+v", inner)
	}
	vars := []types.Variable{outer.VariantVar, outer.ExtVar, outer.Args[0].Var, inner.VariantVar, inner.ExtVar}
	seen := make(map[types.Variable]struct{})
	for _, v := range vars {
		if v.IsReserved() || !v.IsValid() {
			t.Fatalf("tag slot holds %v", v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("tag slot variable %v reused", v)
		}
		seen[v] = struct{}{}
	}
}

func TestDefnShape(t *testing.T) {
	def := notDef(types.NewVarStore())
	if def.Name() != symbols.BoolNot {
		t.Fatalf("expected Bool.not, got %s", def.Name())
	}
	c, ok := def.Closure()
	if !ok {
		t.Fatalf("expected closure body")
	}
	if c.Name != symbols.BoolNot || c.Recursive || len(c.Captured) != 0 {
		t.Fatalf("unexpected closure %+v", c)
	}
	if def.Arity() != 1 {
		t.Fatalf("expected arity 1, got %d", def.Arity())
	}
	if def.ExprVar == c.FunctionVar || c.ClosureVar == c.ClosureExtVar {
		t.Fatalf("defn must mint distinct function, lambda-set and expression variables")
	}
	if def.Body().Kind != ExprRunLowLevel {
		t.Fatalf("expected lowlevel body, got %s", def.Body().Kind)
	}
}

func TestConstantIsNotAFunction(t *testing.T) {
	store := types.NewVarStore()
	b := NewBuilder(store)
	v, prec := b.Fresh(), b.Fresh()
	def := b.Constant(symbols.NumMaxInt, v, b.Int(v, prec, 42), nil)
	if def.IsFunction() || def.Arity() != 0 {
		t.Fatalf("constant must not be a function")
	}
	if def.Body() != def.Expr {
		t.Fatalf("constant body is its expression")
	}
}

func TestCallAndAccessMintSlots(t *testing.T) {
	store := types.NewVarStore()
	b := NewBuilder(store)
	fnVar, ret := b.Fresh(), b.Fresh()
	call := b.Call(fnVar, b.Var(symbols.Arg2), ret, A(b.Fresh(), b.Var(symbols.Arg5))).Data.(CallData)
	if call.ClosureVar == fnVar || call.ClosureVar == ret || call.CalledVia != CalledViaSpace {
		t.Fatalf("call must mint its own lambda-set variable: %+v", call)
	}
	rec := b.Fresh()
	acc := b.AccessFresh(rec, b.Var(symbols.Arg3), lowlevel.FieldCheckedValue).Data.(AccessData)
	if acc.ExtVar == acc.FieldVar || acc.RecordVar != rec {
		t.Fatalf("unexpected access %+v", acc)
	}
}

func TestNewBuilderRejectsNilStore(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewBuilder(nil)
}
