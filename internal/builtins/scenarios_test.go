package builtins

import (
	"testing"

	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

func body(t *testing.T, sym symbols.Symbol) *can.Expr {
	t.Helper()
	def := synth(t, sym, types.NewVarStore())
	b := def.Body()
	if b == nil {
		t.Fatalf("%s has no body", sym)
	}
	return b
}

func expectKind(t *testing.T, e *can.Expr, kind can.ExprKind) {
	t.Helper()
	if e == nil || e.Kind != kind {
		t.Fatalf("expected %s, got %v", kind, e)
	}
}

func expectVar(t *testing.T, e *can.Expr, sym symbols.Symbol) {
	t.Helper()
	expectKind(t, e, can.ExprVar)
	if got := e.Data.(can.VarData).Symbol; got != sym {
		t.Fatalf("expected reference to %s, got %s", sym, got)
	}
}

func expectOp(t *testing.T, e *can.Expr, op lowlevel.Op) can.RunLowLevelData {
	t.Helper()
	expectKind(t, e, can.ExprRunLowLevel)
	d := e.Data.(can.RunLowLevelData)
	if d.Op != op {
		t.Fatalf("expected %s, got %s", op, d.Op)
	}
	return d
}

func expectTag(t *testing.T, e *can.Expr, name string) can.TagData {
	t.Helper()
	expectKind(t, e, can.ExprTag)
	d := e.Data.(can.TagData)
	if d.Name != name {
		t.Fatalf("expected tag %s, got %s", name, d.Name)
	}
	return d
}

// expectErr checks `Err reason` with a payload-free reason and returns nothing.
func expectErr(t *testing.T, e *can.Expr, reason string) {
	t.Helper()
	outer := expectTag(t, e, "Err")
	if len(outer.Args) != 1 {
		t.Fatalf("Err takes one argument, got %d", len(outer.Args))
	}
	inner := expectTag(t, outer.Args[0].Expr, reason)
	if len(inner.Args) != 0 {
		t.Fatalf("%s should carry no payload", reason)
	}
	if inner.ExtVar.IsReserved() || outer.ExtVar.IsReserved() {
		t.Fatalf("error tags must stay open")
	}
}

func expectOk(t *testing.T, e *can.Expr) *can.Expr {
	t.Helper()
	d := expectTag(t, e, "Ok")
	if len(d.Args) != 1 {
		t.Fatalf("Ok takes one argument, got %d", len(d.Args))
	}
	return d.Args[0].Expr
}

func TestCheckedAddBindsRecordThenBranchesOnOverflow(t *testing.T) {
	e := body(t, symbols.NumAddChecked)
	expectKind(t, e, can.ExprLetNonRec)
	let := e.Data.(can.LetNonRecData)
	if let.Def.Name() != symbols.Arg3 {
		t.Fatalf("record bound to %s, want #arg3", let.Def.Name())
	}
	call := expectOp(t, let.Def.Expr, lowlevel.NumAddChecked)
	expectVar(t, call.Args[0].Expr, symbols.Arg1)
	expectVar(t, call.Args[1].Expr, symbols.Arg2)
	if let.Def.ExprVar != call.Ret {
		t.Fatalf("binding and opcode result must share the record variable")
	}

	expectKind(t, let.Body, can.ExprIf)
	branch := let.Body.Data.(can.IfData)
	expectKind(t, branch.Branches[0].Cond, can.ExprAccess)
	flag := branch.Branches[0].Cond.Data.(can.AccessData)
	if flag.Field != lowlevel.FieldCheckedOverflow {
		t.Fatalf("guard reads %q", flag.Field)
	}
	expectVar(t, flag.Record, symbols.Arg3)
	expectErr(t, branch.Branches[0].Then, "Overflow")
	value := expectOk(t, branch.Else)
	expectKind(t, value, can.ExprAccess)
	if value.Data.(can.AccessData).Field != lowlevel.FieldCheckedValue {
		t.Fatalf("success reads the wrong field")
	}
}

func TestListGetChecksIndexAgainstLength(t *testing.T) {
	e := body(t, symbols.ListGet)
	expectKind(t, e, can.ExprIf)
	d := e.Data.(can.IfData)

	guard := expectOp(t, d.Branches[0].Cond, lowlevel.NumLt)
	expectVar(t, guard.Args[0].Expr, symbols.Arg2)
	length := expectOp(t, guard.Args[1].Expr, lowlevel.ListLen)
	expectVar(t, length.Args[0].Expr, symbols.Arg1)
	if guard.Args[0].Var != guard.Args[1].Var {
		t.Fatalf("index and length must be unified")
	}

	read := expectOp(t, expectOk(t, d.Branches[0].Then), lowlevel.ListGetUnsafe)
	expectVar(t, read.Args[0].Expr, symbols.Arg1)
	expectVar(t, read.Args[1].Expr, symbols.Arg2)
	expectErr(t, d.Else, "OutOfBounds")
}

func TestWithDefaultMatchesOkAndErr(t *testing.T) {
	e := body(t, symbols.ResultWithDefault)
	expectKind(t, e, can.ExprWhen)
	d := e.Data.(can.WhenData)
	expectVar(t, d.Cond, symbols.Arg1)
	if len(d.Branches) != 2 {
		t.Fatalf("expected two arms, got %d", len(d.Branches))
	}

	ok := d.Branches[0].Patterns[0]
	if ok.Tag != "Ok" || ok.Args[0].Pattern.Kind != can.PatternIdentifier || ok.Args[0].Pattern.Symbol != symbols.Arg3 {
		t.Fatalf("first arm should be `Ok #arg3`")
	}
	expectVar(t, d.Branches[0].Value, symbols.Arg3)

	errArm := d.Branches[1].Patterns[0]
	if errArm.Tag != "Err" || errArm.Args[0].Pattern.Kind != can.PatternUnderscore {
		t.Fatalf("second arm should be `Err _`")
	}
	expectVar(t, d.Branches[1].Value, symbols.Arg2)
	if ok.ExtVar == errArm.ExtVar {
		t.Fatalf("each pattern needs its own extension variable")
	}
}

func TestJoinMapFoldsWithCapturedMapper(t *testing.T) {
	walk := expectOp(t, body(t, symbols.ListJoinMap), lowlevel.ListWalk)
	expectVar(t, walk.Args[0].Expr, symbols.Arg1)

	expectKind(t, walk.Args[1].Expr, can.ExprList)
	if n := len(walk.Args[1].Expr.Data.(can.ListData).Elems); n != 0 {
		t.Fatalf("seed should be an empty list, has %d element(s)", n)
	}

	expectKind(t, walk.Args[2].Expr, can.ExprClosure)
	step := walk.Args[2].Expr.Data.(can.ClosureData)
	if step.Name != symbols.ListJoinMapConcat {
		t.Fatalf("step closure named %s", step.Name)
	}
	if len(step.Captured) != 1 || step.Captured[0].Symbol != symbols.Arg2 {
		t.Fatalf("step closure must capture the mapper #arg2")
	}
	concat := expectOp(t, step.Body, lowlevel.ListConcat)
	expectVar(t, concat.Args[0].Expr, symbols.Arg3)
	expectKind(t, concat.Args[1].Expr, can.ExprCall)
	call := concat.Args[1].Expr.Data.(can.CallData)
	expectVar(t, call.Fn, symbols.Arg2)
	expectVar(t, call.Args[0].Expr, symbols.Arg4)
	if call.FnVar != step.Captured[0].Var {
		t.Fatalf("call must use the captured mapper's variable")
	}
}

func TestDivisionGuardsAgainstZero(t *testing.T) {
	cases := []struct {
		sym  symbols.Symbol
		op   lowlevel.Op
		zero can.ExprKind
	}{
		{symbols.NumDiv, lowlevel.NumDivUnchecked, can.ExprFloat},
		{symbols.NumDivFloor, lowlevel.NumDivUnchecked, can.ExprInt},
		{symbols.NumDivCeil, lowlevel.NumDivCeilUnchecked, can.ExprInt},
		{symbols.NumRem, lowlevel.NumRemUnchecked, can.ExprNum},
	}
	for _, tc := range cases {
		e := body(t, tc.sym)
		expectKind(t, e, can.ExprIf)
		d := e.Data.(can.IfData)
		guard := expectOp(t, d.Branches[0].Cond, lowlevel.NotEq)
		expectVar(t, guard.Args[0].Expr, symbols.Arg2)
		expectKind(t, guard.Args[1].Expr, tc.zero)
		quotient := expectOp(t, expectOk(t, d.Branches[0].Then), tc.op)
		expectVar(t, quotient.Args[0].Expr, symbols.Arg1)
		expectVar(t, quotient.Args[1].Expr, symbols.Arg2)
		expectErr(t, d.Else, "DivByZero")
	}
}

func TestDomainAndBoundsWrappers(t *testing.T) {
	cases := []struct {
		sym    symbols.Symbol
		guard  lowlevel.Op
		reason string
	}{
		{symbols.NumSqrt, lowlevel.NumGte, "SqrtOfNegative"},
		{symbols.NumLog, lowlevel.NumGt, "LogNeedsPositive"},
		{symbols.ListFirst, lowlevel.NotEq, "ListWasEmpty"},
		{symbols.ListLast, lowlevel.NotEq, "ListWasEmpty"},
		{symbols.NumBytesToU16, lowlevel.NumLt, "OutOfBounds"},
		{symbols.NumBytesToU32, lowlevel.NumLt, "OutOfBounds"},
	}
	for _, tc := range cases {
		e := body(t, tc.sym)
		expectKind(t, e, can.ExprIf)
		d := e.Data.(can.IfData)
		expectOp(t, d.Branches[0].Cond, tc.guard)
		expectOk(t, d.Branches[0].Then)
		expectErr(t, d.Else, tc.reason)
	}
}

func TestFromUtf8ReportsProblemAndIndex(t *testing.T) {
	e := body(t, symbols.StrFromUtf8)
	expectKind(t, e, can.ExprLetNonRec)
	let := e.Data.(can.LetNonRecData)
	expectOp(t, let.Def.Expr, lowlevel.StrFromUtf8)
	d := let.Body.Data.(can.IfData)
	if f := d.Branches[0].Cond.Data.(can.AccessData).Field; f != lowlevel.FieldUtf8IsOk {
		t.Fatalf("guard reads %q", f)
	}
	errTag := expectTag(t, d.Else, "Err")
	bad := expectTag(t, errTag.Args[0].Expr, "BadUtf8")
	if len(bad.Args) != 2 {
		t.Fatalf("BadUtf8 carries %d values, want 2", len(bad.Args))
	}
	got := []string{
		bad.Args[0].Expr.Data.(can.AccessData).Field,
		bad.Args[1].Expr.Data.(can.AccessData).Field,
	}
	if got[0] != lowlevel.FieldUtf8Problem || got[1] != lowlevel.FieldUtf8ByteIndex {
		t.Fatalf("BadUtf8 payload = %v", got)
	}
}

func TestFromUtf8RangeChecksBoundsFirst(t *testing.T) {
	e := body(t, symbols.StrFromUtf8Range)
	expectKind(t, e, can.ExprIf)
	d := e.Data.(can.IfData)
	guard := expectOp(t, d.Branches[0].Cond, lowlevel.NumLte)
	end := expectOp(t, guard.Args[0].Expr, lowlevel.NumAdd)
	for i, field := range []string{lowlevel.FieldRangeStart, lowlevel.FieldRangeCount} {
		acc := end.Args[i].Expr.Data.(can.AccessData)
		if acc.Field != field {
			t.Fatalf("bound term %d reads %q, want %q", i, acc.Field, field)
		}
		expectVar(t, acc.Record, symbols.Arg2)
	}
	expectKind(t, d.Branches[0].Then, can.ExprLetNonRec)
	expectErr(t, d.Else, "OutOfBounds")
}

func TestMinWrapsFoldInNonEmptyGuard(t *testing.T) {
	e := body(t, symbols.ListMin)
	d := e.Data.(can.IfData)
	expectOp(t, d.Branches[0].Cond, lowlevel.NotEq)
	walk := expectOp(t, expectOk(t, d.Branches[0].Then), lowlevel.ListWalk)
	seed := expectOp(t, walk.Args[1].Expr, lowlevel.ListGetUnsafe)
	expectVar(t, seed.Args[0].Expr, symbols.Arg1)
	step := walk.Args[2].Expr.Data.(can.ClosureData)
	if step.Name != symbols.ListMinLt {
		t.Fatalf("step named %s", step.Name)
	}
	expectOp(t, step.Body.Data.(can.IfData).Branches[0].Cond, lowlevel.NumLt)
	expectErr(t, d.Else, "ListWasEmpty")
}

func TestSumAndProductSeeds(t *testing.T) {
	for sym, want := range map[symbols.Symbol]int64{symbols.ListSum: 0, symbols.ListProduct: 1} {
		walk := expectOp(t, body(t, sym), lowlevel.ListWalk)
		expectKind(t, walk.Args[1].Expr, can.ExprNum)
		if got := walk.Args[1].Expr.Data.(can.NumData).Value; got != want {
			t.Fatalf("%s seeds with %d, want %d", sym, got, want)
		}
	}
}

func TestSetWalkIgnoresEmptyRecordValue(t *testing.T) {
	walk := expectOp(t, body(t, symbols.SetWalk), lowlevel.DictWalk)
	wrapper := walk.Args[2].Expr.Data.(can.ClosureData)
	if len(wrapper.Params) != 3 {
		t.Fatalf("wrapper takes %d params, want 3", len(wrapper.Params))
	}
	last := wrapper.Params[2]
	if last.Var != types.VarEmptyRecord || last.Pattern.Kind != can.PatternUnderscore {
		t.Fatalf("third parameter should be `_ : {}`")
	}
	call := wrapper.Body.Data.(can.CallData)
	expectVar(t, call.Fn, symbols.Arg3)
}

func TestMaxI128CarriesAnnotation(t *testing.T) {
	store := types.NewVarStore()
	def := synth(t, symbols.NumMaxI128, store)
	if def.IsFunction() || def.Annotation == nil {
		t.Fatalf("Num.maxI128 should be an annotated constant")
	}
	if got := def.Annotation.Signature.String(); got != "I128" {
		t.Fatalf("annotation = %q", got)
	}
	lit := def.Expr.Data.(can.IntData)
	if lit.Value.Cmp(maxI128) != 0 || lit.Value.BitLen() != 127 {
		t.Fatalf("literal = %s", lit.Value)
	}

	small := synth(t, symbols.NumMaxInt, store)
	if small.Annotation != nil {
		t.Fatalf("Num.maxInt is inferred from its body")
	}
}

func TestCheckShapeRejectsWrongShape(t *testing.T) {
	def := synth(t, symbols.ListLen, types.NewVarStore())
	for _, s := range []Shape{ShapeBounds, ShapeOverflow, ShapeCombinator, ShapeFold, ShapeConstant} {
		if err := CheckShape(def, s); err == nil {
			t.Fatalf("List.len should not pass as %s", s)
		}
	}
	store := types.NewVarStore()
	cases := []struct {
		sym   symbols.Symbol
		shape Shape
		ok    bool
	}{
		{symbols.ListMin, ShapeGuardedFold, true},
		{symbols.ListSum, ShapeGuardedFold, false},
		{symbols.ListGet, ShapeGuardedFold, false},
		{symbols.ListSet, ShapeDerived, true},
		{symbols.SetInsert, ShapeDerived, true},
		{symbols.ListGet, ShapeDerived, false},
		{symbols.ListJoinMap, ShapeDerived, false},
	}
	for _, tc := range cases {
		err := CheckShape(synth(t, tc.sym, store), tc.shape)
		if (err == nil) != tc.ok {
			t.Fatalf("%s as %s: err = %v, want ok=%v", tc.sym, tc.shape, err, tc.ok)
		}
	}
	for _, s := range Shapes() {
		if s.String() == "invalid" {
			t.Fatalf("Shapes() should not include invalid")
		}
	}
}
