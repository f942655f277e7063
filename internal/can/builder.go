package can

import (
	"math/big"

	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// Builder constructs canonical trees against one variable store.
//
// Constructors that open a slot the caller cannot know yet (variant and
// extension of a tag, extension of an accessed record, lambda set of a
// closure or call) mint those variables themselves. Every variable passed in
// by the caller is a deliberate unification with surrounding context.
type Builder struct {
	store *types.VarStore
}

// NewBuilder returns a builder minting from store.
func NewBuilder(store *types.VarStore) *Builder {
	if store == nil {
		panic("can: nil variable store")
	}
	return &Builder{store: store}
}

// Store exposes the underlying variable store.
func (b *Builder) Store() *types.VarStore { return b.store }

// Fresh mints a variable.
func (b *Builder) Fresh() types.Variable { return b.store.Fresh() }

// A pairs an expression with its use-site variable.
func A(v types.Variable, e *Expr) Arg { return Arg{Var: v, Expr: e} }

// Var references sym.
func (b *Builder) Var(sym symbols.Symbol) *Expr {
	return &Expr{Kind: ExprVar, Data: VarData{Symbol: sym}}
}

// Num builds an unbound number literal.
func (b *Builder) Num(v types.Variable, n int64) *Expr {
	return &Expr{Kind: ExprNum, Data: NumData{Var: v, Value: n}}
}

// Int builds an integer literal.
func (b *Builder) Int(v, precision types.Variable, n int64) *Expr {
	return b.IntBig(v, precision, big.NewInt(n))
}

// IntBig builds an integer literal wider than int64.
func (b *Builder) IntBig(v, precision types.Variable, n *big.Int) *Expr {
	return &Expr{Kind: ExprInt, Data: IntData{Var: v, Precision: precision, Value: new(big.Int).Set(n)}}
}

// Float builds a float literal.
func (b *Builder) Float(v, precision types.Variable, f float64) *Expr {
	return &Expr{Kind: ExprFloat, Data: FloatData{Var: v, Precision: precision, Value: f}}
}

// Str builds a string literal.
func (b *Builder) Str(s string) *Expr {
	return &Expr{Kind: ExprStr, Data: StrData{Value: s}}
}

// EmptyRecord builds `{}`.
func (b *Builder) EmptyRecord() *Expr {
	return &Expr{Kind: ExprEmptyRecord, Data: EmptyRecordData{}}
}

// LowLevel invokes op on args.
func (b *Builder) LowLevel(op lowlevel.Op, ret types.Variable, args ...Arg) *Expr {
	return &Expr{Kind: ExprRunLowLevel, Data: RunLowLevelData{Op: op, Args: args, Ret: ret}}
}

// If builds a single-armed `if cond then yes else no`.
func (b *Builder) If(condVar, branchVar types.Variable, cond, yes, no *Expr) *Expr {
	return b.IfChain(condVar, branchVar, []IfBranch{{Cond: cond, Then: yes}}, no)
}

// IfChain builds a multi-armed conditional.
func (b *Builder) IfChain(condVar, branchVar types.Variable, branches []IfBranch, final *Expr) *Expr {
	return &Expr{Kind: ExprIf, Data: IfData{
		CondVar:   condVar,
		BranchVar: branchVar,
		Branches:  branches,
		Else:      final,
	}}
}

// When matches cond against branches.
func (b *Builder) When(condVar, exprVar types.Variable, cond *Expr, branches ...WhenBranch) *Expr {
	return &Expr{Kind: ExprWhen, Data: WhenData{
		CondVar:  condVar,
		ExprVar:  exprVar,
		Cond:     cond,
		Branches: branches,
	}}
}

// Branch builds an unguarded one-pattern arm.
func Branch(p *Pattern, value *Expr) WhenBranch {
	return WhenBranch{Patterns: []*Pattern{p}, Value: value}
}

// Let builds `sym = value` in body, typing the binding valueVar.
func (b *Builder) Let(sym symbols.Symbol, valueVar types.Variable, value, body *Expr, v types.Variable) *Expr {
	def := &Def{
		Pattern: b.PIdent(sym),
		Expr:    value,
		ExprVar: valueVar,
	}
	return &Expr{Kind: ExprLetNonRec, Data: LetNonRecData{Def: def, Body: body, Var: v}}
}

// Access reads record.field; the record extension variable is minted.
func (b *Builder) Access(recordVar, fieldVar types.Variable, record *Expr, field string) *Expr {
	return &Expr{Kind: ExprAccess, Data: AccessData{
		RecordVar: recordVar,
		ExtVar:    b.store.Fresh(),
		FieldVar:  fieldVar,
		Field:     field,
		Record:    record,
	}}
}

// AccessFresh is Access with a minted field variable.
func (b *Builder) AccessFresh(recordVar types.Variable, record *Expr, field string) *Expr {
	return b.Access(recordVar, b.store.Fresh(), record, field)
}

// Tag builds `name args...`. The variant, extension and per-argument
// variables are all minted, so the resulting union is open.
func (b *Builder) Tag(name string, args ...*Expr) *Expr {
	data := TagData{
		VariantVar: b.store.Fresh(),
		ExtVar:     b.store.Fresh(),
		Name:       name,
	}
	for _, a := range args {
		data.Args = append(data.Args, Arg{Var: b.store.Fresh(), Expr: a})
	}
	return &Expr{Kind: ExprTag, Data: data}
}

// TagArgs builds a tag whose argument variables are caller-supplied.
func (b *Builder) TagArgs(name string, args ...Arg) *Expr {
	return &Expr{Kind: ExprTag, Data: TagData{
		VariantVar: b.store.Fresh(),
		ExtVar:     b.store.Fresh(),
		Name:       name,
		Args:       args,
	}}
}

// Ok wraps e in `Ok`.
func (b *Builder) Ok(e *Expr) *Expr { return b.Tag("Ok", e) }

// Err builds `Err (reason payload...)`.
func (b *Builder) Err(reason string, payload ...*Expr) *Expr {
	return b.Tag("Err", b.Tag(reason, payload...))
}

// Closure builds a non-recursive lambda. The lambda-set and its extension
// are minted; fnVar and retVar come from the caller.
func (b *Builder) Closure(fnVar, retVar types.Variable, name symbols.Symbol, captured []Capture, params []Param, body *Expr) *Expr {
	return &Expr{Kind: ExprClosure, Data: ClosureData{
		FunctionVar:   fnVar,
		ClosureVar:    b.store.Fresh(),
		ClosureExtVar: b.store.Fresh(),
		ReturnVar:     retVar,
		Name:          name,
		Captured:      captured,
		Params:        params,
		Body:          body,
	}}
}

// List builds a list literal.
func (b *Builder) List(elemVar types.Variable, elems ...*Expr) *Expr {
	return &Expr{Kind: ExprList, Data: ListData{ElemVar: elemVar, Elems: elems}}
}

// Call applies fn to args; the lambda-set variable is minted.
func (b *Builder) Call(fnVar types.Variable, fn *Expr, retVar types.Variable, args ...Arg) *Expr {
	return &Expr{Kind: ExprCall, Data: CallData{
		FnVar:      fnVar,
		Fn:         fn,
		ClosureVar: b.store.Fresh(),
		ReturnVar:  retVar,
		Args:       args,
		CalledVia:  CalledViaSpace,
	}}
}

// PIdent builds an identifier pattern.
func (b *Builder) PIdent(sym symbols.Symbol) *Pattern {
	return &Pattern{Kind: PatternIdentifier, Symbol: sym}
}

// PUnderscore builds `_`.
func (b *Builder) PUnderscore() *Pattern {
	return &Pattern{Kind: PatternUnderscore}
}

// PTag builds an applied-tag pattern over a value typed wholeVar; the
// extension variable is minted.
func (b *Builder) PTag(wholeVar types.Variable, tag string, args ...PatternArg) *Pattern {
	return &Pattern{
		Kind:     PatternAppliedTag,
		WholeVar: wholeVar,
		ExtVar:   b.store.Fresh(),
		Tag:      tag,
		Args:     args,
	}
}

// PArg pairs a sub-pattern with its variable.
func PArg(v types.Variable, p *Pattern) PatternArg { return PatternArg{Var: v, Pattern: p} }

// Param pairs an identifier parameter with its variable.
func (b *Builder) Param(v types.Variable, sym symbols.Symbol) Param {
	return Param{Var: v, Pattern: b.PIdent(sym)}
}

// DefnHelp wraps body in the top-level closure of a builtin. Each param is
// bound to an identifier; the function type variable is minted.
func (b *Builder) DefnHelp(name symbols.Symbol, params []Param, body *Expr, retVar types.Variable) *Expr {
	return b.Closure(b.store.Fresh(), retVar, name, nil, params, body)
}

// Defn produces the definition `name = \params -> body`.
func (b *Builder) Defn(name symbols.Symbol, params []Param, body *Expr, retVar types.Variable) *Def {
	expr := b.DefnHelp(name, params, body, retVar)
	return &Def{
		Pattern: b.PIdent(name),
		Expr:    expr,
		ExprVar: b.store.Fresh(),
	}
}

// Constant produces the non-function definition `name = value`.
func (b *Builder) Constant(name symbols.Symbol, exprVar types.Variable, value *Expr, ann *Annotation) *Def {
	return &Def{
		Pattern:    b.PIdent(name),
		Expr:       value,
		ExprVar:    exprVar,
		Annotation: ann,
	}
}
