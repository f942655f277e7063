package builtins

import (
	"stdsynth/internal/can"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

var resultDefs = map[symbols.Symbol]entry{
	symbols.ResultMap:         {resultMap, ShapeCombinator},
	symbols.ResultMapErr:      {resultMapErr, ShapeCombinator},
	symbols.ResultAfter:       {resultAfter, ShapeCombinator},
	symbols.ResultWithDefault: {resultWithDefault, ShapeCombinator},
}

// arm matches `tag #argN` on a value typed resultVar.
func arm(b *can.Builder, resultVar types.Variable, tag string, bind symbols.Symbol, value *can.Expr) can.WhenBranch {
	p := b.PTag(resultVar, tag, can.PArg(b.Fresh(), b.PIdent(bind)))
	return can.Branch(p, value)
}

// resultMap:
//
//	\#arg1, #arg2 -> when #arg1 is
//	    Ok #arg5 -> Ok (#arg2 #arg5)
//	    Err #arg4 -> Err #arg4
func resultMap(b *can.Builder, sym symbols.Symbol) *can.Def {
	retVar := b.Fresh()
	funcVar := b.Fresh()
	resultVar := b.Fresh()

	applied := b.Call(funcVar, b.Var(symbols.Arg2), b.Fresh(), can.A(b.Fresh(), b.Var(symbols.Arg5)))
	body := b.When(resultVar, retVar, b.Var(symbols.Arg1),
		arm(b, resultVar, "Ok", symbols.Arg5, b.Ok(applied)),
		arm(b, resultVar, "Err", symbols.Arg4, b.Tag("Err", b.Var(symbols.Arg4))),
	)
	return b.Defn(sym, params(b, resultVar, funcVar), body, retVar)
}

// resultMapErr mirrors resultMap on the Err side.
func resultMapErr(b *can.Builder, sym symbols.Symbol) *can.Def {
	retVar := b.Fresh()
	funcVar := b.Fresh()
	resultVar := b.Fresh()

	applied := b.Call(funcVar, b.Var(symbols.Arg2), b.Fresh(), can.A(b.Fresh(), b.Var(symbols.Arg5)))
	body := b.When(resultVar, retVar, b.Var(symbols.Arg1),
		arm(b, resultVar, "Err", symbols.Arg5, b.Tag("Err", applied)),
		arm(b, resultVar, "Ok", symbols.Arg4, b.Tag("Ok", b.Var(symbols.Arg4))),
	)
	return b.Defn(sym, params(b, resultVar, funcVar), body, retVar)
}

// resultAfter passes the callback's own result through unwrapped.
func resultAfter(b *can.Builder, sym symbols.Symbol) *can.Def {
	retVar := b.Fresh()
	funcVar := b.Fresh()
	resultVar := b.Fresh()

	applied := b.Call(funcVar, b.Var(symbols.Arg2), retVar, can.A(b.Fresh(), b.Var(symbols.Arg5)))
	body := b.When(resultVar, retVar, b.Var(symbols.Arg1),
		arm(b, resultVar, "Ok", symbols.Arg5, applied),
		arm(b, resultVar, "Err", symbols.Arg4, b.Tag("Err", b.Var(symbols.Arg4))),
	)
	return b.Defn(sym, params(b, resultVar, funcVar), body, retVar)
}

// resultWithDefault:
//
//	\#arg1, #arg2 -> when #arg1 is
//	    Ok #arg3 -> #arg3
//	    Err _ -> #arg2
func resultWithDefault(b *can.Builder, sym symbols.Symbol) *can.Def {
	retVar := b.Fresh()
	resultVar := b.Fresh()

	okArm := can.Branch(
		b.PTag(resultVar, "Ok", can.PArg(retVar, b.PIdent(symbols.Arg3))),
		b.Var(symbols.Arg3),
	)
	errArm := can.Branch(
		b.PTag(resultVar, "Err", can.PArg(b.Fresh(), b.PUnderscore())),
		b.Var(symbols.Arg2),
	)
	body := b.When(resultVar, retVar, b.Var(symbols.Arg1), okArm, errArm)
	return b.Defn(sym, params(b, resultVar, retVar), body, retVar)
}
