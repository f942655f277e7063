package builtins

import (
	"fmt"
	"strings"

	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// argSyms are the positional parameter identities, #arg1 first.
var argSyms = [...]symbols.Symbol{
	symbols.Arg1, symbols.Arg2, symbols.Arg3, symbols.Arg4, symbols.Arg5, symbols.Arg6,
}

func lowlevel1(op lowlevel.Op) synthFn { return typed(op, "a>r") }
func lowlevel2(op lowlevel.Op) synthFn { return typed(op, "ab>r") }
func lowlevel3(op lowlevel.Op) synthFn { return typed(op, "abc>r") }
func lowlevel4(op lowlevel.Op) synthFn { return typed(op, "abcd>r") }
func lowlevel5(op lowlevel.Op) synthFn { return typed(op, "abcde>r") }

// typed builds `\#arg1, ..., #argN -> op #arg1 ... #argN`. layout names the
// variables of the arguments and the result: equal letters share one
// variable, so "aa>b" is `a, a -> b` and "ab>a" returns the first argument's
// type. The letter N stands for the reserved collection-size variable.
func typed(op lowlevel.Op, layout string) synthFn {
	params, ret, ok := strings.Cut(layout, ">")
	if !ok || len(ret) != 1 || len(params) != op.Arity() || len(params) > len(argSyms) {
		panic(fmt.Sprintf("builtins: layout %q does not fit %s/%d", layout, op, op.Arity()))
	}
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		vars := make(map[byte]types.Variable, len(layout))
		varOf := func(c byte) types.Variable {
			if c == 'N' {
				return types.VarNat
			}
			v, seen := vars[c]
			if !seen {
				v = b.Fresh()
				vars[c] = v
			}
			return v
		}

		args := make([]can.Arg, len(params))
		ps := make([]can.Param, len(params))
		for i := range len(params) {
			v := varOf(params[i])
			args[i] = can.A(v, b.Var(argSyms[i]))
			ps[i] = b.Param(v, argSyms[i])
		}
		retVar := varOf(ret[0])
		return b.Defn(sym, ps, b.LowLevel(op, retVar, args...), retVar)
	}
}

// params pairs variables with #arg1, #arg2, ... in order.
func params(b *can.Builder, vars ...types.Variable) []can.Param {
	out := make([]can.Param, len(vars))
	for i, v := range vars {
		out[i] = b.Param(v, argSyms[i])
	}
	return out
}

// arg is `v: #argN`, one-based.
func arg(b *can.Builder, v types.Variable, n int) can.Arg {
	return can.A(v, b.Var(argSyms[n-1]))
}

// natLiteral is an integer literal typed with the reserved size variables.
func natLiteral(b *can.Builder, n int64) *can.Expr {
	return b.Int(types.VarNat, types.VarNatural, n)
}

// listLen is `List.len #arg1` typed as a size.
func listLen(b *can.Builder, listVar types.Variable, retVar types.Variable) *can.Expr {
	return b.LowLevel(lowlevel.ListLen, retVar, arg(b, listVar, 1))
}
