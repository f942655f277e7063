package can

import (
	"math/big"

	"stdsynth/internal/types"
)

// AlphaEqual reports whether a and b are identical up to a consistent,
// one-to-one renaming of non-reserved variables. Reserved variables and
// symbols must match exactly.
func AlphaEqual(a, b *Def) bool {
	fwd := make(map[types.Variable]types.Variable)
	back := make(map[types.Variable]types.Variable)
	eq := func(x, y types.Variable) bool {
		if x.IsReserved() || y.IsReserved() {
			return x == y
		}
		if m, ok := fwd[x]; ok {
			return m == y
		}
		if m, ok := back[y]; ok {
			return m == x
		}
		fwd[x] = y
		back[y] = x
		return true
	}
	return defEqual(a, b, eq)
}

// Equal reports exact structural equality, variables included.
func Equal(a, b *Def) bool {
	return defEqual(a, b, func(x, y types.Variable) bool { return x == y })
}

// Normalize returns a copy of def whose non-reserved variables are renumbered
// from types.FirstFresh in traversal order. Alpha-equivalent definitions
// normalize to Equal trees.
func Normalize(def *Def) *Def {
	mapping := make(map[types.Variable]types.Variable)
	next := types.FirstFresh
	rename := func(v types.Variable) types.Variable {
		if v.IsReserved() || !v.IsValid() {
			return v
		}
		if m, ok := mapping[v]; ok {
			return m
		}
		mapping[v] = next
		next++
		return mapping[v]
	}
	// Assign numbers in VisitVars order first so the copy below is stable
	// regardless of how it recurses.
	VisitVars(def, func(v types.Variable, _ Slot) { rename(v) })
	return copyDef(def, rename)
}

type varEq func(x, y types.Variable) bool

func defEqual(a, b *Def, eq varEq) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !patternEqual(a.Pattern, b.Pattern, eq) || !eq(a.ExprVar, b.ExprVar) {
		return false
	}
	if !exprEqual(a.Expr, b.Expr, eq) {
		return false
	}
	if len(a.PatternVars) != len(b.PatternVars) {
		return false
	}
	for _, sym := range patternSymbols(a) {
		bv, ok := b.PatternVars[sym]
		if !ok || !eq(a.PatternVars[sym], bv) {
			return false
		}
	}
	return annotationEqual(a.Annotation, b.Annotation, eq)
}

func annotationEqual(a, b *Annotation, eq varEq) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !typeEqual(a.Signature, b.Signature, eq) || len(a.Introduced) != len(b.Introduced) {
		return false
	}
	for i := range a.Introduced {
		if !eq(a.Introduced[i], b.Introduced[i]) {
			return false
		}
	}
	return true
}

func patternEqual(a, b *Pattern, eq varEq) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case PatternIdentifier:
		return a.Symbol == b.Symbol
	case PatternAppliedTag:
		if a.Tag != b.Tag || len(a.Args) != len(b.Args) {
			return false
		}
		if !eq(a.WholeVar, b.WholeVar) || !eq(a.ExtVar, b.ExtVar) {
			return false
		}
		for i := range a.Args {
			if !eq(a.Args[i].Var, b.Args[i].Var) || !patternEqual(a.Args[i].Pattern, b.Args[i].Pattern, eq) {
				return false
			}
		}
	}
	return true
}

func argsEqual(a, b []Arg, eq varEq) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i].Var, b[i].Var) || !exprEqual(a[i].Expr, b[i].Expr, eq) {
			return false
		}
	}
	return true
}

//nolint:gocyclo // one arm per expression kind
func exprEqual(a, b *Expr, eq varEq) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch x := a.Data.(type) {
	case VarData:
		y, ok := b.Data.(VarData)
		return ok && x.Symbol == y.Symbol
	case NumData:
		y, ok := b.Data.(NumData)
		return ok && x.Value == y.Value && eq(x.Var, y.Var)
	case IntData:
		y, ok := b.Data.(IntData)
		return ok && bigEqual(x.Value, y.Value) && eq(x.Var, y.Var) && eq(x.Precision, y.Precision)
	case FloatData:
		y, ok := b.Data.(FloatData)
		return ok && x.Value == y.Value && eq(x.Var, y.Var) && eq(x.Precision, y.Precision)
	case StrData:
		y, ok := b.Data.(StrData)
		return ok && x.Value == y.Value
	case EmptyRecordData:
		_, ok := b.Data.(EmptyRecordData)
		return ok
	case RunLowLevelData:
		y, ok := b.Data.(RunLowLevelData)
		return ok && x.Op == y.Op && argsEqual(x.Args, y.Args, eq) && eq(x.Ret, y.Ret)
	case IfData:
		y, ok := b.Data.(IfData)
		if !ok || len(x.Branches) != len(y.Branches) || !eq(x.CondVar, y.CondVar) || !eq(x.BranchVar, y.BranchVar) {
			return false
		}
		for i := range x.Branches {
			if !exprEqual(x.Branches[i].Cond, y.Branches[i].Cond, eq) || !exprEqual(x.Branches[i].Then, y.Branches[i].Then, eq) {
				return false
			}
		}
		return exprEqual(x.Else, y.Else, eq)
	case WhenData:
		y, ok := b.Data.(WhenData)
		if !ok || len(x.Branches) != len(y.Branches) || !eq(x.CondVar, y.CondVar) || !eq(x.ExprVar, y.ExprVar) {
			return false
		}
		if !exprEqual(x.Cond, y.Cond, eq) {
			return false
		}
		for i := range x.Branches {
			bx, by := x.Branches[i], y.Branches[i]
			if len(bx.Patterns) != len(by.Patterns) {
				return false
			}
			for j := range bx.Patterns {
				if !patternEqual(bx.Patterns[j], by.Patterns[j], eq) {
					return false
				}
			}
			if !exprEqual(bx.Guard, by.Guard, eq) || !exprEqual(bx.Value, by.Value, eq) {
				return false
			}
		}
		return true
	case LetNonRecData:
		y, ok := b.Data.(LetNonRecData)
		return ok && defEqual(x.Def, y.Def, eq) && exprEqual(x.Body, y.Body, eq) && eq(x.Var, y.Var)
	case AccessData:
		y, ok := b.Data.(AccessData)
		return ok && x.Field == y.Field && eq(x.RecordVar, y.RecordVar) && eq(x.ExtVar, y.ExtVar) &&
			eq(x.FieldVar, y.FieldVar) && exprEqual(x.Record, y.Record, eq)
	case TagData:
		y, ok := b.Data.(TagData)
		return ok && x.Name == y.Name && eq(x.VariantVar, y.VariantVar) && eq(x.ExtVar, y.ExtVar) && argsEqual(x.Args, y.Args, eq)
	case ClosureData:
		y, ok := b.Data.(ClosureData)
		if !ok || x.Name != y.Name || x.Recursive != y.Recursive {
			return false
		}
		if len(x.Captured) != len(y.Captured) || len(x.Params) != len(y.Params) {
			return false
		}
		if !eq(x.FunctionVar, y.FunctionVar) || !eq(x.ClosureVar, y.ClosureVar) ||
			!eq(x.ClosureExtVar, y.ClosureExtVar) || !eq(x.ReturnVar, y.ReturnVar) {
			return false
		}
		for i := range x.Captured {
			if x.Captured[i].Symbol != y.Captured[i].Symbol || !eq(x.Captured[i].Var, y.Captured[i].Var) {
				return false
			}
		}
		for i := range x.Params {
			if !eq(x.Params[i].Var, y.Params[i].Var) || !patternEqual(x.Params[i].Pattern, y.Params[i].Pattern, eq) {
				return false
			}
		}
		return exprEqual(x.Body, y.Body, eq)
	case ListData:
		y, ok := b.Data.(ListData)
		if !ok || len(x.Elems) != len(y.Elems) || !eq(x.ElemVar, y.ElemVar) {
			return false
		}
		for i := range x.Elems {
			if !exprEqual(x.Elems[i], y.Elems[i], eq) {
				return false
			}
		}
		return true
	case CallData:
		y, ok := b.Data.(CallData)
		return ok && x.CalledVia == y.CalledVia && eq(x.FnVar, y.FnVar) && exprEqual(x.Fn, y.Fn, eq) &&
			eq(x.ClosureVar, y.ClosureVar) && eq(x.ReturnVar, y.ReturnVar) && argsEqual(x.Args, y.Args, eq)
	default:
		return false
	}
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func typeEqual(a, b *types.Type, eq varEq) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name || len(a.Args) != len(b.Args) ||
		len(a.Fields) != len(b.Fields) || len(a.Tags) != len(b.Tags) {
		return false
	}
	if a.Kind == types.KindVariable && !eq(a.Var, b.Var) {
		return false
	}
	for i := range a.Args {
		if !typeEqual(a.Args[i], b.Args[i], eq) {
			return false
		}
	}
	for i := range a.Fields {
		if a.Fields[i].Name != b.Fields[i].Name || !typeEqual(a.Fields[i].Type, b.Fields[i].Type, eq) {
			return false
		}
	}
	for i := range a.Tags {
		if a.Tags[i].Name != b.Tags[i].Name || len(a.Tags[i].Args) != len(b.Tags[i].Args) {
			return false
		}
		for j := range a.Tags[i].Args {
			if !typeEqual(a.Tags[i].Args[j], b.Tags[i].Args[j], eq) {
				return false
			}
		}
	}
	return typeEqual(a.Result, b.Result, eq) && typeEqual(a.Ext, b.Ext, eq)
}
