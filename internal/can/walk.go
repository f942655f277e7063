package can

import (
	"slices"

	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// Walk visits e and its sub-expressions in pre-order. Returning false from
// fn skips the children of the current node. Definitions bound by LetNonRec
// are entered through their expression.
func Walk(e *Expr, fn func(*Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch d := e.Data.(type) {
	case RunLowLevelData:
		for _, a := range d.Args {
			Walk(a.Expr, fn)
		}
	case IfData:
		for _, br := range d.Branches {
			Walk(br.Cond, fn)
			Walk(br.Then, fn)
		}
		Walk(d.Else, fn)
	case WhenData:
		Walk(d.Cond, fn)
		for _, br := range d.Branches {
			Walk(br.Guard, fn)
			Walk(br.Value, fn)
		}
	case LetNonRecData:
		if d.Def != nil {
			Walk(d.Def.Expr, fn)
		}
		Walk(d.Body, fn)
	case AccessData:
		Walk(d.Record, fn)
	case TagData:
		for _, a := range d.Args {
			Walk(a.Expr, fn)
		}
	case ClosureData:
		Walk(d.Body, fn)
	case ListData:
		for _, el := range d.Elems {
			Walk(el, fn)
		}
	case CallData:
		Walk(d.Fn, fn)
		for _, a := range d.Args {
			Walk(a.Expr, fn)
		}
	}
}

// Slot says where a variable occurrence sits.
type Slot uint8

const (
	// SlotShared is any caller-supplied position.
	SlotShared Slot = iota
	// SlotMinted is a position the builder always fills with a fresh variable.
	SlotMinted
)

// VisitVars reports every variable occurrence of def in a fixed traversal
// order, tagging the positions the builder mints.
func VisitVars(def *Def, fn func(v types.Variable, slot Slot)) {
	visitDef(def, fn)
}

func visitDef(def *Def, fn func(types.Variable, Slot)) {
	if def == nil {
		return
	}
	visitPattern(def.Pattern, fn)
	fn(def.ExprVar, SlotShared)
	visitExpr(def.Expr, fn)
	if def.Annotation != nil {
		for _, v := range def.Annotation.Signature.Vars() {
			fn(v, SlotShared)
		}
		for _, v := range def.Annotation.Introduced {
			fn(v, SlotShared)
		}
	}
	for _, sym := range patternSymbols(def) {
		fn(def.PatternVars[sym], SlotShared)
	}
}

func patternSymbols(def *Def) []symbols.Symbol {
	if len(def.PatternVars) == 0 {
		return nil
	}
	out := make([]symbols.Symbol, 0, len(def.PatternVars))
	for sym := range def.PatternVars {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

func visitPattern(p *Pattern, fn func(types.Variable, Slot)) {
	if p == nil || p.Kind != PatternAppliedTag {
		return
	}
	fn(p.WholeVar, SlotShared)
	fn(p.ExtVar, SlotMinted)
	for _, a := range p.Args {
		fn(a.Var, SlotShared)
		visitPattern(a.Pattern, fn)
	}
}

func visitExpr(e *Expr, fn func(types.Variable, Slot)) {
	if e == nil {
		return
	}
	switch d := e.Data.(type) {
	case NumData:
		fn(d.Var, SlotShared)
	case IntData:
		fn(d.Var, SlotShared)
		fn(d.Precision, SlotShared)
	case FloatData:
		fn(d.Var, SlotShared)
		fn(d.Precision, SlotShared)
	case RunLowLevelData:
		for _, a := range d.Args {
			fn(a.Var, SlotShared)
			visitExpr(a.Expr, fn)
		}
		fn(d.Ret, SlotShared)
	case IfData:
		fn(d.CondVar, SlotShared)
		fn(d.BranchVar, SlotShared)
		for _, br := range d.Branches {
			visitExpr(br.Cond, fn)
			visitExpr(br.Then, fn)
		}
		visitExpr(d.Else, fn)
	case WhenData:
		fn(d.CondVar, SlotShared)
		fn(d.ExprVar, SlotShared)
		visitExpr(d.Cond, fn)
		for _, br := range d.Branches {
			for _, p := range br.Patterns {
				visitPattern(p, fn)
			}
			visitExpr(br.Guard, fn)
			visitExpr(br.Value, fn)
		}
	case LetNonRecData:
		visitDef(d.Def, fn)
		visitExpr(d.Body, fn)
		fn(d.Var, SlotShared)
	case AccessData:
		fn(d.RecordVar, SlotShared)
		fn(d.ExtVar, SlotMinted)
		fn(d.FieldVar, SlotShared)
		visitExpr(d.Record, fn)
	case TagData:
		fn(d.VariantVar, SlotMinted)
		fn(d.ExtVar, SlotMinted)
		for _, a := range d.Args {
			fn(a.Var, SlotShared)
			visitExpr(a.Expr, fn)
		}
	case ClosureData:
		fn(d.FunctionVar, SlotShared)
		fn(d.ClosureVar, SlotMinted)
		fn(d.ClosureExtVar, SlotMinted)
		fn(d.ReturnVar, SlotShared)
		for _, c := range d.Captured {
			fn(c.Var, SlotShared)
		}
		for _, p := range d.Params {
			fn(p.Var, SlotShared)
			visitPattern(p.Pattern, fn)
		}
		visitExpr(d.Body, fn)
	case ListData:
		fn(d.ElemVar, SlotShared)
		for _, el := range d.Elems {
			visitExpr(el, fn)
		}
	case CallData:
		fn(d.FnVar, SlotShared)
		visitExpr(d.Fn, fn)
		fn(d.ClosureVar, SlotMinted)
		fn(d.ReturnVar, SlotShared)
		for _, a := range d.Args {
			fn(a.Var, SlotShared)
			visitExpr(a.Expr, fn)
		}
	}
}

// Vars returns the distinct variables of def in first-occurrence order.
func Vars(def *Def) []types.Variable {
	var out []types.Variable
	seen := make(map[types.Variable]struct{})
	VisitVars(def, func(v types.Variable, _ Slot) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})
	return out
}
