package can

import (
	"math/big"

	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// Rename returns a deep copy of def with every variable passed through fn.
func Rename(def *Def, fn func(types.Variable) types.Variable) *Def {
	return copyDef(def, fn)
}

func copyDef(def *Def, fn func(types.Variable) types.Variable) *Def {
	if def == nil {
		return nil
	}
	out := &Def{
		Pattern: copyPattern(def.Pattern, fn),
		Expr:    copyExpr(def.Expr, fn),
		ExprVar: fn(def.ExprVar),
	}
	if len(def.PatternVars) > 0 {
		out.PatternVars = make(map[symbols.Symbol]types.Variable, len(def.PatternVars))
		for s, v := range def.PatternVars {
			out.PatternVars[s] = fn(v)
		}
	}
	if def.Annotation != nil {
		ann := &Annotation{Signature: copyType(def.Annotation.Signature, fn)}
		for _, v := range def.Annotation.Introduced {
			ann.Introduced = append(ann.Introduced, fn(v))
		}
		out.Annotation = ann
	}
	return out
}

func copyPattern(p *Pattern, fn func(types.Variable) types.Variable) *Pattern {
	if p == nil {
		return nil
	}
	out := &Pattern{Kind: p.Kind, Symbol: p.Symbol, Tag: p.Tag}
	if p.Kind == PatternAppliedTag {
		out.WholeVar = fn(p.WholeVar)
		out.ExtVar = fn(p.ExtVar)
		for _, a := range p.Args {
			out.Args = append(out.Args, PatternArg{Var: fn(a.Var), Pattern: copyPattern(a.Pattern, fn)})
		}
	}
	return out
}

func copyArgs(args []Arg, fn func(types.Variable) types.Variable) []Arg {
	if args == nil {
		return nil
	}
	out := make([]Arg, len(args))
	for i, a := range args {
		out[i] = Arg{Var: fn(a.Var), Expr: copyExpr(a.Expr, fn)}
	}
	return out
}

func copyExpr(e *Expr, fn func(types.Variable) types.Variable) *Expr {
	if e == nil {
		return nil
	}
	out := &Expr{Kind: e.Kind}
	switch d := e.Data.(type) {
	case VarData, StrData, EmptyRecordData:
		out.Data = d
	case NumData:
		out.Data = NumData{Var: fn(d.Var), Value: d.Value}
	case IntData:
		var v *big.Int
		if d.Value != nil {
			v = new(big.Int).Set(d.Value)
		}
		out.Data = IntData{Var: fn(d.Var), Precision: fn(d.Precision), Value: v}
	case FloatData:
		out.Data = FloatData{Var: fn(d.Var), Precision: fn(d.Precision), Value: d.Value}
	case RunLowLevelData:
		out.Data = RunLowLevelData{Op: d.Op, Args: copyArgs(d.Args, fn), Ret: fn(d.Ret)}
	case IfData:
		nd := IfData{CondVar: fn(d.CondVar), BranchVar: fn(d.BranchVar), Else: copyExpr(d.Else, fn)}
		for _, br := range d.Branches {
			nd.Branches = append(nd.Branches, IfBranch{Cond: copyExpr(br.Cond, fn), Then: copyExpr(br.Then, fn)})
		}
		out.Data = nd
	case WhenData:
		nd := WhenData{CondVar: fn(d.CondVar), ExprVar: fn(d.ExprVar), Cond: copyExpr(d.Cond, fn)}
		for _, br := range d.Branches {
			nb := WhenBranch{Value: copyExpr(br.Value, fn), Guard: copyExpr(br.Guard, fn)}
			for _, p := range br.Patterns {
				nb.Patterns = append(nb.Patterns, copyPattern(p, fn))
			}
			nd.Branches = append(nd.Branches, nb)
		}
		out.Data = nd
	case LetNonRecData:
		out.Data = LetNonRecData{Def: copyDef(d.Def, fn), Body: copyExpr(d.Body, fn), Var: fn(d.Var)}
	case AccessData:
		out.Data = AccessData{
			RecordVar: fn(d.RecordVar),
			ExtVar:    fn(d.ExtVar),
			FieldVar:  fn(d.FieldVar),
			Field:     d.Field,
			Record:    copyExpr(d.Record, fn),
		}
	case TagData:
		out.Data = TagData{VariantVar: fn(d.VariantVar), ExtVar: fn(d.ExtVar), Name: d.Name, Args: copyArgs(d.Args, fn)}
	case ClosureData:
		nd := ClosureData{
			FunctionVar:   fn(d.FunctionVar),
			ClosureVar:    fn(d.ClosureVar),
			ClosureExtVar: fn(d.ClosureExtVar),
			ReturnVar:     fn(d.ReturnVar),
			Name:          d.Name,
			Recursive:     d.Recursive,
			Body:          copyExpr(d.Body, fn),
		}
		for _, c := range d.Captured {
			nd.Captured = append(nd.Captured, Capture{Symbol: c.Symbol, Var: fn(c.Var)})
		}
		for _, p := range d.Params {
			nd.Params = append(nd.Params, Param{Var: fn(p.Var), Pattern: copyPattern(p.Pattern, fn)})
		}
		out.Data = nd
	case ListData:
		nd := ListData{ElemVar: fn(d.ElemVar)}
		for _, el := range d.Elems {
			nd.Elems = append(nd.Elems, copyExpr(el, fn))
		}
		out.Data = nd
	case CallData:
		out.Data = CallData{
			FnVar:      fn(d.FnVar),
			Fn:         copyExpr(d.Fn, fn),
			ClosureVar: fn(d.ClosureVar),
			ReturnVar:  fn(d.ReturnVar),
			Args:       copyArgs(d.Args, fn),
			CalledVia:  d.CalledVia,
		}
	default:
		out.Data = e.Data
	}
	return out
}

func copyType(t *types.Type, fn func(types.Variable) types.Variable) *types.Type {
	if t == nil {
		return nil
	}
	out := &types.Type{Kind: t.Kind, Name: t.Name, Var: t.Var}
	if t.Kind == types.KindVariable {
		out.Var = fn(t.Var)
	}
	for _, a := range t.Args {
		out.Args = append(out.Args, copyType(a, fn))
	}
	out.Result = copyType(t.Result, fn)
	for _, f := range t.Fields {
		out.Fields = append(out.Fields, types.Field{Name: f.Name, Type: copyType(f.Type, fn)})
	}
	for _, tag := range t.Tags {
		nt := types.Tag{Name: tag.Name}
		for _, a := range tag.Args {
			nt.Args = append(nt.Args, copyType(a, fn))
		}
		out.Tags = append(out.Tags, nt)
	}
	out.Ext = copyType(t.Ext, fn)
	return out
}
