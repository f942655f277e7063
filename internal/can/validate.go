package can

import (
	"fmt"
	"strings"

	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// ValidationError lists every structural problem found in a definition.
type ValidationError struct {
	Name   symbols.Symbol
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d issue(s): %s", e.Name, len(e.Issues), strings.Join(e.Issues, "; "))
}

// Validate checks the structural invariants synthesized definitions rely on:
// every referenced identity is bound, opcode calls match their arity, record
// accesses name contract fields, tags are open, minted slots are not shared
// and, when store is non-nil, every variable came from it.
func Validate(def *Def, store *types.VarStore) error {
	v := &validator{
		contracts: make(map[symbols.Symbol]*lowlevel.Contract),
	}
	v.checkTop(def)
	v.checkVars(def, store)
	if len(v.issues) == 0 {
		return nil
	}
	return &ValidationError{Name: def.Name(), Issues: v.issues}
}

type validator struct {
	scope     []symbols.Symbol
	contracts map[symbols.Symbol]*lowlevel.Contract
	issues    []string
}

func (v *validator) report(format string, args ...any) {
	v.issues = append(v.issues, fmt.Sprintf(format, args...))
}

func (v *validator) bound(sym symbols.Symbol) bool {
	for i := len(v.scope) - 1; i >= 0; i-- {
		if v.scope[i] == sym {
			return true
		}
	}
	return false
}

func (v *validator) checkTop(def *Def) {
	if def == nil {
		v.report("nil definition")
		return
	}
	if def.Pattern == nil || def.Pattern.Kind != PatternIdentifier {
		v.report("top-level pattern must be an identifier")
		return
	}
	if c, ok := def.Closure(); ok && c.Name != def.Name() {
		v.report("closure named %s bound to %s", c.Name, def.Name())
	}
	v.checkExpr(def.Expr)
}

//nolint:gocyclo // one arm per expression kind
func (v *validator) checkExpr(e *Expr) {
	if e == nil {
		v.report("nil expression")
		return
	}
	switch d := e.Data.(type) {
	case VarData:
		if !v.bound(d.Symbol) {
			v.report("unbound identity %s", d.Symbol)
		}
	case NumData, IntData, FloatData, StrData, EmptyRecordData:
	case RunLowLevelData:
		info, ok := lowlevel.Lookup(d.Op)
		if !ok {
			v.report("unknown opcode %s", d.Op)
			return
		}
		if len(d.Args) != info.Arity {
			v.report("%s takes %d argument(s), got %d", d.Op, info.Arity, len(d.Args))
		}
		for _, a := range d.Args {
			v.checkExpr(a.Expr)
		}
	case IfData:
		if len(d.Branches) == 0 {
			v.report("if without branches")
		}
		for _, br := range d.Branches {
			v.checkExpr(br.Cond)
			v.checkExpr(br.Then)
		}
		v.checkExpr(d.Else)
	case WhenData:
		v.checkExpr(d.Cond)
		if len(d.Branches) == 0 {
			v.report("when without branches")
		}
		for _, br := range d.Branches {
			mark := len(v.scope)
			for _, p := range br.Patterns {
				v.checkPattern(p)
				v.scope = append(v.scope, p.Bound()...)
			}
			if br.Guard != nil {
				v.checkExpr(br.Guard)
			}
			v.checkExpr(br.Value)
			v.scope = v.scope[:mark]
		}
	case LetNonRecData:
		if d.Def == nil || d.Def.Pattern == nil {
			v.report("let without definition")
			return
		}
		v.checkExpr(d.Def.Expr)
		mark := len(v.scope)
		bound := d.Def.Pattern.Bound()
		v.scope = append(v.scope, bound...)
		if rec := recordContract(d.Def.Expr); rec != nil && len(bound) == 1 {
			v.contracts[bound[0]] = rec
		}
		v.checkExpr(d.Body)
		v.scope = v.scope[:mark]
	case AccessData:
		v.checkExpr(d.Record)
		v.checkAccess(d)
	case TagData:
		if d.Name == "" {
			v.report("tag without name")
		}
		if d.ExtVar.IsReserved() {
			v.report("tag %s is closed over reserved %s", d.Name, d.ExtVar)
		}
		for _, a := range d.Args {
			v.checkExpr(a.Expr)
		}
	case ClosureData:
		mark := len(v.scope)
		for _, c := range d.Captured {
			if !v.bound(c.Symbol) {
				v.report("closure %s captures unbound %s", d.Name, c.Symbol)
			}
		}
		// Captured identities are in scope in the body under the same name.
		for _, c := range d.Captured {
			v.scope = append(v.scope, c.Symbol)
		}
		for _, p := range d.Params {
			v.checkPattern(p.Pattern)
			v.scope = append(v.scope, p.Pattern.Bound()...)
		}
		v.checkExpr(d.Body)
		v.scope = v.scope[:mark]
	case ListData:
		for _, el := range d.Elems {
			v.checkExpr(el)
		}
	case CallData:
		v.checkExpr(d.Fn)
		for _, a := range d.Args {
			v.checkExpr(a.Expr)
		}
	default:
		v.report("unknown expression kind %s", e.Kind)
	}
}

func (v *validator) checkPattern(p *Pattern) {
	if p == nil {
		v.report("nil pattern")
		return
	}
	switch p.Kind {
	case PatternIdentifier:
		if !p.Symbol.IsValid() {
			v.report("identifier pattern without symbol")
		}
	case PatternUnderscore:
	case PatternAppliedTag:
		if p.ExtVar.IsReserved() {
			v.report("pattern %s is closed over reserved %s", p.Tag, p.ExtVar)
		}
		for _, a := range p.Args {
			v.checkPattern(a.Pattern)
		}
	default:
		v.report("unknown pattern kind %s", p.Kind)
	}
}

func (v *validator) checkAccess(d AccessData) {
	if d.Record != nil && d.Record.Kind == ExprVar {
		sym := d.Record.Data.(VarData).Symbol
		if rec, ok := v.contracts[sym]; ok {
			if !rec.Has(d.Field) {
				v.report("field %q is not part of %s", d.Field, rec.Name)
			}
			return
		}
	}
	for _, rec := range lowlevel.Contracts() {
		if rec.Has(d.Field) {
			return
		}
	}
	v.report("field %q belongs to no opcode contract", d.Field)
}

func recordContract(e *Expr) *lowlevel.Contract {
	if e == nil || e.Kind != ExprRunLowLevel {
		return nil
	}
	return e.Data.(RunLowLevelData).Op.Record()
}

func (v *validator) checkVars(def *Def, store *types.VarStore) {
	minted := make(map[types.Variable]int)
	seen := make(map[types.Variable]int)
	var zero int
	VisitVars(def, func(x types.Variable, slot Slot) {
		if !x.IsValid() {
			zero++
			return
		}
		seen[x]++
		if slot == SlotMinted {
			minted[x]++
			if x.IsReserved() {
				v.report("minted slot holds reserved %s", x)
			}
		}
		if store != nil && !store.Owns(x) {
			v.report("%s was not minted by this store", x)
		}
	})
	if zero > 0 {
		v.report("%d position(s) hold no variable", zero)
	}
	for x, n := range minted {
		if n != 1 || seen[x] != 1 {
			v.report("minted %s shared by %d position(s)", x, seen[x])
		}
	}
}
