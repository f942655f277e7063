package builtins

import (
	"fmt"

	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
)

// Shape names the idiom a synthesizer follows.
type Shape uint8

const (
	ShapeInvalid Shape = iota
	// ShapePassthrough binds parameters 1:1 to a single opcode.
	ShapePassthrough
	// ShapeOverflow binds a checked-arithmetic record and branches on its flag.
	ShapeOverflow
	// ShapeDivision guards a divisor against zero.
	ShapeDivision
	// ShapeBounds guards an index or derived bound against a length.
	ShapeBounds
	// ShapeDomain guards a float against a primitive's valid domain.
	ShapeDomain
	// ShapeDecode binds a UTF-8 decode record and branches on its success flag.
	ShapeDecode
	// ShapeLookup binds a found/value record and branches on its flag.
	ShapeLookup
	// ShapeCombinator matches Ok/Err on a result.
	ShapeCombinator
	// ShapeFold walks a collection with a synthesized step closure.
	ShapeFold
	// ShapeConstant is a non-function definition.
	ShapeConstant
	// ShapeDerived covers small bodies composed of a few opcodes.
	ShapeDerived
	// ShapeGuardedFold runs a fold only after a non-empty guard and wraps its
	// result in Ok.
	ShapeGuardedFold
)

var shapeNames = [...]string{
	ShapeInvalid:     "invalid",
	ShapePassthrough: "passthrough",
	ShapeOverflow:    "overflow",
	ShapeDivision:    "division",
	ShapeBounds:      "bounds",
	ShapeDomain:      "domain",
	ShapeDecode:      "decode",
	ShapeLookup:      "lookup",
	ShapeCombinator:  "combinator",
	ShapeFold:        "fold",
	ShapeConstant:    "constant",
	ShapeDerived:     "derived",
	ShapeGuardedFold: "guarded-fold",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", s)
}

// SafeWrapper reports whether s is one of the guard/success/failure idioms.
func (s Shape) SafeWrapper() bool {
	switch s {
	case ShapeOverflow, ShapeDivision, ShapeBounds, ShapeDomain, ShapeDecode, ShapeLookup:
		return true
	default:
		return false
	}
}

// Shapes lists every valid shape.
func Shapes() []Shape {
	out := make([]Shape, 0, len(shapeNames)-1)
	for s := ShapePassthrough; int(s) < len(shapeNames); s++ {
		out = append(out, s)
	}
	return out
}

// CheckShape verifies that def has the tree shape promised by s.
func CheckShape(def *can.Def, s Shape) error {
	if s == ShapeConstant {
		if def.IsFunction() {
			return fmt.Errorf("%s: constant is a function", def.Name())
		}
		return nil
	}
	body := def.Body()
	if body == nil {
		return fmt.Errorf("%s: %s shape needs a function body", def.Name(), s)
	}

	var err error
	switch s {
	case ShapePassthrough:
		err = checkPassthrough(body)
	case ShapeDivision, ShapeBounds, ShapeDomain:
		err = checkGuarded(body)
	case ShapeOverflow:
		err = checkFlagged(body, lowlevel.FieldCheckedOverflow, true)
	case ShapeLookup:
		err = checkFlagged(body, "", false)
	case ShapeDecode:
		err = checkDecode(body)
	case ShapeCombinator:
		err = checkCombinator(body)
	case ShapeFold:
		err = checkFold(body)
	case ShapeGuardedFold:
		err = checkGuardedFold(body)
	case ShapeDerived:
		err = checkDerived(body)
	default:
		err = fmt.Errorf("unknown shape %s", s)
	}
	if err != nil {
		return fmt.Errorf("%s: %s: %w", def.Name(), s, err)
	}
	return nil
}

func checkPassthrough(body *can.Expr) error {
	if body.Kind != can.ExprRunLowLevel {
		return fmt.Errorf("body is %s, want a single opcode", body.Kind)
	}
	for i, a := range body.Data.(can.RunLowLevelData).Args {
		if a.Expr.Kind != can.ExprVar {
			return fmt.Errorf("argument %d is %s, want a parameter", i+1, a.Expr.Kind)
		}
	}
	return nil
}

// checkGuarded expects `if <comparison> then Ok _ else Err Reason`.
func checkGuarded(body *can.Expr) error {
	d, err := singleIf(body)
	if err != nil {
		return err
	}
	cond := d.Branches[0].Cond
	if cond.Kind != can.ExprRunLowLevel {
		return fmt.Errorf("guard is %s, want a comparison", cond.Kind)
	}
	if op := cond.Data.(can.RunLowLevelData).Op; op.Category() != lowlevel.CatCompare {
		return fmt.Errorf("guard uses %s, want a comparison", op)
	}
	if !isTag(d.Branches[0].Then, "Ok", 1) {
		return fmt.Errorf("success branch is not `Ok _`")
	}
	if !isBareErr(d.Else) {
		return fmt.Errorf("failure branch is not `Err Reason`")
	}
	return nil
}

// checkFlagged expects `let r = op ... in if r.flag then X else Y` where the
// Err side carries a bare reason. errOnFlag selects which side is Err.
func checkFlagged(body *can.Expr, flag string, errOnFlag bool) error {
	if body.Kind != can.ExprLetNonRec {
		return fmt.Errorf("body is %s, want let", body.Kind)
	}
	let := body.Data.(can.LetNonRecData)
	if let.Def.Expr.Kind != can.ExprRunLowLevel || let.Def.Expr.Data.(can.RunLowLevelData).Op.Record() == nil {
		return fmt.Errorf("let does not bind an opcode record")
	}
	d, err := singleIf(let.Body)
	if err != nil {
		return err
	}
	cond := d.Branches[0].Cond
	if cond.Kind != can.ExprAccess {
		return fmt.Errorf("guard is %s, want a field access", cond.Kind)
	}
	if flag != "" && cond.Data.(can.AccessData).Field != flag {
		return fmt.Errorf("guard reads %q, want %q", cond.Data.(can.AccessData).Field, flag)
	}
	okSide, errSide := d.Branches[0].Then, d.Else
	if errOnFlag {
		okSide, errSide = errSide, okSide
	}
	if !isTag(okSide, "Ok", 1) || !isBareErr(errSide) {
		return fmt.Errorf("branches are not Ok/Err Reason")
	}
	return nil
}

func checkDecode(body *can.Expr) error {
	// The range variant pre-checks bounds around the decode.
	if body.Kind == can.ExprIf {
		d, err := singleIf(body)
		if err != nil {
			return err
		}
		if !isBareErr(d.Else) {
			return fmt.Errorf("bounds failure is not `Err Reason`")
		}
		body = d.Branches[0].Then
	}
	if body.Kind != can.ExprLetNonRec {
		return fmt.Errorf("body is %s, want let", body.Kind)
	}
	d, err := singleIf(body.Data.(can.LetNonRecData).Body)
	if err != nil {
		return err
	}
	cond := d.Branches[0].Cond
	if cond.Kind != can.ExprAccess || cond.Data.(can.AccessData).Field != lowlevel.FieldUtf8IsOk {
		return fmt.Errorf("guard does not read %q", lowlevel.FieldUtf8IsOk)
	}
	if !isTag(d.Branches[0].Then, "Ok", 1) || !isTag(d.Else, "Err", 1) {
		return fmt.Errorf("branches are not Ok/Err")
	}
	return nil
}

func checkCombinator(body *can.Expr) error {
	if body.Kind != can.ExprWhen {
		return fmt.Errorf("body is %s, want when", body.Kind)
	}
	d := body.Data.(can.WhenData)
	if len(d.Branches) != 2 {
		return fmt.Errorf("when has %d arms, want 2", len(d.Branches))
	}
	seen := map[string]bool{}
	for _, br := range d.Branches {
		if len(br.Patterns) != 1 || br.Patterns[0].Kind != can.PatternAppliedTag {
			return fmt.Errorf("arm is not a tag pattern")
		}
		seen[br.Patterns[0].Tag] = true
	}
	if !seen["Ok"] || !seen["Err"] {
		return fmt.Errorf("arms do not cover Ok and Err")
	}
	return nil
}

func checkFold(body *can.Expr) error {
	found := false
	can.Walk(body, func(e *can.Expr) bool {
		if e.Kind != can.ExprRunLowLevel {
			return true
		}
		d := e.Data.(can.RunLowLevelData)
		if d.Op != lowlevel.ListWalk && d.Op != lowlevel.DictWalk {
			return true
		}
		if step := d.Args[len(d.Args)-1].Expr; step.Kind == can.ExprClosure {
			found = true
		}
		return !found
	})
	if !found {
		return fmt.Errorf("no walk over a synthesized step closure")
	}
	return nil
}

// checkGuardedFold expects `if <comparison> then Ok <fold> else Err Reason`.
func checkGuardedFold(body *can.Expr) error {
	if err := checkGuarded(body); err != nil {
		return err
	}
	ok := body.Data.(can.IfData).Branches[0].Then
	return checkFold(ok.Data.(can.TagData).Args[0].Expr)
}

// checkDerived accepts opcode compositions over parameters and literals,
// optionally under an if. Closures, calls and tags are rejected.
func checkDerived(body *can.Expr) error {
	ops := 0
	var bad *can.Expr
	can.Walk(body, func(e *can.Expr) bool {
		switch e.Kind {
		case can.ExprRunLowLevel:
			ops++
		case can.ExprVar, can.ExprNum, can.ExprInt, can.ExprFloat, can.ExprEmptyRecord, can.ExprIf:
		default:
			bad = e
		}
		return bad == nil
	})
	if bad != nil {
		return fmt.Errorf("body contains %s", bad.Kind)
	}
	if ops == 0 {
		return fmt.Errorf("body runs no opcode")
	}
	return nil
}

func singleIf(e *can.Expr) (can.IfData, error) {
	if e.Kind != can.ExprIf {
		return can.IfData{}, fmt.Errorf("expected if, got %s", e.Kind)
	}
	d := e.Data.(can.IfData)
	if len(d.Branches) != 1 {
		return d, fmt.Errorf("if has %d branches, want 1", len(d.Branches))
	}
	return d, nil
}

func isTag(e *can.Expr, name string, arity int) bool {
	if e == nil || e.Kind != can.ExprTag {
		return false
	}
	d := e.Data.(can.TagData)
	return d.Name == name && len(d.Args) == arity
}

// isBareErr matches `Err Reason` with a payload-free reason.
func isBareErr(e *can.Expr) bool {
	if !isTag(e, "Err", 1) {
		return false
	}
	reason := e.Data.(can.TagData).Args[0].Expr
	return reason.Kind == can.ExprTag && len(reason.Data.(can.TagData).Args) == 0
}
