package can

import (
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// Annotation is an explicit signature attached to a definition.
type Annotation struct {
	Signature  *types.Type
	Introduced []types.Variable
}

// Def binds Pattern to Expr. ExprVar types the bound expression.
type Def struct {
	Pattern     *Pattern
	Expr        *Expr
	ExprVar     types.Variable
	PatternVars map[symbols.Symbol]types.Variable
	Annotation  *Annotation
}

// Name returns the identity bound by an identifier pattern.
func (d *Def) Name() symbols.Symbol {
	if d == nil || d.Pattern == nil || d.Pattern.Kind != PatternIdentifier {
		return symbols.NoSymbol
	}
	return d.Pattern.Symbol
}

// Closure returns the top-level closure of a function definition.
func (d *Def) Closure() (ClosureData, bool) {
	if d == nil || d.Expr == nil || d.Expr.Kind != ExprClosure {
		return ClosureData{}, false
	}
	c, ok := d.Expr.Data.(ClosureData)
	return c, ok
}

// IsFunction reports whether the definition is a closure.
func (d *Def) IsFunction() bool {
	_, ok := d.Closure()
	return ok
}

// Arity returns the parameter count of a function definition, or 0.
func (d *Def) Arity() int {
	c, ok := d.Closure()
	if !ok {
		return 0
	}
	return len(c.Params)
}

// Body returns the closure body of a function definition, or the bound
// expression of a constant.
func (d *Def) Body() *Expr {
	if c, ok := d.Closure(); ok {
		return c.Body
	}
	if d == nil {
		return nil
	}
	return d.Expr
}
