package builtins

import (
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
)

var boolDefs = map[symbols.Symbol]entry{
	// a, a -> Bool: one variable for both operands makes the solver unify them.
	symbols.BoolIsEq:    {typed(lowlevel.Eq, "aa>b"), ShapePassthrough},
	symbols.BoolIsNotEq: {typed(lowlevel.NotEq, "aa>b"), ShapePassthrough},
	symbols.BoolAnd:     {typed(lowlevel.And, "bb>b"), ShapePassthrough},
	symbols.BoolOr:      {typed(lowlevel.Or, "bb>b"), ShapePassthrough},
	symbols.BoolNot:     {typed(lowlevel.Not, "b>b"), ShapePassthrough},
}
