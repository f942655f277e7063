package can

import (
	"math/big"

	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// ExprKind enumerates canonical expression kinds.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	// ExprVar references a bound identity.
	ExprVar
	// ExprNum is a number literal whose kind (int or float) is left to the solver.
	ExprNum
	// ExprInt is an integer literal with a precision variable.
	ExprInt
	// ExprFloat is a float literal with a precision variable.
	ExprFloat
	// ExprStr is a string literal.
	ExprStr
	// ExprRunLowLevel invokes a primitive opcode.
	ExprRunLowLevel
	// ExprIf is a conditional chain with a final else.
	ExprIf
	// ExprWhen matches a value against patterns.
	ExprWhen
	// ExprLetNonRec binds one non-recursive definition in a body.
	ExprLetNonRec
	// ExprAccess reads a record field.
	ExprAccess
	// ExprTag builds a tagged variant.
	ExprTag
	// ExprClosure is a lambda, possibly capturing identities.
	ExprClosure
	// ExprList is a list literal.
	ExprList
	// ExprCall applies a function value to arguments.
	ExprCall
	// ExprEmptyRecord is `{}`.
	ExprEmptyRecord
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprVar:
		return "Var"
	case ExprNum:
		return "Num"
	case ExprInt:
		return "Int"
	case ExprFloat:
		return "Float"
	case ExprStr:
		return "Str"
	case ExprRunLowLevel:
		return "RunLowLevel"
	case ExprIf:
		return "If"
	case ExprWhen:
		return "When"
	case ExprLetNonRec:
		return "LetNonRec"
	case ExprAccess:
		return "Access"
	case ExprTag:
		return "Tag"
	case ExprClosure:
		return "Closure"
	case ExprList:
		return "List"
	case ExprCall:
		return "Call"
	case ExprEmptyRecord:
		return "EmptyRecord"
	default:
		return "Unknown"
	}
}

// Expr is a canonical expression. Trees are immutable once built.
type Expr struct {
	Kind ExprKind
	Data ExprData
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// Arg pairs a sub-expression with the variable typing it at its use site.
type Arg struct {
	Var  types.Variable
	Expr *Expr
}

// VarData references an identity.
type VarData struct {
	Symbol symbols.Symbol
}

func (VarData) exprData() {}

// NumData is an unbound number literal.
type NumData struct {
	Var   types.Variable
	Value int64
}

func (NumData) exprData() {}

// IntData is an integer literal. Value is wide enough for i128.
type IntData struct {
	Var       types.Variable
	Precision types.Variable
	Value     *big.Int
}

func (IntData) exprData() {}

// FloatData is a float literal.
type FloatData struct {
	Var       types.Variable
	Precision types.Variable
	Value     float64
}

func (FloatData) exprData() {}

// StrData is a string literal.
type StrData struct {
	Value string
}

func (StrData) exprData() {}

// RunLowLevelData calls a primitive. Args are positional; Ret types the result.
type RunLowLevelData struct {
	Op   lowlevel.Op
	Args []Arg
	Ret  types.Variable
}

func (RunLowLevelData) exprData() {}

// IfBranch is one `cond then` arm.
type IfBranch struct {
	Cond *Expr
	Then *Expr
}

// IfData is `if c1 then e1 else if ... else final`. CondVar types every
// condition, BranchVar is the join point of all arms.
type IfData struct {
	CondVar   types.Variable
	BranchVar types.Variable
	Branches  []IfBranch
	Else      *Expr
}

func (IfData) exprData() {}

// WhenBranch is one arm of a match.
type WhenBranch struct {
	Patterns []*Pattern
	Value    *Expr
	Guard    *Expr
}

// WhenData matches Cond (typed CondVar) and yields ExprVar.
type WhenData struct {
	CondVar  types.Variable
	ExprVar  types.Variable
	Cond     *Expr
	Branches []WhenBranch
}

func (WhenData) exprData() {}

// LetNonRecData binds Def in Body; Var types the whole expression.
type LetNonRecData struct {
	Def  *Def
	Body *Expr
	Var  types.Variable
}

func (LetNonRecData) exprData() {}

// AccessData is `Record.Field`.
type AccessData struct {
	RecordVar types.Variable
	ExtVar    types.Variable
	FieldVar  types.Variable
	Field     string
	Record    *Expr
}

func (AccessData) exprData() {}

// TagData builds `Name args...`. ExtVar keeps the union open.
type TagData struct {
	VariantVar types.Variable
	ExtVar     types.Variable
	Name       string
	Args       []Arg
}

func (TagData) exprData() {}

// Capture is an identity a closure closes over.
type Capture struct {
	Symbol symbols.Symbol
	Var    types.Variable
}

// Param is a closure parameter.
type Param struct {
	Var     types.Variable
	Pattern *Pattern
}

// ClosureData is a lambda.
type ClosureData struct {
	FunctionVar   types.Variable
	ClosureVar    types.Variable
	ClosureExtVar types.Variable
	ReturnVar     types.Variable
	Name          symbols.Symbol
	Recursive     bool
	Captured      []Capture
	Params        []Param
	Body          *Expr
}

func (ClosureData) exprData() {}

// ListData is a list literal.
type ListData struct {
	ElemVar types.Variable
	Elems   []*Expr
}

func (ListData) exprData() {}

// CalledVia records the surface syntax a call came from.
type CalledVia uint8

const (
	CalledViaSpace CalledVia = iota
	CalledViaBinOp
	CalledViaUnaryOp
)

func (c CalledVia) String() string {
	switch c {
	case CalledViaBinOp:
		return "binop"
	case CalledViaUnaryOp:
		return "unaryop"
	default:
		return "space"
	}
}

// CallData applies Fn (typed FnVar) to Args.
type CallData struct {
	FnVar      types.Variable
	Fn         *Expr
	ClosureVar types.Variable
	ReturnVar  types.Variable
	Args       []Arg
	CalledVia  CalledVia
}

func (CallData) exprData() {}

// EmptyRecordData is `{}`.
type EmptyRecordData struct{}

func (EmptyRecordData) exprData() {}
