package types

import (
	"strings"
)

// Kind enumerates the shapes an annotation type can take.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindVariable is a bare type variable.
	KindVariable
	// KindApply is a named type constructor applied to arguments (`List a`).
	KindApply
	// KindFunction is `args -> result`.
	KindFunction
	// KindRecord is a record with named fields and an optional extension.
	KindRecord
	// KindTagUnion is a tag union; a non-nil Ext keeps it open.
	KindTagUnion
	// KindAlias names another type (`I128 : Num (Integer Signed128)`).
	KindAlias
	// KindEmptyRecord is `{}`.
	KindEmptyRecord
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindApply:
		return "apply"
	case KindFunction:
		return "function"
	case KindRecord:
		return "record"
	case KindTagUnion:
		return "tag-union"
	case KindAlias:
		return "alias"
	case KindEmptyRecord:
		return "empty-record"
	default:
		return "invalid"
	}
}

// Field is a named record field.
type Field struct {
	Name string
	Type *Type
}

// Tag is one variant of a tag union.
type Tag struct {
	Name string
	Args []*Type
}

// Type is an explicit type annotation attached to a definition. It is only
// used where a signature cannot be reconstructed from the body.
type Type struct {
	Kind   Kind
	Var    Variable // KindVariable
	Name   string   // KindApply, KindAlias
	Args   []*Type  // KindApply, KindFunction params, KindAlias args
	Result *Type    // KindFunction result, KindAlias actual
	Fields []Field  // KindRecord
	Tags   []Tag    // KindTagUnion
	Ext    *Type    // KindRecord, KindTagUnion; nil means closed
}

// MakeVar wraps a variable as a type.
func MakeVar(v Variable) *Type { return &Type{Kind: KindVariable, Var: v} }

// MakeApply builds `name args...`.
func MakeApply(name string, args ...*Type) *Type {
	return &Type{Kind: KindApply, Name: name, Args: args}
}

// MakeFunction builds `params -> result`.
func MakeFunction(result *Type, params ...*Type) *Type {
	return &Type{Kind: KindFunction, Args: params, Result: result}
}

// MakeAlias builds a named alias over actual.
func MakeAlias(name string, actual *Type, args ...*Type) *Type {
	return &Type{Kind: KindAlias, Name: name, Args: args, Result: actual}
}

// Vars returns every variable mentioned in t, in first-occurrence order.
func (t *Type) Vars() []Variable {
	var out []Variable
	seen := make(map[Variable]struct{})
	var walk func(*Type)
	walk = func(t *Type) {
		if t == nil {
			return
		}
		if t.Kind == KindVariable {
			if _, ok := seen[t.Var]; !ok {
				seen[t.Var] = struct{}{}
				out = append(out, t.Var)
			}
			return
		}
		for _, a := range t.Args {
			walk(a)
		}
		walk(t.Result)
		for _, f := range t.Fields {
			walk(f.Type)
		}
		for _, tag := range t.Tags {
			for _, a := range tag.Args {
				walk(a)
			}
		}
		walk(t.Ext)
	}
	walk(t)
	return out
}

func (t *Type) String() string {
	var sb strings.Builder
	writeType(&sb, t, false)
	return sb.String()
}

func writeType(sb *strings.Builder, t *Type, nested bool) {
	if t == nil {
		sb.WriteString("<nil>")
		return
	}
	switch t.Kind {
	case KindVariable:
		sb.WriteString(t.Var.String())
	case KindApply, KindAlias:
		if nested && len(t.Args) > 0 {
			sb.WriteByte('(')
		}
		sb.WriteString(t.Name)
		for _, a := range t.Args {
			sb.WriteByte(' ')
			writeType(sb, a, true)
		}
		if nested && len(t.Args) > 0 {
			sb.WriteByte(')')
		}
	case KindFunction:
		if nested {
			sb.WriteByte('(')
		}
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeType(sb, a, false)
		}
		sb.WriteString(" -> ")
		writeType(sb, t.Result, false)
		if nested {
			sb.WriteByte(')')
		}
	case KindRecord:
		sb.WriteString("{ ")
		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(" : ")
			writeType(sb, f.Type, false)
		}
		sb.WriteString(" }")
		if t.Ext != nil {
			writeType(sb, t.Ext, true)
		}
	case KindTagUnion:
		sb.WriteString("[ ")
		for i, tag := range t.Tags {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(tag.Name)
			for _, a := range tag.Args {
				sb.WriteByte(' ')
				writeType(sb, a, true)
			}
		}
		sb.WriteString(" ]")
		if t.Ext != nil {
			writeType(sb, t.Ext, true)
		}
	case KindEmptyRecord:
		sb.WriteString("{}")
	default:
		sb.WriteString("<invalid>")
	}
}
