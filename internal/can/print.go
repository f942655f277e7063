//nolint:errcheck // Data payloads are matched by construction
package can

import (
	"fmt"
	"io"
	"strings"
)

// PrintOptions configures definition dumps.
type PrintOptions struct {
	// Vars appends `:vN` to every typed position.
	Vars bool
	// Normalize renumbers variables before printing so alpha-equivalent
	// definitions print identically.
	Normalize bool
}

// Printer dumps canonical definitions as indented text.
type Printer struct {
	w      io.Writer
	indent int
	opts   PrintOptions
}

// NewPrinter creates a printer that shows variables.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithOptions(w, PrintOptions{Vars: true})
}

// NewPrinterWithOptions creates a printer with the given options.
func NewPrinterWithOptions(w io.Writer, opts PrintOptions) *Printer {
	return &Printer{w: w, opts: opts}
}

// Dump writes def to w with variables shown.
func Dump(w io.Writer, def *Def) error {
	return NewPrinter(w).PrintDef(def)
}

// DefString renders def with the given options.
func DefString(def *Def, opts PrintOptions) string {
	var sb strings.Builder
	_ = NewPrinterWithOptions(&sb, opts).PrintDef(def)
	return sb.String()
}

// ExprString returns a compact rendering of e.
func ExprString(e *Expr) string {
	var sb strings.Builder
	p := NewPrinterWithOptions(&sb, PrintOptions{})
	p.printExpr(e)
	return sb.String()
}

// PrintDef prints a top-level definition.
func (p *Printer) PrintDef(def *Def) error {
	if def == nil {
		return fmt.Errorf("print: nil definition")
	}
	if p.opts.Normalize {
		def = Normalize(def)
	}
	p.printDef(def)
	p.printf("\n")
	return nil
}

func (p *Printer) printDef(def *Def) {
	p.printPattern(def.Pattern)
	p.typed(def.ExprVar)
	if def.Annotation != nil && def.Annotation.Signature != nil {
		p.printf(" : %s", def.Annotation.Signature)
	}
	p.printf(" =")
	if isInline(def.Expr) {
		p.printf(" ")
		p.printExpr(def.Expr)
		return
	}
	p.indent++
	p.newline()
	p.printExpr(def.Expr)
	p.indent--
}

func (p *Printer) printPattern(pat *Pattern) {
	if pat == nil {
		p.printf("<nil>")
		return
	}
	switch pat.Kind {
	case PatternIdentifier:
		p.printf("%s", pat.Symbol)
	case PatternUnderscore:
		p.printf("_")
	case PatternAppliedTag:
		p.printf("%s", pat.Tag)
		p.typed(pat.WholeVar)
		if p.opts.Vars {
			p.printf("|%s", pat.ExtVar)
		}
		for _, a := range pat.Args {
			p.printf(" ")
			p.printPattern(a.Pattern)
			p.typed(a.Var)
		}
	default:
		p.printf("<pattern>")
	}
}

//nolint:gocyclo // one arm per expression kind
func (p *Printer) printExpr(e *Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}
	switch e.Kind {
	case ExprVar:
		p.printf("%s", e.Data.(VarData).Symbol)

	case ExprNum:
		data := e.Data.(NumData)
		p.printf("%d", data.Value)
		p.typed(data.Var)

	case ExprInt:
		data := e.Data.(IntData)
		p.printf("%si", data.Value)
		p.typed(data.Var)
		if p.opts.Vars {
			p.printf("/%s", data.Precision)
		}

	case ExprFloat:
		data := e.Data.(FloatData)
		p.printf("%gf", data.Value)
		p.typed(data.Var)
		if p.opts.Vars {
			p.printf("/%s", data.Precision)
		}

	case ExprStr:
		p.printf("%q", e.Data.(StrData).Value)

	case ExprEmptyRecord:
		p.printf("{}")

	case ExprRunLowLevel:
		data := e.Data.(RunLowLevelData)
		p.printf("%s", data.Op)
		p.printArgs(data.Args)
		p.typed(data.Ret)

	case ExprTag:
		data := e.Data.(TagData)
		p.printf("%s", data.Name)
		if p.opts.Vars {
			p.printf("<%s|%s>", data.VariantVar, data.ExtVar)
		}
		if len(data.Args) > 0 {
			p.printArgs(data.Args)
		}

	case ExprAccess:
		data := e.Data.(AccessData)
		p.printExpr(data.Record)
		p.typed(data.RecordVar)
		p.printf(".%s", data.Field)
		p.typed(data.FieldVar)

	case ExprList:
		data := e.Data.(ListData)
		p.printf("[")
		for i, el := range data.Elems {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(el)
		}
		p.printf("]")
		p.typed(data.ElemVar)

	case ExprCall:
		data := e.Data.(CallData)
		p.printf("call ")
		p.printExpr(data.Fn)
		p.typed(data.FnVar)
		p.printArgs(data.Args)
		p.typed(data.ReturnVar)

	case ExprIf:
		data := e.Data.(IfData)
		for i, br := range data.Branches {
			if i > 0 {
				p.newline()
				p.printf("else ")
			}
			p.printf("if ")
			p.printExpr(br.Cond)
			p.typed(data.CondVar)
			p.printf(" then")
			p.block(br.Then)
		}
		p.newline()
		p.printf("else")
		p.block(data.Else)
		if p.opts.Vars {
			p.newline()
			p.printf("end:%s", data.BranchVar)
		}

	case ExprWhen:
		data := e.Data.(WhenData)
		p.printf("when ")
		p.printExpr(data.Cond)
		p.typed(data.CondVar)
		p.printf(" is")
		p.typed(data.ExprVar)
		p.indent++
		for _, br := range data.Branches {
			p.newline()
			for i, pat := range br.Patterns {
				if i > 0 {
					p.printf(" | ")
				}
				p.printPattern(pat)
			}
			if br.Guard != nil {
				p.printf(" if ")
				p.printExpr(br.Guard)
			}
			p.printf(" ->")
			p.block(br.Value)
		}
		p.indent--

	case ExprLetNonRec:
		data := e.Data.(LetNonRecData)
		p.printf("let ")
		p.printDef(data.Def)
		p.newline()
		p.printf("in")
		p.typed(data.Var)
		p.block(data.Body)

	case ExprClosure:
		data := e.Data.(ClosureData)
		p.printf("\\")
		for i, param := range data.Params {
			if i > 0 {
				p.printf(", ")
			}
			p.printPattern(param.Pattern)
			p.typed(param.Var)
		}
		p.printf(" ->")
		p.typed(data.ReturnVar)
		p.printf(" [%s", data.Name)
		if p.opts.Vars {
			p.printf(" fn:%s set:%s|%s", data.FunctionVar, data.ClosureVar, data.ClosureExtVar)
		}
		if len(data.Captured) > 0 {
			p.printf(" captures")
			for _, c := range data.Captured {
				p.printf(" %s", c.Symbol)
				p.typed(c.Var)
			}
		}
		p.printf("]")
		p.block(data.Body)

	default:
		p.printf("<%s>", e.Kind)
	}
}

// printArgs prints `(a, b)` inline, or one argument per line when any of
// them needs a block.
func (p *Printer) printArgs(args []Arg) {
	inline := true
	for _, a := range args {
		if !isInline(a.Expr) {
			inline = false
			break
		}
	}
	p.printf("(")
	if inline {
		for i, a := range args {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(a.Expr)
			p.typed(a.Var)
		}
		p.printf(")")
		return
	}
	p.indent++
	for i, a := range args {
		p.newline()
		p.printExpr(a.Expr)
		p.typed(a.Var)
		if i < len(args)-1 {
			p.printf(",")
		}
	}
	p.indent--
	p.newline()
	p.printf(")")
}

func (p *Printer) block(e *Expr) {
	if isInline(e) {
		p.printf(" ")
		p.printExpr(e)
		return
	}
	p.indent++
	p.newline()
	p.printExpr(e)
	p.indent--
}

func isInline(e *Expr) bool {
	inline := true
	Walk(e, func(sub *Expr) bool {
		switch sub.Kind {
		case ExprIf, ExprWhen, ExprLetNonRec, ExprClosure:
			inline = false
			return false
		}
		return true
	})
	return inline
}

func (p *Printer) typed(v fmt.Stringer) {
	if p.opts.Vars {
		p.printf(":%s", v)
	}
}

func (p *Printer) newline() {
	p.printf("\n")
	p.printIndent()
}

func (p *Printer) printIndent() {
	for range p.indent {
		p.printf("  ")
	}
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}
