package dump

import (
	"strconv"

	"stdsynth/internal/can"
	"stdsynth/internal/types"
)

// Slot names the variable filling one role ("ret", "branch", "ext") of a node.
type Slot struct {
	Role string `json:"role" yaml:"role" msgpack:"role"`
	Var  uint32 `json:"var" yaml:"var" msgpack:"var"`
}

// Node is one expression or pattern in serialized form. Vars lists its slots
// in the order the tree declares them.
type Node struct {
	Kind     string `json:"kind" yaml:"kind" msgpack:"kind"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty" msgpack:"label,omitempty"`
	Vars     []Slot `json:"vars,omitempty" yaml:"vars,omitempty" msgpack:"vars,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

// Var returns the variable in role, or 0.
func (n Node) Var(role string) uint32 {
	for _, s := range n.Vars {
		if s.Role == role {
			return s.Var
		}
	}
	return 0
}

// Record describes one definition.
type Record struct {
	Name       string `json:"name" yaml:"name" msgpack:"name"`
	Namespace  string `json:"namespace" yaml:"namespace" msgpack:"namespace"`
	Shape      string `json:"shape,omitempty" yaml:"shape,omitempty" msgpack:"shape,omitempty"`
	Arity      int    `json:"arity" yaml:"arity" msgpack:"arity"`
	Vars       int    `json:"vars" yaml:"vars" msgpack:"vars"`
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty" msgpack:"annotation,omitempty"`
	Pattern    Node   `json:"pattern" yaml:"pattern" msgpack:"pattern"`
	Body       Node   `json:"body" yaml:"body" msgpack:"body"`
}

// NewRecord converts def. Shape is supplied by the caller since the tree
// does not carry it.
func NewRecord(def *can.Def, shape string) Record {
	r := Record{
		Name:      def.Name().String(),
		Namespace: def.Name().Namespace().String(),
		Shape:     shape,
		Arity:     def.Arity(),
		Vars:      len(can.Vars(def)),
		Pattern:   fromPattern(def.Pattern),
		Body:      fromExpr(def.Expr),
	}
	r.Body.setVar("expr", def.ExprVar)
	if def.Annotation != nil && def.Annotation.Signature != nil {
		r.Annotation = def.Annotation.Signature.String()
	}
	return r
}

func (n *Node) setVar(role string, v types.Variable) {
	if !v.IsValid() {
		return
	}
	for i := range n.Vars {
		if n.Vars[i].Role == role {
			n.Vars[i].Var = uint32(v)
			return
		}
	}
	n.Vars = append(n.Vars, Slot{Role: role, Var: uint32(v)})
}

func (n *Node) add(c Node) { n.Children = append(n.Children, c) }

func (n *Node) addArgs(args []can.Arg) {
	for _, a := range args {
		c := fromExpr(a.Expr)
		c.setVar("arg", a.Var)
		n.add(c)
	}
}

func fromPattern(p *can.Pattern) Node {
	if p == nil {
		return Node{Kind: "Nil"}
	}
	n := Node{Kind: p.Kind.String()}
	switch p.Kind {
	case can.PatternIdentifier:
		n.Label = p.Symbol.String()
	case can.PatternAppliedTag:
		n.Label = p.Tag
		n.setVar("whole", p.WholeVar)
		n.setVar("ext", p.ExtVar)
		for _, a := range p.Args {
			c := fromPattern(a.Pattern)
			c.setVar("arg", a.Var)
			n.add(c)
		}
	}
	return n
}

func fromExpr(e *can.Expr) Node {
	if e == nil {
		return Node{Kind: "Nil"}
	}
	n := Node{Kind: e.Kind.String()}
	switch d := e.Data.(type) {
	case can.VarData:
		n.Label = d.Symbol.String()
	case can.NumData:
		n.Label = strconv.FormatInt(d.Value, 10)
		n.setVar("num", d.Var)
	case can.IntData:
		n.Label = d.Value.String()
		n.setVar("num", d.Var)
		n.setVar("precision", d.Precision)
	case can.FloatData:
		n.Label = strconv.FormatFloat(d.Value, 'g', -1, 64)
		n.setVar("num", d.Var)
		n.setVar("precision", d.Precision)
	case can.StrData:
		n.Label = strconv.Quote(d.Value)
	case can.RunLowLevelData:
		n.Label = d.Op.String()
		n.setVar("ret", d.Ret)
		n.addArgs(d.Args)
	case can.IfData:
		n.setVar("cond", d.CondVar)
		n.setVar("branch", d.BranchVar)
		for _, br := range d.Branches {
			n.add(fromExpr(br.Cond))
			n.add(fromExpr(br.Then))
		}
		n.add(fromExpr(d.Else))
	case can.WhenData:
		n.setVar("cond", d.CondVar)
		n.setVar("expr", d.ExprVar)
		n.add(fromExpr(d.Cond))
		for _, br := range d.Branches {
			arm := Node{Kind: "Branch"}
			for _, p := range br.Patterns {
				arm.add(fromPattern(p))
			}
			if br.Guard != nil {
				g := fromExpr(br.Guard)
				g.Label = "guard"
				arm.add(g)
			}
			arm.add(fromExpr(br.Value))
			n.add(arm)
		}
	case can.LetNonRecData:
		n.setVar("let", d.Var)
		if d.Def != nil {
			n.Label = d.Def.Name().String()
			bound := fromExpr(d.Def.Expr)
			bound.setVar("bound", d.Def.ExprVar)
			n.add(fromPattern(d.Def.Pattern))
			n.add(bound)
		}
		n.add(fromExpr(d.Body))
	case can.AccessData:
		n.Label = d.Field
		n.setVar("record", d.RecordVar)
		n.setVar("ext", d.ExtVar)
		n.setVar("field", d.FieldVar)
		n.add(fromExpr(d.Record))
	case can.TagData:
		n.Label = d.Name
		n.setVar("variant", d.VariantVar)
		n.setVar("ext", d.ExtVar)
		n.addArgs(d.Args)
	case can.ClosureData:
		n.Label = d.Name.String()
		n.setVar("fn", d.FunctionVar)
		n.setVar("closure", d.ClosureVar)
		n.setVar("closure_ext", d.ClosureExtVar)
		n.setVar("ret", d.ReturnVar)
		for _, c := range d.Captured {
			captured := Node{Kind: "Capture", Label: c.Symbol.String()}
			captured.setVar("var", c.Var)
			n.add(captured)
		}
		for _, p := range d.Params {
			param := fromPattern(p.Pattern)
			param.setVar("param", p.Var)
			n.add(param)
		}
		n.add(fromExpr(d.Body))
	case can.ListData:
		n.setVar("elem", d.ElemVar)
		for _, el := range d.Elems {
			n.add(fromExpr(el))
		}
	case can.CallData:
		n.Label = d.CalledVia.String()
		n.setVar("fn", d.FnVar)
		n.setVar("closure", d.ClosureVar)
		n.setVar("ret", d.ReturnVar)
		n.add(fromExpr(d.Fn))
		n.addArgs(d.Args)
	}
	return n
}
