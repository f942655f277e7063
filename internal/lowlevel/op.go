package lowlevel

import "fmt"

// Category groups opcodes for listings and traces.
type Category uint8

const (
	CatInvalid Category = iota
	CatBool
	CatCompare
	CatArith
	CatFloat
	CatBitwise
	CatStr
	CatList
	CatDict
)

func (c Category) String() string {
	switch c {
	case CatBool:
		return "bool"
	case CatCompare:
		return "compare"
	case CatArith:
		return "arith"
	case CatFloat:
		return "float"
	case CatBitwise:
		return "bitwise"
	case CatStr:
		return "str"
	case CatList:
		return "list"
	case CatDict:
		return "dict"
	default:
		return "invalid"
	}
}

// Info describes one opcode.
type Info struct {
	Name     string
	Arity    int
	Category Category
	// Record is non-nil when the opcode returns an anonymous record; bodies
	// must only access the fields it names.
	Record *Contract
}

// Lookup returns the catalog entry for op.
func Lookup(op Op) (Info, bool) {
	if !op.IsValid() {
		return Info{}, false
	}
	return table[op], true
}

// IsValid reports whether op is a catalog opcode.
func (op Op) IsValid() bool { return op > OpInvalid && op < opEnd }

// Arity returns the number of positional arguments op takes, or -1.
func (op Op) Arity() int {
	if !op.IsValid() {
		return -1
	}
	return table[op].Arity
}

// Category returns the opcode family, CatInvalid for unknown opcodes.
func (op Op) Category() Category {
	if !op.IsValid() {
		return CatInvalid
	}
	return table[op].Category
}

// Record returns the result contract of op, if any.
func (op Op) Record() *Contract {
	if !op.IsValid() {
		return nil
	}
	return table[op].Record
}

func (op Op) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("op(%d)", uint8(op))
	}
	return table[op].Name
}

// Parse finds an opcode by its printed name.
func Parse(name string) (Op, bool) {
	for op := OpInvalid + 1; op < opEnd; op++ {
		if table[op].Name == name {
			return op, true
		}
	}
	return OpInvalid, false
}

// All returns every opcode in declaration order.
func All() []Op {
	out := make([]Op, 0, int(opEnd)-1)
	for op := OpInvalid + 1; op < opEnd; op++ {
		out = append(out, op)
	}
	return out
}
