package lowlevel

import "slices"

// Contract lists the field names of an anonymous record an opcode returns
// (or, for Utf8Range, expects). Names are positional letter-coded where the
// layout depends on field order; keep them byte-for-byte.
type Contract struct {
	Name   string
	Fields []string
}

// Has reports whether field belongs to the contract.
func (c *Contract) Has(field string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Fields, field)
}

// Result of the checked arithmetic opcodes.
const (
	FieldCheckedValue    = "a"
	FieldCheckedOverflow = "b"
)

// Result of StrFromUtf8 and StrFromUtf8Range.
const (
	FieldUtf8ByteIndex = "a_byteIndex"
	FieldUtf8Str       = "b_str"
	FieldUtf8IsOk      = "c_isOk"
	FieldUtf8Problem   = "d_problem"
)

// Result of ListFindUnsafe.
const (
	FieldFindFound = "found"
	FieldFindValue = "value"
)

// Result of DictGetUnsafe.
const (
	FieldDictValue = "value"
	FieldDictFlag  = "zflag"
)

// Argument record of Str.fromUtf8Range.
const (
	FieldRangeStart = "start"
	FieldRangeCount = "count"
)

var (
	CheckedArith = Contract{Name: "CheckedArith", Fields: []string{FieldCheckedValue, FieldCheckedOverflow}}
	Utf8Decode   = Contract{Name: "Utf8Decode", Fields: []string{FieldUtf8ByteIndex, FieldUtf8Str, FieldUtf8IsOk, FieldUtf8Problem}}
	FindResult   = Contract{Name: "FindResult", Fields: []string{FieldFindFound, FieldFindValue}}
	DictLookup   = Contract{Name: "DictLookup", Fields: []string{FieldDictValue, FieldDictFlag}}
	Utf8Range    = Contract{Name: "Utf8Range", Fields: []string{FieldRangeStart, FieldRangeCount}}
)

// Contracts lists every record contract.
func Contracts() []*Contract {
	return []*Contract{&CheckedArith, &Utf8Decode, &FindResult, &DictLookup, &Utf8Range}
}
