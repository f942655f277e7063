// Package stdtypes holds the pre-solved signatures upstream type-checking
// publishes for builtins whose definitions carry an explicit annotation.
package stdtypes

import (
	"fmt"

	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

func apply(name string, args ...types.Solved) types.Solved {
	return types.Solved{Kind: types.KindApply, Name: name, Args: args}
}

func flex(id types.FlexID) types.Solved {
	return types.Solved{Kind: types.KindVariable, Flex: id}
}

func alias(name string, actual types.Solved) types.Solved {
	return types.Solved{Kind: types.KindAlias, Name: name, Result: &actual}
}

var table = map[symbols.Symbol]types.Solved{
	// I128 : Num (Integer Signed128)
	symbols.NumMaxI128: alias("I128", apply("Num", apply("Integer", apply("Signed128")))),
	// Int * : Num (Integer *)
	symbols.NumMaxInt: alias("Int", apply("Num", apply("Integer", flex(1)))),
	symbols.NumMinInt: alias("Int", apply("Num", apply("Integer", flex(1)))),
}

// Lookup returns the pre-solved signature of sym.
func Lookup(sym symbols.Symbol) (types.Solved, bool) {
	s, ok := table[sym]
	return s, ok
}

// Signature instantiates the signature of sym into store.
func Signature(sym symbols.Symbol, store *types.VarStore) (*types.Type, []types.Variable, error) {
	solved, ok := table[sym]
	if !ok {
		return nil, nil, fmt.Errorf("no pre-solved signature for %s", sym)
	}
	fv := &types.FreeVars{}
	ty, err := types.Instantiate(solved, fv, store)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", sym, err)
	}
	return ty, fv.Introduced(), nil
}

// Symbols lists the builtins with a pre-solved signature.
func Symbols() []symbols.Symbol {
	out := make([]symbols.Symbol, 0, len(table))
	for _, s := range symbols.Builtins() {
		if _, ok := table[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
