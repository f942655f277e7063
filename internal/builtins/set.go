package builtins

import (
	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// Sets are dictionaries whose values are the empty record.
var setDefs = map[symbols.Symbol]entry{
	symbols.SetEmpty:        {dictEmpty, ShapeConstant},
	symbols.SetLen:          {lowlevel1(lowlevel.DictSize), ShapePassthrough},
	symbols.SetSingle:       {setSingle, ShapeDerived},
	symbols.SetUnion:        {lowlevel2(lowlevel.DictUnion), ShapePassthrough},
	symbols.SetIntersection: {lowlevel2(lowlevel.DictIntersection), ShapePassthrough},
	symbols.SetDifference:   {lowlevel2(lowlevel.DictDifference), ShapePassthrough},
	symbols.SetToList:       {lowlevel1(lowlevel.DictKeys), ShapePassthrough},
	symbols.SetFromList:     {lowlevel1(lowlevel.SetFromList), ShapePassthrough},
	symbols.SetInsert:       {setInsert, ShapeDerived},
	symbols.SetRemove:       {lowlevel2(lowlevel.DictRemove), ShapePassthrough},
	symbols.SetContains:     {lowlevel2(lowlevel.DictContains), ShapePassthrough},
	symbols.SetWalk:         {setWalk, ShapeFold},
}

func unit(b *can.Builder) can.Arg {
	return can.A(types.VarEmptyRecord, b.EmptyRecord())
}

// setSingle is `\#arg1 -> Dict.insert Dict.empty #arg1 {}`.
func setSingle(b *can.Builder, sym symbols.Symbol) *can.Def {
	keyVar := b.Fresh()
	setVar := b.Fresh()

	body := b.LowLevel(lowlevel.DictInsert, setVar,
		can.A(setVar, b.LowLevel(lowlevel.DictEmpty, setVar)),
		arg(b, keyVar, 1),
		unit(b),
	)
	return b.Defn(sym, params(b, keyVar), body, setVar)
}

// setInsert is `\#arg1, #arg2 -> Dict.insert #arg1 #arg2 {}`.
func setInsert(b *can.Builder, sym symbols.Symbol) *can.Def {
	dictVar := b.Fresh()
	keyVar := b.Fresh()

	body := b.LowLevel(lowlevel.DictInsert, dictVar, arg(b, dictVar, 1), arg(b, keyVar, 2), unit(b))
	return b.Defn(sym, params(b, dictVar, keyVar), body, dictVar)
}

// setWalk adapts the caller's (state, key) function to Dict.walk's
// (state, key, value) step by dropping the empty-record value:
//
//	\#arg1, #arg2, #arg3 -> Dict.walk #arg1 #arg2 (\#arg5, #arg6, _ -> #arg3 #arg5 #arg6)
func setWalk(b *can.Builder, sym symbols.Symbol) *can.Def {
	dictVar := b.Fresh()
	funcVar := b.Fresh()
	keyVar := b.Fresh()
	accumVar := b.Fresh()
	wrapperVar := b.Fresh()

	call := b.Call(funcVar, b.Var(symbols.Arg3), accumVar, arg(b, accumVar, 5), arg(b, keyVar, 6))
	wrapper := b.Closure(wrapperVar, accumVar, symbols.SetWalkUserFunction,
		[]can.Capture{{Symbol: symbols.Arg3, Var: funcVar}},
		[]can.Param{
			b.Param(accumVar, symbols.Arg5),
			b.Param(keyVar, symbols.Arg6),
			{Var: types.VarEmptyRecord, Pattern: b.PUnderscore()},
		},
		call,
	)
	body := b.LowLevel(lowlevel.DictWalk, accumVar,
		arg(b, dictVar, 1),
		arg(b, accumVar, 2),
		can.A(wrapperVar, wrapper),
	)
	return b.Defn(sym, params(b, dictVar, accumVar, funcVar), body, accumVar)
}
