package builtins

import (
	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
)

var dictDefs = map[symbols.Symbol]entry{
	symbols.DictLen:    {typed(lowlevel.DictSize, "d>N"), ShapePassthrough},
	symbols.DictEmpty:  {dictEmpty, ShapeConstant},
	symbols.DictSingle: {dictSingle, ShapeDerived},
	symbols.DictInsert: {lowlevel3(lowlevel.DictInsert), ShapePassthrough},
	symbols.DictRemove: {lowlevel2(lowlevel.DictRemove), ShapePassthrough},
	symbols.DictGet: {
		flagLookup(lowlevel.DictGetUnsafe, symbols.DictGetResult,
			lowlevel.FieldDictFlag, lowlevel.FieldDictValue, "KeyNotFound"),
		ShapeLookup,
	},
	symbols.DictContains:     {lowlevel2(lowlevel.DictContains), ShapePassthrough},
	symbols.DictKeys:         {lowlevel1(lowlevel.DictKeys), ShapePassthrough},
	symbols.DictValues:       {lowlevel1(lowlevel.DictValues), ShapePassthrough},
	symbols.DictUnion:        {lowlevel2(lowlevel.DictUnion), ShapePassthrough},
	symbols.DictIntersection: {lowlevel2(lowlevel.DictIntersection), ShapePassthrough},
	symbols.DictDifference:   {lowlevel2(lowlevel.DictDifference), ShapePassthrough},
	symbols.DictWalk:         {lowlevel3(lowlevel.DictWalk), ShapePassthrough},
}

// dictEmpty is the constant `Dict.empty`; Set.empty shares it.
func dictEmpty(b *can.Builder, sym symbols.Symbol) *can.Def {
	dictVar := b.Fresh()
	return b.Constant(sym, dictVar, b.LowLevel(lowlevel.DictEmpty, dictVar), nil)
}

// dictSingle is `\#arg1, #arg2 -> Dict.insert Dict.empty #arg1 #arg2`.
func dictSingle(b *can.Builder, sym symbols.Symbol) *can.Def {
	keyVar := b.Fresh()
	valueVar := b.Fresh()
	dictVar := b.Fresh()

	body := b.LowLevel(lowlevel.DictInsert, dictVar,
		can.A(dictVar, b.LowLevel(lowlevel.DictEmpty, dictVar)),
		arg(b, keyVar, 1),
		arg(b, valueVar, 2),
	)
	return b.Defn(sym, params(b, keyVar, valueVar), body, dictVar)
}
