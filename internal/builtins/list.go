package builtins

import (
	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

var listDefs = map[symbols.Symbol]entry{
	symbols.ListLen:           {lowlevel1(lowlevel.ListLen), ShapePassthrough},
	symbols.ListGet:           {listGet, ShapeBounds},
	symbols.ListSet:           {listSet, ShapeDerived},
	symbols.ListAppend:        {typed(lowlevel.ListAppend, "le>l"), ShapePassthrough},
	symbols.ListFirst:         {listFirst, ShapeBounds},
	symbols.ListLast:          {listLast, ShapeBounds},
	symbols.ListIsEmpty:       {listIsEmpty, ShapeDerived},
	symbols.ListSingle:        {lowlevel1(lowlevel.ListSingle), ShapePassthrough},
	symbols.ListRepeat:        {lowlevel2(lowlevel.ListRepeat), ShapePassthrough},
	symbols.ListReverse:       {typed(lowlevel.ListReverse, "l>l"), ShapePassthrough},
	symbols.ListConcat:        {typed(lowlevel.ListConcat, "ll>l"), ShapePassthrough},
	symbols.ListContains:      {lowlevel2(lowlevel.ListContains), ShapePassthrough},
	symbols.ListMin:           {listExtreme(lowlevel.NumLt, symbols.ListMinLt), ShapeGuardedFold},
	symbols.ListMax:           {listExtreme(lowlevel.NumGt, symbols.ListMaxGt), ShapeGuardedFold},
	symbols.ListSum:           {listReduce(0, lowlevel.NumAdd, symbols.ListSumAdd), ShapeFold},
	symbols.ListProduct:       {listReduce(1, lowlevel.NumMul, symbols.ListProductMul), ShapeFold},
	symbols.ListPrepend:       {typed(lowlevel.ListPrepend, "le>l"), ShapePassthrough},
	symbols.ListJoin:          {lowlevel1(lowlevel.ListJoin), ShapePassthrough},
	symbols.ListJoinMap:       {listJoinMap, ShapeFold},
	symbols.ListMap:           {lowlevel2(lowlevel.ListMap), ShapePassthrough},
	symbols.ListMap2:          {lowlevel3(lowlevel.ListMap2), ShapePassthrough},
	symbols.ListMap3:          {lowlevel4(lowlevel.ListMap3), ShapePassthrough},
	symbols.ListMap4:          {lowlevel5(lowlevel.ListMap4), ShapePassthrough},
	symbols.ListTakeFirst:     {typed(lowlevel.ListTakeFirst, "ln>l"), ShapePassthrough},
	symbols.ListTakeLast:      {typed(lowlevel.ListTakeLast, "ln>l"), ShapePassthrough},
	symbols.ListDrop:          {typed(lowlevel.ListDrop, "ln>l"), ShapePassthrough},
	symbols.ListDropAt:        {typed(lowlevel.ListDropAt, "ln>l"), ShapePassthrough},
	symbols.ListDropFirst:     {listDropFirst, ShapeDerived},
	symbols.ListDropLast:      {listDropLast, ShapeDerived},
	symbols.ListSwap:          {typed(lowlevel.ListSwap, "lij>l"), ShapePassthrough},
	symbols.ListMapWithIndex:  {lowlevel2(lowlevel.ListMapWithIndex), ShapePassthrough},
	symbols.ListKeepIf:        {typed(lowlevel.ListKeepIf, "lf>l"), ShapePassthrough},
	symbols.ListKeepOks:       {lowlevel2(lowlevel.ListKeepOks), ShapePassthrough},
	symbols.ListKeepErrs:      {lowlevel2(lowlevel.ListKeepErrs), ShapePassthrough},
	symbols.ListRange:         {lowlevel2(lowlevel.ListRange), ShapePassthrough},
	symbols.ListWalk:          {lowlevel3(lowlevel.ListWalk), ShapePassthrough},
	symbols.ListWalkBackwards: {lowlevel3(lowlevel.ListWalkBackwards), ShapePassthrough},
	symbols.ListWalkUntil:     {lowlevel3(lowlevel.ListWalkUntil), ShapePassthrough},
	symbols.ListSortWith:      {lowlevel2(lowlevel.ListSortWith), ShapePassthrough},
	symbols.ListAny:           {lowlevel2(lowlevel.ListAny), ShapePassthrough},
	symbols.ListFind: {
		flagLookup(lowlevel.ListFindUnsafe, symbols.ListFindResult,
			lowlevel.FieldFindFound, lowlevel.FieldFindValue, "NotFound"),
		ShapeLookup,
	},
}

// listGet:
//
//	\#arg1, #arg2 -> if #arg2 < List.len #arg1 then Ok (getUnsafe #arg1 #arg2) else Err OutOfBounds
func listGet(b *can.Builder, sym symbols.Symbol) *can.Def {
	boolVar := b.Fresh()
	lenVar := b.Fresh()
	listVar := b.Fresh()
	elemVar := b.Fresh()
	retVar := b.Fresh()

	guard := b.LowLevel(lowlevel.NumLt, boolVar, arg(b, lenVar, 2), can.A(lenVar, listLen(b, listVar, lenVar)))
	read := b.LowLevel(lowlevel.ListGetUnsafe, elemVar, arg(b, listVar, 1), arg(b, lenVar, 2))
	body := guarded(b, boolVar, retVar, guard, read, "OutOfBounds")
	return b.Defn(sym, params(b, listVar, lenVar), body, retVar)
}

// listSet returns the list untouched when the index is out of range.
func listSet(b *can.Builder, sym symbols.Symbol) *can.Def {
	boolVar := b.Fresh()
	lenVar := b.Fresh()
	elemVar := b.Fresh()
	listArgVar := b.Fresh()
	listRetVar := b.Fresh()

	guard := b.LowLevel(lowlevel.NumLt, boolVar, arg(b, lenVar, 2), can.A(lenVar, listLen(b, listArgVar, lenVar)))
	update := b.LowLevel(lowlevel.ListSet, listRetVar,
		arg(b, listArgVar, 1), arg(b, lenVar, 2), arg(b, elemVar, 3))
	body := b.If(boolVar, listRetVar, guard, update, b.Var(symbols.Arg1))
	return b.Defn(sym, params(b, listArgVar, lenVar, elemVar), body, listRetVar)
}

// nonEmpty is `0 != List.len #arg1`, typed with the reserved size variables.
func nonEmpty(b *can.Builder, boolVar, listVar types.Variable) *can.Expr {
	return b.LowLevel(lowlevel.NotEq, boolVar,
		can.A(types.VarNat, natLiteral(b, 0)),
		can.A(types.VarNat, listLen(b, listVar, types.VarNat)),
	)
}

func listFirst(b *can.Builder, sym symbols.Symbol) *can.Def {
	boolVar := b.Fresh()
	listVar := b.Fresh()
	elemVar := b.Fresh()
	retVar := b.Fresh()

	read := b.LowLevel(lowlevel.ListGetUnsafe, elemVar,
		arg(b, listVar, 1), can.A(types.VarNat, natLiteral(b, 0)))
	body := guarded(b, boolVar, retVar, nonEmpty(b, boolVar, listVar), read, "ListWasEmpty")
	return b.Defn(sym, params(b, listVar), body, retVar)
}

func listLast(b *can.Builder, sym symbols.Symbol) *can.Def {
	argVar := b.Fresh()
	boolVar := b.Fresh()
	listVar := b.Fresh()
	elemVar := b.Fresh()
	retVar := b.Fresh()

	index := b.LowLevel(lowlevel.NumSubWrap, types.VarNat,
		can.A(argVar, listLen(b, listVar, types.VarNat)),
		can.A(argVar, natLiteral(b, 1)),
	)
	read := b.LowLevel(lowlevel.ListGetUnsafe, elemVar, arg(b, listVar, 1), can.A(types.VarNat, index))
	body := guarded(b, boolVar, retVar, nonEmpty(b, boolVar, listVar), read, "ListWasEmpty")
	return b.Defn(sym, params(b, listVar), body, retVar)
}

// listIsEmpty is `0 == List.len #arg1`.
func listIsEmpty(b *can.Builder, sym symbols.Symbol) *can.Def {
	boolVar := b.Fresh()
	listVar := b.Fresh()

	body := b.LowLevel(lowlevel.Eq, boolVar,
		can.A(types.VarNat, b.Num(types.VarNatural, 0)),
		can.A(types.VarNat, listLen(b, listVar, types.VarNat)),
	)
	return b.Defn(sym, params(b, listVar), body, boolVar)
}

func listDropFirst(b *can.Builder, sym symbols.Symbol) *can.Def {
	listVar := b.Fresh()
	indexVar := b.Fresh()

	body := b.LowLevel(lowlevel.ListDropAt, listVar, arg(b, listVar, 1), can.A(indexVar, natLiteral(b, 0)))
	return b.Defn(sym, params(b, listVar), body, listVar)
}

func listDropLast(b *can.Builder, sym symbols.Symbol) *can.Def {
	listVar := b.Fresh()
	indexVar := b.Fresh()
	argVar := b.Fresh()

	index := b.LowLevel(lowlevel.NumSubWrap, types.VarNat,
		can.A(argVar, listLen(b, listVar, types.VarNat)),
		can.A(argVar, natLiteral(b, 1)),
	)
	body := b.LowLevel(lowlevel.ListDropAt, listVar, arg(b, listVar, 1), can.A(indexVar, index))
	return b.Defn(sym, params(b, listVar), body, listVar)
}

// listReduce folds the list with a binary opcode from a literal seed:
//
//	\#arg1 -> List.walk #arg1 seed (\#arg3, #arg4 -> op #arg3 #arg4)
func listReduce(seed int64, op lowlevel.Op, step symbols.Symbol) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		numVar := b.Fresh()
		listVar := b.Fresh()
		closureVar := b.Fresh()

		stepBody := b.LowLevel(op, numVar, arg(b, numVar, 3), arg(b, numVar, 4))
		stepFn := b.DefnHelp(step, []can.Param{
			b.Param(numVar, symbols.Arg3),
			b.Param(numVar, symbols.Arg4),
		}, stepBody, numVar)

		body := b.LowLevel(lowlevel.ListWalk, numVar,
			arg(b, listVar, 1),
			can.A(numVar, b.Num(b.Fresh(), seed)),
			can.A(closureVar, stepFn),
		)
		return b.Defn(sym, params(b, listVar), body, numVar)
	}
}

// listExtreme seeds a walk with the first element and keeps whichever side
// of cmp wins; empty lists yield Err ListWasEmpty.
func listExtreme(cmp lowlevel.Op, step symbols.Symbol) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		argVar := b.Fresh()
		boolVar := b.Fresh()
		listVar := b.Fresh()
		elemVar := b.Fresh()
		retVar := b.Fresh()
		closureVar := b.Fresh()

		stepBool := b.Fresh()
		keep := b.If(stepBool, elemVar,
			b.LowLevel(cmp, stepBool, arg(b, elemVar, 4), arg(b, elemVar, 3)),
			b.Var(symbols.Arg4),
			b.Var(symbols.Arg3),
		)
		stepFn := b.DefnHelp(step, []can.Param{
			b.Param(elemVar, symbols.Arg3),
			b.Param(elemVar, symbols.Arg4),
		}, keep, elemVar)

		first := b.LowLevel(lowlevel.ListGetUnsafe, elemVar, arg(b, listVar, 1), can.A(argVar, natLiteral(b, 0)))
		walk := b.LowLevel(lowlevel.ListWalk, elemVar,
			arg(b, listVar, 1),
			can.A(elemVar, first),
			can.A(closureVar, stepFn),
		)
		body := guarded(b, boolVar, retVar, nonEmpty(b, boolVar, listVar), walk, "ListWasEmpty")
		return b.Defn(sym, params(b, listVar), body, retVar)
	}
}

// listJoinMap:
//
//	\#arg1, #arg2 -> List.walk #arg1 [] (\#arg3, #arg4 -> List.concat #arg3 (#arg2 #arg4))
//
// The step closure captures the caller's mapper #arg2.
func listJoinMap(b *can.Builder, sym symbols.Symbol) *can.Def {
	beforeVar := b.Fresh()
	listBeforeVar := b.Fresh()
	afterVar := b.Fresh()
	listAfterVar := b.Fresh()
	mapperVar := b.Fresh()
	stepVar := b.Fresh()

	mapped := b.Call(mapperVar, b.Var(symbols.Arg2), listAfterVar, arg(b, beforeVar, 4))
	concat := b.LowLevel(lowlevel.ListConcat, listAfterVar,
		arg(b, listAfterVar, 3),
		can.A(listAfterVar, mapped),
	)
	stepFn := b.Closure(stepVar, listAfterVar, symbols.ListJoinMapConcat,
		[]can.Capture{{Symbol: symbols.Arg2, Var: mapperVar}},
		[]can.Param{b.Param(listAfterVar, symbols.Arg3), b.Param(beforeVar, symbols.Arg4)},
		concat,
	)

	body := b.LowLevel(lowlevel.ListWalk, listAfterVar,
		arg(b, listBeforeVar, 1),
		can.A(listAfterVar, b.List(afterVar)),
		can.A(stepVar, stepFn),
	)
	return b.Defn(sym, params(b, listBeforeVar, mapperVar), body, listAfterVar)
}
