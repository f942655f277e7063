package builtins

import (
	"fmt"
	"math"
	"math/big"

	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/stdtypes"
	"stdsynth/internal/symbols"
)

var numDefs = map[symbols.Symbol]entry{
	symbols.NumAdd:            {typed(lowlevel.NumAdd, "nn>n"), ShapePassthrough},
	symbols.NumAddChecked:     {checkedArith(lowlevel.NumAddChecked), ShapeOverflow},
	symbols.NumAddWrap:        {typed(lowlevel.NumAddWrap, "nn>n"), ShapePassthrough},
	symbols.NumSub:            {typed(lowlevel.NumSub, "nn>n"), ShapePassthrough},
	symbols.NumSubWrap:        {typed(lowlevel.NumSubWrap, "nn>n"), ShapePassthrough},
	symbols.NumSubChecked:     {checkedArith(lowlevel.NumSubChecked), ShapeOverflow},
	symbols.NumMul:            {typed(lowlevel.NumMul, "nn>n"), ShapePassthrough},
	symbols.NumMulWrap:        {typed(lowlevel.NumMulWrap, "nn>n"), ShapePassthrough},
	symbols.NumMulChecked:     {checkedArith(lowlevel.NumMulChecked), ShapeOverflow},
	symbols.NumIsGt:           {typed(lowlevel.NumGt, "nn>b"), ShapePassthrough},
	symbols.NumIsGte:          {typed(lowlevel.NumGte, "nn>b"), ShapePassthrough},
	symbols.NumIsLt:           {typed(lowlevel.NumLt, "nn>b"), ShapePassthrough},
	symbols.NumIsLte:          {typed(lowlevel.NumLte, "nn>b"), ShapePassthrough},
	symbols.NumCompare:        {typed(lowlevel.NumCompare, "nn>o"), ShapePassthrough},
	symbols.NumSin:            {typed(lowlevel.NumSin, "f>f"), ShapePassthrough},
	symbols.NumCos:            {typed(lowlevel.NumCos, "f>f"), ShapePassthrough},
	symbols.NumTan:            {numTan, ShapeDerived},
	symbols.NumDiv:            {division(lowlevel.NumDivUnchecked, zeroFloat), ShapeDivision},
	symbols.NumDivFloor:       {division(lowlevel.NumDivUnchecked, zeroInt), ShapeDivision},
	symbols.NumDivCeil:        {division(lowlevel.NumDivCeilUnchecked, zeroInt), ShapeDivision},
	symbols.NumAbs:            {typed(lowlevel.NumAbs, "n>n"), ShapePassthrough},
	symbols.NumNeg:            {typed(lowlevel.NumNeg, "n>n"), ShapePassthrough},
	symbols.NumRem:            {division(lowlevel.NumRemUnchecked, zeroNum), ShapeDivision},
	symbols.NumIsMultipleOf:   {lowlevel2(lowlevel.NumIsMultipleOf), ShapePassthrough},
	symbols.NumSqrt:           {domain(lowlevel.NumSqrtUnchecked, lowlevel.NumGte, "SqrtOfNegative"), ShapeDomain},
	symbols.NumLog:            {domain(lowlevel.NumLogUnchecked, lowlevel.NumGt, "LogNeedsPositive"), ShapeDomain},
	symbols.NumRound:          {lowlevel1(lowlevel.NumRound), ShapePassthrough},
	symbols.NumIsOdd:          {numIsOdd, ShapeDerived},
	symbols.NumIsEven:         {numIsEven, ShapeDerived},
	symbols.NumIsZero:         {numIsZero, ShapeDerived},
	symbols.NumIsPositive:     {numIsPositive, ShapeDerived},
	symbols.NumIsNegative:     {numIsNegative, ShapeDerived},
	symbols.NumToFloat:        {lowlevel1(lowlevel.NumToFloat), ShapePassthrough},
	symbols.NumPow:            {typed(lowlevel.NumPow, "ff>f"), ShapePassthrough},
	symbols.NumCeiling:        {lowlevel1(lowlevel.NumCeiling), ShapePassthrough},
	symbols.NumPowInt:         {typed(lowlevel.NumPowInt, "ii>i"), ShapePassthrough},
	symbols.NumFloor:          {lowlevel1(lowlevel.NumFloor), ShapePassthrough},
	symbols.NumAtan:           {lowlevel1(lowlevel.NumAtan), ShapePassthrough},
	symbols.NumAcos:           {lowlevel1(lowlevel.NumAcos), ShapePassthrough},
	symbols.NumAsin:           {lowlevel1(lowlevel.NumAsin), ShapePassthrough},
	symbols.NumBytesToU16:     {bytesTo(lowlevel.NumBytesToU16, 1), ShapeBounds},
	symbols.NumBytesToU32:     {bytesTo(lowlevel.NumBytesToU32, 3), ShapeBounds},
	symbols.NumMaxInt:         {intConstant(math.MaxInt64), ShapeConstant},
	symbols.NumMinInt:         {intConstant(math.MinInt64), ShapeConstant},
	symbols.NumBitwiseAnd:     {typed(lowlevel.NumBitwiseAnd, "nn>n"), ShapePassthrough},
	symbols.NumBitwiseXor:     {typed(lowlevel.NumBitwiseXor, "nn>n"), ShapePassthrough},
	symbols.NumBitwiseOr:      {typed(lowlevel.NumBitwiseOr, "nn>n"), ShapePassthrough},
	symbols.NumShiftLeftBy:    {lowlevel2(lowlevel.NumShiftLeftBy), ShapePassthrough},
	symbols.NumShiftRightBy:   {lowlevel2(lowlevel.NumShiftRightBy), ShapePassthrough},
	symbols.NumShiftRightZfBy: {lowlevel2(lowlevel.NumShiftRightZfBy), ShapePassthrough},
	symbols.NumIntCast:        {lowlevel1(lowlevel.NumIntCast), ShapePassthrough},
	symbols.NumMaxI128:        {numMaxI128, ShapeConstant},
}

// numTan is sin x / cos x.
func numTan(b *can.Builder, sym symbols.Symbol) *can.Def {
	floatVar := b.Fresh()
	body := b.LowLevel(lowlevel.NumDivUnchecked, floatVar,
		can.A(floatVar, b.LowLevel(lowlevel.NumSin, floatVar, arg(b, floatVar, 1))),
		can.A(floatVar, b.LowLevel(lowlevel.NumCos, floatVar, arg(b, floatVar, 1))),
	)
	return b.Defn(sym, params(b, floatVar), body, floatVar)
}

func numIsZero(b *can.Builder, sym symbols.Symbol) *can.Def {
	argVar := b.Fresh()
	boolVar := b.Fresh()
	body := b.LowLevel(lowlevel.Eq, boolVar, arg(b, argVar, 1), can.A(argVar, b.Num(b.Fresh(), 0)))
	return b.Defn(sym, params(b, argVar), body, boolVar)
}

// numIsNegative is 0 > x.
func numIsNegative(b *can.Builder, sym symbols.Symbol) *can.Def {
	argVar := b.Fresh()
	boolVar := b.Fresh()
	body := b.LowLevel(lowlevel.NumGt, boolVar, can.A(argVar, b.Num(b.Fresh(), 0)), arg(b, argVar, 1))
	return b.Defn(sym, params(b, argVar), body, boolVar)
}

func numIsPositive(b *can.Builder, sym symbols.Symbol) *can.Def {
	argVar := b.Fresh()
	boolVar := b.Fresh()
	body := b.LowLevel(lowlevel.NumGt, boolVar, arg(b, argVar, 1), can.A(argVar, b.Num(b.Fresh(), 0)))
	return b.Defn(sym, params(b, argVar), body, boolVar)
}

// numIsOdd is 1 == x % 2.
func numIsOdd(b *can.Builder, sym symbols.Symbol) *can.Def {
	argVar := b.Fresh()
	boolVar := b.Fresh()
	one := b.Int(b.Fresh(), b.Fresh(), 1)
	rem := b.LowLevel(lowlevel.NumRemUnchecked, argVar, arg(b, argVar, 1), can.A(argVar, b.Num(b.Fresh(), 2)))
	body := b.LowLevel(lowlevel.Eq, boolVar, can.A(argVar, one), can.A(argVar, rem))
	return b.Defn(sym, params(b, argVar), body, boolVar)
}

// numIsEven is 0 == x % 2.
func numIsEven(b *can.Builder, sym symbols.Symbol) *can.Def {
	argVar := b.Fresh()
	boolVar := b.Fresh()
	zero := b.Num(b.Fresh(), 0)
	rem := b.LowLevel(lowlevel.NumRemUnchecked, argVar, arg(b, argVar, 1), can.A(argVar, b.Num(b.Fresh(), 2)))
	body := b.LowLevel(lowlevel.Eq, boolVar, can.A(argVar, zero), can.A(argVar, rem))
	return b.Defn(sym, params(b, argVar), body, boolVar)
}

func intConstant(n int64) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		intVar := b.Fresh()
		precision := b.Fresh()
		return b.Constant(sym, intVar, b.Int(intVar, precision, n), nil)
	}
}

// maxI128 is 2^127 - 1.
var maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// numMaxI128 pins the literal's width with the pre-solved I128 signature,
// since nothing in the body would otherwise fix it.
func numMaxI128(b *can.Builder, sym symbols.Symbol) *can.Def {
	intVar := b.Fresh()
	precision := b.Fresh()
	sig, introduced, err := stdtypes.Signature(sym, b.Store())
	if err != nil {
		panic(fmt.Errorf("builtins: %w", err))
	}
	ann := &can.Annotation{Signature: sig, Introduced: introduced}
	return b.Constant(sym, intVar, b.IntBig(intVar, precision, maxI128), ann)
}
