package builtins

import (
	"stdsynth/internal/can"
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

// guarded is `if guard then Ok success else Err reason`.
func guarded(b *can.Builder, boolVar, retVar types.Variable, guard, success *can.Expr, reason string) *can.Expr {
	return b.If(boolVar, retVar, guard, b.Ok(success), b.Err(reason))
}

// checkedArith:
//
//	\#arg1, #arg2 ->
//	    #arg3 = op #arg1 #arg2
//	    if #arg3.b then Err Overflow else Ok #arg3.a
func checkedArith(op lowlevel.Op) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		boolVar := b.Fresh()
		num1 := b.Fresh()
		num2 := b.Fresh()
		num3 := b.Fresh()
		retVar := b.Fresh()
		recordVar := b.Fresh()

		result := b.Var(symbols.Arg3)
		branch := b.If(boolVar, retVar,
			b.Access(recordVar, boolVar, result, lowlevel.FieldCheckedOverflow),
			b.Err("Overflow"),
			b.Ok(b.Access(recordVar, num3, b.Var(symbols.Arg3), lowlevel.FieldCheckedValue)),
		)
		call := b.LowLevel(op, recordVar, arg(b, num1, 1), arg(b, num2, 2))
		body := b.Let(symbols.Arg3, recordVar, call, branch, retVar)
		return b.Defn(sym, params(b, num1, num2), body, retVar)
	}
}

// zeroFn builds the zero literal a divisor is compared against.
type zeroFn func(b *can.Builder) *can.Expr

func zeroFloat(b *can.Builder) *can.Expr { return b.Float(b.Fresh(), b.Fresh(), 0) }
func zeroInt(b *can.Builder) *can.Expr   { return b.Int(b.Fresh(), b.Fresh(), 0) }
func zeroNum(b *can.Builder) *can.Expr   { return b.Num(b.Fresh(), 0) }

// division:
//
//	\#arg1, #arg2 -> if #arg2 != 0 then Ok (op #arg1 #arg2) else Err DivByZero
//
// Kept apart from checkedArith: the guard is a comparison against a literal
// rather than a flag read from a record.
func division(op lowlevel.Op, zero zeroFn) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		numVar := b.Fresh()
		boolVar := b.Fresh()
		retVar := b.Fresh()

		guard := b.LowLevel(lowlevel.NotEq, boolVar, arg(b, numVar, 2), can.A(numVar, zero(b)))
		quotient := b.LowLevel(op, numVar, arg(b, numVar, 1), arg(b, numVar, 2))
		body := guarded(b, boolVar, retVar, guard, quotient, "DivByZero")
		return b.Defn(sym, params(b, numVar, numVar), body, retVar)
	}
}

// domain:
//
//	\#arg1 -> if #arg1 <cmp> 0.0 then Ok (op #arg1) else Err reason
func domain(op, cmp lowlevel.Op, reason string) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		floatVar := b.Fresh()
		boolVar := b.Fresh()
		retVar := b.Fresh()

		guard := b.LowLevel(cmp, boolVar, arg(b, floatVar, 1), can.A(floatVar, zeroFloat(b)))
		body := guarded(b, boolVar, retVar, guard, b.LowLevel(op, floatVar, arg(b, floatVar, 1)), reason)
		return b.Defn(sym, params(b, floatVar), body, retVar)
	}
}

// bytesTo reads a fixed-width integer from a byte list at #arg2:
//
//	if #arg2 + intCast offset < List.len #arg1 then Ok (op #arg1 #arg2) else Err OutOfBounds
//
// offset is the width in bytes minus one.
func bytesTo(op lowlevel.Op, offset int64) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		lenVar := b.Fresh()
		listVar := b.Fresh()
		elemVar := b.Fresh()
		retVar := b.Fresh()
		boolVar := b.Fresh()
		addVar := b.Fresh()
		castVar := b.Fresh()

		last := b.LowLevel(lowlevel.NumAdd, addVar,
			arg(b, addVar, 2),
			can.A(addVar, b.LowLevel(lowlevel.NumIntCast, castVar, can.A(castVar, b.Num(b.Fresh(), offset)))),
		)
		guard := b.LowLevel(lowlevel.NumLt, boolVar,
			can.A(lenVar, last),
			can.A(lenVar, listLen(b, listVar, lenVar)),
		)
		read := b.LowLevel(op, elemVar, arg(b, listVar, 1), arg(b, lenVar, 2))
		body := guarded(b, boolVar, retVar, guard, read, "OutOfBounds")
		return b.Defn(sym, params(b, listVar, lenVar), body, retVar)
	}
}

// decode is the shared tail of the UTF-8 decoders, reading the record bound
// to result:
//
//	if r.c_isOk then Ok r.b_str else Err (BadUtf8 r.d_problem r.a_byteIndex)
func decode(b *can.Builder, result symbols.Symbol, recordVar, boolVar, retVar types.Variable) *can.Expr {
	field := func(name string) *can.Expr {
		return b.AccessFresh(recordVar, b.Var(result), name)
	}
	return b.If(boolVar, retVar,
		field(lowlevel.FieldUtf8IsOk),
		b.Ok(field(lowlevel.FieldUtf8Str)),
		b.Err("BadUtf8", field(lowlevel.FieldUtf8Problem), field(lowlevel.FieldUtf8ByteIndex)),
	)
}

// strFromUtf8:
//
//	\#arg1 -> #arg2 = Str.fromUtf8 #arg1 in <decode #arg2>
func strFromUtf8(b *can.Builder, sym symbols.Symbol) *can.Def {
	bytesVar := b.Fresh()
	boolVar := b.Fresh()
	recordVar := b.Fresh()
	retVar := b.Fresh()

	call := b.LowLevel(lowlevel.StrFromUtf8, recordVar, arg(b, bytesVar, 1))
	body := b.Let(symbols.Arg2, recordVar, call, decode(b, symbols.Arg2, recordVar, boolVar, retVar), retVar)
	return b.Defn(sym, params(b, bytesVar), body, retVar)
}

// strFromUtf8Range checks the requested range before decoding:
//
//	\#arg1, #arg2 ->
//	    if #arg2.start + #arg2.count <= List.len #arg1 then
//	        #arg3 = Str.fromUtf8Range #arg1 #arg2 in <decode #arg3>
//	    else Err OutOfBounds
func strFromUtf8Range(b *can.Builder, sym symbols.Symbol) *can.Def {
	bytesVar := b.Fresh()
	boolVar := b.Fresh()
	argRecordVar := b.Fresh()
	llRecordVar := b.Fresh()
	retVar := b.Fresh()
	boundsBool := b.Fresh()
	boundsVar := b.Fresh()
	addVar := b.Fresh()

	call := b.LowLevel(lowlevel.StrFromUtf8Range, llRecordVar, arg(b, bytesVar, 1), arg(b, argRecordVar, 2))
	decoded := b.Let(symbols.Arg3, llRecordVar, call, decode(b, symbols.Arg3, llRecordVar, boolVar, retVar), retVar)

	end := b.LowLevel(lowlevel.NumAdd, addVar,
		can.A(addVar, b.AccessFresh(argRecordVar, b.Var(symbols.Arg2), lowlevel.FieldRangeStart)),
		can.A(addVar, b.AccessFresh(argRecordVar, b.Var(symbols.Arg2), lowlevel.FieldRangeCount)),
	)
	guard := b.LowLevel(lowlevel.NumLte, boundsBool,
		can.A(boundsVar, end),
		can.A(boundsVar, listLen(b, bytesVar, boundsVar)),
	)
	body := b.If(boundsBool, retVar, guard, decoded, b.Err("OutOfBounds"))
	return b.Defn(sym, params(b, bytesVar, argRecordVar), body, retVar)
}

// flagLookup binds a found/value record and unwraps it:
//
//	\#arg1, #arg2 ->
//	    r = op #arg1 #arg2
//	    if r.<flag> then Ok r.<value> else Err reason
func flagLookup(op lowlevel.Op, result symbols.Symbol, flag, value, reason string) synthFn {
	return func(b *can.Builder, sym symbols.Symbol) *can.Def {
		boolVar := b.Fresh()
		flagVar := b.Fresh()
		collVar := b.Fresh()
		keyVar := b.Fresh()
		valueVar := b.Fresh()
		retVar := b.Fresh()
		recordVar := b.Fresh()

		branch := b.If(boolVar, retVar,
			b.Access(recordVar, flagVar, b.Var(result), flag),
			b.Ok(b.Access(recordVar, valueVar, b.Var(result), value)),
			b.Err(reason),
		)
		call := b.LowLevel(op, recordVar, arg(b, collVar, 1), arg(b, keyVar, 2))
		body := b.Let(result, recordVar, call, branch, retVar)
		return b.Defn(sym, params(b, collVar, keyVar), body, retVar)
	}
}
