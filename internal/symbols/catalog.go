package symbols

// Builtins in dispatch order, then the compiler-internal identities bound
// inside synthesized bodies. The order is what `stdsynth list` prints and
// what snapshots are keyed by; append, don't reorder.
const (
	NoSymbol Symbol = iota

	// Bool
	BoolIsEq
	BoolIsNotEq
	BoolAnd
	BoolOr
	BoolNot

	// Str
	StrConcat
	StrJoinWith
	StrSplit
	StrIsEmpty
	StrStartsWith
	StrStartsWithCodePt
	StrEndsWith
	StrCountGraphemes
	StrFromInt
	StrFromUtf8
	StrFromUtf8Range
	StrToUtf8
	StrFromFloat
	StrRepeat
	StrTrim

	// List
	ListLen
	ListGet
	ListSet
	ListAppend
	ListFirst
	ListLast
	ListIsEmpty
	ListSingle
	ListRepeat
	ListReverse
	ListConcat
	ListContains
	ListMin
	ListMax
	ListSum
	ListProduct
	ListPrepend
	ListJoin
	ListJoinMap
	ListMap
	ListMap2
	ListMap3
	ListMap4
	ListTakeFirst
	ListTakeLast
	ListDrop
	ListDropAt
	ListDropFirst
	ListDropLast
	ListSwap
	ListMapWithIndex
	ListKeepIf
	ListKeepOks
	ListKeepErrs
	ListRange
	ListWalk
	ListWalkBackwards
	ListWalkUntil
	ListSortWith
	ListAny
	ListFind

	// Dict
	DictLen
	DictEmpty
	DictSingle
	DictInsert
	DictRemove
	DictGet
	DictContains
	DictKeys
	DictValues
	DictUnion
	DictIntersection
	DictDifference
	DictWalk

	// Set
	SetEmpty
	SetLen
	SetSingle
	SetUnion
	SetIntersection
	SetDifference
	SetToList
	SetFromList
	SetInsert
	SetRemove
	SetContains
	SetWalk

	// Num
	NumAdd
	NumAddChecked
	NumAddWrap
	NumSub
	NumSubWrap
	NumSubChecked
	NumMul
	NumMulWrap
	NumMulChecked
	NumIsGt
	NumIsGte
	NumIsLt
	NumIsLte
	NumCompare
	NumSin
	NumCos
	NumTan
	NumDiv
	NumDivFloor
	NumDivCeil
	NumAbs
	NumNeg
	NumRem
	NumIsMultipleOf
	NumSqrt
	NumLog
	NumRound
	NumIsOdd
	NumIsEven
	NumIsZero
	NumIsPositive
	NumIsNegative
	NumToFloat
	NumPow
	NumCeiling
	NumPowInt
	NumFloor
	NumAtan
	NumAcos
	NumAsin
	NumBytesToU16
	NumBytesToU32
	NumMaxInt
	NumMinInt
	NumBitwiseAnd
	NumBitwiseXor
	NumBitwiseOr
	NumShiftLeftBy
	NumShiftRightBy
	NumShiftRightZfBy
	NumIntCast
	NumMaxI128

	// Result
	ResultMap
	ResultMapErr
	ResultAfter
	ResultWithDefault

	// Internal helper identities. They are bound inside synthesized bodies and
	// never exported as builtins.
	Arg1
	Arg2
	Arg3
	Arg4
	Arg5
	Arg6
	ListSumAdd
	ListProductMul
	ListMinLt
	ListMaxGt
	ListJoinMapConcat
	SetWalkUserFunction
	ListFindResult
	DictGetResult

	staticEnd
)

var catalog = [staticEnd]entry{
	BoolIsEq:    {ns: NsBool, name: "isEq", flags: FlagBuiltin},
	BoolIsNotEq: {ns: NsBool, name: "isNotEq", flags: FlagBuiltin},
	BoolAnd:     {ns: NsBool, name: "and", flags: FlagBuiltin},
	BoolOr:      {ns: NsBool, name: "or", flags: FlagBuiltin},
	BoolNot:     {ns: NsBool, name: "not", flags: FlagBuiltin},

	StrConcat:           {ns: NsStr, name: "concat", flags: FlagBuiltin},
	StrJoinWith:         {ns: NsStr, name: "joinWith", flags: FlagBuiltin},
	StrSplit:            {ns: NsStr, name: "split", flags: FlagBuiltin},
	StrIsEmpty:          {ns: NsStr, name: "isEmpty", flags: FlagBuiltin},
	StrStartsWith:       {ns: NsStr, name: "startsWith", flags: FlagBuiltin},
	StrStartsWithCodePt: {ns: NsStr, name: "startsWithCodePt", flags: FlagBuiltin},
	StrEndsWith:         {ns: NsStr, name: "endsWith", flags: FlagBuiltin},
	StrCountGraphemes:   {ns: NsStr, name: "countGraphemes", flags: FlagBuiltin},
	StrFromInt:          {ns: NsStr, name: "fromInt", flags: FlagBuiltin},
	StrFromUtf8:         {ns: NsStr, name: "fromUtf8", flags: FlagBuiltin},
	StrFromUtf8Range:    {ns: NsStr, name: "fromUtf8Range", flags: FlagBuiltin},
	StrToUtf8:           {ns: NsStr, name: "toUtf8", flags: FlagBuiltin},
	StrFromFloat:        {ns: NsStr, name: "fromFloat", flags: FlagBuiltin},
	StrRepeat:           {ns: NsStr, name: "repeat", flags: FlagBuiltin},
	StrTrim:             {ns: NsStr, name: "trim", flags: FlagBuiltin},

	ListLen:           {ns: NsList, name: "len", flags: FlagBuiltin},
	ListGet:           {ns: NsList, name: "get", flags: FlagBuiltin},
	ListSet:           {ns: NsList, name: "set", flags: FlagBuiltin},
	ListAppend:        {ns: NsList, name: "append", flags: FlagBuiltin},
	ListFirst:         {ns: NsList, name: "first", flags: FlagBuiltin},
	ListLast:          {ns: NsList, name: "last", flags: FlagBuiltin},
	ListIsEmpty:       {ns: NsList, name: "isEmpty", flags: FlagBuiltin},
	ListSingle:        {ns: NsList, name: "single", flags: FlagBuiltin},
	ListRepeat:        {ns: NsList, name: "repeat", flags: FlagBuiltin},
	ListReverse:       {ns: NsList, name: "reverse", flags: FlagBuiltin},
	ListConcat:        {ns: NsList, name: "concat", flags: FlagBuiltin},
	ListContains:      {ns: NsList, name: "contains", flags: FlagBuiltin},
	ListMin:           {ns: NsList, name: "min", flags: FlagBuiltin},
	ListMax:           {ns: NsList, name: "max", flags: FlagBuiltin},
	ListSum:           {ns: NsList, name: "sum", flags: FlagBuiltin},
	ListProduct:       {ns: NsList, name: "product", flags: FlagBuiltin},
	ListPrepend:       {ns: NsList, name: "prepend", flags: FlagBuiltin},
	ListJoin:          {ns: NsList, name: "join", flags: FlagBuiltin},
	ListJoinMap:       {ns: NsList, name: "joinMap", flags: FlagBuiltin},
	ListMap:           {ns: NsList, name: "map", flags: FlagBuiltin},
	ListMap2:          {ns: NsList, name: "map2", flags: FlagBuiltin},
	ListMap3:          {ns: NsList, name: "map3", flags: FlagBuiltin},
	ListMap4:          {ns: NsList, name: "map4", flags: FlagBuiltin},
	ListTakeFirst:     {ns: NsList, name: "takeFirst", flags: FlagBuiltin},
	ListTakeLast:      {ns: NsList, name: "takeLast", flags: FlagBuiltin},
	ListDrop:          {ns: NsList, name: "drop", flags: FlagBuiltin},
	ListDropAt:        {ns: NsList, name: "dropAt", flags: FlagBuiltin},
	ListDropFirst:     {ns: NsList, name: "dropFirst", flags: FlagBuiltin},
	ListDropLast:      {ns: NsList, name: "dropLast", flags: FlagBuiltin},
	ListSwap:          {ns: NsList, name: "swap", flags: FlagBuiltin},
	ListMapWithIndex:  {ns: NsList, name: "mapWithIndex", flags: FlagBuiltin},
	ListKeepIf:        {ns: NsList, name: "keepIf", flags: FlagBuiltin},
	ListKeepOks:       {ns: NsList, name: "keepOks", flags: FlagBuiltin},
	ListKeepErrs:      {ns: NsList, name: "keepErrs", flags: FlagBuiltin},
	ListRange:         {ns: NsList, name: "range", flags: FlagBuiltin},
	ListWalk:          {ns: NsList, name: "walk", flags: FlagBuiltin},
	ListWalkBackwards: {ns: NsList, name: "walkBackwards", flags: FlagBuiltin},
	ListWalkUntil:     {ns: NsList, name: "walkUntil", flags: FlagBuiltin},
	ListSortWith:      {ns: NsList, name: "sortWith", flags: FlagBuiltin},
	ListAny:           {ns: NsList, name: "any", flags: FlagBuiltin},
	ListFind:          {ns: NsList, name: "find", flags: FlagBuiltin},

	DictLen:          {ns: NsDict, name: "len", flags: FlagBuiltin},
	DictEmpty:        {ns: NsDict, name: "empty", flags: FlagBuiltin},
	DictSingle:       {ns: NsDict, name: "single", flags: FlagBuiltin},
	DictInsert:       {ns: NsDict, name: "insert", flags: FlagBuiltin},
	DictRemove:       {ns: NsDict, name: "remove", flags: FlagBuiltin},
	DictGet:          {ns: NsDict, name: "get", flags: FlagBuiltin},
	DictContains:     {ns: NsDict, name: "contains", flags: FlagBuiltin},
	DictKeys:         {ns: NsDict, name: "keys", flags: FlagBuiltin},
	DictValues:       {ns: NsDict, name: "values", flags: FlagBuiltin},
	DictUnion:        {ns: NsDict, name: "union", flags: FlagBuiltin},
	DictIntersection: {ns: NsDict, name: "intersection", flags: FlagBuiltin},
	DictDifference:   {ns: NsDict, name: "difference", flags: FlagBuiltin},
	DictWalk:         {ns: NsDict, name: "walk", flags: FlagBuiltin},

	SetEmpty:        {ns: NsSet, name: "empty", flags: FlagBuiltin},
	SetLen:          {ns: NsSet, name: "len", flags: FlagBuiltin},
	SetSingle:       {ns: NsSet, name: "single", flags: FlagBuiltin},
	SetUnion:        {ns: NsSet, name: "union", flags: FlagBuiltin},
	SetIntersection: {ns: NsSet, name: "intersection", flags: FlagBuiltin},
	SetDifference:   {ns: NsSet, name: "difference", flags: FlagBuiltin},
	SetToList:       {ns: NsSet, name: "toList", flags: FlagBuiltin},
	SetFromList:     {ns: NsSet, name: "fromList", flags: FlagBuiltin},
	SetInsert:       {ns: NsSet, name: "insert", flags: FlagBuiltin},
	SetRemove:       {ns: NsSet, name: "remove", flags: FlagBuiltin},
	SetContains:     {ns: NsSet, name: "contains", flags: FlagBuiltin},
	SetWalk:         {ns: NsSet, name: "walk", flags: FlagBuiltin},

	NumAdd:            {ns: NsNum, name: "add", flags: FlagBuiltin},
	NumAddChecked:     {ns: NsNum, name: "addChecked", flags: FlagBuiltin},
	NumAddWrap:        {ns: NsNum, name: "addWrap", flags: FlagBuiltin},
	NumSub:            {ns: NsNum, name: "sub", flags: FlagBuiltin},
	NumSubWrap:        {ns: NsNum, name: "subWrap", flags: FlagBuiltin},
	NumSubChecked:     {ns: NsNum, name: "subChecked", flags: FlagBuiltin},
	NumMul:            {ns: NsNum, name: "mul", flags: FlagBuiltin},
	NumMulWrap:        {ns: NsNum, name: "mulWrap", flags: FlagBuiltin},
	NumMulChecked:     {ns: NsNum, name: "mulChecked", flags: FlagBuiltin},
	NumIsGt:           {ns: NsNum, name: "isGt", flags: FlagBuiltin},
	NumIsGte:          {ns: NsNum, name: "isGte", flags: FlagBuiltin},
	NumIsLt:           {ns: NsNum, name: "isLt", flags: FlagBuiltin},
	NumIsLte:          {ns: NsNum, name: "isLte", flags: FlagBuiltin},
	NumCompare:        {ns: NsNum, name: "compare", flags: FlagBuiltin},
	NumSin:            {ns: NsNum, name: "sin", flags: FlagBuiltin},
	NumCos:            {ns: NsNum, name: "cos", flags: FlagBuiltin},
	NumTan:            {ns: NsNum, name: "tan", flags: FlagBuiltin},
	NumDiv:            {ns: NsNum, name: "div", flags: FlagBuiltin},
	NumDivFloor:       {ns: NsNum, name: "divFloor", flags: FlagBuiltin},
	NumDivCeil:        {ns: NsNum, name: "divCeil", flags: FlagBuiltin},
	NumAbs:            {ns: NsNum, name: "abs", flags: FlagBuiltin},
	NumNeg:            {ns: NsNum, name: "neg", flags: FlagBuiltin},
	NumRem:            {ns: NsNum, name: "rem", flags: FlagBuiltin},
	NumIsMultipleOf:   {ns: NsNum, name: "isMultipleOf", flags: FlagBuiltin},
	NumSqrt:           {ns: NsNum, name: "sqrt", flags: FlagBuiltin},
	NumLog:            {ns: NsNum, name: "log", flags: FlagBuiltin},
	NumRound:          {ns: NsNum, name: "round", flags: FlagBuiltin},
	NumIsOdd:          {ns: NsNum, name: "isOdd", flags: FlagBuiltin},
	NumIsEven:         {ns: NsNum, name: "isEven", flags: FlagBuiltin},
	NumIsZero:         {ns: NsNum, name: "isZero", flags: FlagBuiltin},
	NumIsPositive:     {ns: NsNum, name: "isPositive", flags: FlagBuiltin},
	NumIsNegative:     {ns: NsNum, name: "isNegative", flags: FlagBuiltin},
	NumToFloat:        {ns: NsNum, name: "toFloat", flags: FlagBuiltin},
	NumPow:            {ns: NsNum, name: "pow", flags: FlagBuiltin},
	NumCeiling:        {ns: NsNum, name: "ceiling", flags: FlagBuiltin},
	NumPowInt:         {ns: NsNum, name: "powInt", flags: FlagBuiltin},
	NumFloor:          {ns: NsNum, name: "floor", flags: FlagBuiltin},
	NumAtan:           {ns: NsNum, name: "atan", flags: FlagBuiltin},
	NumAcos:           {ns: NsNum, name: "acos", flags: FlagBuiltin},
	NumAsin:           {ns: NsNum, name: "asin", flags: FlagBuiltin},
	NumBytesToU16:     {ns: NsNum, name: "bytesToU16", flags: FlagBuiltin},
	NumBytesToU32:     {ns: NsNum, name: "bytesToU32", flags: FlagBuiltin},
	NumMaxInt:         {ns: NsNum, name: "maxInt", flags: FlagBuiltin},
	NumMinInt:         {ns: NsNum, name: "minInt", flags: FlagBuiltin},
	NumBitwiseAnd:     {ns: NsNum, name: "bitwiseAnd", flags: FlagBuiltin},
	NumBitwiseXor:     {ns: NsNum, name: "bitwiseXor", flags: FlagBuiltin},
	NumBitwiseOr:      {ns: NsNum, name: "bitwiseOr", flags: FlagBuiltin},
	NumShiftLeftBy:    {ns: NsNum, name: "shiftLeftBy", flags: FlagBuiltin},
	NumShiftRightBy:   {ns: NsNum, name: "shiftRightBy", flags: FlagBuiltin},
	NumShiftRightZfBy: {ns: NsNum, name: "shiftRightZfBy", flags: FlagBuiltin},
	NumIntCast:        {ns: NsNum, name: "intCast", flags: FlagBuiltin},
	NumMaxI128:        {ns: NsNum, name: "maxI128", flags: FlagBuiltin},

	ResultMap:         {ns: NsResult, name: "map", flags: FlagBuiltin},
	ResultMapErr:      {ns: NsResult, name: "mapErr", flags: FlagBuiltin},
	ResultAfter:       {ns: NsResult, name: "after", flags: FlagBuiltin},
	ResultWithDefault: {ns: NsResult, name: "withDefault", flags: FlagBuiltin},

	Arg1:                {ns: NsInternal, name: "#arg1", flags: FlagInternal},
	Arg2:                {ns: NsInternal, name: "#arg2", flags: FlagInternal},
	Arg3:                {ns: NsInternal, name: "#arg3", flags: FlagInternal},
	Arg4:                {ns: NsInternal, name: "#arg4", flags: FlagInternal},
	Arg5:                {ns: NsInternal, name: "#arg5", flags: FlagInternal},
	Arg6:                {ns: NsInternal, name: "#arg6", flags: FlagInternal},
	ListSumAdd:          {ns: NsInternal, name: "#sumAdd", flags: FlagInternal},
	ListProductMul:      {ns: NsInternal, name: "#productMul", flags: FlagInternal},
	ListMinLt:           {ns: NsInternal, name: "#minLt", flags: FlagInternal},
	ListMaxGt:           {ns: NsInternal, name: "#maxGt", flags: FlagInternal},
	ListJoinMapConcat:   {ns: NsInternal, name: "#joinMapConcat", flags: FlagInternal},
	SetWalkUserFunction: {ns: NsInternal, name: "#setWalkUserFunction", flags: FlagInternal},
	ListFindResult:      {ns: NsInternal, name: "#findResult", flags: FlagInternal},
	DictGetResult:       {ns: NsInternal, name: "#getResult", flags: FlagInternal},
}
