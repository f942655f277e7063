package lowlevel

// Op is a primitive operation with fixed code-generation support. Everything
// else a builtin does is expressed around these in canonical form.
type Op uint8

const (
	OpInvalid Op = iota
	Eq
	NotEq
	And
	Or
	Not
	NumAdd
	NumAddWrap
	NumAddChecked
	NumSub
	NumSubWrap
	NumSubChecked
	NumMul
	NumMulWrap
	NumMulChecked
	NumGt
	NumGte
	NumLt
	NumLte
	NumCompare
	NumSin
	NumCos
	NumAtan
	NumAcos
	NumAsin
	NumDivUnchecked
	NumDivCeilUnchecked
	NumRemUnchecked
	NumIsMultipleOf
	NumAbs
	NumNeg
	NumSqrtUnchecked
	NumLogUnchecked
	NumRound
	NumToFloat
	NumPow
	NumCeiling
	NumPowInt
	NumFloor
	NumBytesToU16
	NumBytesToU32
	NumBitwiseAnd
	NumBitwiseXor
	NumBitwiseOr
	NumShiftLeftBy
	NumShiftRightBy
	NumShiftRightZfBy
	NumIntCast
	StrConcat
	StrJoinWith
	StrIsEmpty
	StrStartsWith
	StrStartsWithCodePt
	StrEndsWith
	StrSplit
	StrCountGraphemes
	StrFromInt
	StrFromUtf8
	StrFromUtf8Range
	StrToUtf8
	StrRepeat
	StrFromFloat
	StrTrim
	ListLen
	ListGetUnsafe
	ListSet
	ListSingle
	ListRepeat
	ListReverse
	ListConcat
	ListContains
	ListAppend
	ListPrepend
	ListJoin
	ListMap
	ListMap2
	ListMap3
	ListMap4
	ListMapWithIndex
	ListKeepIf
	ListWalk
	ListWalkUntil
	ListWalkBackwards
	ListKeepOks
	ListKeepErrs
	ListSortWith
	ListTakeFirst
	ListTakeLast
	ListDrop
	ListDropAt
	ListSwap
	ListAny
	ListFindUnsafe
	ListRange
	DictSize
	DictEmpty
	DictInsert
	DictRemove
	DictContains
	DictGetUnsafe
	DictKeys
	DictValues
	DictUnion
	DictIntersection
	DictDifference
	DictWalk
	SetFromList

	opEnd
)

var table = [opEnd]Info{
	Eq:                  {Name: "eq", Arity: 2, Category: CatCompare},
	NotEq:               {Name: "notEq", Arity: 2, Category: CatCompare},
	And:                 {Name: "and", Arity: 2, Category: CatBool},
	Or:                  {Name: "or", Arity: 2, Category: CatBool},
	Not:                 {Name: "not", Arity: 1, Category: CatBool},
	NumAdd:              {Name: "numAdd", Arity: 2, Category: CatArith},
	NumAddWrap:          {Name: "numAddWrap", Arity: 2, Category: CatArith},
	NumAddChecked:       {Name: "numAddChecked", Arity: 2, Category: CatArith, Record: &CheckedArith},
	NumSub:              {Name: "numSub", Arity: 2, Category: CatArith},
	NumSubWrap:          {Name: "numSubWrap", Arity: 2, Category: CatArith},
	NumSubChecked:       {Name: "numSubChecked", Arity: 2, Category: CatArith, Record: &CheckedArith},
	NumMul:              {Name: "numMul", Arity: 2, Category: CatArith},
	NumMulWrap:          {Name: "numMulWrap", Arity: 2, Category: CatArith},
	NumMulChecked:       {Name: "numMulChecked", Arity: 2, Category: CatArith, Record: &CheckedArith},
	NumGt:               {Name: "numGt", Arity: 2, Category: CatCompare},
	NumGte:              {Name: "numGte", Arity: 2, Category: CatCompare},
	NumLt:               {Name: "numLt", Arity: 2, Category: CatCompare},
	NumLte:              {Name: "numLte", Arity: 2, Category: CatCompare},
	NumCompare:          {Name: "numCompare", Arity: 2, Category: CatCompare},
	NumSin:              {Name: "numSin", Arity: 1, Category: CatFloat},
	NumCos:              {Name: "numCos", Arity: 1, Category: CatFloat},
	NumAtan:             {Name: "numAtan", Arity: 1, Category: CatFloat},
	NumAcos:             {Name: "numAcos", Arity: 1, Category: CatFloat},
	NumAsin:             {Name: "numAsin", Arity: 1, Category: CatFloat},
	NumDivUnchecked:     {Name: "numDivUnchecked", Arity: 2, Category: CatArith},
	NumDivCeilUnchecked: {Name: "numDivCeilUnchecked", Arity: 2, Category: CatArith},
	NumRemUnchecked:     {Name: "numRemUnchecked", Arity: 2, Category: CatArith},
	NumIsMultipleOf:     {Name: "numIsMultipleOf", Arity: 2, Category: CatArith},
	NumAbs:              {Name: "numAbs", Arity: 1, Category: CatArith},
	NumNeg:              {Name: "numNeg", Arity: 1, Category: CatArith},
	NumSqrtUnchecked:    {Name: "numSqrtUnchecked", Arity: 1, Category: CatFloat},
	NumLogUnchecked:     {Name: "numLogUnchecked", Arity: 1, Category: CatFloat},
	NumRound:            {Name: "numRound", Arity: 1, Category: CatFloat},
	NumToFloat:          {Name: "numToFloat", Arity: 1, Category: CatFloat},
	NumPow:              {Name: "numPow", Arity: 2, Category: CatFloat},
	NumCeiling:          {Name: "numCeiling", Arity: 1, Category: CatFloat},
	NumPowInt:           {Name: "numPowInt", Arity: 2, Category: CatArith},
	NumFloor:            {Name: "numFloor", Arity: 1, Category: CatFloat},
	NumBytesToU16:       {Name: "numBytesToU16", Arity: 2, Category: CatBitwise},
	NumBytesToU32:       {Name: "numBytesToU32", Arity: 2, Category: CatBitwise},
	NumBitwiseAnd:       {Name: "numBitwiseAnd", Arity: 2, Category: CatBitwise},
	NumBitwiseXor:       {Name: "numBitwiseXor", Arity: 2, Category: CatBitwise},
	NumBitwiseOr:        {Name: "numBitwiseOr", Arity: 2, Category: CatBitwise},
	NumShiftLeftBy:      {Name: "numShiftLeftBy", Arity: 2, Category: CatBitwise},
	NumShiftRightBy:     {Name: "numShiftRightBy", Arity: 2, Category: CatBitwise},
	NumShiftRightZfBy:   {Name: "numShiftRightZfBy", Arity: 2, Category: CatBitwise},
	NumIntCast:          {Name: "numIntCast", Arity: 1, Category: CatArith},
	StrConcat:           {Name: "strConcat", Arity: 2, Category: CatStr},
	StrJoinWith:         {Name: "strJoinWith", Arity: 2, Category: CatStr},
	StrIsEmpty:          {Name: "strIsEmpty", Arity: 1, Category: CatStr},
	StrStartsWith:       {Name: "strStartsWith", Arity: 2, Category: CatStr},
	StrStartsWithCodePt: {Name: "strStartsWithCodePt", Arity: 2, Category: CatStr},
	StrEndsWith:         {Name: "strEndsWith", Arity: 2, Category: CatStr},
	StrSplit:            {Name: "strSplit", Arity: 2, Category: CatStr},
	StrCountGraphemes:   {Name: "strCountGraphemes", Arity: 1, Category: CatStr},
	StrFromInt:          {Name: "strFromInt", Arity: 1, Category: CatStr},
	StrFromUtf8:         {Name: "strFromUtf8", Arity: 1, Category: CatStr, Record: &Utf8Decode},
	StrFromUtf8Range:    {Name: "strFromUtf8Range", Arity: 2, Category: CatStr, Record: &Utf8Decode},
	StrToUtf8:           {Name: "strToUtf8", Arity: 1, Category: CatStr},
	StrRepeat:           {Name: "strRepeat", Arity: 2, Category: CatStr},
	StrFromFloat:        {Name: "strFromFloat", Arity: 1, Category: CatStr},
	StrTrim:             {Name: "strTrim", Arity: 1, Category: CatStr},
	ListLen:             {Name: "listLen", Arity: 1, Category: CatList},
	ListGetUnsafe:       {Name: "listGetUnsafe", Arity: 2, Category: CatList},
	ListSet:             {Name: "listSet", Arity: 3, Category: CatList},
	ListSingle:          {Name: "listSingle", Arity: 1, Category: CatList},
	ListRepeat:          {Name: "listRepeat", Arity: 2, Category: CatList},
	ListReverse:         {Name: "listReverse", Arity: 1, Category: CatList},
	ListConcat:          {Name: "listConcat", Arity: 2, Category: CatList},
	ListContains:        {Name: "listContains", Arity: 2, Category: CatList},
	ListAppend:          {Name: "listAppend", Arity: 2, Category: CatList},
	ListPrepend:         {Name: "listPrepend", Arity: 2, Category: CatList},
	ListJoin:            {Name: "listJoin", Arity: 1, Category: CatList},
	ListMap:             {Name: "listMap", Arity: 2, Category: CatList},
	ListMap2:            {Name: "listMap2", Arity: 3, Category: CatList},
	ListMap3:            {Name: "listMap3", Arity: 4, Category: CatList},
	ListMap4:            {Name: "listMap4", Arity: 5, Category: CatList},
	ListMapWithIndex:    {Name: "listMapWithIndex", Arity: 2, Category: CatList},
	ListKeepIf:          {Name: "listKeepIf", Arity: 2, Category: CatList},
	ListWalk:            {Name: "listWalk", Arity: 3, Category: CatList},
	ListWalkUntil:       {Name: "listWalkUntil", Arity: 3, Category: CatList},
	ListWalkBackwards:   {Name: "listWalkBackwards", Arity: 3, Category: CatList},
	ListKeepOks:         {Name: "listKeepOks", Arity: 2, Category: CatList},
	ListKeepErrs:        {Name: "listKeepErrs", Arity: 2, Category: CatList},
	ListSortWith:        {Name: "listSortWith", Arity: 2, Category: CatList},
	ListTakeFirst:       {Name: "listTakeFirst", Arity: 2, Category: CatList},
	ListTakeLast:        {Name: "listTakeLast", Arity: 2, Category: CatList},
	ListDrop:            {Name: "listDrop", Arity: 2, Category: CatList},
	ListDropAt:          {Name: "listDropAt", Arity: 2, Category: CatList},
	ListSwap:            {Name: "listSwap", Arity: 3, Category: CatList},
	ListAny:             {Name: "listAny", Arity: 2, Category: CatList},
	ListFindUnsafe:      {Name: "listFindUnsafe", Arity: 2, Category: CatList, Record: &FindResult},
	ListRange:           {Name: "listRange", Arity: 2, Category: CatList},
	DictSize:            {Name: "dictSize", Arity: 1, Category: CatDict},
	DictEmpty:           {Name: "dictEmpty", Arity: 0, Category: CatDict},
	DictInsert:          {Name: "dictInsert", Arity: 3, Category: CatDict},
	DictRemove:          {Name: "dictRemove", Arity: 2, Category: CatDict},
	DictContains:        {Name: "dictContains", Arity: 2, Category: CatDict},
	DictGetUnsafe:       {Name: "dictGetUnsafe", Arity: 2, Category: CatDict, Record: &DictLookup},
	DictKeys:            {Name: "dictKeys", Arity: 1, Category: CatDict},
	DictValues:          {Name: "dictValues", Arity: 1, Category: CatDict},
	DictUnion:           {Name: "dictUnion", Arity: 2, Category: CatDict},
	DictIntersection:    {Name: "dictIntersection", Arity: 2, Category: CatDict},
	DictDifference:      {Name: "dictDifference", Arity: 2, Category: CatDict},
	DictWalk:            {Name: "dictWalk", Arity: 3, Category: CatDict},
	SetFromList:         {Name: "setFromList", Arity: 1, Category: CatDict},
}
