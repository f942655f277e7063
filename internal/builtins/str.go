package builtins

import (
	"stdsynth/internal/lowlevel"
	"stdsynth/internal/symbols"
)

var strDefs = map[symbols.Symbol]entry{
	symbols.StrConcat:           {typed(lowlevel.StrConcat, "ss>s"), ShapePassthrough},
	symbols.StrJoinWith:         {typed(lowlevel.StrJoinWith, "ls>s"), ShapePassthrough},
	symbols.StrSplit:            {typed(lowlevel.StrSplit, "ss>l"), ShapePassthrough},
	symbols.StrIsEmpty:          {typed(lowlevel.StrIsEmpty, "s>b"), ShapePassthrough},
	symbols.StrStartsWith:       {lowlevel2(lowlevel.StrStartsWith), ShapePassthrough},
	symbols.StrStartsWithCodePt: {lowlevel2(lowlevel.StrStartsWithCodePt), ShapePassthrough},
	symbols.StrEndsWith:         {typed(lowlevel.StrEndsWith, "ss>b"), ShapePassthrough},
	symbols.StrCountGraphemes:   {typed(lowlevel.StrCountGraphemes, "s>i"), ShapePassthrough},
	symbols.StrFromInt:          {typed(lowlevel.StrFromInt, "i>s"), ShapePassthrough},
	symbols.StrFromUtf8:         {strFromUtf8, ShapeDecode},
	symbols.StrFromUtf8Range:    {strFromUtf8Range, ShapeDecode},
	symbols.StrToUtf8:           {lowlevel1(lowlevel.StrToUtf8), ShapePassthrough},
	symbols.StrFromFloat:        {typed(lowlevel.StrFromFloat, "f>s"), ShapePassthrough},
	symbols.StrRepeat:           {typed(lowlevel.StrRepeat, "sn>s"), ShapePassthrough},
	symbols.StrTrim:             {lowlevel1(lowlevel.StrTrim), ShapePassthrough},
}
