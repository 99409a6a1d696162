package rdfxml

import "unicode"

// ncNameStart holds the NameStartChar ranges from the XML Namespaces
// recommendation, with the colon excluded.
var ncNameStart = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: '_', Hi: '_', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x02FF, Stride: 1},
		{Lo: 0x0370, Hi: 0x037D, Stride: 1},
		{Lo: 0x037F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
}

// ncNameExtra holds the characters NameChar adds on top of
// NameStartChar.
var ncNameExtra = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '-', Hi: '.', Stride: 1},
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 0x00B7, Hi: 0x00B7, Stride: 1},
		{Lo: 0x0300, Hi: 0x036F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
}

// isNCName reports whether value is a non-colonized XML name:
// NameStartChar (NameChar)* with ':' excluded from both productions.
func isNCName(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		if i == 0 {
			if !unicode.Is(ncNameStart, r) {
				return false
			}
		} else if !unicode.Is(ncNameStart, r) && !unicode.Is(ncNameExtra, r) {
			return false
		}
	}
	return true
}
