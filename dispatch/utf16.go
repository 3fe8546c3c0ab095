package dispatch

import "unicode/utf16"

// utf16Encode encodes s as UTF-16 code units, the form set_title wants.
func utf16Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
