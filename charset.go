package vnspell

// This file implements the UTF-8 and Vietnamese-aware character utilities
// used throughout this package. Vietnamese text in the wild is encoded as
// precomposed NFC UTF-8: every accented letter is a single code point drawn
// from one of three Unicode blocks, each with a fixed byte-level case
// relationship between its upper- and lowercase members. We exploit that
// instead of going through full Unicode case folding, which is both slower
// and (for U+1EA0-U+1EF9 in particular) not guaranteed to agree with the
// specific mapping this corrector was trained against.

// IsCharBoundary reports whether b starts a new UTF-8 code point, i.e. it is
// not a continuation byte (10xxxxxx).
func IsCharBoundary(b byte) bool {
	return b&0xC0 != 0x80
}

// IsTokenizable reports whether b is a byte we consider part of a token:
// either the start (or continuation) of a multi-byte UTF-8 code point,
// which we assume always denotes a letter, or an ASCII letter.
func IsTokenizable(b byte) bool {
	return b&0x80 != 0 || isASCIILetter(b)
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}

func upperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 0x20
	}
	return b
}

// latinExtUpperSecond maps the second byte of an uppercase 2-byte Latin
// Extended-A/B code point (lead byte 0xC4, 0xC5 or 0xC6) to its lowercase
// counterpart's second byte. Ă(0xC4 0x82)->ă, Đ(0xC4 0x90)->đ, Ĩ(0xC4
// 0xA8)->ĩ, Ũ(0xC5 0xA8)->ũ, Ơ(0xC6 0xA0)->ơ, Ư(0xC6 0xAF)->ư. The last pair
// is not a single-bit flip: 0xAF + 1 = 0xB0 carries out of the low nibble.
var latinExtUpperSecond = map[byte]byte{
	0x82: 0x83,
	0x90: 0x91,
	0xA8: 0xA9,
	0xA0: 0xA1,
	0xAF: 0xB0,
}

var latinExtLowerSecond = map[byte]byte{
	0x83: 0x82,
	0x91: 0x90,
	0xA9: 0xA8,
	0xA1: 0xA0,
	0xB0: 0xAF,
}

// ToLower returns a copy of s with every ASCII and precomposed Vietnamese
// letter lowercased. Non-letter bytes, and multi-byte leads outside the
// three recognized blocks, pass through unchanged.
func ToLower(s string) string {
	b := []byte(s)
	lowerBytes(b)
	return string(b)
}

// lowerBytes lowercases buf in place.
func lowerBytes(buf []byte) {
	for i := 0; i < len(buf); {
		c := buf[i]
		if c&0x80 == 0 {
			buf[i] = lowerASCII(c)
			i++
			continue
		}
		switch c {
		case 0xE1:
			if i+2 < len(buf) && (buf[i+1] == 0xBA || buf[i+1] == 0xBB) {
				buf[i+2] |= 0x01
			}
			i += 3
		case 0xC3:
			if i+1 < len(buf) {
				buf[i+1] |= 0x20
			}
			i += 2
		case 0xC4, 0xC5, 0xC6:
			if i+1 < len(buf) {
				if mapped, ok := latinExtUpperSecond[buf[i+1]]; ok {
					buf[i+1] = mapped
				}
			}
			i += 2
		default:
			i++
		}
	}
}

// CapitalizeFirst returns a copy of s with only its first code point
// capitalized (case type 0: initial-capital).
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	capitalizeAt(b, 0)
	return string(b)
}

// CapitalizeAll returns a copy of s with every code point capitalized
// (case type 1: all-uppercase).
func CapitalizeAll(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if IsCharBoundary(b[i]) {
			capitalizeAt(b, i)
		}
	}
	return string(b)
}

// capitalizeAt capitalizes the code point starting at buf[i] in place. It is
// the inverse of the branch lowerBytes takes for the same lead byte.
func capitalizeAt(buf []byte, i int) {
	c := buf[i]
	if c&0x80 == 0 {
		buf[i] = upperASCII(c)
		return
	}
	switch c {
	case 0xE1:
		if i+2 < len(buf) && (buf[i+1] == 0xBA || buf[i+1] == 0xBB) {
			buf[i+2] &^= 0x01
		}
	case 0xC3:
		if i+1 < len(buf) {
			buf[i+1] &^= 0x20
		}
	case 0xC4, 0xC5, 0xC6:
		if i+1 < len(buf) {
			if mapped, ok := latinExtLowerSecond[buf[i+1]]; ok {
				buf[i+1] = mapped
			}
		}
	}
}

// upperTwoByte is the set of 2-byte uppercase Vietnamese/Latin-1 letters:
// the Latin-1 Supplement block (lead 0xC3) plus Ă/Đ/Ĩ/Ũ/Ơ/Ư from Latin
// Extended-A/B (leads 0xC4/0xC5/0xC6).
var upperTwoByte = map[[2]byte]bool{
	{0xC3, 0x80}: true, {0xC3, 0x81}: true, {0xC3, 0x82}: true, {0xC3, 0x83}: true,
	{0xC3, 0x88}: true, {0xC3, 0x89}: true, {0xC3, 0x8A}: true,
	{0xC3, 0x8C}: true, {0xC3, 0x8D}: true,
	{0xC3, 0x92}: true, {0xC3, 0x93}: true, {0xC3, 0x94}: true, {0xC3, 0x95}: true,
	{0xC3, 0x99}: true, {0xC3, 0x9A}: true,
	{0xC3, 0x9D}: true,
	{0xC4, 0x82}: true, {0xC4, 0x90}: true, {0xC4, 0xA8}: true,
	{0xC5, 0xA8}: true,
	{0xC6, 0xA0}: true, {0xC6, 0xAF}: true,
}

// upperThreeByte is the set of 3-byte uppercase Vietnamese tone-marked
// letters from Latin Extended Additional (leads 0xE1 0xBA / 0xE1 0xBB).
var upperThreeByte = map[[3]byte]bool{
	{0xE1, 0xBA, 0xA0}: true, {0xE1, 0xBA, 0xA2}: true, {0xE1, 0xBA, 0xA4}: true,
	{0xE1, 0xBA, 0xA6}: true, {0xE1, 0xBA, 0xA8}: true, {0xE1, 0xBA, 0xAA}: true,
	{0xE1, 0xBA, 0xAC}: true, {0xE1, 0xBA, 0xAE}: true, {0xE1, 0xBA, 0xB0}: true,
	{0xE1, 0xBA, 0xB2}: true, {0xE1, 0xBA, 0xB4}: true, {0xE1, 0xBA, 0xB6}: true,
	{0xE1, 0xBA, 0xB8}: true, {0xE1, 0xBA, 0xBA}: true, {0xE1, 0xBA, 0xBC}: true,
	{0xE1, 0xBA, 0xBE}: true,
	{0xE1, 0xBB, 0x80}: true, {0xE1, 0xBB, 0x82}: true, {0xE1, 0xBB, 0x84}: true,
	{0xE1, 0xBB, 0x86}: true, {0xE1, 0xBB, 0x88}: true, {0xE1, 0xBB, 0x8A}: true,
	{0xE1, 0xBB, 0x8C}: true, {0xE1, 0xBB, 0x8E}: true, {0xE1, 0xBB, 0x90}: true,
	{0xE1, 0xBB, 0x92}: true, {0xE1, 0xBB, 0x94}: true, {0xE1, 0xBB, 0x96}: true,
	{0xE1, 0xBB, 0x98}: true, {0xE1, 0xBB, 0x9A}: true, {0xE1, 0xBB, 0x9C}: true,
	{0xE1, 0xBB, 0x9E}: true, {0xE1, 0xBB, 0xA0}: true, {0xE1, 0xBB, 0xA2}: true,
	{0xE1, 0xBB, 0xA4}: true, {0xE1, 0xBB, 0xA6}: true, {0xE1, 0xBB, 0xA8}: true,
	{0xE1, 0xBB, 0xAA}: true, {0xE1, 0xBB, 0xAC}: true, {0xE1, 0xBB, 0xAE}: true,
	{0xE1, 0xBB, 0xB0}: true, {0xE1, 0xBB, 0xB2}: true, {0xE1, 0xBB, 0xB4}: true,
	{0xE1, 0xBB, 0xB6}: true, {0xE1, 0xBB, 0xB8}: true,
}

// IsUpperAt reports whether the code point starting at buf[i] is an
// uppercase letter: an ASCII uppercase letter, or a member of the
// precomposed Vietnamese uppercase tables above.
func IsUpperAt(buf []byte, i int) bool {
	c := buf[i]
	if c&0x80 == 0 {
		return c >= 'A' && c <= 'Z'
	}
	if i+1 >= len(buf) {
		return false
	}
	if upperTwoByte[[2]byte{c, buf[i+1]}] {
		return true
	}
	if i+2 < len(buf) && upperThreeByte[[3]byte{c, buf[i+1], buf[i+2]}] {
		return true
	}
	return false
}

// CaseType classifies the original casing of an inspected token so its
// replacement can be re-cased to match:
//
//	CaseInitialCapital (0): first code point uppercase, no other uppercase.
//	CaseAllUpper (1): first code point uppercase, all others uppercase too.
//	CaseOther (2): mixed case, or the first code point is not uppercase.
type CaseType int

const (
	CaseInitialCapital CaseType = iota
	CaseAllUpper
	CaseOther
)

// ClassifyCase computes the case type of token by examining code point
// boundaries only, skipping continuation bytes.
func ClassifyCase(token string) CaseType {
	buf := []byte(token)
	if len(buf) == 0 || !IsUpperAt(buf, 0) {
		return CaseOther
	}

	skipFirst := true
	hasUpper, allUpper := false, true
	for i := 0; i < len(buf); i++ {
		if !IsCharBoundary(buf[i]) {
			continue
		}
		if skipFirst {
			skipFirst = false
			continue
		}
		if IsUpperAt(buf, i) {
			hasUpper = true
		} else {
			allUpper = false
		}
	}

	switch {
	case allUpper:
		return CaseAllUpper
	case hasUpper:
		return CaseOther
	default:
		return CaseInitialCapital
	}
}

// Recase rewrites lower (already lowercased) back to the casing described by
// ct: CaseInitialCapital capitalizes the first code point, CaseAllUpper
// capitalizes every code point, CaseOther leaves it untouched.
func Recase(lower string, ct CaseType) string {
	switch ct {
	case CaseInitialCapital:
		return CapitalizeFirst(lower)
	case CaseAllUpper:
		return CapitalizeAll(lower)
	default:
		return lower
	}
}
