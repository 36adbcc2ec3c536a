// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package escape

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// URIComponent percent-encodes s for use as a single URI component,
// for example a query parameter key or value.
//
// Every byte that is not an RFC 3986 unreserved character (letters,
// digits, '-', '_', '.', '~') is written as a '%' followed by two
// uppercase hex digits. Encoding is byte-wise, so arbitrary input,
// including non-ASCII text and raw binary, is safe: each byte of a
// multi-byte UTF-8 sequence is escaped individually.
func URIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		}
	}
	return sb.String()
}

// PercentDecode reverses URIComponent, replacing every valid %XX
// triple in s with the byte it encodes. Hex digits may be either
// case. Malformed escapes (a '%' not followed by two hex digits) are
// passed through verbatim rather than rejected; URIComponent never
// produces them.
func PercentDecode(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				sb.WriteByte(hi<<4 | lo)
				i += 3
				continue
			}
		}
		sb.WriteByte(c)
		i++
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return unreservedTable[c]
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// unreservedTable classifies each byte value as an RFC 3986 section
// 2.3 unreserved character.
var unreservedTable = [256]bool{
	'-': true,
	'.': true,
	'0': true,
	'1': true,
	'2': true,
	'3': true,
	'4': true,
	'5': true,
	'6': true,
	'7': true,
	'8': true,
	'9': true,
	'A': true,
	'B': true,
	'C': true,
	'D': true,
	'E': true,
	'F': true,
	'G': true,
	'H': true,
	'I': true,
	'J': true,
	'K': true,
	'L': true,
	'M': true,
	'N': true,
	'O': true,
	'P': true,
	'Q': true,
	'R': true,
	'S': true,
	'T': true,
	'U': true,
	'V': true,
	'W': true,
	'X': true,
	'Y': true,
	'Z': true,
	'_': true,
	'a': true,
	'b': true,
	'c': true,
	'd': true,
	'e': true,
	'f': true,
	'g': true,
	'h': true,
	'i': true,
	'j': true,
	'k': true,
	'l': true,
	'm': true,
	'n': true,
	'o': true,
	'p': true,
	'q': true,
	'r': true,
	's': true,
	't': true,
	'u': true,
	'v': true,
	'w': true,
	'x': true,
	'y': true,
	'z': true,
	'~': true,
}
