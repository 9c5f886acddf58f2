package common

import (
	"go/token"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String value of out-of-range enum values.
const UnknownStr = "unknown"

// UpperFirst returns s with its first rune upper-cased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// IsIdent reports whether s is a valid Go identifier that is not a keyword.
func IsIdent(s string) bool {
	return token.IsIdentifier(s)
}
