package model

import "unicode/utf8"

// Truncate returns the first n characters of s. Truncating an already
// truncated string to the same bound returns it unchanged; n < 0 keeps s.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Length reports the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
