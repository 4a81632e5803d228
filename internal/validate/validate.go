package validate

import "strings"

// LengthBetween returns true if len(s) is within [min,max].
func LengthBetween(s string, min, max int) bool {
	n := len(s)
	return n >= min && n <= max
}

// IsAlphabet returns true if all characters in s are in allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// IsAllDigits reports whether s is non-empty and purely numeric.
func IsAllDigits(s string) bool {
	return IsAlphabet(s, "0123456789")
}

// IsAllLetters reports whether s is non-empty and purely alphabetic.
func IsAllLetters(s string) bool {
	return IsAlphabet(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// LooksLikeAWSAccessKey checks for the AKIA prefix and exact length 20.
func LooksLikeAWSAccessKey(s string) bool {
	return strings.HasPrefix(s, "AKIA") && len(s) == 20
}

// LooksLikeAWSSecretKey checks exact length 40 and rejects values that are
// purely numeric or purely alphabetic, which are never real secrets.
func LooksLikeAWSSecretKey(s string) bool {
	if len(s) != 40 {
		return false
	}
	return !IsAllDigits(s) && !IsAllLetters(s)
}

// LooksLikeSendGridKey checks the SG. prefix and the minimum full-key
// length of 69 characters.
func LooksLikeSendGridKey(s string) bool {
	return strings.HasPrefix(s, "SG.") && len(s) >= 69
}

// DotCount returns the number of '.' separators in s.
func DotCount(s string) int {
	return strings.Count(s, ".")
}
