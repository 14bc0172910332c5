package crypto

import "crypto/subtle"

// ConstantTimeEquals reports whether a and b are equal. For equal-length
// inputs the comparison time does not depend on where the first differing
// byte occurs. A length mismatch returns false, but only after a dummy
// equal-length comparison so that path does not return measurably faster
// than a content mismatch.
func ConstantTimeEquals(a, b []byte) bool {
	if len(a) != len(b) {
		subtle.ConstantTimeCompare(a, a)
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeEqualsString is ConstantTimeEquals over strings
func ConstantTimeEqualsString(a, b string) bool {
	return ConstantTimeEquals([]byte(a), []byte(b))
}
