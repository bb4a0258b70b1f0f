package domain

import (
	"fmt"
	"strconv"
)

// ValidateIdentifier checks that id is within [0, MaxIdentifier].
func ValidateIdentifier(id int64) error {
	if id < 0 || id > MaxIdentifier {
		return fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidIdentifier, id, MaxIdentifier)
	}
	return nil
}

// ParseIdentifier parses caller-supplied text (CLI flags, JSON numbers, path parameters)
// into an identifier. Only canonical base-10 digit strings are accepted: no sign, no
// fraction or exponent, no surrounding whitespace and no leading zeros other than "0".
// Anything else, "3.14" and "-1" included, fails with ErrInvalidIdentifier.
func ParseIdentifier(text string) (int64, error) {
	id, ok := parseCanonicalDecimal(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidIdentifier, text)
	}
	return id, nil
}

// ParsePayload parses decrypted plaintext. It applies the same rules as ParseIdentifier
// but reports ErrInvalidPayload, since the bytes came out of a token, not from a caller.
func ParsePayload(plaintext []byte) (int64, error) {
	id, ok := parseCanonicalDecimal(string(plaintext))
	if !ok {
		return 0, ErrInvalidPayload
	}
	return id, nil
}

func parseCanonicalDecimal(s string) (int64, bool) {
	// 2^53-1 has 16 digits.
	if s == "" || len(s) > 16 {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id > MaxIdentifier {
		return 0, false
	}
	return id, true
}
