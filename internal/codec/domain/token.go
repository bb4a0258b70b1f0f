package domain

// Token is the opaque lowercase hex encoding of an encrypted identifier, meant for
// URL query parameters. Tokens carry no ordering; equal tokens imply equal identifiers.
type Token string

// String returns the token text.
func (t Token) String() string {
	return string(t)
}

// EncodedToken pairs an identifier with the token minted for it.
type EncodedToken struct {
	ID    int64
	Token Token
}
