package domain

// BlockSize is the AES block size in bytes. The IV and every ciphertext are multiples of it.
const BlockSize = 16

// MaxIdentifier is the largest identifier the codec accepts: 2^53-1, the largest
// integer the console's browser runtime represents exactly.
const MaxIdentifier int64 = 1<<53 - 1

// KeyEncoding describes how key and IV text is written in configuration.
type KeyEncoding string

const (
	// KeyEncodingRaw uses the UTF-8 bytes of the text as-is (e.g. "0123456789abcdef").
	// This is the format the console ships with.
	KeyEncodingRaw KeyEncoding = "raw"

	// KeyEncodingHex decodes the text as hexadecimal.
	KeyEncodingHex KeyEncoding = "hex"

	// KeyEncodingBase64 decodes the text as standard base64.
	KeyEncodingBase64 KeyEncoding = "base64"
)

// ParseKeyEncoding converts a configuration string into a KeyEncoding.
func ParseKeyEncoding(s string) (KeyEncoding, error) {
	switch KeyEncoding(s) {
	case KeyEncodingRaw, KeyEncodingHex, KeyEncodingBase64:
		return KeyEncoding(s), nil
	default:
		return "", ErrUnsupportedKeyEncoding
	}
}
