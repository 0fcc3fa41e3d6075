package base64

import (
	"encoding/base64"
	"fmt"
	"strings"

	jose "github.com/lcobucci/jose-parsing/pkg"
)

// alphabet maps the URL-safe characters back to the standard alphabet.
var alphabet = strings.NewReplacer("-", "+", "_", "/")

// Decode returns the base64url decoded bytes from the given input.
// This function implements base64url decoding as defined in RFC 4648 Section 5,
// which is used in JWT and JWS specifications (RFC 7515).
//
// It automatically adds padding if needed before decoding. Decoding is
// strict: characters outside of the alphabet, impossible lengths and
// non-zero trailing bits are all reported as a *jose.Error. The last rule
// means only the canonical encoding of some bytes is accepted, so "SQ"
// decodes to "I" while "SR" fails.
func Decode(input string) ([]byte, error) {
	// The standard library decoder skips CR and LF even in strict mode.
	if i := strings.IndexAny(input, "\r\n"); i >= 0 {
		return nil, jose.NewError(jose.MessageBase64Decode, base64.CorruptInputError(i))
	}

	if padLen := len(input) % 4; padLen > 0 {
		var b strings.Builder
		b.Grow(len(input) + (4 - padLen))
		b.WriteString(input)
		for i := padLen; i < 4; i++ {
			b.WriteByte('=')
		}
		input = b.String()
	}

	result, err := base64.StdEncoding.Strict().DecodeString(alphabet.Replace(input))
	if err != nil {
		return nil, jose.NewError(jose.MessageBase64Decode, fmt.Errorf("base64: invalid base64url input: %w", err))
	}
	return result, nil
}

// Encode returns the base64url encoded string from the given input.
// This function implements base64url encoding as defined in RFC 4648 Section 5,
// which is used in JWT and JWS specifications (RFC 7515).
//
// It removes padding characters as required by the JWT specification.
// Empty input encodes to the empty string.
func Encode(input []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(input), "=")
}
