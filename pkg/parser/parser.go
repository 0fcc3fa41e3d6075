// Package parser puts the JSON and base64url codecs used by JOSE behind a
// single Parser, for callers that process JOSE segments and need both.
package parser

import (
	"github.com/lcobucci/jose-parsing/pkg/base64"
	"github.com/lcobucci/jose-parsing/pkg/json"
)

// Encoder encodes data according to the JOSE specifications.
type Encoder interface {
	// JSONEncode returns the compact JSON text of v, or a *jose.Error.
	JSONEncode(v json.Value) (string, error)

	// Base64URLEncode returns data encoded with the base64url alphabet and
	// without padding.
	//
	// https://www.rfc-editor.org/rfc/rfc4648#section-5
	Base64URLEncode(data []byte) string
}

// Decoder decodes data according to the JOSE specifications.
type Decoder interface {
	// JSONDecode parses the given JSON text, or returns a *jose.Error.
	JSONDecode(text string) (json.Value, error)

	// Base64URLDecode returns the bytes encoded by the given base64url
	// text, or a *jose.Error when it contains invalid characters.
	//
	// https://www.rfc-editor.org/rfc/rfc4648#section-5
	Base64URLDecode(text string) ([]byte, error)
}

var (
	_ Encoder = Parser{}
	_ Decoder = Parser{}
)

// Parser implements Encoder and Decoder. The zero value uses the default
// JSON options. A Parser is immutable and safe for concurrent use.
type Parser struct {
	opts []json.Option
}

// New returns a Parser that applies the given options to every JSON
// encode and decode call.
func New(opts ...json.Option) Parser {
	return Parser{opts: append([]json.Option(nil), opts...)}
}

func (p Parser) JSONEncode(v json.Value) (string, error) {
	return json.Encode(v, p.opts...)
}

func (p Parser) JSONDecode(text string) (json.Value, error) {
	return json.Decode(text, p.opts...)
}

func (p Parser) Base64URLEncode(data []byte) string {
	return base64.Encode(data)
}

func (p Parser) Base64URLDecode(text string) ([]byte, error) {
	return base64.Decode(text)
}

// EncodeSegment returns v as a JOSE segment: its JSON text, base64url
// encoded. Header and payload segments of a compact JWS are built this way.
func (p Parser) EncodeSegment(v json.Value) (string, error) {
	text, err := p.JSONEncode(v)
	if err != nil {
		return "", err
	}
	return p.Base64URLEncode([]byte(text)), nil
}

// DecodeSegment reverses EncodeSegment.
func (p Parser) DecodeSegment(segment string) (json.Value, error) {
	b, err := p.Base64URLDecode(segment)
	if err != nil {
		return json.Value{}, err
	}
	return p.JSONDecode(string(b))
}
