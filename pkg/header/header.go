package header

import (
	"errors"
	"fmt"

	"github.com/lcobucci/jose-parsing/pkg/json"
	"github.com/lcobucci/jose-parsing/pkg/parser"
	"golang.org/x/exp/slices"
)

// There are three classes of Header Parameter names: Registered Header
// Parameter names, Public Header Parameter names, and Private Header
// Parameter names.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4
type (
	ParameterName = string

	Registered = ParameterName
	Public     = ParameterName
	Private    = ParameterName
)

// Registered Header Parameter Names
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4.1
const (
	Type                            Registered = "typ"
	Algorithm                       Registered = "alg"
	JWKSetURL                       Registered = "jku"
	JSONWebKey                      Registered = "jwk"
	X509URL                         Registered = "x5u"
	X509CertificateChain            Registered = "x5c"
	X509CertificateSHA1Thumbprint   Registered = "x5t"
	X509CertificateSHA256Thumbprint Registered = "x5t#S256"
	ContentType                     Registered = "cty"
	Critical                        Registered = "crit"
	KeyID                           Registered = "kid"

	// https://www.rfc-editor.org/rfc/rfc7516.html#section-4.1.2
	Encryption Registered = "enc"

	// https://www.rfc-editor.org/rfc/rfc7516.html#section-4.1.3
	Zip Registered = "zip"
)

const TypeJWT = "JWT"

var (
	ErrParameterNotFound    = errors.New("header parameter not found")
	ErrInvalidParameterType = errors.New("header parameter has invalid type")
	ErrNotAnObject          = errors.New("header is not a JSON object")
)

var codec parser.Parser

// Parameters is a JSON object containing the parameters describing
// the cryptographic operations and parameters employed.
//
// The JOSE (JSON Object Signing and Encryption) Header is comprised
// of a set of Header Parameters. Parameters keeps them in the order they
// were set or decoded in. The zero value is an empty header.
type Parameters struct {
	obj json.Object
}

// New returns an empty header.
func New() *Parameters {
	return &Parameters{}
}

// Parse decodes a base64url encoded header segment.
func Parse(segment string) (*Parameters, error) {
	v, err := codec.DecodeSegment(segment)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JOSE header: %w", err)
	}
	obj, ok := v.Object()
	if !ok {
		return nil, fmt.Errorf("%w: got %v", ErrNotAnObject, v.Kind())
	}
	return &Parameters{obj: *obj}, nil
}

// Base64URLString returns the header as a base64url encoded segment.
func (h *Parameters) Base64URLString() (string, error) {
	s, err := codec.EncodeSegment(h.Value())
	if err != nil {
		return "", fmt.Errorf("failed to encode JOSE header base64 URL string: %w", err)
	}
	return s, nil
}

// Value returns the header as a JSON object value sharing h's members.
func (h *Parameters) Value() json.Value {
	return json.ObjectValue(&h.obj)
}

// Set sets a parameter and returns the header, so calls can be chained.
func (h *Parameters) Set(param ParameterName, value json.Value) *Parameters {
	h.obj.Set(param, value)
	return h
}

// SetString is shorthand for Set with a string value.
func (h *Parameters) SetString(param ParameterName, value string) *Parameters {
	return h.Set(param, json.StringValue(value))
}

func (h *Parameters) Get(param ParameterName) (json.Value, error) {
	value, ok := h.obj.Get(param)
	if !ok {
		return json.Value{}, fmt.Errorf("%w: %q", ErrParameterNotFound, param)
	}
	return value, nil
}

func (h *Parameters) Names() []ParameterName {
	return h.obj.Names()
}

func (h *Parameters) Len() int {
	return h.obj.Len()
}

func (h *Parameters) getString(param ParameterName) (string, error) {
	value, err := h.Get(param)
	if err != nil {
		return "", err
	}
	s, ok := value.Text()
	if !ok {
		return "", fmt.Errorf("%w: %q is %v, not a string", ErrInvalidParameterType, param, value.Kind())
	}
	return s, nil
}

func (h *Parameters) Type() (string, error) {
	return h.getString(Type)
}

// Algorithm returns the "alg" parameter as is; whether the algorithm is
// acceptable is for the caller to decide.
func (h *Parameters) Algorithm() (string, error) {
	return h.getString(Algorithm)
}

func (h *Parameters) KeyID() (string, error) {
	return h.getString(KeyID)
}

func (h *Parameters) ContentType() (string, error) {
	return h.getString(ContentType)
}

// Critical returns the names listed in the "crit" parameter.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4.1.11
func (h *Parameters) Critical() ([]string, error) {
	value, err := h.Get(Critical)
	if err != nil {
		return nil, err
	}
	items, ok := value.Array()
	if !ok {
		return nil, fmt.Errorf("%w: %q is %v, not an array", ErrInvalidParameterType, Critical, value.Kind())
	}

	names := make([]string, 0, len(items))
	for i, item := range items {
		name, ok := item.Text()
		if !ok {
			return nil, fmt.Errorf("%w: %q element %d is %v, not a string", ErrInvalidParameterType, Critical, i, item.Kind())
		}
		names = append(names, name)
	}
	return names, nil
}

// IsCritical reports whether name is listed in the "crit" parameter.
func (h *Parameters) IsCritical(name ParameterName) bool {
	names, err := h.Critical()
	if err != nil {
		return false
	}
	return slices.Contains(names, name)
}
