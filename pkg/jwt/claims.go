package jwt

import (
	"fmt"
	"math"
	"time"

	"github.com/lcobucci/jose-parsing/pkg/json"
	"github.com/lcobucci/jose-parsing/pkg/parser"
)

// There are three classes of JWT Claim Names:
// 1. Registered Claim Names
// 2. Public Claim Names
// 3. Private Claim Names
type (
	ClaimName = string

	Registered = ClaimName
	Public     = ClaimName
	Private    = ClaimName
)

// Registered Claim Names
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-4.1
const (
	Issuer         Registered = "iss"
	Subject        Registered = "sub"
	Audience       Registered = "aud"
	ExpirationTime Registered = "exp"
	NotBefore      Registered = "nbf"
	IssuedAt       Registered = "iat"
	JWTID          Registered = "jti"
)

var codec parser.Parser

// ClaimsSet is a JSON object that contains the claims conveyed by the JWT.
//
// A claim is a piece of information asserted about a subject, represented
// as a name/value pair consisting of a Claim Name and a Claim Value.
// The zero value is an empty claims set.
type ClaimsSet struct {
	obj json.Object
}

func NewClaimsSet() *ClaimsSet {
	return &ClaimsSet{}
}

// ParseClaims decodes a base64url encoded claims segment.
func ParseClaims(segment string) (*ClaimsSet, error) {
	v, err := codec.DecodeSegment(segment)
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}
	obj, ok := v.Object()
	if !ok {
		return nil, NewInvalidTypeError(fmt.Errorf("claims set is %v, not an object", v.Kind()))
	}
	return &ClaimsSet{obj: *obj}, nil
}

// Segment returns the claims set as a base64url encoded segment.
func (claims *ClaimsSet) Segment() (string, error) {
	s, err := codec.EncodeSegment(claims.Value())
	if err != nil {
		return "", fmt.Errorf("failed to encode claims: %w", err)
	}
	return s, nil
}

func (claims *ClaimsSet) String() string {
	s, err := claims.Segment()
	if err != nil {
		return fmt.Sprintf("<invalid-claims-set %q>", err)
	}
	return s
}

// Value returns the claims set as a JSON object value sharing its members.
func (claims *ClaimsSet) Value() json.Value {
	return json.ObjectValue(&claims.obj)
}

func (claims *ClaimsSet) Get(name ClaimName) (json.Value, error) {
	value, ok := claims.obj.Get(name)
	if !ok {
		return json.Value{}, fmt.Errorf("%w: %q", ErrClaimNotFound, name)
	}
	return value, nil
}

// Set sets a claim and returns the claims set, so calls can be chained.
func (claims *ClaimsSet) Set(name ClaimName, value json.Value) *ClaimsSet {
	claims.obj.Set(name, value)
	return claims
}

// SetTime sets a NumericDate claim such as "exp" to t in seconds.
func (claims *ClaimsSet) SetTime(name ClaimName, t time.Time) *ClaimsSet {
	return claims.Set(name, json.IntValue(t.Unix()))
}

// Names returns the claim names in order.
func (claims *ClaimsSet) Names() []ClaimName {
	return claims.obj.Names()
}

func (claims *ClaimsSet) Len() int {
	return claims.obj.Len()
}

// Time returns a NumericDate claim, the number of seconds since the
// epoch, as a time.Time. Fractional seconds are kept.
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-2
func (claims *ClaimsSet) Time(name ClaimName) (time.Time, error) {
	value, err := claims.Get(name)
	if err != nil {
		return time.Time{}, err
	}
	n, ok := value.Number()
	if !ok {
		return time.Time{}, NewInvalidTypeError(fmt.Errorf("claim %q is %v, not a number", name, value.Kind()))
	}
	if secs, err := n.Int64(); err == nil {
		return time.Unix(secs, 0), nil
	}
	f, err := n.Float64()
	if err != nil {
		return time.Time{}, NewInvalidTypeError(fmt.Errorf("claim %q: %w", name, err))
	}
	ms := f * 1000
	if math.IsNaN(ms) || ms < math.MinInt64 || ms >= math.MaxInt64 {
		return time.Time{}, NewInvalidTypeError(fmt.Errorf("claim %q: %s is out of range", name, n))
	}
	return time.UnixMilli(int64(ms)), nil
}

// Audience returns the "aud" claim, which may be a single string or an
// array of strings.
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.3
func (claims *ClaimsSet) Audience() ([]string, error) {
	value, err := claims.Get(Audience)
	if err != nil {
		return nil, err
	}
	if s, ok := value.Text(); ok {
		return []string{s}, nil
	}
	items, ok := value.Array()
	if !ok {
		return nil, NewInvalidTypeError(fmt.Errorf("claim %q is %v", Audience, value.Kind()))
	}
	audience := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.Text()
		if !ok {
			return nil, NewInvalidTypeError(fmt.Errorf("claim %q contains %v", Audience, item.Kind()))
		}
		audience = append(audience, s)
	}
	return audience, nil
}
