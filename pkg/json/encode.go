package json

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-json-experiment/json/jsontext"
	jose "github.com/lcobucci/jose-parsing/pkg"
)

var (
	ErrInvalidUTF8   = errors.New("json: invalid UTF-8")
	ErrInvalidNumber = errors.New("json: invalid number")
	ErrMaxDepth      = errors.New("json: maximum nesting depth exceeded")
)

// Encode returns the compact JSON text of v.
//
// Slashes are not escaped and non-ASCII characters are written as UTF-8.
// Strings or member names that are not valid UTF-8, numbers without a JSON
// representation and nesting deeper than the configured maximum make
// Encode fail with a *jose.Error.
func Encode(v Value, opts ...Option) (string, error) {
	buff := bytes.NewBuffer(nil)

	e := &encodeState{
		enc:      jsontext.NewEncoder(buff),
		maxDepth: newConfig(opts).MaxDepth,
	}

	if err := e.value(v); err != nil {
		return "", jose.NewError(jose.MessageJSONEncode, err)
	}

	// The encoder terminates every top-level value with a newline.
	return strings.TrimSuffix(buff.String(), "\n"), nil
}

type encodeState struct {
	enc      *jsontext.Encoder
	depth    int
	maxDepth int
}

func (e *encodeState) push() error {
	e.depth++
	if e.depth > e.maxDepth {
		return fmt.Errorf("%w: limit is %d", ErrMaxDepth, e.maxDepth)
	}
	return nil
}

func (e *encodeState) value(v Value) error {
	switch v.kind {
	case KindNull:
		return e.enc.WriteToken(jsontext.Null)
	case KindBool:
		return e.enc.WriteToken(jsontext.Bool(v.b))
	case KindString:
		return e.string(v.s)
	case KindNumber:
		if !Number(v.s).valid() {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, v.s)
		}
		return e.enc.WriteValue(jsontext.Value(v.s))
	case KindObject:
		return e.object(v.obj)
	case KindArray:
		return e.array(v.items)
	}
	return fmt.Errorf("json: unknown value kind %v", v.kind)
}

func (e *encodeState) string(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w in string %q", ErrInvalidUTF8, s)
	}
	return e.enc.WriteToken(jsontext.String(s))
}

func (e *encodeState) object(obj *Object) error {
	if err := e.push(); err != nil {
		return err
	}
	if err := e.enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	if obj != nil {
		for _, m := range obj.members {
			if err := e.string(m.Name); err != nil {
				return fmt.Errorf("member name: %w", err)
			}
			if err := e.value(m.Value); err != nil {
				return fmt.Errorf("member %q: %w", m.Name, err)
			}
		}
	}
	e.depth--
	return e.enc.WriteToken(jsontext.ObjectEnd)
}

func (e *encodeState) array(items []Value) error {
	if err := e.push(); err != nil {
		return err
	}
	if err := e.enc.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	for i, item := range items {
		if err := e.value(item); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	e.depth--
	return e.enc.WriteToken(jsontext.ArrayEnd)
}
