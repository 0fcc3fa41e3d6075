package json

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-json-experiment/json/jsontext"
	jose "github.com/lcobucci/jose-parsing/pkg"
)

var ErrTrailingData = errors.New("json: unexpected data after top-level value")

// Decode parses a single JSON value from text.
//
// Objects decode into an *Object in document order. When a name repeats,
// the last value wins and keeps the position of the first occurrence.
// Numbers decode into their literal Number. Malformed input, trailing data,
// invalid UTF-8 and nesting deeper than the configured maximum make Decode
// fail with a *jose.Error.
func Decode(text string, opts ...Option) (Value, error) {
	if !utf8.ValidString(text) {
		return Value{}, jose.NewError(jose.MessageJSONDecode, ErrInvalidUTF8)
	}

	d := &decodeState{
		dec:      jsontext.NewDecoder(strings.NewReader(text), jsontext.AllowDuplicateNames(true)),
		maxDepth: newConfig(opts).MaxDepth,
	}

	v, err := d.value()
	if err == nil {
		err = d.end()
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Value{}, jose.NewError(jose.MessageJSONDecode, err)
	}
	return v, nil
}

type decodeState struct {
	dec      *jsontext.Decoder
	depth    int
	maxDepth int
}

func (d *decodeState) push() error {
	d.depth++
	if d.depth > d.maxDepth {
		return fmt.Errorf("%w: limit is %d", ErrMaxDepth, d.maxDepth)
	}
	return nil
}

func (d *decodeState) value() (Value, error) {
	switch d.dec.PeekKind() {
	case '{':
		return d.object()
	case '[':
		return d.array()
	case '0':
		raw, err := d.dec.ReadValue()
		if err != nil {
			return Value{}, err
		}
		return NumberValue(Number(raw)), nil
	}

	tok, err := d.dec.ReadToken()
	if err != nil {
		return Value{}, err
	}
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return BoolValue(tok.Bool()), nil
	case '"':
		return StringValue(tok.String()), nil
	}
	return Value{}, fmt.Errorf("json: unexpected token %v", tok)
}

func (d *decodeState) object() (Value, error) {
	if err := d.push(); err != nil {
		return Value{}, err
	}
	if _, err := d.dec.ReadToken(); err != nil {
		return Value{}, err
	}

	obj := NewObject()
	for d.dec.PeekKind() != '}' {
		tok, err := d.dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		name := tok.String()

		v, err := d.value()
		if err != nil {
			return Value{}, err
		}
		obj.Set(name, v)
	}
	if _, err := d.dec.ReadToken(); err != nil {
		return Value{}, err
	}

	d.depth--
	return ObjectValue(obj), nil
}

func (d *decodeState) array() (Value, error) {
	if err := d.push(); err != nil {
		return Value{}, err
	}
	if _, err := d.dec.ReadToken(); err != nil {
		return Value{}, err
	}

	v := Value{kind: KindArray}
	for d.dec.PeekKind() != ']' {
		item, err := d.value()
		if err != nil {
			return Value{}, err
		}
		v.items = append(v.items, item)
	}
	if _, err := d.dec.ReadToken(); err != nil {
		return Value{}, err
	}

	d.depth--
	return v, nil
}

// end makes sure nothing but whitespace follows the top-level value.
func (d *decodeState) end() error {
	_, err := d.dec.ReadToken()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	}
	return ErrTrailingData
}
