package jose

import "fmt"

// Messages used by the codecs when reporting an Error.
const (
	MessageJSONEncode   = "Error while encoding to JSON"
	MessageJSONDecode   = "Error while decoding from JSON"
	MessageBase64Decode = "Error while decoding from Base64: invalid characters used"
)

// Error is returned whenever encoding or decoding fails. Inner holds the
// lower level cause, such as the JSON parser's syntax error, and may be nil.
type Error struct {
	Message string
	Inner   error
}

func (e *Error) Error() string {
	if e.Inner == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Inner)
}

func (e *Error) Unwrap() error {
	return e.Inner
}

func NewError(message string, inner error) *Error {
	return &Error{Message: message, Inner: inner}
}
