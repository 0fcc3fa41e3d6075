package json

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Number is a JSON number literal, such as "1516239022" or "1.5e-3".
type Number string

func (n Number) String() string {
	return string(n)
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 returns the number as an int64. Literals with a fraction or an
// exponent are accepted as long as they denote an integer in range,
// so "1e3" is 1000.
func (n Number) Int64() (int64, error) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err == nil {
		return i, nil
	}

	f, ferr := strconv.ParseFloat(string(n), 64)
	if ferr != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, err
	}
	return int64(f), nil
}

// valid reports whether n is exactly one JSON number literal.
func (n Number) valid() bool {
	s := string(n)
	// jsontext tolerates whitespace around a value; a literal may not have any.
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	v := jsontext.Value(s)
	return v.Kind() == '0' && v.IsValid()
}
