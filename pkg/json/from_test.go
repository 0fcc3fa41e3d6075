package json_test

import (
	"testing"

	"github.com/lcobucci/jose-parsing/pkg/json"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: `null`},
		{name: "bool", input: false, want: `false`},
		{name: "string", input: "http://a.com", want: `"http://a.com"`},
		{name: "int", input: 1516239022, want: `1516239022`},
		{name: "uint64", input: uint64(18446744073709551615), want: `18446744073709551615`},
		{name: "float32", input: float32(0.1), want: `0.1`},
		{name: "float64", input: 0.1, want: `0.1`},
		{name: "number", input: json.Number("1e3"), want: `1e3`},
		{name: "strings", input: []string{"exp", "nbf"}, want: `["exp","nbf"]`},
		{name: "any slice", input: []any{1, "a", nil, true}, want: `[1,"a",null,true]`},
		{
			name:  "map members are sorted",
			input: map[string]any{"typ": "JWT", "alg": "HS256", "crit": []any{"exp"}},
			want:  `{"alg":"HS256","crit":["exp"],"typ":"JWT"}`,
		},
		{
			name:  "object",
			input: json.NewObject().Set("z", json.Null()).Set("a", json.Null()),
			want:  `{"z":null,"a":null}`,
		},
		{name: "value", input: json.StringValue("v"), want: `"v"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := json.From(test.input)
			require.NoError(t, err)

			s, err := json.Encode(v)
			require.NoError(t, err)
			require.Equal(t, test.want, s)
		})
	}
}

func TestFromUnsupported(t *testing.T) {
	_, err := json.From(struct{}{})
	require.Error(t, err)

	_, err = json.From(map[string]any{"ch": make(chan int)})
	require.ErrorContains(t, err, `member "ch"`)

	_, err = json.From([]any{1, complex(1, 2)})
	require.ErrorContains(t, err, "index 1")
}
