package header_test

import (
	"errors"
	"testing"

	jose "github.com/lcobucci/jose-parsing/pkg"
	"github.com/lcobucci/jose-parsing/pkg/base64"
	"github.com/lcobucci/jose-parsing/pkg/header"
	"github.com/lcobucci/jose-parsing/pkg/json"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, params *header.Parameters)
	}{
		{
			name:  "typ and alg",
			input: `{"typ":"JWT","alg":"HS256"}`,
			check: func(t *testing.T, params *header.Parameters) {
				typ, err := params.Type()
				require.NoError(t, err)
				require.Equal(t, header.TypeJWT, typ)

				alg, err := params.Algorithm()
				require.NoError(t, err)
				require.Equal(t, "HS256", alg)

				require.Equal(t, []string{header.Type, header.Algorithm}, params.Names())
			},
		},
		{
			name:  "typ and alg and kid",
			input: `{"typ":"JWT","alg":"HS256","kid":"key-id"}`,
			check: func(t *testing.T, params *header.Parameters) {
				kid, err := params.KeyID()
				require.NoError(t, err)
				require.Equal(t, "key-id", kid)

				value, err := params.Get(header.KeyID)
				require.NoError(t, err)
				require.Equal(t, json.StringValue("key-id"), value)
			},
		},
		{
			name:  "typ and alg and kid and crit",
			input: `{"typ":"JWT","alg":"HS256","kid":"key-id","crit":["exp","nbf"]}`,
			check: func(t *testing.T, params *header.Parameters) {
				crit, err := params.Critical()
				require.NoError(t, err)
				require.Equal(t, []string{"exp", "nbf"}, crit)

				require.True(t, params.IsCritical("exp"))
				require.False(t, params.IsCritical("iat"))
			},
		},
		{
			name:  "missing typ",
			input: `{"alg":"HS256"}`,
			check: func(t *testing.T, params *header.Parameters) {
				typ, err := params.Type()
				require.Error(t, err)
				require.ErrorIs(t, err, header.ErrParameterNotFound)
				require.Equal(t, "", typ)
			},
		},
		{
			name:  "missing alg",
			input: `{"typ":"JWT"}`,
			check: func(t *testing.T, params *header.Parameters) {
				alg, err := params.Algorithm()
				require.Error(t, err)
				require.ErrorIs(t, err, header.ErrParameterNotFound)
				require.Equal(t, "", alg)

				_, err = params.Critical()
				require.ErrorIs(t, err, header.ErrParameterNotFound)
				require.False(t, params.IsCritical("exp"))
			},
		},
		{
			name:  "invalid typ",
			input: `{"typ":123,"alg":"HS256"}`,
			check: func(t *testing.T, params *header.Parameters) {
				typ, err := params.Type()
				require.Error(t, err)
				require.ErrorIs(t, err, header.ErrInvalidParameterType)
				require.Equal(t, "", typ)
			},
		},
		{
			name:  "invalid alg",
			input: `{"typ":"JWT","alg":123}`,
			check: func(t *testing.T, params *header.Parameters) {
				alg, err := params.Algorithm()
				require.Error(t, err)
				require.ErrorIs(t, err, header.ErrInvalidParameterType)
				require.Equal(t, "", alg)
			},
		},
		{
			name:  "invalid crit",
			input: `{"alg":"HS256","crit":["exp",1]}`,
			check: func(t *testing.T, params *header.Parameters) {
				_, err := params.Critical()
				require.ErrorIs(t, err, header.ErrInvalidParameterType)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := header.Parse(base64.Encode([]byte(test.input)))
			require.NoError(t, err)

			test.check(t, params)

			// Re-encoding keeps the original text.
			segment, err := params.Base64URLString()
			require.NoError(t, err)
			require.Equal(t, base64.Encode([]byte(test.input)), segment)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := header.Parse("!!!")
	require.Error(t, err)
	var codecErr *jose.Error
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, jose.MessageBase64Decode, codecErr.Message)

	_, err = header.Parse(base64.Encode([]byte(`{"alg":'none'}`)))
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, jose.MessageJSONDecode, codecErr.Message)

	_, err = header.Parse(base64.Encode([]byte(`["alg"]`)))
	require.ErrorIs(t, err, header.ErrNotAnObject)
}

func TestBase64URLString(t *testing.T) {
	params := header.New().
		SetString(header.Algorithm, "HS256").
		SetString(header.Type, header.TypeJWT)

	segment, err := params.Base64URLString()
	require.NoError(t, err)
	require.Equal(t, "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", segment)

	params.SetString(header.JWKSetURL, "https://example.com/jwks.json")
	require.Equal(t, `{"alg":"HS256","typ":"JWT","jku":"https://example.com/jwks.json"}`, params.Value().String())
	require.Equal(t, 3, params.Len())

	params.SetString(header.KeyID, "\xB1\x31")
	_, err = params.Base64URLString()
	require.Error(t, err)
	var codecErr *jose.Error
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, jose.MessageJSONEncode, codecErr.Message)
}
