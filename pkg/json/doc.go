// Package json encodes and decodes the JSON text carried by JOSE objects.
//
// Values are represented by Value, a tagged variant over null, booleans,
// numbers, strings, arrays and objects. Objects keep their members in
// insertion order, so a header decoded from a token encodes back with the
// same member order it arrived with.
//
// Encoded output is compact, never escapes "/" and writes non-ASCII text
// as literal UTF-8:
//
//	v := json.ObjectValue(json.NewObject().
//		Set("iss", json.StringValue("https://example.com/")).
//		Set("name", json.StringValue("汉语")))
//
//	s, _ := json.Encode(v) // {"iss":"https://example.com/","name":"汉语"}
//
// Numbers are kept as their literal text (see Number), which makes
// Decode(Encode(v)) reproduce v exactly.
//
// All failures are reported as a *jose.Error.
package json
