// Package jose holds the error type shared by the JOSE parsing packages,
// which encode and decode the JSON and base64url building blocks of JOSE
// objects.
//
//   - pkg/json    compact JSON with ordered objects
//   - pkg/base64  base64url without padding
//   - pkg/parser  both of the above behind one Parser
//   - pkg/header  JOSE header segments
//   - pkg/jwt     JWT claims set segments
//
// Related RFCs:
//   - RFC4648 https://www.rfc-editor.org/rfc/rfc4648#section-5 Base64URL
//   - RFC7515 https://datatracker.ietf.org/doc/html/rfc7515 JWS, JSON Web Signature
//   - RFC7516 https://datatracker.ietf.org/doc/html/rfc7516 JWE, JSON Web Encryption
//   - RFC7519 https://datatracker.ietf.org/doc/html/rfc7519 JWT, JSON Web Token
//   - RFC7520 https://datatracker.ietf.org/doc/html/rfc7520 JOSE Cookbook
//
// Related Information:
//   - https://datatracker.ietf.org/wg/jose/charter/
package jose
