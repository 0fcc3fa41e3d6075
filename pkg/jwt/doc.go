// Package jwt encodes and decodes the claims set carried in the payload
// segment of a JSON Web Token (JWT).
//
// Claims keep the order they were set or decoded in, so a parsed claims
// set encodes back to the same segment. Signing and verification are left
// to the caller.
package jwt
