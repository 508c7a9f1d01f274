// Package auth turns bearer tokens into user IDs. Two verifiers exist:
// HMAC JWTs for self-issued sessions and Firebase ID tokens.
package auth

import "context"

type Verifier interface {
	// Verify returns the user ID the token asserts, or an error if the
	// token is missing, malformed, expired, or signed by someone else.
	Verify(ctx context.Context, token string) (string, error)
}
