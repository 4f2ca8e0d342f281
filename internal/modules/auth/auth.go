package auth

import "context"

// Service defines the access-code gate: one shared code unlocks the app for
// a session.
type Service interface {
	// Unlock compares the access code against the configured hash and
	// returns a session token.
	Unlock(ctx context.Context, accessCode string) (string, error)
}
