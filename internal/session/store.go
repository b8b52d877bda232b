package session

import "context"

// The two fixed keys the session occupies in the local store. There is no
// versioning or migration scheme for their contents.
const (
	keyToken = "auth_token"
	keyUser  = "auth_user"
)

// Store is the single source of truth for "is there a logged-in session,
// and what is it". All operations are best-effort: persistence failures are
// logged, never surfaced, so a flaky local disk can not crash a logout.
//
// Concurrent Save and Clear calls race with last-write-wins semantics; that
// is an accepted hazard of the single-session model, not a defect.
type Store interface {
	// Save persists the composed header-ready credential and the serialized
	// user profile, replacing any prior session.
	Save(ctx context.Context, s Session)

	// Token returns the header-ready Authorization value, or "" when no
	// session is stored or the read fails.
	Token(ctx context.Context) string

	// User returns the stored profile snapshot, or nil when none is stored
	// or deserialization fails.
	User(ctx context.Context) *User

	// Clear removes both keys.
	Clear(ctx context.Context)

	// Logout ends the session locally. Today it only clears; server-side
	// invalidation would hook in here.
	Logout(ctx context.Context)
}
