// Package session owns the current-session lifecycle: the credential issued
// by the backend, the profile snapshot persisted alongside it, and the
// stores that keep exactly one of them at a time.
package session

// Role is the closed set of user roles known to the portale backend.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleEmployee Role = "employee"
)

// User is the flat profile record persisted alongside the credential.
// The core never mutates it; it travels as a unit.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Status    string `json:"status"`
	CompanyID *int64 `json:"company_id,omitempty"`
}

// Credential is the opaque token issued by the backend plus its optional
// scheme label (typically "Bearer").
type Credential struct {
	Token  string `json:"token"`
	Scheme string `json:"token_type,omitempty"`
}

// HeaderValue composes the header-ready Authorization string: scheme and
// token separated by a single space, or the bare token when no scheme was
// issued. This composed form is what gets persisted; it is never stored in
// two pieces.
func (c Credential) HeaderValue() string {
	if c.Scheme == "" {
		return c.Token
	}
	return c.Scheme + " " + c.Token
}

// Session couples one credential with one user profile. It is created whole
// by a successful login and destroyed whole by logout; there is no partial
// update.
type Session struct {
	Credential Credential
	User       User
}
