package domain

// Identity is the per-login context established at session resolution
// and carried through every service call. It is request-scoped state,
// never persisted with the user row.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsZero reports whether the identity is unauthenticated.
func (i Identity) IsZero() bool {
	return i.UserID == 0 && i.Username == "" && i.Role == ""
}
