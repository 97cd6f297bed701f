// Package authz is the single authorization policy for the dashboard.
// Every service operation consults it before touching the store, so the
// role and ownership rules live in one place instead of being duplicated
// across handlers.
//
// Decisions are pure functions of (identity, operation, resource): no
// state, no I/O, fully testable in isolation.
package authz

import "github.com/Alisher1994/dbudget/internal/core/domain"

// CanListObjects reports whether the identity may list objects at all.
// Both roles may list; clients are additionally scoped by ObjectScope.
func CanListObjects(id domain.Identity) error {
	if id.IsZero() {
		return domain.ErrUnauthenticated
	}
	return nil
}

// ObjectScope returns the client_id the object result set must be
// filtered to. scoped is false for admins, who see every row.
func ObjectScope(id domain.Identity) (clientID int64, scoped bool) {
	if id.Role == domain.RoleClient {
		return id.UserID, true
	}
	return 0, false
}

// CanReadObject decides instance-level access. A client asking for an
// object they do not own gets ErrObjectNotFound rather than
// ErrForbidden, so existence of other tenants' objects never leaks.
func CanReadObject(id domain.Identity, obj *domain.ConstructionObject) error {
	if id.IsZero() {
		return domain.ErrUnauthenticated
	}
	if id.IsAdmin() {
		return nil
	}
	if obj.ClientID == nil || *obj.ClientID != id.UserID {
		return domain.ErrObjectNotFound
	}
	return nil
}

// CanWriteObjects gates create/update/delete on objects: admin only,
// regardless of ownership.
func CanWriteObjects(id domain.Identity) error {
	if id.IsZero() {
		return domain.ErrUnauthenticated
	}
	if !id.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanAccessUsers gates the whole users collection. Clients are denied
// with ErrForbidden, never an empty result.
func CanAccessUsers(id domain.Identity) error {
	if id.IsZero() {
		return domain.ErrUnauthenticated
	}
	if !id.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanDeleteUser additionally forbids an admin from deleting their own row.
func CanDeleteUser(id domain.Identity, targetID int64) error {
	if err := CanAccessUsers(id); err != nil {
		return err
	}
	if targetID == id.UserID {
		return domain.ErrSelfDeletion
	}
	return nil
}
