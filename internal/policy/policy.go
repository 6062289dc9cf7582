// Package policy holds the access-control decision logic shared by every
// protected endpoint. Each route declares one Requirement; the middleware
// layer feeds it the authenticated Principal and, when relevant, the owner
// id extracted from the request path.
package policy

import "github.com/acadrec/acadrec-backend/internal/model"

// Principal is the identity established by token verification. It is
// passed explicitly; handlers never read a raw token.
type Principal struct {
	ID    int
	Email string
	Role  model.UserRole
}

// Requirement declares who may perform an operation. An empty Requirement
// admits any authenticated principal. When Owner is set, a principal whose
// ID equals the operation's owner id passes even without a matching role.
type Requirement struct {
	Roles []model.UserRole
	Owner bool
}

// AnyAuthenticated admits every valid principal.
func AnyAuthenticated() Requirement {
	return Requirement{}
}

// RoleIn admits principals whose role is in the given set.
func RoleIn(roles ...model.UserRole) Requirement {
	return Requirement{Roles: roles}
}

// RoleInOrOwner admits principals whose role is in the given set, or whose
// id equals the operation's owner id.
func RoleInOrOwner(roles ...model.UserRole) Requirement {
	return Requirement{Roles: roles, Owner: true}
}

// OwnerOnly admits only the owner, regardless of role.
func OwnerOnly() Requirement {
	return Requirement{Owner: true}
}

// Allows reports whether p satisfies the requirement. ownerID is ignored
// unless the requirement has an ownership clause. The role check runs
// first; ownership is only consulted when no role matches.
func (r Requirement) Allows(p Principal, ownerID int) bool {
	for _, role := range r.Roles {
		if p.Role == role {
			return true
		}
	}
	if r.Owner {
		return p.ID == ownerID
	}
	// No role list and no ownership clause: any authenticated principal.
	return len(r.Roles) == 0
}
