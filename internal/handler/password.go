package handler

import (
	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/service"
)

// requireCurrentPassword reports whether the caller must prove the old
// password before it is replaced. Every non-admin verifies, including a
// teacher whose numeric id happens to match the target student's id (ids
// are only unique within a kind, so such collisions occur). An admin
// skips verification unless changing their own account (isOwn).
func requireCurrentPassword(claims *service.Claims, isOwn bool) bool {
	if claims == nil {
		return true
	}
	if claims.Role != model.RoleAdmin {
		return true
	}
	return isOwn
}
