package policy

import (
	"testing"

	"github.com/acadrec/acadrec-backend/internal/model"
)

func TestRoleIn(t *testing.T) {
	req := RoleIn(model.RoleAdmin)

	tests := []struct {
		name string
		p    Principal
		want bool
	}{
		{"admin allowed", Principal{ID: 1, Role: model.RoleAdmin}, true},
		{"teacher denied", Principal{ID: 1, Role: model.RoleTeacher}, false},
		{"student denied", Principal{ID: 1, Role: model.RoleStudent}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ownership must have no effect without an Owner clause, even
			// when the ids happen to match.
			if got := req.Allows(tt.p, tt.p.ID); got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleInMultiple(t *testing.T) {
	req := RoleIn(model.RoleAdmin, model.RoleTeacher)

	if !req.Allows(Principal{ID: 5, Role: model.RoleTeacher}, 0) {
		t.Error("teacher should pass RoleIn{admin, teacher}")
	}
	if req.Allows(Principal{ID: 5, Role: model.RoleStudent}, 5) {
		t.Error("student should not pass RoleIn{admin, teacher} via id match")
	}
}

func TestRoleInOrOwner(t *testing.T) {
	req := RoleInOrOwner(model.RoleAdmin)

	// All four combinations of (role match, id match).
	tests := []struct {
		name    string
		p       Principal
		ownerID int
		want    bool
	}{
		{"role match, id match", Principal{ID: 1, Role: model.RoleAdmin}, 1, true},
		{"role match, id mismatch", Principal{ID: 1, Role: model.RoleAdmin}, 2, true},
		{"role mismatch, id match", Principal{ID: 1, Role: model.RoleStudent}, 1, true},
		{"role mismatch, id mismatch", Principal{ID: 1, Role: model.RoleStudent}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := req.Allows(tt.p, tt.ownerID); got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyAuthenticated(t *testing.T) {
	req := AnyAuthenticated()

	for _, role := range []model.UserRole{model.RoleStudent, model.RoleTeacher, model.RoleAdmin} {
		if !req.Allows(Principal{ID: 9, Role: role}, 0) {
			t.Errorf("AnyAuthenticated should admit role %q", role)
		}
	}
}

func TestOwnerOnly(t *testing.T) {
	req := OwnerOnly()

	if !req.Allows(Principal{ID: 3, Role: model.RoleStudent}, 3) {
		t.Error("owner should pass OwnerOnly")
	}
	if req.Allows(Principal{ID: 3, Role: model.RoleAdmin}, 4) {
		t.Error("non-owner admin should not pass OwnerOnly")
	}
}
