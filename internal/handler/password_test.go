package handler

import (
	"testing"

	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/service"
)

func TestRequireCurrentPassword(t *testing.T) {
	tests := []struct {
		name   string
		claims *service.Claims
		isOwn  bool
		want   bool
	}{
		{
			name:   "student changing own password",
			claims: &service.Claims{UserID: 1, Role: model.RoleStudent},
			isOwn:  true,
			want:   true,
		},
		{
			// A teacher whose id equals the student path id passes the
			// ownership policy, but must still prove the old password.
			name:   "teacher id colliding with student id",
			claims: &service.Claims{UserID: 3, Role: model.RoleTeacher},
			isOwn:  false,
			want:   true,
		},
		{
			name:   "teacher changing own password",
			claims: &service.Claims{UserID: 7, Role: model.RoleTeacher},
			isOwn:  true,
			want:   true,
		},
		{
			name:   "admin resetting someone else's password",
			claims: &service.Claims{UserID: 99, Role: model.RoleAdmin},
			isOwn:  false,
			want:   false,
		},
		{
			name:   "admin changing own password",
			claims: &service.Claims{UserID: 99, Role: model.RoleAdmin},
			isOwn:  true,
			want:   true,
		},
		{
			name:   "missing claims",
			claims: nil,
			isOwn:  false,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requireCurrentPassword(tt.claims, tt.isOwn); got != tt.want {
				t.Errorf("requireCurrentPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
