package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acadrec/acadrec-backend/internal/config"
	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/policy"
	"github.com/acadrec/acadrec-backend/internal/service"
	"github.com/gin-gonic/gin"
)

func newTestAuthService(expiry time.Duration) *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret:  "middleware-test-secret",
		JWTExpiry:  expiry,
		BcryptCost: 4,
	})
}

// newTestRouter wires the student-by-id route the way the real router does.
func newTestRouter(authService *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r.GET("/students/:id",
		RequireAuth(authService),
		AuthorizeOwner(policy.RoleInOrOwner(model.RoleAdmin, model.RoleTeacher), "id"),
		ok,
	)
	r.DELETE("/students/:id",
		RequireAuth(authService),
		Authorize(policy.RoleIn(model.RoleAdmin)),
		ok,
	)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingToken(t *testing.T) {
	r := newTestRouter(newTestAuthService(time.Hour))

	if w := doRequest(t, r, http.MethodGet, "/students/1", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
}

func TestGarbageToken(t *testing.T) {
	r := newTestRouter(newTestAuthService(time.Hour))

	if w := doRequest(t, r, http.MethodGet, "/students/1", "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	expired := newTestAuthService(-time.Minute)
	r := newTestRouter(newTestAuthService(time.Hour))

	token, err := expired.GenerateToken(1, "s1@example.com", model.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := doRequest(t, r, http.MethodGet, "/students/1", token); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestStudentOwnership(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	r := newTestRouter(authService)

	token, err := authService.GenerateToken(1, "s1@example.com", model.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Student 1 may read their own record but not student 2's.
	if w := doRequest(t, r, http.MethodGet, "/students/1", token); w.Code != http.StatusOK {
		t.Errorf("own record: status = %d, want 200", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, "/students/2", token); w.Code != http.StatusForbidden {
		t.Errorf("other student's record: status = %d, want 403", w.Code)
	}
}

func TestRoleBypassesOwnership(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	r := newTestRouter(authService)

	for _, role := range []model.UserRole{model.RoleAdmin, model.RoleTeacher} {
		token, _ := authService.GenerateToken(99, "staff@example.com", role)
		if w := doRequest(t, r, http.MethodGet, "/students/2", token); w.Code != http.StatusOK {
			t.Errorf("role %s: status = %d, want 200", role, w.Code)
		}
	}
}

func TestAdminOnlyRoute(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	r := newTestRouter(authService)

	adminToken, _ := authService.GenerateToken(99, "admin@example.com", model.RoleAdmin)
	if w := doRequest(t, r, http.MethodDelete, "/students/1", adminToken); w.Code != http.StatusOK {
		t.Errorf("admin delete: status = %d, want 200", w.Code)
	}

	// Ownership must not grant access to an admin-only route.
	studentToken, _ := authService.GenerateToken(1, "s1@example.com", model.RoleStudent)
	if w := doRequest(t, r, http.MethodDelete, "/students/1", studentToken); w.Code != http.StatusForbidden {
		t.Errorf("student deleting self: status = %d, want 403", w.Code)
	}
}

func TestNonNumericOwnerParam(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	r := newTestRouter(authService)

	token, _ := authService.GenerateToken(1, "s1@example.com", model.RoleStudent)
	if w := doRequest(t, r, http.MethodGet, "/students/abc", token); w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id: status = %d, want 400", w.Code)
	}
}
