package router

import (
	"net/http"
	"time"

	"github.com/acadrec/acadrec-backend/internal/config"
	"github.com/acadrec/acadrec-backend/internal/handler"
	"github.com/acadrec/acadrec-backend/internal/middleware"
	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/policy"
	"github.com/acadrec/acadrec-backend/internal/response"
	"github.com/acadrec/acadrec-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Student *handler.StudentHandler
	Teacher *handler.TeacherHandler
	Course  *handler.CourseHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Each protected route declares exactly one policy requirement.
func SetupRouter(
	authService *service.AuthService,
	loginLimiter *middleware.LoginRateLimiter,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService)

	adminOnly := policy.RoleIn(model.RoleAdmin)
	staffOnly := policy.RoleIn(model.RoleAdmin, model.RoleTeacher)
	staffOrOwner := policy.RoleInOrOwner(model.RoleAdmin, model.RoleTeacher)
	adminOrOwner := policy.RoleInOrOwner(model.RoleAdmin)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/student/login", loginLimiter.Middleware(), handlers.Auth.StudentLogin)
		auth.POST("/teacher/login", loginLimiter.Middleware(), handlers.Auth.TeacherLogin)

		auth.GET("/me", requireAuth, handlers.Auth.Me)
	}

	// ─── 2. Students ───────────────────────────────────────────────────
	students := router.Group("/api/v1/students")
	{
		// Public self-registration.
		students.POST("", handlers.Student.Register)

		students.GET("", requireAuth,
			middleware.Authorize(staffOnly), handlers.Student.List)
		students.GET("/:id", requireAuth,
			middleware.AuthorizeOwner(staffOrOwner, "id"), handlers.Student.Get)
		students.PUT("/:id", requireAuth,
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Student.Update)
		students.PUT("/:id/password", requireAuth,
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Student.ChangePassword)
		students.DELETE("/:id", requireAuth,
			middleware.Authorize(adminOnly), handlers.Student.Delete)

		students.GET("/:id/courses", requireAuth,
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Student.Courses)
		students.POST("/:id/enrollments", requireAuth,
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Student.Enroll)
		students.DELETE("/:id/enrollments/:course_id", requireAuth,
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Student.Unenroll)
	}

	// ─── 3. Teachers ───────────────────────────────────────────────────
	teachers := router.Group("/api/v1/teachers")
	teachers.Use(requireAuth)
	{
		teachers.GET("", middleware.Authorize(adminOnly), handlers.Teacher.List)
		teachers.GET("/:id", middleware.Authorize(adminOnly), handlers.Teacher.Get)
		teachers.POST("", middleware.Authorize(adminOnly), handlers.Teacher.Create)
		teachers.PUT("/:id", middleware.Authorize(adminOnly), handlers.Teacher.Update)
		teachers.PUT("/:id/password",
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Teacher.ChangePassword)
		teachers.DELETE("/:id", middleware.Authorize(adminOnly), handlers.Teacher.Delete)

		teachers.GET("/:id/courses",
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Teacher.Courses)
		teachers.GET("/:id/courses/:course_id/students",
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Teacher.CourseStudents)
		teachers.GET("/:id/students",
			middleware.AuthorizeOwner(adminOrOwner, "id"), handlers.Teacher.Students)
	}

	// ─── 4. Courses ────────────────────────────────────────────────────
	courses := router.Group("/api/v1/courses")
	courses.Use(requireAuth)
	{
		courses.GET("", middleware.Authorize(staffOnly), handlers.Course.List)
		courses.GET("/:id", middleware.Authorize(staffOnly), handlers.Course.Get)
		courses.POST("", middleware.Authorize(adminOnly), handlers.Course.Create)
		courses.PUT("/:id", middleware.Authorize(adminOnly), handlers.Course.Update)
		courses.DELETE("/:id", middleware.Authorize(adminOnly), handlers.Course.Delete)
		courses.PUT("/:id/teacher/:teacher_id",
			middleware.Authorize(adminOnly), handlers.Course.AssignTeacher)
	}

	return router
}
