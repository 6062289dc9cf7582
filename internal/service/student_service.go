package service

import (
	"context"

	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/repository"
	"github.com/acadrec/acadrec-backend/internal/response"
)

// StudentService handles student business logic, including enrollment.
type StudentService struct {
	studentRepo    *repository.StudentRepository
	courseRepo     *repository.CourseRepository
	enrollmentRepo *repository.EnrollmentRepository
	authService    *AuthService
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	authService *AuthService,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		authService:    authService,
	}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a student by email.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return s.studentRepo.GetByEmail(ctx, email)
}

// List retrieves students with pagination.
func (s *StudentService) List(ctx context.Context, page, perPage int) ([]model.Student, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	students, total, err := s.studentRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if students == nil {
		students = []model.Student{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return students, pagination, nil
}

// Register creates a student account with a freshly hashed password.
// Password/confirmation equality is enforced at binding time.
func (s *StudentService) Register(ctx context.Context, req *model.RegisterStudentRequest) (*model.Student, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update applies the non-empty fields of req to the student's profile.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		student.FirstName = req.FirstName
	}
	if req.LastName != "" {
		student.LastName = req.LastName
	}
	if req.Email != "" {
		student.Email = req.Email
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// ChangePassword replaces the student's password hash. When verifyCurrent
// is set the supplied current password must match the stored hash;
// a mismatch yields ErrInvalidCredentials.
func (s *StudentService) ChangePassword(ctx context.Context, id int, currentPassword, newPassword string, verifyCurrent bool) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if verifyCurrent {
		if err := s.authService.CheckPassword(student.PasswordHash, currentPassword); err != nil {
			return err
		}
	}

	hash, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.studentRepo.UpdatePassword(ctx, id, hash)
}

// Delete removes a student. Enrollments cascade at the storage layer.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}

// Enroll links the student to a course. The unique constraint on
// (student_id, course_id) rejects concurrent duplicate attempts.
func (s *StudentService) Enroll(ctx context.Context, studentID, courseID int) (*model.Enrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &model.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Unenroll removes the student's enrollment in a course.
func (s *StudentService) Unenroll(ctx context.Context, studentID, courseID int) error {
	return s.enrollmentRepo.Delete(ctx, studentID, courseID)
}

// EnrolledCourses lists the courses the student is enrolled in.
func (s *StudentService) EnrolledCourses(ctx context.Context, studentID int) ([]model.Course, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	courses, err := s.enrollmentRepo.ListCoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}
