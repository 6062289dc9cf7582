package service

import (
	"context"

	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/repository"
)

// TeacherService handles teacher/admin business logic.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
	courseRepo  *repository.CourseRepository
	authService *AuthService
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(
	teacherRepo *repository.TeacherRepository,
	courseRepo *repository.CourseRepository,
	authService *AuthService,
) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
		courseRepo:  courseRepo,
		authService: authService,
	}
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a teacher by email.
func (s *TeacherService) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return s.teacherRepo.GetByEmail(ctx, email)
}

// List retrieves all teachers.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	return teachers, nil
}

// Create inserts a teacher account. The role defaults to teacher unless
// the request says admin.
func (s *TeacherService) Create(ctx context.Context, req *model.CreateTeacherRequest) (*model.Teacher, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleTeacher
	}

	teacher := &model.Teacher{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Title:        req.Title,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// Update applies the non-empty fields of req to the teacher's profile.
func (s *TeacherService) Update(ctx context.Context, id int, req *model.UpdateTeacherRequest) (*model.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		teacher.FirstName = req.FirstName
	}
	if req.LastName != "" {
		teacher.LastName = req.LastName
	}
	if req.Title != "" {
		teacher.Title = req.Title
	}
	if req.Email != "" {
		teacher.Email = req.Email
	}
	if req.Role != "" {
		teacher.Role = req.Role
	}

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// ChangePassword replaces the teacher's password hash. When verifyCurrent
// is set the supplied current password must match the stored hash.
func (s *TeacherService) ChangePassword(ctx context.Context, id int, currentPassword, newPassword string, verifyCurrent bool) error {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if verifyCurrent {
		if err := s.authService.CheckPassword(teacher.PasswordHash, currentPassword); err != nil {
			return err
		}
	}

	hash, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.teacherRepo.UpdatePassword(ctx, id, hash)
}

// Delete removes a teacher. Their courses keep existing unassigned.
func (s *TeacherService) Delete(ctx context.Context, id int) error {
	return s.teacherRepo.Delete(ctx, id)
}

// Courses lists the courses assigned to a teacher.
func (s *TeacherService) Courses(ctx context.Context, teacherID int) ([]model.Course, error) {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// StudentsInCourse lists the students enrolled in a course. The course
// does not have to be assigned to the requesting teacher; any teacher
// may consult any roster.
func (s *TeacherService) StudentsInCourse(ctx context.Context, teacherID, courseID int) ([]model.Student, error) {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	students, err := s.courseRepo.ListStudentsInCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// AllStudents lists every student enrolled in any of the teacher's courses.
func (s *TeacherService) AllStudents(ctx context.Context, teacherID int) ([]model.Student, error) {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	students, err := s.courseRepo.ListStudentsForTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}
