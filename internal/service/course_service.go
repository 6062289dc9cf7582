package service

import (
	"context"

	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo  *repository.CourseRepository
	teacherRepo *repository.TeacherRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, teacherRepo *repository.TeacherRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, teacherRepo: teacherRepo}
}

// GetByID retrieves a course with its assigned teacher.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Create inserts a course. The (name, level) unique constraint rejects
// duplicates.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Name:    req.Name,
		Level:   req.Level,
		Credits: req.Credits,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update applies the non-empty fields of req to the course.
func (s *CourseService) Update(ctx context.Context, id int, req *model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Level != "" {
		course.Level = req.Level
	}
	if req.Credits != 0 {
		course.Credits = req.Credits
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course. Enrollments cascade.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}

// AssignTeacher sets the teacher for a course after checking both exist.
func (s *CourseService) AssignTeacher(ctx context.Context, courseID, teacherID int) (*model.Course, error) {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	if err := s.courseRepo.AssignTeacher(ctx, courseID, teacherID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, courseID)
}
