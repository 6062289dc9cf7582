package repository

import (
	"context"
	"errors"

	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateCourse = errors.New("course with this name and level already exists")

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// courseWithTeacherQuery selects courses with the assigned teacher joined
// in, mirroring the eager relation the API exposes.
const courseWithTeacherQuery = `
	SELECT c.id, c.name, c.level, c.credits, c.teacher_id, c.created_at, c.updated_at,
	       t.id, t.first_name, t.last_name, t.title, t.email, t.role
	FROM courses c
	LEFT JOIN teachers t ON t.id = c.teacher_id`

func scanCourseWithTeacher(row pgx.Row) (*model.Course, error) {
	c := &model.Course{}
	var (
		tID    *int
		tFirst *string
		tLast  *string
		tTitle *string
		tEmail *string
		tRole  *model.UserRole
	)
	err := row.Scan(&c.ID, &c.Name, &c.Level, &c.Credits, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
		&tID, &tFirst, &tLast, &tTitle, &tEmail, &tRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tID != nil {
		c.Teacher = &model.Teacher{
			ID:        *tID,
			FirstName: *tFirst,
			LastName:  *tLast,
			Title:     *tTitle,
			Email:     *tEmail,
			Role:      *tRole,
		}
	}
	return c, nil
}

// GetByID retrieves a course with its assigned teacher.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourseWithTeacher(r.pool.QueryRow(ctx, courseWithTeacherQuery+` WHERE c.id = $1`, id))
}

// List retrieves all courses with their assigned teachers.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, courseWithTeacherQuery+` ORDER BY c.name, c.level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourseWithTeacher(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// ListByTeacher retrieves the courses assigned to a teacher.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, level, credits, teacher_id, created_at, updated_at
		 FROM courses WHERE teacher_id = $1 ORDER BY name, level`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Level, &c.Credits, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Create inserts a new course. The (name, level) pair is unique.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, level, credits)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Level, c.Credits,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateCourse
		}
		return err
	}
	return nil
}

// Update modifies a course's name, level and credits.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE courses SET name = $1, level = $2, credits = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		c.Name, c.Level, c.Credits, c.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateCourse
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a course by ID. Enrollments cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignTeacher sets the teacher for a course. Returns ErrNotFound when
// either the course or the teacher does not exist.
func (r *CourseRepository) AssignTeacher(ctx context.Context, courseID, teacherID int) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE courses SET teacher_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		teacherID, courseID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrNotFound
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListStudentsInCourse retrieves the students enrolled in a course.
func (r *CourseRepository) ListStudentsInCourse(ctx context.Context, courseID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.first_name, s.last_name, s.email, s.password_hash, s.created_at, s.updated_at
		 FROM students s
		 JOIN enrollments e ON e.student_id = s.id
		 WHERE e.course_id = $1
		 ORDER BY s.last_name, s.first_name`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

// ListStudentsForTeacher retrieves every student enrolled in any course
// assigned to the teacher, without duplicates.
func (r *CourseRepository) ListStudentsForTeacher(ctx context.Context, teacherID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT s.id, s.first_name, s.last_name, s.email, s.password_hash, s.created_at, s.updated_at
		 FROM students s
		 JOIN enrollments e ON e.student_id = s.id
		 JOIN courses c ON c.id = e.course_id
		 WHERE c.teacher_id = $1
		 ORDER BY s.last_name, s.first_name`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]model.Student, error) {
	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
