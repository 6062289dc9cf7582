package repository

import (
	"context"
	"errors"

	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")

// EnrollmentRepository handles enrollment data access. Duplicate-enrollment
// safety comes from the (student_id, course_id) unique constraint, so
// concurrent enroll attempts cannot both succeed.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// Create inserts an enrollment linking a student to a course.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, course_id)
		 VALUES ($1, $2)
		 RETURNING id, enrolled_at`,
		e.StudentID, e.CourseID,
	).Scan(&e.ID, &e.EnrolledAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrDuplicateEnrollment
			case pgForeignKeyViolation:
				return ErrNotFound
			}
		}
		return err
	}
	return nil
}

// Delete removes the enrollment of a student in a course.
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID int) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCoursesForStudent retrieves the courses a student is enrolled in.
func (r *EnrollmentRepository) ListCoursesForStudent(ctx context.Context, studentID int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.name, c.level, c.credits, c.teacher_id, c.created_at, c.updated_at
		 FROM courses c
		 JOIN enrollments e ON e.course_id = c.id
		 WHERE e.student_id = $1
		 ORDER BY c.name, c.level`, studentID)
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
