package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acadrec/acadrec-backend/internal/config"
	"github.com/acadrec/acadrec-backend/internal/database"
	"github.com/acadrec/acadrec-backend/internal/logger"
	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/repository"
	"github.com/acadrec/acadrec-backend/internal/service"
)

// Development fixtures: a handful of teachers, courses, students and
// enrollments so the API is explorable right after `migrate up`.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	authService := service.NewAuthService(cfg)
	studentService := service.NewStudentService(studentRepo, courseRepo, enrollmentRepo, authService)
	teacherService := service.NewTeacherService(teacherRepo, courseRepo, authService)
	courseService := service.NewCourseService(courseRepo, teacherRepo)

	fmt.Println("=== Seeding Development Fixtures ===")

	// All fixture accounts share one password so dev logins are easy.
	const devPassword = "correct-horse-battery"

	teachers := []model.CreateTeacherRequest{
		{FirstName: "Ada", LastName: "Lovelace", Title: "Prof.", Email: "ada.lovelace@school.test", Role: model.RoleAdmin},
		{FirstName: "Alan", LastName: "Turing", Title: "Dr.", Email: "alan.turing@school.test", Role: model.RoleTeacher},
		{FirstName: "Grace", LastName: "Hopper", Title: "Dr.", Email: "grace.hopper@school.test", Role: model.RoleTeacher},
	}

	teacherIDs := make([]int, 0, len(teachers))
	for i := range teachers {
		teachers[i].Password = devPassword
		teachers[i].ConfirmPassword = devPassword

		t, err := teacherService.Create(ctx, &teachers[i])
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateTeacherEmail) {
				fmt.Printf("Teacher %s already exists, skipping\n", teachers[i].Email)
				existing, err := teacherService.GetByEmail(ctx, teachers[i].Email)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to load existing teacher")
				}
				teacherIDs = append(teacherIDs, existing.ID)
				continue
			}
			log.Fatal().Err(err).Str("email", teachers[i].Email).Msg("Failed to create teacher")
		}
		teacherIDs = append(teacherIDs, t.ID)
		fmt.Printf("Created teacher %s %s (ID: %d)\n", t.FirstName, t.LastName, t.ID)
	}

	courses := []model.CreateCourseRequest{
		{Name: "Mathematics", Level: "101", Credits: 5},
		{Name: "Mathematics", Level: "201", Credits: 5},
		{Name: "Physics", Level: "101", Credits: 4},
		{Name: "Literature", Level: "101", Credits: 3},
	}

	courseIDs := make([]int, 0, len(courses))
	for i := range courses {
		course, err := courseService.Create(ctx, &courses[i])
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateCourse) {
				fmt.Printf("Course %s %s already exists, skipping\n", courses[i].Name, courses[i].Level)
				continue
			}
			log.Fatal().Err(err).Str("name", courses[i].Name).Msg("Failed to create course")
		}

		// Round-robin assign the non-admin teachers.
		teacherID := teacherIDs[1+i%(len(teacherIDs)-1)]
		if _, err := courseService.AssignTeacher(ctx, course.ID, teacherID); err != nil {
			log.Fatal().Err(err).Int("course_id", course.ID).Msg("Failed to assign teacher")
		}
		courseIDs = append(courseIDs, course.ID)
		fmt.Printf("Created course %s %s (ID: %d)\n", course.Name, course.Level, course.ID)
	}

	students := []model.RegisterStudentRequest{
		{FirstName: "Marie", LastName: "Curie", Email: "marie.curie@school.test"},
		{FirstName: "Isaac", LastName: "Newton", Email: "isaac.newton@school.test"},
		{FirstName: "Rosalind", LastName: "Franklin", Email: "rosalind.franklin@school.test"},
		{FirstName: "Niels", LastName: "Bohr", Email: "niels.bohr@school.test"},
		{FirstName: "Emmy", LastName: "Noether", Email: "emmy.noether@school.test"},
	}

	studentIDs := make([]int, 0, len(students))
	for i := range students {
		students[i].Password = devPassword
		students[i].ConfirmPassword = devPassword

		s, err := studentService.Register(ctx, &students[i])
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateStudentEmail) {
				fmt.Printf("Student %s already exists, skipping\n", students[i].Email)
				continue
			}
			log.Fatal().Err(err).Str("email", students[i].Email).Msg("Failed to create student")
		}
		studentIDs = append(studentIDs, s.ID)
		fmt.Printf("Created student %s %s (ID: %d)\n", s.FirstName, s.LastName, s.ID)
	}

	enrolled := 0
	for i, studentID := range studentIDs {
		// Each student takes two courses, staggered for variety.
		for j := 0; j < 2 && len(courseIDs) > 0; j++ {
			courseID := courseIDs[(i+j)%len(courseIDs)]
			if _, err := studentService.Enroll(ctx, studentID, courseID); err != nil {
				if errors.Is(err, repository.ErrDuplicateEnrollment) {
					continue
				}
				log.Fatal().Err(err).Int("student_id", studentID).Msg("Failed to enroll student")
			}
			enrolled++
		}
	}

	fmt.Printf("\nSeed completed! %d teachers, %d courses, %d students, %d enrollments.\n",
		len(teacherIDs), len(courseIDs), len(studentIDs), enrolled)
}
