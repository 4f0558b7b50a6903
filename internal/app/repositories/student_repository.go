package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/db"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/ndthanh/studentms/internal/pkg/dberrors"
	"github.com/ndthanh/studentms/internal/pkg/helpers"
)

// StudentRepository handles database operations for students and their paired
// user accounts.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

var studentColumns = []string{
	"id", "user_id", "student_code", "full_name", "email", "phone", "address",
	"hometown", "id_card", "date_of_birth", "gender", "class_id",
	"gpa", "academic_status", "accumulated_credits", "study_status",
	"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relation",
	"ethnicity", "religion", "nationality", "avatar_url",
	"high_school", "graduation_year", "university_entrance_score",
	"extracurricular_activities", "achievements", "special_skills",
	"created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.UserID, &s.StudentCode, &s.FullName, &s.Email, &s.Phone, &s.Address,
		&s.Hometown, &s.IDCard, &s.DateOfBirth, &s.Gender, &s.ClassID,
		&s.GPA, &s.AcademicStatus, &s.AccumulatedCredits, &s.StudyStatus,
		&s.EmergencyContactName, &s.EmergencyContactPhone, &s.EmergencyContactRelation,
		&s.Ethnicity, &s.Religion, &s.Nationality, &s.AvatarURL,
		&s.HighSchool, &s.GraduationYear, &s.UniversityEntranceScore,
		&s.ExtracurricularActivities, &s.Achievements, &s.SpecialSkills,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return &s, nil
}

// applyStudentFilters adds the AND-combined listing filters to a select builder.
func applyStudentFilters(builder squirrel.SelectBuilder, q *dto.StudentListQuery) squirrel.SelectBuilder {
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"student_code": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	if q.ClassID != nil {
		builder = builder.Where(squirrel.Eq{"class_id": *q.ClassID})
	}
	if q.Gender != "" {
		builder = builder.Where(squirrel.Eq{"gender": q.Gender})
	}
	if q.AcademicStatus != "" {
		builder = builder.Where(squirrel.Eq{"academic_status": q.AcademicStatus})
	}
	if q.StudyStatus != "" {
		builder = builder.Where(squirrel.Eq{"study_status": q.StudyStatus})
	}
	if q.MinGPA != nil {
		builder = builder.Where(squirrel.GtOrEq{"gpa": *q.MinGPA})
	}
	if q.MaxGPA != nil {
		builder = builder.Where(squirrel.LtOrEq{"gpa": *q.MaxGPA})
	}
	return builder
}

// List returns one page of students matching the filters plus the total count
// of matching rows independent of pagination. Ordering is by id ascending so
// page boundaries are stable.
func (r *StudentRepository) List(ctx context.Context, q *dto.StudentListQuery) ([]*models.Student, int64, error) {
	countBuilder := applyStudentFilters(
		squirrel.Select("COUNT(*)").From("students").PlaceholderFormat(squirrel.Dollar), q)

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)
	pageBuilder := applyStudentFilters(
		squirrel.Select(studentColumns...).From("students").PlaceholderFormat(squirrel.Dollar), q).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset)

	pageSQL, pageArgs, err := pageBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	builder := squirrel.Select(studentColumns...).From("students").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetByUserID retrieves the student paired with the given user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	builder := squirrel.Select(studentColumns...).From("students").
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// CreateWithUser atomically creates the student row and its paired user
// account (username = email, role STUDENT). Either both rows persist or
// neither does.
func (r *StudentRepository) CreateWithUser(ctx context.Context, student *models.Student, passwordHash string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if student.ClassID != nil {
			var exists bool
			err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`, *student.ClassID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("error checking class existence: %w", err)
			}
			if !exists {
				return apperrors.ErrClassNotFound
			}
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO users (username, password, role, is_active)
			VALUES ($1, $2, $3, TRUE)
			RETURNING id`,
			student.Email, passwordHash, models.RoleStudent).Scan(&student.UserID)
		if err != nil {
			return mapStudentWriteError(err)
		}

		insert := squirrel.Insert("students").
			Columns(
				"user_id", "student_code", "full_name", "email", "phone", "address",
				"hometown", "id_card", "date_of_birth", "gender", "class_id",
				"gpa", "academic_status", "accumulated_credits", "study_status",
				"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relation",
				"ethnicity", "religion", "nationality", "avatar_url",
				"high_school", "graduation_year", "university_entrance_score",
				"extracurricular_activities", "achievements", "special_skills",
			).
			Values(
				student.UserID, student.StudentCode, student.FullName, student.Email,
				student.Phone, student.Address,
				student.Hometown, student.IDCard, student.DateOfBirth, student.Gender, student.ClassID,
				student.GPA, student.AcademicStatus, student.AccumulatedCredits, student.StudyStatus,
				student.EmergencyContactName, student.EmergencyContactPhone, student.EmergencyContactRelation,
				student.Ethnicity, student.Religion, student.Nationality, student.AvatarURL,
				student.HighSchool, student.GraduationYear, student.UniversityEntranceScore,
				student.ExtracurricularActivities, student.Achievements, student.SpecialSkills,
			).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt); err != nil {
			return mapStudentWriteError(err)
		}

		return nil
	})
}

// Update applies the non-nil fields of the request to a student. When class_id
// is among the supplied fields its existence is re-validated inside the same
// transaction.
func (r *StudentRepository) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if req.ClassID != nil {
			var exists bool
			err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`, *req.ClassID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("error checking class existence: %w", err)
			}
			if !exists {
				return apperrors.ErrClassNotFound
			}
		}

		builder := buildStudentUpdate(id, req)

		sql, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return mapStudentWriteError(err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// buildStudentUpdate assembles the partial UPDATE statement for a student.
func buildStudentUpdate(id int64, req *dto.UpdateStudentRequest) squirrel.UpdateBuilder {
	builder := squirrel.Update("students").
		Set("updated_at", time.Now()).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if req.FullName != nil {
		builder = builder.Set("full_name", *req.FullName)
	}
	if req.Email != nil {
		builder = builder.Set("email", *req.Email)
	}
	if req.Phone != nil {
		builder = builder.Set("phone", *req.Phone)
	}
	if req.Address != nil {
		builder = builder.Set("address", *req.Address)
	}
	if req.Hometown != nil {
		builder = builder.Set("hometown", *req.Hometown)
	}
	if req.IDCard != nil {
		builder = builder.Set("id_card", *req.IDCard)
	}
	if req.DateOfBirth != nil {
		builder = builder.Set("date_of_birth", *req.DateOfBirth)
	}
	if req.Gender != nil {
		builder = builder.Set("gender", *req.Gender)
	}
	if req.ClassID != nil {
		builder = builder.Set("class_id", *req.ClassID)
	}
	if req.GPA != nil {
		builder = builder.Set("gpa", *req.GPA)
	}
	if req.AcademicStatus != nil {
		builder = builder.Set("academic_status", *req.AcademicStatus)
	}
	if req.AccumulatedCredits != nil {
		builder = builder.Set("accumulated_credits", *req.AccumulatedCredits)
	}
	if req.StudyStatus != nil {
		builder = builder.Set("study_status", *req.StudyStatus)
	}
	if req.EmergencyContactName != nil {
		builder = builder.Set("emergency_contact_name", *req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		builder = builder.Set("emergency_contact_phone", *req.EmergencyContactPhone)
	}
	if req.EmergencyContactRelation != nil {
		builder = builder.Set("emergency_contact_relation", *req.EmergencyContactRelation)
	}
	if req.Ethnicity != nil {
		builder = builder.Set("ethnicity", *req.Ethnicity)
	}
	if req.Religion != nil {
		builder = builder.Set("religion", *req.Religion)
	}
	if req.Nationality != nil {
		builder = builder.Set("nationality", *req.Nationality)
	}
	if req.AvatarURL != nil {
		builder = builder.Set("avatar_url", *req.AvatarURL)
	}
	if req.HighSchool != nil {
		builder = builder.Set("high_school", *req.HighSchool)
	}
	if req.GraduationYear != nil {
		builder = builder.Set("graduation_year", *req.GraduationYear)
	}
	if req.UniversityEntranceScore != nil {
		builder = builder.Set("university_entrance_score", *req.UniversityEntranceScore)
	}
	if req.ExtracurricularActivities != nil {
		builder = builder.Set("extracurricular_activities", *req.ExtracurricularActivities)
	}
	if req.Achievements != nil {
		builder = builder.Set("achievements", *req.Achievements)
	}
	if req.SpecialSkills != nil {
		builder = builder.Set("special_skills", *req.SpecialSkills)
	}

	return builder
}

// DeleteWithUser removes a student and its paired user account as one logical
// operation. The delete targets the users row; the students row goes with it
// through the ON DELETE CASCADE foreign key.
func (r *StudentRepository) DeleteWithUser(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM users WHERE id = (SELECT user_id FROM students WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// mapStudentWriteError translates storage-level integrity conflicts on student
// writes into domain error kinds, distinguished by which constraint fired.
func mapStudentWriteError(err error) error {
	switch {
	case dberrors.IsUniqueConstraintViolation(err, "users_username_key"):
		return apperrors.ErrDuplicateUsername
	case dberrors.IsUniqueConstraintViolation(err, "students_email_key"):
		return apperrors.ErrDuplicateEmail
	case dberrors.IsUniqueConstraintViolation(err, "students_student_code_key"):
		return apperrors.ErrDuplicateStudentCode
	case dberrors.IsUniqueConstraintViolation(err, "students_id_card_key"):
		return apperrors.ErrDuplicateIdCard
	case dberrors.IsForeignKeyViolation(err, "students_class_id_fkey"):
		return apperrors.ErrClassNotFound
	case dberrors.IsIntegrityViolation(err):
		return apperrors.ErrInvalidStudentData
	default:
		return fmt.Errorf("error writing student: %w", err)
	}
}
