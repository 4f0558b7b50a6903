package repositories

import (
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterSQL(t *testing.T, q *dto.StudentListQuery) (string, []interface{}) {
	t.Helper()
	builder := applyStudentFilters(
		squirrel.Select("COUNT(*)").From("students").PlaceholderFormat(squirrel.Dollar), q)
	sql, args, err := builder.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestApplyStudentFilters_NoFilters(t *testing.T) {
	sql, args := filterSQL(t, &dto.StudentListQuery{})
	assert.Equal(t, "SELECT COUNT(*) FROM students", sql)
	assert.Empty(t, args)
}

func TestApplyStudentFilters_Search(t *testing.T) {
	sql, args := filterSQL(t, &dto.StudentListQuery{Search: "nguyen"})
	assert.Contains(t, sql, "full_name ILIKE $1")
	assert.Contains(t, sql, "student_code ILIKE $2")
	assert.Contains(t, sql, "email ILIKE $3")
	assert.Contains(t, sql, " OR ")
	assert.Equal(t, []interface{}{"%nguyen%", "%nguyen%", "%nguyen%"}, args)
}

func TestApplyStudentFilters_Combined(t *testing.T) {
	classID := int64(3)
	minGPA := 2.5
	maxGPA := 3.8
	q := &dto.StudentListQuery{
		ClassID:        &classID,
		Gender:         "female",
		AcademicStatus: "good",
		StudyStatus:    "studying",
		MinGPA:         &minGPA,
		MaxGPA:         &maxGPA,
	}

	sql, args := filterSQL(t, q)
	assert.Contains(t, sql, "class_id = $1")
	assert.Contains(t, sql, "gender = $2")
	assert.Contains(t, sql, "academic_status = $3")
	assert.Contains(t, sql, "study_status = $4")
	assert.Contains(t, sql, "gpa >= $5")
	assert.Contains(t, sql, "gpa <= $6")
	assert.Len(t, args, 6)
}

func TestBuildStudentUpdate(t *testing.T) {
	fullName := "Tran Van A"
	gpa := 3.2
	req := &dto.UpdateStudentRequest{
		FullName: &fullName,
		GPA:      &gpa,
	}

	sql, args, err := buildStudentUpdate(7, req).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "UPDATE students SET")
	assert.Contains(t, sql, "updated_at = $1")
	assert.Contains(t, sql, "full_name = $2")
	assert.Contains(t, sql, "gpa = $3")
	assert.Contains(t, sql, "WHERE id = $4")
	// args: updated_at timestamp, full_name, gpa, id
	require.Len(t, args, 4)
	assert.Equal(t, "Tran Van A", args[1])
	assert.Equal(t, 3.2, args[2])
	assert.Equal(t, int64(7), args[3])
}

func TestBuildStudentUpdate_OnlyTimestampWhenEmpty(t *testing.T) {
	sql, args, err := buildStudentUpdate(7, &dto.UpdateStudentRequest{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "updated_at = $1")
	assert.NotContains(t, sql, "full_name")
	assert.Len(t, args, 2)
}

func TestMapStudentWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate username",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			want: apperrors.ErrDuplicateUsername,
		},
		{
			name: "duplicate email",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"},
			want: apperrors.ErrDuplicateEmail,
		},
		{
			name: "duplicate student code",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "students_student_code_key"},
			want: apperrors.ErrDuplicateStudentCode,
		},
		{
			name: "duplicate id card",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "students_id_card_key"},
			want: apperrors.ErrDuplicateIdCard,
		},
		{
			name: "unknown class",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "students_class_id_fkey"},
			want: apperrors.ErrClassNotFound,
		},
		{
			name: "other integrity violation",
			err:  &pgconn.PgError{Code: "23502", ConstraintName: ""},
			want: apperrors.ErrInvalidStudentData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapStudentWriteError(tt.err), tt.want)
		})
	}
}

func TestMapStudentWriteError_PassesThroughUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset")
	got := mapStudentWriteError(cause)
	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, apperrors.ErrInvalidStudentData)
}
