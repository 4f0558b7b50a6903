package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505", "users_username_key")))
	assert.False(t, IsUniqueViolation(pgError("23503", "students_class_id_fkey")))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	err := pgError("23505", "students_email_key")
	assert.True(t, IsUniqueConstraintViolation(err, "students_email_key"))
	assert.False(t, IsUniqueConstraintViolation(err, "students_student_code_key"))
	assert.False(t, IsUniqueConstraintViolation(errors.New("plain error"), "students_email_key"))
}

func TestIsUniqueConstraintViolation_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("error creating student: %w", pgError("23505", "students_id_card_key"))
	assert.True(t, IsUniqueConstraintViolation(wrapped, "students_id_card_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := pgError("23503", "students_class_id_fkey")
	assert.True(t, IsForeignKeyViolation(err, "students_class_id_fkey"))
	assert.False(t, IsForeignKeyViolation(err, "students_user_id_fkey"))
	assert.False(t, IsForeignKeyViolation(pgError("23505", "students_class_id_fkey"), "students_class_id_fkey"))
}

func TestIsIntegrityViolation(t *testing.T) {
	assert.True(t, IsIntegrityViolation(pgError("23505", "")))
	assert.True(t, IsIntegrityViolation(pgError("23503", "")))
	assert.True(t, IsIntegrityViolation(pgError("23502", "")))
	assert.False(t, IsIntegrityViolation(pgError("42601", "")))
	assert.False(t, IsIntegrityViolation(errors.New("plain error")))
}
