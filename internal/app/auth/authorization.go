package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
)

// StudentDirectory resolves the student profile paired with a user account.
// Satisfied by *repositories.StudentRepository.
type StudentDirectory interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// AuthorizationService decides whether an authenticated identity may perform
// a requested operation.
type AuthorizationService struct {
	students StudentDirectory
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(students StudentDirectory) *AuthorizationService {
	return &AuthorizationService{students: students}
}

// RequireRole fails with ErrPermissionDenied unless the caller holds the
// required role.
func (s *AuthorizationService) RequireRole(role, required models.Role) error {
	if role != required {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// CanAccessStudent enforces the self-access rule on student reads: an ADMIN
// may access any student; a STUDENT only the profile paired with their own
// user account. A student without a paired profile is denied rather than told
// whether the target exists.
func (s *AuthorizationService) CanAccessStudent(ctx context.Context, userID int64, role models.Role, targetStudentID int64) error {
	if role == models.RoleAdmin {
		return nil
	}

	if role != models.RoleStudent {
		return apperrors.ErrPermissionDenied
	}

	own, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return fmt.Errorf("failed to resolve student for user %d: %w", userID, err)
	}

	if own.ID != targetStudentID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
