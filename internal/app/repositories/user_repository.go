package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/db"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/ndthanh/studentms/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, username, password, role, is_active, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new user and fills in its generated ID and timestamps
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, role, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Username, user.Password, user.Role, user.IsActive).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, "users_username_key") {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// ChangePassword atomically verifies and replaces a user's password hash. The
// row stays locked between the verify callback and the update so concurrent
// changes serialize instead of overwriting each other.
func (r *UserRepository) ChangePassword(ctx context.Context, userID int64, verify func(currentHash string) error, newHash string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var currentHash string
		err := tx.QueryRow(ctx,
			`SELECT password FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&currentHash)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error loading password: %w", err)
		}

		if err := verify(currentHash); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`,
			newHash, time.Now(), userID)
		if err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}

		return nil
	})
}

// UsernameExists checks whether a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}
	return exists, nil
}
