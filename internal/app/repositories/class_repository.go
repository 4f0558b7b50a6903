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
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = "id, name, academic_year, description, created_at, updated_at"

func scanClass(row pgx.Row) (*models.Class, error) {
	var class models.Class
	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.AcademicYear,
		&class.Description,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error scanning class: %w", err)
	}
	return &class, nil
}

// Create inserts a new class and fills in its generated ID and timestamps
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (name, academic_year, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, class.Name, class.AcademicYear, class.Description).
		Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, "classes_name_key") {
			return apperrors.ErrDuplicateClassName
		}
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	return scanClass(r.db.QueryRow(ctx, query, id))
}

// GetAll retrieves all classes ordered by id
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	classes := make([]*models.Class, 0)
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.AcademicYear,
			&class.Description,
			&class.CreatedAt,
			&class.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning class: %w", err)
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update applies the non-nil fields of the request to a class
func (r *ClassRepository) Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) error {
	builder := squirrel.Update("classes").
		Set("updated_at", time.Now()).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.AcademicYear != nil {
		builder = builder.Set("academic_year", *req.AcademicYear)
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, "classes_name_key") {
			return apperrors.ErrDuplicateClassName
		}
		return fmt.Errorf("error updating class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// Delete removes a class. The dependency check and the delete run in one
// transaction so a concurrent student insert cannot slip in between.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var inUse bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM students WHERE class_id = $1)`, id).Scan(&inUse)
		if err != nil {
			return fmt.Errorf("error checking class dependents: %w", err)
		}
		if inUse {
			return apperrors.ErrClassInUse
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err, "students_class_id_fkey") {
				return apperrors.ErrClassInUse
			}
			return fmt.Errorf("error deleting class: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrClassNotFound
		}

		return nil
	})
}
