package services

import (
	"context"

	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
)

// ClassStore is the subset of the class repository the class service depends on.
type ClassStore interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	GetAll(ctx context.Context) ([]*models.Class, error)
	Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) error
	Delete(ctx context.Context, id int64) error
}

// ClassService handles class operations
type ClassService interface {
	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error)
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error)
	DeleteClass(ctx context.Context, id int64) error
}

type classService struct {
	classes ClassStore
}

// NewClassService creates a new ClassService
func NewClassService(classes ClassStore) ClassService {
	return &classService{classes: classes}
}

func (s *classService) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	class := &models.Class{
		Name:         req.Name,
		AcademicYear: req.AcademicYear,
		Description:  req.Description,
	}

	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

func (s *classService) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	return s.classes.GetByID(ctx, id)
}

func (s *classService) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classes.GetAll(ctx)
}

func (s *classService) UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error) {
	if err := s.classes.Update(ctx, id, req); err != nil {
		return nil, err
	}

	return s.classes.GetByID(ctx, id)
}

func (s *classService) DeleteClass(ctx context.Context, id int64) error {
	return s.classes.Delete(ctx, id)
}
