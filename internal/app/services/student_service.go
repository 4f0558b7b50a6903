package services

import (
	"context"

	appAuth "github.com/ndthanh/studentms/internal/app/auth"
	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/auth"
	"github.com/ndthanh/studentms/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// StudentStore is the subset of the student repository the student service
// depends on.
type StudentStore interface {
	List(ctx context.Context, q *dto.StudentListQuery) ([]*models.Student, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	CreateWithUser(ctx context.Context, student *models.Student, passwordHash string) error
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	DeleteWithUser(ctx context.Context, id int64) error
}

// StudentService handles student operations
type StudentService interface {
	ListStudents(ctx context.Context, q *dto.StudentListQuery) (*dto.StudentListResponse, error)
	GetStudent(ctx context.Context, callerUserID int64, callerRole models.Role, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	students StudentStore
	authz    *appAuth.AuthorizationService
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, authz *appAuth.AuthorizationService, logger zerolog.Logger) StudentService {
	return &studentService{
		students: students,
		authz:    authz,
		logger:   logger,
	}
}

// ListStudents returns one page of students matching the filters. page and
// page_size are coerced into their valid ranges before querying so the
// response echoes the values actually used.
func (s *studentService) ListStudents(ctx context.Context, q *dto.StudentListQuery) (*dto.StudentListResponse, error) {
	q.Page, q.PageSize = helpers.NormalizePagination(q.Page, q.PageSize)

	students, total, err := s.students.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
		Items:    students,
	}, nil
}

// GetStudent returns a student profile, enforcing the self-access rule before
// touching the target row.
func (s *studentService) GetStudent(ctx context.Context, callerUserID int64, callerRole models.Role, id int64) (*models.Student, error) {
	if err := s.authz.CanAccessStudent(ctx, callerUserID, callerRole, id); err != nil {
		return nil, err
	}

	return s.students.GetByID(ctx, id)
}

// CreateStudent creates a student profile together with its paired user
// account in one transaction.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := req.ToModel()
	if err := s.students.CreateWithUser(ctx, student, passwordHash); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("studentCode", student.StudentCode).
		Msg("Student created")
	return student, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.students.Update(ctx, id, req); err != nil {
		return nil, err
	}

	return s.students.GetByID(ctx, id)
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.students.DeleteWithUser(ctx, id)
}
