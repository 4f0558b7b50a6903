package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all repository instances
type Repositories struct {
	UserRepository    *UserRepository
	ClassRepository   *ClassRepository
	StudentRepository *StudentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ClassRepository:   NewClassRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
