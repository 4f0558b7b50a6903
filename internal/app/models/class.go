package models

import "time"

// Class defines the class (cohort) model based on the 'classes' table
type Class struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	AcademicYear *string    `json:"academic_year,omitempty" db:"academic_year"`
	Description  *string    `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
