package dto

// CreateClassRequest is the payload for creating a class
type CreateClassRequest struct {
	Name         string  `json:"name" binding:"required"`
	AcademicYear *string `json:"academic_year"`
	Description  *string `json:"description"`
}

// UpdateClassRequest is the partial payload for updating a class.
// Only non-nil fields are applied.
type UpdateClassRequest struct {
	Name         *string `json:"name"`
	AcademicYear *string `json:"academic_year"`
	Description  *string `json:"description"`
}
