package dto

import (
	"time"

	"github.com/ndthanh/studentms/internal/app/models"
)

// CreateStudentRequest is the payload for creating a student together with its
// paired user account (username = email).
type CreateStudentRequest struct {
	StudentCode string `json:"student_code" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`

	Hometown    *string    `json:"hometown"`
	IDCard      *string    `json:"id_card"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender"`
	ClassID     *int64     `json:"class_id"`

	GPA                *float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	AcademicStatus     *string  `json:"academic_status"`
	AccumulatedCredits *int     `json:"accumulated_credits" binding:"omitempty,gte=0"`
	StudyStatus        *string  `json:"study_status"`

	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	EmergencyContactRelation *string `json:"emergency_contact_relation"`

	Ethnicity   *string `json:"ethnicity"`
	Religion    *string `json:"religion"`
	Nationality *string `json:"nationality"`
	AvatarURL   *string `json:"avatar_url"`

	HighSchool                *string  `json:"high_school"`
	GraduationYear            *int     `json:"graduation_year"`
	UniversityEntranceScore   *float64 `json:"university_entrance_score"`
	ExtracurricularActivities *string  `json:"extracurricular_activities"`
	Achievements              *string  `json:"achievements"`
	SpecialSkills             *string  `json:"special_skills"`
}

// ToModel converts the request into a student model (without IDs or timestamps).
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentCode:               r.StudentCode,
		FullName:                  r.FullName,
		Email:                     r.Email,
		Phone:                     r.Phone,
		Address:                   r.Address,
		Hometown:                  r.Hometown,
		IDCard:                    r.IDCard,
		DateOfBirth:               r.DateOfBirth,
		Gender:                    r.Gender,
		ClassID:                   r.ClassID,
		GPA:                       r.GPA,
		AcademicStatus:            r.AcademicStatus,
		AccumulatedCredits:        r.AccumulatedCredits,
		StudyStatus:               r.StudyStatus,
		EmergencyContactName:      r.EmergencyContactName,
		EmergencyContactPhone:     r.EmergencyContactPhone,
		EmergencyContactRelation:  r.EmergencyContactRelation,
		Ethnicity:                 r.Ethnicity,
		Religion:                  r.Religion,
		Nationality:               r.Nationality,
		AvatarURL:                 r.AvatarURL,
		HighSchool:                r.HighSchool,
		GraduationYear:            r.GraduationYear,
		UniversityEntranceScore:   r.UniversityEntranceScore,
		ExtracurricularActivities: r.ExtracurricularActivities,
		Achievements:              r.Achievements,
		SpecialSkills:             r.SpecialSkills,
	}
}

// UpdateStudentRequest is the partial payload for updating a student.
// Only non-nil fields are applied; the paired user account is not touched.
type UpdateStudentRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`

	Hometown    *string    `json:"hometown"`
	IDCard      *string    `json:"id_card"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender"`
	ClassID     *int64     `json:"class_id"`

	GPA                *float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	AcademicStatus     *string  `json:"academic_status"`
	AccumulatedCredits *int     `json:"accumulated_credits" binding:"omitempty,gte=0"`
	StudyStatus        *string  `json:"study_status"`

	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	EmergencyContactRelation *string `json:"emergency_contact_relation"`

	Ethnicity   *string `json:"ethnicity"`
	Religion    *string `json:"religion"`
	Nationality *string `json:"nationality"`
	AvatarURL   *string `json:"avatar_url"`

	HighSchool                *string  `json:"high_school"`
	GraduationYear            *int     `json:"graduation_year"`
	UniversityEntranceScore   *float64 `json:"university_entrance_score"`
	ExtracurricularActivities *string  `json:"extracurricular_activities"`
	Achievements              *string  `json:"achievements"`
	SpecialSkills             *string  `json:"special_skills"`
}

// StudentListQuery captures the filter and pagination query parameters of the
// student listing endpoint. Filters combine with logical AND.
type StudentListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`

	Search         string   `form:"search"`
	ClassID        *int64   `form:"class_id"`
	Gender         string   `form:"gender"`
	AcademicStatus string   `form:"academic_status"`
	StudyStatus    string   `form:"study_status"`
	MinGPA         *float64 `form:"min_gpa"`
	MaxGPA         *float64 `form:"max_gpa"`
}

// StudentListResponse is the paginated listing payload.
type StudentListResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Items    []*models.Student `json:"items"`
}
