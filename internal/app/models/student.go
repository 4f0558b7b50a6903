package models

import "time"

// Student defines the student profile model based on the 'students' table.
// Each student owns exactly one users row through UserID; deleting that user
// cascades to the student row.
type Student struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	StudentCode string `json:"student_code" db:"student_code"`
	FullName    string `json:"full_name" db:"full_name"`
	Email       string `json:"email" db:"email"`
	Phone       string `json:"phone" db:"phone"`
	Address     string `json:"address" db:"address"`

	Hometown    *string    `json:"hometown,omitempty" db:"hometown"`
	IDCard      *string    `json:"id_card,omitempty" db:"id_card"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Gender      *string    `json:"gender,omitempty" db:"gender"`
	ClassID     *int64     `json:"class_id,omitempty" db:"class_id"`

	GPA                *float64 `json:"gpa,omitempty" db:"gpa"`
	AcademicStatus     *string  `json:"academic_status,omitempty" db:"academic_status"`
	AccumulatedCredits *int     `json:"accumulated_credits,omitempty" db:"accumulated_credits"`
	StudyStatus        *string  `json:"study_status,omitempty" db:"study_status"`

	EmergencyContactName     *string `json:"emergency_contact_name,omitempty" db:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone,omitempty" db:"emergency_contact_phone"`
	EmergencyContactRelation *string `json:"emergency_contact_relation,omitempty" db:"emergency_contact_relation"`

	Ethnicity   *string `json:"ethnicity,omitempty" db:"ethnicity"`
	Religion    *string `json:"religion,omitempty" db:"religion"`
	Nationality *string `json:"nationality,omitempty" db:"nationality"`
	AvatarURL   *string `json:"avatar_url,omitempty" db:"avatar_url"`

	HighSchool                *string  `json:"high_school,omitempty" db:"high_school"`
	GraduationYear            *int     `json:"graduation_year,omitempty" db:"graduation_year"`
	UniversityEntranceScore   *float64 `json:"university_entrance_score,omitempty" db:"university_entrance_score"`
	ExtracurricularActivities *string  `json:"extracurricular_activities,omitempty" db:"extracurricular_activities"`
	Achievements              *string  `json:"achievements,omitempty" db:"achievements"`
	SpecialSkills             *string  `json:"special_skills,omitempty" db:"special_skills"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
