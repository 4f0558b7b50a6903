package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveAccount    = errors.New("inactive user")
	ErrIncorrectPassword  = errors.New("incorrect current password")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("not enough permissions")
)

// Resource errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrClassInUse      = errors.New("cannot delete class with existing students")
)

// Integrity conflict errors, one per unique column
var (
	ErrDuplicateUsername    = errors.New("username already registered")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateStudentCode = errors.New("student code already registered")
	ErrDuplicateIdCard      = errors.New("id card number already registered")
	ErrDuplicateClassName   = errors.New("a class with this information already exists")

	// ErrInvalidStudentData covers integrity conflicts that do not match a known constraint
	ErrInvalidStudentData = errors.New("a student with this information already exists")
)
