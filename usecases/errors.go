package usecases

import "errors"

// Sentinel errors the handlers translate into form messages or redirects.
var (
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailExists      = errors.New("email already exists")
	ErrBadCredentials   = errors.New("incorrect email or password")
	ErrProjectNotFound  = errors.New("project not found")
	ErrNotOwner         = errors.New("project belongs to another user")
)
