package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 4 characters")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidCode         = errors.New("code must be exactly 6 digits")
	ErrEmptyQuery          = errors.New("search query cannot be empty")
	ErrInvalidImageURL     = errors.New("invalid image URL")
	ErrMissingProfileField = errors.New("all profile fields must be provided for update")
	ErrInvalidUserID       = errors.New("invalid user ID")
)
