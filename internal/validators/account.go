package validators

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/harborline/moorage/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a signup or login
	// request.
	FieldPassword = "password"

	// FieldConfirmPassword enforces that password and its confirmation match.
	FieldConfirmPassword = "confirm_password"

	// FieldCode targets a six-digit activation or reset code.
	FieldCode = "code"

	// FieldQuery targets the free-text term of a photo search.
	FieldQuery = "query"

	// FieldImageURL targets the source URL of an image transfer.
	FieldImageURL = "image_url"

	// FieldProfile targets the set of profile fields in an update request.
	FieldProfile = "profile"
)

// emailPattern accepts anything shaped local@domain.tld without whitespace.
// Deliverability is proven by the activation mail, not by the pattern.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// codePattern matches exactly six decimal digits.
var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

const minPasswordLength = 4

// AccountValidator validates the request bodies of the account and content
// endpoints.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(ctx, *value, fields...)

	case models.ActivateRequest:
		return v.validateActivate(ctx, value, fields...)
	case *models.ActivateRequest:
		return v.validateActivate(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.ForgotPasswordRequest:
		return v.validateForgot(ctx, value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgot(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateReset(ctx, value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateReset(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateProfileUpdate(ctx, *value, fields...)

	case models.SearchRequest:
		return v.validateSearch(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearch(ctx, *value, fields...)

	case models.TransferRequest:
		return v.validateTransfer(ctx, value, fields...)
	case *models.TransferRequest:
		return v.validateTransfer(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func isValidCode(code string) bool {
	return codePattern.MatchString(code)
}

func (v *AccountValidator) validateSignup(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldConfirmPassword:
			if req.Password != req.ConfirmPassword {
				return ErrPasswordsDoNotMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateActivate(_ context.Context, req models.ActivateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldCode}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldCode:
			if !isValidCode(req.Code) {
				return ErrInvalidCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateForgot(_ context.Context, req models.ForgotPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateReset(_ context.Context, req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if !isValidCode(req.Token) {
				return ErrInvalidCode
			}
		case FieldPassword:
			if len(req.NewPassword) < minPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldConfirmPassword:
			if req.NewPassword != req.ConfirmPassword {
				return ErrPasswordsDoNotMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfileUpdate requires every profile field to be present. The
// update overwrites the whole profile, so an absent field is a malformed
// request, not a field to keep.
func (v *AccountValidator) validateProfileUpdate(_ context.Context, req models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfile}
	}

	for _, f := range fields {
		switch f {
		case FieldProfile:
			for _, field := range []*string{req.Name, req.Birth, req.Country, req.Lang, req.Pic} {
				if field == nil {
					return ErrMissingProfileField
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSearch(_ context.Context, req models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if strings.TrimSpace(req.Query) == "" {
				return ErrEmptyQuery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateTransfer(_ context.Context, req models.TransferRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldImageURL:
			u, err := url.Parse(strings.TrimSpace(req.ImageURL))
			if err != nil || u.Scheme == "" || u.Host == "" {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
