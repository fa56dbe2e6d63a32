package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/harborline/moorage/models"
)

// AccountService owns the account lifecycle: signup with email verification,
// login and logout with bearer tokens, password reset, and profile updates.
type AccountService interface {
	// Signup validates the request, notifies the address with a six-digit
	// activation code, and persists the new inactive account. Nothing is
	// persisted if the notification cannot be delivered.
	Signup(ctx context.Context, req models.SignupRequest) (models.Account, error)

	// Activate flips an inactive account to active, consuming its activation
	// code. Activating an already-active account fails with ErrAlreadyActive.
	Activate(ctx context.Context, req models.ActivateRequest) (models.Account, error)

	// Login verifies credentials and issues a signed access token, replacing
	// any token from an earlier session.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, models.Token, error)

	// Logout discards the account's current access token. Logging out twice
	// is not an error.
	Logout(ctx context.Context, accountID string) error

	// ForgotPassword sends a six-digit reset code to the address if an
	// account exists for it. An unknown address is not reported to the
	// caller.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error

	// ResetPassword replaces the password of the account holding the
	// unexpired reset code. Each code works at most once.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// UpdateProfile replaces the account's profile with the request and
	// returns the updated account. Requests missing any profile field are
	// rejected.
	UpdateProfile(ctx context.Context, accountID string, req models.UpdateProfileRequest) (models.Account, error)

	// Authorize validates a bearer token string against both its signature
	// and the token currently stored for the account, so a logout or a later
	// login invalidates it.
	Authorize(ctx context.Context, tokenString string) (models.Token, error)

	// CreateToken issues a signed access token for the account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates and decodes a raw token string without consulting
	// storage.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ContentService owns account-scoped media: uploaded files, images
// transferred from the photo provider, photo search, and boat listings.
type ContentService interface {
	// Upload stores a file in the object store and returns its durable URL.
	// No ownership record is kept; the endpoint accepts anonymous uploads.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)

	// Transfer downloads a remote image and re-hosts it in the object store,
	// recording the stored copy as an archive owned by the account.
	Transfer(ctx context.Context, accountID, imageURL string) (models.Archive, error)

	// Archives lists all archive records owned by the account, newest first.
	Archives(ctx context.Context, accountID string) ([]models.Archive, error)

	// ArchiveURL returns the stored URL of one archive owned by the account.
	ArchiveURL(ctx context.Context, accountID, archiveID string) (string, error)

	// Search queries the photo provider and returns its response verbatim.
	Search(ctx context.Context, req models.SearchRequest) (json.RawMessage, error)

	// SaveBoat records a new boat listing owned by the account.
	SaveBoat(ctx context.Context, accountID string, req models.SaveBoatRequest) (models.Boat, error)

	// Boats lists all boat listings owned by the account, newest first.
	Boats(ctx context.Context, accountID string) ([]models.Boat, error)
}
