package store

import (
	"context"
	"time"

	"github.com/harborline/moorage/models"
)

// AccountRepository is the durable record of account identities, secret
// hashes, and verification/reset codes.
//
// Check-then-act sequences (unique email on create, single-use code
// consumption, token replacement) are implemented as single conditional
// statements so they are atomic with respect to concurrent requests.
type AccountRepository interface {
	// CreateAccount persists a new account and returns the stored record.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindByEmail returns the account with the given email, or
	// ErrNoAccountWasFound.
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// FindByID returns the account with the given identifier, or
	// ErrNoAccountWasFound.
	FindByID(ctx context.Context, accountID string) (models.Account, error)

	// FindByActivationCode returns the account matching email and an
	// unconsumed, unexpired activation code, or ErrNoAccountWasFound.
	FindByActivationCode(ctx context.Context, email, code string, now time.Time) (models.Account, error)

	// MarkActive flips the inactive account holding the given activation
	// code to active and clears the code pair in the same statement.
	// Returns ErrCodeInvalidOrExpired if no such inactive account exists
	// (code consumed or account activated by a concurrent request).
	MarkActive(ctx context.Context, accountID, code string) error

	// SetAccessToken overwrites the account's current access token.
	// Last write wins between concurrent logins.
	SetAccessToken(ctx context.Context, accountID, token string) error

	// ClearAccessToken removes the account's current access token.
	// Clearing an already-empty token is not an error.
	ClearAccessToken(ctx context.Context, accountID string) error

	// SetResetCode stores a fresh password-reset code pair on the account.
	SetResetCode(ctx context.Context, accountID, code string, expiresAt time.Time) error

	// ConsumeResetCode replaces the password hash of the account holding an
	// unexpired reset code and clears the code pair in the same statement,
	// so a code can be used at most once. Returns ErrCodeInvalidOrExpired
	// if the code does not match or has expired.
	ConsumeResetCode(ctx context.Context, code, newPasswordHash string, now time.Time) error

	// UpdateProfile overwrites the account's profile fields and returns the
	// updated record, or ErrNoAccountWasFound.
	UpdateProfile(ctx context.Context, accountID string, profile models.ProfileUpdate) (models.Account, error)

	// ClearExpiredCodes nulls out activation and reset code pairs whose
	// expiry has passed, returning the number of affected accounts.
	ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// ArchiveRepository stores uploaded-file records owned by accounts.
type ArchiveRepository interface {
	// CreateArchive persists a new archive record.
	CreateArchive(ctx context.Context, archive models.Archive) (models.Archive, error)

	// FindArchiveByID returns one archive record, or ErrNoArchiveWasFound.
	FindArchiveByID(ctx context.Context, archiveID string) (models.Archive, error)

	// FindArchivesByAccount lists all archive records owned by the account.
	FindArchivesByAccount(ctx context.Context, accountID string) ([]models.Archive, error)
}

// BoatRepository stores boat listings owned by accounts.
type BoatRepository interface {
	// CreateBoat persists a new boat listing.
	CreateBoat(ctx context.Context, boat models.Boat) (models.Boat, error)

	// FindBoatsByAccount lists all boat listings owned by the account.
	FindBoatsByAccount(ctx context.Context, accountID string) ([]models.Boat, error)
}
