package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, and the
// conditional updates that drive the credential lifecycle.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// accountRow mirrors the accounts table with nullable columns, so a single
// scan helper can serve every SELECT ... RETURNING in this file.
type accountRow struct {
	accountID    string
	email        string
	passwordHash string
	active       bool
	emailCode    sql.NullString
	emailExpiry  sql.NullTime
	resetCode    sql.NullString
	resetExpiry  sql.NullTime
	accessToken  sql.NullString
	name         sql.NullString
	birth        sql.NullString
	country      sql.NullString
	lang         sql.NullString
	pic          sql.NullString
	createdAt    time.Time
	updatedAt    time.Time
}

// scanAccountRow scans one row in the accountColumns order and converts
// nullable columns into the model representation.
func scanAccountRow(row *sql.Row) (models.Account, error) {
	var r accountRow
	err := row.Scan(
		&r.accountID, &r.email, &r.passwordHash, &r.active,
		&r.emailCode, &r.emailExpiry,
		&r.resetCode, &r.resetExpiry,
		&r.accessToken, &r.name, &r.birth, &r.country, &r.lang, &r.pic,
		&r.createdAt, &r.updatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		AccountID:    r.accountID,
		Email:        r.email,
		PasswordHash: r.passwordHash,
		Active:       r.active,
		EmailCode:    r.emailCode.String,
		ResetCode:    r.resetCode.String,
		AccessToken:  r.accessToken.String,
		Name:         r.name.String,
		Birth:        r.birth.String,
		Country:      r.country.String,
		Lang:         r.lang.String,
		Pic:          r.pic.String,
		CreatedAt:    r.createdAt,
		UpdatedAt:    r.updatedAt,
	}
	if r.emailExpiry.Valid {
		t := r.emailExpiry.Time
		account.EmailCodeExpiresAt = &t
	}
	if r.resetExpiry.Valid {
		t := r.resetExpiry.Time
		account.ResetCodeExpiresAt = &t
	}

	return account, nil
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.AccountID, account.Email, account.PasswordHash,
		account.EmailCode, account.EmailCodeExpiresAt)

	created, err := scanAccountRow(row)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByEmail retrieves the account whose email matches exactly (emails are
// stored case-sensitively). Returns [ErrNoAccountWasFound] if no row matches.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "FindByEmail", findAccountByEmail, email)
}

// FindByID retrieves the account with the given identifier.
// Returns [ErrNoAccountWasFound] if no row matches.
func (r *accountRepository) FindByID(ctx context.Context, accountID string) (models.Account, error) {
	return r.findOne(ctx, "FindByID", findAccountByID, accountID)
}

// FindByActivationCode retrieves the account matching email, activation
// code, and an expiry still in the future. Returns [ErrNoAccountWasFound]
// if no row matches.
func (r *accountRepository) FindByActivationCode(ctx context.Context, email, code string, now time.Time) (models.Account, error) {
	return r.findOne(ctx, "FindByActivationCode", findAccountByActivationCode, email, code, now)
}

func (r *accountRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	account, err := scanAccountRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository."+funcName).Msg("error scanning account row")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// MarkActive activates the account in a single conditional UPDATE that also
// consumes the activation code. Zero affected rows means the code was
// already consumed or the account was activated concurrently.
func (r *accountRepository) MarkActive(ctx context.Context, accountID, code string) error {
	return r.exec(ctx, "MarkActive", markAccountActive, ErrCodeInvalidOrExpired, accountID, code)
}

// SetAccessToken overwrites the current access token in a single UPDATE;
// a race between two concurrent logins resolves last-write-wins.
func (r *accountRepository) SetAccessToken(ctx context.Context, accountID, token string) error {
	return r.exec(ctx, "SetAccessToken", setAccessToken, ErrNoAccountWasFound, accountID, token)
}

// ClearAccessToken removes the current access token. The statement matches
// the account row regardless of token state, so a repeated logout succeeds.
func (r *accountRepository) ClearAccessToken(ctx context.Context, accountID string) error {
	return r.exec(ctx, "ClearAccessToken", clearAccessToken, ErrNoAccountWasFound, accountID)
}

// SetResetCode stores a fresh reset code pair on the account.
func (r *accountRepository) SetResetCode(ctx context.Context, accountID, code string, expiresAt time.Time) error {
	return r.exec(ctx, "SetResetCode", setResetCode, ErrNoAccountWasFound, accountID, code, expiresAt)
}

// ConsumeResetCode replaces the password hash and clears the reset code pair
// in one conditional UPDATE keyed on the unexpired code. Zero affected rows
// means the code does not exist, was already used, or has expired — so a
// replay of the same code always fails.
func (r *accountRepository) ConsumeResetCode(ctx context.Context, code, newPasswordHash string, now time.Time) error {
	return r.exec(ctx, "ConsumeResetCode", consumeResetCode, ErrCodeInvalidOrExpired, code, newPasswordHash, now)
}

// exec runs a DML statement and maps the zero-rows-affected outcome to the
// given sentinel error.
func (r *accountRepository) exec(ctx context.Context, funcName, query string, zeroRowsErr error, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository."+funcName).Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return zeroRowsErr
	}

	return nil
}

// UpdateProfile overwrites all profile fields in one UPDATE built with
// squirrel and returns the updated record via a RETURNING clause.
func (r *accountRepository) UpdateProfile(ctx context.Context, accountID string, profile models.ProfileUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("accounts").
		Set("name", profile.Name).
		Set("birth", profile.Birth).
		Set("country", profile.Country).
		Set("lang", profile.Lang).
		Set("pic", profile.Pic).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING " + accountColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateProfile").Msg("error building update query")
		return models.Account{}, fmt.Errorf("error building update query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	account, err := scanAccountRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository.UpdateProfile").Msg("error scanning account row")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// ClearExpiredCodes nulls out expired activation and reset code pairs,
// honoring the rule that an expired code counts as consumed.
func (r *accountRepository) ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearExpiredCodes, now)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ClearExpiredCodes").Msg("error clearing expired codes")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return result.RowsAffected()
}
