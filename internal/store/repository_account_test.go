package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var accountCols = []string{
	"account_id", "email", "password_hash", "active",
	"email_code", "email_code_expires_at",
	"reset_code", "reset_code_expires_at",
	"access_token", "name", "birth", "country", "lang", "pic",
	"created_at", "updated_at",
}

func accountRows(account models.Account) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(accountCols).AddRow(
		account.AccountID, account.Email, account.PasswordHash, account.Active,
		nullableString(account.EmailCode), nullableTime(account.EmailCodeExpiresAt),
		nullableString(account.ResetCode), nullableTime(account.ResetCodeExpiresAt),
		nullableString(account.AccessToken), account.Name, account.Birth,
		account.Country, account.Lang, account.Pic,
		now, now,
	)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	expiry := time.Now().Add(15 * time.Minute)
	account := models.Account{
		AccountID:          "acc-1",
		Email:              "a@x.com",
		PasswordHash:       "bcrypt-hash",
		EmailCode:          "123456",
		EmailCodeExpiresAt: &expiry,
	}

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.AccountID, account.Email, account.PasswordHash, account.EmailCode, account.EmailCodeExpiresAt).
		WillReturnRows(accountRows(account))

	created, err := repo.CreateAccount(ctx, account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AccountID != "acc-1" {
		t.Errorf("expected AccountID=acc-1, got %s", created.AccountID)
	}
	if created.Active {
		t.Error("expected new account to be inactive")
	}
	if created.EmailCode != "123456" {
		t.Errorf("expected activation code to round-trip, got %q", created.EmailCode)
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccount(context.Background(), models.Account{Email: "a@x.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAccount(context.Background(), models.Account{Email: "a@x.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestFindByEmail_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := models.Account{AccountID: "acc-1", Email: "a@x.com", PasswordHash: "hash", Active: true}

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("a@x.com").
		WillReturnRows(accountRows(account))

	found, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Active {
		t.Error("expected active account")
	}
	if found.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", found.Email)
	}
}

func TestFindByActivationCode_Expired(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()

	// the WHERE clause filters out expired codes, so the query returns no rows
	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("a@x.com", "123456", now).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByActivationCode(context.Background(), "a@x.com", "123456", now)
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestMarkActive_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("acc-1", "123456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkActive(context.Background(), "acc-1", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkActive_CodeAlreadyConsumed(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("acc-1", "123456").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkActive(context.Background(), "acc-1", "123456")
	if !errors.Is(err, ErrCodeInvalidOrExpired) {
		t.Fatalf("expected ErrCodeInvalidOrExpired, got %v", err)
	}
}

func TestConsumeResetCode_SingleUse(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()

	// first use consumes the code
	mock.ExpectExec("UPDATE accounts").
		WithArgs("654321", "new-hash", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// replay matches nothing
	mock.ExpectExec("UPDATE accounts").
		WithArgs("654321", "new-hash", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ConsumeResetCode(context.Background(), "654321", "new-hash", now); err != nil {
		t.Fatalf("first use: unexpected error: %v", err)
	}

	err := repo.ConsumeResetCode(context.Background(), "654321", "new-hash", now)
	if !errors.Is(err, ErrCodeInvalidOrExpired) {
		t.Fatalf("replay: expected ErrCodeInvalidOrExpired, got %v", err)
	}
}

func TestSetAccessToken_Overwrites(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("acc-1", "token-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetAccessToken(context.Background(), "acc-1", "token-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetAccessToken_AccountMissing(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("ghost", "token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetAccessToken(context.Background(), "ghost", "token")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestClearAccessToken_Idempotent(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	// both calls match the row; the second clears an already-NULL token
	mock.ExpectExec("UPDATE accounts").
		WithArgs("acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts").
		WithArgs("acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearAccessToken(context.Background(), "acc-1"); err != nil {
		t.Fatalf("first logout: unexpected error: %v", err)
	}
	if err := repo.ClearAccessToken(context.Background(), "acc-1"); err != nil {
		t.Fatalf("second logout: unexpected error: %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	updated := models.Account{
		AccountID: "acc-1", Email: "a@x.com", PasswordHash: "hash", Active: true,
		Name: "Alice", Birth: "1990-01-01", Country: "PT", Lang: "pt", Pic: "https://cdn/pic.jpg",
	}

	mock.ExpectQuery("UPDATE accounts").
		WithArgs("Alice", "1990-01-01", "PT", "pt", "https://cdn/pic.jpg", "acc-1").
		WillReturnRows(accountRows(updated))

	account, err := repo.UpdateProfile(context.Background(), "acc-1", models.ProfileUpdate{
		Name: "Alice", Birth: "1990-01-01", Country: "PT", Lang: "pt", Pic: "https://cdn/pic.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Name != "Alice" || account.Country != "PT" {
		t.Errorf("expected updated profile fields, got %+v", account)
	}
}

func TestUpdateProfile_AccountMissing(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProfile(context.Background(), "ghost", models.ProfileUpdate{Name: "x"})
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestClearExpiredCodes(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectExec("UPDATE accounts").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.ClearExpiredCodes(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 3 {
		t.Errorf("expected 3 affected accounts, got %d", affected)
	}
}
