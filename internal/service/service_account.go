package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/harborline/moorage/internal/adapter"
	"github.com/harborline/moorage/internal/config"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/store"
	"github.com/harborline/moorage/internal/utils"
	"github.com/harborline/moorage/internal/validators"
	"github.com/harborline/moorage/models"
)

// accountService is the concrete implementation of AccountService.
// It drives the account lifecycle using an AccountRepository for persistence,
// a Notifier for code delivery, bcrypt for password hashing, and signed JWTs
// for session tokens.
type accountService struct {
	// accountRepository is the data-access layer for account records.
	accountRepository store.AccountRepository

	// notifier delivers activation and reset codes by mail.
	notifier adapter.Notifier

	// validator checks request bodies before any side effect.
	validator validators.Validator

	// uuid generates account identifiers.
	uuid *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify access tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// codeTTL controls how long activation and reset codes remain usable.
	codeTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository and notifier, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountRepository store.AccountRepository, notifier adapter.Notifier, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		notifier:          notifier,
		validator:         validators.NewAccountValidator(),
		uuid:              utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		codeTTL:           cfg.CodeTTL,
		logger:            logger,
	}
}

// Signup implements [AccountService].
//
// Side effects happen in a fixed order: the activation mail is sent first and
// the account row is inserted after, so a delivery failure leaves no account
// behind that its owner never heard about. Returns:
//   - ErrInvalidDataProvided (wrapped) on a malformed request.
//   - store.ErrEmailAlreadyExists if the address is taken.
//   - adapter.ErrNotificationFailed if the activation mail cannot be sent.
func (a *accountService) Signup(ctx context.Context, req models.SignupRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := req.Email

	if _, err := a.accountRepository.FindByEmail(ctx, email); err == nil {
		return models.Account{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoAccountWasFound) {
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	code, err := utils.GenerateCode()
	if err != nil {
		return models.Account{}, fmt.Errorf("activation code generation failed: %w", err)
	}

	if err = a.notifier.SendActivationCode(ctx, email, code); err != nil {
		log.Err(err).Str("email", email).Msg("activation mail delivery failed")
		return models.Account{}, err
	}

	expiresAt := time.Now().Add(a.codeTTL)
	created, err := a.accountRepository.CreateAccount(ctx, models.Account{
		AccountID:          a.uuid.Generate(),
		Email:              email,
		PasswordHash:       passwordHash,
		EmailCode:          code,
		EmailCodeExpiresAt: &expiresAt,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// Activate implements [AccountService].
//
// The lookup matches email, code, and expiry together, so an unknown address
// and a wrong code are indistinguishable to the caller. Returns:
//   - ErrInvalidDataProvided (wrapped) on a malformed request.
//   - store.ErrCodeInvalidOrExpired if no account matches the address and
//     code, the code expired, or it lost a race with a concurrent activation.
//   - ErrAlreadyActive if the matched account was activated before.
func (a *accountService) Activate(ctx context.Context, req models.ActivateRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindByActivationCode(ctx, req.Email, req.Code, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.Account{}, store.ErrCodeInvalidOrExpired
		}
		return models.Account{}, fmt.Errorf("activation code lookup failed: %w", err)
	}
	if account.Active {
		return models.Account{}, ErrAlreadyActive
	}

	if err = a.accountRepository.MarkActive(ctx, account.AccountID, req.Code); err != nil {
		log.Err(err).Str("email", req.Email).Msg("account activation ended with error")
		return models.Account{}, err
	}

	activated, err := a.accountRepository.FindByID(ctx, account.AccountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	return activated, nil
}

// Login implements [AccountService].
//
// A fresh token is stored on the account with every successful login, so the
// token of an earlier session stops authorizing requests. Returns:
//   - ErrInvalidDataProvided (wrapped) on a malformed request.
//   - store.ErrNoAccountWasFound if no account exists for the address.
//   - ErrAccountNotActivated if the account never confirmed its address.
//   - ErrWrongPassword if the password does not match.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.Account, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("account search by email failed")
		return models.Account{}, models.Token{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !account.Active {
		return models.Account{}, models.Token{}, ErrAccountNotActivated
	}

	if !utils.ComparePassword(req.Password, account.PasswordHash) {
		log.Error().Str("email", req.Email).Msg("wrong password")
		return models.Account{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.CreateToken(ctx, account)
	if err != nil {
		return models.Account{}, models.Token{}, err
	}

	if err = a.accountRepository.SetAccessToken(ctx, account.AccountID, token.SignedString); err != nil {
		return models.Account{}, models.Token{}, fmt.Errorf("access token update failed: %w", err)
	}

	account.AccessToken = token.SignedString
	return account, token, nil
}

// Logout implements [AccountService].
func (a *accountService) Logout(ctx context.Context, accountID string) error {
	if err := a.accountRepository.ClearAccessToken(ctx, accountID); err != nil {
		return fmt.Errorf("access token removal failed: %w", err)
	}
	return nil
}

// ForgotPassword implements [AccountService].
//
// An unknown address returns nil, so the endpoint cannot be used to probe
// which addresses hold accounts.
func (a *accountService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			log.Info().Str("email", req.Email).Msg("password reset requested for unknown address")
			return nil
		}
		return fmt.Errorf("account lookup failed: %w", err)
	}

	code, err := utils.GenerateCode()
	if err != nil {
		return fmt.Errorf("reset code generation failed: %w", err)
	}

	if err = a.notifier.SendResetCode(ctx, req.Email, code); err != nil {
		log.Err(err).Str("email", req.Email).Msg("reset mail delivery failed")
		return err
	}

	if err = a.accountRepository.SetResetCode(ctx, account.AccountID, code, time.Now().Add(a.codeTTL)); err != nil {
		return fmt.Errorf("reset code update failed: %w", err)
	}

	return nil
}

// ResetPassword implements [AccountService]. Returns:
//   - ErrInvalidDataProvided (wrapped) on a malformed request.
//   - store.ErrCodeInvalidOrExpired if the code is unknown, expired, or was
//     already used.
func (a *accountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.accountRepository.ConsumeResetCode(ctx, req.Token, passwordHash, time.Now()); err != nil {
		log.Err(err).Msg("password reset ended with error")
		return err
	}

	return nil
}

// UpdateProfile implements [AccountService]. The request replaces the whole
// profile; validation rejects it unless every field is present.
func (a *accountService) UpdateProfile(ctx context.Context, accountID string, req models.UpdateProfileRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile := models.ProfileUpdate{
		Name:    *req.Name,
		Birth:   *req.Birth,
		Country: *req.Country,
		Lang:    *req.Lang,
		Pic:     *req.Pic,
	}

	updated, err := a.accountRepository.UpdateProfile(ctx, accountID, profile)
	if err != nil {
		log.Err(err).Str("accountID", accountID).Msg("profile update ended with error")
		return models.Account{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updated, nil
}

// Authorize implements [AccountService].
//
// A structurally valid token is only accepted while it is the token most
// recently stored for its account, so logout and later logins revoke it.
func (a *accountService) Authorize(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Token{}, err
	}

	account, err := a.accountRepository.FindByID(ctx, token.AccountID)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if account.AccessToken == "" || account.AccessToken != tokenString {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CreateToken implements [AccountService].
func (a *accountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, account.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken implements [AccountService]. An expired token comes back as
// ErrTokenIsExpired; every other validation failure (wrong issuer, bad
// signature, malformed) is normalised to ErrTokenIsExpiredOrInvalid so
// callers do not need to inspect low-level JWT errors.
func (a *accountService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
