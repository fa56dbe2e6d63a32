package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/service"
	"github.com/harborline/moorage/models"
	"github.com/stretchr/testify/require"
)

// mockAccountService implements service.AccountService with overridable
// function fields. Unset fields return zero values and no error, except
// Authorize, which rejects so protected routes stay closed by default.
type mockAccountService struct {
	signupFn         func(ctx context.Context, req models.SignupRequest) (models.Account, error)
	activateFn       func(ctx context.Context, req models.ActivateRequest) (models.Account, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.Account, models.Token, error)
	logoutFn         func(ctx context.Context, accountID string) error
	forgotPasswordFn func(ctx context.Context, req models.ForgotPasswordRequest) error
	resetPasswordFn  func(ctx context.Context, req models.ResetPasswordRequest) error
	updateProfileFn  func(ctx context.Context, accountID string, req models.UpdateProfileRequest) (models.Account, error)
	authorizeFn      func(ctx context.Context, tokenString string) (models.Token, error)
	createTokenFn    func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAccountService) Signup(ctx context.Context, req models.SignupRequest) (models.Account, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, req)
	}
	return models.Account{}, nil
}

func (m *mockAccountService) Activate(ctx context.Context, req models.ActivateRequest) (models.Account, error) {
	if m.activateFn != nil {
		return m.activateFn(ctx, req)
	}
	return models.Account{}, nil
}

func (m *mockAccountService) Login(ctx context.Context, req models.LoginRequest) (models.Account, models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.Account{}, models.Token{}, nil
}

func (m *mockAccountService) Logout(ctx context.Context, accountID string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, accountID)
	}
	return nil
}

func (m *mockAccountService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if m.forgotPasswordFn != nil {
		return m.forgotPasswordFn(ctx, req)
	}
	return nil
}

func (m *mockAccountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(ctx, req)
	}
	return nil
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, accountID string, req models.UpdateProfileRequest) (models.Account, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, accountID, req)
	}
	return models.Account{}, nil
}

func (m *mockAccountService) Authorize(ctx context.Context, tokenString string) (models.Token, error) {
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAccountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, account)
	}
	return models.Token{}, nil
}

func (m *mockAccountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// mockContentService implements service.ContentService with overridable
// function fields.
type mockContentService struct {
	uploadFn     func(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	transferFn   func(ctx context.Context, accountID, imageURL string) (models.Archive, error)
	archivesFn   func(ctx context.Context, accountID string) ([]models.Archive, error)
	archiveURLFn func(ctx context.Context, accountID, archiveID string) (string, error)
	searchFn     func(ctx context.Context, req models.SearchRequest) (json.RawMessage, error)
	saveBoatFn   func(ctx context.Context, accountID string, req models.SaveBoatRequest) (models.Boat, error)
	boatsFn      func(ctx context.Context, accountID string) ([]models.Boat, error)
}

func (m *mockContentService) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, filename, contentType, body)
	}
	return "https://bucket.s3/fotos/1_file", nil
}

func (m *mockContentService) Transfer(ctx context.Context, accountID, imageURL string) (models.Archive, error) {
	if m.transferFn != nil {
		return m.transferFn(ctx, accountID, imageURL)
	}
	return models.Archive{}, nil
}

func (m *mockContentService) Archives(ctx context.Context, accountID string) ([]models.Archive, error) {
	if m.archivesFn != nil {
		return m.archivesFn(ctx, accountID)
	}
	return []models.Archive{}, nil
}

func (m *mockContentService) ArchiveURL(ctx context.Context, accountID, archiveID string) (string, error) {
	if m.archiveURLFn != nil {
		return m.archiveURLFn(ctx, accountID, archiveID)
	}
	return "", nil
}

func (m *mockContentService) Search(ctx context.Context, req models.SearchRequest) (json.RawMessage, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return json.RawMessage(`{"results":[]}`), nil
}

func (m *mockContentService) SaveBoat(ctx context.Context, accountID string, req models.SaveBoatRequest) (models.Boat, error) {
	if m.saveBoatFn != nil {
		return m.saveBoatFn(ctx, accountID, req)
	}
	return models.Boat{}, nil
}

func (m *mockContentService) Boats(ctx context.Context, accountID string) ([]models.Boat, error) {
	if m.boatsFn != nil {
		return m.boatsFn(ctx, accountID)
	}
	return []models.Boat{}, nil
}

// authorizedAs returns an Authorize implementation that accepts any bearer
// token and binds it to the given account ID.
func authorizedAs(accountID string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(ctx context.Context, tokenString string) (models.Token, error) {
		return models.Token{SignedString: tokenString, AccountID: accountID}, nil
	}
}

// newTestRouter wires mock services into a Handler and returns the fully
// initialised router, middleware included.
func newTestRouter(accounts *mockAccountService, content *mockContentService) http.Handler {
	if accounts == nil {
		accounts = &mockAccountService{}
	}
	if content == nil {
		content = &mockContentService{}
	}

	services := &service.Services{
		AccountService: accounts,
		ContentService: content,
	}

	return NewHandler(services, logger.Nop()).Init()
}

// doJSON performs a request with a JSON body against the router and returns
// the recorded response.
func doJSON(t *testing.T, router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doJSONRequest builds a bodyless request for cases that need to tweak
// headers before serving.
func doJSONRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// serve runs a prepared request through the router and records the response.
func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeSuccess unmarshals the uniform success envelope from a response body.
func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder) models.SuccessResponse {
	t.Helper()

	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// decodeError unmarshals the uniform error envelope from a response body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
