package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"infostore/internal/delivery/http/middleware"
	"infostore/internal/delivery/http/response"
	"infostore/internal/delivery/http/validator"
	domainerrors "infostore/internal/domain/errors"
	"infostore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase lets each test script the usecase behavior per method.
type stubAccountUsecase struct {
	registerFn      func(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.AccountSummary, error)
	registerBatchFn func(ctx context.Context, inputs []*usecase.RegisterAccountInput) (*usecase.RegisterBatchOutput, error)
	updateFn        func(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountSummary, error)
	deleteFn        func(ctx context.Context, keys []string) (*usecase.DeleteAccountsOutput, error)
	loginFn         func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	listFn          func(ctx context.Context) ([]*usecase.AccountSummary, error)
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.AccountSummary, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountUsecase) RegisterBatch(ctx context.Context, inputs []*usecase.RegisterAccountInput) (*usecase.RegisterBatchOutput, error) {
	return s.registerBatchFn(ctx, inputs)
}

func (s *stubAccountUsecase) Update(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountSummary, error) {
	return s.updateFn(ctx, input)
}

func (s *stubAccountUsecase) Delete(ctx context.Context, keys []string) (*usecase.DeleteAccountsOutput, error) {
	return s.deleteFn(ctx, keys)
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAccountUsecase) List(ctx context.Context) ([]*usecase.AccountSummary, error) {
	return s.listFn(ctx)
}

func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAccountHandler_Register(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns created account", func(t *testing.T) {
		accountID := uuid.New()
		uc := &stubAccountUsecase{
			registerFn: func(_ context.Context, input *usecase.RegisterAccountInput) (*usecase.AccountSummary, error) {
				return &usecase.AccountSummary{ID: accountID, Username: input.Username, Email: input.Email}, nil
			},
		}

		e := newTestEcho()
		e.POST("/accounts/register", NewAccountHandler(uc, logger).Register)

		rec := doJSON(e, http.MethodPost, "/accounts/register",
			`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)

		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice", data["username"])
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		uc := &stubAccountUsecase{
			registerFn: func(_ context.Context, _ *usecase.RegisterAccountInput) (*usecase.AccountSummary, error) {
				t.Fatal("usecase must not be called on validation failure")

				return nil, nil
			},
		}

		e := newTestEcho()
		e.POST("/accounts/register", NewAccountHandler(uc, logger).Register)

		rec := doJSON(e, http.MethodPost, "/accounts/register",
			`{"username":"alice","email":"not-an-email","password":"s3cret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	})

	t.Run("maps conflict to 409", func(t *testing.T) {
		uc := &stubAccountUsecase{
			registerFn: func(_ context.Context, _ *usecase.RegisterAccountInput) (*usecase.AccountSummary, error) {
				return nil, domainerrors.ErrUsernameExists
			},
		}

		e := newTestEcho()
		e.POST("/accounts/register", NewAccountHandler(uc, logger).Register)

		rec := doJSON(e, http.MethodPost, "/accounts/register",
			`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "USERNAME_ALREADY_EXISTS", envelope.Error.Code)
	})
}

func TestAccountHandler_RegisterMultiple(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("reports registered and skipped counts", func(t *testing.T) {
		uc := &stubAccountUsecase{
			registerBatchFn: func(_ context.Context, inputs []*usecase.RegisterAccountInput) (*usecase.RegisterBatchOutput, error) {
				require.Len(t, inputs, 2)

				return &usecase.RegisterBatchOutput{
					Registered: 1,
					Skipped:    1,
					Accounts:   []*usecase.AccountSummary{{ID: uuid.New(), Username: inputs[0].Username}},
				}, nil
			},
		}

		e := newTestEcho()
		e.POST("/accounts/register-multiple", NewAccountHandler(uc, logger).RegisterMultiple)

		rec := doJSON(e, http.MethodPost, "/accounts/register-multiple",
			`[{"username":"alice","email":"alice@example.com","password":"pw"},
			  {"username":"bob","email":"bob@example.com","password":"pw"}]`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), data["registered"])
		assert.Equal(t, float64(1), data["skipped"])
	})

	t.Run("rejects batch with invalid entry", func(t *testing.T) {
		uc := &stubAccountUsecase{
			registerBatchFn: func(_ context.Context, _ []*usecase.RegisterAccountInput) (*usecase.RegisterBatchOutput, error) {
				t.Fatal("usecase must not be called on validation failure")

				return nil, nil
			},
		}

		e := newTestEcho()
		e.POST("/accounts/register-multiple", NewAccountHandler(uc, logger).RegisterMultiple)

		rec := doJSON(e, http.MethodPost, "/accounts/register-multiple",
			`[{"username":"alice","email":"alice@example.com","password":"pw"},
			  {"username":"","email":"bob@example.com","password":"pw"}]`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountHandler_Delete(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc := &stubAccountUsecase{
		deleteFn: func(_ context.Context, keys []string) (*usecase.DeleteAccountsOutput, error) {
			assert.Equal(t, []string{"alice", "0b46a9ba-c582-4a3c-8717-22e17745ee60"}, keys)

			return &usecase.DeleteAccountsOutput{DeletedCount: 2, DeletedIDs: keys}, nil
		},
	}

	e := newTestEcho()
	e.POST("/accounts/delete", NewAccountHandler(uc, logger).Delete)

	rec := doJSON(e, http.MethodPost, "/accounts/delete",
		`["alice","0b46a9ba-c582-4a3c-8717-22e17745ee60"]`)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["deleted_count"])
}

func TestAccountHandler_Login(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unauthorized on bad credentials", func(t *testing.T) {
		uc := &stubAccountUsecase{
			loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
				return nil, domainerrors.ErrInvalidCredentials
			},
		}

		e := newTestEcho()
		e.POST("/accounts/login", NewAccountHandler(uc, logger).Login)

		rec := doJSON(e, http.MethodPost, "/accounts/login",
			`{"email":"alice@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)
	})

	t.Run("ok on valid credentials", func(t *testing.T) {
		accountID := uuid.New()
		uc := &stubAccountUsecase{
			loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
				return &usecase.LoginOutput{
					Account: &usecase.AccountSummary{ID: accountID, Username: "alice", Email: input.Email},
				}, nil
			},
		}

		e := newTestEcho()
		e.POST("/accounts/login", NewAccountHandler(uc, logger).Login)

		rec := doJSON(e, http.MethodPost, "/accounts/login",
			`{"email":"alice@example.com","password":"s3cret"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
	})
}

func TestAccountHandler_List(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc := &stubAccountUsecase{
		listFn: func(_ context.Context) ([]*usecase.AccountSummary, error) {
			return []*usecase.AccountSummary{
				{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
			}, nil
		},
	}

	e := newTestEcho()
	e.GET("/accounts", NewAccountHandler(uc, logger).List)

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}
