package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

func TestUserActionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice", JTI: "jti-1"}
	result := &services.AuthResult{Token: "JWT_TOKEN", UserID: userID, Username: "alice"}

	tests := []struct {
		name         string
		inputBody    interface{}
		authed       bool
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "register success",
			inputBody: UserActionRequest{
				Action:   ActionRegister,
				Username: "alice",
				Password: "longenough",
				Email:    "alice@example.com",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "longenough", "alice@example.com").
					Return(result, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "register username taken",
			inputBody: UserActionRequest{
				Action:   ActionRegister,
				Username: "alice",
				Password: "longenough",
				Email:    "alice@example.com",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "longenough", "alice@example.com").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "register email taken",
			inputBody: UserActionRequest{
				Action:   ActionRegister,
				Username: "alice2",
				Password: "longenough",
				Email:    "alice@example.com",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice2", "longenough", "alice@example.com").
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "register short password",
			inputBody: UserActionRequest{
				Action:   ActionRegister,
				Username: "alice",
				Password: "short",
				Email:    "alice@example.com",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "short", "alice@example.com").
					Return(nil, services.ErrPasswordTooShort)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "register missing fields",
			inputBody: UserActionRequest{
				Action:   ActionRegister,
				Username: "alice",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "login success",
			inputBody: UserActionRequest{
				Action:   ActionLogin,
				Username: "alice",
				Password: "longenough",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "longenough").
					Return(result, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "login failure is unauthorized",
			inputBody: UserActionRequest{
				Action:   ActionLogin,
				Username: "alice",
				Password: "wrong",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "login unknown user is unauthorized",
			inputBody: UserActionRequest{
				Action:   ActionLogin,
				Username: "ghost",
				Password: "whatever12",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost", "whatever12").
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:      "logout success",
			inputBody: UserActionRequest{Action: ActionLogout},
			authed:    true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Logout(gomock.Any(), "jti-1").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "logout without token",
			inputBody:    UserActionRequest{Action: ActionLogout},
			authed:       false,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unknown action",
			inputBody:    UserActionRequest{Action: "frobnicate"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing action",
			inputBody:    UserActionRequest{Username: "alice"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			inputBody: UserActionRequest{
				Action:   ActionLogin,
				Username: "alice",
				Password: "longenough",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "longenough").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(bodyBytes))
			if tt.authed {
				req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
			}
			w := httptest.NewRecorder()

			NewUserActionHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp AuthResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "JWT_TOKEN", resp.Token)
				assert.Equal(t, userID, resp.UserID)
			}
		})
	}
}

func TestCurrentUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountReader(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice"}

	t.Run("returns the account without the hash", func(t *testing.T) {
		mockSvc.EXPECT().
			CurrentUser(gomock.Any(), userID).
			Return(&models.UserDB{
				UserID:       userID,
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$secret",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
		w := httptest.NewRecorder()

		NewCurrentUserHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")

		var resp CurrentUserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.Data.Username)
		assert.Equal(t, "alice@example.com", resp.Data.Email)
	})

	t.Run("no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		NewCurrentUserHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("account missing", func(t *testing.T) {
		mockSvc.EXPECT().
			CurrentUser(gomock.Any(), userID).
			Return(nil, services.ErrUserDoesNotExist)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
		w := httptest.NewRecorder()

		NewCurrentUserHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
