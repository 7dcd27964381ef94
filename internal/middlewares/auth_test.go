package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wesshacks/wesshacks/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Username: "alice", JTI: "jti-1"}

	tests := []struct {
		name             string
		mockSetup        func(p *MockTokenParser, s *MockSessionChecker)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(p *MockTokenParser, s *MockSessionChecker) {
				p.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(p *MockTokenParser, s *MockSessionChecker) {
				p.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				p.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevokedSession",
			mockSetup: func(p *MockTokenParser, s *MockSessionChecker) {
				p.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				p.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
				s.EXPECT().IsActive(gomock.Any(), "jti-1").
					Return(false, nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(p *MockTokenParser, s *MockSessionChecker) {
				p.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				p.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
				s.EXPECT().IsActive(gomock.Any(), "jti-1").
					Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockParser := NewMockTokenParser(ctrl)
			mockSessions := NewMockSessionChecker(ctrl)
			tt.mockSetup(mockParser, mockSessions)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				id, ok := GetIdentityFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, id.UserID)
				assert.Equal(t, "alice", id.Username)
				assert.Equal(t, "jti-1", id.JTI)

				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockParser, mockSessions)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("AnonymousPassesThrough", func(t *testing.T) {
		mockParser := NewMockTokenParser(ctrl)
		mockSessions := NewMockSessionChecker(ctrl)

		mockParser.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		nextCalled := false
		nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			_, ok := GetIdentityFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		handler := OptionalAuthMiddleware(mockParser, mockSessions)(nextHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("IdentityResolved", func(t *testing.T) {
		mockParser := NewMockTokenParser(ctrl)
		mockSessions := NewMockSessionChecker(ctrl)

		mockParser.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("validtoken", nil)
		mockParser.EXPECT().GetClaims(gomock.Any(), "validtoken").
			Return(&jwt.Claims{UserID: userID, Username: "bob", JTI: "jti-2"}, nil)
		mockSessions.EXPECT().IsActive(gomock.Any(), "jti-2").
			Return(true, nil)

		nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetIdentityFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "bob", id.Username)
			w.WriteHeader(http.StatusOK)
		})

		handler := OptionalAuthMiddleware(mockParser, mockSessions)(nextHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
