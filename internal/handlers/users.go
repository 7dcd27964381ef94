package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

// User actions accepted by the users endpoint.
const (
	ActionRegister = "register"
	ActionLogin    = "login"
	ActionLogout   = "logout"
)

// Authenticator defines the interface that the auth service must implement.
type Authenticator interface {
	Register(ctx context.Context, username, password, email string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
	Logout(ctx context.Context, jti string) error
}

// AccountReader defines the interface for reading the caller's account.
type AccountReader interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserActionRequest represents the JSON body for the users endpoint
// swagger:model UserActionRequest
type UserActionRequest struct {
	// Action to perform: register, login or logout
	// required: true
	// default: login
	Action string `json:"action" validate:"required"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Password
	// default: secret1234
	Password string `json:"password"`

	// Email, register only
	// default: john@example.com
	Email string `json:"email"`
}

// AuthResponse represents a successful register or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// User id
	UserID uuid.UUID `json:"user_id"`

	// Username
	Username string `json:"username"`
}

// CurrentUserResponse represents the caller's account
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// The account, password hash never included
	Data *models.UserDB `json:"data"`
}

// UsersMessageResponse represents a message-only success response
// swagger:model UsersMessageResponse
type UsersMessageResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Message
	Message string `json:"message"`
}

// UsersErrorResponse represents an error response for the users endpoint
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Response status
	// default: error
	Status string `json:"status"`

	// Error message
	Message string `json:"message"`
}

// NewUserActionHandler returns an HTTP handler dispatching register, login and
// logout. Logout needs a valid token; register and login are anonymous.
// @Summary Register, login or logout
// @Description Performs the account action named in the body
// @Tags users
// @Accept json
// @Produce json
// @Param userActionRequest body handlers.UserActionRequest true "User Action Request"
// @Success 200 {object} handlers.UsersMessageResponse "Logged out"
// @Success 201 {object} handlers.AuthResponse "Token issued"
// @Failure 400 {object} handlers.UsersErrorResponse "Invalid request body or unknown action"
// @Failure 401 {object} handlers.UsersErrorResponse "Invalid username or password"
// @Failure 409 {object} handlers.UsersErrorResponse "Username or email already taken"
// @Router /users [post]
func NewUserActionHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req UserActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeUsersError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeUsersError(w, http.StatusBadRequest, "action is required")
			return
		}

		switch req.Action {
		case ActionRegister:
			handleRegister(ctx, w, svc, req)
		case ActionLogin:
			handleLogin(ctx, w, svc, req)
		case ActionLogout:
			handleLogout(ctx, w, svc)
		default:
			writeUsersError(w, http.StatusBadRequest, "unknown action")
		}
	}
}

func handleRegister(ctx context.Context, w http.ResponseWriter, svc Authenticator, req UserActionRequest) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		writeUsersError(w, http.StatusBadRequest, "username, password and email are required")
		return
	}

	result, err := svc.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken):
			writeUsersError(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrPasswordTooShort):
			writeUsersError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Errorw("failed to register user", "err", err)
			writeUsersError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeAuthResult(w, result)
}

func handleLogin(ctx context.Context, w http.ResponseWriter, svc Authenticator, req UserActionRequest) {
	if req.Username == "" || req.Password == "" {
		writeUsersError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserDoesNotExist),
			errors.Is(err, services.ErrInvalidCredentials):
			writeUsersError(w, http.StatusUnauthorized, "Invalid username or password")
		default:
			logger.Log.Errorw("failed to login user", "err", err)
			writeUsersError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeAuthResult(w, result)
}

func handleLogout(ctx context.Context, w http.ResponseWriter, svc Authenticator) {
	id, ok := middlewares.GetIdentityFromContext(ctx)
	if !ok {
		writeUsersError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := svc.Logout(ctx, id.JTI); err != nil {
		logger.Log.Errorw("failed to logout user", "err", err)
		writeUsersError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UsersMessageResponse{
		Status:  "success",
		Message: "Logged out",
	})
}

func writeAuthResult(w http.ResponseWriter, result *services.AuthResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AuthResponse{
		Status:   "success",
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
	})
}

// NewCurrentUserHandler returns an HTTP handler for reading the caller's account.
// @Summary Current user
// @Description Returns the account behind the presented token
// @Tags users
// @Produce json
// @Success 200 {object} handlers.CurrentUserResponse "The account"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UsersErrorResponse "Account missing"
// @Router /users [get]
// @Security BearerAuth
func NewCurrentUserHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeUsersError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.CurrentUser(ctx, id.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeUsersError(w, http.StatusNotFound, err.Error())
				return
			}
			logger.Log.Errorw("failed to get current user", "err", err)
			writeUsersError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrentUserResponse{
			Status: "success",
			Data:   user,
		})
	}
}

func writeUsersError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(UsersErrorResponse{
		Status:  "error",
		Message: message,
	})
}
