package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/jwt"
	"github.com/wesshacks/wesshacks/internal/logger"
)

// Identity is the resolved caller, carried in the request context. JTI is the
// id of the session behind the presented token; logout revokes it.
type Identity struct {
	UserID   uuid.UUID
	Username string
	JTI      string
}

type identityKey struct{}

// SetIdentityToContext stores the resolved identity in the context.
func SetIdentityToContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentityFromContext retrieves the caller identity. ok is false for anonymous requests.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// TokenParser defines the token operations needed by the auth middlewares.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionChecker reports whether a token's jti is still live.
type SessionChecker interface {
	IsActive(ctx context.Context, jti string) (bool, error)
}

type authErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(authErrorResponse{
		Status:  "error",
		Message: "Unauthorized",
	})
}

// resolveIdentity parses the bearer token, verifies it, and checks the session store.
func resolveIdentity(ctx context.Context, r *http.Request, parser TokenParser, store SessionChecker) (Identity, bool) {
	tokenString, err := parser.GetTokenFromRequest(ctx, r)
	if err != nil {
		return Identity{}, false
	}

	claims, err := parser.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("token rejected", "err", err)
		return Identity{}, false
	}

	active, err := store.IsActive(ctx, claims.JTI)
	if err != nil {
		logger.Log.Errorw("session lookup failed", "err", err)
		return Identity{}, false
	}
	if !active {
		logger.Log.Infow("token revoked or expired", "jti", claims.JTI)
		return Identity{}, false
	}

	return Identity{UserID: claims.UserID, Username: claims.Username, JTI: claims.JTI}, true
}

// AuthMiddleware resolves the caller identity and rejects anonymous requests.
func AuthMiddleware(parser TokenParser, store SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, ok := resolveIdentity(ctx, r, parser, store)
			if !ok {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetIdentityToContext(ctx, id)))
		})
	}
}

// OptionalAuthMiddleware resolves the caller identity when a valid token is
// present and passes anonymous requests through untouched.
func OptionalAuthMiddleware(parser TokenParser, store SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if id, ok := resolveIdentity(ctx, r, parser, store); ok {
				ctx = SetIdentityToContext(ctx, id)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
