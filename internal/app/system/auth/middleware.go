// internal/app/system/auth/middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"go.uber.org/zap"
)

// ErrUserNotFound is returned by UserFetcher implementations when the
// token subject no longer exists.
var ErrUserNotFound = errors.New("user not found")

// UserFetcher loads fresh user data for a verified token subject on each
// request, so tier changes and admin grants take effect immediately.
// Implementations return ErrUserNotFound when the user no longer exists;
// any other error means the lookup itself failed.
type UserFetcher interface {
	FetchUser(ctx context.Context, userID string) (*models.User, error)
}

// Verifier authenticates bearer tokens and loads the current user into the
// request context.
type Verifier struct {
	tokens  *TokenManager
	fetcher UserFetcher
	log     *zap.Logger
}

// NewVerifier builds a Verifier from a token manager and a user fetcher.
func NewVerifier(tokens *TokenManager, fetcher UserFetcher, logger *zap.Logger) *Verifier {
	return &Verifier{tokens: tokens, fetcher: fetcher, log: logger}
}

// RequireUser rejects requests without a valid bearer token bound to an
// existing user. On success the user is available via CurrentUser.
func (v *Verifier) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, err := v.tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := v.fetcher.FetchUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				httpjson.Error(w, http.StatusUnauthorized, "User not found")
				return
			}
			// A store failure is not an authentication verdict.
			v.log.Error("auth: user lookup failed",
				zap.String("user_id", userID), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Failed to authenticate")
			return
		}

		next.ServeHTTP(w, withUser(r, user))
	})
}

// RequireAdmin allows only users with the admin flag. It must be mounted
// inside RequireUser.
func (v *Verifier) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !u.IsAdmin {
			httpjson.Error(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
