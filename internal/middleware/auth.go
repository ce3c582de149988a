// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// userKey is the context key for the resolved user.
const userKey contextKey = "user"

// identityClaims is the JWT payload issued by the external login gateway.
// Subject carries the user's open id.
type identityClaims struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	LoginMethod string `json:"loginMethod,omitempty"`
	Role        string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate resolves the caller's identity from a bearer token and stores
// the user in the request context. The token is an HS256 JWT minted by the
// login gateway; its claims are upserted into the users table so the row
// reflects the latest sign-in. This middleware does NOT enforce
// authentication — requests without a valid token proceed anonymously and
// the handlers decide what anonymous callers may do.
func Authenticate(users *store.UserStore, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims := &identityClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !parsed.Valid || claims.Subject == "" {
				// Invalid token — treat as unauthenticated.
				slog.Warn("rejected bearer token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			user := resolveUser(users, claims)
			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveUser upserts the token identity and returns the stored row, which
// is authoritative for the role (including owner promotion). When storage is
// unavailable the claims themselves stand in, so that role checks still work
// and mutations fail later with an explicit storage error.
func resolveUser(users *store.UserStore, claims *identityClaims) *models.User {
	up := store.UpsertUser{OpenID: claims.Subject}
	if claims.Name != "" {
		up.Name = &claims.Name
	}
	if claims.Email != "" {
		up.Email = &claims.Email
	}
	if claims.LoginMethod != "" {
		up.LoginMethod = &claims.LoginMethod
	}
	if claims.Role == string(models.RoleAdmin) {
		admin := models.RoleAdmin
		up.Role = &admin
	}

	user, err := users.Upsert(up)
	if err == nil {
		return user
	}
	slog.Warn("identity upsert failed, using token claims", "open_id", claims.Subject, "error", err)

	role := models.RoleMember
	if claims.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}
	u := &models.User{OpenID: claims.Subject, Role: role}
	if claims.Name != "" {
		u.Name = &claims.Name
	}
	if claims.Email != "" {
		u.Email = &claims.Email
	}
	return u
}

// bearerToken extracts the token from the Authorization header, or returns
// an empty string.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

// UserFromCtx extracts the resolved user from the request context.
// Returns nil if the request is anonymous.
func UserFromCtx(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// WithUser returns a context carrying the given user. Used by tests.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}
