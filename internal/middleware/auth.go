// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// security headers, CSRF protection, and rate limiting.
package middleware

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyRequestPath stores the request path for log enrichment.
const ContextKeyRequestPath ContextKey = "request_path"

// SessionKeyAdmin marks a session as belonging to an authenticated admin.
const SessionKeyAdmin = "admin_authenticated"

// Admin creates middleware that requires an authenticated admin session
// and redirects to the login page otherwise.
func Admin(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.GetBool(r.Context(), SessionKeyAdmin) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin reports whether the request carries an authenticated admin session.
func IsAdmin(sm *scs.SessionManager, r *http.Request) bool {
	return sm.GetBool(r.Context(), SessionKeyAdmin)
}

// RequestPath creates middleware that stores the request path in the
// context. It is used by the logging handler to include the URL in error
// logs.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath retrieves the request path from the context.
func GetRequestPath(ctx context.Context) string {
	path, ok := ctx.Value(ContextKeyRequestPath).(string)
	if !ok {
		return ""
	}
	return path
}
