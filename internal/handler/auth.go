// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/eduree/metaon/internal/auth"
	"github.com/eduree/metaon/internal/middleware"
	"github.com/eduree/metaon/internal/render"
)

// AuthHandler handles the shared-password admin login.
type AuthHandler struct {
	gate            *auth.Gate
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gate *auth.Gate, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		gate:            gate,
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Authenticated admins are sent
// straight to the console.
// GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetBool(r.Context(), middleware.SessionKeyAdmin) {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{Title: "Admin Login"}); err != nil {
		logAndInternalError(w, "rendering login page", "error", err)
	}
}

// Login handles the login form submission.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	password := r.FormValue("password")
	if password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Password is required")
		return
	}

	ip := clientIP(r)

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsLocked(ip); locked {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Try again in %s.", formatDuration(remaining)))
			return
		}
	}

	if !h.gate.Check(password) {
		slog.Warn("admin login failed", "ip", ip)
		if h.loginProtection != nil {
			if locked, lockDuration := h.loginProtection.RecordFailedAttempt(ip); locked {
				flashError(w, r, h.renderer, redirectLogin,
					fmt.Sprintf("Too many failed attempts. Try again in %s.", formatDuration(lockDuration)))
				return
			}
			if remaining := h.loginProtection.RemainingAttempts(ip); remaining <= 3 && remaining > 0 {
				flashError(w, r, h.renderer, redirectLogin,
					fmt.Sprintf("Incorrect password. %d attempts remaining.", remaining))
				return
			}
		}
		flashError(w, r, h.renderer, redirectLogin, "Incorrect password")
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(ip)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyAdmin, true)

	slog.Info("admin logged in", "ip", ip)
	flashSuccess(w, r, h.renderer, redirectAdmin, "Welcome back")
}

// Logout destroys the admin session.
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("admin logged out")
	flashAndRedirect(w, r, h.renderer, redirectLogin, "Logged out", "info")
}

// clientIP extracts the client address for lockout tracking.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
