// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// SecurityHeadersConfig holds configuration for security headers.
type SecurityHeadersConfig struct {
	// IsDevelopment disables HSTS and relaxes CSP for local work.
	IsDevelopment bool

	// ContentSecurityPolicy overrides the default policy when set.
	ContentSecurityPolicy string

	// HSTSMaxAge is the max-age for Strict-Transport-Security in seconds.
	// Zero disables HSTS.
	HSTSMaxAge int

	// HSTSIncludeSubDomains includes subdomains in the HSTS policy.
	HSTSIncludeSubDomains bool

	// FrameOptions controls X-Frame-Options: "DENY", "SAMEORIGIN", or
	// empty to disable.
	FrameOptions string

	// ReferrerPolicy controls the Referrer-Policy header.
	ReferrerPolicy string
}

// DefaultSecurityHeadersConfig returns a SecurityHeadersConfig with
// sensible defaults. Image sources allow https and data URLs because
// cover images may be hot-linked or stored inline as data URLs.
func DefaultSecurityHeadersConfig(isDev bool) SecurityHeadersConfig {
	cfg := SecurityHeadersConfig{
		IsDevelopment:  isDev,
		HSTSMaxAge:     31536000, // 1 year
		FrameOptions:   "SAMEORIGIN",
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}

	directives := map[string]string{
		"default-src": "'self'",
		"script-src":  "'self' 'unsafe-inline'",
		"style-src":   "'self' 'unsafe-inline' https://fonts.googleapis.com",
		"img-src":     "'self' data: blob: https:",
		"font-src":    "'self' data: https://fonts.gstatic.com",
		"connect-src": "'self'",
		"object-src":  "'none'",
		"base-uri":    "'self'",
		"form-action": "'self'",
	}
	if isDev {
		directives["script-src"] = "'self' 'unsafe-inline' 'unsafe-eval'"
	} else {
		cfg.HSTSIncludeSubDomains = true
	}
	cfg.ContentSecurityPolicy = buildCSP(directives)

	return cfg
}

// buildCSP builds a Content-Security-Policy string from a map of directives.
func buildCSP(directives map[string]string) string {
	order := []string{
		"default-src", "script-src", "style-src", "img-src", "font-src",
		"connect-src", "object-src", "base-uri", "form-action",
	}

	var parts []string
	for _, key := range order {
		if value, ok := directives[key]; ok {
			parts = append(parts, key+" "+value)
		}
	}
	return strings.Join(parts, "; ")
}

// SecurityHeaders returns a middleware that adds security headers to
// responses.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.ContentSecurityPolicy != "" {
				w.Header().Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}

			if !cfg.IsDevelopment && cfg.HSTSMaxAge > 0 {
				hsts := "max-age=" + strconv.Itoa(cfg.HSTSMaxAge)
				if cfg.HSTSIncludeSubDomains {
					hsts += "; includeSubDomains"
				}
				w.Header().Set("Strict-Transport-Security", hsts)
			}

			if cfg.FrameOptions != "" {
				w.Header().Set("X-Frame-Options", cfg.FrameOptions)
			}

			w.Header().Set("X-Content-Type-Options", "nosniff")

			if cfg.ReferrerPolicy != "" {
				w.Header().Set("Referrer-Policy", cfg.ReferrerPolicy)
			}

			next.ServeHTTP(w, r)
		})
	}
}
