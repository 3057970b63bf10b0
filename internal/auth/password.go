// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth implements the shared-password admin gate.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Gate checks admin login attempts against a single shared password. When
// a bcrypt hash is configured it takes precedence over the plaintext
// password. This is a UI gate for a single-operator CMS, not a user
// account system.
type Gate struct {
	password string
	hash     string
}

// NewGate creates a gate. Exactly one of password/hash needs to be set;
// when both are, the hash wins.
func NewGate(password, hash string) *Gate {
	return &Gate{password: password, hash: hash}
}

// Check reports whether the attempt unlocks the gate.
func (g *Gate) Check(attempt string) bool {
	if g.hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.hash), []byte(attempt)) == nil
	}
	if g.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.password), []byte(attempt)) == 1
}

// HashPassword produces a bcrypt hash suitable for METAON_ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}
