// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Inquiry is a contact-form submission record. Inquiries are append-only;
// the admin console lists them but never edits or deletes them.
type Inquiry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	Role    string    `json:"role"`
	Email   string    `json:"email"`
	Country string    `json:"country"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
