// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geoip provides IP-to-country lookup using a MaxMind
// GeoLite2-Country database. It is used to prefill the contact form
// country field and degrades to a no-op when no database is configured.
package geoip

import (
	"fmt"
	"net"
	"sync"

	"github.com/oschwald/maxminddb-golang"
)

// Lookup resolves an IP address to an ISO country code.
type Lookup struct {
	mu      sync.RWMutex
	db      *maxminddb.Reader
	enabled bool
}

// geoRecord matches the GeoLite2-Country database structure.
type geoRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// NewLookup creates a disabled lookup. Call Init with a database path to
// enable it.
func NewLookup() *Lookup {
	return &Lookup{}
}

// Init opens the database at the given path. An empty path leaves the
// lookup disabled.
func (g *Lookup) Init(dbPath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if dbPath == "" {
		return nil
	}

	db, err := maxminddb.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening GeoIP database: %w", err)
	}
	g.db = db
	g.enabled = true
	return nil
}

// CountryCode returns the ISO country code for the given address, or ""
// when the lookup is disabled, the address is unparsable, or no record
// exists.
func (g *Lookup) CountryCode(remoteAddr string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.enabled {
		return ""
	}

	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return ""
	}

	var rec geoRecord
	if err := g.db.Lookup(ip, &rec); err != nil {
		return ""
	}
	return rec.Country.ISOCode
}

// Close releases the database.
func (g *Lookup) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	g.enabled = false
	return err
}
