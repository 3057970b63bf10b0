package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// New creates a session manager. When a SQLite database is available the
// sessions live there and survive restarts; otherwise the default
// in-memory store is used (matching the file and redis content backends,
// where an admin login per process is acceptable).
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	if db != nil {
		sm.Store = sqlite3store.New(db)
	}

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev

	return sm
}
