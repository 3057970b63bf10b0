// Package i18n resolves the preferred display language for a request.
// Every piece of copy is a static English/Korean pair shown together; the
// preference only decides which line is rendered first.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/eduree/metaon/internal/model"
)

// CookieName stores an explicit language choice made via the navbar.
const CookieName = "metaon_lang"

var (
	supported = []language.Tag{
		language.English, // first tag is the fallback
		language.Korean,
	}
	matcher = language.NewMatcher(supported)
)

// Preferred returns "en" or "kr" for the request, checking the explicit
// cookie first and falling back to Accept-Language negotiation.
func Preferred(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if c.Value == model.LangEN || c.Value == model.LangKR {
			return c.Value
		}
	}

	tag, _ := language.MatchStrings(matcher, r.Header.Get("Accept-Language"))
	if base, _ := tag.Base(); base.String() == "ko" {
		return model.LangKR
	}
	return model.LangEN
}

// SetPreference writes the language cookie.
func SetPreference(w http.ResponseWriter, lang string) {
	if lang != model.LangEN && lang != model.LangKR {
		lang = model.LangEN
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
