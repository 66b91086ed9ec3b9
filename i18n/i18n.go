// i18n.go - Language selection and message lookup

package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to switch language.
	LangParam = "lang"
	// LangCookieName stores the chosen language.
	LangCookieName = "lang"
)

var (
	Ukrainian = language.Ukrainian
	English   = language.English

	supported = []language.Tag{Ukrainian, English}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the languages with a message catalogue.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Parse maps a language string to a supported tag.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Resolve picks the language for a request: query parameter, then cookie,
// then Accept-Language, then fallback. The bool reports whether the choice
// came from the query parameter and should be remembered in a cookie.
func Resolve(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if tag, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx], false
			}
		}
	}
	return fallback, false
}

// SetCookie remembers the chosen language.
func SetCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// T formats the message for key in the given language.
func T(tag language.Tag, key string, args ...interface{}) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}
