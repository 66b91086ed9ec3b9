// templates.go - Embedded HTML templates rendered by gin

package templates

import (
	"embed"
	"html/template"

	"go-tour-booking/flash"
	"go-tour-booking/i18n"
)

//go:embed html/*.html
var files embed.FS

// Load parses every embedded page together with the shared layout.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "html/*.html")
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// t translates key into the page language: {{ t .Lang "nav.home" }}
		"t": func(lang, key string, args ...interface{}) string {
			tag, ok := i18n.Parse(lang)
			if !ok {
				tag = i18n.Ukrainian
			}
			return i18n.T(tag, key, args...)
		},
		"flashText": func(lang string, notice flash.Notice) string {
			tag, ok := i18n.Parse(lang)
			if !ok {
				tag = i18n.Ukrainian
			}
			args := make([]interface{}, len(notice.Args))
			for i, a := range notice.Args {
				args[i] = a
			}
			return i18n.T(tag, notice.Key, args...)
		},
	}
}
