// lang.go - Picks the page language for each request

package middleware

import (
	"go-tour-booking/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

// Language resolves the request language and remembers an explicit choice
// made with the lang query parameter.
func Language(fallback language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, persist := i18n.Resolve(c.Request, fallback)
		if persist {
			i18n.SetCookie(c.Writer, tag)
		}
		c.Set(langKey, tag)
		c.Next()
	}
}

// Lang returns the language chosen for the request.
func Lang(c *gin.Context) language.Tag {
	if v, ok := c.Get(langKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return i18n.Ukrainian
}
