package middleware

import (
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// LocaleKey holds the request's language.Tag in the gin context
const LocaleKey = "locale"

// Locale resolves Accept-Language against the supported locales
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := i18n.Match(c.GetHeader("Accept-Language"))
		c.Set(LocaleKey, tag)
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

// GetLocale returns the request locale, matching the header directly when
// Locale did not run
func GetLocale(c *gin.Context) language.Tag {
	if v, ok := c.Get(LocaleKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return i18n.Match(c.GetHeader("Accept-Language"))
}
