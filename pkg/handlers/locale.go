package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"portfolio-site/pkg/services"
)

const sessionLocaleKey = "locale"

// Exempt paths bypass the locale prefix entirely. Exact paths match
// exactly so that e.g. /healthzfoo still gets a locale.
var (
	exemptPaths    = []string{"/favicon.ico", "/healthz"}
	exemptPrefixes = []string{"/static/"}
)

func redirectExempt(path string) bool {
	for _, p := range exemptPaths {
		if path == p {
			return true
		}
	}
	for _, p := range exemptPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// LocaleRedirect runs ahead of all page routing. Requests whose path does
// not start with a supported locale are redirected to the same path
// prefixed with the visitor's stored locale preference, or the default
// locale when none is stored. Prefixed requests pass through untouched.
func LocaleRedirect(c *gin.Context) {
	path := c.Request.URL.Path
	if redirectExempt(path) {
		c.Next()
		return
	}

	if services.HasLocale(path) {
		c.Next()
		return
	}

	target, _ := services.RewritePath(path)
	if stored := sessionLocale(c); stored != "" {
		target = "/" + stored + path
	}
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// SetLocale stores an explicit language choice in the session and sends
// the visitor to that locale's home page.
func SetLocale(c *gin.Context) {
	code := c.PostForm("locale")
	if !services.IsLocale(code) {
		code = string(services.DefaultLocale)
	}

	session := sessions.Default(c)
	session.Set(sessionLocaleKey, code)
	session.Save()

	c.Redirect(http.StatusFound, "/"+code)
}

func sessionLocale(c *gin.Context) string {
	session := sessions.Default(c)
	stored, ok := session.Get(sessionLocaleKey).(string)
	if !ok || !services.IsLocale(stored) {
		return ""
	}
	return stored
}

// pathLocale resolves the locale of the current request from its path.
func pathLocale(c *gin.Context) services.Locale {
	return services.ResolveLocale(c.Request.URL.Path)
}
