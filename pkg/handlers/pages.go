package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-site/pkg/services"
)

// Home renders the portfolio landing page for the request's locale.
func Home(c *gin.Context) {
	profile, err := services.GetSiteProfile()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load site profile")
		return
	}

	locale := pathLocale(c)
	dict := services.GetDictionary(locale)

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Locale":  string(locale),
		"T":       dict.Strings,
		"Profile": profile,
	})
}

// NotFound renders the localized 404 page.
func NotFound(c *gin.Context) {
	locale := pathLocale(c)
	dict := services.GetDictionary(locale)

	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Locale": string(locale),
		"T":      dict.Strings,
	})
}

// Healthz is a liveness probe, exempt from locale redirects.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
