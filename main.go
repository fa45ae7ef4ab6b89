package main

import (
	"log"

	"portfolio-site/pkg/config"
	"portfolio-site/pkg/handlers"
	"portfolio-site/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize config
	config.Init()

	if err := services.InitDictionaries(config.LocalesDir); err != nil {
		log.Fatalf("load dictionaries: %v", err)
	}

	r := gin.Default()

	// Session Setup (stores the visitor's locale choice)
	store := cookie.NewStore([]byte(config.SessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))

	// Static Files & Templates
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	// Locale resolution runs ahead of all page routing; the request memo
	// scope lives for exactly one request.
	r.Use(handlers.LocaleRedirect)
	r.Use(handlers.RequestMemo)

	r.GET("/healthz", handlers.Healthz)

	localized := r.Group("/:locale")
	{
		localized.GET("", handlers.Home)
		localized.GET("/blog", handlers.BlogIndex)
		localized.GET("/blog/:slug", handlers.BlogPost)
		localized.POST("/lang", handlers.SetLocale)
	}

	r.NoRoute(handlers.NotFound)

	r.Run(config.Addr)
}
