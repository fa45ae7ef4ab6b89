package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	Addr       = ":8080"
	ContentDir = "./content"
	LocalesDir = "./locales"
	SiteFile   = "./site.yml"

	// Blog listing settings
	PageSize = 5

	SessionSecret = "dev-secret-change-me"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Addr = getEnv("ADDR", ":8080")
	ContentDir = getEnv("CONTENT_DIR", "./content")
	LocalesDir = getEnv("LOCALES_DIR", "./locales")
	SiteFile = getEnv("SITE_FILE", "./site.yml")

	SessionSecret = getEnv("SESSION_SECRET", "dev-secret-change-me")

	if ps := os.Getenv("PAGE_SIZE"); ps != "" {
		if val, err := strconv.Atoi(ps); err == nil && val > 0 {
			PageSize = val
		}
	}
}

// BlogDir is the collection directory holding blog posts.
func BlogDir() string {
	return filepath.Join(ContentDir, "blog")
}
