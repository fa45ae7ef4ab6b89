package services

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"portfolio-site/pkg/config"
	"portfolio-site/pkg/models"
)

var (
	siteMutex   sync.Mutex
	siteProfile *models.SiteProfile
)

// GetSiteProfile reads site.yml once and returns the cached profile on
// later calls. The profile only changes with a deploy, so no invalidation
// path is needed.
func GetSiteProfile() (*models.SiteProfile, error) {
	siteMutex.Lock()
	defer siteMutex.Unlock()

	if siteProfile != nil {
		return siteProfile, nil
	}

	content, err := os.ReadFile(config.SiteFile)
	if err != nil {
		return nil, fmt.Errorf("read site profile: %w", err)
	}

	var profile models.SiteProfile
	if err := yaml.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("parse site profile: %w", err)
	}

	siteProfile = &profile
	return siteProfile, nil
}
