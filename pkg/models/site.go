package models

// SiteProfile is the portfolio identity rendered on the home page,
// loaded from site.yml.
type SiteProfile struct {
	Name     string       `yaml:"name"`
	Tagline  string       `yaml:"tagline"`
	Email    string       `yaml:"email"`
	Links    []SocialLink `yaml:"links"`
	Projects []Project    `yaml:"projects"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Tags        []string `yaml:"tags,omitempty"`
}
