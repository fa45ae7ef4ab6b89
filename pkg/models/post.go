package models

import (
	"html/template"
	"time"
)

// Post represents one blog document loaded from the content directory.
type Post struct {
	Path         string        `json:"path"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Author       string        `json:"author"`
	Published    int64         `json:"published"` // epoch milliseconds
	Tags         []string      `json:"tags"`
	ExternalLink string        `json:"external_link,omitempty"`
	Body         string        `json:"body,omitempty"`
	HTML         template.HTML `json:"-"` // compiled body, set by LoadPost only
	ReadingTime  int           `json:"reading_time,omitempty"`
}

// PublishedTime converts the epoch-millisecond timestamp to time.Time.
func (p Post) PublishedTime() time.Time {
	return time.UnixMilli(p.Published).UTC()
}

// DateString formats the publish date for page rendering.
func (p Post) DateString() string {
	return p.PublishedTime().Format("Jan 2, 2006")
}

// HasTag reports whether the post carries the given tag.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Siblings holds the chronological neighbors of a post. Previous is the
// next-newer post in ascending publish order, Next the next-older one;
// either may be nil at the extremes of the collection.
type Siblings struct {
	Previous *Post `json:"previous,omitempty"`
	Current  *Post `json:"current"`
	Next     *Post `json:"next,omitempty"`
}
