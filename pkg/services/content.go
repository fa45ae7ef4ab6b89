package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"portfolio-site/pkg/models"
)

// ErrMalformedPost indicates a content file is missing required frontmatter.
var ErrMalformedPost = errors.New("malformed post")

// MalformedPostError names the offending file and field. It unwraps to
// ErrMalformedPost.
type MalformedPostError struct {
	File  string
	Field string
}

func (e *MalformedPostError) Error() string {
	return fmt.Sprintf("post %s: missing required frontmatter field %q", e.File, e.Field)
}

func (e *MalformedPostError) Unwrap() error {
	return ErrMalformedPost
}

// SortOrder selects the chronological direction of a listing.
type SortOrder int

const (
	// SortNewestFirst is the order for listing views.
	SortNewestFirst SortOrder = iota
	// SortOldestFirst is the order used for sibling resolution.
	SortOldestFirst
)

type postFrontMatter struct {
	Title        string   `yaml:"title"`
	Slug         string   `yaml:"slug"`
	Description  string   `yaml:"description"`
	Author       string   `yaml:"author"`
	Published    *int64   `yaml:"published"`
	Tags         []string `yaml:"tags"`
	ExternalLink string   `yaml:"externalLink"`
}

// ListPosts enumerates the markdown documents in dir, returning their
// metadata sorted by publish timestamp. A non-empty tag keeps only posts
// carrying it; an empty result is valid. A single malformed document fails
// the whole load.
func ListPosts(dir, tag string, order SortOrder) ([]models.Post, error) {
	posts, err := readPosts(dir)
	if err != nil {
		return nil, err
	}

	if tag != "" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.HasTag(tag) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	sortPosts(posts, order)
	return posts, nil
}

// LoadPost loads the single document whose slug matches, compiles its body
// to HTML, and computes the reading-time estimate. It returns (nil, nil)
// when no document carries the slug.
func LoadPost(dir, slug string) (*models.Post, error) {
	posts, err := readPosts(dir)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}
		p := posts[i]
		html, err := RenderMarkdown(p.Body)
		if err != nil {
			return nil, fmt.Errorf("render post %s: %w", p.Path, err)
		}
		p.HTML = html
		p.ReadingTime = readingTime(p.Body)
		return &p, nil
	}

	return nil, nil
}

// ResolveSiblings computes the chronological neighbors of the post with
// the given slug. In ascending publish order, Previous is the document at
// index+1 and Next the one at index-1. It returns (nil, nil) when the slug
// is not in the collection.
func ResolveSiblings(dir, slug string) (*models.Siblings, error) {
	posts, err := ListPosts(dir, "", SortOldestFirst)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range posts {
		if posts[i].Slug == slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	sib := &models.Siblings{Current: &posts[idx]}
	if idx+1 < len(posts) {
		sib.Previous = &posts[idx+1]
	}
	if idx > 0 {
		sib.Next = &posts[idx-1]
	}
	return sib, nil
}

func readPosts(dir string) ([]models.Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var posts []models.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read post %s: %w", path, err)
		}

		post, err := parsePost(entry.Name(), content)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func parsePost(name string, content []byte) (models.Post, error) {
	var fm postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &fm)
	if err != nil {
		return models.Post{}, fmt.Errorf("parse frontmatter of %s: %w", name, err)
	}

	if field := missingField(fm); field != "" {
		return models.Post{}, &MalformedPostError{File: name, Field: field}
	}

	return models.Post{
		Path:         name,
		Slug:         fm.Slug,
		Title:        fm.Title,
		Description:  fm.Description,
		Author:       fm.Author,
		Published:    *fm.Published,
		Tags:         fm.Tags,
		ExternalLink: fm.ExternalLink,
		Body:         strings.TrimSpace(string(body)),
	}, nil
}

func missingField(fm postFrontMatter) string {
	switch {
	case fm.Title == "":
		return "title"
	case fm.Slug == "":
		return "slug"
	case fm.Description == "":
		return "description"
	case fm.Author == "":
		return "author"
	case fm.Published == nil:
		return "published"
	case fm.Tags == nil:
		return "tags"
	}
	return ""
}

// sortPosts orders posts by publish timestamp. The stable sort keeps the
// directory enumeration order for equal timestamps.
func sortPosts(posts []models.Post, order SortOrder) {
	sort.SliceStable(posts, func(i, j int) bool {
		if order == SortOldestFirst {
			return posts[i].Published < posts[j].Published
		}
		return posts[i].Published > posts[j].Published
	})
}

// readingTime estimates minutes to read at 200 words per minute, words
// being whitespace-delimited tokens. Rounds up, so any non-empty body
// yields at least 1.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	return (words + 199) / 200
}
