package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-site/pkg/config"
	"portfolio-site/pkg/services"
)

// BlogIndex renders the newest-first listing, optionally filtered by
// ?tag= and paginated by ?page=.
func BlogIndex(c *gin.Context) {
	tag := c.Query("tag")

	posts, err := memo(c).ListPosts(config.BlogDir(), tag, services.SortNewestFirst)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load posts: %v", err)
		return
	}

	page, totalPages := clampPage(c.Query("page"), len(posts), config.PageSize)
	start := (page - 1) * config.PageSize
	end := start + config.PageSize
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	locale := pathLocale(c)
	dict := services.GetDictionary(locale)

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Locale":     string(locale),
		"T":          dict.Strings,
		"Posts":      posts[start:end],
		"Tag":        tag,
		"Page":       page,
		"TotalPages": totalPages,
		"HasPrev":    page > 1,
		"HasNext":    page < totalPages,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
	})
}

// BlogPost renders a single post with its prev/next navigation, or the
// 404 page when the slug is absent from the collection.
func BlogPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := memo(c).LoadPost(config.BlogDir(), slug)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load post: %v", err)
		return
	}
	if post == nil {
		NotFound(c)
		return
	}

	siblings, err := memo(c).ResolveSiblings(config.BlogDir(), slug)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to resolve navigation: %v", err)
		return
	}

	locale := pathLocale(c)
	dict := services.GetDictionary(locale)

	c.HTML(http.StatusOK, "post.html", gin.H{
		"Locale":   string(locale),
		"T":        dict.Strings,
		"Post":     post,
		"Previous": siblings.Previous,
		"Next":     siblings.Next,
	})
}

// clampPage parses ?page= and clamps it to [1, totalPages].
func clampPage(raw string, total, pageSize int) (int, int) {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := 1
	if raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			page = val
		}
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
