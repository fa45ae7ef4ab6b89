package services

import (
	"fmt"
	"sync"

	"portfolio-site/pkg/models"
)

// RequestCache deduplicates content loads within a single render pass.
// One instance is created per request and discarded with it, so edited
// content is always visible on the next request. Keys are derived from
// the operation and its arguments.
type RequestCache struct {
	mutex   sync.Mutex
	entries map[string]memoEntry
}

type memoEntry struct {
	value any
	err   error
}

func NewRequestCache() *RequestCache {
	return &RequestCache{entries: map[string]memoEntry{}}
}

func (rc *RequestCache) memo(key string, load func() (any, error)) (any, error) {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	if entry, ok := rc.entries[key]; ok {
		return entry.value, entry.err
	}

	value, err := load()
	rc.entries[key] = memoEntry{value: value, err: err}
	return value, err
}

// ListPosts is ListPosts memoized for the life of this request.
func (rc *RequestCache) ListPosts(dir, tag string, order SortOrder) ([]models.Post, error) {
	key := fmt.Sprintf("list:%s:%s:%d", dir, tag, order)
	value, err := rc.memo(key, func() (any, error) {
		return ListPosts(dir, tag, order)
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Post), nil
}

// LoadPost is LoadPost memoized for the life of this request.
func (rc *RequestCache) LoadPost(dir, slug string) (*models.Post, error) {
	key := fmt.Sprintf("post:%s:%s", dir, slug)
	value, err := rc.memo(key, func() (any, error) {
		return LoadPost(dir, slug)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Post), nil
}

// ResolveSiblings is ResolveSiblings memoized for the life of this request.
func (rc *RequestCache) ResolveSiblings(dir, slug string) (*models.Siblings, error) {
	key := fmt.Sprintf("siblings:%s:%s", dir, slug)
	value, err := rc.memo(key, func() (any, error) {
		return ResolveSiblings(dir, slug)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Siblings), nil
}
