package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-site/pkg/services"
)

const memoKey = "request_memo"

// RequestMemo installs a fresh content memoization scope for each request.
// The scope dies with the request, so nothing survives a content edit.
func RequestMemo(c *gin.Context) {
	c.Set(memoKey, services.NewRequestCache())
	c.Next()
}

func memo(c *gin.Context) *services.RequestCache {
	if cached, ok := c.Get(memoKey); ok {
		return cached.(*services.RequestCache)
	}
	return services.NewRequestCache()
}
