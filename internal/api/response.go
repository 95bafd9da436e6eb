package api

import (
	"context"  // Context for repository and cache calls
	"net/http" // HTTP status codes
	"strconv"  // Path id parsing

	"starwars_api/internal/utils" // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Cache keys of the list endpoints
const (
	usersCacheKey   = "users:all"
	peopleCacheKey  = "people:all"
	planetsCacheKey = "planets:all"
)

// cacheHeader tells clients whether a list came from the cache
const cacheHeader = "X-Cache"

// respondMessage writes a {"msg": ...} body
func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// respondInternal logs err with fields and hides it behind a generic 500
func respondInternal(c *gin.Context, err error, action string, fields logrus.Fields) {
	logrus.WithFields(fields).WithError(err).Error(action) // Log the failure with context
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// serveList answers a list endpoint from the cache, loading and storing it on a miss
func serveList[T any](c *gin.Context, cache *utils.Cache, key string, load func(context.Context) ([]T, error)) {
	ctx := c.Request.Context()
	var items []T
	found, err := cache.Get(ctx, key, &items) // Try the cache first
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
	}
	if err == nil && found {
		c.Header(cacheHeader, "HIT")
		c.JSON(http.StatusOK, items)
		return
	}
	items, err = load(ctx) // Fall back to the database
	if err != nil {
		respondInternal(c, err, "List failed", logrus.Fields{"key": key})
		return
	}
	if err := cache.Set(ctx, key, items); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
	c.Header(cacheHeader, "MISS")
	c.JSON(http.StatusOK, items)
}

// invalidate drops cached lists after a mutation
func invalidate(c *gin.Context, cache *utils.Cache, keys ...string) {
	if err := cache.Delete(c.Request.Context(), keys...); err != nil {
		logrus.WithFields(logrus.Fields{"keys": keys, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}
