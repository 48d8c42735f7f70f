package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"avercms/internal/auth"
	"avercms/internal/repository"
	"avercms/internal/slugs"

	"github.com/gin-gonic/gin"
)

var errInvalidTitle = errors.New("title cannot be converted to a slug")

// requireEditor enforces the write gate shared by every mutating
// endpoint: a missing identity is 401, a role outside the allow-list is
// 403. Returns the caller id for ownership stamping.
func requireEditor(c *gin.Context, policy auth.Policy) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Authentication required",
		})
		return 0, false
	}
	userID, _ := raw.(uint)

	role := c.GetString("role")
	if !policy.Allows(role) {
		c.JSON(http.StatusForbidden, gin.H{
			"message": "You do not have permission for this action",
		})
		return 0, false
	}

	return userID, true
}

// parseID reads a numeric document id from the named path parameter,
// responding 400 when it is malformed.
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid " + label + " ID format",
		})
		return 0, false
	}
	return uint(id), true
}

// uniqueSlug derives a slug from the title and, when the token is
// already taken, appends a millisecond timestamp. excludeID keeps a
// document from colliding with its own slug on title updates.
func uniqueSlug[T repository.Sluggable](repo repository.ContentRepository[T], title string, excludeID uint) (string, error) {
	s, err := slugs.Make(title)
	if err != nil || s == "" {
		return "", errInvalidTitle
	}
	exists, err := repo.SlugExists(s, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		s = slugs.WithTimestamp(s)
	}
	return s, nil
}
