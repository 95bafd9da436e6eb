package api

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"starwars_api/internal/domain"     // Importing domain models
	"starwars_api/internal/repository" // Persistence operations
	"starwars_api/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// ListUsersHandler returns all users with their favorites
func ListUsersHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, usersCacheKey, repo.ListUsers)
	}
}

// GetUserHandler returns one user with its favorites
func GetUserHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		user, err := repo.GetUser(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to fetch user", logrus.Fields{"user_id": id})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUserHandler registers a user with a hashed password
func CreateUserHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondMessage(c, http.StatusBadRequest, "Username, email and password are required")
			return
		}
		user, err := repo.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondInternal(c, err, "Failed to create user", logrus.Fields{"username": req.Username})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // Username
		}).Info("User created")
		invalidate(c, cache, usersCacheKey)
		c.JSON(http.StatusCreated, user)
	}
}

// ListUserFavoritesHandler returns the favorites of ?user_id=.
// A missing or malformed id matches no favorites.
func ListUserFavoritesHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 0)
		if err != nil {
			c.JSON(http.StatusOK, []domain.Favorite{})
			return
		}
		favorites, err := repo.ListFavoritesByUser(c.Request.Context(), uint(userID))
		if err != nil {
			respondInternal(c, err, "Failed to list favorites", logrus.Fields{"user_id": userID})
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}
