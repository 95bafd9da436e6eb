package api

import (
	"errors"   // Sentinel comparison
	"io"       // Empty body detection
	"net/http" // HTTP status codes

	"starwars_api/internal/repository" // Persistence operations
	"starwars_api/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// FavoriteRequest carries the owner of a favorite
type FavoriteRequest struct {
	UserID *uint `json:"user_id"` // Owner of the favorite
}

// favoriteKind describes one favorite target type for the shared handlers
type favoriteKind struct {
	target     func(id uint) repository.Target // Builds the repository target
	idField    string                          // Log field of the target id
	deletedMsg string                          // Success message on delete
}

var (
	planetFavorite = favoriteKind{
		target:     repository.PlanetTarget,
		idField:    "planet_id",
		deletedMsg: "Favorite planet deleted",
	}
	personFavorite = favoriteKind{
		target:     repository.CharacterTarget,
		idField:    "character_id",
		deletedMsg: "Favorite person deleted",
	}
)

// AddFavoritePlanetHandler favorites the planet :id for the body's user_id
func AddFavoritePlanetHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return addFavorite(repo, cache, planetFavorite)
}

// AddFavoritePersonHandler favorites the character :id for the body's user_id
func AddFavoritePersonHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return addFavorite(repo, cache, personFavorite)
}

// DeleteFavoritePlanetHandler removes the (user_id, planet :id) favorite
func DeleteFavoritePlanetHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return deleteFavorite(repo, cache, planetFavorite)
}

// DeleteFavoritePersonHandler removes the (user_id, character :id) favorite
func DeleteFavoritePersonHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return deleteFavorite(repo, cache, personFavorite)
}

func addFavorite(repo *repository.Repository, cache *utils.Cache, kind favoriteKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Not found")
			return
		}
		var req FavoriteRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil {
			respondMessage(c, http.StatusBadRequest, "user_id is required")
			return
		}
		fields := logrus.Fields{"user_id": *req.UserID, kind.idField: targetID}
		favorite, err := repo.CreateFavorite(c.Request.Context(), *req.UserID, kind.target(targetID))
		if err != nil {
			respondInternal(c, err, "Failed to create favorite", fields)
			return
		}
		fields["favorite_id"] = favorite.ID
		logrus.WithFields(fields).Info("Favorite created")
		invalidate(c, cache, usersCacheKey)
		c.JSON(http.StatusCreated, favorite)
	}
}

func deleteFavorite(repo *repository.Repository, cache *utils.Cache, kind favoriteKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Favorite not found")
			return
		}
		var req FavoriteRequest // Bind JSON request to struct
		// An empty body is the same as a body without user_id
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondMessage(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		// Without an owner nothing can match
		if req.UserID == nil {
			respondMessage(c, http.StatusNotFound, "Favorite not found")
			return
		}
		fields := logrus.Fields{"user_id": *req.UserID, kind.idField: targetID}
		err := repo.DeleteFavorite(c.Request.Context(), *req.UserID, kind.target(targetID))
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Favorite not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to delete favorite", fields)
			return
		}
		logrus.WithFields(fields).Info("Favorite deleted")
		invalidate(c, cache, usersCacheKey)
		respondMessage(c, http.StatusOK, kind.deletedMsg)
	}
}
