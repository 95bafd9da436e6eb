package api

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes

	"starwars_api/internal/repository" // Persistence operations
	"starwars_api/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ListPlanetsHandler returns all planets
func ListPlanetsHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, planetsCacheKey, repo.ListPlanets)
	}
}

// GetPlanetHandler returns one planet
func GetPlanetHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Planet not found")
			return
		}
		planet, err := repo.GetPlanet(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Planet not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to fetch planet", logrus.Fields{"planet_id": id})
			return
		}
		c.JSON(http.StatusOK, planet)
	}
}

// CreatePlanetHandler creates a planet; name is required
func CreatePlanetHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CatalogRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondMessage(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if !req.hasName() {
			respondMessage(c, http.StatusBadRequest, "Name is required")
			return
		}
		planet, err := repo.CreatePlanet(c.Request.Context(), *req.Name, req.Description.Value)
		if err != nil {
			respondInternal(c, err, "Failed to create planet", logrus.Fields{"name": *req.Name})
			return
		}
		logrus.WithFields(logrus.Fields{
			"planet_id": planet.ID,   // New planet ID
			"name":      planet.Name, // Planet name
		}).Info("Planet created")
		invalidate(c, cache, planetsCacheKey)
		c.JSON(http.StatusCreated, planet)
	}
}

// UpdatePlanetHandler overwrites only the supplied fields of a planet
func UpdatePlanetHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Planet not found")
			return
		}
		var req CatalogRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondMessage(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		// A supplied name still has to be non-empty
		if req.Name != nil && !req.hasName() {
			respondMessage(c, http.StatusBadRequest, "Name is required")
			return
		}
		planet, err := repo.UpdatePlanet(c.Request.Context(), id, req.patch())
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Planet not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to update planet", logrus.Fields{"planet_id": id})
			return
		}
		logrus.WithField("planet_id", id).Info("Planet updated")
		invalidate(c, cache, planetsCacheKey)
		c.JSON(http.StatusOK, planet)
	}
}

// DeletePlanetHandler deletes a planet
func DeletePlanetHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Planet not found")
			return
		}
		err := repo.DeletePlanet(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Planet not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to delete planet", logrus.Fields{"planet_id": id})
			return
		}
		logrus.WithField("planet_id", id).Info("Planet deleted")
		// Favorites of deleted planets change, so the embedded user lists go too
		invalidate(c, cache, planetsCacheKey, usersCacheKey)
		respondMessage(c, http.StatusOK, "Planet deleted")
	}
}
