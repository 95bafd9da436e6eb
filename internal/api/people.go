package api

import (
	"encoding/json" // Description decoding
	"errors"        // Sentinel comparison
	"net/http"      // HTTP status codes

	"starwars_api/internal/repository" // Persistence operations
	"starwars_api/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// OptionalString tells an absent JSON field apart from an explicit null
type OptionalString struct {
	Set   bool    // Field was present in the body
	Value *string // Nil when the field was null
}

// UnmarshalJSON only runs for present fields, null included
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// CatalogRequest is the body of create and update calls on /people and /planets.
// Absent fields leave the stored value alone, a null description clears it.
type CatalogRequest struct {
	Name        *string        `json:"name"`        // Required on create
	Description OptionalString `json:"description"` // Optional
}

// patch converts the request into a repository patch
func (r CatalogRequest) patch() repository.Patch {
	return repository.Patch{
		Name:             r.Name,
		Description:      r.Description.Value,
		ClearDescription: r.Description.Set && r.Description.Value == nil,
	}
}

// hasName reports whether a non-empty name was supplied
func (r CatalogRequest) hasName() bool {
	return r.Name != nil && *r.Name != ""
}

// ListPeopleHandler returns all characters
func ListPeopleHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, peopleCacheKey, repo.ListCharacters)
	}
}

// GetPersonHandler returns one character
func GetPersonHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Character not found")
			return
		}
		character, err := repo.GetCharacter(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Character not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to fetch character", logrus.Fields{"character_id": id})
			return
		}
		c.JSON(http.StatusOK, character)
	}
}

// CreatePersonHandler creates a character; name is required
func CreatePersonHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
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
		character, err := repo.CreateCharacter(c.Request.Context(), *req.Name, req.Description.Value)
		if err != nil {
			respondInternal(c, err, "Failed to create character", logrus.Fields{"name": *req.Name})
			return
		}
		logrus.WithFields(logrus.Fields{
			"character_id": character.ID,   // New character ID
			"name":         character.Name, // Character name
		}).Info("Character created")
		invalidate(c, cache, peopleCacheKey)
		c.JSON(http.StatusCreated, character)
	}
}

// UpdatePersonHandler overwrites only the supplied fields of a character
func UpdatePersonHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Character not found")
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
		character, err := repo.UpdateCharacter(c.Request.Context(), id, req.patch())
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Character not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to update character", logrus.Fields{"character_id": id})
			return
		}
		logrus.WithField("character_id", id).Info("Character updated")
		invalidate(c, cache, peopleCacheKey)
		c.JSON(http.StatusOK, character)
	}
}

// DeletePersonHandler deletes a character
func DeletePersonHandler(repo *repository.Repository, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			respondMessage(c, http.StatusNotFound, "Character not found")
			return
		}
		err := repo.DeleteCharacter(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Character not found")
			return
		} else if err != nil {
			respondInternal(c, err, "Failed to delete character", logrus.Fields{"character_id": id})
			return
		}
		logrus.WithField("character_id", id).Info("Character deleted")
		// Favorites of deleted characters change, so the embedded user lists go too
		invalidate(c, cache, peopleCacheKey, usersCacheKey)
		respondMessage(c, http.StatusOK, "Character deleted")
	}
}
