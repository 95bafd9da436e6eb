package api

import (
	"net/http" // HTTP status codes
	"sort"     // Stable sitemap order

	"starwars_api/internal/middleware" // Logging and recovery middleware
	"starwars_api/internal/repository" // Persistence operations
	"starwars_api/internal/utils"      // Cache helpers

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// Endpoint is one entry of the sitemap
type Endpoint struct {
	Method string `json:"method"` // HTTP method
	Path   string `json:"path"`   // Route pattern
}

// NewRouter builds the gin engine with every route of the API
func NewRouter(repo *repository.Repository, cache *utils.Cache) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(middleware.RequestLogger(), middleware.Recovery(), cors.Default())

	// Sitemap
	r.GET("/", SitemapHandler(r))

	// User routes
	r.GET("/users", ListUsersHandler(repo, cache))
	r.POST("/users", CreateUserHandler(repo, cache))
	r.GET("/users/favorites", ListUserFavoritesHandler(repo))
	r.GET("/users/:id", GetUserHandler(repo))

	// Character routes
	r.GET("/people", ListPeopleHandler(repo, cache))
	r.POST("/people", CreatePersonHandler(repo, cache))
	r.GET("/people/:id", GetPersonHandler(repo))
	r.PUT("/people/:id", UpdatePersonHandler(repo, cache))
	r.DELETE("/people/:id", DeletePersonHandler(repo, cache))

	// Planet routes
	r.GET("/planets", ListPlanetsHandler(repo, cache))
	r.POST("/planets", CreatePlanetHandler(repo, cache))
	r.GET("/planets/:id", GetPlanetHandler(repo))
	r.PUT("/planets/:id", UpdatePlanetHandler(repo, cache))
	r.DELETE("/planets/:id", DeletePlanetHandler(repo, cache))

	// Favorite routes
	r.POST("/favorite/planet/:id", AddFavoritePlanetHandler(repo, cache))
	r.POST("/favorite/people/:id", AddFavoritePersonHandler(repo, cache))
	r.DELETE("/favorite/planet/:id", DeleteFavoritePlanetHandler(repo, cache))
	r.DELETE("/favorite/people/:id", DeleteFavoritePersonHandler(repo, cache))

	return r
}

// SitemapHandler lists every registered route
func SitemapHandler(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		endpoints := make([]Endpoint, 0, len(routes))
		for _, route := range routes {
			endpoints = append(endpoints, Endpoint{Method: route.Method, Path: route.Path})
		}
		sort.Slice(endpoints, func(i, j int) bool {
			if endpoints[i].Path == endpoints[j].Path {
				return endpoints[i].Method < endpoints[j].Method
			}
			return endpoints[i].Path < endpoints[j].Path
		})
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	}
}
