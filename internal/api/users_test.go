package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars_api/internal/domain"
	"starwars_api/internal/repository"
)

func TestCreateUser(t *testing.T) {
	r, _ := setupRouter(t, nil)

	t.Run("created without password hash in body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", map[string]any{"username": "anakin", "email": "anakin@example.com", "password": "podracer"})
		require.Equal(t, http.StatusCreated, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "anakin", body["username"])
		assert.Equal(t, "anakin@example.com", body["email"])
		assert.Equal(t, []any{}, body["favorites"])
		assert.NotContains(t, body, "password_hash")
		assert.NotContains(t, body, "password")
		assert.NotContains(t, w.Body.String(), "podracer")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", map[string]any{"username": "padme"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username is a store failure", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", map[string]any{"username": "anakin", "email": "vader@example.com", "password": "darkside"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListUsersEmbedsFavorites(t *testing.T) {
	r, repo := setupRouter(t, nil)
	ctx := context.Background()
	luke := createUser(t, repo, "luke")
	leia := createUser(t, repo, "leia")
	planet, err := repo.CreatePlanet(ctx, "Endor", nil)
	require.NoError(t, err)
	character, err := repo.CreateCharacter(ctx, "Wicket", nil)
	require.NoError(t, err)

	_, err = repo.CreateFavorite(ctx, luke.ID, repository.PlanetTarget(planet.ID))
	require.NoError(t, err)
	_, err = repo.CreateFavorite(ctx, luke.ID, repository.CharacterTarget(character.ID))
	require.NoError(t, err)
	_, err = repo.CreateFavorite(ctx, leia.ID, repository.PlanetTarget(planet.ID))
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]domain.User](t, w)
	require.Len(t, users, 2)

	assert.Equal(t, "luke", users[0].Username)
	require.Len(t, users[0].Favorites, 2)
	assert.Equal(t, planet.ID, *users[0].Favorites[0].PlanetID)
	assert.Equal(t, character.ID, *users[0].Favorites[1].CharacterID)
	for _, f := range users[0].Favorites {
		assert.Equal(t, luke.ID, f.UserID)
	}

	assert.Equal(t, "leia", users[1].Username)
	require.Len(t, users[1].Favorites, 1)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetUser(t *testing.T) {
	r, repo := setupRouter(t, nil)
	user := createUser(t, repo, "obiwan")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "obiwan", decode[domain.User](t, w).Username)

	w = doJSON(t, r, http.MethodGet, "/users/777", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", message(t, w))
}

func TestListUserFavorites(t *testing.T) {
	r, repo := setupRouter(t, nil)
	ctx := context.Background()
	user := createUser(t, repo, "poe")
	planet, err := repo.CreatePlanet(ctx, "Yavin 4", nil)
	require.NoError(t, err)
	_, err = repo.CreateFavorite(ctx, user.ID, repository.PlanetTarget(planet.ID))
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/favorites?user_id=%d", user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	favorites := decode[[]domain.Favorite](t, w)
	require.Len(t, favorites, 1)
	assert.Equal(t, planet.ID, *favorites[0].PlanetID)

	for _, query := range []string{"", "?user_id=", "?user_id=abc", "?user_id=12345"} {
		w := doJSON(t, r, http.MethodGet, "/users/favorites"+query, nil)
		require.Equal(t, http.StatusOK, w.Code, query)
		assert.JSONEq(t, "[]", w.Body.String(), query)
	}
}
