package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars_api/internal/db"
	"starwars_api/internal/utils"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(database)
}

func strPtr(s string) *string { return &s }

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "mace", "mace@example.com", "purple-saber")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "purple-saber", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "purple-saber"))

	_, err = repo.CreateUser(ctx, "mace", "other@example.com", "x")
	assert.Error(t, err, "username is unique")
	_, err = repo.CreateUser(ctx, "windu", "mace@example.com", "x")
	assert.Error(t, err, "email is unique")

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetUser(context.Background(), 12)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCharacterLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateCharacter(ctx, "Qui-Gon Jinn", strPtr("Jedi Master"))
	require.NoError(t, err)

	got, err := repo.GetCharacter(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	updated, err := repo.UpdateCharacter(ctx, created.ID, Patch{Description: strPtr("Living Force")})
	require.NoError(t, err)
	assert.Equal(t, "Qui-Gon Jinn", updated.Name)
	assert.Equal(t, "Living Force", *updated.Description)

	updated, err = repo.UpdateCharacter(ctx, created.ID, Patch{})
	require.NoError(t, err)
	assert.Equal(t, "Qui-Gon Jinn", updated.Name)
	assert.Equal(t, "Living Force", *updated.Description)

	_, err = repo.UpdateCharacter(ctx, 999, Patch{Name: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrCharacterNotFound)

	require.NoError(t, repo.DeleteCharacter(ctx, created.ID))
	assert.ErrorIs(t, repo.DeleteCharacter(ctx, created.ID), ErrCharacterNotFound)
	_, err = repo.GetCharacter(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreatePlanet(ctx, "Coruscant", nil)
	require.NoError(t, err)
	assert.Nil(t, created.Description)

	updated, err := repo.UpdatePlanet(ctx, created.ID, Patch{Name: strPtr("Imperial Center")})
	require.NoError(t, err)
	assert.Equal(t, "Imperial Center", updated.Name)
	assert.Nil(t, updated.Description)

	updated, err = repo.UpdatePlanet(ctx, created.ID, Patch{Description: strPtr("Galactic capital")})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)

	updated, err = repo.UpdatePlanet(ctx, created.ID, Patch{ClearDescription: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	fetched, err := repo.GetPlanet(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Description)

	planets, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.Equal(t, "Imperial Center", planets[0].Name)

	require.NoError(t, repo.DeletePlanet(ctx, created.ID))
	assert.ErrorIs(t, repo.DeletePlanet(ctx, created.ID), ErrPlanetNotFound)
	_, err = repo.UpdatePlanet(ctx, created.ID, Patch{})
	assert.ErrorIs(t, err, ErrPlanetNotFound)
}

func TestCreateFavorite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, "cassian", "cassian@example.com", "rogue-one")
	require.NoError(t, err)
	planet, err := repo.CreatePlanet(ctx, "Scarif", nil)
	require.NoError(t, err)
	character, err := repo.CreateCharacter(ctx, "K-2SO", nil)
	require.NoError(t, err)

	t.Run("planet", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)
		favorite, err := repo.CreateFavorite(ctx, user.ID, PlanetTarget(planet.ID))
		require.NoError(t, err)
		assert.Equal(t, planet.ID, *favorite.PlanetID)
		assert.Nil(t, favorite.CharacterID)
		assert.Equal(t, time.UTC, favorite.Date.Location())
		assert.True(t, favorite.Date.After(before))
	})

	t.Run("both targets rejected", func(t *testing.T) {
		both := Target{CharacterID: &character.ID, PlanetID: &planet.ID}
		_, err := repo.CreateFavorite(ctx, user.ID, both)
		assert.ErrorIs(t, err, ErrInvalidFavorite)
	})

	t.Run("no target rejected", func(t *testing.T) {
		_, err := repo.CreateFavorite(ctx, user.ID, Target{})
		assert.ErrorIs(t, err, ErrInvalidFavorite)
	})

	t.Run("unknown target fails the foreign key", func(t *testing.T) {
		_, err := repo.CreateFavorite(ctx, user.ID, CharacterTarget(4040))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidFavorite)
	})

	favorites, err := repo.ListFavoritesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestDeleteFavorite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, "jyn", "jyn@example.com", "stardust")
	require.NoError(t, err)
	character, err := repo.CreateCharacter(ctx, "Saw Gerrera", nil)
	require.NoError(t, err)
	planet, err := repo.CreatePlanet(ctx, "Jedha", nil)
	require.NoError(t, err)

	_, err = repo.CreateFavorite(ctx, user.ID, CharacterTarget(character.ID))
	require.NoError(t, err)
	_, err = repo.CreateFavorite(ctx, user.ID, PlanetTarget(planet.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteFavorite(ctx, user.ID, Target{}), ErrInvalidFavorite)
	assert.ErrorIs(t, repo.DeleteFavorite(ctx, user.ID+1, CharacterTarget(character.ID)), ErrFavoriteNotFound)

	require.NoError(t, repo.DeleteFavorite(ctx, user.ID, CharacterTarget(character.ID)))
	assert.ErrorIs(t, repo.DeleteFavorite(ctx, user.ID, CharacterTarget(character.ID)), ErrNotFound)

	favorites, err := repo.ListFavoritesByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, planet.ID, *favorites[0].PlanetID)
}

func TestDeleteTargetNullsFavorite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, "bodhi", "bodhi@example.com", "pilot")
	require.NoError(t, err)
	planet, err := repo.CreatePlanet(ctx, "Eadu", nil)
	require.NoError(t, err)
	_, err = repo.CreateFavorite(ctx, user.ID, PlanetTarget(planet.ID))
	require.NoError(t, err)

	require.NoError(t, repo.DeletePlanet(ctx, planet.ID))

	got, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Favorites, 1)
	assert.Nil(t, got.Favorites[0].PlanetID)
	assert.Equal(t, user.ID, got.Favorites[0].UserID)
}
