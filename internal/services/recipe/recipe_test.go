package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tastetrail/internal/cache"
	"github.com/magabrotheeeer/tastetrail/internal/models"
	services "github.com/magabrotheeeer/tastetrail/internal/services/recipe"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

type RecipeRepoMock struct {
	mock.Mock
}

func (m *RecipeRepoMock) CreateRecipe(ctx context.Context, data map[string]any) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *RecipeRepoMock) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *RecipeRepoMock) UpdateRecipe(ctx context.Context, id string, data map[string]any) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *RecipeRepoMock) DeleteRecipe(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRecipeService_Create_InvalidatesCache(t *testing.T) {
	repo := new(RecipeRepoMock)
	cacheMock := new(CacheMock)

	data := map[string]any{"title": "Pad Thai", "servings": 2}
	repo.On("CreateRecipe", mock.Anything, data).Return("recipe-id", nil).Once()
	cacheMock.On("Invalidate", mock.Anything, cache.RecipesKey).Return(nil).Once()

	svc := services.NewRecipeService(repo, cacheMock, newNoopLogger())

	id, err := svc.Create(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "recipe-id", id)

	repo.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestRecipeService_List_CacheMiss(t *testing.T) {
	repo := new(RecipeRepoMock)
	cacheMock := new(CacheMock)

	want := []*models.Recipe{{ID: "recipe-id", Data: map[string]any{"title": "Borscht"}}}
	cacheMock.On("Get", mock.Anything, cache.RecipesKey, mock.Anything).Return(false, nil).Once()
	repo.On("ListRecipes", mock.Anything).Return(want, nil).Once()
	cacheMock.On("Set", mock.Anything, cache.RecipesKey, want, mock.Anything).Return(nil).Once()

	svc := services.NewRecipeService(repo, cacheMock, newNoopLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestRecipeService_List_CacheHit(t *testing.T) {
	repo := new(RecipeRepoMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", mock.Anything, cache.RecipesKey, mock.Anything).Return(true, nil).Once()

	svc := services.NewRecipeService(repo, cacheMock, newNoopLogger())

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	repo.AssertNotCalled(t, "ListRecipes", mock.Anything)
	cacheMock.AssertExpectations(t)
}

func TestRecipeService_Update_NotFound(t *testing.T) {
	repo := new(RecipeRepoMock)
	cacheMock := new(CacheMock)

	repo.On("UpdateRecipe", mock.Anything, "missing-id", mock.Anything).
		Return(storage.ErrNotFound).Once()

	svc := services.NewRecipeService(repo, cacheMock, newNoopLogger())

	err := svc.Update(context.Background(), "missing-id", map[string]any{"title": "x"})
	require.ErrorIs(t, err, storage.ErrNotFound)

	cacheMock.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestRecipeService_Remove_InvalidatesCache(t *testing.T) {
	repo := new(RecipeRepoMock)
	cacheMock := new(CacheMock)

	repo.On("DeleteRecipe", mock.Anything, "recipe-id").Return(nil).Once()
	cacheMock.On("Invalidate", mock.Anything, cache.RecipesKey).Return(nil).Once()

	svc := services.NewRecipeService(repo, cacheMock, newNoopLogger())

	require.NoError(t, svc.Remove(context.Background(), "recipe-id"))

	repo.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}
