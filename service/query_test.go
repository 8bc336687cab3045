package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqbao/gau-recipe-service/entity"
)

func TestRecipeFilterMatches(t *testing.T) {
	chefID := uuid.New()
	ownerID := uuid.New()
	recipe := &entity.Recipe{
		ID:          uuid.New(),
		Name:        "Chocolate Tart",
		Description: "Dark ganache on shortcrust",
		Section:     "Desserts",
		ChefID:      &chefID,
		OwnerID:     ownerID,
		State:       StatePublished,
	}

	otherChef := uuid.New()
	otherOwner := uuid.New()

	cases := []struct {
		name   string
		filter RecipeFilter
		want   bool
	}{
		{"empty filter", RecipeFilter{}, true},
		{"section match", RecipeFilter{Section: "Desserts"}, true},
		{"section mismatch", RecipeFilter{Section: "Mains"}, false},
		{"search in name, case-insensitive", RecipeFilter{Search: "choco"}, true},
		{"search in description", RecipeFilter{Search: "GANACHE"}, true},
		{"search in section", RecipeFilter{Search: "dessert"}, true},
		{"search no hit", RecipeFilter{Search: "lasagna"}, false},
		{"chef match", RecipeFilter{ChefID: &chefID}, true},
		{"chef mismatch", RecipeFilter{ChefID: &otherChef}, false},
		{"owner match", RecipeFilter{OwnerID: &ownerID}, true},
		{"owner mismatch", RecipeFilter{OwnerID: &otherOwner}, false},
		{"combined", RecipeFilter{Section: "Desserts", Search: "tart", OwnerID: &ownerID}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(recipe))
		})
	}
}

func TestRecipeFilterNeverMatchesTombstones(t *testing.T) {
	recipe := &entity.Recipe{
		ID:      uuid.New(),
		Name:    "Chocolate Tart",
		Section: "Desserts",
		Deleted: true,
	}
	assert.False(t, RecipeFilter{}.Matches(recipe))
	assert.False(t, RecipeFilter{Section: "Desserts"}.Matches(recipe))
}

func TestRecipeFilterMatchesNilChefAgainstChefFilter(t *testing.T) {
	chefID := uuid.New()
	recipe := &entity.Recipe{ID: uuid.New(), Name: "Bread"}
	assert.False(t, RecipeFilter{ChefID: &chefID}.Matches(recipe))
}

func TestQueryListExcludesTombstones(t *testing.T) {
	store := newFakeStore()
	query := NewRecipeQuery(store)
	lifecycle := NewRecipeLifecycle(store, newFakeDirectory())
	owner := uuid.New()

	kept, err := lifecycle.Create(context.Background(), owner, validInput())
	require.NoError(t, err)
	doomed, err := lifecycle.Create(context.Background(), owner, validInput())
	require.NoError(t, err)
	_, err = lifecycle.Delete(context.Background(), doomed.ID, owner)
	require.NoError(t, err)

	recipes, err := query.List(context.Background(), RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, kept.ID, recipes[0].ID)
}

func TestQueryListByOwner(t *testing.T) {
	store := newFakeStore()
	query := NewRecipeQuery(store)
	lifecycle := NewRecipeLifecycle(store, newFakeDirectory())
	owner := uuid.New()

	mine, err := lifecycle.Create(context.Background(), owner, validInput())
	require.NoError(t, err)
	_, err = lifecycle.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	recipes, err := query.List(context.Background(), RecipeFilter{OwnerID: &owner})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, mine.ID, recipes[0].ID)
}

func TestQueryGetByID(t *testing.T) {
	store := newFakeStore()
	query := NewRecipeQuery(store)
	lifecycle := NewRecipeLifecycle(store, newFakeDirectory())
	owner := uuid.New()

	recipe, err := lifecycle.Create(context.Background(), owner, validInput())
	require.NoError(t, err)

	found, err := query.GetByID(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, found.ID)

	_, err = query.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

// Direct lookup still sees soft-deleted records; only listings hide them.
func TestQueryGetByIDReturnsTombstoned(t *testing.T) {
	store := newFakeStore()
	query := NewRecipeQuery(store)
	lifecycle := NewRecipeLifecycle(store, newFakeDirectory())
	owner := uuid.New()

	recipe, err := lifecycle.Create(context.Background(), owner, validInput())
	require.NoError(t, err)
	_, err = lifecycle.Delete(context.Background(), recipe.ID, owner)
	require.NoError(t, err)

	found, err := query.GetByID(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.True(t, found.Deleted)
}

func TestQueryListWithChef(t *testing.T) {
	store := newFakeStore()
	query := NewRecipeQuery(store)
	lifecycle := NewRecipeLifecycle(store, newFakeDirectory())
	owner := uuid.New()

	chefID := uuid.New()
	store.chefs[chefID] = &entity.Chef{ID: chefID, Name: "Julia", Specialty: "pastry"}

	input := validInput()
	input.ChefID = &chefID
	withChef, err := lifecycle.Create(context.Background(), owner, input)
	require.NoError(t, err)
	withoutChef, err := lifecycle.Create(context.Background(), owner, validInput())
	require.NoError(t, err)

	recipes, err := query.ListWithChef(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	byID := map[uuid.UUID]entity.Recipe{}
	for _, r := range recipes {
		byID[r.ID] = r
	}
	require.NotNil(t, byID[withChef.ID].Chef)
	assert.Equal(t, "Julia", byID[withChef.ID].Chef.Name)
	assert.Nil(t, byID[withoutChef.ID].Chef)
}
