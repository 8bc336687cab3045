package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-recipe-service/entity"
)

// RecipeFilter is an optional conjunction of read-side constraints. Zero
// values mean "no constraint on that field".
type RecipeFilter struct {
	Section string
	Search  string
	ChefID  *uuid.UUID
	OwnerID *uuid.UUID
}

// Matches reports whether a stored recipe satisfies the filter. Tombstoned
// recipes never match. The repository's SQL translation of FindMany must
// agree with this predicate.
func (f RecipeFilter) Matches(recipe *entity.Recipe) bool {
	if recipe.Deleted {
		return false
	}
	if f.Section != "" && recipe.Section != f.Section {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(recipe.Name), needle) &&
			!strings.Contains(strings.ToLower(recipe.Description), needle) &&
			!strings.Contains(strings.ToLower(recipe.Section), needle) {
			return false
		}
	}
	if f.ChefID != nil && (recipe.ChefID == nil || *recipe.ChefID != *f.ChefID) {
		return false
	}
	if f.OwnerID != nil && recipe.OwnerID != *f.OwnerID {
		return false
	}
	return true
}

// RecipeQuery is the read side: filtering, by-id lookup and the chef join.
// It depends on the store only.
type RecipeQuery struct {
	store RecipeStore
}

func NewRecipeQuery(store RecipeStore) *RecipeQuery {
	return &RecipeQuery{store: store}
}

func (q *RecipeQuery) List(ctx context.Context, filter RecipeFilter) ([]entity.Recipe, error) {
	recipes, err := q.store.FindMany(filter)
	if err != nil {
		return nil, dependencyError("listing recipes", err)
	}
	return recipes, nil
}

// GetByID returns the recipe regardless of its tombstone state; direct
// lookups are also used internally and must see soft-deleted records.
func (q *RecipeQuery) GetByID(ctx context.Context, recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := q.store.FindByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("recipe not found")
		}
		return nil, dependencyError("loading recipe", err)
	}
	return recipe, nil
}

// ListWithChef returns every non-tombstoned recipe with its chef record
// attached; recipes without a resolvable chef still appear, with a nil chef.
func (q *RecipeQuery) ListWithChef(ctx context.Context) ([]entity.Recipe, error) {
	recipes, err := q.store.FindAllWithChef()
	if err != nil {
		return nil, dependencyError("listing recipes with chef", err)
	}
	return recipes, nil
}
