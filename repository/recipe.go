package repository

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-recipe-service/entity"
	"github.com/tnqbao/gau-recipe-service/service"
)

// RecipeRepository implements service.RecipeStore on Postgres. The
// collaborator roster lives in a jsonb column; append and pull are single
// atomic UPDATEs, the Postgres counterparts of Mongo's $push and $pull.
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindByID returns the recipe including tombstoned ones. Missing rows
// surface as gorm.ErrRecordNotFound.
func (r *RecipeRepository) FindByID(id uuid.UUID) (*entity.Recipe, error) {
	var recipe entity.Recipe
	err := r.db.Where("id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) Insert(recipe *entity.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *RecipeRepository) Replace(id uuid.UUID, recipe *entity.Recipe) error {
	// Save writes every column, including zero values; the caller has
	// already merged the fields it wants to keep.
	recipe.ID = id
	return r.db.Save(recipe).Error
}

func (r *RecipeRepository) SetFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&entity.Recipe{}).Where("id = ?", id).Updates(fields).Error
}

func (r *RecipeRepository) AppendCollaborator(id uuid.UUID, collaborator entity.Collaborator) error {
	raw, err := json.Marshal([]entity.Collaborator{collaborator})
	if err != nil {
		return err
	}
	return r.db.Model(&entity.Recipe{}).Where("id = ?", id).
		Update("collaborators", gorm.Expr("COALESCE(collaborators, '[]'::jsonb) || ?::jsonb", string(raw))).Error
}

// RemoveCollaboratorByUsername drops every roster entry with the username.
// An absent username leaves the row unchanged.
func (r *RecipeRepository) RemoveCollaboratorByUsername(id uuid.UUID, username string) error {
	return r.db.Model(&entity.Recipe{}).Where("id = ?", id).
		Update("collaborators", gorm.Expr(
			"COALESCE((SELECT jsonb_agg(c) FROM jsonb_array_elements(COALESCE(collaborators, '[]'::jsonb)) AS c WHERE c->>'username' <> ?), '[]'::jsonb)",
			username)).Error
}

// FindMany translates service.RecipeFilter to SQL; it must agree with the
// filter's Matches predicate.
func (r *RecipeRepository) FindMany(filter service.RecipeFilter) ([]entity.Recipe, error) {
	db := r.db.Where("deleted = ?", false)
	if filter.Section != "" {
		db = db.Where("section = ?", filter.Section)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ? OR section ILIKE ?", pattern, pattern, pattern)
	}
	if filter.ChefID != nil {
		db = db.Where("chef_id = ?", *filter.ChefID)
	}
	if filter.OwnerID != nil {
		db = db.Where("owner_id = ?", *filter.OwnerID)
	}

	var recipes []entity.Recipe
	err := db.Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) FindAllWithChef() ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	err := r.db.Preload("Chef").Where("deleted = ?", false).Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
