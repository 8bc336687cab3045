package repository

import (
	"github.com/tnqbao/gau-recipe-service/infra"
	"gorm.io/gorm"
)

type Repository struct {
	RecipeRepo *RecipeRepository
	ChefRepo   *ChefRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		RecipeRepo: NewRecipeRepository(infra.Postgres.DB),
		ChefRepo:   NewChefRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

func (r *Repository) BeginTransaction(db *gorm.DB) *gorm.DB {
	return db.Begin()
}

func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return &Repository{
		RecipeRepo: NewRecipeRepository(tx),
		ChefRepo:   NewChefRepository(tx),
	}
}
