package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-recipe-service/entity"
)

type ChefRepository struct {
	db *gorm.DB
}

func NewChefRepository(db *gorm.DB) *ChefRepository {
	return &ChefRepository{db: db}
}

func (r *ChefRepository) Create(chef *entity.Chef) error {
	return r.db.Create(chef).Error
}

func (r *ChefRepository) FindByID(id uuid.UUID) (*entity.Chef, error) {
	var chef entity.Chef
	err := r.db.Where("id = ?", id).First(&chef).Error
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *ChefRepository) List() ([]entity.Chef, error) {
	var chefs []entity.Chef
	err := r.db.Find(&chefs).Error
	if err != nil {
		return nil, err
	}
	return chefs, nil
}
