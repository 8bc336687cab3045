package dto

import "github.com/google/uuid"

type RecipeRequestDTO struct {
	Name        string     `json:"name" binding:"required,min=1,max=128"`
	Description string     `json:"description" binding:"required"`
	Section     string     `json:"section" binding:"required"`
	Link        string     `json:"link"`
	Img         string     `json:"img" binding:"required"`
	ChefID      *uuid.UUID `json:"chef_id"`
	State       string     `json:"state" binding:"omitempty,oneof=draft published archived"`
}

// PatchRecipeRequestDTO distinguishes "absent" from "empty" with pointers.
type PatchRecipeRequestDTO struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Section     *string    `json:"section"`
	Link        *string    `json:"link"`
	Img         *string    `json:"img"`
	ChefID      *uuid.UUID `json:"chef_id"`
	State       *string    `json:"state" binding:"omitempty,oneof=draft published archived"`
}

type ChangeStateRequestDTO struct {
	State string `json:"state" binding:"required"`
}

type AddCollaboratorRequestDTO struct {
	Username string `json:"username" binding:"required"`
}

type CreateChefRequestDTO struct {
	Name      string `json:"name" binding:"required,min=1,max=128"`
	Specialty string `json:"specialty"`
}
