package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Collaborator is a weak (user id, username) reference attached to a recipe.
// The cached username may drift from the directory's current one.
type Collaborator struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

type Recipe struct {
	ID            uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string                            `json:"name" binding:"required,min=1,max=128" gorm:"not null"`
	Description   string                            `json:"description" binding:"required" gorm:"type:text;not null"`
	Section       string                            `json:"section" binding:"required" gorm:"not null;index"`
	Link          string                            `json:"link,omitempty"`
	Img           string                            `json:"img" binding:"required" gorm:"not null"`
	ChefID        *uuid.UUID                        `json:"chef_id,omitempty" gorm:"type:uuid;index"`
	OwnerID       uuid.UUID                         `json:"owner_id" gorm:"type:uuid;not null;index"`
	State         string                            `json:"state" binding:"omitempty,oneof=draft published archived" gorm:"not null;index"`
	Collaborators datatypes.JSONSlice[Collaborator] `json:"collaborators" gorm:"type:jsonb"`
	Deleted       bool                              `json:"deleted" gorm:"not null;default:false;index"`
	CreatedAt     string                            `json:"created_at" gorm:"not null"`
	UpdatedAt     string                            `json:"updated_at"`
	Chef          *Chef                             `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
}

// HasCollaborator reports whether the roster already contains the user id.
// Uniqueness is keyed by id; removal is keyed by username.
func (r *Recipe) HasCollaborator(userID uuid.UUID) bool {
	for _, c := range r.Collaborators {
		if c.UserID == userID {
			return true
		}
	}
	return false
}
