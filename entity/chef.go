package entity

import "github.com/google/uuid"

type Chef struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" binding:"required,min=1,max=128" gorm:"not null"`
	Specialty string    `json:"specialty,omitempty"`
	CreatedAt string    `json:"created_at" gorm:"not null"`
}
