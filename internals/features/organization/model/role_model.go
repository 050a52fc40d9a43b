package model

import (
	"time"

	"gorm.io/gorm"
)

// RoleModel is a permission tier. Ids are stable and encoded into registration ids.
type RoleModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex:uq_roles_name" json:"name"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (RoleModel) TableName() string { return "roles" }
