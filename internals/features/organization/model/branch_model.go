package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type BranchModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex:uq_branches_name" json:"name"`
	Location string `gorm:"type:varchar(255)" json:"location"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (BranchModel) TableName() string { return "branches" }

func (m *BranchModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Location = strings.TrimSpace(m.Location)
	return nil
}
