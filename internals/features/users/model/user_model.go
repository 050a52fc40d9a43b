package model

import (
	"time"

	"gorm.io/gorm"

	"schooladmin_backend/internals/features/refs"
)

// UserModel is the login identity shared by admins and teachers.
type UserModel struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	RoleID         uint   `gorm:"not null;index" json:"role_id"`
	BranchID       uint   `gorm:"not null;index" json:"branch_id"`
	RegistrationID string `gorm:"type:varchar(10);not null;uniqueIndex:uq_users_registration_id" json:"registration_id"`
	Password       string `gorm:"type:varchar(255);not null" json:"-"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`

	Role   *refs.RoleRef   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Branch *refs.BranchRef `gorm:"foreignKey:BranchID" json:"branch,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// RegistrationSequenceModel holds the last issued sequence per (year, branch, role).
type RegistrationSequenceModel struct {
	Year      int       `gorm:"primaryKey;autoIncrement:false" json:"year"`
	BranchID  uint      `gorm:"primaryKey;autoIncrement:false" json:"branch_id"`
	RoleID    uint      `gorm:"primaryKey;autoIncrement:false" json:"role_id"`
	LastValue int       `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RegistrationSequenceModel) TableName() string { return "registration_sequences" }
