package model

import (
	"time"

	"gorm.io/gorm"

	"schooladmin_backend/internals/features/refs"
)

type NoticeTypeModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_notice_types_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NoticeTypeModel) TableName() string { return "notice_types" }

type NoticeModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BranchID     uint      `gorm:"not null;index" json:"branch_id"`
	NoticeTypeID uint      `gorm:"not null;index" json:"notice_type_id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	PublishDate  time.Time `gorm:"not null" json:"publish_date"`

	Branch     *refs.BranchRef     `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	NoticeType *refs.NoticeTypeRef `gorm:"foreignKey:NoticeTypeID" json:"notice_type,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (NoticeModel) TableName() string { return "notices" }
