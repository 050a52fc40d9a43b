package model

import (
	"time"

	"gorm.io/gorm"

	"schooladmin_backend/internals/features/refs"
	helper "schooladmin_backend/internals/helpers"
)

type AcademicYearModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BranchID uint   `gorm:"not null;uniqueIndex:uq_academic_years_branch_year,priority:1" json:"branch_id"`
	Year     string `gorm:"type:char(4);not null;uniqueIndex:uq_academic_years_branch_year,priority:2" json:"year"`

	Branch *refs.BranchRef `gorm:"foreignKey:BranchID" json:"branch,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

type AcademicSessionModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AcademicYearID uint      `gorm:"not null;uniqueIndex:uq_academic_sessions_year_name,priority:1" json:"academic_year_id"`
	Name           string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_academic_sessions_year_name,priority:2" json:"name"`
	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null" json:"end_date"`

	AcademicYear *refs.AcademicYearRef `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }

func (m *AcademicSessionModel) Check() helper.FieldErrors {
	var fe helper.FieldErrors
	if m.EndDate.Before(m.StartDate) {
		fe = fe.Add("end_date", "end_date must be on or after start_date")
	}
	return fe
}
