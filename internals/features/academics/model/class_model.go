package model

import (
	"time"

	"gorm.io/gorm"

	"schooladmin_backend/internals/features/refs"
	helper "schooladmin_backend/internals/helpers"
)

// ClassModel is a batch of students ("class") owned by a branch.
type ClassModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BranchID uint   `gorm:"not null;uniqueIndex:uq_classes_branch_name,priority:1" json:"branch_id"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex:uq_classes_branch_name,priority:2" json:"name"`

	Branch *refs.BranchRef `gorm:"foreignKey:BranchID" json:"branch,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

type ClassroomModel struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ClassID         uint   `gorm:"not null;uniqueIndex:uq_classrooms_class_name,priority:1" json:"class_id"`
	Name            string `gorm:"type:varchar(100);not null;uniqueIndex:uq_classrooms_class_name,priority:2" json:"name"`
	MaxStudent      int    `gorm:"not null;default:1" json:"max_student"`
	StudentQuantity int    `gorm:"not null;default:0" json:"student_quantity"`
	IsActive        bool   `gorm:"not null" json:"is_active"`

	Class *refs.ClassRef `gorm:"foreignKey:ClassID" json:"class,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

// Check runs on the final row state, after partial updates are applied.
func (m *ClassroomModel) Check() helper.FieldErrors {
	var fe helper.FieldErrors
	if m.MaxStudent < 1 {
		fe = fe.Add("max_student", "max_student must be 1 or greater")
	}
	if m.StudentQuantity < 0 || m.StudentQuantity > m.MaxStudent {
		fe = fe.Add("student_quantity", "student_quantity must be between 0 and max_student")
	}
	return fe
}

type SubjectModel struct {
	ID   uint    `gorm:"primaryKey" json:"id"`
	Name string  `gorm:"type:varchar(100);not null;uniqueIndex:uq_subjects_name" json:"name"`
	Code *string `gorm:"type:varchar(24);uniqueIndex:uq_subjects_code" json:"code,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

// ClassSubjectModel is the class <-> subject join.
type ClassSubjectModel struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ClassID   uint `gorm:"not null;uniqueIndex:uq_class_subjects_pair,priority:1" json:"class_id"`
	SubjectID uint `gorm:"not null;uniqueIndex:uq_class_subjects_pair,priority:2" json:"subject_id"`

	Class   *refs.ClassRef   `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Subject *refs.SubjectRef `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
