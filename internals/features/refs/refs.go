// Package refs holds the shallow relation shapes (id + name) embedded in list and detail responses.
package refs

import "gorm.io/gorm"

type BranchRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (BranchRef) TableName() string { return "branches" }

type RoleRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (RoleRef) TableName() string { return "roles" }

type AcademicYearRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Year      string         `json:"year"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (AcademicYearRef) TableName() string { return "academic_years" }

type ClassRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (ClassRef) TableName() string { return "classes" }

type SubjectRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (SubjectRef) TableName() string { return "subjects" }

type NoticeTypeRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (NoticeTypeRef) TableName() string { return "notice_types" }

type ShelfRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (ShelfRef) TableName() string { return "library_shelves" }

type BookCategoryRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (BookCategoryRef) TableName() string { return "library_book_categories" }

type ReaderTypeRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (ReaderTypeRef) TableName() string { return "reader_types" }

type DriverRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (DriverRef) TableName() string { return "drivers" }

type TransportRouteRef struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

func (TransportRouteRef) TableName() string { return "transport_routes" }

// Lookup tables are never deleted.

type GenderRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (GenderRef) TableName() string { return "genders" }

type ReligionRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (ReligionRef) TableName() string { return "religions" }

type DesignationRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (DesignationRef) TableName() string { return "designations" }

// UserRef is the identity part of an admin or teacher profile. Soft-deleted users stay visible
// through it so trashed profiles still show their registration id.
type UserRef struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	RoleID         uint   `json:"role_id"`
	BranchID       uint   `json:"branch_id"`
	RegistrationID string `json:"registration_id"`
	IsActive       bool   `json:"is_active"`
}

func (UserRef) TableName() string { return "users" }
