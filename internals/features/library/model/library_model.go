package model

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"schooladmin_backend/internals/features/refs"
	helper "schooladmin_backend/internals/helpers"
)

type LibraryShelfModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BranchID uint   `gorm:"not null;uniqueIndex:uq_library_shelves_branch_name,priority:1" json:"branch_id"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex:uq_library_shelves_branch_name,priority:2" json:"name"`

	Branch *refs.BranchRef `gorm:"foreignKey:BranchID" json:"branch,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LibraryShelfModel) TableName() string { return "library_shelves" }

type LibraryBookCategoryModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_library_book_categories_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LibraryBookCategoryModel) TableName() string { return "library_book_categories" }

type ReaderTypeModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_reader_types_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReaderTypeModel) TableName() string { return "reader_types" }

// Authors is a text[] on postgres and the same array literal in a text column elsewhere.
type Authors pq.StringArray

func (a Authors) Value() (driver.Value, error) { return pq.StringArray(a).Value() }

func (a *Authors) Scan(src any) error { return (*pq.StringArray)(a).Scan(src) }

func (Authors) GormDataType() string { return "text" }

func (Authors) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

type LibraryBookModel struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	ShelfID      uint    `gorm:"not null;index" json:"shelf_id"`
	CategoryID   uint    `gorm:"not null;index" json:"category_id"`
	ReaderTypeID uint    `gorm:"not null;index" json:"reader_type_id"`
	Name         string  `gorm:"type:varchar(200);not null" json:"name"`
	Authors      Authors `gorm:"column:authors" json:"authors"`
	Code         *string `gorm:"type:varchar(50);uniqueIndex:uq_library_books_code" json:"code,omitempty"`
	Quantity     int     `gorm:"not null;default:0" json:"quantity"`
	TakenBy      int     `gorm:"not null;default:0" json:"taken_by"`

	Shelf      *refs.ShelfRef        `gorm:"foreignKey:ShelfID" json:"shelf,omitempty"`
	Category   *refs.BookCategoryRef `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ReaderType *refs.ReaderTypeRef   `gorm:"foreignKey:ReaderTypeID" json:"reader_type,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LibraryBookModel) TableName() string { return "library_books" }

func (m *LibraryBookModel) Available() int { return m.Quantity - m.TakenBy }

func (m *LibraryBookModel) Check() helper.FieldErrors {
	var fe helper.FieldErrors
	if m.Quantity < 0 {
		fe = fe.Add("quantity", "quantity must be 0 or greater")
	}
	if m.TakenBy < 0 || m.TakenBy > m.Quantity {
		fe = fe.Add("taken_by", "taken_by must be between 0 and quantity")
	}
	return fe
}
