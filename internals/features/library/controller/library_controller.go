package controller

import (
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/library/dto"
	"schooladmin_backend/internals/features/library/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

type (
	ShelfHandler      = resource.Handler[model.LibraryShelfModel, dto.CreateShelfRequest, dto.UpdateShelfRequest]
	CategoryHandler   = resource.Handler[model.LibraryBookCategoryModel, dto.NameRequest, dto.UpdateNameRequest]
	ReaderTypeHandler = resource.Handler[model.ReaderTypeModel, dto.NameRequest, dto.UpdateNameRequest]
	BookHandler       = resource.Handler[model.LibraryBookModel, dto.CreateBookRequest, dto.UpdateBookRequest]
)

func NewShelfHandler(db *gorm.DB, v *helper.Validator) *ShelfHandler {
	return &ShelfHandler{
		Service: resource.NewService[model.LibraryShelfModel](db, resource.Options{
			Name: "shelf", Preloads: []string{"Branch"}, SoftDelete: true,
		}),
		Validator: v,
		NewModel:  (*dto.CreateShelfRequest).ToModel,
		Apply:     (*dto.UpdateShelfRequest).ApplyTo,
		Rules: func(m *model.LibraryShelfModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("branch_id", "branches", m.BranchID),
				resource.Unique("name", "library_shelves", "name", m.Name).
					Within("branch_id", m.BranchID).Except(m.ID),
			}
		},
		Filters: resource.BranchScoped(),
	}
}

func NewCategoryHandler(db *gorm.DB, v *helper.Validator) *CategoryHandler {
	return &CategoryHandler{
		Service:   resource.NewService[model.LibraryBookCategoryModel](db, resource.Options{Name: "book category"}),
		Validator: v,
		NewModel:  (*dto.NameRequest).ToCategory,
		Apply:     (*dto.UpdateNameRequest).ApplyToCategory,
		Rules: func(m *model.LibraryBookCategoryModel) []resource.Rule {
			return []resource.Rule{resource.Unique("name", "library_book_categories", "name", m.Name).Except(m.ID)}
		},
	}
}

func NewReaderTypeHandler(db *gorm.DB, v *helper.Validator) *ReaderTypeHandler {
	return &ReaderTypeHandler{
		Service:   resource.NewService[model.ReaderTypeModel](db, resource.Options{Name: "reader type"}),
		Validator: v,
		NewModel:  (*dto.NameRequest).ToReaderType,
		Apply:     (*dto.UpdateNameRequest).ApplyToReaderType,
		Rules: func(m *model.ReaderTypeModel) []resource.Rule {
			return []resource.Rule{resource.Unique("name", "reader_types", "name", m.Name).Except(m.ID)}
		},
	}
}

func NewBookHandler(db *gorm.DB, v *helper.Validator) *BookHandler {
	return &BookHandler{
		Service: resource.NewService[model.LibraryBookModel](db, resource.Options{
			Name:       "book",
			Preloads:   []string{"Shelf", "Category", "ReaderType"},
			SoftDelete: true,
		}),
		Validator: v,
		NewModel:  (*dto.CreateBookRequest).ToModel,
		Apply:     (*dto.UpdateBookRequest).ApplyTo,
		Rules: func(m *model.LibraryBookModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("shelf_id", "library_shelves", m.ShelfID),
				resource.Exists("category_id", "library_book_categories", m.CategoryID),
				resource.Exists("reader_type_id", "reader_types", m.ReaderTypeID),
				resource.Unique("code", "library_books", "code", m.Code).Except(m.ID),
			}
		},
		Filters: resource.ByQuery("shelf_id", "category_id", "reader_type_id"),
	}
}
