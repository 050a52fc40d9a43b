package model_test

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"

	"schooladmin_backend/internals/features/library/model"
	"schooladmin_backend/internals/testutil"
)

func TestBookSchemaParses(t *testing.T) {
	s, err := schema.Parse(&model.LibraryBookModel{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	f := s.LookUpField("authors")
	if f == nil || f.DataType != "text" {
		t.Fatalf("authors should be a text column, got %+v", f)
	}
	if _, ok := s.Relationships.Relations["Authors"]; ok {
		t.Fatal("authors must not be parsed as a relation")
	}
}

func TestBookTableMigrates(t *testing.T) {
	db := testutil.NewDB(t)
	if !db.Migrator().HasColumn(&model.LibraryBookModel{}, "authors") {
		t.Fatal("library_books should carry an authors column")
	}
}
