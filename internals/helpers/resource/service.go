// Package resource implements the list/read/create/update/delete/restore contract once,
// parameterized by entity type, rule set and preload policy.
package resource

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "schooladmin_backend/internals/helpers"
)

// Filter narrows a query (branch scope, parent id, flags).
type Filter func(*gorm.DB) *gorm.DB

func Where(query string, args ...any) Filter {
	return func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) }
}

type Options struct {
	Name       string   // singular, used in messages ("branch not found")
	Preloads   []string // shallow relations embedded in responses
	SoftDelete bool
	Order      string // default "id DESC"
}

type Service[T any] struct {
	DB   *gorm.DB
	Opts Options
}

func NewService[T any](db *gorm.DB, opts Options) *Service[T] {
	if opts.Order == "" {
		opts.Order = "id DESC"
	}
	if opts.Name == "" {
		opts.Name = "record"
	}
	return &Service[T]{DB: db, Opts: opts}
}

// WithDB returns a copy bound to db (usually a transaction).
func (s *Service[T]) WithDB(db *gorm.DB) *Service[T] {
	return &Service[T]{DB: db, Opts: s.Opts}
}

func (s *Service[T]) preloaded(db *gorm.DB) *gorm.DB {
	for _, p := range s.Opts.Preloads {
		db = db.Preload(p)
	}
	return db
}

func applyFilters(db *gorm.DB, filters []Filter) *gorm.DB {
	for _, f := range filters {
		if f != nil {
			db = f(db)
		}
	}
	return db
}

func (s *Service[T]) notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.NotFound(s.Opts.Name)
	}
	return err
}

func (s *Service[T]) List(ctx context.Context, filters ...Filter) ([]T, error) {
	var rows []T
	q := applyFilters(s.preloaded(s.DB.WithContext(ctx).Model(new(T))), filters)
	if err := q.Order(s.Opts.Order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Page is List restricted to one page, plus the total row count under the same filters.
func (s *Service[T]) Page(ctx context.Context, p helper.Params, filters ...Filter) ([]T, int64, error) {
	var total int64
	if err := applyFilters(s.DB.WithContext(ctx).Model(new(T)), filters).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []T
	q := applyFilters(s.preloaded(s.DB.WithContext(ctx).Model(new(T))), filters)
	if err := q.Order(s.Opts.Order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Trashed lists soft-deleted rows only.
func (s *Service[T]) Trashed(ctx context.Context, filters ...Filter) ([]T, error) {
	var rows []T
	q := s.preloaded(s.DB.WithContext(ctx).Unscoped().Model(new(T))).Where("deleted_at IS NOT NULL")
	if err := applyFilters(q, filters).Order(s.Opts.Order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service[T]) Get(ctx context.Context, id uint) (*T, error) {
	var ent T
	if err := s.preloaded(s.DB.WithContext(ctx)).First(&ent, id).Error; err != nil {
		return nil, s.notFound(err)
	}
	return &ent, nil
}

// GetUnscoped also finds soft-deleted rows.
func (s *Service[T]) GetUnscoped(ctx context.Context, id uint) (*T, error) {
	var ent T
	if err := s.DB.WithContext(ctx).Unscoped().First(&ent, id).Error; err != nil {
		return nil, s.notFound(err)
	}
	return &ent, nil
}

// Create inserts ent (relations are never written) and reloads it with its preloads.
func (s *Service[T]) Create(ctx context.Context, ent *T) (*T, error) {
	db := s.DB.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(ent).Error; err != nil {
		return nil, err
	}
	if err := s.preloaded(db).First(ent).Error; err != nil {
		return nil, err
	}
	return ent, nil
}

// Update loads the row, lets apply mutate it, saves it and returns the fresh row.
// An error from apply aborts the update unchanged.
func (s *Service[T]) Update(ctx context.Context, id uint, apply func(*T) error) (*T, error) {
	db := s.DB.WithContext(ctx)
	var ent T
	if err := db.First(&ent, id).Error; err != nil {
		return nil, s.notFound(err)
	}
	if apply != nil {
		if err := apply(&ent); err != nil {
			return nil, err
		}
	}
	if err := db.Omit(clause.Associations).Save(&ent).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes when the model carries gorm.DeletedAt, otherwise removes the row.
func (s *Service[T]) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NotFound(s.Opts.Name)
	}
	return nil
}

// Restore clears the tombstone. Restoring an active row is a no-op.
func (s *Service[T]) Restore(ctx context.Context, id uint) (*T, error) {
	if _, err := s.GetUnscoped(ctx, id); err != nil {
		return nil, err
	}
	err := s.DB.WithContext(ctx).Unscoped().Model(new(T)).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil).Error
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service[T]) RestoreAll(ctx context.Context, filters ...Filter) (int64, error) {
	q := s.DB.WithContext(ctx).Unscoped().Model(new(T)).Where("deleted_at IS NOT NULL")
	res := applyFilters(q, filters).UpdateColumn("deleted_at", nil)
	return res.RowsAffected, res.Error
}

// ForceDelete purges a row that is already in the trash.
func (s *Service[T]) ForceDelete(ctx context.Context, id uint) error {
	db := s.DB.WithContext(ctx)
	res := db.Unscoped().Where("deleted_at IS NOT NULL").Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.NotTrashed(s.Opts.Name)
	}
	return helper.NotFound(s.Opts.Name)
}
