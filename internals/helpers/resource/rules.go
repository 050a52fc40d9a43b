package resource

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	helper "schooladmin_backend/internals/helpers"
)

type ruleKind int

const (
	ruleUnique ruleKind = iota
	ruleExists
)

type scopeCond struct {
	column string
	value  any
}

// Rule is a datastore-backed check: a value must be unique or must reference an existing row.
// Zero and nil values are skipped; required-ness belongs to struct validation.
type Rule struct {
	Field   string
	Message string

	kind       ruleKind
	table      string
	column     string
	value      any
	scopes     []scopeCond
	exceptID   uint
	activeOnly bool
}

// Unique: no other row in table has column = value. Trashed rows count, like the unique index does.
func Unique(field, table, column string, value any) Rule {
	return Rule{Field: field, kind: ruleUnique, table: table, column: column, value: value}
}

// Exists: table has a row with id = value.
func Exists(field, table string, value any) Rule {
	return Rule{Field: field, kind: ruleExists, table: table, column: "id", value: value}
}

// ExistsActive: like Exists, ignoring soft-deleted rows.
func ExistsActive(field, table string, value any) Rule {
	r := Exists(field, table, value)
	r.activeOnly = true
	return r
}

// Within restricts the rule to rows sharing column = value (e.g. "unique within branch").
func (r Rule) Within(column string, value any) Rule {
	r.scopes = append(append([]scopeCond(nil), r.scopes...), scopeCond{column: column, value: value})
	return r
}

// Except ignores the row being updated.
func (r Rule) Except(id uint) Rule {
	r.exceptID = id
	return r
}

func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

func (r Rule) message() string {
	if r.Message != "" {
		return r.Message
	}
	if r.kind == ruleUnique {
		return fmt.Sprintf("%s has already been taken", r.Field)
	}
	return fmt.Sprintf("selected %s is invalid", r.Field)
}

func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.IsZero() {
		return nil, false
	}
	return rv.Interface(), true
}

// CheckRules runs rules for fields not already reported in known and returns known plus new failures.
func CheckRules(ctx context.Context, db *gorm.DB, rules []Rule, known helper.FieldErrors) (helper.FieldErrors, error) {
	fe := known
	for _, r := range rules {
		if fe.Has(r.Field) {
			continue
		}
		v, ok := deref(r.value)
		if !ok {
			continue
		}
		q := db.WithContext(ctx).Table(r.table).Where(r.column+" = ?", v)
		for _, sc := range r.scopes {
			if sv, ok := deref(sc.value); ok {
				q = q.Where(sc.column+" = ?", sv)
			} else {
				q = q.Where(sc.column + " IS NULL")
			}
		}
		if r.exceptID != 0 {
			q = q.Where("id <> ?", r.exceptID)
		}
		if r.activeOnly {
			q = q.Where("deleted_at IS NULL")
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return nil, err
		}
		if (r.kind == ruleUnique && n > 0) || (r.kind == ruleExists && n == 0) {
			fe = fe.Add(r.Field, r.message())
		}
	}
	return fe, nil
}
