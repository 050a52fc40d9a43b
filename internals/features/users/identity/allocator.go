// Package identity issues registration ids of the form YYBBRRRSSS:
// two-digit year, two-digit branch, three-digit role, three-digit sequence.
package identity

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooladmin_backend/internals/features/users/model"
)

const (
	MaxBranch   = 99
	MaxRole     = 999
	MaxSequence = 999
	Length      = 10
)

var (
	ErrOutOfRange        = errors.New("branch or role does not fit the registration id")
	ErrSequenceExhausted = errors.New("registration sequence exhausted for this year, branch and role")
	ErrMalformed         = errors.New("malformed registration id")
)

// Parts is a decoded registration id.
type Parts struct {
	Year     int // two digits
	BranchID uint
	RoleID   uint
	Sequence int
}

func Compose(year int, branchID, roleID uint, seq int) (string, error) {
	if branchID == 0 || branchID > MaxBranch || roleID == 0 || roleID > MaxRole {
		return "", ErrOutOfRange
	}
	if seq < 1 || seq > MaxSequence {
		return "", ErrSequenceExhausted
	}
	return fmt.Sprintf("%02d%02d%03d%03d", year%100, branchID, roleID, seq), nil
}

func Parse(id string) (Parts, error) {
	if len(id) != Length {
		return Parts{}, ErrMalformed
	}
	num := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, ErrMalformed
		}
		return n, nil
	}
	var p Parts
	var err error
	if p.Year, err = num(id[0:2]); err != nil {
		return Parts{}, err
	}
	b, err := num(id[2:4])
	if err != nil {
		return Parts{}, err
	}
	r, err := num(id[4:7])
	if err != nil {
		return Parts{}, err
	}
	if p.Sequence, err = num(id[7:10]); err != nil {
		return Parts{}, err
	}
	p.BranchID, p.RoleID = uint(b), uint(r)
	return p, nil
}

// prefix is the YYBBRRR part shared by every id of one counter.
func prefix(year int, branchID, roleID uint) string {
	return fmt.Sprintf("%02d%02d%03d", year%100, branchID, roleID)
}

// Allocator hands out sequences from registration_sequences.
type Allocator struct {
	Now func() time.Time
}

func NewAllocator() *Allocator {
	return &Allocator{Now: time.Now}
}

func (a *Allocator) year() int {
	now := time.Now
	if a != nil && a.Now != nil {
		now = a.Now
	}
	return now().Year() % 100
}

// Allocate reserves the next id for (branch, role) in the current year. tx must be the
// transaction that inserts the user, so a rollback gives the number back.
func (a *Allocator) Allocate(tx *gorm.DB, branchID, roleID uint) (string, error) {
	if branchID == 0 || branchID > MaxBranch || roleID == 0 || roleID > MaxRole {
		return "", ErrOutOfRange
	}
	year := a.year()

	// First use of a key: start after the newest legacy id with the same prefix.
	seed, err := legacySequence(tx, prefix(year, branchID, roleID))
	if err != nil {
		return "", err
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.RegistrationSequenceModel{
		Year: year, BranchID: branchID, RoleID: roleID, LastValue: seed,
	}).Error; err != nil {
		return "", fmt.Errorf("seed registration sequence: %w", err)
	}

	// The UPDATE takes the row lock; concurrent creators queue here.
	key := "year = ? AND branch_id = ? AND role_id = ?"
	if err := tx.Model(&model.RegistrationSequenceModel{}).
		Where(key, year, branchID, roleID).
		Update("last_value", gorm.Expr("last_value + 1")).Error; err != nil {
		return "", fmt.Errorf("bump registration sequence: %w", err)
	}

	var seq model.RegistrationSequenceModel
	if err := tx.Where(key, year, branchID, roleID).Take(&seq).Error; err != nil {
		return "", fmt.Errorf("read registration sequence: %w", err)
	}
	return Compose(year, branchID, roleID, seq.LastValue)
}

// legacySequence reads the suffix of the most recently inserted id with prefix p.
func legacySequence(tx *gorm.DB, p string) (int, error) {
	var ids []string
	err := tx.Unscoped().Model(&model.UserModel{}).
		Where("registration_id LIKE ?", p+"%").
		Order("id DESC").Limit(1).
		Pluck("registration_id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	parts, err := Parse(ids[0])
	if err != nil {
		return 0, nil
	}
	return parts.Sequence, nil
}
