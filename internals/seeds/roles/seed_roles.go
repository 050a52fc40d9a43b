package roles

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooladmin_backend/internals/constants"
	"schooladmin_backend/internals/features/organization/model"
)

// SeedRoles inserts the fixed role ids. Existing rows are left untouched.
func SeedRoles(db *gorm.DB) error {
	ids := make([]uint, 0, len(constants.RoleNames))
	for id := range constants.RoleNames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([]model.RoleModel, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.RoleModel{ID: id, Name: constants.RoleNames[id]})
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("seed roles: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Msg("roles seeded")

	// explicit ids do not advance the serial on postgres
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`SELECT setval(pg_get_serial_sequence('roles','id'), (SELECT COALESCE(MAX(id), 1) FROM roles))`).Error
	}
	return nil
}
