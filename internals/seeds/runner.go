package seeds

import (
	"gorm.io/gorm"

	"schooladmin_backend/internals/seeds/lookups"
	"schooladmin_backend/internals/seeds/roles"
)

// RunAllSeeds is idempotent: rows that already exist are skipped.
func RunAllSeeds(db *gorm.DB) error {
	//* Roles
	if err := roles.SeedRoles(db); err != nil {
		return err
	}

	//* Lookups
	return lookups.SeedLookups(db)
}
