package lookups

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooladmin_backend/internals/features/lookups/model"
)

//go:embed data_lookups.json
var dataLookups []byte

type lookupSeed struct {
	Genders      []string `json:"genders"`
	Religions    []string `json:"religions"`
	Designations []string `json:"designations"`
	Months       []string `json:"months"`
	Weekdays     []string `json:"weekdays"`
}

// named rows get ids 1..n in file order
func named[T any](names []string, build func(id uint, name string) T) []T {
	out := make([]T, 0, len(names))
	for i, n := range names {
		out = append(out, build(uint(i+1), n))
	}
	return out
}

func insert[T any](db *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("seed %s: %w", table, res.Error)
	}
	log.Info().Str("table", table).Int64("inserted", res.RowsAffected).Msg("seeded")
	return nil
}

func SeedLookups(db *gorm.DB) error {
	var s lookupSeed
	if err := sonic.Unmarshal(dataLookups, &s); err != nil {
		return fmt.Errorf("decode lookup seed: %w", err)
	}

	if err := insert(db, "genders", named(s.Genders, func(id uint, n string) model.GenderModel {
		return model.GenderModel{ID: id, Name: n}
	})); err != nil {
		return err
	}
	if err := insert(db, "religions", named(s.Religions, func(id uint, n string) model.ReligionModel {
		return model.ReligionModel{ID: id, Name: n}
	})); err != nil {
		return err
	}
	if err := insert(db, "designations", named(s.Designations, func(id uint, n string) model.DesignationModel {
		return model.DesignationModel{ID: id, Name: n}
	})); err != nil {
		return err
	}
	if err := insert(db, "months", named(s.Months, func(id uint, n string) model.MonthModel {
		return model.MonthModel{ID: id, Name: n}
	})); err != nil {
		return err
	}
	return insert(db, "weekdays", named(s.Weekdays, func(id uint, n string) model.WeekdayModel {
		return model.WeekdayModel{ID: id, Name: n}
	}))
}
