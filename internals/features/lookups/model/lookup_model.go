package model

// Static enumerations seeded at startup. No writes go through the API.

type GenderModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(30);not null;uniqueIndex:uq_genders_name" json:"name"`
}

func (GenderModel) TableName() string { return "genders" }

type ReligionModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex:uq_religions_name" json:"name"`
}

func (ReligionModel) TableName() string { return "religions" }

type DesignationModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_designations_name" json:"name"`
}

func (DesignationModel) TableName() string { return "designations" }

type MonthModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(20);not null;uniqueIndex:uq_months_name" json:"name"`
}

func (MonthModel) TableName() string { return "months" }

type WeekdayModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(20);not null;uniqueIndex:uq_weekdays_name" json:"name"`
}

func (WeekdayModel) TableName() string { return "weekdays" }
