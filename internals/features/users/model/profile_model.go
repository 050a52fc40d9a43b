package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/refs"
	helper "schooladmin_backend/internals/helpers"
)

// Profile holds the personal fields shared by admins and teachers.
type Profile struct {
	Name        string
	Email       string
	Phone       string
	NID         string
	ReligionID  uint
	GenderID    uint
	DateOfBirth time.Time
	Address     string
}

type AdminModel struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:uq_admins_user_id" json:"user_id"`

	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_admins_email" json:"email"`
	Phone       string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_admins_phone" json:"phone"`
	NID         string    `gorm:"column:nid;type:varchar(30);not null;uniqueIndex:uq_admins_nid" json:"nid"`
	ReligionID  uint      `gorm:"not null" json:"religion_id"`
	GenderID    uint      `gorm:"not null" json:"gender_id"`
	DateOfBirth time.Time `gorm:"not null" json:"date_of_birth"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	Photo       *string   `gorm:"type:varchar(255);uniqueIndex:uq_admins_photo" json:"photo,omitempty"`

	User     *refs.UserRef     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Religion *refs.ReligionRef `gorm:"foreignKey:ReligionID" json:"religion,omitempty"`
	Gender   *refs.GenderRef   `gorm:"foreignKey:GenderID" json:"gender,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AdminModel) TableName() string { return "admins" }

func (m *AdminModel) SetProfile(p Profile) {
	m.Name, m.Email, m.Phone, m.NID = p.Name, p.Email, p.Phone, p.NID
	m.ReligionID, m.GenderID = p.ReligionID, p.GenderID
	m.DateOfBirth, m.Address = p.DateOfBirth, p.Address
}

type TeacherModel struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:uq_teachers_user_id" json:"user_id"`

	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_teachers_email" json:"email"`
	Phone       string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_teachers_phone" json:"phone"`
	NID         string    `gorm:"column:nid;type:varchar(30);not null;uniqueIndex:uq_teachers_nid" json:"nid"`
	ReligionID  uint      `gorm:"not null" json:"religion_id"`
	GenderID    uint      `gorm:"not null" json:"gender_id"`
	DateOfBirth time.Time `gorm:"not null" json:"date_of_birth"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	Photo       *string   `gorm:"type:varchar(255);uniqueIndex:uq_teachers_photo" json:"photo,omitempty"`

	DesignationID uint           `gorm:"not null" json:"designation_id"`
	SubjectID     uint           `gorm:"not null" json:"subject_id"`
	JoiningDate   time.Time      `gorm:"not null" json:"joining_date"`
	Education     datatypes.JSON `json:"education,omitempty"`

	User        *refs.UserRef        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Religion    *refs.ReligionRef    `gorm:"foreignKey:ReligionID" json:"religion,omitempty"`
	Gender      *refs.GenderRef      `gorm:"foreignKey:GenderID" json:"gender,omitempty"`
	Designation *refs.DesignationRef `gorm:"foreignKey:DesignationID" json:"designation,omitempty"`
	Subject     *refs.SubjectRef     `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) SetProfile(p Profile) {
	m.Name, m.Email, m.Phone, m.NID = p.Name, p.Email, p.Phone, p.NID
	m.ReligionID, m.GenderID = p.ReligionID, p.GenderID
	m.DateOfBirth, m.Address = p.DateOfBirth, p.Address
}

/* ============================================
   Profile accessors shared by admins and teachers
============================================ */

func (m *AdminModel) Profile() Profile {
	return Profile{
		Name: m.Name, Email: m.Email, Phone: m.Phone, NID: m.NID,
		ReligionID: m.ReligionID, GenderID: m.GenderID,
		DateOfBirth: m.DateOfBirth, Address: m.Address,
	}
}

func (m *AdminModel) ProfileUserID() uint      { return m.UserID }
func (m *AdminModel) AttachUser(userID uint)   { m.UserID = userID }
func (m *AdminModel) PhotoURL() *string        { return m.Photo }
func (m *AdminModel) SetPhotoURL(url *string)  { m.Photo = url }
func (m *AdminModel) Check() helper.FieldErrors { return checkProfile(m.Profile()) }

func (m *TeacherModel) Profile() Profile {
	return Profile{
		Name: m.Name, Email: m.Email, Phone: m.Phone, NID: m.NID,
		ReligionID: m.ReligionID, GenderID: m.GenderID,
		DateOfBirth: m.DateOfBirth, Address: m.Address,
	}
}

func (m *TeacherModel) ProfileUserID() uint     { return m.UserID }
func (m *TeacherModel) AttachUser(userID uint)  { m.UserID = userID }
func (m *TeacherModel) PhotoURL() *string       { return m.Photo }
func (m *TeacherModel) SetPhotoURL(url *string) { m.Photo = url }

func (m *TeacherModel) Check() helper.FieldErrors {
	fe := checkProfile(m.Profile())
	if !m.JoiningDate.IsZero() && m.JoiningDate.Before(m.DateOfBirth) {
		fe = fe.Add("joining_date", "joining_date must be after date_of_birth")
	}
	return fe
}

func checkProfile(p Profile) helper.FieldErrors {
	var fe helper.FieldErrors
	if p.DateOfBirth.After(time.Now()) {
		fe = fe.Add("date_of_birth", "date_of_birth must be in the past")
	}
	return fe
}
