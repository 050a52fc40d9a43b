package dto

import (
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
)

/* =========================================================
 * ADMIN
 * ========================================================= */

// CreateAdminRequest accepts JSON or multipart (with a "photo" file part).
type CreateAdminRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=3,max=100"`
	Email       string `json:"email" form:"email" validate:"required,email,max=150"`
	Phone       string `json:"phone" form:"phone" validate:"required,min=6,max=20"`
	NID         string `json:"nid" form:"nid" validate:"required,min=5,max=30"`
	ReligionID  uint   `json:"religion_id" form:"religion_id" validate:"required,min=1"`
	GenderID    uint   `json:"gender_id" form:"gender_id" validate:"required,min=1"`
	BranchID    uint   `json:"branch_id" form:"branch_id" validate:"required,min=1,max=99"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Address     string `json:"address" form:"address" validate:"omitempty,max=255"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.NID = strings.TrimSpace(r.NID)
	r.Address = strings.TrimSpace(r.Address)
}

func (r *CreateAdminRequest) DefaultBranch(branchID uint) {
	if r.BranchID == 0 {
		r.BranchID = branchID
	}
}

func (r *CreateAdminRequest) Branch() uint { return r.BranchID }

func (r *CreateAdminRequest) ToModel() *model.AdminModel {
	m := &model.AdminModel{}
	m.SetProfile(model.Profile{
		Name: r.Name, Email: r.Email, Phone: r.Phone, NID: r.NID,
		ReligionID: r.ReligionID, GenderID: r.GenderID,
		DateOfBirth: helper.DateOrZero(r.DateOfBirth), Address: r.Address,
	})
	return m
}

// UpdateProfileRequest is shared by admins and teachers. branch_id is immutable:
// it is encoded in the registration id.
type UpdateProfileRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=3,max=100"`
	Email       *string `json:"email" form:"email" validate:"omitempty,email,max=150"`
	Phone       *string `json:"phone" form:"phone" validate:"omitempty,min=6,max=20"`
	NID         *string `json:"nid" form:"nid" validate:"omitempty,min=5,max=30"`
	ReligionID  *uint   `json:"religion_id" form:"religion_id" validate:"omitempty,min=1"`
	GenderID    *uint   `json:"gender_id" form:"gender_id" validate:"omitempty,min=1"`
	DateOfBirth *string `json:"date_of_birth" form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address" form:"address" validate:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

func (r *UpdateProfileRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Phone)
	trimPtr(r.NID)
	trimPtr(r.Address)
	if r.Email != nil {
		*r.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
}

func (r *UpdateProfileRequest) Active() *bool { return r.IsActive }

func (r *UpdateProfileRequest) applyProfile(p *model.Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.NID != nil {
		p.NID = *r.NID
	}
	if r.ReligionID != nil {
		p.ReligionID = *r.ReligionID
	}
	if r.GenderID != nil {
		p.GenderID = *r.GenderID
	}
	if r.DateOfBirth != nil {
		p.DateOfBirth = helper.DateOrZero(*r.DateOfBirth)
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
}

type UpdateAdminRequest struct {
	UpdateProfileRequest
}

func (r *UpdateAdminRequest) ApplyTo(m *model.AdminModel) {
	p := m.Profile()
	r.applyProfile(&p)
	m.SetProfile(p)
}

/* =========================================================
 * TEACHER
 * ========================================================= */

type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,max=100"`
	Institution string `json:"institution" validate:"required,max=150"`
	Year        string `json:"year" validate:"omitempty,year4"`
	Result      string `json:"result" validate:"omitempty,max=50"`
}

type CreateTeacherRequest struct {
	Name          string `json:"name" form:"name" validate:"required,min=3,max=100"`
	Email         string `json:"email" form:"email" validate:"required,email,max=150"`
	Phone         string `json:"phone" form:"phone" validate:"required,min=6,max=20"`
	NID           string `json:"nid" form:"nid" validate:"required,min=5,max=30"`
	ReligionID    uint   `json:"religion_id" form:"religion_id" validate:"required,min=1"`
	GenderID      uint   `json:"gender_id" form:"gender_id" validate:"required,min=1"`
	BranchID      uint   `json:"branch_id" form:"branch_id" validate:"required,min=1,max=99"`
	DateOfBirth   string `json:"date_of_birth" form:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Address       string `json:"address" form:"address" validate:"omitempty,max=255"`
	DesignationID uint   `json:"designation_id" form:"designation_id" validate:"required,min=1"`
	SubjectID     uint   `json:"subject_id" form:"subject_id" validate:"required,min=1"`
	JoiningDate   string `json:"joining_date" form:"joining_date" validate:"required,datetime=2006-01-02"`

	Education []EducationEntry `json:"education" form:"-" validate:"omitempty,max=10,dive"`
	// multipart carries education as a JSON string
	EducationRaw string `json:"-" form:"education"`
	educationErr error
}

func (r *CreateTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.NID = strings.TrimSpace(r.NID)
	r.Address = strings.TrimSpace(r.Address)
	r.Education, r.educationErr = decodeEducation(r.Education, r.EducationRaw)
}

func (r *CreateTeacherRequest) Check() helper.FieldErrors { return educationErrors(r.educationErr) }

func (r *CreateTeacherRequest) DefaultBranch(branchID uint) {
	if r.BranchID == 0 {
		r.BranchID = branchID
	}
}

func (r *CreateTeacherRequest) Branch() uint { return r.BranchID }

func (r *CreateTeacherRequest) ToModel() *model.TeacherModel {
	m := &model.TeacherModel{
		DesignationID: r.DesignationID,
		SubjectID:     r.SubjectID,
		JoiningDate:   helper.DateOrZero(r.JoiningDate),
		Education:     educationJSON(r.Education),
	}
	m.SetProfile(model.Profile{
		Name: r.Name, Email: r.Email, Phone: r.Phone, NID: r.NID,
		ReligionID: r.ReligionID, GenderID: r.GenderID,
		DateOfBirth: helper.DateOrZero(r.DateOfBirth), Address: r.Address,
	})
	return m
}

type UpdateTeacherRequest struct {
	UpdateProfileRequest
	DesignationID *uint   `json:"designation_id" form:"designation_id" validate:"omitempty,min=1"`
	SubjectID     *uint   `json:"subject_id" form:"subject_id" validate:"omitempty,min=1"`
	JoiningDate   *string `json:"joining_date" form:"joining_date" validate:"omitempty,datetime=2006-01-02"`

	Education    []EducationEntry `json:"education" form:"-" validate:"omitempty,max=10,dive"`
	EducationRaw string           `json:"-" form:"education"`
	educationErr error
}

func (r *UpdateTeacherRequest) Normalize() {
	r.UpdateProfileRequest.Normalize()
	r.Education, r.educationErr = decodeEducation(r.Education, r.EducationRaw)
}

func (r *UpdateTeacherRequest) Check() helper.FieldErrors { return educationErrors(r.educationErr) }

func (r *UpdateTeacherRequest) ApplyTo(m *model.TeacherModel) {
	p := m.Profile()
	r.applyProfile(&p)
	m.SetProfile(p)
	if r.DesignationID != nil {
		m.DesignationID = *r.DesignationID
	}
	if r.SubjectID != nil {
		m.SubjectID = *r.SubjectID
	}
	if r.JoiningDate != nil {
		m.JoiningDate = helper.DateOrZero(*r.JoiningDate)
	}
	if r.Education != nil {
		m.Education = educationJSON(r.Education)
	}
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// decodeEducation reads the multipart JSON string when the body carried no JSON array.
func decodeEducation(in []EducationEntry, raw string) ([]EducationEntry, error) {
	if in != nil || strings.TrimSpace(raw) == "" {
		return in, nil
	}
	var out []EducationEntry
	if err := sonic.UnmarshalString(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func educationErrors(err error) helper.FieldErrors {
	if err == nil {
		return nil
	}
	return helper.FieldErrors{{Field: "education", Message: "education must be a JSON array"}}
}

func educationJSON(in []EducationEntry) datatypes.JSON {
	if in == nil {
		return nil
	}
	b, err := sonic.Marshal(in)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
