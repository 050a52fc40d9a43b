package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/dto"
	"schooladmin_backend/internals/features/academics/model"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	"schooladmin_backend/internals/helpers/resource"
)

type (
	AcademicYearHandler    = resource.Handler[model.AcademicYearModel, dto.CreateAcademicYearRequest, dto.UpdateAcademicYearRequest]
	AcademicSessionHandler = resource.Handler[model.AcademicSessionModel, dto.CreateAcademicSessionRequest, dto.UpdateAcademicSessionRequest]
	ClassHandler           = resource.Handler[model.ClassModel, dto.CreateClassRequest, dto.UpdateClassRequest]
	ClassroomHandler       = resource.Handler[model.ClassroomModel, dto.CreateClassroomRequest, dto.UpdateClassroomRequest]
	SubjectHandler         = resource.Handler[model.SubjectModel, dto.CreateSubjectRequest, dto.UpdateSubjectRequest]
	ClassSubjectHandler    = resource.Handler[model.ClassSubjectModel, dto.CreateClassSubjectRequest, dto.UpdateClassSubjectRequest]
)

func NewAcademicYearHandler(db *gorm.DB, v *helper.Validator) *AcademicYearHandler {
	return &AcademicYearHandler{
		Service: resource.NewService[model.AcademicYearModel](db, resource.Options{
			Name: "academic year", Preloads: []string{"Branch"}, SoftDelete: true,
		}),
		Validator: v,
		NewModel:  (*dto.CreateAcademicYearRequest).ToModel,
		Apply:     (*dto.UpdateAcademicYearRequest).ApplyTo,
		Rules: func(m *model.AcademicYearModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("branch_id", "branches", m.BranchID),
				resource.Unique("year", "academic_years", "year", m.Year).
					Within("branch_id", m.BranchID).Except(m.ID),
			}
		},
		Filters: resource.BranchScoped(),
	}
}

func NewAcademicSessionHandler(db *gorm.DB, v *helper.Validator) *AcademicSessionHandler {
	return &AcademicSessionHandler{
		Service: resource.NewService[model.AcademicSessionModel](db, resource.Options{
			Name: "academic session", Preloads: []string{"AcademicYear"}, SoftDelete: true,
		}),
		Validator: v,
		NewModel:  (*dto.CreateAcademicSessionRequest).ToModel,
		Apply:     (*dto.UpdateAcademicSessionRequest).ApplyTo,
		Rules: func(m *model.AcademicSessionModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("academic_year_id", "academic_years", m.AcademicYearID),
				resource.Unique("name", "academic_sessions", "name", m.Name).
					Within("academic_year_id", m.AcademicYearID).Except(m.ID),
			}
		},
		Filters: resource.ByQuery("academic_year_id"),
	}
}

func NewClassHandler(db *gorm.DB, v *helper.Validator) *ClassHandler {
	return &ClassHandler{
		Service: resource.NewService[model.ClassModel](db, resource.Options{
			Name: "class", Preloads: []string{"Branch"}, SoftDelete: true,
		}),
		Validator: v,
		NewModel:  (*dto.CreateClassRequest).ToModel,
		Apply:     (*dto.UpdateClassRequest).ApplyTo,
		Rules: func(m *model.ClassModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("branch_id", "branches", m.BranchID),
				resource.Unique("name", "classes", "name", m.Name).
					Within("branch_id", m.BranchID).Except(m.ID),
			}
		},
		Filters: resource.BranchScoped(),
	}
}

// classroomFilters: ?class_id and ?is_active=true|false
func classroomFilters(c *fiber.Ctx, _ helperAuth.Scope) ([]resource.Filter, error) {
	out, err := resource.QueryEquals(c, "class_id")
	if err != nil {
		return nil, err
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "is_active must be true or false")
		}
		out = append(out, resource.Where("is_active = ?", active))
	}
	return out, nil
}

func NewClassroomHandler(db *gorm.DB, v *helper.Validator) *ClassroomHandler {
	return &ClassroomHandler{
		Service: resource.NewService[model.ClassroomModel](db, resource.Options{
			Name: "classroom", Preloads: []string{"Class"},
		}),
		Validator: v,
		NewModel:  (*dto.CreateClassroomRequest).ToModel,
		Apply:     (*dto.UpdateClassroomRequest).ApplyTo,
		Rules: func(m *model.ClassroomModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("class_id", "classes", m.ClassID),
				resource.Unique("name", "classrooms", "name", m.Name).
					Within("class_id", m.ClassID).Except(m.ID),
			}
		},
		Filters: classroomFilters,
	}
}

func NewSubjectHandler(db *gorm.DB, v *helper.Validator) *SubjectHandler {
	return &SubjectHandler{
		Service:   resource.NewService[model.SubjectModel](db, resource.Options{Name: "subject", SoftDelete: true}),
		Validator: v,
		NewModel:  (*dto.CreateSubjectRequest).ToModel,
		Apply:     (*dto.UpdateSubjectRequest).ApplyTo,
		Rules: func(m *model.SubjectModel) []resource.Rule {
			return []resource.Rule{
				resource.Unique("name", "subjects", "name", m.Name).Except(m.ID),
				resource.Unique("code", "subjects", "code", m.Code).Except(m.ID),
			}
		},
	}
}

func NewClassSubjectHandler(db *gorm.DB, v *helper.Validator) *ClassSubjectHandler {
	return &ClassSubjectHandler{
		Service: resource.NewService[model.ClassSubjectModel](db, resource.Options{
			Name: "class subject", Preloads: []string{"Class", "Subject"},
		}),
		Validator: v,
		NewModel:  (*dto.CreateClassSubjectRequest).ToModel,
		Apply:     (*dto.UpdateClassSubjectRequest).ApplyTo,
		Rules: func(m *model.ClassSubjectModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("class_id", "classes", m.ClassID),
				resource.ExistsActive("subject_id", "subjects", m.SubjectID),
				resource.Unique("subject_id", "class_subjects", "subject_id", m.SubjectID).
					Within("class_id", m.ClassID).Except(m.ID).
					WithMessage("subject is already assigned to this class"),
			}
		},
		Filters: resource.ByQuery("class_id", "subject_id"),
	}
}
