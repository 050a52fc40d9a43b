package database

import (
	"gorm.io/gorm"

	academicModel "schooladmin_backend/internals/features/academics/model"
	libraryModel "schooladmin_backend/internals/features/library/model"
	lookupModel "schooladmin_backend/internals/features/lookups/model"
	noticeModel "schooladmin_backend/internals/features/notices/model"
	orgModel "schooladmin_backend/internals/features/organization/model"
	transportModel "schooladmin_backend/internals/features/transport/model"
	authModel "schooladmin_backend/internals/features/users/auth/model"
	userModel "schooladmin_backend/internals/features/users/model"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		// lookups & organization
		&lookupModel.GenderModel{},
		&lookupModel.ReligionModel{},
		&lookupModel.DesignationModel{},
		&lookupModel.MonthModel{},
		&lookupModel.WeekdayModel{},
		&orgModel.BranchModel{},
		&orgModel.RoleModel{},

		// academics
		&academicModel.AcademicYearModel{},
		&academicModel.AcademicSessionModel{},
		&academicModel.ClassModel{},
		&academicModel.ClassroomModel{},
		&academicModel.SubjectModel{},
		&academicModel.ClassSubjectModel{},

		// users
		&userModel.UserModel{},
		&userModel.RegistrationSequenceModel{},
		&userModel.AdminModel{},
		&userModel.TeacherModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},

		// notices
		&noticeModel.NoticeTypeModel{},
		&noticeModel.NoticeModel{},

		// library
		&libraryModel.LibraryShelfModel{},
		&libraryModel.LibraryBookCategoryModel{},
		&libraryModel.ReaderTypeModel{},
		&libraryModel.LibraryBookModel{},

		// transport
		&transportModel.DriverModel{},
		&transportModel.TransportRouteModel{},
		&transportModel.TransportationModel{},
	}
}

// AutoMigrate runs in a single call so relation-only shapes never create their own tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
