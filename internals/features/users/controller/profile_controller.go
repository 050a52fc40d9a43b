package controller

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "schooladmin_backend/internals/features/users/auth/model"
	"schooladmin_backend/internals/features/users/identity"
	"schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	"schooladmin_backend/internals/helpers/resource"
	"schooladmin_backend/internals/helpers/storage"
)

// profileModel is satisfied by *AdminModel and *TeacherModel.
type profileModel[T any] interface {
	*T
	ProfileUserID() uint
	AttachUser(userID uint)
	PhotoURL() *string
	SetPhotoURL(url *string)
	Check() helper.FieldErrors
}

// ProfileDeps are shared by the admin and teacher controllers.
type ProfileDeps struct {
	DB        *gorm.DB
	Validator *helper.Validator
	Store     storage.Store
	Alloc     *identity.Allocator
	ImageOpts storage.ImageOptions
	HashCost  int // bcrypt cost of the initial password; 0 = bcrypt.DefaultCost
}

// ProfileController serves a profile entity that owns a login user.
// Reads come from the embedded generic Handler; every write touches the profile and its user together.
type ProfileController[T any, PT profileModel[T], C any, U any] struct {
	*resource.Handler[T, C, U]

	Deps   ProfileDeps
	Role   uint
	Folder string

	BranchOf func(in *C) uint
	Active   func(in *U) *bool
}

func (pc *ProfileController[T, PT, C, U]) name() string { return pc.Service.Opts.Name }

func (pc *ProfileController[T, PT, C, U]) hashCost() int {
	if pc.Deps.HashCost > 0 {
		return pc.Deps.HashCost
	}
	return bcrypt.DefaultCost
}

// photo stores the optional "photo" part of a multipart body. Empty url means none was sent.
func (pc *ProfileController[T, PT, C, U]) photo(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}
	return pc.savePhoto(c.UserContext(), fh)
}

func (pc *ProfileController[T, PT, C, U]) savePhoto(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if pc.Deps.Store == nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "storage is not configured")
	}
	return storage.SavePhoto(ctx, pc.Deps.Store, pc.Folder, fh, pc.Deps.ImageOpts)
}

func (pc *ProfileController[T, PT, C, U]) rules(ent *T) []resource.Rule {
	if pc.Rules == nil {
		return nil
	}
	return pc.Rules(ent)
}

/* ============================================
   CREATE
============================================ */

// Create allocates a registration id, then inserts the user and the profile in one transaction.
// The registration id is also the initial password.
func (pc *ProfileController[T, PT, C, U]) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var in C
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	resource.Prepare(c, &in)
	fe := resource.Validate(pc.Validator, &in)

	branchID := pc.BranchOf(&in)
	ent := pc.NewModel(&in)
	fe = fe.Merge(PT(ent).Check())
	if len(fe) > 0 {
		return helper.JsonValidationError(c, fe)
	}
	rules := append([]resource.Rule{resource.ExistsActive("branch_id", "branches", branchID)}, pc.rules(ent)...)
	fe, err := resource.CheckRules(ctx, pc.Deps.DB, rules, nil)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if len(fe) > 0 {
		return helper.JsonValidationError(c, fe)
	}

	photoURL, err := pc.photo(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if photoURL != "" {
		PT(ent).SetPhotoURL(&photoURL)
	}

	var out *T
	err = pc.Deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		regID, err := pc.Deps.Alloc.Allocate(tx, branchID, pc.Role)
		if err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(regID), pc.hashCost())
		if err != nil {
			return err
		}
		user := model.UserModel{
			RoleID:         pc.Role,
			BranchID:       branchID,
			RegistrationID: regID,
			Password:       string(hash),
			IsActive:       true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		PT(ent).AttachUser(user.ID)
		out, err = pc.Service.WithDB(tx).Create(ctx, ent)
		return err
	})
	if err != nil {
		storage.DeleteByURL(ctx, pc.Deps.Store, photoURL)
		return helper.WriteError(c, allocationError(err))
	}

	log.Info().Str("resource", pc.name()).Uint("user_id", PT(out).ProfileUserID()).Msg("profile created")
	return helper.JsonCreated(c, pc.name()+" created", out)
}

func allocationError(err error) error {
	switch {
	case errors.Is(err, identity.ErrSequenceExhausted):
		return helper.Conflict("no registration number left for this branch, role and year")
	case errors.Is(err, identity.ErrOutOfRange):
		return helper.FieldErrors{{Field: "branch_id", Message: "branch_id may not be greater than 99"}}
	default:
		return err
	}
}

/* ============================================
   UPDATE
============================================ */

// Update applies submitted fields. A new photo is stored first; the old one is removed after commit.
func (pc *ProfileController[T, PT, C, U]) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := resource.ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	var in U
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	resource.Prepare(c, &in)
	if fe := resource.Validate(pc.Validator, &in); len(fe) > 0 {
		return helper.JsonValidationError(c, fe)
	}

	newPhoto, err := pc.photo(c)
	if err != nil {
		return helper.WriteError(c, err)
	}

	var (
		out      *T
		oldPhoto string
	)
	err = pc.Deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		svc := pc.Service.WithDB(tx)
		var userID uint
		_, err := svc.Update(ctx, id, func(ent *T) error {
			pc.Apply(&in, ent)
			if newPhoto != "" {
				if prev := PT(ent).PhotoURL(); prev != nil {
					oldPhoto = *prev
				}
				PT(ent).SetPhotoURL(&newPhoto)
			}
			fe := PT(ent).Check()
			if len(fe) > 0 {
				return fe
			}
			fe, err := resource.CheckRules(ctx, tx, pc.rules(ent), nil)
			if err != nil {
				return err
			}
			if len(fe) > 0 {
				return fe
			}
			userID = PT(ent).ProfileUserID()
			return nil
		})
		if err != nil {
			return err
		}
		if pc.Active != nil {
			if active := pc.Active(&in); active != nil {
				if err := tx.Model(&model.UserModel{}).Where("id = ?", userID).Update("is_active", *active).Error; err != nil {
					return err
				}
			}
		}
		out, err = svc.Get(ctx, id)
		return err
	})
	if err != nil {
		storage.DeleteByURL(ctx, pc.Deps.Store, newPhoto)
		return helper.WriteError(c, err)
	}
	if oldPhoto != "" {
		storage.DeleteByURL(ctx, pc.Deps.Store, oldPhoto)
	}
	return helper.JsonUpdated(c, pc.name()+" updated", out)
}

/* ============================================
   DELETE / RESTORE
============================================ */

// Delete soft-deletes the profile and its user.
func (pc *ProfileController[T, PT, C, U]) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	err = pc.Deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ent, err := pc.Service.WithDB(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ent).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserModel{}, PT(ent).ProfileUserID()).Error
	})
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonDeleted(c, pc.name()+" deleted", fiber.Map{"id": id})
}

// Restore brings back the profile and its user. Restoring an active profile is a no-op.
func (pc *ProfileController[T, PT, C, U]) Restore(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	var out *T
	err = pc.Deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		svc := pc.Service.WithDB(tx)
		ent, err := svc.GetUnscoped(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Unscoped().Model(&model.UserModel{}).
			Where("id = ? AND deleted_at IS NOT NULL", PT(ent).ProfileUserID()).
			UpdateColumn("deleted_at", nil).Error; err != nil {
			return err
		}
		out, err = svc.Restore(ctx, id)
		return err
	})
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, pc.name()+" restored", out)
}

func (pc *ProfileController[T, PT, C, U]) RestoreAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var filters []resource.Filter
	if pc.Filters != nil {
		var err error
		if filters, err = pc.Filters(c, helperAuth.ScopeOrZero(c)); err != nil {
			return helper.WriteError(c, err)
		}
	}

	var n int64
	err := pc.Deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Unscoped().Model(new(T)).Where("deleted_at IS NOT NULL")
		for _, f := range filters {
			if f != nil {
				q = f(q)
			}
		}
		var userIDs []uint
		if err := q.Pluck("user_id", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}
		res := tx.Unscoped().Model(new(T)).
			Where("user_id IN ? AND deleted_at IS NOT NULL", userIDs).
			UpdateColumn("deleted_at", nil)
		if res.Error != nil {
			return res.Error
		}
		n = res.RowsAffected
		return tx.Unscoped().Model(&model.UserModel{}).
			Where("id IN ? AND deleted_at IS NOT NULL", userIDs).
			UpdateColumn("deleted_at", nil).Error
	})
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "restored", fiber.Map{"restored": n})
}

// ForceDelete purges a trashed profile, its user, its refresh tokens and its photo.
func (pc *ProfileController[T, PT, C, U]) ForceDelete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	var photo string
	err = pc.Deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		svc := pc.Service.WithDB(tx)
		ent, err := svc.GetUnscoped(ctx, id)
		if err != nil {
			return err
		}
		if err := svc.ForceDelete(ctx, id); err != nil {
			return err
		}
		if p := PT(ent).PhotoURL(); p != nil {
			photo = *p
		}
		userID := PT(ent).ProfileUserID()
		if err := tx.Where("user_id = ?", userID).Delete(&authModel.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.UserModel{}, userID).Error
	})
	if err != nil {
		return helper.WriteError(c, err)
	}
	storage.DeleteByURL(ctx, pc.Deps.Store, photo)
	return helper.JsonDeleted(c, pc.name()+" permanently deleted", fiber.Map{"id": id})
}

/* ============================================
   FILTERS
============================================ */

// profileFilters scopes by the owning user's branch, then by the listed ?column= ids.
func profileFilters(columns ...string) func(*fiber.Ctx, helperAuth.Scope) ([]resource.Filter, error) {
	return func(c *fiber.Ctx, sc helperAuth.Scope) ([]resource.Filter, error) {
		branchID, ok, err := resource.QueryUint(c, "branch_id")
		if err != nil {
			return nil, err
		}
		if !ok {
			branchID = sc.BranchID
		}
		var out []resource.Filter
		if branchID != 0 {
			out = append(out, resource.Where("user_id IN (SELECT id FROM users WHERE branch_id = ?)", branchID))
		}
		rest, err := resource.QueryEquals(c, columns...)
		if err != nil {
			return nil, err
		}
		return append(out, rest...), nil
	}
}
