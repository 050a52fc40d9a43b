package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "schooladmin_backend/internals/features/users/auth/repository"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// ========================== CHANGE PASSWORD ==========================

// ChangePassword replaces the caller's password and signs out every other session.
func (s *Service) ChangePassword(ctx context.Context, sc helperAuth.Scope, current, next string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := authRepo.FindUserByID(ctx, tx, sc.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("user")
			}
			return err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
			return helper.FieldErrors{{Field: "current_password", Message: "current_password is incorrect"}}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := authRepo.UpdateUserPassword(ctx, tx, user.ID, string(hash)); err != nil {
			return err
		}
		return authRepo.RevokeUserRefreshTokens(ctx, tx, user.ID, s.now())
	})
}
