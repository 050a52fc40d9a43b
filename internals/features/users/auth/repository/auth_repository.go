package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "schooladmin_backend/internals/features/users/auth/model"
	userModel "schooladmin_backend/internals/features/users/model"
)

/* ====================== USER ====================== */

func FindUserByRegistrationID(ctx context.Context, db *gorm.DB, regID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("registration_id = ?", regID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uint) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Preload("Role").Preload("Branch").First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByProfileEmail matches an admin profile first, then a teacher profile.
func FindUserByProfileEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	for _, table := range []string{"admins", "teachers"} {
		var ids []uint
		err := db.WithContext(ctx).Table(table).
			Where("LOWER(email) = LOWER(?) AND deleted_at IS NULL", email).
			Limit(1).Pluck("user_id", &ids).Error
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			return FindUserByID(ctx, db, ids[0])
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// IsUserActive: the user exists, is not deleted and may sign in.
func IsUserActive(ctx context.Context, db *gorm.DB, userID uint) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ? AND is_active = ?", userID, true).
		Count(&n).Error
	return n > 0, err
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uint, hash string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hash).Error
}

/* ====================== PROFILE ====================== */

// FindProfile loads the admin or teacher profile owned by userID. A user with neither returns nil.
func FindProfile(ctx context.Context, db *gorm.DB, userID uint) (any, error) {
	var admin userModel.AdminModel
	err := db.WithContext(ctx).Preload("Religion").Preload("Gender").Where("user_id = ?", userID).Take(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var teacher userModel.TeacherModel
	err = db.WithContext(ctx).
		Preload("Religion").Preload("Gender").Preload("Designation").Preload("Subject").
		Where("user_id = ?", userID).Take(&teacher).Error
	if err == nil {
		return &teacher, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, token *authModel.RefreshToken) error {
	return db.WithContext(ctx).Create(token).Error
}

// FindActiveRefreshToken: not revoked, not expired.
func FindActiveRefreshToken(ctx context.Context, db *gorm.DB, hash string, now time.Time) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	err := db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, now).
		Take(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken returns false when the token was already revoked (e.g. a concurrent refresh won).
func RevokeRefreshToken(ctx context.Context, db *gorm.DB, id uuid.UUID, now time.Time) (bool, error) {
	res := db.WithContext(ctx).Model(&authModel.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now)
	return res.RowsAffected > 0, res.Error
}

func RevokeRefreshTokenByHash(ctx context.Context, db *gorm.DB, hash string, now time.Time) error {
	return db.WithContext(ctx).Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

func RevokeUserRefreshTokens(ctx context.Context, db *gorm.DB, userID uint, now time.Time) error {
	return db.WithContext(ctx).Model(&authModel.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

// CleanupRefreshTokens removes expired tokens and tokens revoked before cutoff.
func CleanupRefreshTokens(ctx context.Context, db *gorm.DB, now, revokedBefore time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at <= ? OR revoked_at <= ?", now, revokedBefore).
		Delete(&authModel.RefreshToken{})
	return res.RowsAffected, res.Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken is idempotent: a second logout with the same token keeps the later expiry.
func BlacklistToken(ctx context.Context, db *gorm.DB, hash string, expiredAt time.Time) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
	}).Create(&authModel.TokenBlacklist{Token: hash, ExpiredAt: expiredAt}).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, hash string, now time.Time) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", hash, now).
		Count(&n).Error
	return n > 0, err
}

func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expired_at <= ?", now).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
