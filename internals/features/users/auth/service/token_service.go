package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authRepo "schooladmin_backend/internals/features/users/auth/repository"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// ========================== REFRESH TOKEN ==========================

// Refresh rotates a refresh token: the presented one is revoked and a new pair is issued.
// A token that was already rotated is rejected.
func (s *Service) Refresh(ctx context.Context, raw string, meta ClientMeta) (*TokenPair, error) {
	claims, err := helperAuth.ParseRefreshToken(s.Cfg.RefreshSecret, raw)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	var out *TokenPair
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := s.now()
		rt, err := authRepo.FindActiveRefreshToken(ctx, tx, helperAuth.TokenHash(raw, s.Cfg.RefreshSecret), now)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if rt.UserID != claims.UserID {
			return ErrInvalidRefresh
		}
		active, err := authRepo.IsUserActive(ctx, tx, rt.UserID)
		if err != nil {
			return err
		}
		if !active {
			return ErrInactiveAccount
		}

		// ROTATE
		revoked, err := authRepo.RevokeRefreshToken(ctx, tx, rt.ID, now)
		if err != nil {
			return err
		}
		if !revoked {
			return ErrInvalidRefresh
		}
		out, err = s.issue(ctx, tx, rt.UserID, meta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ========================== LOGOUT ==========================

// Logout blacklists the access token for the rest of its life and revokes the refresh token.
// Both are optional; calling it twice is harmless.
func (s *Service) Logout(ctx context.Context, rawAccess, rawRefresh string) error {
	now := s.now()
	if rawAccess != "" {
		if err := s.Blacklist.Add(ctx, rawAccess, s.blacklistTTL(rawAccess, now)); err != nil {
			return err
		}
	}
	if rawRefresh != "" {
		hash := helperAuth.TokenHash(rawRefresh, s.Cfg.RefreshSecret)
		if err := authRepo.RevokeRefreshTokenByHash(ctx, s.DB, hash, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) blacklistTTL(rawAccess string, now time.Time) time.Duration {
	claims, err := helperAuth.ParseAccessToken(s.Cfg.AccessSecret, rawAccess)
	if err != nil || claims.ExpiresAt == nil {
		return blacklistGrace
	}
	return helperAuth.RemainingTTL(claims.ExpiresAt.Time, now) + blacklistGrace
}
