package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "schooladmin_backend/internals/features/users/auth/model"
	authRepo "schooladmin_backend/internals/features/users/auth/repository"
	userModel "schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour

	// a blacklisted token outlives its own expiry by this much
	blacklistGrace = 60 * time.Second
	// revoked refresh tokens are kept this long for auditing
	revokedRetention = 7 * 24 * time.Hour
)

var (
	ErrInactiveAccount = fiber.NewError(fiber.StatusForbidden, "account is not active")
	ErrInvalidRefresh  = fiber.NewError(fiber.StatusUnauthorized, "invalid refresh token")
	ErrGoogleToken     = fiber.NewError(fiber.StatusUnauthorized, "invalid google id token")
)

type Config struct {
	AccessSecret   string
	RefreshSecret  string
	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	GoogleClientID string
}

// ClientMeta is stored next to each refresh token.
type ClientMeta struct {
	UserAgent string
	IP        string
}

type TokenPair struct {
	AccessToken      string               `json:"access_token"`
	TokenType        string               `json:"token_type"`
	ExpiresAt        time.Time            `json:"expires_at"`
	RefreshToken     string               `json:"refresh_token"`
	RefreshExpiresAt time.Time            `json:"refresh_expires_at"`
	User             *userModel.UserModel `json:"user"`
}

type MeResponse struct {
	User    *userModel.UserModel `json:"user"`
	Profile any                  `json:"profile,omitempty"`
}

// GoogleVerifier checks a Google ID token for audience and returns its email.
type GoogleVerifier interface {
	VerifyEmail(idToken string, audience []string) (string, error)
}

type futurendaVerifier struct {
	v googleAuthIDTokenVerifier.Verifier
}

func (f *futurendaVerifier) VerifyEmail(idToken string, audience []string) (string, error) {
	if err := f.v.VerifyIDToken(idToken, audience); err != nil {
		return "", err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", err
	}
	return claimSet.Email, nil
}

type Service struct {
	DB        *gorm.DB
	Cfg       Config
	Blacklist Blacklist
	Google    GoogleVerifier
	Now       func() time.Time
}

func New(db *gorm.DB, cfg Config, bl Blacklist) *Service {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = accessTTLDefault
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = refreshTTLDefault
	}
	if strings.TrimSpace(cfg.RefreshSecret) == "" {
		cfg.RefreshSecret = cfg.AccessSecret
	}
	if bl == nil {
		bl = NewDBBlacklist(db, cfg.AccessSecret)
	}
	return &Service{DB: db, Cfg: cfg, Blacklist: bl, Google: &futurendaVerifier{}, Now: nowUTC}
}

/* ==========================
   Small Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return nowUTC()
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	if len(s) > 255 {
		s = s[:255]
	}
	return &s
}

/* ==========================
   LOGIN
========================== */

var (
	comparePassword = bcrypt.CompareHashAndPassword

	dummyOnce sync.Once
	dummy     []byte
)

// dummyHash is compared against when the registration id is unknown,
// so a miss costs the same bcrypt round as a wrong password.
func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)
	})
	return dummy
}

// Login checks registration id + password. Every credential failure is the same ErrUnauthorized.
func (s *Service) Login(ctx context.Context, regID, password string, meta ClientMeta) (*TokenPair, error) {
	user, err := authRepo.FindUserByRegistrationID(ctx, s.DB, strings.TrimSpace(regID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = comparePassword(dummyHash(), []byte(password))
			return nil, helper.ErrUnauthorized
		}
		return nil, err
	}
	if err := comparePassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, helper.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}
	return s.issue(ctx, s.DB, user.ID, meta)
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle signs in the admin or teacher whose profile email matches a verified Google ID token.
// No account is ever created here.
func (s *Service) LoginGoogle(ctx context.Context, idToken string, meta ClientMeta) (*TokenPair, error) {
	if strings.TrimSpace(s.Cfg.GoogleClientID) == "" {
		return nil, fiber.NewError(fiber.StatusNotImplemented, "google sign-in is not configured")
	}
	email, err := s.Google.VerifyEmail(idToken, []string{s.Cfg.GoogleClientID})
	if err != nil || strings.TrimSpace(email) == "" {
		return nil, ErrGoogleToken
	}

	user, err := authRepo.FindUserByProfileEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}
	return s.issue(ctx, s.DB, user.ID, meta)
}

/* ==========================
   ISSUE TOKENS
========================== */

// issue signs a fresh access/refresh pair and stores the refresh hash through db.
func (s *Service) issue(ctx context.Context, db *gorm.DB, userID uint, meta ClientMeta) (*TokenPair, error) {
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	sc := helperAuth.Scope{UserID: user.ID, RoleID: user.RoleID, BranchID: user.BranchID}

	access, accessExp, err := helperAuth.IssueAccessToken(s.Cfg.AccessSecret, sc, s.Cfg.AccessTTL, now)
	if err != nil {
		return nil, err
	}
	refresh, jti, refreshExp, err := helperAuth.IssueRefreshToken(s.Cfg.RefreshSecret, user.ID, s.Cfg.RefreshTTL, now)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(jti)
	if err != nil {
		return nil, err
	}

	if err := authRepo.CreateRefreshToken(ctx, db, &authModel.RefreshToken{
		ID:        id,
		UserID:    user.ID,
		TokenHash: helperAuth.TokenHash(refresh, s.Cfg.RefreshSecret),
		ExpiresAt: refreshExp,
		UserAgent: strptr(meta.UserAgent),
		IP:        strptr(meta.IP),
	}); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access,
		TokenType:        "Bearer",
		ExpiresAt:        accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
		User:             user,
	}, nil
}

/* ==========================
   ME
========================== */

func (s *Service) Me(ctx context.Context, sc helperAuth.Scope) (*MeResponse, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, sc.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("user")
		}
		return nil, err
	}
	profile, err := authRepo.FindProfile(ctx, s.DB, user.ID)
	if err != nil {
		return nil, err
	}
	return &MeResponse{User: user, Profile: profile}, nil
}

// UserActive backs the guard's account check.
func (s *Service) UserActive(ctx context.Context, userID uint) (bool, error) {
	return authRepo.IsUserActive(ctx, s.DB, userID)
}

/* ==========================
   CLEANUP
========================== */

// CleanupExpired drops expired blacklist rows and dead refresh tokens.
func (s *Service) CleanupExpired(ctx context.Context) (int64, int64, error) {
	now := s.now()
	bl, err := authRepo.CleanupExpiredBlacklist(ctx, s.DB, now)
	if err != nil {
		return 0, 0, err
	}
	rt, err := authRepo.CleanupRefreshTokens(ctx, s.DB, now, now.Add(-revokedRetention))
	if err != nil {
		return bl, 0, err
	}
	log.Info().Int64("blacklist", bl).Int64("refresh_tokens", rt).Msg("auth cleanup done")
	return bl, rt, nil
}
