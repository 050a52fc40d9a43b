package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	ID     uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	UserID uint      `gorm:"column:user_id;not null;index" json:"user_id"`

	// HMAC of the token, never the token itself
	TokenHash string `gorm:"column:token_hash;type:char(64);not null;uniqueIndex:uq_refresh_tokens_hash" json:"-"`

	ExpiresAt time.Time  `gorm:"column:expires_at;not null;index" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`

	UserAgent *string `gorm:"column:user_agent;type:varchar(255)" json:"user_agent,omitempty"`
	IP        *string `gorm:"column:ip;type:varchar(64)" json:"ip,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
