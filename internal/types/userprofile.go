package types

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CompanyName   string    `gorm:"column:company_name" json:"company_name,omitempty"`
	Industry      string    `gorm:"column:industry" json:"industry,omitempty"`
	CompanySize   string    `gorm:"column:company_size" json:"company_size,omitempty"`
	BusinessStage string    `gorm:"column:business_stage" json:"business_stage,omitempty"`
	Bio           string    `gorm:"column:bio" json:"bio,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}
