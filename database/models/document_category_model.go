package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentCategory groups documents like folders (insurance, contracts, ...).
type DocumentCategory struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	CreatedAt time.Time `json:"createdAt"`

	Name        string `json:"name" gorm:"type:text;unique;not null;" validate:"required"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"type:text;default:'mdi-folder';"`
	Color       string `json:"color" gorm:"type:text;default:'#034c81';"`
}

func (m DocumentCategory) TableName() string {
	return "document_categories"
}

// DocumentTag is a free-form label (urgent, expires-soon, verified, ...).
type DocumentTag struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	CreatedAt time.Time `json:"createdAt"`

	Name  string `json:"name" gorm:"type:text;unique;not null;" validate:"required"`
	Color string `json:"color" gorm:"type:text;default:'#2ca3fa';"`
}

func (m DocumentTag) TableName() string {
	return "document_tags"
}
