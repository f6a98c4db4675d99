package models

import (
	"time"

	"github.com/google/uuid"
)

type Org struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name" gorm:"type:text;not null;"`
	Slug        string `json:"slug" gorm:"type:text;unique;not null;index"`
	Description string `json:"description" gorm:"type:text"`

	Vendors             []Vendor             `json:"vendors" gorm:"foreignKey:OrganizationID;"`
	AssessmentTemplates []AssessmentTemplate `json:"assessmentTemplates" gorm:"foreignKey:OrganizationID;"`
}

func (m Org) TableName() string {
	return "organizations"
}
