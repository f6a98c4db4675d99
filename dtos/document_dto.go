package dtos

import (
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
)

type DocumentUploadRequest struct {
	Name         string              `json:"name" validate:"required"`
	DocumentType models.DocumentType `json:"documentType" validate:"required"`
	CategoryID   *uuid.UUID          `json:"categoryId"`
	TagIDs       []uuid.UUID         `json:"tagIds"`
	FileRef      string              `json:"fileRef" validate:"required"`
	FileSize     int64               `json:"fileSize"`
	DocumentDate time.Time           `json:"documentDate" validate:"required"`
	ExpiresAt    *time.Time          `json:"expiresAt"`
	Notes        string              `json:"notes"`
}

type DocumentCategoryCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type DocumentTagCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// DocumentVersionUpload creates a new member of an existing version chain.
type DocumentVersionUpload struct {
	FileRef      string `json:"fileRef" validate:"required"`
	FileSize     int64  `json:"fileSize"`
	VersionNotes string `json:"versionNotes"`
}

type DocumentDTO struct {
	ID                  uuid.UUID             `json:"id"`
	VendorID            uuid.UUID             `json:"vendorId"`
	Name                string                `json:"name"`
	DocumentType        models.DocumentType   `json:"documentType"`
	Status              models.DocumentStatus `json:"status"`
	Version             int                   `json:"version"`
	IsLatest            bool                  `json:"isLatest"`
	ParentDocumentID    *uuid.UUID            `json:"parentDocumentId"`
	DocumentDate        time.Time             `json:"documentDate"`
	ExpiresAt           *time.Time            `json:"expiresAt"`
	DaysUntilExpiration *int                  `json:"daysUntilExpiration"`
	IsVerified          bool                  `json:"isVerified"`
	UploadedAt          time.Time             `json:"uploadedAt"`
}
