package dtos

import (
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
)

type OrgCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type VendorCreateRequest struct {
	Name               string                  `json:"name" validate:"required"`
	VendorType         models.VendorType       `json:"vendorType"`
	PrimaryContactName string                  `json:"primaryContactName"`
	Email              string                  `json:"email" validate:"omitempty,email"`
	Phone              string                  `json:"phone"`
	Address            string                  `json:"address"`
	Website            string                  `json:"website" validate:"omitempty,url"`
	HandlesPHI         bool                    `json:"handlesPhi"`
	BAASigned          bool                    `json:"baaSigned"`
	BAASignedDate      *time.Time              `json:"baaSignedDate"`
	BAAExpiryDate      *time.Time              `json:"baaExpiryDate"`
	ServicesProvided   string                  `json:"servicesProvided"`
	IsCritical         bool                    `json:"isCritical"`
	RiskScore          int                     `json:"riskScore" validate:"min=0,max=100"`
	ComplianceStatus   models.ComplianceStatus `json:"complianceStatus"`
}

type VendorDTO struct {
	ID               uuid.UUID               `json:"id"`
	Name             string                  `json:"name"`
	Slug             string                  `json:"slug"`
	VendorType       models.VendorType       `json:"vendorType"`
	RiskScore        int                     `json:"riskScore"`
	RiskLevel        models.RiskLevel        `json:"riskLevel"`
	ComplianceStatus models.ComplianceStatus `json:"complianceStatus"`
	HandlesPHI       bool                    `json:"handlesPhi"`
	BAASigned        bool                    `json:"baaSigned"`
	IsCritical       bool                    `json:"isCritical"`
	IsActive         bool                    `json:"isActive"`
}
