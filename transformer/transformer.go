package transformer

import (
	"encoding/json"
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/services"
	"gorm.io/datatypes"
)

func OrgCreateRequestToModel(req dtos.OrgCreateRequest) models.Org {
	return models.Org{
		Name:        req.Name,
		Description: req.Description,
	}
}

func VendorCreateRequestToModel(req dtos.VendorCreateRequest, org models.Org) models.Vendor {
	vendor := models.Vendor{
		OrganizationID:     org.ID,
		Name:               req.Name,
		VendorType:         req.VendorType,
		PrimaryContactName: req.PrimaryContactName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		Website:            req.Website,
		HandlesPHI:         req.HandlesPHI,
		BAASigned:          req.BAASigned,
		BAASignedDate:      req.BAASignedDate,
		BAAExpiryDate:      req.BAAExpiryDate,
		ServicesProvided:   req.ServicesProvided,
		IsCritical:         req.IsCritical,
		RiskScore:          req.RiskScore,
		ComplianceStatus:   req.ComplianceStatus,
		IsActive:           true,
	}
	if vendor.VendorType == "" {
		vendor.VendorType = models.VendorTypeOther
	}
	if vendor.ComplianceStatus == "" {
		vendor.ComplianceStatus = models.ComplianceStatusPending
	}
	return vendor
}

func VendorDTOFromModel(vendor models.Vendor) dtos.VendorDTO {
	return dtos.VendorDTO{
		ID:               vendor.ID,
		Name:             vendor.Name,
		Slug:             vendor.Slug,
		VendorType:       vendor.VendorType,
		RiskScore:        vendor.RiskScore,
		RiskLevel:        vendor.RiskLevel,
		ComplianceStatus: vendor.ComplianceStatus,
		HandlesPHI:       vendor.HandlesPHI,
		BAASigned:        vendor.BAASigned,
		IsCritical:       vendor.IsCritical,
		IsActive:         vendor.IsActive,
	}
}

func TemplateCreateRequestToModel(req dtos.TemplateCreateRequest, org models.Org, createdBy string) models.AssessmentTemplate {
	template := models.AssessmentTemplate{
		OrganizationID: org.ID,
		Name:           req.Name,
		Description:    req.Description,
		AssessmentType: req.AssessmentType,
		PassingScore:   req.PassingScore,
		IsActive:       true,
		CreatedByID:    &createdBy,
	}
	if template.AssessmentType == "" {
		template.AssessmentType = models.AssessmentTypeVendorRisk
	}
	if template.PassingScore == 0 {
		template.PassingScore = 70
	}

	for i, q := range req.Questions {
		question := models.Question{
			QuestionText:  q.QuestionText,
			HelpText:      q.HelpText,
			QuestionType:  q.QuestionType,
			Points:        q.Points,
			CorrectAnswer: q.CorrectAnswer,
			Section:       q.Section,
			Order:         q.Order,
			IsCritical:    q.IsCritical,
			IsRequired:    true,
		}
		if question.QuestionType == "" {
			question.QuestionType = models.QuestionTypeYesNo
		}
		if question.Order == 0 {
			question.Order = i + 1
		}
		if q.IsRequired != nil {
			question.IsRequired = *q.IsRequired
		}
		if len(q.Choices) > 0 {
			choices, _ := json.Marshal(q.Choices)
			question.Choices = datatypes.JSON(choices)
		}
		template.Questions = append(template.Questions, question)
	}

	return template
}

func AssessmentDTOFromModel(assessment models.Assessment) dtos.AssessmentDTO {
	now := time.Now()
	return dtos.AssessmentDTO{
		ID:                   assessment.ID,
		TemplateID:           assessment.TemplateID,
		TemplateName:         assessment.Template.Name,
		VendorID:             assessment.VendorID,
		Status:               assessment.Status,
		DueDate:              assessment.DueDate,
		Score:                assessment.Score,
		Passed:               assessment.Passed,
		CompletionPercentage: services.Completion(assessment.Responses),
		IsOverdue:            assessment.IsOverdue(now),
		DaysUntilDue:         assessment.DaysUntilDue(now),
	}
}

func DocumentDTOFromModel(document models.Document) dtos.DocumentDTO {
	return dtos.DocumentDTO{
		ID:                  document.ID,
		VendorID:            document.VendorID,
		Name:                document.Name,
		DocumentType:        document.DocumentType,
		Status:              document.Status,
		Version:             document.Version,
		IsLatest:            document.IsLatest,
		ParentDocumentID:    document.ParentDocumentID,
		DocumentDate:        document.DocumentDate,
		ExpiresAt:           document.ExpiresAt,
		DaysUntilExpiration: document.DaysUntilExpiration(time.Now()),
		IsVerified:          document.IsVerified,
		UploadedAt:          document.UploadedAt,
	}
}

// DocumentUploadRequestToModel builds the chain root for an upload. The tags
// must already be resolved from the request's tag ids so unknown ids were
// rejected before anything is persisted.
func DocumentUploadRequestToModel(req dtos.DocumentUploadRequest, vendor models.Vendor, tags []models.DocumentTag) models.Document {
	return models.Document{
		VendorID:       vendor.ID,
		OrganizationID: vendor.OrganizationID,
		Name:           req.Name,
		DocumentType:   req.DocumentType,
		CategoryID:     req.CategoryID,
		Tags:           tags,
		FileRef:        req.FileRef,
		FileSize:       req.FileSize,
		Status:         models.DocumentStatusPendingReview,
		DocumentDate:   req.DocumentDate,
		ExpiresAt:      req.ExpiresAt,
		Notes:          req.Notes,
	}
}

func CategoryCreateRequestToModel(req dtos.DocumentCategoryCreateRequest) models.DocumentCategory {
	return models.DocumentCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
}

func TagCreateRequestToModel(req dtos.DocumentTagCreateRequest) models.DocumentTag {
	return models.DocumentTag{
		Name:  req.Name,
		Color: req.Color,
	}
}
