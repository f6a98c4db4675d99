package services

import (
	"log/slog"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
)

type AccessLogService struct {
	accessLogRepository shared.DocumentAccessLogRepository
}

func NewAccessLogService(accessLogRepository shared.DocumentAccessLogRepository) *AccessLogService {
	return &AccessLogService{
		accessLogRepository: accessLogRepository,
	}
}

func (s *AccessLogService) LogAccess(entry models.DocumentAccessLog) error {
	return s.accessLogRepository.Create(nil, &entry)
}

// LogAccessBestEffort writes a ledger entry without propagating failures.
// A broken audit write gets logged loudly but must never fail the document
// operation it accompanies.
func (s *AccessLogService) LogAccessBestEffort(entry models.DocumentAccessLog) {
	if err := s.accessLogRepository.Create(nil, &entry); err != nil {
		slog.Error("could not write document access log entry",
			"err", err,
			"documentId", entry.DocumentID,
			"userId", entry.UserID,
			"accessType", entry.AccessType)
	}
}

func (s *AccessLogService) FindAll(filter dtos.AccessLogFilter) ([]models.DocumentAccessLog, error) {
	return s.accessLogRepository.FindAll(filter)
}
