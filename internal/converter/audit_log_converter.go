package converter

import (
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		User:      UserToResponse(log.User),
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
