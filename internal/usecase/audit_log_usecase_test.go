package usecase

import (
	"context"
	"testing"
	"time"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAuditLogUsecase(db *gorm.DB) AuditLogUsecase {
	return NewAuditLogUsecase(db, newTestLogger(), repository.NewAuditLogRepository())
}

func TestAuditLogUsecase_WritesAreRecorded(t *testing.T) {
	db := setupUsecaseDB(t, "uc_audit_recorded")
	auditUC := newAuditLogUsecase(db)
	patientUC := newPatientUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	created, err := patientUC.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:           "Ivan Ivanov",
		EGN:            "8001014567",
		FamilyDoctorID: doctor.ID,
	})
	assert.NoError(t, err)

	sickLeaveUC := newSickLeaveUsecase(db)
	visit := seedTestVisit(t, db, created.ID, doctor.ID, onDay(2024, time.March, 10), nil)
	_, err = sickLeaveUC.CreateSickLeave(context.Background(), &dto.CreateSickLeaveRequest{
		StartDate:      "2024-03-11",
		DurationDays:   3,
		MedicalVisitID: visit.ID,
	})
	assert.NoError(t, err)

	logs, err := auditUC.GetAllAuditLogs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, logs.Total)

	actions := []string{logs.Logs[0].Action, logs.Logs[1].Action}
	assert.Contains(t, actions, "patient.create")
	assert.Contains(t, actions, "sick_leave.create")
}

func TestAuditLogUsecase_GetAuditLog_NotFound(t *testing.T) {
	db := setupUsecaseDB(t, "uc_audit_notfound")
	uc := newAuditLogUsecase(db)

	_, err := uc.GetAuditLog(context.Background(), 9999)

	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
