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

func newSickLeaveUsecase(db *gorm.DB) SickLeaveUsecase {
	log := newTestLogger()
	return NewSickLeaveUsecase(
		db,
		log,
		repository.NewSickLeaveRepository(),
		repository.NewMedicalVisitRepository(),
		newTestAuditService(db, log),
		newTestStatsCache(log),
	)
}

func TestSickLeaveUsecase_CreateSickLeave(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_create")
	uc := newSickLeaveUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 10), nil)

	resp, err := uc.CreateSickLeave(context.Background(), &dto.CreateSickLeaveRequest{
		StartDate:      "2024-03-11",
		DurationDays:   5,
		Reason:         "influenza recovery",
		MedicalVisitID: visit.ID,
	})

	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 5, resp.DurationDays)
	assert.Equal(t, onDay(2024, time.March, 15), resp.EndDate)
}

func TestSickLeaveUsecase_CreateSickLeave_UnknownVisit(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_no_visit")
	uc := newSickLeaveUsecase(db)

	_, err := uc.CreateSickLeave(context.Background(), &dto.CreateSickLeaveRequest{
		StartDate:      "2024-03-11",
		DurationDays:   5,
		MedicalVisitID: 9999,
	})

	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestSickLeaveUsecase_CreateSickLeave_NonPositiveDuration(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_bad_duration")
	uc := newSickLeaveUsecase(db)

	_, err := uc.CreateSickLeave(context.Background(), &dto.CreateSickLeaveRequest{
		StartDate:      "2024-03-11",
		DurationDays:   0,
		MedicalVisitID: 1,
	})

	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSickLeaveUsecase_CreateSickLeave_SecondForSameVisit(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_dup")
	uc := newSickLeaveUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 10), nil)
	seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 11), 3)

	_, err := uc.CreateSickLeave(context.Background(), &dto.CreateSickLeaveRequest{
		StartDate:      "2024-03-12",
		DurationDays:   2,
		MedicalVisitID: visit.ID,
	})

	assert.ErrorIs(t, err, ErrSickLeaveExists)
}

func TestSickLeaveUsecase_UpdateSickLeave_RecomputesEndDate(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_update")
	uc := newSickLeaveUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 10), nil)
	sickLeave := seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 11), 5)

	days := 10
	resp, err := uc.UpdateSickLeave(context.Background(), sickLeave.ID, &dto.UpdateSickLeaveRequest{
		DurationDays: &days,
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.DurationDays)
	assert.Equal(t, onDay(2024, time.March, 20), resp.EndDate)
}

func TestSickLeaveUsecase_UpdateSickLeave_RejectsNonPositiveDuration(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_update_bad")
	uc := newSickLeaveUsecase(db)

	days := -1
	_, err := uc.UpdateSickLeave(context.Background(), 1, &dto.UpdateSickLeaveRequest{
		DurationDays: &days,
	})

	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSickLeaveUsecase_GetSickLeaveByVisit(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_by_visit")
	uc := newSickLeaveUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 10), nil)
	bare := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 20), nil)
	seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 11), 3)

	resp, err := uc.GetSickLeaveByVisit(context.Background(), visit.ID)
	assert.NoError(t, err)
	assert.Equal(t, visit.ID, resp.MedicalVisitID)

	_, err = uc.GetSickLeaveByVisit(context.Background(), bare.ID)
	assert.ErrorIs(t, err, ErrSickLeaveNotFound)
}

func TestSickLeaveUsecase_GetSickLeavesByStartDateRange(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_range")
	uc := newSickLeaveUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	starts := []time.Time{
		onDay(2024, time.February, 28),
		onDay(2024, time.March, 1),
		onDay(2024, time.March, 31),
		onDay(2024, time.April, 1),
	}
	for _, start := range starts {
		visit := seedTestVisit(t, db, patient.ID, doctor.ID, start, nil)
		seedTestSickLeave(t, db, visit.ID, start, 3)
	}

	// Both range boundaries are inclusive.
	resp, err := uc.GetSickLeavesByStartDateRange(context.Background(), "2024-03-01", "2024-03-31")
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, onDay(2024, time.March, 1), resp.SickLeaves[0].StartDate)
	assert.Equal(t, onDay(2024, time.March, 31), resp.SickLeaves[1].StartDate)

	_, err = uc.GetSickLeavesByStartDateRange(context.Background(), "not-a-date", "2024-03-31")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSickLeaveUsecase_DeleteSickLeave(t *testing.T) {
	db := setupUsecaseDB(t, "uc_sickleave_delete")
	uc := newSickLeaveUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 10), nil)
	sickLeave := seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 11), 3)

	assert.NoError(t, uc.DeleteSickLeave(context.Background(), sickLeave.ID))
	assert.ErrorIs(t, uc.DeleteSickLeave(context.Background(), sickLeave.ID), ErrSickLeaveNotFound)
}
