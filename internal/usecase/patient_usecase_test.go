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

func newPatientUsecase(db *gorm.DB) PatientUsecase {
	log := newTestLogger()
	return NewPatientUsecase(
		db,
		log,
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		newTestAuditService(db, log),
		newTestStatsCache(log),
	)
}

func TestPatientUsecase_CreatePatient(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_create")
	uc := newPatientUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	resp, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:                     "Ivan Ivanov",
		EGN:                      "8001014567",
		HealthInsurancePaid:      true,
		LastInsurancePaymentDate: time.Now().AddDate(0, -1, 0).Format("2006-01-02"),
		FamilyDoctorID:           doctor.ID,
	})

	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Ivan Ivanov", resp.Name)
	assert.Equal(t, "Dr. Petrova", resp.FamilyDoctorName)
	assert.True(t, resp.InsuranceValid)
}

func TestPatientUsecase_CreatePatient_UnknownFamilyDoctor(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_no_doctor")
	uc := newPatientUsecase(db)

	_, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:           "Ivan Ivanov",
		EGN:            "8001014567",
		FamilyDoctorID: 9999,
	})

	assert.ErrorIs(t, err, ErrFamilyDoctorNotFound)
}

func TestPatientUsecase_CreatePatient_DuplicateEGN(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_dup_egn")
	uc := newPatientUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	_, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:           "Impostor",
		EGN:            "8001014567",
		FamilyDoctorID: doctor.ID,
	})

	assert.ErrorIs(t, err, ErrEGNExists)
}

func TestPatientUsecase_CreatePatient_BadPaymentDate(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_bad_date")
	uc := newPatientUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	_, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:                     "Ivan Ivanov",
		EGN:                      "8001014567",
		LastInsurancePaymentDate: "15/01/2024",
		FamilyDoctorID:           doctor.ID,
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestPatientUsecase_GetPatient_NotFound(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_notfound")
	uc := newPatientUsecase(db)

	_, err := uc.GetPatient(context.Background(), 9999)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientUsecase_GetPatientByEGN(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_egn")
	uc := newPatientUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	resp, err := uc.GetPatientByEGN(context.Background(), "8001014567")
	assert.NoError(t, err)
	assert.Equal(t, "Ivan Ivanov", resp.Name)

	_, err = uc.GetPatientByEGN(context.Background(), "0000000000")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientUsecase_UpdatePatient_ReassignFamilyDoctor(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_reassign")
	uc := newPatientUsecase(db)
	oldDoc := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	newDoc := seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", oldDoc.ID, nil)

	resp, err := uc.UpdatePatient(context.Background(), patient.ID, &dto.UpdatePatientRequest{
		FamilyDoctorID: &newDoc.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, newDoc.ID, resp.FamilyDoctorID)
	assert.Equal(t, "Dr. Georgiev", resp.FamilyDoctorName)
}

func TestPatientUsecase_DeletePatient(t *testing.T) {
	db := setupUsecaseDB(t, "uc_patient_delete")
	uc := newPatientUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	assert.NoError(t, uc.DeletePatient(context.Background(), patient.ID))
	assert.ErrorIs(t, uc.DeletePatient(context.Background(), patient.ID), ErrPatientNotFound)
}
