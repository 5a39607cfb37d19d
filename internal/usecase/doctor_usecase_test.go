package usecase

import (
	"context"
	"testing"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newDoctorUsecase(db *gorm.DB) DoctorUsecase {
	log := newTestLogger()
	return NewDoctorUsecase(
		db,
		log,
		repository.NewDoctorRepository(),
		newTestAuditService(db, log),
		newTestStatsCache(log),
	)
}

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	db := setupUsecaseDB(t, "uc_doctor_create")
	uc := newDoctorUsecase(db)

	resp, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		IdentificationNumber: "DOC-100",
		Name:                 "Dr. Petrova",
		Specialty:            "General Medicine",
		IsFamilyDoctor:       true,
	})

	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.True(t, resp.IsFamilyDoctor)
}

func TestDoctorUsecase_CreateDoctor_DuplicateIDNumber(t *testing.T) {
	db := setupUsecaseDB(t, "uc_doctor_dup")
	uc := newDoctorUsecase(db)
	seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	_, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		IdentificationNumber: "DOC-100",
		Name:                 "Dr. Clone",
		Specialty:            "Cardiology",
	})

	assert.ErrorIs(t, err, ErrDoctorIDNumberExists)
}

func TestDoctorUsecase_GetFamilyDoctors(t *testing.T) {
	db := setupUsecaseDB(t, "uc_doctor_family")
	uc := newDoctorUsecase(db)
	seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)

	resp, err := uc.GetFamilyDoctors(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Dr. Petrova", resp.Doctors[0].Name)
}

func TestDoctorUsecase_UpdateDoctor_ClearFamilyFlag(t *testing.T) {
	db := setupUsecaseDB(t, "uc_doctor_update")
	uc := newDoctorUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	notFamily := false
	resp, err := uc.UpdateDoctor(context.Background(), doctor.ID, &dto.UpdateDoctorRequest{
		IsFamilyDoctor: &notFamily,
	})

	assert.NoError(t, err)
	assert.False(t, resp.IsFamilyDoctor)
}

func TestDoctorUsecase_DeleteDoctor_NotFound(t *testing.T) {
	db := setupUsecaseDB(t, "uc_doctor_delete")
	uc := newDoctorUsecase(db)

	assert.ErrorIs(t, uc.DeleteDoctor(context.Background(), 9999), ErrDoctorNotFound)
}
