package repository

import (
	"testing"

	"medical-history-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDoctorRepository_FindByIdentificationNumber(t *testing.T) {
	db := setupTestDB(t, "doctor_idnumber")
	repo := NewDoctorRepository()
	createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	found, err := repo.FindByIdentificationNumber(db, "DOC-100")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "Dr. Petrova", found.Name)

	missing, err := repo.FindByIdentificationNumber(db, "DOC-999")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDoctorRepository_FindFamilyDoctors(t *testing.T) {
	db := setupTestDB(t, "doctor_family")
	repo := NewDoctorRepository()
	createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	createDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)
	createDoctor(t, db, "DOC-300", "Dr. Todorova", "Pediatrics", true)

	doctors, err := repo.FindFamilyDoctors(db)

	assert.NoError(t, err)
	assert.Len(t, doctors, 2)
	assert.Equal(t, "Dr. Petrova", doctors[0].Name)
	assert.Equal(t, "Dr. Todorova", doctors[1].Name)
}

func TestDoctorRepository_FindBySpecialty(t *testing.T) {
	db := setupTestDB(t, "doctor_specialty")
	repo := NewDoctorRepository()
	createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	createDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)

	doctors, err := repo.FindBySpecialty(db, "Cardiology")

	assert.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Georgiev", doctors[0].Name)
}

func TestDoctorRepository_IdentificationNumberUnique(t *testing.T) {
	db := setupTestDB(t, "doctor_unique")
	repo := NewDoctorRepository()
	createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	duplicate := entity.Doctor{IdentificationNumber: "DOC-100", Name: "Dr. Clone", Specialty: "Cardiology"}
	err := repo.Create(db, &duplicate)

	assert.Error(t, err)
}
