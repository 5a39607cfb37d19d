package repository

import (
	"testing"

	"medical-history-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPatientRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t, "patient_create")
	repo := NewPatientRepository()
	doctor := createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	patient := entity.Patient{Name: "Ivan Ivanov", EGN: "8001014567", FamilyDoctorID: doctor.ID}
	err := repo.Create(db, &patient)

	assert.NoError(t, err)
	assert.NotZero(t, patient.ID)

	found, err := repo.FindByID(db, patient.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "Ivan Ivanov", found.Name)
	assert.Equal(t, doctor.ID, found.FamilyDoctor.ID)
}

func TestPatientRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t, "patient_notfound")
	repo := NewPatientRepository()

	found, err := repo.FindByID(db, 9999)

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestPatientRepository_FindByEGN(t *testing.T) {
	db := setupTestDB(t, "patient_egn")
	repo := NewPatientRepository()
	doctor := createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	createPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID)

	found, err := repo.FindByEGN(db, "8001014567")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "Ivan Ivanov", found.Name)

	missing, err := repo.FindByEGN(db, "0000000000")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatientRepository_EGNUnique(t *testing.T) {
	db := setupTestDB(t, "patient_egn_unique")
	repo := NewPatientRepository()
	doctor := createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	createPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID)

	duplicate := entity.Patient{Name: "Other Person", EGN: "8001014567", FamilyDoctorID: doctor.ID}
	err := repo.Create(db, &duplicate)

	assert.Error(t, err)
}

func TestPatientRepository_FindByFamilyDoctorID(t *testing.T) {
	db := setupTestDB(t, "patient_by_doctor")
	repo := NewPatientRepository()
	familyDoc := createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	otherDoc := createDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", true)
	createPatient(t, db, "Ivan Ivanov", "8001014567", familyDoc.ID)
	createPatient(t, db, "Maria Dimitrova", "8505057890", familyDoc.ID)
	createPatient(t, db, "Petar Petrov", "9010102345", otherDoc.ID)

	patients, err := repo.FindByFamilyDoctorID(db, familyDoc.ID)

	assert.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.Equal(t, "Ivan Ivanov", patients[0].Name)
	assert.Equal(t, "Maria Dimitrova", patients[1].Name)
}

func TestPatientRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t, "patient_update_delete")
	repo := NewPatientRepository()
	doctor := createDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := createPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID)

	patient.Name = "Ivan Georgiev"
	assert.NoError(t, repo.Update(db, &patient))

	found, err := repo.FindByID(db, patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ivan Georgiev", found.Name)

	affected, err := repo.Delete(db, patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(db, patient.ID)
	assert.NoError(t, err)
	assert.Zero(t, affected)
}
