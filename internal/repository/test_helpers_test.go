package repository

import (
	"fmt"
	"testing"
	"time"

	"medical-history-service/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database migrated with the full
// schema. The DSN carries a nanosecond suffix so parallel tests never share
// state.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Role{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.User{},
		&entity.Diagnosis{},
		&entity.MedicalVisit{},
		&entity.SickLeave{},
		&entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createDoctor(t *testing.T, db *gorm.DB, idNumber, name, specialty string, family bool) entity.Doctor {
	t.Helper()

	doctor := entity.Doctor{
		IdentificationNumber: idNumber,
		Name:                 name,
		Specialty:            specialty,
		IsFamilyDoctor:       family,
	}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}
	return doctor
}

func createPatient(t *testing.T, db *gorm.DB, name, egn string, familyDoctorID uint) entity.Patient {
	t.Helper()

	patient := entity.Patient{
		Name:           name,
		EGN:            egn,
		FamilyDoctorID: familyDoctorID,
	}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}
	return patient
}

func createVisit(t *testing.T, db *gorm.DB, patientID, doctorID uint, visitDate time.Time, diagnosisID *uint) entity.MedicalVisit {
	t.Helper()

	visit := entity.MedicalVisit{
		VisitDate:   visitDate,
		PatientID:   patientID,
		DoctorID:    doctorID,
		DiagnosisID: diagnosisID,
	}
	if err := db.Create(&visit).Error; err != nil {
		t.Fatalf("failed to create visit: %v", err)
	}
	return visit
}

func createSickLeave(t *testing.T, db *gorm.DB, visitID uint, start time.Time, days int) entity.SickLeave {
	t.Helper()

	sickLeave := entity.SickLeave{
		StartDate:      start,
		DurationDays:   days,
		MedicalVisitID: visitID,
	}
	if err := db.Create(&sickLeave).Error; err != nil {
		t.Fatalf("failed to create sick leave: %v", err)
	}
	return sickLeave
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
