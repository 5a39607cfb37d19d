package usecase

import (
	"fmt"
	"io"
	"testing"
	"time"

	"medical-history-service/internal/domain/entity"
	"medical-history-service/internal/repository"
	"medical-history-service/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupUsecaseDB opens an isolated in-memory database with the full schema,
// audit log table included since every write usecase records one.
func setupUsecaseDB(t *testing.T, name string) *gorm.DB {
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

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestStatsCache points at an unreachable redis. Cache failures are
// non-fatal throughout, so the usecases must work exactly as without a cache.
func newTestStatsCache(log *logrus.Logger) *service.StatsCacheService {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return service.NewStatsCacheService(client, log, time.Second)
}

func newTestAuditService(db *gorm.DB, log *logrus.Logger) service.AuditService {
	return service.NewAuditService(db, log, repository.NewAuditLogRepository())
}

func seedTestDoctor(t *testing.T, db *gorm.DB, idNumber, name, specialty string, family bool) entity.Doctor {
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

func seedTestPatient(t *testing.T, db *gorm.DB, name, egn string, familyDoctorID uint, lastPayment *time.Time) entity.Patient {
	t.Helper()

	patient := entity.Patient{
		Name:                     name,
		EGN:                      egn,
		HealthInsurancePaid:      lastPayment != nil,
		LastInsurancePaymentDate: lastPayment,
		FamilyDoctorID:           familyDoctorID,
	}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}
	return patient
}

func seedTestDiagnosis(t *testing.T, db *gorm.DB, code, name string) entity.Diagnosis {
	t.Helper()

	diagnosis := entity.Diagnosis{Code: code, Name: name}
	if err := db.Create(&diagnosis).Error; err != nil {
		t.Fatalf("failed to create diagnosis: %v", err)
	}
	return diagnosis
}

func seedTestVisit(t *testing.T, db *gorm.DB, patientID, doctorID uint, visitDate time.Time, diagnosisID *uint) entity.MedicalVisit {
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

func seedTestSickLeave(t *testing.T, db *gorm.DB, visitID uint, start time.Time, days int) entity.SickLeave {
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

func onDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
