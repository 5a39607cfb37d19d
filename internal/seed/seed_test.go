package seed

import (
	"fmt"
	"io"
	"testing"
	"time"

	"medical-history-service/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newSeedLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun_PopulatesReferenceData(t *testing.T) {
	db := setupSeedDB(t)

	assert.NoError(t, Run(db, newSeedLogger()))

	var roles, users, diagnoses int64
	assert.NoError(t, db.Model(&entity.Role{}).Count(&roles).Error)
	assert.NoError(t, db.Model(&entity.User{}).Count(&users).Error)
	assert.NoError(t, db.Model(&entity.Diagnosis{}).Count(&diagnoses).Error)

	assert.Equal(t, int64(3), roles)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(len(commonDiagnoses)), diagnoses)
}

func TestRun_IsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	assert.NoError(t, Run(db, newSeedLogger()))
	assert.NoError(t, Run(db, newSeedLogger()))

	var roles, users, patients int64
	assert.NoError(t, db.Model(&entity.Role{}).Count(&roles).Error)
	assert.NoError(t, db.Model(&entity.User{}).Count(&users).Error)
	assert.NoError(t, db.Model(&entity.Patient{}).Count(&patients).Error)

	assert.Equal(t, int64(3), roles)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(1), patients)
}

func TestRun_LinksDemoAccounts(t *testing.T) {
	db := setupSeedDB(t)
	assert.NoError(t, Run(db, newSeedLogger()))

	var doctorAccount entity.User
	assert.NoError(t, db.Where("username = ?", "doctor").First(&doctorAccount).Error)
	assert.NotNil(t, doctorAccount.DoctorID)
	assert.Equal(t, entity.RoleIDDoctor, doctorAccount.RoleID)

	var patientAccount entity.User
	assert.NoError(t, db.Where("username = ?", "patient").First(&patientAccount).Error)
	assert.NotNil(t, patientAccount.PatientID)

	var patient entity.Patient
	assert.NoError(t, db.Where("egn = ?", "9005151234").First(&patient).Error)
	assert.True(t, patient.HealthInsurancePaid)
}
