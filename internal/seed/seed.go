package seed

import (
	"strings"
	"time"

	"medical-history-service/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// commonDiagnoses is the reference catalog loaded on first start.
var commonDiagnoses = []string{
	"Common Cold", "Influenza", "Hypertension", "Diabetes Type 2",
	"Asthma", "Migraine", "Gastritis", "Bronchitis",
	"Allergic Rhinitis", "Lower Back Pain", "Anxiety Disorder",
	"Depression", "Pneumonia", "Urinary Tract Infection",
}

// Run populates roles, demo accounts and the reference diagnosis catalog.
// Every step skips when its table already has rows, so running it on each
// start is safe.
func Run(db *gorm.DB, log *logrus.Logger) error {
	if err := seedRoles(db, log); err != nil {
		return err
	}
	if err := seedUsers(db, log); err != nil {
		return err
	}
	return seedDiagnoses(db, log)
}

func seedRoles(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.Role{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("Seeding default roles")
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "Full access including doctor management and audit logs"},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor, Description: "Manages clinical records and reports"},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient, Description: "Reads own records"},
	}
	return db.Create(&roles).Error
}

func seedUsers(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("Seeding demo users")

	doctor := entity.Doctor{
		IdentificationNumber: "DOC123456",
		Name:                 "Dr. John Smith",
		Specialty:            "General Medicine",
		IsFamilyDoctor:       true,
	}
	if err := db.Create(&doctor).Error; err != nil {
		return err
	}

	paymentDate := time.Now().AddDate(0, -1, 0)
	patient := entity.Patient{
		Name:                     "Jane Doe",
		EGN:                      "9005151234",
		HealthInsurancePaid:      true,
		LastInsurancePaymentDate: &paymentDate,
		FamilyDoctorID:           doctor.ID,
	}
	if err := db.Create(&patient).Error; err != nil {
		return err
	}

	accounts := []struct {
		username  string
		email     string
		password  string
		roleID    int
		patientID *uint
		doctorID  *uint
	}{
		{"admin", "admin@medical.com", "admin123", entity.RoleIDAdmin, nil, nil},
		{"doctor", "doctor@medical.com", "doctor123", entity.RoleIDDoctor, nil, &doctor.ID},
		{"patient", "patient@medical.com", "patient123", entity.RoleIDPatient, &patient.ID, nil},
	}

	for _, account := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		active := true
		user := entity.User{
			RoleID:    account.roleID,
			Username:  account.username,
			Email:     account.email,
			Password:  string(hashed),
			IsActive:  &active,
			PatientID: account.patientID,
			DoctorID:  account.doctorID,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	log.Info("Demo credentials: admin/admin123, doctor/doctor123, patient/patient123")
	return nil
}

func seedDiagnoses(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.Diagnosis{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("Seeding reference diagnoses")
	diagnoses := make([]entity.Diagnosis, 0, len(commonDiagnoses))
	for _, name := range commonDiagnoses {
		diagnoses = append(diagnoses, entity.Diagnosis{
			Code:        "ICD-" + strings.ToUpper(strings.ReplaceAll(name, " ", "")),
			Name:        name,
			Description: "Standard diagnosis for " + strings.ToLower(name),
		})
	}
	return db.Create(&diagnoses).Error
}
