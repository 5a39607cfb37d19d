package usecase

import (
	"context"
	"testing"
	"time"

	"medical-history-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newReportUsecase(db *gorm.DB) ReportUsecase {
	log := newTestLogger()
	return NewReportUsecase(
		db,
		log,
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		repository.NewMedicalVisitRepository(),
		repository.NewSickLeaveRepository(),
		newTestStatsCache(log),
	)
}

func TestReportUsecase_GetPatientsByDiagnosis_Distinct(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_patients_by_diag")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	ivan := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	maria := seedTestPatient(t, db, "Maria Dimitrova", "8505057890", doctor.ID, nil)
	flu := seedTestDiagnosis(t, db, "ICD-FLU", "Influenza")

	// Ivan was diagnosed twice; he must still appear once.
	seedTestVisit(t, db, ivan.ID, doctor.ID, onDay(2024, time.January, 10), &flu.ID)
	seedTestVisit(t, db, maria.ID, doctor.ID, onDay(2024, time.February, 1), &flu.ID)
	seedTestVisit(t, db, ivan.ID, doctor.ID, onDay(2024, time.March, 5), &flu.ID)

	resp, err := uc.GetPatientsByDiagnosis(context.Background(), flu.ID)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Ivan Ivanov", resp.Patients[0].Name)
	assert.Equal(t, "Maria Dimitrova", resp.Patients[1].Name)
}

func TestReportUsecase_GetPatientsByDiagnosis_UnknownIsEmpty(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_patients_by_diag_empty")
	uc := newReportUsecase(db)

	resp, err := uc.GetPatientsByDiagnosis(context.Background(), 9999)

	assert.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Patients)
}

func TestReportUsecase_GetMostCommonDiagnoses(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_common_diag")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	flu := seedTestDiagnosis(t, db, "ICD-FLU", "Influenza")
	cold := seedTestDiagnosis(t, db, "ICD-COLD", "Common Cold")

	seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.January, 5), &cold.ID)
	seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.January, 10), &flu.ID)
	seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.January, 15), &flu.ID)
	// Undiagnosed visits never count.
	seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.January, 20), nil)

	reports, err := uc.GetMostCommonDiagnoses(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, "Influenza", reports[0].Diagnosis.Name)
	assert.Equal(t, 2, reports[0].VisitCount)
	assert.Equal(t, "Common Cold", reports[1].Diagnosis.Name)
	assert.Equal(t, 1, reports[1].VisitCount)
}

func TestReportUsecase_GetMostCommonDiagnoses_Limit(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_common_diag_limit")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	flu := seedTestDiagnosis(t, db, "ICD-FLU", "Influenza")
	cold := seedTestDiagnosis(t, db, "ICD-COLD", "Common Cold")
	seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.January, 5), &flu.ID)
	seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.January, 6), &cold.ID)

	reports, err := uc.GetMostCommonDiagnoses(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestReportUsecase_GetFamilyDoctorPatientCounts_OnlyFamilyDoctors(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_family_counts")
	uc := newReportUsecase(db)
	family := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	specialist := seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)

	seedTestPatient(t, db, "Ivan Ivanov", "8001014567", family.ID, nil)
	seedTestPatient(t, db, "Maria Dimitrova", "8505057890", family.ID, nil)
	// Registered to a doctor without the family flag; excluded from the report.
	seedTestPatient(t, db, "Petar Petrov", "9010102345", specialist.ID, nil)

	reports, err := uc.GetFamilyDoctorPatientCounts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "Dr. Petrova", reports[0].Doctor.Name)
	assert.Equal(t, 2, reports[0].PatientCount)
}

func TestReportUsecase_GetDoctorVisitCounts_RankedExcludingIdle(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_visit_counts")
	uc := newReportUsecase(db)
	busy := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	rare := seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)
	idle := seedTestDoctor(t, db, "DOC-300", "Dr. Todorova", "Pediatrics", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", busy.ID, nil)

	// The single-visit doctor is recorded first; ranking must still put the
	// busier doctor on top.
	seedTestVisit(t, db, patient.ID, rare.ID, onDay(2024, time.March, 5), nil)
	seedTestVisit(t, db, patient.ID, busy.ID, onDay(2024, time.March, 10), nil)
	seedTestVisit(t, db, patient.ID, busy.ID, onDay(2024, time.March, 12), nil)

	reports, err := uc.GetDoctorVisitCounts(context.Background())

	assert.NoError(t, err)
	// Doctors without a single visit do not appear.
	assert.Len(t, reports, 2)
	assert.Equal(t, "Dr. Petrova", reports[0].Doctor.Name)
	assert.Equal(t, 2, reports[0].VisitCount)
	assert.Equal(t, "Dr. Georgiev", reports[1].Doctor.Name)
	assert.Equal(t, 1, reports[1].VisitCount)
	_ = idle
}

func TestReportUsecase_GetDoctorsByPatientCount_RankedWithZero(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_doctors_by_patients")
	uc := newReportUsecase(db)
	one := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	two := seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "General Medicine", true)
	none := seedTestDoctor(t, db, "DOC-300", "Dr. Todorova", "Pediatrics", true)

	seedTestPatient(t, db, "Ivan Ivanov", "8001014567", two.ID, nil)
	seedTestPatient(t, db, "Maria Dimitrova", "8505057890", two.ID, nil)
	seedTestPatient(t, db, "Petar Petrov", "9010102345", one.ID, nil)

	reports, err := uc.GetDoctorsByPatientCount(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 3)
	assert.Equal(t, "Dr. Georgiev", reports[0].Doctor.Name)
	assert.Equal(t, 2, reports[0].PatientCount)
	assert.Equal(t, "Dr. Petrova", reports[1].Doctor.Name)
	assert.Equal(t, "Dr. Todorova", reports[2].Doctor.Name)
	assert.Zero(t, reports[2].PatientCount)
	_ = none
}

func TestReportUsecase_GetMonthWithMostSickLeaves(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_top_month")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	starts := []time.Time{
		onDay(2024, time.January, 10),
		onDay(2024, time.March, 5),
		onDay(2024, time.March, 20),
	}
	for _, start := range starts {
		visit := seedTestVisit(t, db, patient.ID, doctor.ID, start, nil)
		seedTestSickLeave(t, db, visit.ID, start, 3)
	}

	report, err := uc.GetMonthWithMostSickLeaves(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, report.Month)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 2, report.Count)
}

func TestReportUsecase_GetMonthWithMostSickLeaves_NoneIsZeroReport(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_top_month_empty")
	uc := newReportUsecase(db)

	report, err := uc.GetMonthWithMostSickLeaves(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, report.Month)
	assert.Zero(t, report.Year)
	assert.Zero(t, report.Count)
}

func TestReportUsecase_GetDoctorsWithMostSickLeaves(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_doctors_sick_leaves")
	uc := newReportUsecase(db)
	prolific := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	occasional := seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)
	never := seedTestDoctor(t, db, "DOC-300", "Dr. Todorova", "Pediatrics", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", prolific.ID, nil)

	for i, doctorID := range []uint{prolific.ID, prolific.ID, occasional.ID} {
		visit := seedTestVisit(t, db, patient.ID, doctorID, onDay(2024, time.March, 1+i), nil)
		seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 2+i), 3)
	}

	reports, err := uc.GetDoctorsWithMostSickLeaves(context.Background(), 0)

	assert.NoError(t, err)
	// Doctors that never issued a sick leave do not appear.
	assert.Len(t, reports, 2)
	assert.Equal(t, "Dr. Petrova", reports[0].Doctor.Name)
	assert.Equal(t, 2, reports[0].SickLeaveCount)
	assert.Equal(t, "Dr. Georgiev", reports[1].Doctor.Name)
	_ = never
}

func TestReportUsecase_GetSickLeavesByMonth_RankedDescending(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_by_month")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	starts := []time.Time{
		onDay(2024, time.January, 10),
		onDay(2024, time.February, 1),
		onDay(2024, time.February, 15),
	}
	for _, start := range starts {
		visit := seedTestVisit(t, db, patient.ID, doctor.ID, start, nil)
		seedTestSickLeave(t, db, visit.ID, start, 4)
	}

	reports, err := uc.GetSickLeavesByMonth(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 2, reports[0].Month)
	assert.Equal(t, 2, reports[0].Count)
	assert.Equal(t, 1, reports[1].Month)
	assert.Equal(t, 1, reports[1].Count)
}

func TestReportUsecase_GetPatientsWithMostVisits(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_top_patients")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	frequent := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	rare := seedTestPatient(t, db, "Maria Dimitrova", "8505057890", doctor.ID, nil)

	seedTestVisit(t, db, frequent.ID, doctor.ID, onDay(2024, time.January, 5), nil)
	seedTestVisit(t, db, frequent.ID, doctor.ID, onDay(2024, time.February, 5), nil)
	seedTestVisit(t, db, rare.ID, doctor.ID, onDay(2024, time.March, 5), nil)

	reports, err := uc.GetPatientsWithMostVisits(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, "Ivan Ivanov", reports[0].Patient.Name)
	assert.Equal(t, 2, reports[0].VisitCount)
}

func TestReportUsecase_GetInsuranceStats(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_insurance")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)

	recent := time.Now().AddDate(0, -1, 0)
	stale := time.Now().AddDate(0, -8, 0)
	seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, &recent)
	seedTestPatient(t, db, "Maria Dimitrova", "8505057890", doctor.ID, &stale)
	seedTestPatient(t, db, "Petar Petrov", "9010102345", doctor.ID, nil)

	stats, err := uc.GetInsuranceStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPatients)
	assert.Equal(t, 1, stats.ValidInsurance)
	assert.Equal(t, 2, stats.InvalidInsurance)
	assert.InDelta(t, 33.33, stats.ValidPercentage, 0.01)
}

func TestReportUsecase_GetInsuranceStats_NoPatients(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_insurance_empty")
	uc := newReportUsecase(db)

	stats, err := uc.GetInsuranceStats(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, stats.TotalPatients)
	assert.Zero(t, stats.ValidPercentage)
}

func TestReportUsecase_GetDetailedSickLeavesByMonth(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_detailed_month")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	leaves := []struct {
		start time.Time
		days  int
	}{
		{onDay(2024, time.March, 1), 4},
		{onDay(2024, time.March, 10), 8},
		{onDay(2024, time.April, 1), 5},
	}
	for _, l := range leaves {
		visit := seedTestVisit(t, db, patient.ID, doctor.ID, l.start, nil)
		seedTestSickLeave(t, db, visit.ID, l.start, l.days)
	}

	reports, err := uc.GetDetailedSickLeavesByMonth(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 3, reports[0].Month)
	assert.Equal(t, 2, reports[0].Count)
	assert.Equal(t, 12.0, reports[0].TotalDays)
	assert.Equal(t, 6.0, reports[0].AverageDuration)
	assert.Equal(t, 4, reports[1].Month)
	assert.Equal(t, 5.0, reports[1].TotalDays)
}

func TestReportUsecase_GetDetailedDoctorSickLeaveStats(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_detailed_doctor")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)

	for i, days := range []int{3, 7} {
		visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 1+i), nil)
		seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 1+i), days)
	}

	reports, err := uc.GetDetailedDoctorSickLeaveStats(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "Dr. Petrova", reports[0].Doctor.Name)
	assert.Equal(t, 2, reports[0].SickLeaveCount)
	assert.Equal(t, 10.0, reports[0].TotalDays)
	assert.Equal(t, 5.0, reports[0].AverageDuration)
}

func TestReportUsecase_GetDashboardStats_FallsBackWhenCacheDown(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_dashboard")
	uc := newReportUsecase(db)
	doctor := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", doctor.ID, nil)
	visit := seedTestVisit(t, db, patient.ID, doctor.ID, onDay(2024, time.March, 10), nil)
	seedTestSickLeave(t, db, visit.ID, onDay(2024, time.March, 11), 3)

	stats, err := uc.GetDashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalDoctors)
	assert.Equal(t, int64(1), stats.TotalPatients)
	assert.Equal(t, int64(1), stats.TotalVisits)
	assert.Equal(t, int64(1), stats.TotalSickLeaves)
}

func TestReportUsecase_GetVisitsByDoctorAndDateRange(t *testing.T) {
	db := setupUsecaseDB(t, "rpt_doctor_range")
	uc := newReportUsecase(db)
	docA := seedTestDoctor(t, db, "DOC-100", "Dr. Petrova", "General Medicine", true)
	docB := seedTestDoctor(t, db, "DOC-200", "Dr. Georgiev", "Cardiology", false)
	patient := seedTestPatient(t, db, "Ivan Ivanov", "8001014567", docA.ID, nil)

	seedTestVisit(t, db, patient.ID, docA.ID, onDay(2024, time.March, 10), nil)
	seedTestVisit(t, db, patient.ID, docB.ID, onDay(2024, time.March, 12), nil)
	seedTestVisit(t, db, patient.ID, docA.ID, onDay(2024, time.June, 1), nil)

	resp, err := uc.GetVisitsByDoctorAndDateRange(context.Background(), docA.ID, "2024-03-01", "2024-03-31")

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, docA.ID, resp.Visits[0].DoctorID)
}
