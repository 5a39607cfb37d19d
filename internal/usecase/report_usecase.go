package usecase

import (
	"context"
	"time"

	"medical-history-service/internal/converter"
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
	"medical-history-service/internal/domain/repository"
	"medical-history-service/internal/report"
	"medical-history-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// topPatientsByVisits bounds the patients-with-most-visits leaderboard.
const topPatientsByVisits = 10

// ReportUsecase is the statistics catalog. Every report is computed from a
// fresh repository snapshot with the pure primitives in internal/report, so
// a report never observes a half-applied write. Filter parameters that match
// nothing yield empty results, never errors.
type ReportUsecase interface {
	GetPatientsByDiagnosis(ctx context.Context, diagnosisID uint) (*dto.PatientListResponse, error)
	GetMostCommonDiagnoses(ctx context.Context, limit int) ([]dto.DiagnosisFrequencyReport, error)
	GetPatientsByFamilyDoctor(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error)
	GetFamilyDoctorPatientCounts(ctx context.Context) ([]dto.DoctorPatientCountReport, error)
	GetDoctorVisitCounts(ctx context.Context) ([]dto.DoctorVisitCountReport, error)
	GetDoctorsByPatientCount(ctx context.Context) ([]dto.DoctorPatientCountReport, error)
	GetVisitsByDateRange(ctx context.Context, startDate, endDate string) (*dto.MedicalVisitListResponse, error)
	GetVisitsByDoctorAndDateRange(ctx context.Context, doctorID uint, startDate, endDate string) (*dto.MedicalVisitListResponse, error)
	GetMonthWithMostSickLeaves(ctx context.Context) (*dto.MonthlyReport, error)
	GetDoctorsWithMostSickLeaves(ctx context.Context, limit int) ([]dto.DoctorSickLeaveReport, error)
	GetSickLeavesByMonth(ctx context.Context) ([]dto.MonthlyReport, error)
	GetPatientsWithMostVisits(ctx context.Context) ([]dto.PatientVisitCountReport, error)
	GetInsuranceStats(ctx context.Context) (*dto.InsuranceStatsResponse, error)
	GetDetailedSickLeavesByMonth(ctx context.Context) ([]dto.MonthlySickLeaveDetailReport, error)
	GetDetailedDoctorSickLeaveStats(ctx context.Context) ([]dto.DoctorSickLeaveDetailReport, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type reportUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	patientRepo   repository.PatientRepository
	doctorRepo    repository.DoctorRepository
	visitRepo     repository.MedicalVisitRepository
	sickLeaveRepo repository.SickLeaveRepository
	statsCache    *service.StatsCacheService
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	visitRepo repository.MedicalVisitRepository,
	sickLeaveRepo repository.SickLeaveRepository,
	statsCache *service.StatsCacheService,
) ReportUsecase {
	return &reportUsecase{
		db:            db,
		log:           log,
		patientRepo:   patientRepo,
		doctorRepo:    doctorRepo,
		visitRepo:     visitRepo,
		sickLeaveRepo: sickLeaveRepo,
		statsCache:    statsCache,
	}
}

// GetPatientsByDiagnosis lists the distinct patients that have at least one
// visit carrying the diagnosis, in the order their first such visit was
// recorded. An unknown diagnosis ID yields an empty list.
func (u *reportUsecase) GetPatientsByDiagnosis(ctx context.Context, diagnosisID uint) (*dto.PatientListResponse, error) {
	visits, err := u.visitRepo.FindByDiagnosisID(u.db.WithContext(ctx), diagnosisID)
	if err != nil {
		u.log.Warnf("Failed to find visits by diagnosis %d: %+v", diagnosisID, err)
		return nil, err
	}

	seen := make(map[uint]bool, len(visits))
	patients := make([]dto.PatientResponse, 0, len(visits))
	for i := range visits {
		if seen[visits[i].PatientID] {
			continue
		}
		seen[visits[i].PatientID] = true
		patients = append(patients, *converter.PatientToResponse(&visits[i].Patient))
	}

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}

// GetMostCommonDiagnoses ranks diagnoses by how many visits carry them,
// highest first. Visits without a diagnosis are excluded; ties keep the order
// in which the diagnosis was first seen. limit <= 0 means no cap.
func (u *reportUsecase) GetMostCommonDiagnoses(ctx context.Context, limit int) ([]dto.DiagnosisFrequencyReport, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	diagnosed := make([]entity.MedicalVisit, 0, len(visits))
	byID := make(map[uint]*entity.Diagnosis)
	for i := range visits {
		if visits[i].DiagnosisID == nil || visits[i].Diagnosis == nil {
			continue
		}
		diagnosed = append(diagnosed, visits[i])
		byID[*visits[i].DiagnosisID] = visits[i].Diagnosis
	}

	counts, order := report.CountByKey(diagnosed, func(v entity.MedicalVisit) uint {
		return *v.DiagnosisID
	})
	ranked := report.RankDescending(counts, order)
	if limit > 0 {
		ranked = report.TopN(ranked, limit)
	}

	result := make([]dto.DiagnosisFrequencyReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.DiagnosisFrequencyReport{
			Diagnosis:  *converter.DiagnosisToResponse(byID[group.Key]),
			VisitCount: group.Count,
		})
	}
	return result, nil
}

// GetPatientsByFamilyDoctor lists the patients registered to the doctor. An
// unknown doctor ID yields an empty list.
func (u *reportUsecase) GetPatientsByFamilyDoctor(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByFamilyDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find patients by family doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// GetFamilyDoctorPatientCounts counts registered patients per family doctor.
// Only doctors flagged as family doctors with at least one patient appear.
func (u *reportUsecase) GetFamilyDoctorPatientCounts(ctx context.Context) ([]dto.DoctorPatientCountReport, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	registered := make([]entity.Patient, 0, len(patients))
	byID := make(map[uint]*entity.Doctor)
	for i := range patients {
		if !patients[i].FamilyDoctor.IsFamilyDoctor {
			continue
		}
		registered = append(registered, patients[i])
		byID[patients[i].FamilyDoctorID] = &patients[i].FamilyDoctor
	}

	counts, order := report.CountByKey(registered, func(p entity.Patient) uint {
		return p.FamilyDoctorID
	})
	ranked := report.RankDescending(counts, order)

	result := make([]dto.DoctorPatientCountReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.DoctorPatientCountReport{
			Doctor:       *converter.DoctorToResponse(byID[group.Key]),
			PatientCount: group.Count,
		})
	}
	return result, nil
}

// GetDoctorVisitCounts ranks doctors by the number of visits they conducted,
// highest first. Doctors without a single visit do not appear.
func (u *reportUsecase) GetDoctorVisitCounts(ctx context.Context) ([]dto.DoctorVisitCountReport, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	byID := make(map[uint]*entity.Doctor)
	for i := range visits {
		byID[visits[i].DoctorID] = &visits[i].Doctor
	}

	counts, order := report.CountByKey(visits, func(v entity.MedicalVisit) uint {
		return v.DoctorID
	})
	ranked := report.RankDescending(counts, order)

	result := make([]dto.DoctorVisitCountReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.DoctorVisitCountReport{
			Doctor:     *converter.DoctorToResponse(byID[group.Key]),
			VisitCount: group.Count,
		})
	}
	return result, nil
}

// GetDoctorsByPatientCount ranks every doctor by the number of patients
// registered to them as family doctor, highest first. Doctors with no
// registered patients rank with a count of zero.
func (u *reportUsecase) GetDoctorsByPatientCount(ctx context.Context) ([]dto.DoctorPatientCountReport, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	counts := report.GroupCount(patients, func(p entity.Patient) uint {
		return p.FamilyDoctorID
	})

	byID := make(map[uint]*entity.Doctor, len(doctors))
	order := make([]uint, 0, len(doctors))
	for i := range doctors {
		byID[doctors[i].ID] = &doctors[i]
		order = append(order, doctors[i].ID)
	}
	ranked := report.RankDescending(counts, order)

	result := make([]dto.DoctorPatientCountReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.DoctorPatientCountReport{
			Doctor:       *converter.DoctorToResponse(byID[group.Key]),
			PatientCount: group.Count,
		})
	}
	return result, nil
}

// GetVisitsByDateRange lists visits with start <= visit date <= end, ordered
// by visit date. An inverted range yields an empty list.
func (u *reportUsecase) GetVisitsByDateRange(ctx context.Context, startDate, endDate string) (*dto.MedicalVisitListResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	visits, err := u.visitRepo.FindByDateRange(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to find visits by date range: %+v", err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *reportUsecase) GetVisitsByDoctorAndDateRange(ctx context.Context, doctorID uint, startDate, endDate string) (*dto.MedicalVisitListResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	visits, err := u.visitRepo.FindByDoctorAndDateRange(u.db.WithContext(ctx), doctorID, start, end)
	if err != nil {
		u.log.Warnf("Failed to find visits by doctor and date range: %+v", err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

// GetMonthWithMostSickLeaves returns the (month, year) bucket in which the
// most sick leaves started. With no sick leaves at all the zero-valued report
// is returned.
func (u *reportUsecase) GetMonthWithMostSickLeaves(ctx context.Context) (*dto.MonthlyReport, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sick leaves: %+v", err)
		return nil, err
	}
	if len(sickLeaves) == 0 {
		return &dto.MonthlyReport{}, nil
	}

	counts, order := report.BucketByMonth(startDates(sickLeaves))
	top := report.RankDescending(counts, order)[0]

	return &dto.MonthlyReport{
		Month: top.Key.Month,
		Year:  top.Key.Year,
		Count: top.Count,
	}, nil
}

// GetDoctorsWithMostSickLeaves ranks doctors by the number of sick leaves
// issued through their visits, highest first. Doctors that never issued one
// do not appear. limit <= 0 means no cap.
func (u *reportUsecase) GetDoctorsWithMostSickLeaves(ctx context.Context, limit int) ([]dto.DoctorSickLeaveReport, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sick leaves: %+v", err)
		return nil, err
	}

	byID := make(map[uint]*entity.Doctor)
	for i := range sickLeaves {
		byID[sickLeaves[i].MedicalVisit.DoctorID] = &sickLeaves[i].MedicalVisit.Doctor
	}

	counts, order := report.CountByKey(sickLeaves, func(s entity.SickLeave) uint {
		return s.MedicalVisit.DoctorID
	})
	ranked := report.RankDescending(counts, order)
	if limit > 0 {
		ranked = report.TopN(ranked, limit)
	}

	result := make([]dto.DoctorSickLeaveReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.DoctorSickLeaveReport{
			Doctor:         *converter.DoctorToResponse(byID[group.Key]),
			SickLeaveCount: group.Count,
		})
	}
	return result, nil
}

// GetSickLeavesByMonth counts issued sick leaves per (month, year), most
// first.
func (u *reportUsecase) GetSickLeavesByMonth(ctx context.Context) ([]dto.MonthlyReport, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sick leaves: %+v", err)
		return nil, err
	}

	counts, order := report.BucketByMonth(startDates(sickLeaves))
	ranked := report.RankDescending(counts, order)

	result := make([]dto.MonthlyReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.MonthlyReport{
			Month: group.Key.Month,
			Year:  group.Key.Year,
			Count: group.Count,
		})
	}
	return result, nil
}

// GetPatientsWithMostVisits ranks patients by visit count, highest first,
// capped to the top ten.
func (u *reportUsecase) GetPatientsWithMostVisits(ctx context.Context) ([]dto.PatientVisitCountReport, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	byID := make(map[uint]*entity.Patient)
	for i := range visits {
		byID[visits[i].PatientID] = &visits[i].Patient
	}

	counts, order := report.CountByKey(visits, func(v entity.MedicalVisit) uint {
		return v.PatientID
	})
	ranked := report.TopN(report.RankDescending(counts, order), topPatientsByVisits)

	result := make([]dto.PatientVisitCountReport, 0, len(ranked))
	for _, group := range ranked {
		result = append(result, dto.PatientVisitCountReport{
			Patient:    *converter.PatientToResponse(byID[group.Key]),
			VisitCount: group.Count,
		})
	}
	return result, nil
}

// GetInsuranceStats totals patients with valid and invalid insurance, where
// valid means a payment within the last six months.
func (u *reportUsecase) GetInsuranceStats(ctx context.Context) (*dto.InsuranceStatsResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	now := time.Now()
	stats := &dto.InsuranceStatsResponse{TotalPatients: len(patients)}
	for i := range patients {
		if patients[i].IsInsuranceValid(now) {
			stats.ValidInsurance++
		} else {
			stats.InvalidInsurance++
		}
	}
	if stats.TotalPatients > 0 {
		stats.ValidPercentage = float64(stats.ValidInsurance) / float64(stats.TotalPatients) * 100
	}
	return stats, nil
}

// GetDetailedSickLeavesByMonth reports count, total days and average duration
// per (month, year) bucket, ordered by count descending.
func (u *reportUsecase) GetDetailedSickLeavesByMonth(ctx context.Context) ([]dto.MonthlySickLeaveDetailReport, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sick leaves: %+v", err)
		return nil, err
	}

	byMonth := make(map[report.MonthKey][]entity.SickLeave)
	counts, order := report.BucketByMonth(startDates(sickLeaves))
	for _, s := range sickLeaves {
		k := report.MonthKey{Month: int(s.StartDate.Month()), Year: s.StartDate.Year()}
		byMonth[k] = append(byMonth[k], s)
	}
	ranked := report.RankDescending(counts, order)

	result := make([]dto.MonthlySickLeaveDetailReport, 0, len(ranked))
	for _, group := range ranked {
		count, total, avg := report.SumAndAverage(byMonth[group.Key], func(s entity.SickLeave) float64 {
			return float64(s.DurationDays)
		})
		result = append(result, dto.MonthlySickLeaveDetailReport{
			Month:           group.Key.Month,
			Year:            group.Key.Year,
			Count:           count,
			TotalDays:       total,
			AverageDuration: avg,
		})
	}
	return result, nil
}

// GetDetailedDoctorSickLeaveStats reports sick-leave count, total days and
// average duration per issuing doctor, ordered by count descending.
func (u *reportUsecase) GetDetailedDoctorSickLeaveStats(ctx context.Context) ([]dto.DoctorSickLeaveDetailReport, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sick leaves: %+v", err)
		return nil, err
	}

	byID := make(map[uint]*entity.Doctor)
	byDoctor := make(map[uint][]entity.SickLeave)
	for i := range sickLeaves {
		doctorID := sickLeaves[i].MedicalVisit.DoctorID
		byID[doctorID] = &sickLeaves[i].MedicalVisit.Doctor
		byDoctor[doctorID] = append(byDoctor[doctorID], sickLeaves[i])
	}

	counts, order := report.CountByKey(sickLeaves, func(s entity.SickLeave) uint {
		return s.MedicalVisit.DoctorID
	})
	ranked := report.RankDescending(counts, order)

	result := make([]dto.DoctorSickLeaveDetailReport, 0, len(ranked))
	for _, group := range ranked {
		count, total, avg := report.SumAndAverage(byDoctor[group.Key], func(s entity.SickLeave) float64 {
			return float64(s.DurationDays)
		})
		result = append(result, dto.DoctorSickLeaveDetailReport{
			Doctor:          *converter.DoctorToResponse(byID[group.Key]),
			SickLeaveCount:  count,
			TotalDays:       total,
			AverageDuration: avg,
		})
	}
	return result, nil
}

// GetDashboardStats returns the four entity totals, served from the redis
// cache when fresh. Cache failures fall back to the database.
func (u *reportUsecase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	cached, err := u.statsCache.GetDashboardStats(ctx)
	if err != nil {
		u.log.Warnf("Failed to read dashboard stats cache (non-fatal): %+v", err)
	}
	if cached != nil {
		return cached, nil
	}

	db := u.db.WithContext(ctx)
	stats := &dto.DashboardStatsResponse{}
	if stats.TotalDoctors, err = u.doctorRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	if stats.TotalPatients, err = u.patientRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.TotalVisits, err = u.visitRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count visits: %+v", err)
		return nil, err
	}
	if stats.TotalSickLeaves, err = u.sickLeaveRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count sick leaves: %+v", err)
		return nil, err
	}

	if err := u.statsCache.SetDashboardStats(ctx, stats); err != nil {
		u.log.Warnf("Failed to write dashboard stats cache (non-fatal): %+v", err)
	}
	return stats, nil
}

func startDates(sickLeaves []entity.SickLeave) []time.Time {
	dates := make([]time.Time, len(sickLeaves))
	for i := range sickLeaves {
		dates[i] = sickLeaves[i].StartDate
	}
	return dates
}
