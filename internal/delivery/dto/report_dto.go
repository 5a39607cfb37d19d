package dto

// Report row shapes. Grouped reports are returned ranked; ties keep the
// order in which the group was first seen in the underlying scan.

type DiagnosisFrequencyReport struct {
	Diagnosis  DiagnosisResponse `json:"diagnosis"`
	VisitCount int               `json:"visit_count"`
}

type DoctorPatientCountReport struct {
	Doctor       DoctorResponse `json:"doctor"`
	PatientCount int            `json:"patient_count"`
}

type DoctorVisitCountReport struct {
	Doctor     DoctorResponse `json:"doctor"`
	VisitCount int            `json:"visit_count"`
}

type DoctorSickLeaveReport struct {
	Doctor         DoctorResponse `json:"doctor"`
	SickLeaveCount int            `json:"sick_leave_count"`
}

type PatientVisitCountReport struct {
	Patient    PatientResponse `json:"patient"`
	VisitCount int             `json:"visit_count"`
}

// MonthlyReport is one (month, year) bucket of sick leave issuance. A
// zero-valued report is the sentinel for "no sick leaves at all".
type MonthlyReport struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Count int `json:"count"`
}

type MonthlySickLeaveDetailReport struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	Count           int     `json:"count"`
	TotalDays       float64 `json:"total_days"`
	AverageDuration float64 `json:"average_duration"`
}

type DoctorSickLeaveDetailReport struct {
	Doctor          DoctorResponse `json:"doctor"`
	SickLeaveCount  int            `json:"sick_leave_count"`
	TotalDays       float64        `json:"total_days"`
	AverageDuration float64        `json:"average_duration"`
}

type DashboardStatsResponse struct {
	TotalDoctors    int64 `json:"total_doctors"`
	TotalPatients   int64 `json:"total_patients"`
	TotalVisits     int64 `json:"total_visits"`
	TotalSickLeaves int64 `json:"total_sick_leaves"`
}

type InsuranceStatsResponse struct {
	TotalPatients    int     `json:"total_patients"`
	ValidInsurance   int     `json:"valid_insurance"`
	InvalidInsurance int     `json:"invalid_insurance"`
	ValidPercentage  float64 `json:"valid_percentage"`
}
