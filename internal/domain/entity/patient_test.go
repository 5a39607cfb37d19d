package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatient_IsInsuranceValid_NoPaymentDate(t *testing.T) {
	patient := Patient{Name: "Jane Doe", EGN: "9005151234"}

	assert.False(t, patient.IsInsuranceValid(time.Now()))
}

func TestPatient_IsInsuranceValid_RecentPayment(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	paid := asOf.AddDate(0, -5, 0)
	patient := Patient{LastInsurancePaymentDate: &paid}

	assert.True(t, patient.IsInsuranceValid(asOf))
}

func TestPatient_IsInsuranceValid_ExpiredPayment(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	paid := asOf.AddDate(0, -7, 0)
	patient := Patient{LastInsurancePaymentDate: &paid}

	assert.False(t, patient.IsInsuranceValid(asOf))
}

func TestPatient_IsInsuranceValid_ExactlySixMonths(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	paid := asOf.AddDate(0, -6, 0)
	patient := Patient{LastInsurancePaymentDate: &paid}

	// A payment exactly six months ago is no longer within the window.
	assert.False(t, patient.IsInsuranceValid(asOf))
}
