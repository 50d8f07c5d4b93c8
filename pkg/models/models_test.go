package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypesCompatible(t *testing.T) {
	assert.True(t, TypesCompatible(AmbulanceTypeAny, AmbulanceTypeBasicLife))
	assert.True(t, TypesCompatible(AmbulanceTypeICULife, AmbulanceTypeAny))
	assert.True(t, TypesCompatible(AmbulanceTypeICULife, AmbulanceTypeICULife))
	assert.False(t, TypesCompatible(AmbulanceTypeICULife, AmbulanceTypeBasicLife))
	assert.False(t, TypesCompatible(AmbulanceTypeBasicLife, AmbulanceTypeAdvanceLife))
}

func TestParseAmbulanceType(t *testing.T) {
	typ, ok := ParseAmbulanceType("icu_life")
	assert.True(t, ok)
	assert.Equal(t, AmbulanceTypeICULife, typ)

	_, ok = ParseAmbulanceType("hovercraft")
	assert.False(t, ok)
}

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusAssigned))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusFake))
	assert.False(t, RequestStatusPending.CanTransitionTo(RequestStatusCompleted))

	assert.True(t, RequestStatusAssigned.CanTransitionTo(RequestStatusToHospital))
	assert.True(t, RequestStatusAssigned.CanTransitionTo(RequestStatusPending)) // breakdown unassign
	assert.True(t, RequestStatusAssigned.CanTransitionTo(RequestStatusCompleted))

	assert.True(t, RequestStatusToHospital.CanTransitionTo(RequestStatusCompleted))
	assert.False(t, RequestStatusToHospital.CanTransitionTo(RequestStatusAssigned))

	// completed and fake are terminal
	for _, terminal := range []RequestStatus{RequestStatusCompleted, RequestStatusFake} {
		assert.True(t, terminal.Terminal())
		for _, next := range []RequestStatus{RequestStatusPending, RequestStatusAssigned,
			RequestStatusToHospital, RequestStatusCompleted, RequestStatusFake} {
			assert.False(t, terminal.CanTransitionTo(next))
		}
	}
}

func TestAlertStatusTransitions(t *testing.T) {
	assert.True(t, AlertStatusPendingVerification.CanTransitionTo(AlertStatusConfirmed))
	assert.True(t, AlertStatusPendingVerification.CanTransitionTo(AlertStatusFalsePositive))
	assert.False(t, AlertStatusConfirmed.CanTransitionTo(AlertStatusFalsePositive))
	assert.False(t, AlertStatusFalsePositive.CanTransitionTo(AlertStatusConfirmed))
}

func TestUserBlacklist(t *testing.T) {
	u := User{DemeritPoints: 1}
	assert.False(t, u.IsBlacklisted())

	u.DemeritPoints = 2
	assert.True(t, u.IsBlacklisted())

	u = User{Blacklisted: true}
	assert.True(t, u.IsBlacklisted())
}

func TestAmbulanceProfileComplete(t *testing.T) {
	a := Ambulance{Phone: "9876543210"}
	assert.False(t, a.ProfileComplete())

	a = Ambulance{
		Name: "Raj", Age: 34, DateOfBirth: "1991-02-12", Gender: "male",
		VehicleNumber: "KA-01-1234", DrivingLicense: "DL-998877",
	}
	assert.True(t, a.ProfileComplete())
}
