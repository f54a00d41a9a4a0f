package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePenaltyType(t *testing.T) {
	tests := []struct {
		input    string
		kind     PenaltyKind
		days     int
		label    string
		duration string
	}{
		{input: "Warning", kind: PenaltyWarning, label: "Warning"},
		{input: "1-Month Suspension", kind: PenaltySuspension, days: 30, label: "1-Month Suspension", duration: "1 Month"},
		{input: " 6-Month Suspension ", kind: PenaltySuspension, days: 180, label: "6-Month Suspension", duration: "6 Months"},
		{input: "Permanent Deactivation", kind: PenaltyDeactivation, label: "Permanent Deactivation"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			kind, days, err := ParsePenaltyType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.days, days)

			p := Penalty{Kind: kind, DurationDays: days}
			assert.Equal(t, tt.label, p.Label())
			assert.Equal(t, tt.duration, p.DurationLabel())
		})
	}

	_, _, err := ParsePenaltyType("warning")
	assert.Error(t, err)
}

func TestPenaltyInForce(t *testing.T) {
	applied := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	warning := Penalty{Kind: PenaltyWarning, AppliedAt: applied}
	assert.False(t, warning.InForce(applied))
	assert.Nil(t, warning.ExpiresAt())

	suspension := Penalty{Kind: PenaltySuspension, DurationDays: 30, AppliedAt: applied}
	require.NotNil(t, suspension.ExpiresAt())
	assert.Equal(t, applied.AddDate(0, 0, 30), *suspension.ExpiresAt())
	assert.True(t, suspension.InForce(applied.AddDate(0, 0, 29)))
	assert.False(t, suspension.InForce(applied.AddDate(0, 0, 30)))

	deactivation := Penalty{Kind: PenaltyDeactivation, AppliedAt: applied}
	assert.True(t, deactivation.InForce(applied.AddDate(10, 0, 0)))
}

func TestViolationCurrentPenalty(t *testing.T) {
	v := Violation{PlateNumber: " abc123 "}
	assert.Nil(t, v.CurrentPenalty())
	assert.True(t, v.MatchesPlate("ABC123"))

	v.Penalties = []Penalty{{Kind: PenaltyWarning}, {Kind: PenaltyDeactivation}}
	require.NotNil(t, v.CurrentPenalty())
	assert.Equal(t, PenaltyDeactivation, v.CurrentPenalty().Kind)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []string{"plate_number", "description"}}
	assert.Equal(t, "validation failed: plate_number, description", err.Error())
}
