package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmissionStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AdmissionStatus
		to      AdmissionStatus
		allowed bool
	}{
		{StatusPending, StatusDocumentVerification, true},
		{StatusPending, StatusWithdrawn, true},
		{StatusPending, StatusShortlisted, false},
		{StatusPending, StatusAccepted, false},
		{StatusDocumentVerification, StatusShortlisted, true},
		{StatusDocumentVerification, StatusWithdrawn, true},
		{StatusDocumentVerification, StatusAccepted, false},
		{StatusShortlisted, StatusAccepted, true},
		{StatusShortlisted, StatusRejected, true},
		{StatusShortlisted, StatusWithdrawn, true},
		{StatusShortlisted, StatusEnrolled, false},
		{StatusAccepted, StatusEnrolled, true},
		{StatusAccepted, StatusWithdrawn, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusWithdrawn, false},
		{StatusRejected, StatusShortlisted, false},
		{StatusEnrolled, StatusWithdrawn, false},
		{StatusWithdrawn, StatusPending, false},
		{StatusWithdrawn, StatusDocumentVerification, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestAdmissionStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusEnrolled.IsTerminal())
	assert.True(t, StatusWithdrawn.IsTerminal())

	for _, status := range []AdmissionStatus{
		StatusPending, StatusDocumentVerification, StatusShortlisted,
		StatusAccepted, StatusRejected,
	} {
		assert.False(t, status.IsTerminal(), string(status))
	}
}

func TestAdmissionStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusWithdrawn.IsValid())
	assert.False(t, AdmissionStatus("waitlisted").IsValid())
	assert.False(t, AdmissionStatus("").IsValid())
}

func TestAdmissionValidate(t *testing.T) {
	admission := &Admission{
		ID:        "ADM1",
		StudentID: "STU1",
		Program:   "Computer Science",
		Status:    StatusPending,
	}
	assert.NoError(t, admission.Validate())

	admission.Program = ""
	assert.Error(t, admission.Validate())

	admission.Program = "Computer Science"
	admission.Status = AdmissionStatus("bogus")
	assert.Error(t, admission.Validate())
}

func TestRequiredDocumentTypesOrder(t *testing.T) {
	assert.Equal(t, []DocumentType{
		DocTranscript, DocIDProof, DocRecommendationLetter,
	}, RequiredDocumentTypes())
}
