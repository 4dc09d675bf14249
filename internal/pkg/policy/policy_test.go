package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selimd/admitflow/internal/app/models"
)

func TestClassifyVerification(t *testing.T) {
	tests := []struct {
		name      string
		narrative string
		expected  models.VerificationStatus
	}{
		{
			name:      "clean narrative verifies",
			narrative: "The transcript appears authentic and complete.",
			expected:  models.VerificationVerified,
		},
		{
			name:      "reject marker",
			narrative: "This document should be rejected, the seal is missing.",
			expected:  models.VerificationRejected,
		},
		{
			name:      "invalid marker",
			narrative: "The ID number is invalid.",
			expected:  models.VerificationRejected,
		},
		{
			name:      "fake marker",
			narrative: "The watermark looks fake.",
			expected:  models.VerificationRejected,
		},
		{
			name:      "inconsistency marker",
			narrative: "There is an inconsistency between the name fields.",
			expected:  models.VerificationNeedsClarification,
		},
		{
			name:      "issue marker",
			narrative: "Minor issue with the date format.",
			expected:  models.VerificationNeedsClarification,
		},
		{
			name:      "problem marker",
			narrative: "A problem with the signature placement.",
			expected:  models.VerificationNeedsClarification,
		},
		{
			name:      "rejection takes precedence over clarification",
			narrative: "The document looks fake and there is an issue with the dates.",
			expected:  models.VerificationRejected,
		},
		{
			name:      "matching is case-insensitive",
			narrative: "REJECTED: forged stamp",
			expected:  models.VerificationRejected,
		},
		{
			name:      "empty narrative verifies",
			narrative: "",
			expected:  models.VerificationVerified,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyVerification(tc.narrative))
		})
	}
}

func TestRecommendationAccepts(t *testing.T) {
	tests := []struct {
		name           string
		recommendation string
		expected       bool
	}{
		{"plain recommendation", "Strongly recommend for admission", true},
		{"case-insensitive", "RECOMMEND without reservation", true},
		{"negated recommendation", "Do not recommend at this time", false},
		{"double negative still rejects", "We do not recommend against admission", false},
		{"no recommendation keyword", "Candidate shows promise", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RecommendationAccepts(tc.recommendation))
		})
	}
}

func TestDecisionAccepts(t *testing.T) {
	assert.True(t, DecisionAccepts("The applicant is accepted into the program."))
	assert.True(t, DecisionAccepts("ACCEPTED with conditions"))
	assert.False(t, DecisionAccepts("The applicant is rejected."))
	assert.False(t, DecisionAccepts("We will accept pending review"))
	assert.False(t, DecisionAccepts(""))
}

func TestParseEvaluation(t *testing.T) {
	narrative := "Academic Performance: 7\nExtracurriculars: 8.5\nEssay: strong\nRecommendation: Strongly recommend"

	scores, recommendation := ParseEvaluation(narrative)

	assert.Equal(t, "Strongly recommend", recommendation)
	assert.Equal(t, 7.0, scores["Academic Performance"])
	assert.Equal(t, 8.5, scores["Extracurriculars"])
	assert.Equal(t, "strong", scores["Essay"])
	assert.NotContains(t, scores, "Recommendation")
}

func TestParseEvaluationSkipsMalformedLines(t *testing.T) {
	narrative := "no separator here\n: dangling value\nGPA Fit: 6\n\nRecommendation: recommend"

	scores, recommendation := ParseEvaluation(narrative)

	assert.Equal(t, "recommend", recommendation)
	assert.Len(t, scores, 1)
	assert.Equal(t, 6.0, scores["GPA Fit"])
}

func TestOverallScore(t *testing.T) {
	scores := map[string]interface{}{
		"Academic Performance": 7.0,
		"Extracurriculars":     8.5,
		"Essay":                "strong",
	}
	assert.InDelta(t, 7.75, OverallScore(scores), 0.0001)
}

func TestOverallScoreNoNumericValues(t *testing.T) {
	assert.Equal(t, 0.0, OverallScore(map[string]interface{}{"Essay": "strong"}))
	assert.Equal(t, 0.0, OverallScore(map[string]interface{}{}))
}
