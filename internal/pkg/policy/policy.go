// Package policy isolates the narrative-classification heuristics applied to
// decision oracle output. They are deliberately blunt substring checks kept
// behind named functions so the pipeline code never embeds them and they can
// be swapped without touching state-machine logic.
package policy

import (
	"strings"

	"github.com/selimd/admitflow/internal/app/models"
)

// rejection markers take precedence over clarification markers: a narrative
// containing both "fake" and "issue" classifies as rejected.
var (
	rejectMarkers        = []string{"reject", "invalid", "fake"}
	clarificationMarkers = []string{"inconsistency", "issue", "problem"}
)

// ClassifyVerification maps an oracle verification narrative to a document
// verification status. Matching is case-insensitive substring search.
func ClassifyVerification(narrative string) models.VerificationStatus {
	lowered := strings.ToLower(narrative)

	for _, marker := range rejectMarkers {
		if strings.Contains(lowered, marker) {
			return models.VerificationRejected
		}
	}

	for _, marker := range clarificationMarkers {
		if strings.Contains(lowered, marker) {
			return models.VerificationNeedsClarification
		}
	}

	return models.VerificationVerified
}

// RecommendationAccepts decides acceptance from a recommendation line:
// accepted iff the text contains "recommend" and does not contain "not",
// case-insensitive. Double negatives such as "not recommend against"
// classify as rejection; that behavior is inherited and kept for
// compatibility with existing evaluations.
func RecommendationAccepts(recommendation string) bool {
	lowered := strings.ToLower(recommendation)
	return strings.Contains(lowered, "recommend") && !strings.Contains(lowered, "not")
}

// DecisionAccepts maps a final-decision narrative to acceptance: accepted iff
// the text contains "accepted", case-insensitive.
func DecisionAccepts(narrative string) bool {
	return strings.Contains(strings.ToLower(narrative), "accepted")
}
