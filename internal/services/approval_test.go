package services

import (
	"testing"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEvaluateApproval_EmptyProfile(t *testing.T) {
	score, recommendation, criteria := EvaluateApproval(&domain.RecruiterProfile{})

	assert.Equal(t, 0, score)
	assert.Equal(t, RecommendationWeak, recommendation)
	require.Len(t, criteria, len(ApprovalCriteria))
	for _, c := range criteria {
		assert.False(t, c.Passed, c.Key)
	}
}

func TestEvaluateApproval_CompleteProfile(t *testing.T) {
	profile := &domain.RecruiterProfile{
		CompanyName:  "Acme Corp",
		ContactEmail: "hr@acme.example",
		Description:  strPtr("We make everything"),
		Website:      strPtr("https://acme.example"),
		LogoURL:      strPtr("https://cdn.example/logo.jpg"),
	}

	score, recommendation, criteria := EvaluateApproval(profile)

	assert.Equal(t, 100, score)
	assert.Equal(t, RecommendationStrong, recommendation)
	for _, c := range criteria {
		assert.True(t, c.Passed, c.Key)
	}
}

func TestEvaluateApproval_PartialProfile(t *testing.T) {
	// 3 of 5 criteria pass, each weighted 20: score 60, Moderate.
	profile := &domain.RecruiterProfile{
		CompanyName:  "Acme Corp",
		ContactEmail: "hr@acme.example",
		Website:      strPtr("https://acme.example"),
	}

	score, recommendation, _ := EvaluateApproval(profile)

	assert.Equal(t, 60, score)
	assert.Equal(t, RecommendationModerate, recommendation)
}

func TestEvaluateApproval_WhitespaceDoesNotCount(t *testing.T) {
	profile := &domain.RecruiterProfile{
		CompanyName: "   ",
		Description: strPtr("  "),
	}

	score, _, criteria := EvaluateApproval(profile)

	assert.Equal(t, 0, score)
	for _, c := range criteria {
		assert.False(t, c.Passed, c.Key)
	}
}

func TestEvaluateApproval_Deterministic(t *testing.T) {
	profile := &domain.RecruiterProfile{
		CompanyName:  "Acme Corp",
		ContactEmail: "hr@acme.example",
	}

	firstScore, firstRec, firstCriteria := EvaluateApproval(profile)
	secondScore, secondRec, secondCriteria := EvaluateApproval(profile)

	assert.Equal(t, firstScore, secondScore)
	assert.Equal(t, firstRec, secondRec)
	assert.Equal(t, firstCriteria, secondCriteria)
}

func TestRecommendation_Thresholds(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, RecommendationWeak},
		{49, RecommendationWeak},
		{50, RecommendationModerate},
		{79, RecommendationModerate},
		{80, RecommendationStrong},
		{100, RecommendationStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Recommendation(tt.score), "score %d", tt.score)
	}
}
