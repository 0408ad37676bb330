package services

import (
	"math"
	"strings"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
)

const (
	RecommendationStrong   = "Strong"
	RecommendationModerate = "Moderate"
	RecommendationWeak     = "Weak"
)

type ApprovalCriterion struct {
	Key    string
	Label  string
	Weight int
	Passed func(p *domain.RecruiterProfile) bool
}

// ApprovalCriteria is the fixed, ordered completeness check an admin sees for
// every recruiter. The score is advisory only; it never auto-approves.
var ApprovalCriteria = []ApprovalCriterion{
	{Key: "has_company_name", Label: "Company name provided", Weight: 20,
		Passed: func(p *domain.RecruiterProfile) bool { return strings.TrimSpace(p.CompanyName) != "" }},
	{Key: "has_contact_email", Label: "Contact email provided", Weight: 20,
		Passed: func(p *domain.RecruiterProfile) bool { return strings.TrimSpace(p.ContactEmail) != "" }},
	{Key: "has_description", Label: "Company description provided", Weight: 20,
		Passed: func(p *domain.RecruiterProfile) bool {
			return p.Description != nil && strings.TrimSpace(*p.Description) != ""
		}},
	{Key: "has_website", Label: "Website provided", Weight: 20,
		Passed: func(p *domain.RecruiterProfile) bool {
			return p.Website != nil && strings.TrimSpace(*p.Website) != ""
		}},
	{Key: "has_logo", Label: "Company logo uploaded", Weight: 20,
		Passed: func(p *domain.RecruiterProfile) bool {
			return p.LogoURL != nil && strings.TrimSpace(*p.LogoURL) != ""
		}},
}

// EvaluateApproval scores a recruiter profile against ApprovalCriteria.
// score = round(100 * passed weight / total weight), clamped to [0, 100].
func EvaluateApproval(p *domain.RecruiterProfile) (int, string, []dto.CriterionResult) {
	total := 0
	passed := 0
	results := make([]dto.CriterionResult, 0, len(ApprovalCriteria))

	for _, c := range ApprovalCriteria {
		ok := c.Passed(p)
		total += c.Weight
		if ok {
			passed += c.Weight
		}
		results = append(results, dto.CriterionResult{
			Key:    c.Key,
			Label:  c.Label,
			Weight: c.Weight,
			Passed: ok,
		})
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(passed) / float64(total)))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, Recommendation(score), results
}

func Recommendation(score int) string {
	switch {
	case score >= 80:
		return RecommendationStrong
	case score >= 50:
		return RecommendationModerate
	default:
		return RecommendationWeak
	}
}
