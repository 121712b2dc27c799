// Package domain holds DTOs for the per-user stats contract
package domain

// UserStats aggregates a user's ideas. AverageScore counts unvalidated
// ideas as zero, matching how the dashboard has always framed progress
type UserStats struct {
	TotalIdeas          int64  `json:"total_ideas" example:"4"`
	AverageScore        int    `json:"average_score" example:"68"`
	HighImpactIdeas     int64  `json:"high_impact_ideas" example:"2"`
	SustainabilityLevel string `json:"sustainability_level" example:"Advanced"`
}

// SustainabilityLevel buckets an average score into a named tier
func SustainabilityLevel(avg int) string {
	switch {
	case avg >= 80:
		return "Expert"
	case avg >= 60:
		return "Advanced"
	case avg >= 40:
		return "Intermediate"
	default:
		return "Beginner"
	}
}
