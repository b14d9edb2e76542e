package usecase

import "github.com/kirillkom/placement-predictor/internal/core/domain"

const (
	excellentGradeThreshold = 9.0
	excellentScoreThreshold = 75.0
	goodGradeThreshold      = 7.0
	goodScoreThreshold      = 60.0
)

// Classify maps a grade in [0,10] and an ATS score in [0,100] to one of the
// three placement outcomes. Both comparisons are inclusive.
func Classify(grade, atsScore float64) domain.Prediction {
	switch {
	case grade >= excellentGradeThreshold && atsScore >= excellentScoreThreshold:
		return domain.Prediction{
			Outcome:     domain.OutcomeExcellent,
			Message:     "Excellent profile! You're highly competitive for campus placements!",
			Competitive: true,
		}
	case grade >= goodGradeThreshold && atsScore >= goodScoreThreshold:
		return domain.Prediction{
			Outcome:     domain.OutcomeGoodChance,
			Message:     "Good chance! Keep your resume sharp and prepare for interviews.",
			Competitive: true,
		}
	default:
		return domain.Prediction{
			Outcome:     domain.OutcomeNeedsImprovement,
			Message:     "You can improve! Boost your resume and gain more experience to stand out.",
			Competitive: false,
		}
	}
}
