package model

// Letter grades and performance tiers are independent five-bucket
// classifications of an attempt's percentage score, both with inclusive
// lower bounds at 90/80/70/60. They are computed on read, never stored.

const (
	TierExcellent    = "excellent"
	TierGood         = "good"
	TierAverage      = "average"
	TierBelowAverage = "below_average"
	TierPoor         = "poor"
)

// LetterGrade maps a percentage score to a letter grade A-F.
func LetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// PerformanceTier maps a percentage score to a tier label.
func PerformanceTier(percentage float64) string {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 80:
		return TierGood
	case percentage >= 70:
		return TierAverage
	case percentage >= 60:
		return TierBelowAverage
	default:
		return TierPoor
	}
}

// Tiers lists all tier labels from best to worst, for building exhaustive
// performance distributions.
func Tiers() []string {
	return []string{TierExcellent, TierGood, TierAverage, TierBelowAverage, TierPoor}
}
