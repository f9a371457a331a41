package utils

import "errors"

// WeeklyRisk bands a weekly drink count against the UK CMO low-risk
// guideline (14 units/week, spread over 3+ days). Counts here are standard
// drinks, which the app treats as roughly one unit each.
func WeeklyRisk(drinksPerWeek int) (string, error) {
	if drinksPerWeek < 0 {
		return "", errors.New("drink count must be >= 0")
	}
	switch {
	case drinksPerWeek == 0:
		return "Alcohol free", nil
	case drinksPerWeek <= 14:
		return "Low risk", nil
	case drinksPerWeek <= 35:
		return "Increasing risk", nil
	default:
		return "High risk", nil
	}
}
