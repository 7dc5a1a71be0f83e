package pwgen

import "unicode/utf8"

// MaxStrength is the highest score AssessStrength returns.
const MaxStrength = 5

var strengthLabels = [MaxStrength]string{"Very Weak", "Weak", "Medium", "Strong", "Very Strong"}

// AssessStrength scores password from 0 to MaxStrength. An empty password
// scores 0. Otherwise one point is given for each of: at least 12
// characters, an uppercase letter, a lowercase letter, a digit, and any
// character outside [A-Za-z0-9]. This is a display heuristic only.
func AssessStrength(password string) int {
	if password == "" {
		return 0
	}
	var upper, lower, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	score := 0
	for _, ok := range []bool{utf8.RuneCountInString(password) >= 12, upper, lower, digit, other} {
		if ok {
			score++
		}
	}
	return score
}

// StrengthLabel returns the display label for score, or "" for a score of 0
// or one out of range.
func StrengthLabel(score int) string {
	if score < 1 || score > MaxStrength {
		return ""
	}
	return strengthLabels[score-1]
}
