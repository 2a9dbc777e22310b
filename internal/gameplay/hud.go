package gameplay

// ScoreFraction returns how full the score bar is: min(score/maxScore, 1).
// A non-positive maxScore yields a full bar once anything is scored.
func ScoreFraction(score, maxScore int) float64 {
	if score <= 0 {
		return 0
	}
	if maxScore <= 0 {
		return 1
	}
	f := float64(score) / float64(maxScore)
	if f > 1 {
		return 1
	}
	return f
}
