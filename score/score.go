// Package score turns a set of confidence-weighted votes into the panel's
// final mood and a 0-100 score.
package score

import "github.com/hupe1980/moodpanel/core"

// Mood anchor points on the 0-100 scale.
const (
	AnchorHappy   = 100.0
	AnchorNeutral = 50.0
	AnchorSad     = 0.0
)

// Classification thresholds. A score at or above ThresholdHappy reads as
// happy, at or above ThresholdNeutral as neutral, anything below as sad.
const (
	ThresholdHappy   = 67.0
	ThresholdNeutral = 34.0
)

// Anchor maps a mood to its scale value. Unrecognized moods sit in the
// middle of the scale.
func Anchor(mood core.Mood) float64 {
	switch mood {
	case core.MoodHappy:
		return AnchorHappy
	case core.MoodSad:
		return AnchorSad
	default:
		return AnchorNeutral
	}
}

// Classify maps a 0-100 score onto the three-way mood verdict.
func Classify(score float64) core.Mood {
	switch {
	case score >= ThresholdHappy:
		return core.MoodHappy
	case score >= ThresholdNeutral:
		return core.MoodNeutral
	default:
		return core.MoodSad
	}
}

// Aggregate reduces the votes to a final verdict: each vote contributes its
// mood's anchor value weighted by the vote's confidence, and the weighted
// mean is classified into a mood. Every panelist carries equal standing;
// only confidence shifts the weighting. With no votes, or only zero
// confidence ones, the panel lands on neutral at 50.
func Aggregate(votes []core.Vote) (core.Mood, float64) {
	var weightedSum, totalWeight float64
	for _, vote := range votes {
		weightedSum += Anchor(vote.Mood) * vote.Confidence
		totalWeight += vote.Confidence
	}
	if totalWeight == 0 {
		return core.MoodNeutral, AnchorNeutral
	}

	score := weightedSum / totalWeight
	return Classify(score), score
}
