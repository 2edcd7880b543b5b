package parse

import (
	"strconv"
	"strings"

	"github.com/hupe1980/moodpanel/core"
)

// Vote decodes a panelist's closing-vote response. Expected shape:
//
//	Vote: [Happy/Neutral/Sad]
//	Confidence: [0-100]
//	Reasoning: [one or two sentences]
//
// Missing or malformed labels fall back to neutral mood, 0.5 confidence and,
// when no Reasoning line is found, the raw response as reasoning. A "happy"
// mention wins over "sad" when a response names both.
func Vote(role, raw string) (vote core.Vote) {
	defer func() {
		if recover() != nil {
			vote = core.Vote{Role: role, Mood: core.MoodNeutral, Confidence: 0.5, Reasoning: raw}
		}
	}()

	mood := core.MoodNeutral
	confidence := 0.5
	reasoning := ""

	for _, line := range strings.Split(raw, "\n") {
		if value, ok := labelValue(line, "vote:"); ok {
			lower := strings.ToLower(value)
			switch {
			case strings.Contains(lower, "happy"):
				mood = core.MoodHappy
			case strings.Contains(lower, "sad"):
				mood = core.MoodSad
			default:
				mood = core.MoodNeutral
			}
		} else if value, ok := labelValue(line, "confidence:"); ok {
			if pct, err := parsePercent(value); err == nil {
				confidence = pct / 100
			}
		} else if value, ok := labelValue(line, "reasoning:"); ok {
			reasoning = value
		}
	}

	if reasoning == "" {
		reasoning = raw
	}
	return core.Vote{Role: role, Mood: mood, Confidence: confidence, Reasoning: reasoning}
}

// parsePercent extracts the digits and periods from value and interprets them
// as a number clamped to [0, 100]. "around 85%" yields 85.
func parsePercent(value string) (float64, error) {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	pct, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, err
	}
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct, nil
}
