package parse

import (
	"strings"

	"github.com/hupe1980/moodpanel/core"
)

// Routing decodes the moderator's between-rounds decision. Expected shape:
//
//	Continue: [Yes/No]
//	Target Experts: [comma-separated roles, or "All", or "None"]
//	Reason: [one sentence]
//
// The continue flag is true only when the Continue value mentions "yes".
// A target value mentioning "none" forces a stop regardless of the Continue
// line; "all" selects the whole roster. Otherwise each comma-separated token
// is matched against the roster by case-insensitive substring containment in
// either direction, and targets come back deduplicated in roster order. If
// decoding panics the discussion errs toward more debate: continue with the
// full roster.
func Routing(raw string, roster []string) (decision core.RoutingDecision) {
	defer func() {
		if recover() != nil {
			decision = core.RoutingDecision{Continue: true, Targets: append([]string{}, roster...)}
		}
	}()

	var (
		shouldContinue bool
		targets        []string
		reason         string
		noneSeen       bool
	)

	for _, line := range strings.Split(raw, "\n") {
		if value, ok := labelValue(line, "continue:"); ok {
			shouldContinue = strings.Contains(strings.ToLower(value), "yes")
		} else if value, ok := labelValue(line, "target experts:"); ok {
			lower := strings.ToLower(value)
			switch {
			case strings.Contains(lower, "none"):
				noneSeen = true
				targets = nil
			case strings.Contains(lower, "all"):
				targets = append([]string{}, roster...)
			default:
				targets = matchRoles(value, roster)
			}
		} else if value, ok := labelValue(line, "reason:"); ok {
			reason = value
		}
	}

	// "None" is an explicit stop signal and outranks a Yes on the
	// Continue line, wherever the two lines appear.
	if noneSeen {
		return core.RoutingDecision{Continue: false, Targets: []string{}, Reason: reason}
	}
	return core.RoutingDecision{Continue: shouldContinue, Targets: targets, Reason: reason}
}

// matchRoles resolves free-form role mentions against the configured roster.
// A roster role matches when it contains a mentioned token or a mentioned
// token contains it, ignoring case. The result preserves roster order and
// holds no duplicates.
func matchRoles(value string, roster []string) []string {
	mentions := strings.Split(value, ",")
	var matched []string
	for _, role := range roster {
		roleLower := strings.ToLower(role)
		for _, mention := range mentions {
			mentionLower := strings.ToLower(strings.TrimSpace(mention))
			if strings.Contains(roleLower, mentionLower) || strings.Contains(mentionLower, roleLower) {
				matched = append(matched, role)
				break
			}
		}
	}
	return matched
}
