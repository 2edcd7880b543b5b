// Package parse implements the two decoders that recover structured
// decisions from free-form panel text: Vote (mood + confidence + reasoning)
// and Routing (continue/stop + target roles). Responses follow an unenforced
// "Label: value" quasi-grammar, so both decoders are total functions: they
// always return a usable value, degrading to documented defaults when a label
// is absent, malformed or the whole response is unparseable. A decoding
// problem must never abort a running discussion.
package parse

import "strings"

// labelValue matches a "Label: value" line. The label (including its colon)
// is compared case-insensitively against the start of the whitespace-trimmed
// line; the first colon splits label from value. The trimmed value is
// returned.
func labelValue(line, label string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(label) || !strings.EqualFold(trimmed[:len(label)], label) {
		return "", false
	}
	_, value, found := strings.Cut(trimmed, ":")
	if !found {
		return "", false
	}
	return strings.TrimSpace(value), true
}
