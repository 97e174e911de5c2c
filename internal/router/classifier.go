package router

import "strings"

// ClassifyFallback classifies a message by keyword scoring. It is the
// dependency-free bottom tier of intent resolution and never fails.
//
// Each intent scores one point per keyword found as a substring of the
// lowercased message. The intent with the strictly highest score wins; ties
// go to the first-declared intent in Intents. Policy, not accident: the
// declaration order in types.go is the tie-break.
func ClassifyFallback(message string) Intent {
	text := strings.ToLower(strings.TrimSpace(message))

	best := IntentOutOfScope
	bestScore := 0
	for _, intent := range Intents {
		score := 0
		for _, keyword := range intentKeywords[intent] {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = intent
			bestScore = score
		}
	}

	if bestScore == 0 {
		return IntentOutOfScope
	}
	return best
}

// ParseIntent normalizes a raw model answer into an Intent. Exact match
// first, then substring match in either direction against the known intent
// names; anything else maps to out_of_scope.
func ParseIntent(raw string) Intent {
	intent, ok := parseIntent(raw)
	if !ok {
		return IntentOutOfScope
	}
	return intent
}

// parseIntent reports whether the raw answer actually named an intent, so the
// resolver can tell "model said out_of_scope" apart from "answer was garbage".
func parseIntent(raw string) (Intent, bool) {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
	if cleaned == "" {
		return IntentOutOfScope, false
	}

	if candidate := Intent(cleaned); candidate.Valid() {
		return candidate, true
	}

	for _, intent := range Intents {
		name := string(intent)
		if strings.Contains(cleaned, name) || strings.Contains(name, cleaned) {
			return intent, true
		}
	}

	return IntentOutOfScope, false
}
