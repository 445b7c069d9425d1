package extraction

import (
	"strings"

	"taxlens/internal/domain"
)

// Match is one scored rule hit for a field.
type Match struct {
	Value      string
	Rule       Rule
	Confidence float64
}

// betterThan is the match comparison policy: a candidate only displaces the
// incumbent when its confidence is STRICTLY greater. Equal scores keep the
// incumbent, so with rules evaluated in registry order, ties always go to
// the earlier-declared (more specific) rule rather than a later fallback.
func betterThan(candidate, incumbent *Match) bool {
	if incumbent == nil {
		return true
	}
	return candidate.Confidence > incumbent.Confidence
}

// MatchField evaluates every rule for the field against normalized text and
// returns the best-scoring match, or nil when no rule fires. Each rule
// contributes only its first textual occurrence; for bare fallback patterns
// this is a known source of false positives (any 6-digit number can satisfy
// a postal-code fallback), which is why fallback hits are flagged in the
// result metadata.
func MatchField(reg *Registry, field domain.FieldName, text string) *Match {
	var best *Match
	for _, rule := range reg.Rules(field) {
		sub := rule.re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		value := sub[0]
		if rule.group > 0 && rule.group < len(sub) && sub[rule.group] != "" {
			value = sub[rule.group]
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		candidate := &Match{
			Value:      value,
			Rule:       rule,
			Confidence: Score(field, value),
		}
		if betterThan(candidate, best) {
			best = candidate
		}
	}
	return best
}
