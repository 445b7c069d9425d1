package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxlens/internal/domain"
	"taxlens/internal/extraction"
)

func TestRegistry_EveryFieldHasRules(t *testing.T) {
	reg := extraction.NewRegistry()
	assert.ElementsMatch(t, domain.AllFieldNames, reg.Fields())
	for _, f := range domain.AllFieldNames {
		assert.NotEmpty(t, reg.Rules(f), "field %s has no rules", f)
	}
}

func TestRegistry_UnknownFieldYieldsEmptyList(t *testing.T) {
	reg := extraction.NewRegistry()
	assert.Empty(t, reg.Rules(domain.FieldName("no_such_field")))
}

func TestRegistry_FallbacksDeclaredAfterLabelledRules(t *testing.T) {
	// Declaration order encodes specificity: once a field's list reaches a
	// bare fallback, no labelled rule may follow it.
	reg := extraction.NewRegistry()
	for _, f := range reg.Fields() {
		seenFallback := false
		for _, r := range reg.Rules(f) {
			if r.Fallback() {
				seenFallback = true
				continue
			}
			assert.False(t, seenFallback, "field %s has a labelled rule after a fallback", f)
		}
	}
}

func TestRegistry_RuleDescriptionsUnique(t *testing.T) {
	reg := extraction.NewRegistry()
	seen := make(map[string]domain.FieldName)
	for _, f := range reg.Fields() {
		for _, r := range reg.Rules(f) {
			if prev, dup := seen[r.Description()]; dup {
				t.Errorf("rule description %q used by both %s and %s", r.Description(), prev, f)
			}
			seen[r.Description()] = f
		}
	}
}
