// Package callsign resolves an aircraft's owner country from its callsign
// using an ordered list of prefix rules. It is the fallback identity signal
// for aircraft whose transponder address is not in the registry.
package callsign

import (
	"strings"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// ErrDuplicatePrefix is returned when two rules share the same prefix.
var ErrDuplicatePrefix = errors.New("duplicate callsign prefix")

// ErrEmptyPrefix is returned for a rule with a blank prefix, which would match everything.
var ErrEmptyPrefix = errors.New("empty callsign prefix")

// Rule maps a callsign prefix to an owner country.
type Rule struct {
	Prefix  string `yaml:"prefix" json:"prefix"`
	Country string `yaml:"country" json:"country"`
}

// Matcher evaluates rules strictly in the order they were given.
// The first rule whose prefix starts the normalized callsign wins, so a
// shorter prefix listed earlier shadows a longer one listed later.
type Matcher struct {
	rules []Rule
}

// NewMatcher validates and normalizes rules (trim + uppercase prefix).
// Duplicate prefixes are rejected rather than letting one silently shadow the other.
func NewMatcher(rules []Rule) (*Matcher, error) {
	seen := make(map[string]int, len(rules))
	normalized := make([]Rule, 0, len(rules))

	for i, r := range rules {
		prefix := normalize(r.Prefix)
		if prefix == "" {
			return nil, errors.Wrapf(ErrEmptyPrefix, "rule %d (%s)", i, r.Country)
		}
		if first, dup := seen[prefix]; dup {
			return nil, errors.WithHintf(
				errors.Wrapf(ErrDuplicatePrefix, "%q: rule %d (%s) and rule %d (%s)",
					prefix, first, normalized[first].Country, i, r.Country),
				"keep the prefix only under the country that owns it")
		}
		seen[prefix] = i
		normalized = append(normalized, Rule{Prefix: prefix, Country: strings.TrimSpace(r.Country)})
	}

	return &Matcher{rules: normalized}, nil
}

// MustNewMatcher is NewMatcher for static tables; it panics on invalid rules.
func MustNewMatcher(rules []Rule) *Matcher {
	m, err := NewMatcher(rules)
	if err != nil {
		panic(err)
	}
	return m
}

// Match returns the country of the first rule whose prefix is a literal
// prefix of the normalized callsign.
func (m *Matcher) Match(callsign string) (string, bool) {
	if m == nil {
		return "", false
	}
	cs := normalize(callsign)
	if cs == "" {
		return "", false
	}
	for _, r := range m.rules {
		if strings.HasPrefix(cs, r.Prefix) {
			return r.Country, true
		}
	}
	return "", false
}

// Rules returns a copy of the rules in evaluation order.
func (m *Matcher) Rules() []Rule {
	if m == nil {
		return nil
	}
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Len returns the number of rules.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
