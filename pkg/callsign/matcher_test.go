package callsign

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// TestMatchOrder tests that rules are evaluated in list order, not by length or alphabet.
func TestMatchOrder(t *testing.T) {
	m, err := NewMatcher([]Rule{
		{Prefix: "FA", Country: "CountryX"},
		{Prefix: "FAF", Country: "CountryY"},
	})
	require.NoError(t, err)

	country, ok := m.Match("FAF123")
	require.True(t, ok)
	assert.Equal(t, "CountryX", country)

	reversed, err := NewMatcher([]Rule{
		{Prefix: "FAF", Country: "CountryY"},
		{Prefix: "FA", Country: "CountryX"},
	})
	require.NoError(t, err)

	country, ok = reversed.Match("FAF123")
	require.True(t, ok)
	assert.Equal(t, "CountryY", country)
}

// TestMatchNormalization tests trimming and case folding of callsigns and prefixes.
func TestMatchNormalization(t *testing.T) {
	m := MustNewMatcher([]Rule{{Prefix: " sam ", Country: "USA"}})

	tests := []struct {
		name     string
		callsign string
		country  string
		ok       bool
	}{
		{"Padded upper", "SAM44   ", "USA", true},
		{"Lower", "sam44", "USA", true},
		{"Leading space", "  SAM1", "USA", true},
		{"Not a prefix", "XSAM1", "", false},
		{"Blank", "        ", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			country, ok := m.Match(tt.callsign)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.country, country)
		})
	}

	assert.Equal(t, "SAM", m.Rules()[0].Prefix)
}

// TestNewMatcherRejectsInvalidRules tests duplicate and empty prefix handling.
func TestNewMatcherRejectsInvalidRules(t *testing.T) {
	t.Run("Duplicate prefix across countries", func(t *testing.T) {
		_, err := NewMatcher([]Rule{
			{Prefix: "FAF", Country: "France"},
			{Prefix: "faf", Country: "Finland"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicatePrefix))
		assert.Contains(t, err.Error(), "France")
		assert.Contains(t, err.Error(), "Finland")
	})

	t.Run("Empty prefix", func(t *testing.T) {
		_, err := NewMatcher([]Rule{{Prefix: "  ", Country: "Anywhere"}})
		assert.True(t, errors.Is(err, ErrEmptyPrefix))
	})

	t.Run("MustNewMatcher panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewMatcher([]Rule{{Prefix: "A", Country: "X"}, {Prefix: "A", Country: "Y"}})
		})
	})
}

// TestDefaultRules tests the built-in table.
func TestDefaultRules(t *testing.T) {
	m := Default()
	assert.Equal(t, len(DefaultRules), m.Len())

	tests := []struct {
		callsign string
		country  string
		ok       bool
	}{
		{"SAM44", "USA", true},
		{"RSD074", "Russia", true},
		{"FAF0401", "France", true},
		{"FINNAF1", "Finland", true},
		{"GAFTT12", "Germany", true},
		{"CCA101", "China", true},
		{"KRF01", "UK", true},
		{"TURBO1", "", false},
		{"RUS123", "", false},
		{"N12345", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.callsign, func(t *testing.T) {
			country, ok := m.Match(tt.callsign)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.country, country)
		})
	}
}

// TestNilMatcher tests that a nil matcher never matches.
func TestNilMatcher(t *testing.T) {
	var m *Matcher
	_, ok := m.Match("SAM1")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

// TestLoadMatcher tests YAML rule files.
func TestLoadMatcher(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`rules:
  - prefix: FA
    country: CountryX
  - prefix: FAF
    country: CountryY
`), 0644))

	m, err := LoadMatcher(good)
	require.NoError(t, err)
	assert.Equal(t, []Rule{{"FA", "CountryX"}, {"FAF", "CountryY"}}, m.Rules())

	country, _ := m.Match("faf1")
	assert.Equal(t, "CountryX", country)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte(`rules:
  - {prefix: FAF, country: France}
  - {prefix: FAF, country: Finland}
`), 0644))

	_, err = LoadMatcher(dup)
	assert.True(t, errors.Is(err, ErrDuplicatePrefix))

	_, err = LoadMatcher(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseRules([]byte("rules: [unterminated"))
	assert.Error(t, err)
}
