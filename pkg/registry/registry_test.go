package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// TestValidIdentifier tests the 6-hex-character identifier shape.
func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"ae001f", true},
		{"155026", true},
		{"AE001F", false}, // must be normalized first
		{"ae001", false},
		{"ae001f0", false},
		{"ae00zf", false},
		{"", false},
		{"~12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidIdentifier(tt.input))
		})
	}
}

// TestRegistryLookup tests exact-match lookup.
func TestRegistryLookup(t *testing.T) {
	reg := New([]Record{
		{ICAO: "AE001F ", Country: "USA", Description: "Air Force One"},
		{ICAO: "bad", Country: "Nowhere"},
		{ICAO: "155026", Country: "Russia", Description: "IL-96-300PU"},
		{ICAO: "155026", Country: "Russia", Description: "IL-96-300PU Presidential"},
	})

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 1, reg.Skipped())

	rec, ok := reg.Lookup("ae001f")
	require.True(t, ok)
	assert.Equal(t, "USA", rec.Country)
	assert.Equal(t, "ae001f", rec.ICAO, "stored identifier is normalized")

	rec, ok = reg.Lookup(" AE001F")
	require.True(t, ok, "lookup normalizes its input")

	rec, ok = reg.Lookup("155026")
	require.True(t, ok)
	assert.Equal(t, "IL-96-300PU Presidential", rec.Description, "later duplicate replaces earlier")

	_, ok = reg.Lookup("ae001")
	assert.False(t, ok, "no prefix matching")

	assert.Equal(t, []string{"Russia", "USA"}, reg.Countries())
}

// TestNilRegistry tests that a nil registry acts as empty.
func TestNilRegistry(t *testing.T) {
	var reg *Registry

	_, ok := reg.Lookup("ae001f")
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
	assert.Nil(t, reg.Records())
	assert.Zero(t, Empty().Len())
}

// TestBuiltin tests the embedded table.
func TestBuiltin(t *testing.T) {
	reg := Builtin()

	assert.Zero(t, reg.Skipped(), "every built-in identifier is well formed")
	assert.Equal(t, len(builtinRecords), reg.Len(), "built-in identifiers are unique")

	rec, ok := reg.Lookup("ae001f")
	require.True(t, ok)
	assert.Equal(t, "USA", rec.Country)
	assert.Equal(t, "Air Force One (VC-25A)", rec.Description)
	assert.Equal(t, "VC25", rec.TypeCode)

	assert.Contains(t, reg.Countries(), "North Korea")
}

// TestRecordLabel tests description/operator fallback.
func TestRecordLabel(t *testing.T) {
	assert.Equal(t, "Air Force One", Record{Description: "Air Force One", Operator: "USAF"}.Label())
	assert.Equal(t, "USAF", Record{Operator: "USAF"}.Label())
}

const sampleCatalog = `$ICAO,$Registration,$Operator,$Type,$ICAO Type,#CMPG,$Tag 1,$#Tag 2,$#Tag 3,Category,$#Link
AE001F,82-8000,United States Air Force,Boeing VC-25A,B742,Mil,Air Force One,Presidential,,Governments,https://en.wikipedia.org/wiki/VC-25
zz0000,N1,Broken Row,,,Civ,,,,Distinctive,
0d0abc,XC-LOK,Mexican Government,Boeing 787-8,B788,Gov,,,,Dictator Alert,
12345,X,Too Short,,,,,,,,
3c4b26,10+21,German Air Force,Airbus A350-941,A359,Mil,Konrad Adenauer,,,GAF,
`

// TestReadCatalog tests header-driven CSV parsing.
func TestReadCatalog(t *testing.T) {
	records, stats, err := ReadCatalog(strings.NewReader(sampleCatalog), nil)

	require.NoError(t, err)
	assert.Equal(t, CatalogStats{Rows: 5, Loaded: 3, Skipped: 2}, stats)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "ae001f", first.ICAO)
	assert.Equal(t, "82-8000", first.Registration)
	assert.Equal(t, "United States Air Force", first.Operator)
	assert.Equal(t, "B742", first.ICAOType)
	assert.Equal(t, "Mil", first.CMPG)
	assert.Equal(t, "Governments", first.Category)
	assert.Equal(t, []string{"Air Force One", "Presidential"}, first.Tags)
	assert.Equal(t, "https://en.wikipedia.org/wiki/VC-25", first.Link)
	assert.Equal(t, "United States Air Force", first.Label())

	assert.Equal(t, "Dictator Alert", records[1].Category)
	assert.Equal(t, "GAF", records[2].Category)
}

// TestReadCatalogColumnOrder tests that columns are located by header, not position.
func TestReadCatalogColumnOrder(t *testing.T) {
	csv := "Category,$Operator,$ICAO\nGovernments,Royal Air Force,43C6F0\n"

	records, stats, err := ReadCatalog(strings.NewReader(csv), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, "43c6f0", records[0].ICAO)
	assert.Equal(t, "Royal Air Force", records[0].Operator)
	assert.Equal(t, "Governments", records[0].Category)
}

// TestReadCatalogFaults tests catalog load faults.
func TestReadCatalogFaults(t *testing.T) {
	t.Run("Missing identifier column", func(t *testing.T) {
		_, _, err := ReadCatalog(strings.NewReader("$Registration,Category\nN1,Distinctive\n"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCatalogLoad))
	})

	t.Run("Empty input", func(t *testing.T) {
		_, _, err := ReadCatalog(strings.NewReader(""), nil)
		assert.True(t, errors.Is(err, ErrCatalogLoad))
	})

	t.Run("Missing file yields an empty registry and a fault", func(t *testing.T) {
		reg, _, err := FromCatalog(filepath.Join(t.TempDir(), "missing.csv"), nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCatalogLoad))
		require.NotNil(t, reg)
		assert.Zero(t, reg.Len())
	})
}

// TestFromCatalog tests loading a registry from disk.
func TestFromCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane-alert-db.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	reg, stats, err := FromCatalog(path, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Loaded)
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"Dictator Alert", "GAF", "Governments"}, reg.Categories())
}
