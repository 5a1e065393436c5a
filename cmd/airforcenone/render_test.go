package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/classify"
	"github.com/unklstewy/airforcenone/pkg/registry"
)

func floatPtr(f float64) *float64 {
	return &f
}

func testReport() classify.Report {
	policy := classify.NewCountryPolicy(classify.DefaultPriorityCountries)
	list := []classify.Aircraft{
		{
			ICAO: "ae001f", Callsign: "SAM28000", Country: "USA", Description: "Air Force One",
			Registration: "82-8000", TypeCode: "VC25", Match: classify.MatchRegistry, Tier: classify.TierPriority,
			Altitude: adsb.Altitude{Feet: 35000, Reported: true}, GroundSpeed: floatPtr(480), Heading: floatPtr(92),
			OverCountry: "Germany",
		},
		{
			ICAO: "3b7541", Callsign: "CTM1002", Country: "France", Description: "VIP Flight (CTM1002)",
			Match: classify.MatchCallsign, Tier: classify.TierStandard,
			Altitude: adsb.Altitude{OnGround: true},
		},
	}
	return classify.Report{
		Selector:  adsb.Military().String(),
		FetchedAt: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		Aircraft:  list,
		Summary:   classify.Summarize(policy, 40, 3, list),
	}
}

// TestFormatAltitude tests the ground sentinel and unreported altitudes.
func TestFormatAltitude(t *testing.T) {
	assert.Equal(t, "GROUND", formatAltitude(adsb.Altitude{OnGround: true}))
	assert.Equal(t, "N/A", formatAltitude(adsb.Altitude{}))
	assert.Equal(t, "0 ft", formatAltitude(adsb.Altitude{Reported: true}))
	assert.Equal(t, "35000 ft", formatAltitude(adsb.Altitude{Feet: 35000, Reported: true}))
}

// TestFormatHelpers tests the small cell formatters.
func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "N/A", formatFloat(nil, "%.0f kt"))
	assert.Equal(t, "450 kt", formatFloat(floatPtr(450.4), "%.0f kt"))
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "SAM1", orNA("SAM1"))
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

// TestRenderReport tests that a report shows its aircraft and summary.
func TestRenderReport(t *testing.T) {
	r := testReport()
	policy := classify.NewCountryPolicy(classify.DefaultPriorityCountries)

	out := renderReport(r, policy)

	assert.Contains(t, out, "2 Presidential/VIP aircraft detected")
	assert.Contains(t, out, "AE001F")
	assert.Contains(t, out, "Air Force One")
	assert.Contains(t, out, "GROUND")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "Total military aircraft tracked: 40")
	assert.Contains(t, out, "PRIORITY ALERT")
	assert.NotContains(t, out, "Source fault")
}

// TestRenderReportEmpty tests the no-match and fault banners.
func TestRenderReportEmpty(t *testing.T) {
	policy := classify.NewCountryPolicy(classify.DefaultPriorityCountries)
	r := classify.Report{
		Selector: adsb.Military().String(),
		Error:    "HTTP 503",
		Summary:  classify.Summarize(policy, 0, 0, nil),
		Sample: []classify.Aircraft{
			{ICAO: "abcdef", Country: classify.UnknownCountry, Description: classify.UnknownDescription, Match: classify.MatchNone},
		},
	}

	out := renderReport(r, policy)

	assert.Contains(t, out, "Source fault: HTTP 503")
	assert.Contains(t, out, "No presidential/VIP aircraft currently detected.")
	assert.Contains(t, out, "Sample of active military aircraft")
	assert.Contains(t, out, "ABCDEF")
	assert.Contains(t, out, "No priority aircraft currently detected")
}

// TestRenderCategoryHeader tests the group column under the category policy.
func TestRenderCategoryHeader(t *testing.T) {
	policy := classify.NewCategoryPolicy(classify.DefaultTopCategories, classify.DefaultHighCategories, classify.DefaultMilitaryCategories)
	list := []classify.Aircraft{{ICAO: "ae001f", Category: "Governments", Tier: classify.TierTop}}

	out := renderTable(list, policy)

	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Governments")
}

// TestWriteReportJSON tests the machine-readable output.
func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	policy := classify.NewCountryPolicy(classify.DefaultPriorityCountries)

	require.NoError(t, writeReport(&buf, testReport(), policy, true))

	var decoded struct {
		Aircraft []struct {
			ICAO  string `json:"icao"`
			Match string `json:"match"`
			Tier  string `json:"tier"`
		} `json:"aircraft"`
		Summary struct {
			Scanned int `json:"scanned"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Aircraft, 2)
	assert.Equal(t, "ae001f", decoded.Aircraft[0].ICAO)
	assert.Equal(t, "registry", decoded.Aircraft[0].Match)
	assert.Equal(t, "priority", decoded.Aircraft[0].Tier)
	assert.Equal(t, 40, decoded.Summary.Scanned)
}

// TestCountByCategory tests catalog stats ordering.
func TestCountByCategory(t *testing.T) {
	counts := countByCategory([]registry.Record{
		{ICAO: "000001", Category: "USAF"},
		{ICAO: "000002", Category: "Governments"},
		{ICAO: "000003", Category: "USAF"},
		{ICAO: "000004"},
	})

	require.Len(t, counts, 3)
	assert.Equal(t, categoryCount{"USAF", 2}, counts[0])
	assert.Equal(t, categoryCount{"(none)", 1}, counts[1])
	assert.Equal(t, categoryCount{"Governments", 1}, counts[2])
}
