// Package adsb models the military aircraft feed published by ADSB.One and
// provides a rate-limited client for it.
package adsb

import (
	"strings"
)

// GroundSentinel is the value the feed reports in alt_baro for aircraft on the ground.
const GroundSentinel = "ground"

// Position is a WGS84 position in decimal degrees.
type Position struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Altitude is a barometric altitude report.
// OnGround is set when the feed sent the ground sentinel; Feet is then zero
// and must not be read as "airborne at zero feet".
type Altitude struct {
	Feet     float64 `json:"feet,omitempty"`
	OnGround bool    `json:"on_ground"`
	Reported bool    `json:"reported"`
}

// Airborne returns the altitude in feet when the aircraft reported a numeric
// altitude. ok is false for on-ground or unreported altitudes.
func (a Altitude) Airborne() (feet float64, ok bool) {
	if !a.Reported || a.OnGround {
		return 0, false
	}
	return a.Feet, true
}

// Track is one aircraft observation from a single poll of the feed.
// Optional numeric fields are pointers: nil means "not reported", never zero.
type Track struct {
	// ICAO is the 24-bit transponder address as lowercase hex (e.g., "ae001f")
	ICAO string

	// Callsign as broadcast, possibly space padded or empty
	Callsign string

	// Registration and TypeCode as reported by the feed (empty if absent)
	Registration string
	TypeCode     string

	// Position is nil when the feed has no position for the aircraft
	Position *Position

	Altitude Altitude

	// GroundSpeed in knots
	GroundSpeed *float64

	// Heading is the ground track in degrees (0-359)
	Heading *float64

	// VerticalRate in feet per minute (positive = climbing)
	VerticalRate *float64

	Squawk string

	// SeenSeconds is the age of the last message in seconds
	SeenSeconds *float64
}

// OnGround reports whether the feed flagged the aircraft as on the ground.
func (t Track) OnGround() bool {
	return t.Altitude.OnGround
}

// NormalizedCallsign returns the callsign trimmed and uppercased.
func (t Track) NormalizedCallsign() string {
	return NormalizeCallsign(t.Callsign)
}

// NormalizeCallsign trims whitespace and uppercases a callsign.
func NormalizeCallsign(callsign string) string {
	return strings.ToUpper(strings.TrimSpace(callsign))
}

// Selector chooses which query the source issues.
// The zero value selects the bulk military feed.
type Selector struct {
	// Hexes restricts the query to specific ICAO addresses
	Hexes []string
}

// Military selects every military/government aircraft currently tracked.
func Military() Selector {
	return Selector{}
}

// ByHex selects specific aircraft by ICAO address.
func ByHex(hexes ...string) Selector {
	normalized := make([]string, 0, len(hexes))
	for _, h := range hexes {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			normalized = append(normalized, h)
		}
	}
	return Selector{Hexes: normalized}
}

// IsMilitary reports whether the selector targets the bulk military query.
func (s Selector) IsMilitary() bool {
	return len(s.Hexes) == 0
}

// String describes the selector for logs.
func (s Selector) String() string {
	if s.IsMilitary() {
		return "mil"
	}
	return "hex/" + strings.Join(s.Hexes, ",")
}
