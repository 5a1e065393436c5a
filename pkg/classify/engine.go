// Package classify turns a poll snapshot into an ordered list of identified
// VIP, government and military aircraft.
//
// Identity is resolved registry first (exact ICAO address), then by callsign
// prefix. Each identified aircraft gets an overflight country and a tier,
// and the list is stably sorted by tier, group and label.
package classify

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/callsign"
	"github.com/unklstewy/airforcenone/pkg/geo"
	"github.com/unklstewy/airforcenone/pkg/registry"
)

// MatchSource records which signal identified an aircraft.
type MatchSource string

const (
	MatchRegistry MatchSource = "registry"
	MatchCallsign MatchSource = "callsign"
	MatchNone     MatchSource = "none"
)

// Placeholders for sample rows, which match neither signal.
const (
	UnknownCountry     = "Unknown"
	UnknownDescription = "Military Aircraft"
)

// Aircraft is a classified aircraft: live kinematics merged with catalog identity.
type Aircraft struct {
	ICAO         string `json:"icao"`
	Callsign     string `json:"callsign,omitempty"`
	Registration string `json:"registration,omitempty"`
	TypeCode     string `json:"type,omitempty"`

	Country     string      `json:"country,omitempty"`
	Description string      `json:"description,omitempty"`
	Operator    string      `json:"operator,omitempty"`
	Category    string      `json:"category,omitempty"`
	CMPG        string      `json:"cmpg,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Link        string      `json:"link,omitempty"`
	Match       MatchSource `json:"match"`
	Tier        Tier        `json:"tier"`

	Position     *adsb.Position `json:"position,omitempty"`
	Altitude     adsb.Altitude  `json:"altitude"`
	GroundSpeed  *float64       `json:"ground_speed,omitempty"`
	Heading      *float64       `json:"heading,omitempty"`
	VerticalRate *float64       `json:"vertical_rate,omitempty"`
	Squawk       string         `json:"squawk,omitempty"`
	SeenSeconds  *float64       `json:"seen,omitempty"`

	// OverCountry is empty when the position is unknown or unresolvable
	OverCountry string `json:"over_country"`
}

// OnGround reports the ground sentinel.
func (a Aircraft) OnGround() bool {
	return a.Altitude.OnGround
}

// Label is the description, falling back to the operator.
func (a Aircraft) Label() string {
	if a.Description != "" {
		return a.Description
	}
	return a.Operator
}

// Source produces snapshots. *adsb.RateLimitedSource implements it.
type Source interface {
	Fetch(ctx context.Context, sel adsb.Selector) adsb.Snapshot
}

// Engine classifies snapshots. It is safe for concurrent use when its
// resolver cache is (both geo caches are).
type Engine struct {
	registry   *registry.Registry
	matcher    *callsign.Matcher
	resolver   *geo.Resolver
	policy     Policy
	sampleSize int
	logger     *zap.SugaredLogger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithResolver enables overflight-country enrichment.
func WithResolver(r *geo.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithPolicy sets the tier policy (default: country policy with default priority countries).
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithSampleSize makes Run include the first n raw tracks when nothing is identified.
func WithSampleSize(n int) Option {
	return func(e *Engine) { e.sampleSize = n }
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine. A nil registry or matcher disables that signal.
func NewEngine(reg *registry.Registry, matcher *callsign.Matcher, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		matcher:  matcher,
		policy:   NewCountryPolicy(nil),
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the tier policy in use.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Registry returns the registry in use (possibly empty).
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Classify identifies, enriches, tiers and sorts one snapshot's tracks.
// The result is never nil. A track is emitted at most once per call,
// from its first occurrence; unidentified tracks are dropped.
func (e *Engine) Classify(tracks []adsb.Track) []Aircraft {
	out := make([]Aircraft, 0)
	seen := make(map[string]struct{}, len(tracks))

	for _, t := range tracks {
		icao := registry.NormalizeIdentifier(t.ICAO)
		if _, dup := seen[icao]; dup {
			continue
		}

		if rec, ok := e.registry.Lookup(icao); ok {
			seen[icao] = struct{}{}
			out = append(out, fromRecord(t, rec))
			continue
		}

		cs := t.NormalizedCallsign()
		if country, ok := e.matcher.Match(cs); ok {
			seen[icao] = struct{}{}
			a := fromTrack(t, MatchCallsign)
			a.Country = country
			a.Description = fmt.Sprintf("VIP Flight (%s)", cs)
			out = append(out, a)
		}
	}

	e.finish(out)
	return out
}

// Sample renders the first n tracks as unidentified rows, for display when
// nothing in a snapshot is identified.
func (e *Engine) Sample(tracks []adsb.Track, n int) []Aircraft {
	if n < 0 {
		n = 0
	}
	if n > len(tracks) {
		n = len(tracks)
	}
	out := make([]Aircraft, 0, n)
	for _, t := range tracks[:n] {
		a := fromTrack(t, MatchNone)
		a.Country = UnknownCountry
		a.Description = UnknownDescription
		out = append(out, a)
	}
	e.finish(out)
	return out
}

// finish enriches, tiers and sorts in place.
func (e *Engine) finish(list []Aircraft) {
	for i := range list {
		a := &list[i]
		if e.resolver != nil && a.Position != nil {
			a.OverCountry = e.resolver.Resolve(a.Position.Latitude, a.Position.Longitude)
		}
		a.Tier = e.policy.Tier(a)
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := &list[i], &list[j]
		if ra, rb := e.policy.Rank(a.Tier), e.policy.Rank(b.Tier); ra != rb {
			return ra < rb
		}
		if ga, gb := e.policy.Group(a), e.policy.Group(b); ga != gb {
			return ga < gb
		}
		return a.Label() < b.Label()
	})
}

// Report is the outcome of one poll cycle.
type Report struct {
	Selector  string     `json:"selector"`
	FetchedAt time.Time  `json:"fetched_at"`
	Aircraft  []Aircraft `json:"aircraft"`
	Sample    []Aircraft `json:"sample,omitempty"`
	Summary   Summary    `json:"summary"`

	// Fault is the recovered source fault, if any
	Fault error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// Run fetches one snapshot and classifies it. A source fault yields an
// empty list and is reported in Report.Fault.
func (e *Engine) Run(ctx context.Context, src Source, sel adsb.Selector) Report {
	snap := src.Fetch(ctx, sel)
	aircraft := e.Classify(snap.Tracks)

	report := Report{
		Selector:  sel.String(),
		FetchedAt: snap.FetchedAt,
		Aircraft:  aircraft,
		Summary:   Summarize(e.policy, len(snap.Tracks), e.registry.Len(), aircraft),
		Fault:     snap.Fault,
	}
	if snap.Fault != nil {
		report.Error = snap.Fault.Error()
	}
	if len(aircraft) == 0 && e.sampleSize > 0 {
		report.Sample = e.Sample(snap.Tracks, e.sampleSize)
	}

	e.logger.Infow("Poll cycle complete",
		"selector", report.Selector,
		"scanned", report.Summary.Scanned,
		"matched", report.Summary.Matched,
		"alerts", report.Summary.Alerts)
	return report
}

func fromTrack(t adsb.Track, match MatchSource) Aircraft {
	return Aircraft{
		ICAO:         registry.NormalizeIdentifier(t.ICAO),
		Callsign:     t.NormalizedCallsign(),
		Registration: t.Registration,
		TypeCode:     t.TypeCode,
		Match:        match,
		Position:     t.Position,
		Altitude:     t.Altitude,
		GroundSpeed:  t.GroundSpeed,
		Heading:      t.Heading,
		VerticalRate: t.VerticalRate,
		Squawk:       t.Squawk,
		SeenSeconds:  t.SeenSeconds,
	}
}

func fromRecord(t adsb.Track, rec registry.Record) Aircraft {
	a := fromTrack(t, MatchRegistry)
	a.Country = rec.Country
	a.Description = rec.Description
	a.Operator = rec.Operator
	a.Category = rec.Category
	a.CMPG = rec.CMPG
	a.Tags = rec.Tags
	a.Link = rec.Link
	a.Registration = firstNonEmpty(t.Registration, rec.Registration)
	a.TypeCode = firstNonEmpty(t.TypeCode, rec.TypeCode, rec.ICAOType)
	return a
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
