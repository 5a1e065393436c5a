package classify

import (
	"sort"
	"strings"
)

// Tier is a priority bucket used to order and highlight results.
type Tier string

const (
	// Country policy
	TierPriority Tier = "priority"
	TierStandard Tier = "standard"

	// Category policy
	TierTop      Tier = "top"
	TierHigh     Tier = "high"
	TierMilitary Tier = "military"
	TierOther    Tier = "other"
)

// DefaultSampleSize is how many raw tracks are shown when nothing is identified.
const DefaultSampleSize = 15

// Default policy sets.
var (
	DefaultPriorityCountries = []string{"USA", "Russia", "Czech Rep", "Ukraine", "China", "North Korea"}

	DefaultTopCategories  = []string{"Dictator Alert", "Governments"}
	DefaultHighCategories = []string{"Oxcart", "Special Forces", "Gunship"}

	DefaultMilitaryCategories = []string{
		"USAF",
		"RAF",
		"GAF",
		"United States Navy",
		"United States Marine Corps",
		"Royal Navy Fleet Air Arm",
		"Other Navies",
		"Other Air Forces",
		"Coastguard",
		"Toy Soldiers",
		"Zoomies",
	}
)

// Policy assigns tiers and grouping keys to classified aircraft.
type Policy interface {
	// Name identifies the policy ("country" or "category").
	Name() string

	// Tier assigns the aircraft's bucket.
	Tier(a *Aircraft) Tier

	// Rank orders tiers; lower sorts first.
	Rank(t Tier) int

	// Group is the secondary sort key and the summary bucket.
	Group(a *Aircraft) string

	// Alerting reports whether a tier raises a priority alert.
	Alerting(t Tier) bool

	// Watched lists the groups whose presence or absence the summary reports.
	Watched() []string
}

type set map[string]struct{}

func newSet(values []string) set {
	s := make(set, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}

func (s set) has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// CountryPolicy tiers by resolved owner country.
type CountryPolicy struct {
	priority set
}

// NewCountryPolicy builds a country policy; nil uses DefaultPriorityCountries.
func NewCountryPolicy(priorityCountries []string) *CountryPolicy {
	if priorityCountries == nil {
		priorityCountries = DefaultPriorityCountries
	}
	return &CountryPolicy{priority: newSet(priorityCountries)}
}

func (p *CountryPolicy) Name() string { return "country" }

func (p *CountryPolicy) Tier(a *Aircraft) Tier {
	if p.priority.has(a.Country) {
		return TierPriority
	}
	return TierStandard
}

func (p *CountryPolicy) Rank(t Tier) int {
	if t == TierPriority {
		return 0
	}
	return 1
}

func (p *CountryPolicy) Group(a *Aircraft) string { return a.Country }

func (p *CountryPolicy) Alerting(t Tier) bool { return t == TierPriority }

func (p *CountryPolicy) Watched() []string { return p.priority.sorted() }

// CategoryPolicy tiers by catalog category. Aircraft without a category
// (callsign matches, built-in records) group under their country.
type CategoryPolicy struct {
	top      set
	high     set
	military set
}

// NewCategoryPolicy builds a category policy; nil sets use the defaults.
func NewCategoryPolicy(top, high, military []string) *CategoryPolicy {
	if top == nil {
		top = DefaultTopCategories
	}
	if high == nil {
		high = DefaultHighCategories
	}
	if military == nil {
		military = DefaultMilitaryCategories
	}
	return &CategoryPolicy{top: newSet(top), high: newSet(high), military: newSet(military)}
}

func (p *CategoryPolicy) Name() string { return "category" }

func (p *CategoryPolicy) Tier(a *Aircraft) Tier {
	switch {
	case p.top.has(a.Category):
		return TierTop
	case p.high.has(a.Category):
		return TierHigh
	case p.military.has(a.Category):
		return TierMilitary
	default:
		return TierOther
	}
}

func (p *CategoryPolicy) Rank(t Tier) int {
	switch t {
	case TierTop:
		return 0
	case TierHigh:
		return 1
	case TierMilitary:
		return 2
	default:
		return 3
	}
}

func (p *CategoryPolicy) Group(a *Aircraft) string {
	if a.Category != "" {
		return a.Category
	}
	return a.Country
}

func (p *CategoryPolicy) Alerting(t Tier) bool { return t == TierTop }

func (p *CategoryPolicy) Watched() []string {
	out := append(p.top.sorted(), p.high.sorted()...)
	sort.Strings(out)
	return out
}

// PolicyFor returns the policy for a configured variant name.
func PolicyFor(variant string, priorityCountries, top, high, military []string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case "", "country":
		return NewCountryPolicy(priorityCountries), true
	case "category":
		return NewCategoryPolicy(top, high, military), true
	default:
		return nil, false
	}
}
