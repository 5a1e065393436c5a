// Package registry holds the exact-match knowledge base of known VIP,
// government and military aircraft, keyed by ICAO transponder address.
package registry

import (
	"sort"
	"strings"

	"github.com/unklstewy/airforcenone/internal/errors"
)

var (
	// ErrCatalogLoad marks a missing or unreadable catalog source.
	ErrCatalogLoad = errors.New("catalog load fault")

	// ErrBadIdentifier marks a catalog row whose identifier is not 6 hex characters.
	ErrBadIdentifier = errors.New("identifier must be 6 hexadecimal characters")
)

// Record is a known aircraft.
// The built-in table fills Country/Description; catalog files fill the
// extended fields (Operator, Category, CMPG, Tags, Link) instead.
type Record struct {
	ICAO         string   `json:"icao"`
	Country      string   `json:"country,omitempty"`
	Description  string   `json:"description,omitempty"`
	Registration string   `json:"registration,omitempty"`
	TypeCode     string   `json:"type,omitempty"`
	Operator     string   `json:"operator,omitempty"`
	ICAOType     string   `json:"icao_type,omitempty"`
	CMPG         string   `json:"cmpg,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Label is the human readable name of the aircraft: the description when
// present, otherwise the operator.
func (r Record) Label() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Operator
}

// Registry is an immutable ICAO -> Record index.
// A nil *Registry behaves as an empty registry.
type Registry struct {
	records map[string]Record
	skipped int
}

// New builds a registry. Records with a malformed identifier are skipped;
// when an identifier repeats, the later record replaces the earlier one.
func New(records []Record) *Registry {
	r := &Registry{records: make(map[string]Record, len(records))}
	for _, rec := range records {
		icao := NormalizeIdentifier(rec.ICAO)
		if !ValidIdentifier(icao) {
			r.skipped++
			continue
		}
		rec.ICAO = icao
		r.records[icao] = rec
	}
	return r
}

// Empty returns a registry with no records.
func Empty() *Registry {
	return New(nil)
}

// Lookup returns the record for an identifier. Matching is exact after
// normalization (trim + lowercase).
func (r *Registry) Lookup(icao string) (Record, bool) {
	if r == nil {
		return Record{}, false
	}
	rec, ok := r.records[NormalizeIdentifier(icao)]
	return rec, ok
}

// Len returns the number of records.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Skipped returns how many input records were rejected by New.
func (r *Registry) Skipped() int {
	if r == nil {
		return 0
	}
	return r.skipped
}

// Records returns all records sorted by identifier.
func (r *Registry) Records() []Record {
	if r == nil {
		return nil
	}
	out := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ICAO < out[j].ICAO })
	return out
}

// Countries returns the distinct non-empty countries, sorted.
func (r *Registry) Countries() []string {
	return r.distinct(func(rec Record) string { return rec.Country })
}

// Categories returns the distinct non-empty categories, sorted.
func (r *Registry) Categories() []string {
	return r.distinct(func(rec Record) string { return rec.Category })
}

func (r *Registry) distinct(field func(Record) string) []string {
	if r == nil {
		return nil
	}
	set := make(map[string]struct{})
	for _, rec := range r.records {
		if v := field(rec); v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NormalizeIdentifier trims and lowercases an ICAO address.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidIdentifier reports whether s is exactly 6 lowercase hex characters.
func ValidIdentifier(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
