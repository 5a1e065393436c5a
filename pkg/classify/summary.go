package classify

import "sort"

// Summary aggregates one classified snapshot.
type Summary struct {
	Policy       string `json:"policy"`
	Scanned      int    `json:"scanned"`
	Matched      int    `json:"matched"`
	RegistrySize int    `json:"registry_size"`

	ByRegistry int `json:"by_registry"`
	ByCallsign int `json:"by_callsign"`

	// Alerts counts aircraft in an alerting tier
	Alerts int `json:"alerts"`

	Groups map[string]int `json:"groups"`
	Tiers  map[Tier]int   `json:"tiers"`

	// WatchedFound and WatchedMissing split the policy's watched groups
	WatchedFound   []string `json:"watched_found"`
	WatchedMissing []string `json:"watched_missing"`
}

// Summarize builds a Summary for aircraft classified under p.
func Summarize(p Policy, scanned, registrySize int, aircraft []Aircraft) Summary {
	s := Summary{
		Policy:         p.Name(),
		Scanned:        scanned,
		Matched:        len(aircraft),
		RegistrySize:   registrySize,
		Groups:         make(map[string]int),
		Tiers:          make(map[Tier]int),
		WatchedFound:   []string{},
		WatchedMissing: []string{},
	}

	for i := range aircraft {
		a := &aircraft[i]
		switch a.Match {
		case MatchRegistry:
			s.ByRegistry++
		case MatchCallsign:
			s.ByCallsign++
		}
		if p.Alerting(a.Tier) {
			s.Alerts++
		}
		s.Groups[p.Group(a)]++
		s.Tiers[a.Tier]++
	}

	for _, g := range p.Watched() {
		if s.Groups[g] > 0 {
			s.WatchedFound = append(s.WatchedFound, g)
		} else {
			s.WatchedMissing = append(s.WatchedMissing, g)
		}
	}
	return s
}

// GroupCount is one row of a per-group breakdown.
type GroupCount struct {
	Group string
	Count int
	Tier  Tier
}

// Breakdown lists groups with their counts, ordered like the aircraft list:
// by the best tier present in the group, then by name.
func Breakdown(p Policy, aircraft []Aircraft) []GroupCount {
	index := make(map[string]int)
	var out []GroupCount
	for i := range aircraft {
		a := &aircraft[i]
		g := p.Group(a)
		j, ok := index[g]
		if !ok {
			index[g] = len(out)
			out = append(out, GroupCount{Group: g, Tier: a.Tier})
			j = len(out) - 1
		}
		out[j].Count++
		if p.Rank(a.Tier) < p.Rank(out[j].Tier) {
			out[j].Tier = a.Tier
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := p.Rank(out[i].Tier), p.Rank(out[j].Tier); ri != rj {
			return ri < rj
		}
		return out[i].Group < out[j].Group
	})
	return out
}
