package callsign

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// DefaultRules is the built-in rule table, evaluated top to bottom.
//
// Ordering notes:
//   - Priority countries come first so their fleets win any overlap.
//   - A shorter prefix shadows a longer one listed after it (UKR before
//     UKRAINA, GAF before GAFTT). Both map to the same country.
//   - FAF belongs to France (ICAO designator of the Armee de l'Air).
//     Finland is matched by FINNAF/FIN only.
//   - RUS and TUR are deliberately absent: they match civil callsigns such as TURBO.
var DefaultRules = []Rule{
	// USA
	{"AF1", "USA"}, {"AF2", "USA"}, {"SAM", "USA"}, {"EXEC", "USA"}, {"VENUS", "USA"},
	// Russia
	{"RSD", "Russia"}, {"ROSSIYA", "Russia"}, {"RFF", "Russia"}, {"RUSS", "Russia"}, {"RFAF", "Russia"},
	// Czech Republic
	{"CZAF", "Czech Rep"}, {"CEF", "Czech Rep"}, {"CZA", "Czech Rep"},
	// Ukraine
	{"UKR", "Ukraine"}, {"UKRAINA", "Ukraine"}, {"UKF", "Ukraine"},
	// China
	{"CCA", "China"}, {"CHN", "China"}, {"CHINA", "China"}, {"CXA", "China"},
	// North Korea
	{"KOR", "North Korea"}, {"PRK", "North Korea"},

	{"RRR", "UK"}, {"RFR", "UK"}, {"KRF", "UK"}, {"KITTY", "UK"}, {"ASCOT", "UK"},
	{"COTAM", "France"}, {"CTM", "France"}, {"FAF", "France"}, {"FRF", "France"},
	{"GAF", "Germany"}, {"GAFTT", "Germany"}, {"GERM", "Germany"},
	{"IAM", "Italy"}, {"ITAF", "Italy"},
	{"AME", "Spain"}, {"SPANISH", "Spain"}, {"SPA", "Spain"},
	{"PLF", "Poland"}, {"POLISH", "Poland"}, {"POL", "Poland"},
	{"NAF", "Netherlands"}, {"NLD", "Netherlands"},
	{"BAF", "Belgium"}, {"BEL", "Belgium"},
	{"AUA", "Austria"}, {"OST", "Austria"},
	{"SUI", "Switzerland"}, {"HEB", "Switzerland"},
	{"SVF", "Sweden"}, {"SWE", "Sweden"},
	{"NOW", "Norway"}, {"NOR", "Norway"},
	{"DAF", "Denmark"}, {"DNK", "Denmark"},
	{"FIN", "Finland"}, {"FINNAF", "Finland"},
	{"PAF", "Portugal"}, {"POR", "Portugal"},
	{"HAF", "Greece"}, {"GRC", "Greece"},
	{"HDF", "Hungary"}, {"HUN", "Hungary"},
	{"ROF", "Romania"}, {"ROU", "Romania"},
	{"BUF", "Bulgaria"}, {"BGR", "Bulgaria"},
	{"HRZ", "Croatia"}, {"CRO", "Croatia"},
	{"SVN", "Slovenia"}, {"SLO", "Slovenia"},
	{"SLK", "Slovakia"}, {"SVK", "Slovakia"},
	{"EST", "Estonia"}, {"EEF", "Estonia"},
	{"LAT", "Latvia"}, {"LVA", "Latvia"},
	{"LYF", "Lithuania"}, {"LTU", "Lithuania"},
	{"IRL", "Ireland"},
	{"THK", "Turkey"}, {"TUAF", "Turkey"}, {"TCGF", "Turkey"},
	{"BRU", "Belarus"}, {"BLR", "Belarus"},
	{"SRB", "Serbia"}, {"YUG", "Serbia"},
	{"ALB", "Albania"},
	{"MKD", "N. Macedonia"},
	{"MNE", "Montenegro"},
	{"BIH", "Bosnia"},
	{"LUX", "Luxembourg"},
	{"ICE", "Iceland"},
	{"CYP", "Cyprus"},
	{"MLT", "Malta"},
}

// Default returns a matcher over DefaultRules.
func Default() *Matcher {
	return MustNewMatcher(DefaultRules)
}

// ruleFile is the YAML layout of a rule file:
//
//	rules:
//	  - prefix: SAM
//	    country: USA
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// ParseRules decodes a YAML rule document, preserving list order.
func ParseRules(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse callsign rules")
	}
	return f.Rules, nil
}

// LoadMatcher reads a YAML rule file and builds a matcher from it.
func LoadMatcher(path string) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read callsign rules %s", path)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, err
	}
	return NewMatcher(rules)
}
