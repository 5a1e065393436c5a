// Package geo resolves the overflight country of a position.
//
// Resolution goes through a Geocoder (an optional capability; NopGeocoder
// when unavailable) and a Cache keyed by coordinates rounded to two
// decimal places. Points outside every country resolve to the empty string
// and are cached like any other answer; geocoder faults are never cached.
package geo

import (
	"fmt"
	"strings"

	"github.com/sams96/rgeo"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/internal/errors"
)

var (
	// ErrGeocoderUnavailable is returned by NopGeocoder.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")

	// ErrNoCountry marks a point that lies in no country, e.g. open water.
	ErrNoCountry = errors.New("no country at position")
)

// Geocoder turns a coordinate pair into an ISO 3166-1 alpha-2 country code.
type Geocoder interface {
	CountryCode(lat, lon float64) (string, error)
}

// NopGeocoder is used when reverse geocoding is disabled.
type NopGeocoder struct{}

// CountryCode always fails with ErrGeocoderUnavailable.
func (NopGeocoder) CountryCode(lat, lon float64) (string, error) {
	return "", ErrGeocoderUnavailable
}

// RgeoGeocoder is an offline geocoder over the Natural Earth country polygons.
type RgeoGeocoder struct {
	r *rgeo.Rgeo
}

// NewRgeoGeocoder loads the 1:110m country dataset. Loading takes a moment
// and a few MB, so build it once per process.
func NewRgeoGeocoder() (*RgeoGeocoder, error) {
	r, err := rgeo.New(rgeo.Countries110)
	if err != nil {
		return nil, errors.Wrap(err, "load country polygons")
	}
	return &RgeoGeocoder{r: r}, nil
}

// CountryCode returns the alpha-2 code of the country containing the point.
// Points over open water yield an error marked with ErrNoCountry.
func (g *RgeoGeocoder) CountryCode(lat, lon float64) (string, error) {
	// go-geom coordinates are (x, y) = (lon, lat)
	loc, err := g.r.ReverseGeocode(geom.Coord{lon, lat})
	if err != nil {
		err = errors.Wrapf(err, "reverse geocode %.4f,%.4f", lat, lon)
		if errors.Is(err, rgeo.ErrLocationNotFound) {
			err = errors.Mark(err, ErrNoCountry)
		}
		return "", err
	}
	if code := alpha2(loc); code != "" {
		return code, nil
	}
	return "", errors.Mark(errors.Newf("no country code for %q", loc.Country), ErrNoCountry)
}

// alpha2 picks a usable ISO alpha-2 code. Natural Earth stores "-99" in
// ISO_A2 for a few countries (France, Norway, Kosovo among them); those are
// resolved by admin name.
func alpha2(loc rgeo.Location) string {
	if code := strings.TrimSpace(loc.CountryCode2); code != "" && code != "-99" {
		return code
	}
	return adminCodes[loc.Country]
}

var adminCodes = map[string]string{
	"France":          "FR",
	"Norway":          "NO",
	"Kosovo":          "XK",
	"Northern Cyprus": "CY",
	"Somaliland":      "SO",
}

// CacheKey rounds both coordinates to two decimals.
func CacheKey(lat, lon float64) string {
	return fmt.Sprintf("%s,%s", round2(lat), round2(lon))
}

func round2(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// CountryName maps an alpha-2 code to its display name, falling back to the code.
func CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}

var countryNames = map[string]string{
	"US": "USA", "GB": "UK", "DE": "Germany", "FR": "France",
	"IT": "Italy", "ES": "Spain", "PL": "Poland", "CZ": "Czechia",
	"UA": "Ukraine", "RU": "Russia", "CN": "China", "KP": "N.Korea",
	"NL": "Netherlands", "BE": "Belgium", "AT": "Austria", "CH": "Switzerland",
	"SE": "Sweden", "NO": "Norway", "DK": "Denmark", "FI": "Finland",
	"PT": "Portugal", "GR": "Greece", "HU": "Hungary", "RO": "Romania",
	"BG": "Bulgaria", "HR": "Croatia", "SI": "Slovenia", "SK": "Slovakia",
	"EE": "Estonia", "LV": "Latvia", "LT": "Lithuania", "IE": "Ireland",
	"TR": "Turkey", "BY": "Belarus", "RS": "Serbia", "AL": "Albania",
	"MK": "N.Macedonia", "ME": "Montenegro", "BA": "Bosnia", "LU": "Luxembourg",
	"IS": "Iceland", "CY": "Cyprus", "MT": "Malta", "CA": "Canada",
	"MX": "Mexico", "JP": "Japan", "KR": "S.Korea", "AU": "Australia",
	"NZ": "New Zealand", "BR": "Brazil", "AR": "Argentina", "IN": "India",
	"SA": "Saudi Arabia", "AE": "UAE", "IL": "Israel", "EG": "Egypt",
	"ZA": "S.Africa", "ZW": "Zimbabwe", "SY": "Syria", "IR": "Iran",
	"KZ": "Kazakhstan", "UZ": "Uzbekistan", "TM": "Turkmenistan",
	"XK": "Kosovo", "SO": "Somalia",
}

// Resolver memoizes overflight-country lookups.
type Resolver struct {
	geocoder Geocoder
	cache    Cache
	logger   *zap.SugaredLogger
}

// NewResolver wires a geocoder to a cache. A nil geocoder means NopGeocoder,
// a nil cache means an unbounded MapCache.
func NewResolver(g Geocoder, c Cache, logger *zap.SugaredLogger) *Resolver {
	if g == nil {
		g = NopGeocoder{}
	}
	if c == nil {
		c = NewMapCache()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolver{geocoder: g, cache: c, logger: logger}
}

// Resolve returns the display name of the country under (lat, lon), or ""
// when it cannot be determined.
func (r *Resolver) Resolve(lat, lon float64) string {
	key := CacheKey(lat, lon)
	if name, ok := r.cache.Get(key); ok {
		return name
	}

	code, err := r.geocoder.CountryCode(lat, lon)
	if errors.Is(err, ErrNoCountry) {
		r.cache.Add(key, "")
		return ""
	}
	if err != nil {
		if !errors.Is(err, ErrGeocoderUnavailable) {
			r.logger.Debugw("Geocode failed", "key", key, "error", err)
		}
		return ""
	}
	if code == "" {
		return ""
	}

	name := CountryName(code)
	r.cache.Add(key, name)
	return name
}

// CacheLen reports the number of cached keys.
func (r *Resolver) CacheLen() int {
	return r.cache.Len()
}
