package registry

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// Column headers of the plane-alert-db catalog format.
const (
	ColumnICAO         = "$ICAO"
	ColumnRegistration = "$Registration"
	ColumnOperator     = "$Operator"
	ColumnType         = "$Type"
	ColumnICAOType     = "$ICAO Type"
	ColumnCMPG         = "#CMPG"
	ColumnTag1         = "$Tag 1"
	ColumnTag2         = "$#Tag 2"
	ColumnTag3         = "$#Tag 3"
	ColumnCategory     = "Category"
	ColumnLink         = "$#Link"

	// ColumnCountry is not part of plane-alert-db but is honoured when present
	ColumnCountry = "Country"
)

// CatalogStats summarises a catalog load.
type CatalogStats struct {
	Rows    int
	Loaded  int
	Skipped int
}

// ReadCatalog parses a header-driven catalog. Rows with a malformed identifier
// or a CSV syntax error are skipped and counted; the load continues.
// A missing identifier column is a load fault.
func ReadCatalog(r io.Reader, logger *zap.SugaredLogger) ([]Record, CatalogStats, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	var stats CatalogStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, stats, errors.Mark(errors.Wrap(err, "read catalog header"), ErrCatalogLoad)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// strip a UTF-8 BOM on the first column
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		index[name] = i
	}
	if _, ok := index[ColumnICAO]; !ok {
		return nil, stats, errors.Mark(errors.Newf("catalog has no %q column", ColumnICAO), ErrCatalogLoad)
	}

	col := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Rows++
				stats.Skipped++
				logger.Debugw("Skipping unparsable catalog row", "line", parseErr.Line, "error", err)
				continue
			}
			return records, stats, errors.Mark(errors.Wrap(err, "read catalog"), ErrCatalogLoad)
		}
		stats.Rows++

		icao := NormalizeIdentifier(col(row, ColumnICAO))
		if !ValidIdentifier(icao) {
			stats.Skipped++
			logger.Debugw("Skipping catalog row", "icao", icao, "error", ErrBadIdentifier)
			continue
		}

		records = append(records, Record{
			ICAO:         icao,
			Country:      col(row, ColumnCountry),
			Registration: col(row, ColumnRegistration),
			Operator:     col(row, ColumnOperator),
			TypeCode:     col(row, ColumnType),
			ICAOType:     col(row, ColumnICAOType),
			CMPG:         col(row, ColumnCMPG),
			Category:     col(row, ColumnCategory),
			Tags:         nonEmpty(col(row, ColumnTag1), col(row, ColumnTag2), col(row, ColumnTag3)),
			Link:         col(row, ColumnLink),
		})
		stats.Loaded++
	}

	return records, stats, nil
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string, logger *zap.SugaredLogger) ([]Record, CatalogStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CatalogStats{}, errors.Mark(errors.Wrapf(err, "open catalog %s", path), ErrCatalogLoad)
	}
	defer f.Close()

	return ReadCatalog(f, logger)
}

// FromCatalog builds a registry from a catalog file. On a load fault it
// returns an empty registry together with the fault, so callers can continue
// with pattern-only matching.
func FromCatalog(path string, logger *zap.SugaredLogger) (*Registry, CatalogStats, error) {
	records, stats, err := LoadCatalog(path, logger)
	if err != nil {
		return Empty(), stats, err
	}
	return New(records), stats, nil
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
