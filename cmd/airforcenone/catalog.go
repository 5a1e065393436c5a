package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/unklstewy/airforcenone/internal/db"
	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/registry"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the known-aircraft catalog database",
	Long: `Imports plane-alert-db style CSV catalogs into the configured database
so that scan, watch and serve can load them with catalog.use_database.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a catalog CSV into the database",
	Long: `Reads a plane-alert-db style CSV and upserts every valid row into the
known_aircraft table. Rows with an invalid ICAO address are skipped.

Examples:
  airforcenone catalog import plane-alert-db.csv
  AIRFORCENONE_DATABASE_DRIVER=sqlite AIRFORCENONE_DATABASE_DATABASE=catalog.db \
    airforcenone catalog import plane-alert-db.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog database contents",
	Args:  cobra.NoArgs,
	RunE:  runCatalogStats,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	records, stats, err := registry.LoadCatalog(path, logger)
	if err != nil {
		return err
	}
	logger.Infow("Parsed catalog", "path", path, "rows", stats.Rows, "valid", stats.Loaded, "skipped", stats.Skipped)

	database, err := db.ConnectWithRetry(ctx, cfg.Database, 3, time.Second, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		return err
	}

	start := time.Now()
	n, err := db.NewCatalogRepository(database).Import(ctx, records)
	if err != nil {
		return err
	}

	logger.Infow("Catalog imported", "aircraft", n, "duration", time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d aircraft (%d rows skipped)\n", n, stats.Skipped)
	return nil
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	database, err := db.ConnectWithRetry(ctx, cfg.Database, 1, time.Second, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	repo := db.NewCatalogRepository(database)
	rows, err := repo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "catalog stats")
	}
	reg, err := repo.LoadRegistry(ctx)
	if err != nil {
		return errors.Wrap(err, "catalog stats")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rows in known_aircraft: %d\n", rows)
	fmt.Fprintf(out, "Loadable aircraft:      %d\n", reg.Len())
	fmt.Fprintf(out, "Countries:              %d\n", len(reg.Countries()))
	fmt.Fprintf(out, "Categories:             %d\n", len(reg.Categories()))

	counts := countByCategory(reg.Records())
	if len(counts) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderCounts("Category", counts))
	}
	return nil
}

type categoryCount struct {
	Category string
	Count    int
}

// countByCategory counts records per category, largest first.
func countByCategory(records []registry.Record) []categoryCount {
	counts := make(map[string]int)
	for _, r := range records {
		c := r.Category
		if c == "" {
			c = "(none)"
		}
		counts[c]++
	}

	out := make([]categoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, categoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func renderCounts(header string, counts []categoryCount) string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Count)})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(header, "Aircraft").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		String()
}
