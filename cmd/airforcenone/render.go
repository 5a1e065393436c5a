package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/classify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

// renderReport formats one poll cycle for the terminal.
func renderReport(r classify.Report, p classify.Policy) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("AIRFORCENONE"))
	s.WriteString(" ")
	s.WriteString(dimStyle.Render(fmt.Sprintf("%s @ %s", r.Selector, r.FetchedAt.Format("2006-01-02 15:04:05 UTC"))))
	s.WriteString("\n\n")

	if r.Error != "" {
		s.WriteString(errStyle.Render("✗ Source fault: " + r.Error))
		s.WriteString("\n\n")
	}

	if len(r.Aircraft) > 0 {
		s.WriteString(headerStyle.Render(fmt.Sprintf("%d Presidential/VIP aircraft detected", len(r.Aircraft))))
		s.WriteString("\n")
		s.WriteString(renderTable(r.Aircraft, p))
		s.WriteString("\n")
	} else {
		s.WriteString(warningStyle.Render("No presidential/VIP aircraft currently detected."))
		s.WriteString("\n")
	}

	if len(r.Sample) > 0 {
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("Sample of active military aircraft (for reference):"))
		s.WriteString("\n")
		s.WriteString(renderTable(r.Sample, p))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(renderSummary(r.Summary, r.Aircraft, p))
	return s.String()
}

func renderTable(list []classify.Aircraft, p classify.Policy) string {
	groupHeader := "Country"
	if p.Name() == "category" {
		groupHeader = "Category"
	}

	rows := make([][]string, 0, len(list))
	for _, a := range list {
		marker := " "
		if p.Alerting(a.Tier) {
			marker = "★"
		}
		rows = append(rows, []string{
			marker,
			strings.ToUpper(a.ICAO),
			orNA(a.Callsign),
			p.Group(&a),
			truncate(a.Label(), 35),
			orNA(a.Registration),
			orNA(a.TypeCode),
			formatAltitude(a.Altitude),
			formatFloat(a.GroundSpeed, "%.0f kt"),
			formatFloat(a.Heading, "%.0f°"),
			orNA(a.Squawk),
			a.OverCountry,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("", "ICAO", "Callsign", groupHeader, "Description", "Reg", "Type", "Alt", "Speed", "Hdg", "Squawk", "Over").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch list[row].Tier {
			case classify.TierPriority, classify.TierTop:
				return alertStyle.Padding(0, 1)
			case classify.TierHigh:
				return highStyle.Padding(0, 1)
			}
			return cellStyle
		})

	return t.String()
}

func renderSummary(s classify.Summary, list []classify.Aircraft, p classify.Policy) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Summary"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total military aircraft tracked: %d\n", s.Scanned)
	fmt.Fprintf(&b, "Presidential/VIP aircraft found: %d (registry %d, callsign %d)\n", s.Matched, s.ByRegistry, s.ByCallsign)
	fmt.Fprintf(&b, "Known aircraft in catalog:       %d\n", s.RegistrySize)

	if s.Alerts > 0 {
		b.WriteString(alertStyle.Render(fmt.Sprintf("★ PRIORITY ALERT: %d aircraft in: %s", s.Alerts, strings.Join(s.WatchedFound, ", "))))
	} else {
		b.WriteString(dimStyle.Render("★ No priority aircraft currently detected"))
	}
	b.WriteString("\n")
	if len(s.WatchedMissing) > 0 {
		b.WriteString(dimStyle.Render("   Not currently detected: " + strings.Join(s.WatchedMissing, ", ")))
		b.WriteString("\n")
	}

	rows := classify.Breakdown(p, list)
	if len(rows) > 0 {
		b.WriteString("\n")
		for _, row := range rows {
			line := fmt.Sprintf("  %-28s %3d", row.Group, row.Count)
			if p.Alerting(row.Tier) {
				line = alertStyle.Render(line + " ★")
			} else {
				line = okStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// formatAltitude never shows a ground report as a number.
func formatAltitude(a adsb.Altitude) string {
	if a.OnGround {
		return "GROUND"
	}
	if feet, ok := a.Airborne(); ok {
		return fmt.Sprintf("%.0f ft", feet)
	}
	return "N/A"
}

func formatFloat(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
