// Package report writes headless text output: tables of stars visible
// from an observer at an instant.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/catalog"
)

// SummaryRow is one line of the visible-star table.
type SummaryRow struct {
	Name   string
	Mag    float64
	RA     float64 // hours
	Dec    float64 // degrees
	AltDeg float64
	AzDeg  float64
}

// GenerateVisibleRows lists the stars above the horizon, brightest
// first. limit <= 0 means no limit.
func GenerateVisibleRows(cat *catalog.Catalog, obs astro.Observer, at time.Time, limit int) []SummaryRow {
	var rows []SummaryRow
	for _, s := range cat.Stars {
		h := astro.EquatorialToHorizontal(
			astro.Equatorial{RAHours: s.RAHours, DecDeg: s.DecDeg}, obs, at)
		if h.AltDeg <= 0 {
			continue
		}
		rows = append(rows, SummaryRow{
			Name:   s.DisplayName(),
			Mag:    s.Mag,
			RA:     s.RAHours,
			Dec:    s.DecDeg,
			AltDeg: h.AltDeg,
			AzDeg:  h.AzDeg,
		})
		if limit > 0 && len(rows) >= limit {
			break
		}
	}
	return rows
}

// WriteVisibleSummary writes a text table to the given writer.
func WriteVisibleSummary(w io.Writer, cat *catalog.Catalog, obs astro.Observer, at time.Time, limit int) {
	rows := GenerateVisibleRows(cat, obs, at, limit)

	site := obs.Name
	if site == "" {
		site = fmt.Sprintf("%.4f°, %.4f°", obs.LatDeg, obs.LonDeg)
	}
	lst := astro.LocalSiderealTime(at, obs.LonDeg)
	fmt.Fprintf(w, "Sky over %s @ %s (LST %05.2fh)\n", site, at.UTC().Format(time.RFC3339), lst)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No stars above the horizon")
		return
	}

	fmt.Fprintf(w, "%-20s %6s %8s %8s %7s %7s\n",
		"Star", "Mag", "RA", "Dec", "Alt", "Az")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, r := range rows {
		fmt.Fprintf(w, "%-20s %6.2f %7.3fh %+7.2f° %6.1f° %6.1f°\n",
			truncateStr(r.Name, 20), r.Mag, r.RA, r.Dec, r.AltDeg, r.AzDeg)
	}

	fmt.Fprintf(w, "\nTotal: %s of %s stars above the horizon\n",
		humanize.Comma(int64(len(rows))), humanize.Comma(int64(cat.Len())))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
