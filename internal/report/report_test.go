package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/catalog"
)

// At J2000 from the north pole, declination alone decides visibility.
var (
	poleObs = astro.Observer{LatDeg: 90, LonDeg: 0, Name: "North Pole"}
	j2000   = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
)

func testCat() *catalog.Catalog {
	return catalog.New([]catalog.Star{
		{ID: 1, RAHours: 2, DecDeg: 45, Mag: 2.5, ColorIndex: 0.5, ProperName: "Northstar"},
		{ID: 2, RAHours: 6, DecDeg: 70, Mag: 0.5, ColorIndex: math.NaN(), ProperName: "Highstar"},
		{ID: 3, RAHours: 12, DecDeg: -30, Mag: 1.0, ColorIndex: 1.2, ProperName: "Southstar"},
	})
}

func TestGenerateVisibleRows_HorizonFilter(t *testing.T) {
	rows := GenerateVisibleRows(testCat(), poleObs, j2000, 0)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (southern star excluded)", len(rows))
	}
	for _, r := range rows {
		if r.Name == "Southstar" {
			t.Error("Southstar should be below the pole's horizon")
		}
		if r.AltDeg <= 0 {
			t.Errorf("%s alt = %v, want > 0", r.Name, r.AltDeg)
		}
	}
}

func TestGenerateVisibleRows_BrightestFirst(t *testing.T) {
	rows := GenerateVisibleRows(testCat(), poleObs, j2000, 0)
	if rows[0].Name != "Highstar" {
		t.Errorf("first row = %s, want Highstar (brightest)", rows[0].Name)
	}
}

func TestGenerateVisibleRows_Limit(t *testing.T) {
	rows := GenerateVisibleRows(testCat(), poleObs, j2000, 1)
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1", len(rows))
	}
}

func TestWriteVisibleSummary(t *testing.T) {
	var b strings.Builder
	WriteVisibleSummary(&b, testCat(), poleObs, j2000, 0)
	out := b.String()

	for _, want := range []string{"North Pole", "Highstar", "Northstar", "Total: 2 of 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Southstar") {
		t.Error("summary should not list stars below the horizon")
	}
}

func TestWriteVisibleSummary_EmptySky(t *testing.T) {
	cat := catalog.New([]catalog.Star{
		{ID: 3, RAHours: 12, DecDeg: -30, Mag: 1.0},
	})

	var b strings.Builder
	WriteVisibleSummary(&b, cat, poleObs, j2000, 0)
	if !strings.Contains(b.String(), "No stars above the horizon") {
		t.Errorf("expected empty-sky message:\n%s", b.String())
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in       string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long star name", 10, "a very l.."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncateStr(tt.in, tt.max); got != tt.expected {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
		}
	}
}
