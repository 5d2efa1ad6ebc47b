package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Errors for catalog loading.
var (
	ErrMissingHeader  = errors.New("catalog header row missing required columns")
	ErrCatalogMissing = errors.New("catalog file unavailable")
)

// Required and optional column names in the delimited source table.
// Matching is case-insensitive.
const (
	colID     = "id"
	colRA     = "ra"  // hours
	colDec    = "dec" // degrees
	colMag    = "mag"
	colCI     = "ci" // B-V color index
	colProper = "proper"
	colBayer  = "bayer"
	colCon    = "con"
)

// Load reads a delimited star table from r. The first row is a header with
// named columns; id, ra, dec and mag are required, the rest are optional.
//
// Records whose numeric fields do not parse are dropped silently: that is
// data-quality filtering, not an error the caller sees. A missing color
// index yields NaN, which the color derivation maps to plain white.
func Load(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // real catalog exports have ragged optional tails

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colID, colRA, colDec, colMag} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingHeader, required)
		}
	}

	var stars []Star
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row is dropped like a bad value.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		star, ok := parseRecord(record, cols)
		if !ok {
			continue
		}
		stars = append(stars, star)
	}

	return New(stars), nil
}

// LoadFile reads a star table from disk. A missing or unreadable file is a
// hard failure; there is no fallback catalog at this layer.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogMissing, err)
	}
	defer f.Close()

	return Load(f)
}

func parseRecord(record []string, cols map[string]int) (Star, bool) {
	field := func(name string) (string, bool) {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[idx]), true
	}

	num := func(name string) (float64, bool) {
		s, ok := field(name)
		if !ok || s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	idStr, ok := field(colID)
	if !ok || idStr == "" {
		return Star{}, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Star{}, false
	}

	ra, okRA := num(colRA)
	dec, okDec := num(colDec)
	mag, okMag := num(colMag)
	if !okRA || !okDec || !okMag {
		return Star{}, false
	}
	if ra < 0 || ra >= 24 || dec < -90 || dec > 90 {
		return Star{}, false
	}

	ci, okCI := num(colCI)
	if !okCI {
		ci = math.NaN()
	}

	proper, _ := field(colProper)
	bayer, _ := field(colBayer)
	con, _ := field(colCon)

	return Star{
		ID:            id,
		RAHours:       ra,
		DecDeg:        dec,
		Mag:           mag,
		ColorIndex:    ci,
		ProperName:    proper,
		Designation:   bayer,
		Constellation: con,
	}, true
}
