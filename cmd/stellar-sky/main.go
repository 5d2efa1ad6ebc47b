// Command stellar-sky is a terminal planetarium: it renders the star
// field for an observer on Earth and identifies stars under the cursor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/catalog"
	"github.com/openclaw-blip/stellar-sky/internal/config"
	"github.com/openclaw-blip/stellar-sky/internal/logging"
	"github.com/openclaw-blip/stellar-sky/internal/report"
	"github.com/openclaw-blip/stellar-sky/internal/state"
	"github.com/openclaw-blip/stellar-sky/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	summaryLimit  int
)

const (
	minWatch = 1 * time.Second
	maxWatch = 10 * time.Minute
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	location := flag.String("location", "", "Observer as lat,lon[,name] (e.g., 35.1,-117.2,Mojave)")
	catalogPath := flag.String("catalog", "", "Star catalog CSV (default: embedded bright stars)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees")
	startAt := flag.String("time", "", "Start instant, RFC3339 (default: now)")
	flag.BoolVar(&summaryMode, "summary", false, "Print visible-star table instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat the summary at interval (e.g., 30s)")
	flag.IntVar(&summaryLimit, "limit", 25, "Max stars in the summary table (0 = all)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file.
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *fov > 0 {
		cfg.View.FOVDeg = *fov
	}
	obs := astro.Observer{
		LatDeg: cfg.Site.Latitude,
		LonDeg: cfg.Site.Longitude,
		Name:   cfg.Site.Name,
	}
	if *location != "" {
		obs, err = parseLocation(*location)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var start time.Time
	if *startAt != "" {
		start, err = time.Parse(time.RFC3339, *startAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -time: %v\n", err)
			os.Exit(1)
		}
	}

	headless := summaryMode || watchInterval != 0
	logger := setupLogger(cfg, headless)
	defer logger.Close()

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateMgr := state.NewManager(state.Config{Observer: obs, Start: start})

	if headless {
		runHeadless(ctx, stateMgr, cat)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal (use -summary for plain output)")
		os.Exit(1)
	}

	model := ui.New(stateMgr, cat, logger, cfg.View.FOVDeg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Quit the TUI cleanly on SIGINT/SIGTERM.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// setupLogger picks the log destination: a file if configured, stderr
// for headless runs, otherwise discard so the TUI stays clean.
func setupLogger(cfg *config.Config, headless bool) *logging.Logger {
	level := logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		logger, err := logging.NewFile(level, cfg.Logging.File)
		if err == nil {
			return logger
		}
		fmt.Fprintf(os.Stderr, "Warning: %v, logging to stderr\n", err)
		return logging.New(level)
	}
	if headless {
		return logging.New(level)
	}
	return logging.Discard()
}

// loadCatalog loads the configured CSV catalog and applies magnitude and
// count limits. A configured path that cannot be read is a hard failure;
// the embedded bright-star list is used only when no path was configured.
func loadCatalog(cfg *config.Config, logger *logging.Logger) (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		var err error
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded %d stars from %s", cat.Len(), cfg.Catalog.Path)
	} else {
		cat = catalog.BrightStars()
	}

	filtered := make([]catalog.Star, 0, cat.Len())
	for _, s := range cat.Stars {
		if s.Mag > cfg.Catalog.LimitMag {
			continue
		}
		filtered = append(filtered, s)
	}
	if cfg.Catalog.MaxStars > 0 && len(filtered) > cfg.Catalog.MaxStars {
		// Stars are sorted brightest first, keep the head.
		filtered = filtered[:cfg.Catalog.MaxStars]
	}
	if len(filtered) < cat.Len() {
		logger.Debug("catalog filtered to %d of %d stars", len(filtered), cat.Len())
	}
	return catalog.New(filtered), nil
}

// runHeadless prints visible-star summaries without starting the TUI.
func runHeadless(ctx context.Context, stateMgr *state.Manager, cat *catalog.Catalog) {
	outputOnce := func() {
		snap := stateMgr.Snapshot()
		report.WriteVisibleSummary(os.Stdout, cat, snap.Observer, snap.Instant, summaryLimit)
	}

	if watchInterval == 0 {
		outputOnce()
		return
	}

	if watchInterval < minWatch {
		watchInterval = minWatch
	} else if watchInterval > maxWatch {
		watchInterval = maxWatch
	}

	outputOnce()
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			outputOnce()
		}
	}
}

// parseLocation parses "lat,lon" or "lat,lon,name".
func parseLocation(s string) (astro.Observer, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) < 2 {
		return astro.Observer{}, fmt.Errorf("invalid -location %q, want lat,lon[,name]", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return astro.Observer{}, fmt.Errorf("invalid latitude in -location: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return astro.Observer{}, fmt.Errorf("invalid longitude in -location: %w", err)
	}
	if lat < -90 || lat > 90 {
		return astro.Observer{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return astro.Observer{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	obs := astro.Observer{LatDeg: lat, LonDeg: lon}
	if len(parts) == 3 {
		obs.Name = strings.TrimSpace(parts[2])
	}
	return obs, nil
}
