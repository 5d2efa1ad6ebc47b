// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Star picking (screen and ray strategies), simulation clock, YAML config
// 0.2.0 - B-V color rendering, CSV catalog loader, alt/az grid overlay
// 0.1.0 - Initial release: TUI sky view, bright star catalog, headless summary
