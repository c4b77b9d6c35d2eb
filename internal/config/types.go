// Package config loads and watches the dayplan config file.
//
// Files may be JSON or YAML; YAML is coerced to JSON so both formats go
// through the same strict decoder (unknown fields are rejected).
package config

import (
	"time"

	"dayplan/internal/analyze"
	"dayplan/internal/audit"
	logx "dayplan/pkg/logx"
)

type Config struct {
	Logging LoggingConfig `json:"logging"`

	// Analyzer controls the productivity-analysis thresholds.
	Analyzer AnalyzerConfig `json:"analyzer"`

	// Audit controls the optional mutation log.
	// If omitted, auditing is disabled.
	Audit *AuditConfig `json:"audit,omitempty"`

	// Export controls where the text/CSV exporters write.
	Export ExportConfig `json:"export"`
}

type LoggingConfig struct {
	Level   string        `json:"level,omitempty"` // TRACE..ERROR, default INFO
	Console *bool         `json:"console,omitempty"`
	File    FileLogConfig `json:"file,omitempty"`
}

type FileLogConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path,omitempty"`
}

// AnalyzerConfig durations are Go duration strings (e.g. "10m", "12h").
//
// Defaults (when fields are omitted/zero):
//   - min_gap: "10m"
//   - span_limit: "12h"
//   - high_load_share: 0.5
type AnalyzerConfig struct {
	MinGap        string  `json:"min_gap,omitempty"`
	SpanLimit     string  `json:"span_limit,omitempty"`
	HighLoadShare float64 `json:"high_load_share,omitempty"`
}

// AuditConfig mirrors audit.Config with string durations.
//
// Example:
//
//	"audit": { "driver": "file", "path": "./dayplan.audit.jsonl" }
type AuditConfig struct {
	Driver      string `json:"driver"`
	Path        string `json:"path"`
	BusyTimeout string `json:"busy_timeout,omitempty"` // Go duration string (sqlite)
	RatePerSec  int    `json:"rate_per_sec,omitempty"`
}

type ExportConfig struct {
	Dir string `json:"dir,omitempty"` // default "."
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// LogxConfig translates the logging section for pkg/logx.
func (c *Config) LogxConfig() logx.Config {
	console := true
	if c.Logging.Console != nil {
		console = *c.Logging.Console
	}
	return logx.Config{
		Level:   c.Logging.Level,
		Console: console,
		File: logx.FileConfig{
			Enabled: c.Logging.File.Enabled,
			Path:    c.Logging.File.Path,
		},
	}
}

// AnalyzeConfig parses the analyzer thresholds.
func (c *Config) AnalyzeConfig() (analyze.Config, error) {
	minGap, err := ParseDurationField("analyzer.min_gap", c.Analyzer.MinGap)
	if err != nil {
		return analyze.Config{}, err
	}
	span, err := ParseDurationField("analyzer.span_limit", c.Analyzer.SpanLimit)
	if err != nil {
		return analyze.Config{}, err
	}
	return analyze.Config{
		MinGap:        minGap,
		SpanLimit:     span,
		HighLoadShare: c.Analyzer.HighLoadShare,
	}, nil
}

// AuditStoreConfig parses the audit section; a disabled config is returned
// when the section is omitted.
func (c *Config) AuditStoreConfig() (audit.Config, error) {
	if c.Audit == nil {
		return audit.Config{}, nil
	}
	busy, err := ParseDurationOrDefault("audit.busy_timeout", c.Audit.BusyTimeout, 5*time.Second)
	if err != nil {
		return audit.Config{}, err
	}
	return audit.Config{
		Driver:      c.Audit.Driver,
		Path:        c.Audit.Path,
		BusyTimeout: busy,
	}, nil
}
