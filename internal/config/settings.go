package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultPollIntervalSeconds is how often presence is reconciled into sessions
const DefaultPollIntervalSeconds = 30

// DefaultRefreshIntervalSeconds is how often the player roster is reloaded
const DefaultRefreshIntervalSeconds = 300

// DefaultHTTPAddr is the default bind address of the stats API
const DefaultHTTPAddr = "127.0.0.1:8714"

// PlayerConfig identifies one tracked player in settings.json
type PlayerConfig struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

// ProcessRuleConfig maps a process command line pattern to an activity label
type ProcessRuleConfig struct {
	Pattern  string `json:"pattern"`
	Activity string `json:"activity"`
}

// Settings represents the structure of $PLAYTRACK_HOME/settings.json
type Settings struct {
	BucketSeconds          *int                `json:"bucket_seconds,omitempty"`
	DBPath                 string              `json:"db_path,omitempty"`
	Debug                  *bool               `json:"debug,omitempty"`
	HTTPAddr               string              `json:"http_addr,omitempty"`
	HostPlayer             string              `json:"host_player,omitempty"`
	MaxLogFiles            *int                `json:"max_log_files,omitempty"`
	Players                []PlayerConfig      `json:"players,omitempty"`
	PollIntervalSeconds    *int                `json:"poll_interval_seconds,omitempty"`
	ProcessRules           []ProcessRuleConfig `json:"process_rules,omitempty"`
	RefreshIntervalSeconds *int                `json:"refresh_interval_seconds,omitempty"`
}

// LoadSettings loads settings from $PLAYTRACK_HOME/settings.json (or ~/.playtrack/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand DBPath if it starts with ~
	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PLAYTRACK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(GetPlaytrackHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// DebugEnabled reports whether debug logging is turned on
func (s *Settings) DebugEnabled() bool {
	return s.Debug != nil && *s.Debug
}

// MaxLogFilesValue returns the configured log retention count, 0 if unset
func (s *Settings) MaxLogFilesValue() int {
	if s.MaxLogFiles == nil {
		return 0
	}
	return *s.MaxLogFiles
}

// DatabasePath returns DBPath or the default under $PLAYTRACK_HOME
func (s *Settings) DatabasePath() string {
	if s.DBPath != "" {
		return s.DBPath
	}
	return GetDBPath()
}

// HTTPAddress returns HTTPAddr or DefaultHTTPAddr
func (s *Settings) HTTPAddress() string {
	if s.HTTPAddr != "" {
		return s.HTTPAddr
	}
	return DefaultHTTPAddr
}

// PollInterval returns the reconcile interval. Unset or non-positive values
// fall back to the default.
func (s *Settings) PollInterval() time.Duration {
	if s.PollIntervalSeconds == nil || *s.PollIntervalSeconds <= 0 {
		return DefaultPollIntervalSeconds * time.Second
	}
	return time.Duration(*s.PollIntervalSeconds) * time.Second
}

// RefreshInterval returns the roster reload interval. Unset falls back to the
// default; an explicit non-positive value disables refreshing.
func (s *Settings) RefreshInterval() time.Duration {
	if s.RefreshIntervalSeconds == nil {
		return DefaultRefreshIntervalSeconds * time.Second
	}
	if *s.RefreshIntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(*s.RefreshIntervalSeconds) * time.Second
}

// BucketSecondsValue returns the configured concurrency bucket width, 0 if unset
func (s *Settings) BucketSecondsValue() int {
	if s.BucketSeconds == nil {
		return 0
	}
	return *s.BucketSeconds
}
