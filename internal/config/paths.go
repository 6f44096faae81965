package config

import (
	"os"
	"path/filepath"
)

// GetPlaytrackHome returns PLAYTRACK_HOME or ~/.playtrack default
func GetPlaytrackHome() string {
	home := os.Getenv("PLAYTRACK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".playtrack"
		}
		return filepath.Join(homeDir, ".playtrack")
	}
	return ExpandPath(home)
}

// GetDBPath returns $PLAYTRACK_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetPlaytrackHome(), "state.db")
}

// GetSettingsPath returns $PLAYTRACK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPlaytrackHome(), "settings.json")
}

// GetLockPath returns $PLAYTRACK_HOME/daemon.lock
func GetLockPath() string {
	return filepath.Join(GetPlaytrackHome(), "daemon.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
