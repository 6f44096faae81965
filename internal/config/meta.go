package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return false
		case reflect.Int:
			switch fieldName {
			case "bucket_seconds":
				return 60
			case "max_log_files":
				return 10
			case "poll_interval_seconds":
				return DefaultPollIntervalSeconds
			case "refresh_interval_seconds":
				return DefaultRefreshIntervalSeconds
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "db_path":
			return "~/.playtrack/state.db"
		case "http_addr":
			return DefaultHTTPAddr
		case "host_player":
			return "console-1"
		default:
			return "example"
		}
	case reflect.Slice:
		switch t.Elem().Name() {
		case "PlayerConfig":
			return []map[string]any{
				{"id": "console-1", "display_name": "Living Room"},
				{"id": "alice", "display_name": "Alice"},
			}
		case "ProcessRuleConfig":
			return []map[string]any{
				{"pattern": "minecraft_server", "activity": "Minecraft"},
				{"pattern": `(?i)zelda`, "activity": "Zelda"},
			}
		}
	}

	return nil
}
