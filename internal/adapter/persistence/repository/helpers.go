package repository

import (
	"os"
	"time"
)

const defaultSlotKey = "app_state_json"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// slotKey names the single key the snapshot is stored under.
func slotKey() string {
	return getenvDefault("STATE_SLOT_KEY", defaultSlotKey)
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
