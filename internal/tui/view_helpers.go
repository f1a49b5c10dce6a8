package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// parseCommandLine splits "<command> [args]". Everything after the first
// space is the argument, unsplit.
func parseCommandLine(line string) (command, args string) {
	line = strings.TrimSpace(line)
	command, args, _ = strings.Cut(line, " ")
	return command, args
}

// parseSeed extracts the phrase from the seed JSON of a new wallet.
func parseSeed(initResult string) (string, bool) {
	var dump struct {
		Seed     string `json:"seed"`
		Birthday uint64 `json:"birthday"`
	}
	if err := json.Unmarshal([]byte(initResult), &dump); err != nil || dump.Seed == "" {
		return "", false
	}
	return dump.Seed, true
}

// summarizeStatus renders a syncstatus outcome as one line. The second
// result reports whether a sync is running.
func summarizeStatus(raw string) (string, bool) {
	if strings.HasPrefix(raw, app.MsgErrorPrefix) {
		return raw, false
	}

	var status models.SyncStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return raw, false
	}

	if status.InProgress {
		return fmt.Sprintf("syncing #%d: %d/%d blocks (%d..%d)",
			status.SyncID, status.SyncedBlocks, status.TotalBlocks, status.StartBlock, status.EndBlock), true
	}

	line := fmt.Sprintf("synced to %d", status.LastSyncedHeight)
	if status.LastError != "" {
		line += " | last sync failed: " + status.LastError
	}
	return line, false
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
