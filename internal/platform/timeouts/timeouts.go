// Package timeouts defines shared timeout constants used across rpgsim
// commands and storage.
package timeouts

import "time"

// TelemetryShutdown limits how long span export may take when a command
// exits.
const TelemetryShutdown = 5 * time.Second

// JournalBusy is how long SQLite waits on a locked journal before failing.
const JournalBusy = 5 * time.Second
