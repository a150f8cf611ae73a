// Package protocol implements a CECP/xboard command subset: a
// line-oriented text loop on stdin/stdout that drives the search
// engine through a game, treating every external collaborator (clock,
// logging) as a thin adapter around the search core.
package protocol

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// openLogFile creates the append-only session log file, named with
// the engine's base name and an ISO-like time suffix. A
// session UUID is folded into the name too, so two engine processes
// started in the same second (a match runner launching both sides at
// once) never collide on one log file.
func openLogFile(baseName string) (*os.File, error) {
	stamp := timestampSuffix()
	sessionID := uuid.New().String()[:8]
	name := fmt.Sprintf("%s-%s-%s.log", baseName, stamp, sessionID)
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// timestampSuffix renders the current time in a sortable, filesystem-
// safe ISO-like form ("20060102T150405").
func timestampSuffix() string {
	return time.Now().Format("20060102T150405")
}

// EngineBaseName derives the base name the log-file naming scheme
// needs from the running binary's own path.
func EngineBaseName() string {
	exe, err := os.Executable()
	if err != nil {
		return "chessengine"
	}
	base := filepath.Base(exe)
	return base[:len(base)-len(filepath.Ext(base))]
}
